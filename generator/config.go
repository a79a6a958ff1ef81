// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Config contains generator configuration.
type Config struct {
	// OutputDir is the output directory.
	OutputDir string

	// OutputFile is for single file output (optional).
	OutputFile string

	// Types filters to specific record/enum names (empty = all).
	Types []string

	// ResolveDeps includes transitive dependencies when filtering.
	ResolveDeps bool

	// IncludeExperimental includes records, enums, and fields marked
	// experimental in the schema.
	IncludeExperimental bool

	// Source identifies where the schema was loaded from (for headers).
	Source string

	// SchemaVersion is the version string reported by the loaded schema,
	// if any (for headers).
	SchemaVersion string

	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}
