// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package schemabase

// NamedFeature pairs a record or enum name with its experimental status.
type NamedFeature struct {
	Name         string
	Experimental bool
}

// ExperimentalSet returns a map from name to its experimental status.
// Call it with slices of NamedFeature built from a schema's records and
// enumerations, so generators can decide whether to emit a given name
// without importing the schema package directly.
func ExperimentalSet(items ...NamedFeature) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, f := range items {
		set[f.Name] = f.Experimental
	}
	return set
}
