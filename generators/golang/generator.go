// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"context"

	"github.com/albertocavalcante/gennode/generator"
	"github.com/albertocavalcante/gennode/internal/schema"
)

// GoGenerator implements [generator.Generator] for Go code generation.
type GoGenerator struct{}

// NewGenerator creates a new Go generator.
func NewGenerator() *GoGenerator {
	return &GoGenerator{}
}

// Metadata returns information about this generator.
func (g *GoGenerator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "go",
		Version:        "1.0.0",
		Description:    "Generate Go types from a schema document",
		FileExtensions: []string{".go"},
		URL:            "https://github.com/albertocavalcante/gennode",
	}
}

// Generate produces Go output files from a loaded schema.
func (g *GoGenerator) Generate(ctx context.Context, s *schema.Schema, cfg generator.Config) (*generator.Output, error) {
	internalCfg := Config{
		PackageName:         cfg.Option("package", s.Package),
		Types:               cfg.Types,
		ResolveDeps:         cfg.ResolveDeps,
		IncludeExperimental: cfg.IncludeExperimental,
		GenerateJSON:        true,
		Source:              cfg.Source,
		SchemaVersion:       cfg.SchemaVersion,
	}
	if internalCfg.PackageName == "" {
		internalCfg.PackageName = "generated"
	}

	gen := New(s, internalCfg)
	out, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	filename := cfg.OutputFile
	if filename == "" {
		filename = internalCfg.PackageName + ".go"
	}
	return generator.Single(filename, out), nil
}
