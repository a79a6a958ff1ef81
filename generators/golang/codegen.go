// SPDX-License-Identifier: MIT AND BSD-3-Clause
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.
//
// Code generation logic inspired by golang.org/x/tools/gopls:
// https://github.com/golang/tools/blob/master/gopls/internal/protocol/generate/output.go
// Copyright 2022 The Go Authors. All rights reserved.
// See NOTICE file for the full license text.

// Package golang generates Go source code from a loaded schema document,
// building every file through a [gennode.CompositeNode] rather than ad hoc
// string concatenation.
package golang

import (
	"fmt"
	"go/format"

	"golang.org/x/tools/imports"

	"github.com/albertocavalcante/gennode/gennode"
	"github.com/albertocavalcante/gennode/internal/schema"
	"github.com/albertocavalcante/gennode/internal/schemabase"
)

// Config controls code generation behavior.
type Config struct {
	// PackageName is the Go package name for generated code.
	PackageName string

	// Types limits generation to specific record/enum names.
	// If empty, all types are generated.
	Types []string

	// ResolveDeps automatically includes types referenced by filtered types.
	// When true, if you filter for "Range", types like "Position" that Range
	// references will also be included. Default: true.
	ResolveDeps bool

	// IncludeExperimental includes records, enums, and fields marked
	// experimental in the schema.
	IncludeExperimental bool

	// GenerateJSON generates custom JSON marshaling code for oneOf unions.
	GenerateJSON bool

	// Source describes where the schema came from (for the header comment).
	Source string

	// SchemaVersion is the schema's reported version (for the header comment).
	SchemaVersion string
}

// DefaultConfig returns sensible defaults for code generation.
func DefaultConfig() Config {
	return Config{
		PackageName:         "generated",
		ResolveDeps:         true,
		IncludeExperimental: false,
		GenerateJSON:        true,
	}
}

// Generator produces Go code from a schema document.
type Generator struct {
	schema *schema.Schema
	config Config

	types  *orderedMap[gennode.Generated]
	consts *orderedMap[gennode.Generated]

	// typeFilter is the set of record/enum names to emit; nil means all.
	typeFilter map[string]bool

	// unionTypes tracks generated Union_* types to avoid duplicates.
	unionTypes *orderedMap[unionTypeInfo]

	// experimental caches whether a name is experimental for O(1) lookup.
	experimental map[string]bool
}

// unionTypeInfo holds information about a generated Union_* type.
type unionTypeInfo struct {
	name      string   // Type name (e.g., "Union_TextEdit_AnnotatedTextEdit")
	itemNames []string // Sorted Go type names of the union's members
}

// New creates a new Generator.
func New(s *schema.Schema, cfg Config) *Generator {
	g := &Generator{
		schema:       s,
		config:       cfg,
		types:        newOrderedMap[gennode.Generated](),
		consts:       newOrderedMap[gennode.Generated](),
		unionTypes:   newOrderedMap[unionTypeInfo](),
		experimental: buildExperimentalCache(s),
	}

	if len(cfg.Types) > 0 {
		g.typeFilter = make(map[string]bool)
		for _, t := range cfg.Types {
			g.typeFilter[t] = true
		}
	}

	return g
}

// buildExperimentalCache builds a cache of experimental names for O(1) lookup.
func buildExperimentalCache(s *schema.Schema) map[string]bool {
	var items []schemabase.NamedFeature
	for _, r := range s.Records {
		items = append(items, schemabase.NamedFeature{Name: r.Name, Experimental: r.Experimental})
	}
	for _, e := range s.Enums {
		items = append(items, schemabase.NamedFeature{Name: e.Name, Experimental: e.Experimental})
	}
	return schemabase.ExperimentalSet(items...)
}

// Generate produces the generated Go source as formatted, import-resolved bytes.
func (g *Generator) Generate() ([]byte, error) {
	if g.typeFilter != nil && g.config.ResolveDeps {
		g.typeFilter = schema.ResolveDeps(g.schema, g.typeFilter, g.config.IncludeExperimental)
	}

	for _, r := range g.schema.Records {
		if !g.shouldInclude(r.Name, r.Experimental) {
			continue
		}
		g.generateRecord(r)
	}

	for _, e := range g.schema.Enums {
		if !g.shouldInclude(e.Name, e.Experimental) {
			continue
		}
		g.generateEnum(e)
	}

	return g.render()
}

func (g *Generator) shouldInclude(name string, experimental bool) bool {
	if experimental && !g.config.IncludeExperimental {
		return false
	}
	if g.typeFilter != nil && !g.typeFilter[name] {
		return false
	}
	return true
}

// isExperimental returns true if the named record/enum is experimental.
func (g *Generator) isExperimental(name string) bool {
	return g.experimental[name]
}

// render assembles the whole file as a single generator tree, serializes
// it, then hands it to gofmt and goimports.
func (g *Generator) render() ([]byte, error) {
	file := gennode.Composite()
	file.Append(g.fileHeader())
	file.AppendNewLine()
	file.Append(fmt.Sprintf("package %s", g.config.PackageName))
	file.AppendNewLine()
	file.AppendNewLine()
	file.Append(`import "encoding/json"`)
	file.AppendNewLine()
	file.AppendNewLine()

	for _, name := range g.types.keys() {
		file.Append(g.types.get(name))
	}
	g.appendUnionTypes(file)
	g.appendConsts(file)

	src := []byte(gennode.Serialize(file))

	formatted, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	resolved, err := imports.Process("", formatted, nil)
	if err != nil {
		return nil, fmt.Errorf("resolve imports: %w", err)
	}
	return resolved, nil
}

func (g *Generator) appendConsts(file *gennode.CompositeNode) {
	if len(g.consts.keys()) == 0 {
		return
	}
	file.Append("const (")
	file.AppendNewLine()
	for _, name := range g.consts.keys() {
		file.Append(g.consts.get(name))
	}
	file.Append(")")
	file.AppendNewLine()
	file.AppendNewLine()
}

func (g *Generator) fileHeader() gennode.Generated {
	lines := gennode.Composite()
	lines.Append("// Code generated by gennode-demo. DO NOT EDIT.")
	if g.config.Source != "" {
		lines.AppendNewLine()
		lines.Append(fmt.Sprintf("// Source: %s", g.config.Source))
	}
	if g.config.SchemaVersion != "" {
		lines.AppendNewLine()
		lines.Append(fmt.Sprintf("// Schema version: %s", g.config.SchemaVersion))
	}
	return lines
}
