// SPDX-License-Identifier: MIT AND BSD-3-Clause

package golang

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/gennode/gennode"
	"github.com/albertocavalcante/gennode/internal/schema"
	"github.com/albertocavalcante/gennode/internal/schemabase"
)

func (g *Generator) generateRecord(r *schema.Record) {
	decl := gennode.Composite()

	if r.Doc != "" {
		decl.Append(writeDocComment(r.Doc))
		decl.AppendNewLine()
	}
	if r.Since != "" && !strings.Contains(r.Doc, "@since "+r.Since) {
		decl.Append(fmt.Sprintf("//\n// @since %s", r.Since))
		decl.AppendNewLine()
	}

	decl.Append(fmt.Sprintf("type %s struct {", exportName(r.Name)))
	decl.AppendNewLine()

	for _, f := range r.Fields {
		if f.Experimental && !g.config.IncludeExperimental {
			continue
		}
		g.generateField(decl, f)
	}

	decl.Append("}")
	decl.AppendNewLine()
	decl.AppendNewLine()

	g.types.set(r.Name, decl)
}

// generateField appends one struct field's declaration to decl. Output is
// reformatted by gofmt afterward, so fields are appended flat rather than
// wrapped in an explicit indent node.
func (g *Generator) generateField(decl *gennode.CompositeNode, f *schema.Field) {
	if f.Doc != "" {
		decl.Append(writeDocComment(f.Doc))
		decl.AppendNewLine()
	}

	goName := exportName(f.Name)
	goType := g.goType(f.Type, f.Optional)

	jsonTag := f.Name
	if f.Optional {
		jsonTag += ",omitempty"
	}

	decl.Append(fmt.Sprintf("%s %s `json:\"%s\"`", goName, goType, jsonTag))
	decl.AppendNewLine()
}

func (g *Generator) generateEnum(e *schema.Enum) {
	decl := gennode.Composite()
	if e.Doc != "" {
		decl.Append(writeDocComment(e.Doc))
		decl.AppendNewLine()
	}

	baseType := g.goBaseType(e.Underlying)
	decl.Append(fmt.Sprintf("type %s %s", exportName(e.Name), baseType))
	decl.AppendNewLine()
	decl.AppendNewLine()
	g.types.set(e.Name, decl)

	for _, v := range e.Values {
		constDecl := gennode.Composite()
		if v.Doc != "" {
			constDecl.Append(writeDocComment(v.Doc))
			constDecl.AppendNewLine()
		}

		constName := exportName(e.Name) + exportName(v.Name)
		constValue := formatConstValue(v.Value, baseType)
		constDecl.Append(fmt.Sprintf("%s %s = %s", constName, exportName(e.Name), constValue))
		constDecl.AppendNewLine()

		g.consts.set(constName, constDecl)
	}
}

// goType converts a schema type to its Go equivalent.
func (g *Generator) goType(t *schema.Type, _ bool) string {
	if t == nil {
		return "any"
	}

	if t.IsOptional() {
		return "*" + g.goType(t.NonNullType(), false)
	}

	switch t.Kind {
	case "base":
		return g.goBaseType(t)
	case "reference":
		return exportName(t.Name)
	case "list":
		return "[]" + g.goType(t.Element, false)
	case "map":
		return fmt.Sprintf("map[%s]%s", g.goType(t.Key, false), g.goType(t.Value, false))
	case "oneOf":
		return g.getUnionType(t)
	default:
		return "any"
	}
}

func (g *Generator) goBaseType(t *schema.Type) string {
	if t == nil {
		return "any"
	}
	switch t.Name {
	case schemabase.TypeString:
		return "string"
	case schemabase.TypeInt:
		return "int32"
	case schemabase.TypeInt64:
		return "int64"
	case schemabase.TypeFloat64:
		return "float64"
	case schemabase.TypeBool:
		return "bool"
	case schemabase.TypeBytes:
		return "[]byte"
	default:
		return "any"
	}
}

// typeNameForIdent returns a Go-identifier-safe name for a type, used when
// building Union_* type names where []Location or map[K]V would be invalid
// in an identifier.
func (g *Generator) typeNameForIdent(t *schema.Type) string {
	if t == nil {
		return "any"
	}
	switch t.Kind {
	case "base":
		return g.goBaseType(t)
	case "reference":
		return exportName(t.Name)
	case "list":
		return "Slice" + g.typeNameForIdent(t.Element)
	case "map":
		return "Map" + g.typeNameForIdent(t.Key) + g.typeNameForIdent(t.Value)
	case "oneOf":
		return "Union"
	default:
		return "any"
	}
}

// getUnionType returns the Go type name for a "oneOf" type, registering it
// for generation if not already done. Returns "any" when no alternative
// remains after dropping null (and excluded experimental references), and
// the alternative's own Go type when exactly one remains.
func (g *Generator) getUnionType(t *schema.Type) string {
	if t.Kind != "oneOf" || len(t.Items) == 0 {
		return "any"
	}

	var nonNullItems []*schema.Type
	for _, item := range t.Items {
		if item.Kind == "base" && item.Name == "null" {
			continue
		}
		if !g.config.IncludeExperimental && item.Kind == "reference" && g.isExperimental(item.Name) {
			continue
		}
		nonNullItems = append(nonNullItems, item)
	}

	if len(nonNullItems) == 1 {
		return g.goType(nonNullItems[0], false)
	}
	if len(nonNullItems) == 0 {
		return "any"
	}

	type namePair struct {
		identName string
		goType    string
	}
	var pairs []namePair
	for _, item := range nonNullItems {
		pairs = append(pairs, namePair{
			identName: g.typeNameForIdent(item),
			goType:    g.goType(item, false),
		})
	}
	slices.SortFunc(pairs, func(a, b namePair) int {
		return cmp.Compare(a.identName, b.identName)
	})

	var identNames, itemNames []string
	for _, p := range pairs {
		identNames = append(identNames, p.identName)
		itemNames = append(itemNames, p.goType)
	}

	typeName := "Union_" + strings.Join(identNames, "_")
	if _, exists := g.unionTypes.m[typeName]; !exists {
		g.unionTypes.set(typeName, unionTypeInfo{name: typeName, itemNames: itemNames})
	}
	return typeName
}

// appendUnionTypes appends every registered Union_* type and its JSON
// marshaling methods to file.
func (g *Generator) appendUnionTypes(file *gennode.CompositeNode) {
	for _, name := range g.unionTypes.keys() {
		g.generateUnionType(file, g.unionTypes.get(name))
	}
}

// generateUnionType appends a Union_* struct and, if configured, its JSON
// marshaling methods to file. As with generateField, gofmt re-indents the
// serialized result, so the body is built with flat Append calls.
func (g *Generator) generateUnionType(file *gennode.CompositeNode, info unionTypeInfo) {
	file.Append(fmt.Sprintf("// %s is a union type for: %s", info.name, strings.Join(info.itemNames, " | ")))
	file.AppendNewLine()
	file.Append(fmt.Sprintf("type %s struct {", info.name))
	file.AppendNewLine()
	file.Append(`Value any `+"`json:\"value\"`")
	file.AppendNewLine()
	file.Append("}")
	file.AppendNewLine()
	file.AppendNewLine()

	if !g.config.GenerateJSON {
		return
	}

	file.Append(fmt.Sprintf("func (t %s) MarshalJSON() ([]byte, error) {", info.name))
	file.AppendNewLine()
	file.Append("switch x := t.Value.(type) {")
	file.AppendNewLine()
	for _, name := range info.itemNames {
		file.Append(fmt.Sprintf("case %s:", name))
		file.AppendNewLine()
		file.Append("return json.Marshal(x)")
		file.AppendNewLine()
	}
	file.Append("case nil:")
	file.AppendNewLine()
	file.Append(`return []byte("null"), nil`)
	file.AppendNewLine()
	file.Append("}")
	file.AppendNewLine()
	file.Append(fmt.Sprintf("return nil, fmt.Errorf(\"type %%T not one of %v\", t.Value)", info.itemNames))
	file.AppendNewLine()
	file.Append("}")
	file.AppendNewLine()
	file.AppendNewLine()

	file.Append(fmt.Sprintf("func (t *%s) UnmarshalJSON(x []byte) error {", info.name))
	file.AppendNewLine()
	file.Append(`if string(x) == "null" {`)
	file.AppendNewLine()
	file.Append("t.Value = nil")
	file.AppendNewLine()
	file.Append("return nil")
	file.AppendNewLine()
	file.Append("}")
	file.AppendNewLine()
	for i, name := range info.itemNames {
		file.Append(fmt.Sprintf("var h%d %s", i, name))
		file.AppendNewLine()
		file.Append(fmt.Sprintf("if err := json.Unmarshal(x, &h%d); err == nil {", i))
		file.AppendNewLine()
		file.Append(fmt.Sprintf("t.Value = h%d", i))
		file.AppendNewLine()
		file.Append("return nil")
		file.AppendNewLine()
		file.Append("}")
		file.AppendNewLine()
	}
	file.Append(fmt.Sprintf("return fmt.Errorf(\"unmarshal failed to match one of %v\")", info.itemNames))
	file.AppendNewLine()
	file.Append("}")
	file.AppendNewLine()
	file.AppendNewLine()
}

func exportName(name string) string {
	return schemabase.ExportName(name)
}

func writeDocComment(doc string) gennode.Generated {
	lines := gennode.Composite()
	first := true
	for line := range strings.SplitSeq(doc, "\n") {
		if !first {
			lines.AppendNewLine()
		}
		first = false
		lines.Append("// " + line)
	}
	return lines
}

func formatConstValue(v any, baseType string) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case float64:
		if baseType == "string" {
			return fmt.Sprintf("%q", fmt.Sprintf("%v", val))
		}
		return fmt.Sprintf("%d", int64(val))
	default:
		return fmt.Sprintf("%v", v)
	}
}
