// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package schemabase

// Primitive type name constants recognized by the schema's "base" kind.
const (
	TypeString  = "string"
	TypeInt     = "int"
	TypeInt64   = "int64"
	TypeFloat64 = "float64"
	TypeBool    = "bool"
	TypeBytes   = "bytes"
	TypeAny     = "any"
)

var primitiveTypes = map[string]bool{
	TypeString:  true,
	TypeInt:     true,
	TypeInt64:   true,
	TypeFloat64: true,
	TypeBool:    true,
	TypeBytes:   true,
	TypeAny:     true,
}

// IsPrimitive reports whether name is one of the schema's recognized
// primitive type names.
func IsPrimitive(name string) bool {
	return primitiveTypes[name]
}

// IsStringLike reports whether the primitive maps to a string in most
// target languages.
func IsStringLike(name string) bool {
	return name == TypeString
}

// IsNumeric reports whether the primitive maps to a number in most
// target languages.
func IsNumeric(name string) bool {
	switch name {
	case TypeInt, TypeInt64, TypeFloat64:
		return true
	}
	return false
}
