// SPDX-License-Identifier: MIT

package schemabase

import "testing"

func TestIsPrimitive(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{TypeString, true},
		{TypeInt, true},
		{TypeInt64, true},
		{TypeFloat64, true},
		{TypeBool, true},
		{TypeBytes, true},
		{TypeAny, true},
		{"Position", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPrimitive(tt.name); got != tt.want {
			t.Errorf("IsPrimitive(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsStringLike(t *testing.T) {
	if !IsStringLike(TypeString) {
		t.Error("expected TypeString to be string-like")
	}
	if IsStringLike(TypeInt) {
		t.Error("expected TypeInt not to be string-like")
	}
}

func TestIsNumeric(t *testing.T) {
	for _, name := range []string{TypeInt, TypeInt64, TypeFloat64} {
		if !IsNumeric(name) {
			t.Errorf("expected %q to be numeric", name)
		}
	}
	for _, name := range []string{TypeString, TypeBool, TypeBytes, TypeAny} {
		if IsNumeric(name) {
			t.Errorf("expected %q not to be numeric", name)
		}
	}
}
