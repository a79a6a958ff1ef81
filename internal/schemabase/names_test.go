// SPDX-License-Identifier: MIT

package schemabase

import "testing"

func TestCapitalize(t *testing.T) {
	tests := []struct{ name, input, want string }{
		{"empty", "", ""},
		{"lowercase", "position", "Position"},
		{"already capitalized", "Range", "Range"},
		{"single char", "x", "X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Capitalize(tt.input); got != tt.want {
				t.Errorf("Capitalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExportName(t *testing.T) {
	tests := []struct{ name, input, want string }{
		{"empty", "", ""},
		{"plain", "position", "Position"},
		{"leading underscore", "_internal", "Xinternal"},
		{"uri stays as-is but capitalized", "uri", "Uri"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExportName(tt.input); got != tt.want {
				t.Errorf("ExportName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct{ name, input, want string }{
		{"simple", "DiagnosticSeverity", "diagnostic_severity"},
		{"single word", "Position", "position"},
		{"all upper acronym", "URI", "uri"},
		{"leading lowercase", "lineNumber", "line_number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CamelToSnake(tt.input); got != tt.want {
				t.Errorf("CamelToSnake(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCamelToScreamingSnake(t *testing.T) {
	tests := []struct{ name, input, want string }{
		{"simple", "DiagnosticSeverity", "DIAGNOSTIC_SEVERITY"},
		{"single word", "Position", "POSITION"},
		{"all upper acronym", "URI", "URI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CamelToScreamingSnake(tt.input); got != tt.want {
				t.Errorf("CamelToScreamingSnake(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
