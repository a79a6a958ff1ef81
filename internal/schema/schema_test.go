// SPDX-License-Identifier: MIT

package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectKind  string
		expectError bool
	}{
		{name: "base", input: `{"kind":"base","name":"string"}`, expectKind: "base"},
		{name: "reference", input: `{"kind":"reference","name":"Position"}`, expectKind: "reference"},
		{name: "list", input: `{"kind":"list","element":{"kind":"base","name":"int"}}`, expectKind: "list"},
		{name: "map", input: `{"kind":"map","key":{"kind":"base","name":"string"},"value":{"kind":"base","name":"int"}}`, expectKind: "map"},
		{name: "oneOf", input: `{"kind":"oneOf","items":[{"kind":"base","name":"string"},{"kind":"base","name":"null"}]}`, expectKind: "oneOf"},
		{name: "unknown kind", input: `{"kind":"bogus"}`, expectError: true},
		{name: "list missing element", input: `{"kind":"list"}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Type
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectKind, got.Kind)
		})
	}
}

func TestTypeIsOptional(t *testing.T) {
	opt := &Type{Kind: "oneOf", Items: []*Type{
		{Kind: "base", Name: "string"},
		{Kind: "base", Name: "null"},
	}}
	assert.True(t, opt.IsOptional())
	nonNull := opt.NonNullType()
	require.NotNil(t, nonNull)
	assert.Equal(t, "string", nonNull.Name)

	notOpt := &Type{Kind: "base", Name: "string"}
	assert.False(t, notOpt.IsOptional())
}

func TestResolveDeps(t *testing.T) {
	s := &Schema{
		Records: []*Record{
			{Name: "A", Fields: []*Field{
				{Name: "b", Type: &Type{Kind: "reference", Name: "B"}},
			}},
			{Name: "B", Fields: []*Field{
				{Name: "items", Type: &Type{Kind: "list", Element: &Type{Kind: "reference", Name: "C"}}},
			}},
			{Name: "C", Fields: []*Field{
				{Name: "self", Type: &Type{Kind: "base", Name: "string"}},
			}},
			{Name: "D", Fields: nil},
		},
	}

	got := ResolveDeps(s, map[string]bool{"A": true}, true)
	want := map[string]bool{"A": true, "B": true, "C": true}
	require.Len(t, got, len(want))
	for k := range want {
		assert.Truef(t, got[k], "missing %q in resolved deps %v", k, got)
	}
	assert.False(t, got["D"], "D should not be pulled in")
}

func TestResolveDepsNilFilterMeansAll(t *testing.T) {
	assert.Nil(t, ResolveDeps(&Schema{}, nil, false))
}
