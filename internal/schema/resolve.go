// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package schema

// ResolveDeps expands a name filter to include every record and enum
// transitively referenced from it. Returns nil if filter is nil, meaning
// "generate everything".
//
// includeExperimental controls whether fields marked Experimental are
// followed while walking dependencies.
func ResolveDeps(s *Schema, filter map[string]bool, includeExperimental bool) map[string]bool {
	if filter == nil {
		return nil
	}

	expanded := make(map[string]bool)
	for name := range filter {
		collectDeps(s, name, expanded, includeExperimental)
	}
	return expanded
}

func collectDeps(s *Schema, name string, visited map[string]bool, includeExperimental bool) {
	if visited[name] {
		return
	}
	visited[name] = true

	for _, r := range s.Records {
		if r.Name == name {
			for _, f := range r.Fields {
				if f.Experimental && !includeExperimental {
					continue
				}
				collectTypeRefs(s, f.Type, visited, includeExperimental)
			}
			return
		}
	}

	// Enums reference no other type; nothing further to collect.
}

func collectTypeRefs(s *Schema, t *Type, visited map[string]bool, includeExperimental bool) {
	if t == nil {
		return
	}
	switch t.Kind {
	case "reference":
		collectDeps(s, t.Name, visited, includeExperimental)
	case "list":
		collectTypeRefs(s, t.Element, visited, includeExperimental)
	case "map":
		collectTypeRefs(s, t.Key, visited, includeExperimental)
		collectTypeRefs(s, t.Value, visited, includeExperimental)
	case "oneOf":
		for _, item := range t.Items {
			collectTypeRefs(s, item, visited, includeExperimental)
		}
	}
}
