// SPDX-License-Identifier: MIT

package schemabase

import "testing"

func TestExperimentalSet(t *testing.T) {
	set := ExperimentalSet(
		NamedFeature{Name: "Position", Experimental: false},
		NamedFeature{Name: "InlineValue", Experimental: true},
	)

	if set["Position"] {
		t.Error("Position should not be marked experimental")
	}
	if !set["InlineValue"] {
		t.Error("InlineValue should be marked experimental")
	}
	if _, ok := set["Unknown"]; ok {
		t.Error("unreferenced name should not appear in the set")
	}
}
