// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package gennode

import "fmt"

// MisuseError reports a programmer error in how a node tree was built:
// aliasing a composite or indent node under two parents, or mutating a
// node after it has been serialized.
type MisuseError struct {
	Op  string
	Msg string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("gennode: %s: %s", e.Op, e.Msg)
}

func misuse(op, format string, args ...any) {
	panic(&MisuseError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
