// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package gennode

import "strings"

// Serialize renders node to text with a left-to-right, depth-first walk.
// It freezes node and every composite/indent descendant: once serialized,
// a node tree can no longer be mutated (see MisuseError).
func Serialize(node GeneratorNode) string {
	if node == nil {
		return ""
	}
	markFrozen(node)
	s := &serializer{atLineStart: true}
	s.walk(node)
	return s.out.String()
}

type indentFrame struct {
	opts            IndentOptions
	armed           bool
	emittedThisLine bool
}

type serializer struct {
	out            strings.Builder
	indentStack    []*indentFrame
	atLineStart    bool
	lineHasContent bool
}

func (s *serializer) walk(n GeneratorNode) {
	switch v := n.(type) {
	case nil:
		return
	case *TextNode:
		if v != nil {
			s.writeContent(v.Text)
		}
	case *NewLineNode:
		if v != nil {
			s.writeNewLine(v.IfNotEmpty)
		}
	case *IndentNode:
		if v == nil {
			return
		}
		s.pushIndent(v.Options)
		for _, c := range v.children {
			s.walk(c)
		}
		s.popIndent()
	case *CompositeNode:
		if v == nil {
			return
		}
		for _, c := range v.children {
			s.walk(c)
		}
	}
}

func (s *serializer) pushIndent(opts IndentOptions) {
	s.indentStack = append(s.indentStack, &indentFrame{
		opts:  opts,
		armed: opts.IndentImmediately,
	})
}

func (s *serializer) popIndent() {
	s.indentStack = s.indentStack[:len(s.indentStack)-1]
}

// writeContent emits text, treating any embedded line break as an
// unconditional NewLine so a TextNode built from a raw multi-line string
// still indents correctly when nested under an Indent.
func (s *serializer) writeContent(text string) {
	if text == "" {
		return
	}
	lines := NewlineRegexp.Split(text, -1)
	for i, line := range lines {
		if i > 0 {
			s.writeNewLine(false)
		}
		s.writeLine(line)
	}
}

func (s *serializer) writeLine(text string) {
	if text == "" {
		return
	}
	if s.atLineStart {
		s.flushPrefix()
		s.atLineStart = false
	}
	s.out.WriteString(text)
	s.lineHasContent = true
}

// flushPrefix writes the indentation prefix for every armed frame that
// has not yet contributed to the current line.
func (s *serializer) flushPrefix() {
	for _, f := range s.indentStack {
		if f.armed && !f.emittedThisLine {
			s.out.WriteString(f.opts.IndentationString)
			f.emittedThisLine = true
		}
	}
}

func (s *serializer) writeNewLine(ifNotEmpty bool) {
	if ifNotEmpty && !s.lineHasContent {
		return
	}
	s.out.WriteByte('\n')

	// A deferred (IndentImmediately=false) frame arms on the first line
	// break reached while its subtree is active; this line and every
	// subsequent one in its scope are then indented.
	for _, f := range s.indentStack {
		f.armed = true
		f.emittedThisLine = false
	}

	s.atLineStart = true
	s.lineHasContent = false

	for _, f := range s.indentStack {
		if f.armed && f.opts.IndentEmptyLines {
			s.out.WriteString(f.opts.IndentationString)
			f.emittedThisLine = true
		}
	}
}
