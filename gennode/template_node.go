// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package gennode

import "strings"

type itemKind int

const (
	itemRawLine itemKind = iota
	itemNewlineSentinel
	itemSubText
	itemSubNode
	itemUndefined
)

type spliceItem struct {
	kind itemKind
	text string
	node GeneratorNode
}

// ExpandToNode builds a node tree from parts interleaved with
// substitutions, Go's stand-in for a tagged template literal: parts has
// one more element than substitutions, and parts[i] is the literal text
// between substitution i-1 and substitution i.
//
// Three shape rules apply, matching common multi-line string templates:
//
//   - If the template's first line is empty (the text starts with a line
//     break), that line is dropped entirely rather than left as a leading
//     blank line.
//   - If the template's last line is empty, it is dropped the same way;
//     if it is non-empty but whitespace-only, that trailing whitespace is
//     stripped instead of dropping the line.
//   - If the template's first line is empty and the template is not just
//     that empty line plus one blank line, the longest leading run of
//     spaces common to every non-empty line is stripped from the start of
//     every later line, so the tree does not carry the source code's own
//     indentation. A template whose first line is not empty keeps every
//     line's leading whitespace verbatim.
//
// A substitution that is a multi-line GeneratorNode appearing after
// leading whitespace on its line has that whitespace applied to every
// line it produces, not just its first.
func ExpandToNode(parts []string, substitutions ...Generated) *CompositeNode {
	if len(parts) != len(substitutions)+1 {
		misuse("ExpandToNode", "expected %d static parts for %d substitutions, got %d", len(substitutions)+1, len(substitutions), len(parts))
	}
	n := len(substitutions)

	omitFirstLine := startsWithNewline(parts[0])

	lastPartLines := NewlineRegexp.Split(parts[n], -1)
	lastLine := lastPartLines[len(lastPartLines)-1]
	omitLastLine, trimLastLine := false, false
	if len(lastPartLines) > 1 {
		switch {
		case lastLine == "":
			omitLastLine = true
		case strings.TrimSpace(lastLine) == "":
			trimLastLine = true
		}
	}

	joined := strings.Join(parts, "")

	// The canonical multi-line shape strips common indentation; every
	// other shape — a single physical line, a non-blank first line, or
	// the |L|==2 blank-second-line degenerate case — leaves indentation
	// at zero and preserves leading whitespace verbatim.
	indentation := ""
	if omitFirstLine {
		lines := NewlineRegexp.Split(joined, -1)
		degenerate := len(lines) == 2 && strings.TrimSpace(lines[1]) == ""
		if !degenerate {
			indentation = FindIndentation(joined)
		}
	}

	items := spliceItems(parts, substitutions, indentation)
	items = trimFinalLine(items, omitFirstLine, omitLastLine, trimLastLine)
	return assemble(items)
}

func startsWithNewline(s string) bool {
	loc := NewlineRegexp.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}

func spliceItems(parts []string, subs []Generated, indentation string) []spliceItem {
	var items []spliceItem
	for i, part := range parts {
		lines := NewlineRegexp.Split(part, -1)
		for li, line := range lines {
			if li > 0 {
				items = append(items, spliceItem{kind: itemNewlineSentinel})
			}
			text := line
			// Only a fragment that follows a line break starts a line; the
			// first fragment of a part continues the template's first line
			// or the line of the preceding substitution.
			if indentation != "" && li > 0 {
				text = strings.TrimPrefix(line, indentation)
			}
			items = append(items, spliceItem{kind: itemRawLine, text: text})
		}
		if i < len(subs) {
			sub := subs[i]
			switch {
			case isAbsent(sub):
				items = append(items, spliceItem{kind: itemUndefined})
			default:
				switch v := sub.(type) {
				case string:
					items = append(items, spliceItem{kind: itemSubText, text: v})
				case GeneratorNode:
					items = append(items, spliceItem{kind: itemSubNode, node: v})
				default:
					misuse("ExpandToNode", "unsupported substitution value of type %T", sub)
				}
			}
		}
	}
	return items
}

func trimFinalLine(items []spliceItem, omitFirstLine, omitLastLine, trimLastLine bool) []spliceItem {
	if omitFirstLine && len(items) >= 2 &&
		items[0].kind == itemRawLine && items[0].text == "" &&
		items[1].kind == itemNewlineSentinel {
		items = items[2:]
	}
	switch {
	case omitLastLine:
		if n := len(items); n >= 2 &&
			items[n-1].kind == itemRawLine && items[n-1].text == "" &&
			items[n-2].kind == itemNewlineSentinel {
			items = items[:n-2]
		}
	case trimLastLine:
		if n := len(items); n >= 1 && items[n-1].kind == itemRawLine {
			items[n-1].text = ""
		}
	}
	return items
}

func assemble(items []spliceItem) *CompositeNode {
	root := Composite()
	n := len(items)
	for i := 0; i < n; {
		item := items[i]
		switch item.kind {
		case itemNewlineSentinel:
			if newlineIsConditional(items, i) {
				root.AppendNewLineIfNotEmpty()
			} else {
				root.AppendNewLine()
			}
			i++

		case itemRawLine:
			lineEnd := i
			hasMultiline := false
			for lineEnd < n && items[lineEnd].kind != itemNewlineSentinel {
				if items[lineEnd].kind == itemSubNode && nodeIsMultiline(items[lineEnd].node) {
					hasMultiline = true
				}
				lineEnd++
			}
			if hasMultiline {
				// The starting line's own leading whitespace is kept as
				// literal text (it already positions the first line
				// correctly); the deferred indent only arms for the
				// continuation lines the substitution itself produces,
				// reapplying that same width to each of them.
				leading := leadingSpaces(item.text)
				ind := NewIndent(WithIndentImmediately(false), WithIndentationString(leading))
				ind.Append(item.text)
				for k := i + 1; k < lineEnd; k++ {
					appendSpliceItem(ind, items[k])
				}
				root.appendChild(ind)
				i = lineEnd
			} else {
				root.Append(item.text)
				i++
			}

		case itemSubText:
			root.Append(item.text)
			i++

		case itemSubNode:
			root.appendChild(item.node)
			i++

		case itemUndefined:
			i++
		}
	}
	return root
}

// newlineIsConditional decides whether the sentinel at items[idx] becomes
// an unconditional or an IfNotEmpty line break. A substitution's own
// static line-fragment is always represented by a (possibly empty)
// itemRawLine immediately before the sentinel, so a direct look at
// items[idx-1] would always see a rawLine and never the substitution
// behind it; classification instead looks through an empty trailing
// rawLine to whatever produced it.
func newlineIsConditional(items []spliceItem, idx int) bool {
	if idx == 0 {
		return false
	}
	prev := items[idx-1]
	if prev.kind == itemRawLine {
		if prev.text != "" {
			return false
		}
		if idx-2 < 0 {
			return false
		}
		prev = items[idx-2]
	}
	switch prev.kind {
	case itemSubText, itemSubNode, itemUndefined:
		return true
	default:
		return false
	}
}

// appendChild appends a pre-built node to a composite, claiming aliasing
// ownership if it is a composite or indent node.
func (c *CompositeNode) appendChild(n GeneratorNode) {
	c.checkMutable("ExpandToNode")
	switch v := n.(type) {
	case *CompositeNode:
		v.markParented("ExpandToNode")
	case *IndentNode:
		v.markParented("ExpandToNode")
	}
	c.children = append(c.children, n)
}

func appendSpliceItem(ind *IndentNode, item spliceItem) {
	switch item.kind {
	case itemRawLine, itemSubText:
		ind.Append(item.text)
	case itemSubNode:
		ind.checkMutable("ExpandToNode")
		switch v := item.node.(type) {
		case *CompositeNode:
			v.markParented("ExpandToNode")
		case *IndentNode:
			v.markParented("ExpandToNode")
		}
		ind.children = append(ind.children, item.node)
	case itemUndefined:
		// contributes nothing
	}
}

func nodeIsMultiline(n GeneratorNode) bool {
	switch v := n.(type) {
	case *NewLineNode:
		return v != nil
	case *CompositeNode:
		if v == nil {
			return false
		}
		for _, c := range v.children {
			if nodeIsMultiline(c) {
				return true
			}
		}
	case *IndentNode:
		if v == nil {
			return false
		}
		for _, c := range v.children {
			if nodeIsMultiline(c) {
				return true
			}
		}
	}
	return false
}

// JoinOptions configures JoinToNode.
type JoinOptions[T any] struct {
	// Separator is inserted, as a plain string, between consecutive
	// (non-filtered) items. For a GeneratorNode separator that needs a
	// fresh instance per occurrence, use SeparatorFunc instead.
	Separator string

	// SeparatorFunc, if set, takes precedence over Separator and is
	// called once per gap to produce that gap's separator.
	SeparatorFunc func(index int) Generated

	// Prefix, if non-absent, is appended once before the first
	// contributing item's content.
	Prefix Generated

	// Suffix, if non-absent, is appended once after the last
	// contributing item's content.
	Suffix Generated

	// AppendNewLineIfNotEmpty, if true, appends a conditional line break
	// after the whole join, but only if the result is non-empty.
	AppendNewLineIfNotEmpty bool

	// Filter, if set, excludes items for which it returns false.
	Filter func(item T, index int) bool
}

// JoinOption mutates a JoinOptions[T] value under construction.
type JoinOption[T any] func(*JoinOptions[T])

// WithJoinSeparator sets a plain string separator.
func WithJoinSeparator[T any](sep string) JoinOption[T] {
	return func(o *JoinOptions[T]) { o.Separator = sep }
}

// WithJoinSeparatorFunc sets a per-gap separator function, needed when
// the separator is itself a GeneratorNode (which cannot be aliased twice).
func WithJoinSeparatorFunc[T any](f func(index int) Generated) JoinOption[T] {
	return func(o *JoinOptions[T]) { o.SeparatorFunc = f }
}

// WithJoinPrefix sets a value appended once before the first contributing
// item.
func WithJoinPrefix[T any](prefix Generated) JoinOption[T] {
	return func(o *JoinOptions[T]) { o.Prefix = prefix }
}

// WithJoinSuffix sets a value appended once after the last contributing
// item.
func WithJoinSuffix[T any](suffix Generated) JoinOption[T] {
	return func(o *JoinOptions[T]) { o.Suffix = suffix }
}

// WithJoinAppendNewLineIfNotEmpty appends a conditional line break after
// the join, dropped if the join contributed nothing.
func WithJoinAppendNewLineIfNotEmpty[T any]() JoinOption[T] {
	return func(o *JoinOptions[T]) { o.AppendNewLineIfNotEmpty = true }
}

// WithJoinFilter excludes items for which f returns false.
func WithJoinFilter[T any](f func(item T, index int) bool) JoinOption[T] {
	return func(o *JoinOptions[T]) { o.Filter = f }
}

// JoinToNode maps each non-filtered item to a Generated value with
// toGenerated (whose isLast argument reports whether that item is the
// last one to pass Filter, not the last of the original slice) and joins
// the results into a single CompositeNode, inserting a separator between
// contributing items and optionally wrapping the whole result in a
// prefix/suffix.
//
// If no item contributes anything and neither Prefix nor Suffix is set,
// JoinToNode never allocates a node at all and returns nil, so a
// JoinToNode result spliced into another tree as a substitution is
// correctly treated as absent.
func JoinToNode[T any](items []T, toGenerated func(item T, index int, isLast bool) Generated, opts ...JoinOption[T]) *CompositeNode {
	var o JoinOptions[T]
	for _, opt := range opts {
		opt(&o)
	}

	indices := make([]int, 0, len(items))
	for i, item := range items {
		if o.Filter != nil && !o.Filter(item, i) {
			continue
		}
		indices = append(indices, i)
	}

	var root *CompositeNode
	for pos, i := range indices {
		isLast := pos == len(indices)-1
		content := toGenerated(items[i], i, isLast)
		if isAbsent(content) && root == nil && isAbsent(o.Prefix) && isAbsent(o.Suffix) {
			continue
		}
		if root == nil {
			root = Composite()
			if !isAbsent(o.Prefix) {
				root.Append(o.Prefix)
			}
		}
		if !isAbsent(content) {
			root.Append(content)
		}
		if !isLast && !isAbsent(content) {
			switch {
			case o.SeparatorFunc != nil:
				root.Append(o.SeparatorFunc(i))
			case o.Separator != "":
				root.Append(o.Separator)
			}
		}
	}

	if root == nil {
		return nil
	}
	if !isAbsent(o.Suffix) {
		root.Append(o.Suffix)
	}
	if o.AppendNewLineIfNotEmpty && !root.IsEmpty() {
		root.AppendNewLineIfNotEmpty()
	}
	return root
}
