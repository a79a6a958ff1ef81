// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package gennode

// GeneratorNode is the sealed interface implemented by the four node
// variants: TextNode, NewLineNode, IndentNode and CompositeNode. It is
// sealed by an unexported marker method; callers assemble trees with the
// constructors and builder methods in this package rather than new
// implementations.
type GeneratorNode interface {
	isGeneratorNode()
}

// Generated is anything that can be appended to a node tree: a string
// (wrapped in a TextNode), a GeneratorNode (used as-is), or nil/absent,
// which contributes nothing and is distinct from an empty string.
type Generated = any

// TextNode is a leaf holding literal text. Any embedded line breaks are
// rendered as unconditional line breaks (see Text).
type TextNode struct {
	Text string
}

func (*TextNode) isGeneratorNode() {}

// Text wraps s in a TextNode. s may contain embedded line breaks; each is
// treated as a NewLine during serialization, so a TextNode nested under
// an Indent still gets the indentation prefix reapplied to its later
// lines, the same as if the caller had split it into Text/NewLine pairs
// itself (ExpandToNode does that splitting for template input, but a
// caller building a tree directly does not have to).
func Text(s string) *TextNode { return &TextNode{Text: s} }

// NewLineNode represents a single line break in the rendered output.
type NewLineNode struct {
	// IfNotEmpty makes the break conditional: it is only emitted if the
	// current output line already has content. An unconditional
	// NewLineNode is always emitted.
	IfNotEmpty bool
}

func (*NewLineNode) isGeneratorNode() {}

// NewLine returns an unconditional line break.
func NewLine() *NewLineNode { return &NewLineNode{} }

// NewLineIfNotEmpty returns a line break that is only emitted if the
// current line already has content, so an empty trailing substitution
// does not leave a blank line behind.
func NewLineIfNotEmpty() *NewLineNode { return &NewLineNode{IfNotEmpty: true} }

// container is the shared state backing CompositeNode and IndentNode: an
// ordered list of children plus the aliasing/freeze guards described on
// MisuseError.
type container struct {
	children []GeneratorNode
	parented bool // true once this node has been appended as a child somewhere
	frozen   bool // true once this node (or an ancestor) has been serialized
}

func (c *container) markParented(op string) {
	if c.parented {
		misuse(op, "node already has a parent; a composite or indent node may only be appended once")
	}
	c.parented = true
}

func (c *container) checkMutable(op string) {
	if c.frozen {
		misuse(op, "node was already serialized and can no longer be mutated")
	}
}

// markFrozen recursively freezes this node and every composite/indent
// descendant, so a mutation after Serialize panics instead of being
// silently accepted. Serializing the same tree again is still allowed.
func markFrozen(n GeneratorNode) {
	switch v := n.(type) {
	case *CompositeNode:
		if v == nil || v.frozen {
			return
		}
		v.frozen = true
		for _, c := range v.children {
			markFrozen(c)
		}
	case *IndentNode:
		if v == nil || v.frozen {
			return
		}
		v.frozen = true
		for _, c := range v.children {
			markFrozen(c)
		}
	}
}

// CompositeNode is an ordered, unindented grouping of child nodes.
type CompositeNode struct {
	container
}

func (*CompositeNode) isGeneratorNode() {}

// Composite returns a new, empty CompositeNode.
func Composite() *CompositeNode { return &CompositeNode{} }

// IndentOptions configures an IndentNode. Use the With* functions to set
// fields; NewIndent starts from the defaults documented on each field,
// which the zero value does not match.
type IndentOptions struct {
	// IndentationString is prefixed to every line started while this
	// node's children are being emitted. Defaults to four spaces.
	IndentationString string

	// IndentImmediately, when true (the default), means the indentation
	// also applies to the current line if this node is entered at the
	// start of a line; entered mid-line, the current line is left as-is.
	// When false, indentation only takes effect starting at the next line
	// break encountered while this node's subtree is active; the current
	// line is left as-is.
	IndentImmediately bool

	// IndentEmptyLines, when true, applies the indentation prefix even to
	// otherwise-empty lines. Defaults to false: blank lines stay blank.
	IndentEmptyLines bool
}

// IndentOption mutates an IndentOptions value under construction.
type IndentOption func(*IndentOptions)

// WithIndentationString overrides the default four-space indentation
// prefix.
func WithIndentationString(s string) IndentOption {
	return func(o *IndentOptions) { o.IndentationString = s }
}

// WithIndentImmediately controls whether indentation also applies to the
// line this node is entered on, when entered at a line start (true, the
// default), or only from the next line break (false).
func WithIndentImmediately(b bool) IndentOption {
	return func(o *IndentOptions) { o.IndentImmediately = b }
}

// WithIndentEmptyLines controls whether blank lines inside this node's
// subtree still receive the indentation prefix. Defaults to false.
func WithIndentEmptyLines(b bool) IndentOption {
	return func(o *IndentOptions) { o.IndentEmptyLines = b }
}

func defaultIndentOptions() IndentOptions {
	return IndentOptions{
		IndentationString: "    ",
		IndentImmediately: true,
		IndentEmptyLines:  false,
	}
}

// IndentNode groups children that should be emitted with an extra
// indentation prefix applied to every line they start.
type IndentNode struct {
	container
	Options IndentOptions
}

func (*IndentNode) isGeneratorNode() {}

// NewIndent returns a new, empty IndentNode configured by opts.
func NewIndent(opts ...IndentOption) *IndentNode {
	o := defaultIndentOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &IndentNode{Options: o}
}

// IsGeneratorNode reports whether v is a non-nil GeneratorNode. It guards
// against the classic typed-nil-interface pitfall: a nil *CompositeNode
// boxed into a GeneratorNode is a non-nil interface value, so a plain
// `v != nil` check on an any/GeneratorNode is not enough to detect
// "absent". IsGeneratorNode treats a nil node pointer of any known
// variant as absent too.
func IsGeneratorNode(v any) bool {
	switch n := v.(type) {
	case nil:
		return false
	case *TextNode:
		return n != nil
	case *NewLineNode:
		return n != nil
	case *IndentNode:
		return n != nil
	case *CompositeNode:
		return n != nil
	case GeneratorNode:
		return n != nil
	default:
		return false
	}
}

// IsEmpty reports whether c would serialize to the empty string: every
// child is an empty TextNode or an IndentNode whose own children are
// (recursively) empty. Absent children never appear in c.children in the
// first place (Append already drops them), so they need no special case
// here. A NewLineNode, conditional or not, always counts as non-empty:
// whether a conditional break actually renders depends on output state
// outside this node's own subtree, which IsEmpty cannot see, so it errs
// conservative rather than structural-but-wrong.
func (c *CompositeNode) IsEmpty() bool {
	return containerIsEmpty(&c.container)
}

// IsEmpty reports whether n's children would contribute nothing to
// serialized output, same semantics as (*CompositeNode).IsEmpty.
func (n *IndentNode) IsEmpty() bool {
	return containerIsEmpty(&n.container)
}

func containerIsEmpty(c *container) bool {
	for _, child := range c.children {
		if !nodeIsEmpty(child) {
			return false
		}
	}
	return true
}

func nodeIsEmpty(n GeneratorNode) bool {
	switch v := n.(type) {
	case *TextNode:
		return v == nil || v.Text == ""
	case *CompositeNode:
		return v == nil || containerIsEmpty(&v.container)
	case *IndentNode:
		return v == nil || containerIsEmpty(&v.container)
	default:
		return false
	}
}

// isAbsent reports whether a Generated value contributes nothing: a Go
// nil or a nil node pointer. An empty string is deliberately excluded —
// it is a present, zero-length contribution, not an absent one.
func isAbsent(v Generated) bool {
	if v == nil {
		return true
	}
	switch n := v.(type) {
	case *TextNode:
		return n == nil
	case *NewLineNode:
		return n == nil
	case *IndentNode:
		return n == nil
	case *CompositeNode:
		return n == nil
	case string:
		return false
	default:
		return false
	}
}
