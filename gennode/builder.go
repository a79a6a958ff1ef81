// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package gennode

// normalizeChild converts a single Generated value into a GeneratorNode,
// splitting multi-line strings into Text/NewLine sequences, and claims
// aliasing ownership of any composite/indent child. Absent values return
// nil, false.
func normalizeChild(op string, v Generated) (GeneratorNode, bool) {
	if isAbsent(v) {
		return nil, false
	}
	switch n := v.(type) {
	case string:
		return stringToNode(n), true
	case *CompositeNode:
		n.markParented(op)
		return n, true
	case *IndentNode:
		n.markParented(op)
		return n, true
	case *TextNode:
		return n, true
	case *NewLineNode:
		return n, true
	default:
		misuse(op, "unsupported Generated value of type %T", v)
		return nil, false
	}
}

// stringToNode turns a literal string into a single TextNode, or, if it
// contains line breaks, a CompositeNode alternating TextNode and
// unconditional NewLineNode children.
func stringToNode(s string) GeneratorNode {
	lines := splitLines(s)
	if len(lines) == 1 {
		return Text(lines[0])
	}
	c := Composite()
	for i, line := range lines {
		if i > 0 {
			c.children = append(c.children, NewLine())
		}
		c.children = append(c.children, Text(line))
	}
	return c
}

func appendAll(op string, c *container, items []Generated) {
	c.checkMutable(op)
	for _, item := range items {
		node, ok := normalizeChild(op, item)
		if !ok {
			continue
		}
		c.children = append(c.children, node)
	}
}

// Append adds each item to the composite in order. Absent items (nil, or
// a nil node pointer) are skipped.
func (c *CompositeNode) Append(items ...Generated) *CompositeNode {
	appendAll("Append", &c.container, items)
	return c
}

// AppendIf appends items only if cond is true; otherwise it is a no-op.
func (c *CompositeNode) AppendIf(cond bool, items ...Generated) *CompositeNode {
	if cond {
		c.Append(items...)
	}
	return c
}

// AppendNewLine appends an unconditional line break.
func (c *CompositeNode) AppendNewLine() *CompositeNode {
	c.checkMutable("AppendNewLine")
	c.children = append(c.children, NewLine())
	return c
}

// AppendNewLineIfNotEmpty appends a line break that is dropped if the
// current output line is still empty when it is reached.
func (c *CompositeNode) AppendNewLineIfNotEmpty() *CompositeNode {
	c.checkMutable("AppendNewLineIfNotEmpty")
	c.children = append(c.children, NewLineIfNotEmpty())
	return c
}

// AppendNewLineIfNotEmptyIf is AppendNewLineIfNotEmpty guarded by cond.
func (c *CompositeNode) AppendNewLineIfNotEmptyIf(cond bool) *CompositeNode {
	if cond {
		c.AppendNewLineIfNotEmpty()
	}
	return c
}

// AppendIndent wraps items in a new IndentNode configured by opts and
// appends that as a single child.
func (c *CompositeNode) AppendIndent(opts []IndentOption, items ...Generated) *CompositeNode {
	c.checkMutable("AppendIndent")
	ind := NewIndent(opts...)
	ind.Append(items...)
	ind.markParented("AppendIndent")
	c.children = append(c.children, ind)
	return c
}

// AppendIndentIf is AppendIndent guarded by cond.
func (c *CompositeNode) AppendIndentIf(cond bool, opts []IndentOption, items ...Generated) *CompositeNode {
	if cond {
		c.AppendIndent(opts, items...)
	}
	return c
}

// Append adds each item to the indent node's children, same semantics as
// CompositeNode.Append.
func (n *IndentNode) Append(items ...Generated) *IndentNode {
	appendAll("Append", &n.container, items)
	return n
}

// AppendIf appends items only if cond is true.
func (n *IndentNode) AppendIf(cond bool, items ...Generated) *IndentNode {
	if cond {
		n.Append(items...)
	}
	return n
}

// AppendNewLine appends an unconditional line break.
func (n *IndentNode) AppendNewLine() *IndentNode {
	n.checkMutable("AppendNewLine")
	n.children = append(n.children, NewLine())
	return n
}

// AppendNewLineIfNotEmpty appends a conditional line break.
func (n *IndentNode) AppendNewLineIfNotEmpty() *IndentNode {
	n.checkMutable("AppendNewLineIfNotEmpty")
	n.children = append(n.children, NewLineIfNotEmpty())
	return n
}

// AppendNewLineIfNotEmptyIf is AppendNewLineIfNotEmpty guarded by cond.
func (n *IndentNode) AppendNewLineIfNotEmptyIf(cond bool) *IndentNode {
	if cond {
		n.AppendNewLineIfNotEmpty()
	}
	return n
}

func splitLines(s string) []string {
	return NewlineRegexp.Split(s, -1)
}
