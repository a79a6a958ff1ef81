// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package gennode builds formatted, indented text from a small tree of
// composable nodes instead of ad-hoc string concatenation.
//
// A GeneratorNode is one of four sealed variants: a text leaf, a line
// break, an indented region, or a composite of children. Nodes are
// assembled with the CompositeNode builder methods and rendered with
// Serialize. The template helpers (ExpandToNode, ExpandToString,
// JoinToNode) build node trees from Go's closest analog of a tagged
// template literal: an explicit slice of static parts interleaved with
// substitutions.
package gennode
