// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package commonmark

// This file is the tree builder described in spec.md §4.D: it owns the
// document root, the "tip" (the deepest currently open node), and the
// operations that open, close, and finalize blocks. Grounded on
// blocks.py's Parser.add_child/close_unmatched_blocks/finalize and the
// teacher's equivalent openBlock/close in blocks.go.

// addChild appends a new, open node of kind as a child of the tip,
// finalizing the tip (and its ancestors, as needed) until one is found
// that can contain kind. columnOffset is the 0-based column the new
// block's first character starts at.
func (p *Parser) addChild(kind Kind, acceptsLines bool, columnOffset int) *Node {
	for !p.tip.Kind.CanContain(kind) {
		// Back-date the close to the tip's own last line, not the line
		// being incorporated now: the tip didn't match on this line (that
		// is why it's being forced closed to make room), so its span must
		// end where it last actually matched. Matches blocks.py's
		// Parser.add_child, which finalizes at line_number - 1.
		p.finalizeAt(p.tip, p.lineNumber-1)
	}
	child := newNode(kind, acceptsLines)
	child.SourcePos[0] = Position{Line: p.lineNumber, Column: columnOffset + 1}
	p.tip.AppendChild(child)
	p.tip = child
	return child
}

// closeUnmatchedBlocks finalizes every open descendant between the
// previous tip and lastMatchedContainer, as computed by phase 1. It is a
// no-op if phase 1 matched everything (allClosed).
func (p *Parser) closeUnmatchedBlocks() {
	if p.allClosed {
		return
	}
	for p.oldTip != p.lastMatchedContainer {
		parent := p.oldTip.Parent
		p.finalizeAt(p.oldTip, p.lineNumber-1)
		p.oldTip = parent
	}
	p.allClosed = true
}

// finalize closes block at the current line number. finalizeAt allows
// closing at an earlier line, used when back-closing blocks that didn't
// match on the current line.
func (p *Parser) finalize(block *Node) {
	p.finalizeAt(block, p.lineNumber)
}

func (p *Parser) finalizeAt(block *Node, lineNumber int) {
	parent := block.Parent
	block.IsOpen = false
	block.SourcePos[1] = Position{Line: lineNumber, Column: p.lastLineLength}
	if rule, ok := blockRules[block.Kind]; ok && rule.finalize != nil {
		rule.finalize(p, block)
	}
	p.tip = parent
}

// breakOutOfLists implements the "two blank lines end all lists" rule
// (spec.md §4.D): it finalizes block and every ancestor up through the
// outermost enclosing List, resetting the tip to that list's parent.
func (p *Parser) breakOutOfLists(block *Node) {
	var lastList *Node
	for b := block; b != nil; b = b.Parent {
		if b.Kind == ListKind {
			lastList = b
		}
	}
	if lastList == nil {
		return
	}
	for block != lastList {
		p.finalize(block)
		block = block.Parent
	}
	p.finalize(lastList)
}

// findTip returns the deepest open descendant of b (including b itself).
func findTip(b *Node) *Node {
	for b.LastChild != nil && b.LastChild.IsOpen {
		b = b.LastChild
	}
	return b
}
