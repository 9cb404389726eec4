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

// Continuation outcomes for blockRule.continue, per spec.md §4.B.
const (
	// continueMatched means the container continues onto this line.
	continueMatched = 0
	// continueFailed means the container does not continue; close it.
	continueFailed = 1
	// continueConsumedLine means the rule consumed the whole line itself
	// (fenced-code closing fence); stop processing this line entirely.
	continueConsumedLine = 2
)

// blockRule is the per-kind behavior table described in spec.md §4.B:
// continuation, finalization, and whether the kind accumulates raw lines.
// can_contain is handled separately by [Kind.CanContain] since it depends
// only on the two kinds involved, not on parser state.
type blockRule struct {
	// continue decides whether container is still open for this line.
	// Returns one of continueMatched/continueFailed/continueConsumedLine.
	// nil is only valid for kinds that can never be a continuing
	// container tip across lines (Heading, ThematicBreak): such kinds
	// are always finalized in the same call that opens them.
	continue_ func(p *Parser, container *Node) int

	// finalize runs kind-specific post-processing when the block closes.
	finalize func(p *Parser, block *Node)

	acceptsLines bool
}

var blockRules = map[Kind]blockRule{
	DocumentKind: {
		continue_: func(p *Parser, container *Node) int { return continueMatched },
	},
	BlockQuoteKind: {
		continue_: func(p *Parser, container *Node) int {
			s := p.cur
			if s.indented() || s.bytesAfterIndent() == "" || s.bytesAfterIndent()[0] != '>' {
				return continueFailed
			}
			s.advanceNextNonspace()
			s.advanceOffset(1, false)
			if s.offset < len(s.line) && s.line[s.offset] == ' ' {
				s.advanceOffset(1, false)
			}
			return continueMatched
		},
	},
	ListKind: {
		continue_:  func(p *Parser, container *Node) int { return continueMatched },
		finalize:   finalizeList,
	},
	ListItemKind: {
		continue_: func(p *Parser, container *Node) int {
			s := p.cur
			data := container.list
			switch {
			case s.blank:
				if container.FirstChild == nil {
					// A list item can begin with at most one blank line.
					return continueFailed
				}
				s.advanceNextNonspace()
				return continueMatched
			case s.indent >= data.MarkerOffset+data.Padding:
				s.advanceOffset(data.MarkerOffset+data.Padding, true)
				return continueMatched
			default:
				return continueFailed
			}
		},
	},
	HeadingKind: {
		continue_: func(p *Parser, container *Node) int { return continueFailed },
	},
	ThematicBreakKind: {
		continue_: func(p *Parser, container *Node) int { return continueFailed },
	},
	CodeBlockKind: {
		continue_: func(p *Parser, container *Node) int {
			s := p.cur
			data := container.code
			if data.IsFenced {
				if !s.indented() {
					if closeLen := matchClosingFence(s.bytesAfterIndent(), data.FenceChar, data.FenceLength); closeLen >= 0 {
						p.finalize(container)
						return continueConsumedLine
					}
				}
				i := data.FenceOffset
				for i > 0 && s.offset < len(s.line) && s.line[s.offset] == ' ' {
					s.advanceOffset(1, false)
					i--
				}
				return continueMatched
			}
			// Indented code block.
			switch {
			case s.indent >= codeIndentLimit:
				s.advanceOffset(codeIndentLimit, true)
				return continueMatched
			case s.blank:
				s.advanceNextNonspace()
				return continueMatched
			default:
				return continueFailed
			}
		},
		finalize:     finalizeCodeBlock,
		acceptsLines: true,
	},
	HTMLBlockKind: {
		continue_: func(p *Parser, container *Node) int {
			s := p.cur
			n := container.htmlBlockNum
			if s.blank && (n == 6 || n == 7) {
				return continueFailed
			}
			return continueMatched
		},
		finalize:     finalizeHTMLBlock,
		acceptsLines: true,
	},
	ParagraphKind: {
		continue_: func(p *Parser, container *Node) int {
			if p.cur.blank {
				return continueFailed
			}
			return continueMatched
		},
		finalize:     finalizeParagraph,
		acceptsLines: true,
	},
}

// finalizeList computes the List node's Tight flag (spec.md §4.B List
// finalize): loose if any non-final item, or any non-terminal child of an
// item, ends with a blank line.
func finalizeList(p *Parser, block *Node) {
	data := block.list
	data.Tight = true
determineLoose:
	for item := block.FirstChild; item != nil; item = item.Next {
		if item.Next != nil && endsWithBlankLine(item) {
			data.Tight = false
			break determineLoose
		}
		for sub := item.FirstChild; sub != nil; sub = sub.Next {
			if (item.Next != nil || sub.Next != nil) && endsWithBlankLine(sub) {
				data.Tight = false
				break determineLoose
			}
		}
	}
	if !data.Tight {
		for item := block.FirstChild; item != nil; item = item.Next {
			if item.list != nil {
				item.list.Tight = false
			}
		}
	}
}

// endsWithBlankLine implements spec.md §4.B's "ends with a blank line"
// helper: descend through Lists and Items to their last child, otherwise
// report the block's own LastLineBlank.
func endsWithBlankLine(block *Node) bool {
	for block != nil {
		if block.LastLineBlank {
			return true
		}
		if block.Kind != ListKind && block.Kind != ListItemKind {
			return false
		}
		block = block.LastChild
	}
	return false
}
