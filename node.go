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

import (
	"strconv"
	"strings"
)

// Kind is a tag identifying the type of a [Node].
// The low values are block kinds produced by this package;
// values at or above [firstInlineKind] are inline kinds
// owned by whatever [InlineParser] populated them.
type Kind uint16

// Block kinds.
const (
	// DocumentKind is the kind of the root of every tree Parse returns.
	DocumentKind Kind = 1 + iota
	// BlockQuoteKind is a container introduced by a leading '>'.
	BlockQuoteKind
	// ListKind groups a run of same-type ListItemKind children.
	ListKind
	// ListItemKind is a single item of a [ListKind].
	ListItemKind
	// HeadingKind is either an ATX (#) or setext (underlined) heading.
	// Use [Node.HeadingLevel] to distinguish the level.
	HeadingKind
	// ThematicBreakKind is a horizontal rule. It never has children.
	ThematicBreakKind
	// CodeBlockKind is a fenced or indented code block.
	CodeBlockKind
	// HTMLBlockKind is a raw block of HTML.
	HTMLBlockKind
	// ParagraphKind is a run of text lines.
	ParagraphKind

	firstInlineKind
)

// Inline kinds populated by [defaultInlineParser].
// A richer InlineParser implementation is free to define its own
// values at or above firstInlineKind; these three are only the
// ones this package's default implementation produces.
const (
	// TextKind is a run of literal text.
	TextKind Kind = firstInlineKind + iota
	// SoftLineBreakKind is a line break within a paragraph
	// that renderers may collapse to a space.
	SoftLineBreakKind
	// HardLineBreakKind is an explicit line break (trailing backslash
	// or two or more trailing spaces).
	HardLineBreakKind
)

func (k Kind) String() string {
	switch k {
	case DocumentKind:
		return "Document"
	case BlockQuoteKind:
		return "BlockQuote"
	case ListKind:
		return "List"
	case ListItemKind:
		return "Item"
	case HeadingKind:
		return "Heading"
	case ThematicBreakKind:
		return "ThematicBreak"
	case CodeBlockKind:
		return "CodeBlock"
	case HTMLBlockKind:
		return "HtmlBlock"
	case ParagraphKind:
		return "Paragraph"
	case TextKind:
		return "Text"
	case SoftLineBreakKind:
		return "SoftLineBreak"
	case HardLineBreakKind:
		return "HardLineBreak"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsContainer reports whether nodes of this kind may have children.
func (k Kind) IsContainer() bool {
	switch k {
	case DocumentKind, BlockQuoteKind, ListKind, ListItemKind:
		return true
	default:
		return false
	}
}

// ListData holds the kind-specific fields of a [ListKind] or [ListItemKind]
// node (spec.md §3's list_data).
type ListData struct {
	Ordered bool
	// BulletChar is the bullet character ('-', '+', or '*') for an
	// unordered list, or zero for an ordered list.
	BulletChar byte
	// Start is the first item's ordinal for an ordered list.
	Start int
	// Delimiter is the character following the ordinal ('.' or ')')
	// for an ordered list, or zero for an unordered list.
	Delimiter byte
	// Padding is the number of columns from the start of the line
	// to the first content column after the marker.
	Padding int
	// MarkerOffset is the indentation of the marker itself.
	MarkerOffset int
	// Tight is computed at List finalize time; see blockRule for ListKind.
	Tight bool
}

// CodeBlockData holds the kind-specific fields of a [CodeBlockKind] node.
type CodeBlockData struct {
	IsFenced    bool
	FenceChar   byte
	FenceLength int
	FenceOffset int
	// Info is the fence's info string, populated at finalize.
	Info string
}

// Node is a generic element of the tree Parse produces: a block
// (document, block quote, list, list item, heading, thematic break, code
// block, HTML block, paragraph) or — once an [InlineParser] has run — one
// of its inline children.
//
// The zero Node is not valid; construct trees through [Parse] or the
// tree-building helpers in this package.
type Node struct {
	Kind Kind

	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	IsOpen        bool
	LastLineBlank bool
	SourcePos     SourceSpan

	// content accumulates raw line text for leaves with AcceptsLines.
	// Code and HTML blocks set it to nil at finalize; paragraphs and
	// headings keep it until Parse's inline pass has read it, and Parse
	// then sets it to nil. Clearing it lets the builder's buffer be
	// reclaimed, per §5's resource-lifetime note.
	content *strings.Builder
	literal string

	// Kind-specific data. At most one of these is meaningful for any
	// given node, selected by Kind -- this mirrors the teacher's reuse
	// of a handful of untyped fields (n, char, listLoose) rather than
	// allocating a distinct Go type per kind, but keeps each field
	// named and typed for clarity.
	headingLevel int
	list         *ListData
	code         *CodeBlockData
	htmlBlockNum int // 1..7, valid when Kind == HTMLBlockKind
}

// newNode creates a detached, open node of kind, ready to accept lines
// if acceptsLines is true.
func newNode(kind Kind, acceptsLines bool) *Node {
	n := &Node{Kind: kind, IsOpen: true}
	if acceptsLines {
		n.content = new(strings.Builder)
	}
	return n
}

// HeadingLevel returns the 1-6 level of a [HeadingKind] node, or 0 otherwise.
func (n *Node) HeadingLevel() int {
	if n == nil || n.Kind != HeadingKind {
		return 0
	}
	return n.headingLevel
}

// ListData returns the list-specific data of a [ListKind] or [ListItemKind]
// node, or nil otherwise.
func (n *Node) ListData() *ListData {
	if n == nil || (n.Kind != ListKind && n.Kind != ListItemKind) {
		return nil
	}
	return n.list
}

// ListItemNumber returns the parsed ordinal of an ordered [ListItemKind]
// node (e.g. 2 for a marker written "2."), or -1 if n is not an ordered
// list item. Grounded on the teacher's (*Block).ListItemNumber; unlike
// the teacher, which re-parses the marker text on demand, this package
// already retains each item's own parsed [ListData] from [parseListMarker],
// so the ordinal is simply read back from it.
func (n *Node) ListItemNumber() int {
	if n == nil || n.Kind != ListItemKind || n.list == nil || !n.list.Ordered {
		return -1
	}
	return n.list.Start
}

// CodeBlockData returns the code-block-specific data of a [CodeBlockKind]
// node, or nil otherwise.
func (n *Node) CodeBlockData() *CodeBlockData {
	if n == nil || n.Kind != CodeBlockKind {
		return nil
	}
	return n.code
}

// HTMLBlockType returns the 1-7 condition index that opened an
// [HTMLBlockKind] node, or 0 otherwise.
func (n *Node) HTMLBlockType() int {
	if n == nil || n.Kind != HTMLBlockKind {
		return 0
	}
	return n.htmlBlockNum
}

// Literal returns the text payload of a node: set when a code or HTML
// block is finalized, or by the inline parser for Text nodes; empty
// otherwise (including paragraphs, headings and container kinds).
func (n *Node) Literal() string {
	if n == nil {
		return ""
	}
	return n.literal
}

// StringContent returns the leaf's accumulated raw content and true,
// or ("", false) if the node is a container or has already been finalized.
func (n *Node) StringContent() (string, bool) {
	if n == nil || n.content == nil {
		return "", false
	}
	return n.content.String(), true
}

func (n *Node) appendLine(s string) {
	n.content.WriteString(s)
	n.content.WriteByte('\n')
}

func (n *Node) setStringContent(s string) {
	n.content = new(strings.Builder)
	n.content.WriteString(s)
}

// CanContain reports whether a node of this kind may directly contain a
// child of kind childKind (spec.md §3's can_contain table).
func (k Kind) CanContain(childKind Kind) bool {
	switch k {
	case DocumentKind, BlockQuoteKind:
		return childKind != ListItemKind && childKind < firstInlineKind
	case ListKind:
		return childKind == ListItemKind
	case ListItemKind:
		return childKind != ListItemKind && childKind < firstInlineKind
	default:
		return false
	}
}

// AppendChild appends child as the last child of parent,
// wiring up Parent/Prev/Next/FirstChild/LastChild.
func (parent *Node) AppendChild(child *Node) {
	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil
	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// InsertAfter inserts node immediately after ref in ref's parent's child
// list. Used by the setext-heading rule (spec.md §4.C rule 5) to splice a
// Heading in at a Paragraph's position.
func (ref *Node) InsertAfter(node *Node) {
	parent := ref.Parent
	node.Parent = parent
	node.Prev = ref
	node.Next = ref.Next
	if ref.Next != nil {
		ref.Next.Prev = node
	} else {
		parent.LastChild = node
	}
	ref.Next = node
}

// Unlink detaches n from its parent and siblings. Used when a paragraph's
// content turns out to have been entirely link reference definitions
// (spec.md §4.B Paragraph finalize).
func (n *Node) Unlink() {
	parent := n.Parent
	if parent == nil {
		return
	}
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		parent.FirstChild = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		parent.LastChild = n.Prev
	}
	n.Parent, n.Prev, n.Next = nil, nil, nil
}

// Children returns the node's children as a slice, for convenience in
// callers that don't want to walk Next pointers by hand. It allocates;
// hot paths should use FirstChild/Next directly.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}
