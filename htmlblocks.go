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
	"regexp"
	"strings"

	"golang.org/x/net/html/atom"
)

// htmlBlockCondition is one row of the 7-condition table in spec.md §4.C
// that governs when a line of raw '<' content opens an HTML block, and
// what ends it again. Grounded on the teacher's parse_html.go table and
// blocks.py's HTML_BLOCK_OPEN/HTML_BLOCK_CLOSE regex pairs.
type htmlBlockCondition struct {
	open          *regexp.Regexp
	close_        *regexp.Regexp
	canInterruptP bool
}

var htmlBlockConditions = [8]htmlBlockCondition{
	{}, // unused; conditions are 1-indexed
	1: {
		open:          regexp.MustCompile(`(?i)^<(?:script|pre|style|textarea)(?:\s|>|$)`),
		close_:        regexp.MustCompile(`(?i)</(?:script|pre|style|textarea)>`),
		canInterruptP: true,
	},
	2: {
		open:          regexp.MustCompile(`^<!--`),
		close_:        regexp.MustCompile(`-->`),
		canInterruptP: true,
	},
	3: {
		open:          regexp.MustCompile(`^<\?`),
		close_:        regexp.MustCompile(`\?>`),
		canInterruptP: true,
	},
	4: {
		open:          regexp.MustCompile(`^<![A-Za-z]`),
		close_:        regexp.MustCompile(`>`),
		canInterruptP: true,
	},
	5: {
		open:          regexp.MustCompile(`^<!\[CDATA\[`),
		close_:        regexp.MustCompile(`\]\]>`),
		canInterruptP: true,
	},
	// Condition 6 (block-level tags) and 7 (any other complete open/close
	// tag) don't use a close_ regex: they end at the first blank line
	// (handled directly by blockRules[HTMLBlockKind].continue_).
	6: {canInterruptP: true},
	7: {canInterruptP: false},
}

var htmlTagNameRE = regexp.MustCompile(`^</?([A-Za-z][A-Za-z0-9-]*)`)

// condition7OpenRE recognizes a complete open tag or closing tag, the only
// content allowed (besides spaces) on a condition-7 HTML block's opening
// line.
var condition7OpenRE = regexp.MustCompile(`^(?:` +
	`<[A-Za-z][A-Za-z0-9-]*(?:\s+[A-Za-z_:][A-Za-z0-9_.:-]*(?:\s*=\s*(?:[^\s"'=<>` + "`" + `]+|'[^']*'|"[^"]*"))?)*\s*/?>` +
	`|</[A-Za-z][A-Za-z0-9-]*\s*>` +
	`)\s*$`)

// matchHTMLBlockStart reports which of the 7 HTML-block open conditions
// (1-7) the text at the start of a line satisfies, or 0 if none. inParagraph
// reports whether the current container being extended is a Paragraph: a
// condition that cannot interrupt a paragraph (only condition 7) fails in
// that context.
func matchHTMLBlockStart(line string, inParagraph bool) int {
	for n := 1; n <= 5; n++ {
		cond := htmlBlockConditions[n]
		if inParagraph && !cond.canInterruptP {
			continue
		}
		if cond.open.MatchString(line) {
			return n
		}
	}
	if !(inParagraph && !htmlBlockConditions[6].canInterruptP) {
		m := htmlTagNameRE.FindStringSubmatch(line)
		if m != nil && isHTMLBlockTagName(m[1]) {
			// Condition 6 requires the tag name be followed only by a
			// space, tab, '>', "/>", or end of line.
			rest := line[len(m[0]):]
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '>' ||
				strings.HasPrefix(rest, "/>") {
				return 6
			}
		}
	}
	if !(inParagraph && !htmlBlockConditions[7].canInterruptP) && condition7OpenRE.MatchString(line) {
		return 7
	}
	return 0
}

// isHTMLBlockTagName reports whether name is one of the block-level tag
// names enumerated by condition 6 (https://spec.commonmark.org/0.30/#html-blocks).
// Grounded on the teacher's use of golang.org/x/net/html/atom to look up
// the canonical HTML tag-name set, narrowed to the block-level subset by
// blockLevelAtoms.
func isHTMLBlockTagName(name string) bool {
	lower := strings.ToLower(name)
	// extraBlockLevelTagNames is checked first and unconditionally: some
	// of these names (e.g. "search") may or may not be defined by the
	// vendored atom table depending on its generation date, and the
	// block list always wins regardless of what atom reports for them.
	if extraBlockLevelTagNames[lower] {
		return true
	}
	a := atom.Lookup([]byte(lower))
	if a == 0 {
		return false
	}
	return blockLevelAtoms[a]
}

var blockLevelAtoms = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Base: true,
	atom.Basefont: true, atom.Blockquote: true, atom.Body: true, atom.Caption: true,
	atom.Center: true, atom.Col: true, atom.Colgroup: true, atom.Dd: true,
	atom.Details: true, atom.Dialog: true, atom.Dir: true, atom.Div: true, atom.Dl: true,
	atom.Dt: true, atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true,
	atom.Footer: true, atom.Form: true, atom.Frame: true, atom.Frameset: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Head: true, atom.Header: true, atom.Hr: true, atom.Html: true, atom.Iframe: true,
	atom.Legend: true, atom.Li: true, atom.Link: true, atom.Main: true, atom.Menu: true,
	atom.Nav: true, atom.Noframes: true, atom.Ol: true,
	atom.Optgroup: true, atom.Option: true, atom.P: true, atom.Param: true,
	atom.Section: true, atom.Summary: true, atom.Table: true,
	atom.Tbody: true, atom.Td: true, atom.Tfoot: true, atom.Th: true, atom.Thead: true,
	atom.Title: true, atom.Tr: true, atom.Track: true, atom.Ul: true,
}

var extraBlockLevelTagNames = map[string]bool{
	"menuitem": true,
	"search":   true,
}
