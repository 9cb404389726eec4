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

import "strings"

// InlineParser resolves the raw text of a Paragraph or Heading leaf into
// inline children (emphasis, links, code spans, and so on). It is an
// external collaborator: this package only calls it once per leaf, after
// the block tree is fully built, and shares its [ReferenceMap] so the
// inline parser can resolve reference-style links. spec.md §1 names this
// interface without constraining its implementation; [NewParser] falls
// back to [defaultInlineParser] when opts.InlineParser is nil.
type InlineParser interface {
	// ParseInlines reads n.StringContent() and appends inline children to
	// n via [Node.AppendChild]. refs holds every link reference
	// definition collected while parsing the document.
	ParseInlines(n *Node, refs ReferenceMap)
}

// defaultInlineParser is a minimal InlineParser used when the caller
// supplies none: it recognizes only line breaks (hard and soft), leaving
// everything else as literal text. A full implementation (emphasis,
// links, code spans, autolinks, raw HTML, entity and backslash escapes)
// is out of scope for this package; see spec.md §1 and §5.
type defaultInlineParser struct{}

func (defaultInlineParser) ParseInlines(n *Node, refs ReferenceMap) {
	content, ok := n.StringContent()
	if !ok {
		return
	}
	content = strings.TrimRight(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		hard := strings.HasSuffix(line, "\\")
		trimmed := strings.TrimRight(line, " \t")
		hard = hard || len(line)-len(trimmed) >= 2
		text := strings.TrimSuffix(trimmed, "\\")
		if text != "" {
			t := newNode(TextKind, false)
			t.literal = text
			n.AppendChild(t)
		}
		if i < len(lines)-1 {
			breakKind := SoftLineBreakKind
			if hard {
				breakKind = HardLineBreakKind
			}
			b := newNode(breakKind, false)
			n.AppendChild(b)
		}
	}
}
