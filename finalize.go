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
	"html"
	"regexp"
	"strings"
)

// trailingBlankLinesRE matches a run of trailing blank lines, collapsed to
// a single newline by the indented-code-block finalizer (spec.md §4.B).
var trailingBlankLinesRE = regexp.MustCompile(`(?:\r?\n[ \t]*)+$`)

func finalizeCodeBlock(p *Parser, block *Node) {
	content, _ := block.StringContent()
	data := block.code
	if data.IsFenced {
		newline := strings.IndexByte(content, '\n')
		if newline < 0 {
			newline = len(content)
		}
		firstLine := content[:newline]
		rest := ""
		if newline < len(content) {
			rest = content[newline+1:]
		}
		data.Info = unescapeString(html.UnescapeString(strings.TrimSpace(firstLine)))
		block.literal = rest
	} else {
		block.literal = trailingBlankLinesRE.ReplaceAllString(content, "\n")
	}
	block.content = nil
}

func finalizeHTMLBlock(p *Parser, block *Node) {
	content, _ := block.StringContent()
	block.literal = trailingBlankLinesRE.ReplaceAllString(content, "")
	block.content = nil
}

// finalizeParagraph implements spec.md §4.B's Paragraph finalize: strip
// leading link reference definitions from string_content, updating the
// parser's reference map, and unlink the node entirely if nothing but
// definitions remain.
func finalizeParagraph(p *Parser, block *Node) {
	content, _ := block.StringContent()
	hasRefs := false
	for strings.HasPrefix(content, "[") {
		rest, def, label, ok := parseLinkReferenceDefinition(content)
		if !ok {
			break
		}
		if _, exists := p.refMap[label]; !exists && label != "" {
			p.refMap[label] = def
		}
		content = rest
		hasRefs = true
	}
	if hasRefs {
		block.setStringContent(content)
		if isBlankLine(content) {
			block.Unlink()
		}
	}
}

// unescapeBackslashRE matches a backslash followed by an ASCII punctuation
// character, per https://spec.commonmark.org/0.30/#backslash-escapes.
var unescapeBackslashRE = regexp.MustCompile(`\\([!-/:-@\[-` + "`" + `{-~])`)

// unescapeString performs CommonMark backslash-escape removal. It is a
// narrow slice of the inline grammar needed to compute CodeBlock.info
// (spec.md §4.B); full inline backslash-escape handling belongs to the
// out-of-scope inline parser.
func unescapeString(s string) string {
	return unescapeBackslashRE.ReplaceAllString(s, "$1")
}
