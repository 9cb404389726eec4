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

// tabStopSize is the multiple of columns that a tab advances to.
// https://spec.commonmark.org/0.30/#tabs
const tabStopSize = 4

// codeIndentLimit is the indent, in columns, required to start (or
// continue) an indented code block.
const codeIndentLimit = 4

// scanner is the per-line cursor described in spec.md §4.A. It tracks a
// byte offset and an expanded-tab column over a single line of input, and
// exposes the derived next-nonspace/indent/blank values the rest of the
// block parser reads on every line.
//
// Grounded on the teacher's lineParser (blocks.go) and on
// blocks.py's find_next_nonspace/advance_offset/advance_next_nonspace.
type scanner struct {
	line string

	offset int // byte index into line
	column int // 0-based expanded column

	nextNonspace       int // byte index of the next non-space, or len(line)
	nextNonspaceColumn int
	indent             int // nextNonspaceColumn - column
	blank              bool
}

func newScanner(line string) *scanner {
	s := &scanner{line: line}
	s.findNextNonspace()
	return s
}

// reset repositions the scanner at the start of a new line.
func (s *scanner) reset(line string) {
	s.line = line
	s.offset = 0
	s.column = 0
	s.findNextNonspace()
}

// indented reports whether the indent to the next non-space is >= 4 columns.
func (s *scanner) indented() bool {
	return s.indent >= codeIndentLimit
}

// findNextNonspace recomputes nextNonspace, nextNonspaceColumn, indent, and
// blank from the current offset/column.
func (s *scanner) findNextNonspace() {
	i := s.offset
	col := s.column
	for i < len(s.line) {
		switch s.line[i] {
		case ' ':
			i++
			col++
			continue
		case '\t':
			i++
			col += tabStopSize - (col % tabStopSize)
			continue
		}
		break
	}
	s.nextNonspace = i
	s.nextNonspaceColumn = col
	s.indent = s.nextNonspaceColumn - s.column
	s.blank = i >= len(s.line) || isEOLByte(s.line[i])
}

// advanceNextNonspace moves the cursor to the precomputed next non-space
// position.
func (s *scanner) advanceNextNonspace() {
	s.offset = s.nextNonspace
	s.column = s.nextNonspaceColumn
}

// advanceOffset moves the cursor forward by count units: columns if
// inColumns is true, byte positions otherwise. A tab character always
// advances the column to the next tab stop regardless of mode; inColumns
// governs only how much of count that jump consumes. A column count that
// ends partway through a tab still consumes the whole tab: the offset moves
// past it and the column lands on the next tab stop.
func (s *scanner) advanceOffset(count int, inColumns bool) {
	for count > 0 && s.offset < len(s.line) {
		if s.line[s.offset] == '\t' {
			charsToTab := tabStopSize - (s.column % tabStopSize)
			s.column += charsToTab
			s.offset++
			if inColumns {
				count -= charsToTab
			} else {
				count--
			}
		} else {
			s.offset++
			s.column++
			count--
		}
	}
	s.findNextNonspace()
}

// bytesAfterIndent returns the remainder of the line starting at the
// precomputed next non-space position.
func (s *scanner) bytesAfterIndent() string {
	return s.line[s.nextNonspace:]
}

func isEOLByte(b byte) bool {
	return b == '\n' || b == '\r'
}

func isBlankLine(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return false
		}
	}
	return true
}

// peekByte returns the byte at i in s, and whether i is in range.
func peekByte(s string, i int) (byte, bool) {
	if i < 0 || i >= len(s) {
		return 0, false
	}
	return s[i], true
}

