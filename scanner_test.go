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

import "testing"

func TestScannerFindNextNonspace(t *testing.T) {
	tests := []struct {
		line       string
		wantOffset int
		wantColumn int
		wantIndent int
		wantBlank  bool
	}{
		{"", 0, 0, 0, true},
		{"foo", 0, 0, 0, false},
		{"   foo", 3, 3, 3, false},
		{"    foo", 4, 4, 4, false},
		{"\tfoo", 1, 4, 4, false},
		{"  \tfoo", 3, 4, 4, false}, // two spaces then a tab: tab stop at column 4
		{"   \n", 3, 3, 3, true},
		{"   ", 3, 3, 3, true},
	}
	for _, test := range tests {
		s := newScanner(test.line)
		if s.nextNonspace != test.wantOffset || s.nextNonspaceColumn != test.wantColumn ||
			s.indent != test.wantIndent || s.blank != test.wantBlank {
			t.Errorf("newScanner(%q) = {offset:%d col:%d indent:%d blank:%v}; want {%d %d %d %v}",
				test.line, s.nextNonspace, s.nextNonspaceColumn, s.indent, s.blank,
				test.wantOffset, test.wantColumn, test.wantIndent, test.wantBlank)
		}
	}
}

func TestScannerAdvanceOffsetSplitsTabs(t *testing.T) {
	s := newScanner("\tfoo")
	// A tab occupies columns 0-3. A request for 2 columns ends inside the
	// tab, so the tab is consumed whole: the offset steps past the tab byte
	// and the column lands on the next tab stop (4), not on column 2.
	s.advanceOffset(2, true)
	if s.offset != 1 || s.column != 4 {
		t.Errorf("after advanceOffset(2, true): offset=%d column=%d; want 1 4", s.offset, s.column)
	}
	s.advanceOffset(2, true)
	if s.offset != 3 || s.column != 6 {
		t.Errorf("after second advanceOffset(2, true): offset=%d column=%d; want 3 6", s.offset, s.column)
	}
}

func TestScannerIndented(t *testing.T) {
	if !newScanner("    x").indented() {
		t.Error("4 spaces should be indented")
	}
	if newScanner("   x").indented() {
		t.Error("3 spaces should not be indented")
	}
	if !newScanner("\tx").indented() {
		t.Error("a leading tab should be indented (expands to column 4)")
	}
}

func TestIsBlankLine(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t", true},
		{"a", false},
		{"  a", false},
	}
	for _, test := range tests {
		if got := isBlankLine(test.s); got != test.want {
			t.Errorf("isBlankLine(%q) = %v; want %v", test.s, got, test.want)
		}
	}
}
