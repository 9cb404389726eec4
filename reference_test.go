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

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"foo", "foo"},
		{"FOO", "foo"},
		{"Foo Bar", "foo bar"},
		{"  Foo   Bar  ", "foo bar"},
	}
	for _, test := range tests {
		if got := normalizeLabel(test.label); got != test.want {
			t.Errorf("normalizeLabel(%q) = %q; want %q", test.label, got, test.want)
		}
	}
}

func TestParseLinkReferenceDefinition(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantOK    bool
		wantRest  string
		wantLabel string
		wantDest  string
		wantTitle string
	}{
		{
			name:      "simple",
			content:   "[foo]: /url \"title\"\n",
			wantOK:    true,
			wantRest:  "",
			wantLabel: "foo",
			wantDest:  "/url",
			wantTitle: "title",
		},
		{
			name:      "no title",
			content:   "[foo]: /url\n",
			wantOK:    true,
			wantRest:  "",
			wantLabel: "foo",
			wantDest:  "/url",
			wantTitle: "",
		},
		{
			name:      "angle bracket destination",
			content:   "[foo]: <my url>\n",
			wantOK:    true,
			wantRest:  "",
			wantLabel: "foo",
			wantDest:  "my url",
		},
		{
			name:      "followed by paragraph text",
			content:   "[foo]: /url\nbar baz\n",
			wantOK:    true,
			wantRest:  "bar baz\n",
			wantLabel: "foo",
			wantDest:  "/url",
		},
		{
			name:    "not a reference",
			content: "foo bar\n",
			wantOK:  false,
		},
		{
			name:    "missing destination",
			content: "[foo]:\n",
			wantOK:  false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rest, def, label, ok := parseLinkReferenceDefinition(test.content)
			if ok != test.wantOK {
				t.Fatalf("ok = %v; want %v", ok, test.wantOK)
			}
			if !ok {
				return
			}
			if rest != test.wantRest {
				t.Errorf("rest = %q; want %q", rest, test.wantRest)
			}
			if label != test.wantLabel {
				t.Errorf("label = %q; want %q", label, test.wantLabel)
			}
			if def.Destination != test.wantDest {
				t.Errorf("destination = %q; want %q", def.Destination, test.wantDest)
			}
			if def.Title != test.wantTitle {
				t.Errorf("title = %q; want %q", def.Title, test.wantTitle)
			}
		})
	}
}

func TestReferenceMapExtract(t *testing.T) {
	m := ReferenceMap{
		"foo bar": {Destination: "/url"},
	}
	def, ok := m.Extract("Foo   BAR")
	if !ok {
		t.Fatal("Extract(\"Foo   BAR\") did not find the normalized entry")
	}
	if def.Destination != "/url" {
		t.Errorf("destination = %q; want /url", def.Destination)
	}
	if _, ok := m["foo bar"]; ok {
		t.Error("Extract did not remove the entry")
	}
}
