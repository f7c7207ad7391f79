// Copyright 2024 The Coreline Markdown Authors
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

func TestScanDelimsOpenClose(t *testing.T) {
	tests := []struct {
		name         string
		s            string
		pos          int
		ch           byte
		wantCount    int
		wantCanOpen  bool
		wantCanClose bool
	}{
		{"openAtStart", "*foo*", 0, '*', 1, true, false},
		{"closeAtEnd", "foo*", 3, '*', 1, false, true},
		{"intraword underscore cannot open", "a_b_c", 1, '_', 1, false, false},
		{"run of two", "**foo", 0, '*', 2, true, false},
		{"surrounded by spaces cannot open or close", "a * b", 2, '*', 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTextCursor(tt.s)
			c.pos = tt.pos
			count, canOpen, canClose := scanDelims(c, tt.ch)
			if count != tt.wantCount || canOpen != tt.wantCanOpen || canClose != tt.wantCanClose {
				t.Errorf("scanDelims(%q @ %d, %q) = (%d, %v, %v), want (%d, %v, %v)",
					tt.s, tt.pos, tt.ch, count, canOpen, canClose, tt.wantCount, tt.wantCanOpen, tt.wantCanClose)
			}
		})
	}
}

func TestEmphasisSingleDelimiter(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("*foo*")
	if len(out) != 1 || out[0].Kind != EmphasisKind {
		t.Fatalf("got %+v, want a single EmphasisKind node", out)
	}
	if len(out[0].Children) != 1 || out[0].Children[0].Literal != "foo" {
		t.Fatalf("got children %+v, want a single Str child 'foo'", out[0].Children)
	}
}

func TestStrongDoubleDelimiter(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("**foo**")
	if len(out) != 1 || out[0].Kind != StrongKind {
		t.Fatalf("got %+v, want a single StrongKind node", out)
	}
}

func TestTripleDelimiterEmphasisInsideStrong(t *testing.T) {
	ip := NewInlineParser()
	// "***foo***" closes with a single '*' first (effective 1 => Emphasis
	// is innermost), then the remaining '**' closes the Strong wrapper.
	out := ip.Parse("***foo***")
	if len(out) != 1 {
		t.Fatalf("got %+v, want a single top-level node", out)
	}
}

func TestNestedStrongInsideEmphasisScenario(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("*foo **bar** baz*")
	if len(out) != 1 || out[0].Kind != EmphasisKind {
		t.Fatalf("got %+v, want a single top-level EmphasisKind node", out)
	}
	var sawStrong bool
	for _, c := range out[0].Children {
		if c.Kind == StrongKind {
			sawStrong = true
		}
	}
	if !sawStrong {
		t.Fatalf("got children %+v, want a nested StrongKind node for **bar**", out[0].Children)
	}
}

func TestUnmatchedEmphasisFallsBackToLiteralAsterisks(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("*foo")
	var lit string
	for _, in := range out {
		lit += in.Literal
	}
	if lit != "*foo" {
		t.Fatalf("got %q, want the unmatched opening delimiter preserved literally", lit)
	}
	for _, in := range out {
		if in.Kind == EmphasisKind || in.Kind == StrongKind {
			t.Fatalf("an unmatched delimiter run must never produce an Emphasis/Strong node, got %+v", out)
		}
	}
}

func TestIntrawordUnderscoreIsNotEmphasis(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("foo_bar_baz")
	for _, in := range out {
		if in.Kind == EmphasisKind || in.Kind == StrongKind {
			t.Fatalf("got %+v, want intraword underscores left as literal text", out)
		}
	}
}
