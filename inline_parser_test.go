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

func TestParseCodeSpan(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("`foo  bar`")
	if len(out) != 1 || out[0].Kind != CodeKind || out[0].Literal != "foo bar" {
		t.Fatalf("got %+v, want a single CodeKind node with collapsed spaces", out)
	}
}

func TestParseCodeSpanUnmatchedFallsBackToLiteral(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("``foo")
	var lit string
	for _, in := range out {
		lit += in.Literal
	}
	if lit != "``foo" {
		t.Fatalf("got %q, want the unmatched backtick run preserved literally", lit)
	}
	for _, in := range out {
		if in.Kind == CodeKind {
			t.Fatalf("an unmatched opening run must not produce a CodeKind node, got %+v", out)
		}
	}
}

func TestParseEntityNamed(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("&amp;")
	if len(out) != 1 || out[0].Kind != EntityKind || out[0].Literal != "&" {
		t.Fatalf("got %+v, want a decoded EntityKind node for &amp;", out)
	}
}

func TestParseEntityNumeric(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("&#65;")
	if len(out) != 1 || out[0].Kind != EntityKind || out[0].Literal != "A" {
		t.Fatalf("got %+v, want decimal numeric reference decoded to 'A'", out)
	}
}

func TestParseEntityHex(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("&#x41;")
	if len(out) != 1 || out[0].Kind != EntityKind || out[0].Literal != "A" {
		t.Fatalf("got %+v, want hex numeric reference decoded to 'A'", out)
	}
}

func TestParseEntityInvalidNameFallsBackToLiteral(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("&notarealentity;")
	if len(out) != 1 || out[0].Kind != StrKind || out[0].Literal != "&notarealentity;" {
		t.Fatalf("got %+v, want an unrecognized name preserved as a literal string", out)
	}
}

func TestParseEntityNumericOutOfRangeUsesReplacementChar(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("&#x110000;")
	if len(out) != 1 || out[0].Kind != EntityKind || out[0].Literal != "�" {
		t.Fatalf("got %+v, want the replacement character for an out-of-range code point", out)
	}
}

func TestParseEmailAutolink(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("<foo@bar.com>")
	if len(out) != 1 || out[0].Kind != LinkKind || out[0].Destination != "foo@bar.com" {
		t.Fatalf("got %+v, want a LinkKind node with the bare email as Destination", out)
	}
	if len(out[0].Children) != 1 || out[0].Children[0].Literal != "mailto:foo@bar.com" {
		t.Fatalf("got children %+v, want a single Str child prefixed with mailto:", out[0].Children)
	}
}

func TestParseURIAutolink(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("<https://example.com>")
	if len(out) != 1 || out[0].Kind != LinkKind || out[0].Destination != "https://example.com" {
		t.Fatalf("got %+v, want a LinkKind node for the URI autolink", out)
	}
}

func TestParseAngleBracketNotAnAutolinkFallsBackToLiteral(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("<not an autolink")
	if len(out) == 0 || out[0].Kind != StrKind || out[0].Literal != "<" {
		t.Fatalf("got %+v, want a literal '<' since raw HTML tags are a core stub", out)
	}
}

func TestParseBackslashEscape(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse(`\*foo\*`)
	var lit string
	for _, in := range out {
		lit += in.Literal
	}
	if lit != "*foo*" {
		t.Fatalf("got %q, want escaped asterisks preserved literally without triggering emphasis", lit)
	}
}

func TestParseBackslashEscapeNonPunctuationIsLiteralBackslash(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse(`\d`)
	var lit string
	for _, in := range out {
		lit += in.Literal
	}
	if lit != `\d` {
		t.Fatalf("got %q, want a bare backslash preserved before a non-punctuation character", lit)
	}
}

func TestParseHardBreak(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("foo  \nbar")
	found := false
	for _, in := range out {
		if in.Kind == HardbreakKind {
			found = true
		}
	}
	if !found {
		t.Fatalf("got %+v, want a HardbreakKind node for two trailing spaces before a newline", out)
	}
}

func TestParseSoftBreak(t *testing.T) {
	ip := NewInlineParser()
	out := ip.Parse("foo\nbar")
	found := false
	for _, in := range out {
		if in.Kind == SoftbreakKind {
			found = true
		}
	}
	if !found {
		t.Fatalf("got %+v, want a SoftbreakKind node for an unadorned newline", out)
	}
}

func TestParseReferenceIsAPermanentStub(t *testing.T) {
	ip := NewInlineParser()
	content, ok := ip.ParseReference("[foo]: /url")
	if ok || content != "[foo]: /url" {
		t.Fatalf("ParseReference must always fail and return its input unchanged, got (%q, %v)", content, ok)
	}
}
