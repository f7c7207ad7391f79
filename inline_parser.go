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

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var (
	entityRE         = regexp.MustCompile(`(?i)^&(#x[a-f0-9]{1,8}|#[0-9]{1,8}|[a-z][a-z0-9]{1,31});`)
	emailAutolinkRE  = regexp.MustCompile(`^<([a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+)>`)
	uriAutolinkRE    = regexp.MustCompile(`(?i)^<([a-zA-Z][a-zA-Z0-9+.-]{1,31}:[^<> \x00-\x1f]*)>`)
	codeSpanSpacesRE = regexp.MustCompile(`[ \n]+`)
)

// InlineParser runs the inline phase of the CommonMark algorithm: given a
// leaf block's accumulated string content, it produces a flat sequence
// of [Inline] nodes (§4.4, §4.5).
//
// Link, image, raw inline HTML tag, and reference-definition recognition
// are declared interface points here, not implementations: per §4.5 and
// §9 they always fail to match in the core, so a literal `[`, `!`, or
// unrecognized `<...>` is emitted as plain text. A complete Markdown
// renderer supplies these on top of this package.
type InlineParser struct{}

// NewInlineParser returns an InlineParser ready to use. The zero value is
// also usable; this constructor exists for symmetry with
// [NewDocumentParser] and to leave room for future configuration.
func NewInlineParser() *InlineParser {
	return &InlineParser{}
}

// Parse runs the inline phase over subject, returning its inline nodes
// (§4.4).
func (ip *InlineParser) Parse(subject string) []Inline {
	c := newTextCursor(subject)
	var out []Inline
	for !c.eof() {
		ip.parseInline(c, &out)
	}
	return out
}

// ParseReference is the interface point named in §4.3 and §6: core's
// implementation is a stub that never recognizes a reference definition,
// per §4.5's "declared interfaces in the core (stubs that always return
// false)" and §9's note that reference-definition parsing is out of
// scope here. A complete implementation replaces this with real
// label/destination/title parsing.
func (ip *InlineParser) ParseReference(content string) (string, bool) {
	return content, false
}

// parseInline consumes exactly one construct at the cursor and appends
// its result (or results) to out (§4.4's dispatch table). Every branch
// advances the cursor by at least one byte, so repeated calls terminate.
func (ip *InlineParser) parseInline(c *textCursor, out *[]Inline) {
	switch c.peek() {
	case '\n':
		ip.parseNewline(c, out)
	case '\\':
		ip.parseBackslashEscape(c, out)
	case '`':
		ip.parseCodeSpan(c, out)
	case '*', '_':
		ip.parseEmphasis(c, out)
	case '[', '!':
		// Link and image recognition are stubs in the core (§4.5); treat
		// the bracket as literal text.
		ch := c.peek()
		c.advance(1)
		*out = append(*out, Inline{Kind: StrKind, Literal: string(ch)})
	case '<':
		ip.parseAngleBracket(c, out)
	case '&':
		ip.parseEntity(c, out)
	default:
		ip.parseString(c, out)
	}
}

// specialBytes is the set of bytes that parse_string must stop before,
// because parse_inline has a dedicated handler for them.
const specialBytes = "\n\\`*_[!<&"

// parseString consumes a maximal run of bytes that does not begin one of
// the special constructs, and appends it as Str (§4.4).
func (ip *InlineParser) parseString(c *textCursor, out *[]Inline) {
	start := c.pos
	for !c.eof() && !strings.ContainsRune(specialBytes, rune(c.peek())) {
		c.advance(1)
	}
	if c.pos == start {
		// Nothing recognized and not a special byte either (shouldn't
		// happen since the default case only runs for non-special
		// bytes); consume one byte defensively so parsing terminates.
		c.advance(1)
	}
	*out = append(*out, Inline{Kind: StrKind, Literal: c.s[start:c.pos]})
}

// parseNewline implements §4.5's Newline construct.
func (ip *InlineParser) parseNewline(c *textCursor, out *[]Inline) {
	c.advance(1)
	hard := false
	if n := len(*out); n > 0 && (*out)[n-1].Kind == StrKind {
		s := (*out)[n-1].Literal
		trimmed := strings.TrimRight(s, " ")
		if len(s)-len(trimmed) >= 2 {
			hard = true
		}
		(*out)[n-1].Literal = trimmed
	}
	for !c.eof() && c.peek() == ' ' {
		c.advance(1)
	}
	if hard {
		*out = append(*out, Inline{Kind: HardbreakKind})
	} else {
		*out = append(*out, Inline{Kind: SoftbreakKind})
	}
}

// parseBackslashEscape implements §4.5's Backslash escape construct.
func (ip *InlineParser) parseBackslashEscape(c *textCursor, out *[]Inline) {
	c.advance(1)
	next := c.peek()
	switch {
	case next == '\n':
		c.advance(1)
		*out = append(*out, Inline{Kind: HardbreakKind})
	case next != 0 && isASCIIPunctuation(next):
		c.advance(1)
		*out = append(*out, Inline{Kind: StrKind, Literal: string(next)})
	default:
		*out = append(*out, Inline{Kind: StrKind, Literal: "\\"})
	}
}

// parseCodeSpan implements §4.5's Code span construct.
func (ip *InlineParser) parseCodeSpan(c *textCursor, out *[]Inline) {
	k := 0
	for c.peekAt(k) == '`' {
		k++
	}
	c.advance(k)
	contentStart := c.pos

	for {
		if c.eof() {
			c.pos = contentStart
			*out = append(*out, Inline{Kind: StrKind, Literal: strings.Repeat("`", k)})
			return
		}
		if c.peek() != '`' {
			c.advance(1)
			continue
		}
		runStart := c.pos
		runLen := 0
		for c.peekAt(runLen) == '`' {
			runLen++
		}
		if runLen == k {
			content := c.s[contentStart:runStart]
			c.advance(runLen)
			*out = append(*out, Inline{Kind: CodeKind, Literal: normalizeCodeSpan(content)})
			return
		}
		c.advance(runLen)
	}
}

// normalizeCodeSpan collapses interior runs of spaces and newlines to a
// single space and trims the result (§4.5).
func normalizeCodeSpan(s string) string {
	return strings.Trim(codeSpanSpacesRE.ReplaceAllString(s, " "), " ")
}

// parseAngleBracket implements §4.5's Autolink construct, falling back to
// a literal '<' since raw inline HTML recognition is a core stub.
func (ip *InlineParser) parseAngleBracket(c *textCursor, out *[]Inline) {
	if m := emailAutolinkRE.FindStringSubmatch(c.rest()); m != nil {
		c.advance(len(m[0]))
		*out = append(*out, Inline{
			Kind:        LinkKind,
			Destination: m[1],
			Children:    []Inline{{Kind: StrKind, Literal: "mailto:" + m[1]}},
		})
		return
	}
	if m := uriAutolinkRE.FindStringSubmatch(c.rest()); m != nil {
		c.advance(len(m[0]))
		*out = append(*out, Inline{
			Kind:        LinkKind,
			Destination: m[1],
			Children:    []Inline{{Kind: StrKind, Literal: m[1]}},
		})
		return
	}
	c.advance(1)
	*out = append(*out, Inline{Kind: StrKind, Literal: "<"})
}

// parseEntity implements §4.5's Entity construct, additionally validating
// named references against the real HTML5 entity table rather than
// accepting any syntactically-shaped name (SPEC_FULL.md domain stack).
func (ip *InlineParser) parseEntity(c *textCursor, out *[]Inline) {
	if text, ok := c.match(entityRE); ok {
		if lit, ok := decodeEntity(text); ok {
			*out = append(*out, Inline{Kind: EntityKind, Literal: lit})
			return
		}
		*out = append(*out, Inline{Kind: StrKind, Literal: text})
		return
	}
	c.advance(1)
	*out = append(*out, Inline{Kind: StrKind, Literal: "&"})
}

// decodeEntity decodes the text of a matched entity reference (including
// its leading '&' and trailing ';') to the literal text it represents.
func decodeEntity(text string) (string, bool) {
	inner := text[1 : len(text)-1]
	switch {
	case strings.HasPrefix(inner, "#x") || strings.HasPrefix(inner, "#X"):
		n, err := strconv.ParseInt(inner[2:], 16, 32)
		if err != nil {
			return "", false
		}
		return decodeCodePoint(rune(n)), true
	case strings.HasPrefix(inner, "#"):
		n, err := strconv.ParseInt(inner[1:], 10, 32)
		if err != nil {
			return "", false
		}
		return decodeCodePoint(rune(n)), true
	default:
		name := text[1:]
		if r, ok := html.Entity[name]; ok {
			return string(r), true
		}
		if r2, ok := html.Entity2[name]; ok {
			return string(r2[0]) + string(r2[1]), true
		}
		return "", false
	}
}

// decodeCodePoint returns the replacement character for numeric
// character references that are null, surrogate, or out of range, per
// CommonMark's entity-decoding rule.
func decodeCodePoint(r rune) string {
	if r <= 0 || r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
		return "�"
	}
	return string(r)
}

func isASCIIAlnum(c byte) bool {
	return isASCIIAlpha(c) || isASCIIDigit(c)
}
