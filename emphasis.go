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

import "strings"

// scanDelims reports the length of the run of ch starting at the
// cursor's current position (without consuming it), and whether that run
// can open and/or can close emphasis (§4.5 Emphasis).
func scanDelims(c *textCursor, ch byte) (count int, canOpen, canClose bool) {
	for c.peekAt(count) == ch {
		count++
	}
	following := c.peekAt(count)
	var preceding byte
	if c.pos == 0 {
		preceding = '\n'
	} else {
		preceding = c.s[c.pos-1]
	}

	canOpen = count >= 1 && count <= 3 && !isDelimWhitespace(following) &&
		(ch != '_' || !isASCIIAlnum(preceding))
	canClose = count >= 1 && count <= 3 && !isDelimWhitespace(preceding) &&
		(ch != '_' || !isASCIIAlnum(following))
	return count, canOpen, canClose
}

// isDelimWhitespace treats end-of-subject (byte 0) as whitespace, per
// scan_delims' "the following character is not whitespace" rule applying
// uniformly at string boundaries.
func isDelimWhitespace(b byte) bool {
	switch b {
	case 0, ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// parseEmphasis implements §4.5's Emphasis construct and §9's
// provisional-then-rewrite pattern: it emits a provisional Str for the
// opening delimiter run, then — if the run can open — drives its own
// sub-loop of parse_inline calls looking for a valid closer, splicing
// the result in place of the provisional Str when one is found.
func (ip *InlineParser) parseEmphasis(c *textCursor, out *[]Inline) {
	ch := c.peek()
	count, canOpen, _ := scanDelims(c, ch)
	run := c.rest()[:count]
	c.advance(count)
	provIdx := len(*out)
	*out = append(*out, Inline{Kind: StrKind, Literal: run})

	if !canOpen || count == 0 {
		return
	}

	switch {
	case count >= 3:
		ip.resolveTripleDelim(c, out, provIdx, ch)
	case count == 2:
		ip.resolveDelim(c, out, provIdx, ch, 2, StrongKind)
	default:
		ip.resolveDelim(c, out, provIdx, ch, 1, EmphasisKind)
	}
}

// resolveDelim handles the k=1 and k=2 cases: scan forward for a closer
// of the same character requiring at least need delimiters, wrapping the
// span found in kind if one appears before the subject ends.
func (ip *InlineParser) resolveDelim(c *textCursor, out *[]Inline, provIdx int, ch byte, need int, kind InlineKind) {
	for !c.eof() {
		if c.peek() == ch {
			count, _, canClose := scanDelims(c, ch)
			if canClose && count >= need {
				c.advance(need)
				children := append([]Inline{}, (*out)[provIdx+1:]...)
				(*out)[provIdx] = Inline{Kind: kind, Children: children}
				*out = (*out)[:provIdx+1]
				return
			}
		}
		ip.parseInline(c, out)
	}
}

// resolveTripleDelim handles the k=3 case, which may need two closers to
// resolve into a nested Emphasis-inside-Strong or Strong-inside-Emphasis
// (§4.5 Emphasis, k=3 branch).
func (ip *InlineParser) resolveTripleDelim(c *textCursor, out *[]Inline, provIdx int, ch byte) {
	firstRaw := -1
	firstEffective := 0
	firstCloseIdx := -1

	for !c.eof() {
		if c.peek() == ch {
			count, _, canClose := scanDelims(c, ch)
			if canClose && count >= 1 && count <= 3 && (firstRaw == -1 || count != firstRaw) {
				effective := count
				if effective == 3 {
					effective = 1
				}
				c.advance(effective)

				if firstRaw == -1 {
					firstRaw = count
					firstEffective = effective
					*out = append(*out, Inline{Kind: StrKind, Literal: strings.Repeat(string(ch), effective)})
					firstCloseIdx = len(*out) - 1
					continue
				}

				deep := append([]Inline{}, (*out)[provIdx+1:firstCloseIdx]...)
				shallow := append([]Inline{}, (*out)[firstCloseIdx+1:]...)
				var inner, outer Inline
				if firstEffective == 1 {
					inner = Inline{Kind: EmphasisKind, Children: deep}
					outer = Inline{Kind: StrongKind, Children: append([]Inline{inner}, shallow...)}
				} else {
					inner = Inline{Kind: StrongKind, Children: deep}
					outer = Inline{Kind: EmphasisKind, Children: append([]Inline{inner}, shallow...)}
				}
				(*out)[provIdx] = outer
				*out = (*out)[:provIdx+1]
				return
			}
		}
		ip.parseInline(c, out)
	}
}
