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

import "regexp"

// textCursor is a forward-only scan position over a string, used by the
// inline parser (§4.4, §4.5), including anchored regular-expression
// matches at the cursor. The block recognizers do not use it.
type textCursor struct {
	s   string
	pos int
}

func newTextCursor(s string) *textCursor {
	return &textCursor{s: s}
}

// eof reports whether the cursor has consumed the entire string.
func (c *textCursor) eof() bool { return c.pos >= len(c.s) }

// peek returns the byte at the cursor, or 0 at eof.
func (c *textCursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.s[c.pos]
}

// peekAt returns the byte n bytes past the cursor, or 0 past eof.
func (c *textCursor) peekAt(n int) byte {
	if c.pos+n >= len(c.s) {
		return 0
	}
	return c.s[c.pos+n]
}

// rest returns the unconsumed remainder of the string.
func (c *textCursor) rest() string { return c.s[c.pos:] }

// advance moves the cursor forward n bytes.
func (c *textCursor) advance(n int) { c.pos += n }

// match reports whether re matches at the current position, anchored to
// the start of the remaining text, and advances the cursor past the
// match. re must itself begin with "^" so that it cannot match further
// into the string than the cursor.
func (c *textCursor) match(re *regexp.Regexp) (string, bool) {
	loc := re.FindStringIndex(c.rest())
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	text := c.rest()[:loc[1]]
	c.advance(loc[1])
	return text, true
}

// literal reports whether the remaining text starts with s, advancing the
// cursor past it if so.
func (c *textCursor) literal(s string) bool {
	if len(c.rest()) < len(s) || c.rest()[:len(s)] != s {
		return false
	}
	c.advance(len(s))
	return true
}
