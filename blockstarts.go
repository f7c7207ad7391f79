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
	"strings"
)

var (
	thematicBreakRE = regexp.MustCompile(`^(?:-[ \t]*){3,}$|^(?:_[ \t]*){3,}$|^(?:\*[ \t]*){3,}$`)
	atxOpenRE       = regexp.MustCompile(`^#{1,6}(?:[ \t]+|$)`)
	setextRE        = regexp.MustCompile(`^(=+|-+)[ \t]*$`)
)

// parseThematicBreak reports whether rest (indentation already stripped)
// is a run of three or more matching '-', '_' or '*' characters,
// optionally interspersed with spaces or tabs (§4.2(c).7).
func parseThematicBreak(rest string) bool {
	return thematicBreakRE.MatchString(rest)
}

// parseATXHeader recognizes an ATX heading start and returns its level
// and content with any opening run, required whitespace, and optional
// closing sequence removed (§4.2(c).3).
func parseATXHeader(rest string) (level int, content string, ok bool) {
	loc := atxOpenRE.FindStringIndex(rest)
	if loc == nil {
		return 0, "", false
	}
	hashes := 0
	for hashes < len(rest) && rest[hashes] == '#' {
		hashes++
	}
	content = strings.TrimLeft(rest[hashes:], " \t")
	content = strings.TrimRight(content, " \t")
	if content != "" {
		j := len(content)
		for j > 0 && content[j-1] == '#' {
			j--
		}
		if j < len(content) && (j == 0 || content[j-1] == ' ' || content[j-1] == '\t') {
			content = strings.TrimRight(content[:j], " \t")
		}
	}
	return hashes, content, true
}

// parseSetextUnderline recognizes a setext underline: a run of only '='
// (level 1) or only '-' (level 2), optionally followed by trailing
// whitespace (§4.2(c).6).
func parseSetextUnderline(rest string) (level int, ok bool) {
	m := setextRE.FindStringSubmatch(rest)
	if m == nil {
		return 0, false
	}
	if m[1][0] == '=' {
		return 1, true
	}
	return 2, true
}

// parseCodeFenceOpen recognizes a fenced code block's opening fence: a
// run of three or more '`' or '~', followed by an info string that, for
// backtick fences, must not itself contain a backtick (§4.2(c).4).
func parseCodeFenceOpen(rest string) (char byte, length int, info string, ok bool) {
	if len(rest) == 0 || (rest[0] != '`' && rest[0] != '~') {
		return 0, 0, "", false
	}
	char = rest[0]
	n := 0
	for n < len(rest) && rest[n] == char {
		n++
	}
	if n < 3 {
		return 0, 0, "", false
	}
	rawInfo := strings.TrimSpace(rest[n:])
	if char == '`' && strings.ContainsRune(rawInfo, '`') {
		return 0, 0, "", false
	}
	return char, n, processBackslashEscapes(rawInfo), true
}

// parseCodeFenceClose reports whether line is a closing fence for a fence
// opened with the given character and length: up to 3 columns of indent,
// a run of at least length of the same character, and nothing else but
// trailing whitespace (§4.2(d)).
func parseCodeFenceClose(line string, char byte, length int) bool {
	indent := countLeadingSpaces(line, 0)
	if indent > 3 {
		return false
	}
	rest := line[indent:]
	n := 0
	for n < len(rest) && rest[n] == char {
		n++
	}
	if n < length {
		return false
	}
	return strings.TrimSpace(rest[n:]) == ""
}

// countLeadingSpaces returns the number of consecutive space characters
// in line starting at from. Lines reaching block recognizers have
// already been detabbed (§4.1), so columns and byte offsets coincide.
func countLeadingSpaces(line string, from int) int {
	n := 0
	for from+n < len(line) && line[from+n] == ' ' {
		n++
	}
	return n
}

// firstNonSpace returns the index of the first non-space character in
// line at or after from, or len(line) if the remainder is blank.
func firstNonSpace(line string, from int) int {
	return from + countLeadingSpaces(line, from)
}

// isBlankFrom reports whether line, from the given offset, is empty or
// contains only spaces.
func isBlankFrom(line string, from int) bool {
	return firstNonSpace(line, from) == len(line)
}

// isBlankLine reports whether line is empty or contains only spaces.
func isBlankLine(line string) bool {
	return isBlankFrom(line, 0)
}

// processBackslashEscapes replaces a backslash followed by an ASCII
// punctuation character with that character alone (§4.5's backslash
// escape rule). It is applied to fenced code info strings; the inline
// parser handles escapes itself in parseBackslashEscape.
func processBackslashEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isASCIIPunctuation(s[i+1]) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// isASCIIPunctuation reports whether c is one of the ASCII punctuation
// characters eligible for backslash-escaping (§4.5).
func isASCIIPunctuation(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	default:
		return false
	}
}
