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
	"strings"

	"go4.org/bytereplacer"
)

// lineEndingNormalizer collapses the three CommonMark line-ending forms
// (\r\n, \r, \n) to \n in a single pass.
var lineEndingNormalizer = bytereplacer.New(
	"\r\n", "\n",
	"\r", "\n",
)

// normalizeNewlines rewrites all line endings in s to \n.
func normalizeNewlines(s string) string {
	return string(lineEndingNormalizer.Replace([]byte(s)))
}

// splitLines splits a newline-normalized document into lines, dropping the
// empty trailing element produced when s ends in \n, and detabbing each
// line per detab.
func splitLines(s string) []string {
	parts := strings.Split(s, "\n")
	if strings.HasSuffix(s, "\n") {
		parts = parts[:len(parts)-1]
	}
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = detab(p)
	}
	return lines
}

// detab expands tabs to spaces so that each tab advances to the next
// column that is a multiple of tabStopSize, counted from the beginning of
// the line.
func detab(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	col := 0
	for _, r := range line {
		if r == '\t' {
			spaces := tabStopSize - col%tabStopSize
			for i := 0; i < spaces; i++ {
				b.WriteByte(' ')
			}
			col += spaces
		} else {
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// columnWidth returns the number of columns occupied by s when rendered
// starting at the given 0-based column, expanding tabs to the next
// multiple of tabStopSize. The block matcher and the new-block recognizers
// do not call it: they count spaces on lines that splitLines has already
// detabbed.
func columnWidth(startCol int, s string) int {
	col := startCol
	for _, r := range s {
		if r == '\t' {
			col += tabStopSize - col%tabStopSize
		} else {
			col++
		}
	}
	return col - startCol
}
