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

// listMarkerMatch is the result of parseListMarker: the recognized marker
// data plus the length, in columns, of just the marker characters
// themselves (not including any trailing padding spaces).
type listMarkerMatch struct {
	data      ListData
	markerLen int
}

// parseListMarker attempts to recognize a list marker at the start of
// rest, which is assumed to already have any leading indentation removed
// (§4.6). It reports ok=false if rest does not begin with a marker, or if
// it looks like a thematic break instead (a run of '-' or '*' wins as an
// hrule over a bullet marker).
func parseListMarker(rest string) (m listMarkerMatch, ok bool) {
	if parseThematicBreak(rest) {
		return listMarkerMatch{}, false
	}

	var markerLen int
	switch {
	case len(rest) > 0 && (rest[0] == '*' || rest[0] == '+' || rest[0] == '-'):
		m.data.Bullet = rest[0]
		markerLen = 1
	case len(rest) > 0 && isASCIIDigit(rest[0]):
		n := 0
		i := 0
		for i < len(rest) && isASCIIDigit(rest[i]) && i < 9 {
			n = n*10 + int(rest[i]-'0')
			i++
		}
		if i >= len(rest) || (rest[i] != '.' && rest[i] != ')') {
			return listMarkerMatch{}, false
		}
		m.data.Ordered = true
		m.data.Start = n
		m.data.Delimiter = rest[i]
		markerLen = i + 1
	default:
		return listMarkerMatch{}, false
	}

	afterMarker := rest[markerLen:]
	if afterMarker != "" && afterMarker[0] != ' ' && afterMarker[0] != '\t' {
		// Marker must be followed by whitespace or end of line.
		return listMarkerMatch{}, false
	}

	spacesAfter := 0
	for spacesAfter < len(afterMarker) && (afterMarker[spacesAfter] == ' ' || afterMarker[spacesAfter] == '\t') {
		spacesAfter++
	}
	blankItem := markerLen+spacesAfter == len(rest)

	switch {
	case blankItem, spacesAfter >= 5, spacesAfter < 1:
		m.data.Padding = markerLen + 1
	default:
		m.data.Padding = markerLen + spacesAfter
	}
	m.markerLen = markerLen
	return m, true
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
