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

	"golang.org/x/net/html/atom"
)

// htmlBlockCondition identifies which of the seven start conditions
// opened an HTMLBlockKind block. The condition determines what closes it.
type htmlBlockCondition int

const (
	htmlCondScriptPreStyle htmlBlockCondition = 1 + iota
	htmlCondComment
	htmlCondProcessingInstruction
	htmlCondDeclaration
	htmlCondCDATA
	htmlCondBlockTag
	htmlCondCompleteTag
)

var (
	htmlOpenTagRE  = regexp.MustCompile(`^<[A-Za-z][A-Za-z0-9-]*(?:[ \t\r\n]+[A-Za-z_:][A-Za-z0-9_.:-]*(?:[ \t\r\n]*=[ \t\r\n]*(?:"[^"]*"|'[^']*'|[^ \t\r\n"'=<>` + "`" + `]+))?)*[ \t\r\n]*/?>[ \t]*$`)
	htmlCloseTagRE = regexp.MustCompile(`^</[A-Za-z][A-Za-z0-9-]*[ \t\r\n]*>[ \t]*$`)
	htmlTagNameRE  = regexp.MustCompile(`^</?([A-Za-z][A-Za-z0-9-]*)`)
)

// htmlBlockTagAtoms is the set of HTML5 tag names that can open an
// HTMLBlockKind by condition 6: any block-level tag name, followed by
// whitespace, end of line, '>' or "/>", not requiring a complete tag. Built from [atom.Atom] constants so
// that the tag vocabulary is the same one golang.org/x/net/html uses to
// classify elements, rather than a hand-maintained string list.
var htmlBlockTagAtoms = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Base: true,
	atom.Basefont: true, atom.Blockquote: true, atom.Body: true, atom.Caption: true,
	atom.Center: true, atom.Col: true, atom.Colgroup: true, atom.Dd: true,
	atom.Details: true, atom.Dialog: true, atom.Dir: true, atom.Div: true,
	atom.Dl: true, atom.Dt: true, atom.Fieldset: true, atom.Figcaption: true,
	atom.Figure: true, atom.Footer: true, atom.Form: true, atom.Frame: true,
	atom.Frameset: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Head: true,
	atom.Header: true, atom.Hr: true, atom.Html: true, atom.Iframe: true,
	atom.Legend: true, atom.Li: true, atom.Link: true, atom.Main: true,
	atom.Menu: true, atom.Menuitem: true, atom.Nav: true, atom.Noframes: true,
	atom.Ol: true, atom.Optgroup: true, atom.Option: true, atom.P: true,
	atom.Param: true, atom.Section: true, atom.Summary: true, atom.Table: true,
	atom.Tbody: true, atom.Td: true, atom.Tfoot: true, atom.Th: true,
	atom.Thead: true, atom.Title: true, atom.Tr: true, atom.Track: true,
	atom.Ul: true,
}

// htmlScriptTagAtoms is the condition-1 tag set: script, pre, textarea,
// or style, opened by the bare tag name (open or close, no attributes
// required) and closed by the first line, including the opening one, that
// contains any of the four end tags.
var htmlScriptTagAtoms = map[atom.Atom]bool{
	atom.Script: true, atom.Pre: true, atom.Textarea: true, atom.Style: true,
}

// matchHTMLBlockStart reports which condition, if any, opens an
// HTMLBlockKind at the start of rest (indentation already stripped,
// verified <4 columns by the caller). canInterruptParagraph controls
// whether conditions 6 and 7 are eligible, since they may not interrupt
// an open paragraph (§4.2(c)).
func matchHTMLBlockStart(rest string, canInterruptParagraph bool) (htmlBlockCondition, bool) {
	switch {
	case strings.HasPrefix(rest, "<!--"):
		return htmlCondComment, true
	case strings.HasPrefix(rest, "<?"):
		return htmlCondProcessingInstruction, true
	case strings.HasPrefix(rest, "<![CDATA["):
		return htmlCondCDATA, true
	case strings.HasPrefix(rest, "<!") && len(rest) > 2 && isASCIIAlpha(rest[2]):
		return htmlCondDeclaration, true
	}

	m := htmlTagNameRE.FindStringSubmatch(rest)
	if m == nil {
		return 0, false
	}
	tagAtom := atom.Lookup([]byte(strings.ToLower(m[1])))

	if htmlScriptTagAtoms[tagAtom] {
		return htmlCondScriptPreStyle, true
	}
	if !canInterruptParagraph {
		return 0, false
	}
	if htmlBlockTagAtoms[tagAtom] {
		rest := rest[len(m[0]):]
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '>' ||
			(len(rest) >= 2 && rest[0] == '/' && rest[1] == '>') {
			return htmlCondBlockTag, true
		}
	}
	if htmlOpenTagRE.MatchString(rest) || htmlCloseTagRE.MatchString(rest) {
		return htmlCondCompleteTag, true
	}
	return 0, false
}

// htmlBlockCloses reports whether line (the full, un-stripped source
// line) contains the closing pattern for an HTMLBlockKind opened under
// cond.
func htmlBlockCloses(cond htmlBlockCondition, line string) bool {
	switch cond {
	case htmlCondScriptPreStyle:
		lower := strings.ToLower(line)
		return strings.Contains(lower, "</script>") || strings.Contains(lower, "</pre>") ||
			strings.Contains(lower, "</textarea>") || strings.Contains(lower, "</style>")
	case htmlCondComment:
		return strings.Contains(line, "-->")
	case htmlCondProcessingInstruction:
		return strings.Contains(line, "?>")
	case htmlCondDeclaration:
		return strings.Contains(line, ">")
	case htmlCondCDATA:
		return strings.Contains(line, "]]>")
	case htmlCondBlockTag, htmlCondCompleteTag:
		return isBlankLine(line)
	default:
		return false
	}
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
