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

// DocumentParser runs the block phase of the CommonMark algorithm: it
// consumes a document one line at a time and builds a tree of [Block]
// nodes rooted at Document, deciding at each line which open blocks
// continue, which close, and which new blocks open (§4.2).
//
// The zero value is not usable; construct one with [NewDocumentParser].
type DocumentParser struct {
	root   *Block
	tip    *Block
	inline *InlineParser
}

// NewDocumentParser returns a DocumentParser ready to parse a new
// document, using inlineParser to extract link reference definitions
// from finalized paragraphs (§4.3, §4.5). A nil inlineParser is replaced
// with a fresh one.
func NewDocumentParser(inlineParser *InlineParser) *DocumentParser {
	if inlineParser == nil {
		inlineParser = NewInlineParser()
	}
	root := &Block{Kind: DocumentKind, open: true, Position: Position{StartLine: 1, StartColumn: 1}}
	return &DocumentParser{root: root, tip: root, inline: inlineParser}
}

// Parse runs the block phase over the entire document text, then the
// inline phase over every leaf block that carries inline content, and
// returns the finished Document block.
func Parse(text string, inlineParser *InlineParser) *Block {
	p := NewDocumentParser(inlineParser)
	lines := splitLines(normalizeNewlines(text))
	for i, line := range lines {
		p.IncorporateLine(line, i+1)
	}
	doc := p.FinalizeAll(len(lines))
	parseInlinesInTree(doc, p.inline)
	return doc
}

// parseInlinesInTree walks every leaf block in tree and, for the kinds
// that carry inline content, runs the inline phase over their string
// content (§4.4).
func parseInlinesInTree(b *Block, ip *InlineParser) {
	switch b.Kind {
	case ParagraphKind, ATXHeaderKind, SetextHeaderKind:
		b.inlineContent = ip.Parse(b.stringContent)
	}
	for _, child := range b.children {
		parseInlinesInTree(child, ip)
	}
}

// IncorporateLine feeds one line of input, numbered lineNumber (1-based),
// into the parser (§4.2).
func (p *DocumentParser) IncorporateLine(line string, lineNumber int) {
	container := p.root
	offset := 0
	allMatched := true

	// (a) Container match walk: descend the open spine while each child
	// still matches its continuation rule.
	for {
		child := container.lastChild()
		if child == nil || !child.open {
			break
		}
		newOffset, ok := p.matchContinuation(child, line, offset, lineNumber)
		if !ok {
			allMatched = false
			break
		}
		offset = newOffset
		container = child
	}

	// (b) Two consecutive blank lines inside an open list close it. The
	// previous line's blank-ness was recorded as last_line_blank on the
	// block it was incorporated into, which is this line's container; if
	// this line is blank too, that's two in a row.
	if isBlankFrom(line, offset) && container.lastLineBlank {
		if list := enclosingOpenList(container); list != nil {
			p.breakOutOfLists(list, lineNumber)
			container = p.tip
		}
	}

	// (c) Try to open new blocks, descending from container. An open
	// paragraph must keep running this loop even though it accepts lines,
	// since that's exactly how ATX headings, thematic breaks, and the
	// other interrupting constructs get a chance to close it.
	closedForThisLine := false
	lineConsumed := false
	for container.Kind == ParagraphKind || !container.Kind.acceptsLines() {
		next, newOffset, consumed, opened := p.tryOpenBlock(container, line, offset, lineNumber, &closedForThisLine)
		if !opened {
			break
		}
		container = next
		offset = newOffset
		if consumed {
			lineConsumed = true
			break
		}
	}
	if lineConsumed {
		return
	}

	// (d) Decide between lazy paragraph continuation and the normal
	// close-then-append path.
	var target *Block
	if !allMatched && !closedForThisLine && isLazyParagraphContinuation(p.tip, line, offset) {
		target = p.tip
	} else {
		if !closedForThisLine {
			p.closeUnmatchedBlocks(container, lineNumber)
		}
		target = p.tip
		blank := isBlankFrom(line, offset)
		target.lastLineBlank = blank && shouldRememberBlank(target, lineNumber)
		for a := target.parent; a != nil; a = a.parent {
			a.lastLineBlank = false
		}
	}

	p.appendToBlock(target, line, offset, lineNumber)
}

// matchContinuation reports whether b continues to match at the current
// line, returning the offset past whatever prefix it consumed (§4.2(a)).
func (p *DocumentParser) matchContinuation(b *Block, line string, offset int, lineNumber int) (int, bool) {
	switch b.Kind {
	case BlockQuoteKind:
		indent := countLeadingSpaces(line, offset)
		if indent > 3 {
			return offset, false
		}
		rest := offset + indent
		if rest >= len(line) || line[rest] != '>' {
			return offset, false
		}
		rest++
		if rest < len(line) && line[rest] == ' ' {
			rest++
		}
		return rest, true
	case ListItemKind:
		if isBlankFrom(line, offset) {
			// A list item can begin with at most one blank line: an item
			// whose marker line was blank and which still has no children
			// is closed by the next blank line rather than matching it.
			if len(b.children) == 0 {
				return offset, false
			}
			return len(line), true
		}
		indent := countLeadingSpaces(line, offset)
		if indent < b.listData.Padding {
			return offset, false
		}
		return offset + b.listData.Padding, true
	case IndentedCodeKind:
		if isBlankFrom(line, offset) {
			return firstNonSpace(line, offset), true
		}
		indent := countLeadingSpaces(line, offset)
		if indent < 4 {
			return offset, false
		}
		return offset + 4, true
	case FencedCodeKind:
		indent := countLeadingSpaces(line, offset)
		if indent > b.fenceOffset {
			indent = b.fenceOffset
		}
		return offset + indent, true
	case HTMLBlockKind:
		if (b.htmlCond == htmlCondBlockTag || b.htmlCond == htmlCondCompleteTag) && isBlankFrom(line, offset) {
			return offset, false
		}
		return offset, true
	case ParagraphKind:
		if isBlankFrom(line, offset) {
			b.lastLineBlank = true
			return offset, false
		}
		return offset, true
	case ATXHeaderKind, SetextHeaderKind, HorizontalRuleKind:
		return offset, false
	default:
		// Document and List always match; their children decide.
		return offset, true
	}
}

// enclosingOpenList returns the outermost ListKind ancestor (inclusive)
// of tip, or nil if tip is not inside an open list (§4.2(b) breaks out
// through every nesting level at once).
func enclosingOpenList(tip *Block) *Block {
	var outermost *Block
	for b := tip; b != nil; b = b.parent {
		if b.Kind == ListKind {
			outermost = b
		}
	}
	return outermost
}

// breakOutOfLists finalizes list, and everything below it down to the
// current tip, in response to two consecutive blank lines inside an open
// list (§4.2(b)).
func (p *DocumentParser) breakOutOfLists(list *Block, lineNumber int) {
	for p.tip != list.parent {
		p.finalize(p.tip, lineNumber-1)
		p.tip = p.tip.parent
	}
}

// tryOpenBlock attempts each of the eight new-block recognizers in order
// against container's remaining line (§4.2(c)). It reports the new
// current container, the offset past whatever it consumed, whether the
// match fully consumed the rest of the line (so no further recognizers
// or the append step should run), and whether a recognizer matched at
// all. The first successful match closes any unmatched descendants of
// container via closeUnmatchedBlocks, exactly once per line.
func (p *DocumentParser) tryOpenBlock(container *Block, line string, offset int, lineNumber int, closedForThisLine *bool) (next *Block, newOffset int, consumed bool, opened bool) {
	indent := countLeadingSpaces(line, offset)
	rest := line[firstNonSpace(line, offset):]
	col := offset + indent + 1

	ensureClosed := func() {
		if !*closedForThisLine {
			p.closeUnmatchedBlocks(container, lineNumber)
			*closedForThisLine = true
		}
	}

	// 1. Indented code.
	if indent >= 4 && container.Kind != ParagraphKind && !isBlankFrom(line, offset) {
		ensureClosed()
		child := p.addChild(IndentedCodeKind, lineNumber, col)
		return child, offset + 4, false, true
	}

	if indent > 3 {
		return nil, offset, false, false
	}

	// 2. Block quote.
	if len(rest) > 0 && rest[0] == '>' {
		ensureClosed()
		child := p.addChild(BlockQuoteKind, lineNumber, col)
		o := firstNonSpace(line, offset) + 1
		if o < len(line) && line[o] == ' ' {
			o++
		}
		return child, o, false, true
	}

	// 3. ATX heading.
	if level, content, ok := parseATXHeader(rest); ok {
		ensureClosed()
		child := p.addChild(ATXHeaderKind, lineNumber, col)
		child.level = level
		child.appendLine(content)
		p.finalize(child, lineNumber)
		p.tip = child.parent
		return child, len(line), true, true
	}

	// 4. Fenced code.
	if char, length, info, ok := parseCodeFenceOpen(rest); ok {
		ensureClosed()
		child := p.addChild(FencedCodeKind, lineNumber, col)
		child.fenceChar, child.fenceLength, child.fenceOffset, child.info = char, length, indent, info
		return child, len(line), true, true
	}

	// 5. HTML block.
	if cond, ok := matchHTMLBlockStart(rest, container.Kind != ParagraphKind); ok {
		ensureClosed()
		child := p.addChild(HTMLBlockKind, lineNumber, col)
		child.htmlCond = cond
		return child, firstNonSpace(line, offset), false, true
	}

	// 6. Setext underline (only rewrites an existing paragraph tip).
	if container.Kind == ParagraphKind && len(container.strings) > 0 {
		if level, ok := parseSetextUnderline(rest); ok {
			container.Kind = SetextHeaderKind
			container.level = level
			container.stringContent = strings.TrimLeft(container.joinLines(), " \t")
			p.finalize(container, lineNumber)
			p.tip = container.parent
			return container, len(line), true, true
		}
	}

	// 7. Thematic break.
	if parseThematicBreak(rest) {
		ensureClosed()
		child := p.addChild(HorizontalRuleKind, lineNumber, col)
		p.finalize(child, lineNumber)
		p.tip = child.parent
		return child, len(line), true, true
	}

	// 8. List item.
	if m, ok := parseListMarker(rest); ok {
		if container.Kind == ParagraphKind {
			afterMarker := rest[m.markerLen:]
			if m.data.Ordered && m.data.Start != 1 {
				return nil, offset, false, false
			}
			if isBlankFrom(afterMarker, 0) {
				return nil, offset, false, false
			}
		}
		ensureClosed()
		m.data.MarkerOffset = indent
		var list *Block
		if container.Kind == ListKind && container.listData.sameType(m.data) {
			list = container
		} else {
			list = p.addChild(ListKind, lineNumber, col)
			list.listData = m.data
			list.tight = true
		}
		item := p.addChild(ListItemKind, lineNumber, col)
		item.listData = m.data
		o := firstNonSpace(line, offset) + m.data.Padding
		if o > len(line) {
			o = len(line)
		}
		return item, o, false, true
	}

	return nil, offset, false, false
}

// isLazyParagraphContinuation reports whether the remainder of line, from
// offset, should be appended directly to tip as a lazy paragraph
// continuation rather than triggering closure of unmatched blocks
// (§4.2(d)).
func isLazyParagraphContinuation(tip *Block, line string, offset int) bool {
	return tip != nil && tip.Kind == ParagraphKind && len(tip.strings) > 0 && !isBlankFrom(line, offset)
}

// shouldRememberBlank reports whether a blank line at lineNumber should
// be recorded as b.lastLineBlank. Block quotes, fenced code blocks, and a
// list item on its own opening line with no children yet never remember
// a blank line this way (§4.2(d)).
func shouldRememberBlank(b *Block, lineNumber int) bool {
	switch b.Kind {
	case BlockQuoteKind, FencedCodeKind:
		return false
	case ListItemKind:
		return !(len(b.children) == 0 && b.Position.StartLine == lineNumber)
	default:
		return true
	}
}

// closeUnmatchedBlocks finalizes every block on the open spine below
// container, leaving container as the tip (§4.2(a)).
func (p *DocumentParser) closeUnmatchedBlocks(container *Block, lineNumber int) {
	for p.tip != container {
		p.finalize(p.tip, lineNumber-1)
		p.tip = p.tip.parent
	}
}

// addChild climbs from the current tip, finalizing blocks until it
// reaches one that can contain kind, then appends and returns a new
// child of that kind (§4.2(c)'s add_child).
func (p *DocumentParser) addChild(kind BlockKind, lineNumber, col int) *Block {
	for !p.tip.acceptsChild(kind) {
		p.finalize(p.tip, lineNumber-1)
		p.tip = p.tip.parent
	}
	child := newChild(p.tip, kind, lineNumber, col)
	p.tip = child
	return child
}

// appendToBlock appends the remainder of line (from offset) to target
// according to its kind's line-append rule (§4.2(d)), opening an
// implicit paragraph if target is not itself a line-accepting block.
func (p *DocumentParser) appendToBlock(target *Block, line string, offset int, lineNumber int) {
	switch target.Kind {
	case IndentedCodeKind, HTMLBlockKind:
		target.appendLine(line[offset:])
		if target.Kind == HTMLBlockKind && htmlBlockCloses(target.htmlCond, line) {
			p.finalize(target, lineNumber)
			p.tip = target.parent
		}
	case FencedCodeKind:
		if parseCodeFenceClose(line[offset:], target.fenceChar, target.fenceLength) {
			p.finalize(target, lineNumber)
			p.tip = target.parent
			return
		}
		// matchContinuation has already skipped up to fenceOffset spaces.
		target.appendLine(line[offset:])
	case ATXHeaderKind, SetextHeaderKind, HorizontalRuleKind:
		// Fully handled at open time; nothing to append.
	default:
		if target.Kind.acceptsLines() {
			target.appendLine(line[firstNonSpace(line, offset):])
			return
		}
		if isBlankFrom(line, offset) {
			return
		}
		child := p.addChild(ParagraphKind, lineNumber, firstNonSpace(line, offset)+1)
		child.appendLine(line[firstNonSpace(line, offset):])
	}
}

// finalize closes b, recording its end line, and applies its kind's
// finalization rule (§4.3).
func (p *DocumentParser) finalize(b *Block, endLine int) {
	b.open = false
	b.Position.EndLine = endLine

	switch b.Kind {
	case ParagraphKind:
		content := stripLeadingSpaces(b.joinLines())
		for strings.HasPrefix(content, "[") {
			rest, ok := p.inline.ParseReference(content)
			if !ok {
				break
			}
			content = rest
		}
		b.stringContent = content
		if strings.TrimSpace(content) == "" {
			b.Kind = ReferenceDefKind
		}
	case ATXHeaderKind, SetextHeaderKind, HTMLBlockKind:
		b.stringContent = b.joinLines()
	case IndentedCodeKind:
		lines := b.strings
		for len(lines) > 0 && isBlankLine(lines[len(lines)-1]) {
			lines = lines[:len(lines)-1]
		}
		if len(lines) == 0 {
			b.stringContent = ""
		} else {
			b.stringContent = strings.Join(lines, "\n") + "\n"
		}
	case FencedCodeKind:
		if len(b.strings) == 0 {
			b.stringContent = ""
		} else {
			b.stringContent = b.joinLines() + "\n"
		}
	case ListKind:
		tight := true
		children := b.children
		for i, item := range children {
			if item.endsWithBlankLine() && i != len(children)-1 {
				tight = false
				break
			}
			for j, sub := range item.children {
				lastSub := j == len(item.children)-1
				if sub.endsWithBlankLine() && !(lastSub && i == len(children)-1) {
					tight = false
					break
				}
			}
			if !tight {
				break
			}
		}
		b.tight = tight
	}
}

// FinalizeAll closes every still-open block at end of input, numbered
// lineNumber, and returns the Document root (§4.3).
func (p *DocumentParser) FinalizeAll(lineNumber int) *Block {
	for p.tip != nil {
		b := p.tip
		p.finalize(b, lineNumber)
		p.tip = b.parent
	}
	return p.root
}

// stripLeadingSpaces removes leading spaces from every line of s,
// matching the paragraph finalization rule's "leading spaces on each
// line stripped" (§4.3).
func stripLeadingSpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimLeft(l, " ")
	}
	return strings.Join(lines, "\n")
}
