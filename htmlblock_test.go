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

func TestMatchHTMLBlockStart(t *testing.T) {
	tests := []struct {
		name                  string
		rest                  string
		canInterruptParagraph bool
		wantCond              htmlBlockCondition
		wantOK                bool
	}{
		{"script", "<script>", true, htmlCondScriptPreStyle, true},
		{"scriptNotInterrupting", "<script>", false, htmlCondScriptPreStyle, true},
		{"comment", "<!-- x -->", true, htmlCondComment, true},
		{"processingInstruction", "<?php echo 1 ?>", true, htmlCondProcessingInstruction, true},
		{"declaration", "<!DOCTYPE html>", true, htmlCondDeclaration, true},
		{"cdata", "<![CDATA[ x ]]>", true, htmlCondCDATA, true},
		{"blockTag", "<div class=\"x\">", true, htmlCondBlockTag, true},
		{"blockTagCannotInterrupt", "<div class=\"x\">", false, 0, false},
		{"completeTagInline", "<ins>", false, 0, false},
		{"completeOpenTag", "<ins>", true, htmlCondCompleteTag, true},
		{"completeCloseTag", "</ins>", true, htmlCondCompleteTag, true},
		{"notHTML", "hello", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, ok := matchHTMLBlockStart(tt.rest, tt.canInterruptParagraph)
			if ok != tt.wantOK || (ok && cond != tt.wantCond) {
				t.Errorf("matchHTMLBlockStart(%q, %v) = (%v, %v), want (%v, %v)",
					tt.rest, tt.canInterruptParagraph, cond, ok, tt.wantCond, tt.wantOK)
			}
		})
	}
}

func TestHTMLBlockCloses(t *testing.T) {
	if !htmlBlockCloses(htmlCondScriptPreStyle, "</SCRIPT>") {
		t.Error("script close must be case-insensitive")
	}
	if !htmlBlockCloses(htmlCondComment, "stuff --> more") {
		t.Error("comment should close as soon as --> appears")
	}
	if htmlBlockCloses(htmlCondBlockTag, "still content") {
		t.Error("condition 6 should only close on a blank line")
	}
	if !htmlBlockCloses(htmlCondBlockTag, "") {
		t.Error("condition 6 should close on a blank line")
	}
}
