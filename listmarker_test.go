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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseListMarker(t *testing.T) {
	tests := []struct {
		name string
		rest string
		want listMarkerMatch
		ok   bool
	}{
		{
			name: "bullet",
			rest: "- foo",
			want: listMarkerMatch{data: ListData{Bullet: '-', Padding: 2}, markerLen: 1},
			ok:   true,
		},
		{
			name: "ordered",
			rest: "1. foo",
			want: listMarkerMatch{data: ListData{Ordered: true, Start: 1, Delimiter: '.', Padding: 3}, markerLen: 2},
			ok:   true,
		},
		{
			name: "orderedParen",
			rest: "12) foo",
			want: listMarkerMatch{data: ListData{Ordered: true, Start: 12, Delimiter: ')', Padding: 4}, markerLen: 3},
			ok:   true,
		},
		{
			name: "blankItem",
			rest: "-",
			want: listMarkerMatch{data: ListData{Bullet: '-', Padding: 2}, markerLen: 1},
			ok:   true,
		},
		{
			name: "wideSpacing",
			rest: "-     foo",
			want: listMarkerMatch{data: ListData{Bullet: '-', Padding: 2}, markerLen: 1},
			ok:   true,
		},
		{
			name: "hrule wins over bullet",
			rest: "- - -",
			ok:   false,
		},
		{
			name: "not a marker",
			rest: "foo",
			ok:   false,
		},
		{
			name: "no space after marker",
			rest: "-foo",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseListMarker(tt.rest)
			if ok != tt.ok {
				t.Fatalf("parseListMarker(%q) ok = %v, want %v", tt.rest, ok, tt.ok)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(listMarkerMatch{})); diff != "" {
				t.Errorf("parseListMarker(%q) mismatch (-want +got):\n%s", tt.rest, diff)
			}
		})
	}
}

func TestListDataSameType(t *testing.T) {
	a := ListData{Bullet: '-'}
	b := ListData{Bullet: '-', Start: 99}
	c := ListData{Bullet: '*'}
	if !a.sameType(b) {
		t.Error("same bullet char should be the same type regardless of Start")
	}
	if a.sameType(c) {
		t.Error("different bullet characters must not be the same type")
	}
	o1 := ListData{Ordered: true, Delimiter: '.', Start: 1}
	o2 := ListData{Ordered: true, Delimiter: '.', Start: 5}
	o3 := ListData{Ordered: true, Delimiter: ')', Start: 1}
	if !o1.sameType(o2) {
		t.Error("ordered lists with the same delimiter differing only in Start should merge")
	}
	if o1.sameType(o3) {
		t.Error("ordered lists with different delimiters must not merge")
	}
	if a.sameType(o1) {
		t.Error("bullet and ordered lists must never be the same type")
	}
}
