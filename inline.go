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

// InlineKind is an enumeration of the tagged variants an [Inline] node
// can hold, mirroring [BlockKind]'s closed-sum-type treatment at the
// inline level (§3, §9).
type InlineKind int

const (
	// StrKind is a run of literal text.
	StrKind InlineKind = 1 + iota
	// EntityKind is a decoded HTML entity or numeric character reference.
	// See [Inline.Literal] for the decoded text.
	EntityKind
	// HTMLKind is a raw inline HTML tag, stored verbatim.
	HTMLKind
	// CodeKind is a code span. See [Inline.Literal] for its content.
	CodeKind
	// HardbreakKind is a hard line break.
	HardbreakKind
	// SoftbreakKind is a soft line break.
	SoftbreakKind
	// EmphasisKind wraps its Children in emphasis.
	EmphasisKind
	// StrongKind wraps its Children in strong emphasis.
	StrongKind
	// LinkKind is a hyperlink. See [Inline.Destination] and [Inline.Title].
	LinkKind
	// ImageKind is an image reference. See [Inline.Destination] and
	// [Inline.Title].
	ImageKind
)

// String returns the Go identifier for the kind, e.g. "EmphasisKind".
func (k InlineKind) String() string {
	switch k {
	case StrKind:
		return "StrKind"
	case EntityKind:
		return "EntityKind"
	case HTMLKind:
		return "HTMLKind"
	case CodeKind:
		return "CodeKind"
	case HardbreakKind:
		return "HardbreakKind"
	case SoftbreakKind:
		return "SoftbreakKind"
	case EmphasisKind:
		return "EmphasisKind"
	case StrongKind:
		return "StrongKind"
	case LinkKind:
		return "LinkKind"
	case ImageKind:
		return "ImageKind"
	default:
		return "InlineKind(0)"
	}
}

// Inline is a node in the tree produced by [InlineParser.Parse]. Its
// meaning is determined by Kind; see InlineKind's constant documentation
// for which accessors are valid for which kind (§3, §9).
type Inline struct {
	Kind InlineKind

	// Literal holds the text payload for StrKind, EntityKind (the decoded
	// character), HTMLKind (the raw tag source) and CodeKind (the span's
	// content, backtick delimiters stripped).
	Literal string

	// Destination and Title hold a LinkKind or ImageKind node's target
	// and optional title.
	Destination string
	Title       string
	TitleSet    bool

	// Children holds the contained inlines for EmphasisKind, StrongKind,
	// LinkKind and ImageKind.
	Children []Inline
}
