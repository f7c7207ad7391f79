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

// Package commonmark provides the core of a [CommonMark] parser: a
// line-oriented block parser followed by an inline parser, producing a
// tree of [Block] nodes whose leaves carry a sequence of [Inline] nodes.
//
// The package does not render the tree to HTML or any other format, and it
// does not resolve link references — see [DocumentParser] and
// [InlineParser] for the two phases. [InlineParser.ParseReference] and the
// [ReferenceDefKind] block kind are the interface points a full
// implementation hooks into to parse and resolve link reference
// definitions.
//
// [CommonMark]: https://spec.commonmark.org/0.30/
package commonmark

// tabStopSize is the multiple of columns a tab advances to, per the
// CommonMark definition of a tab stop.
const tabStopSize = 4
