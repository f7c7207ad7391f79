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

import "fmt"

// Position records where a [Block] begins and ends in the source document.
// Line and column numbers are 1-based.
type Position struct {
	StartLine   int
	StartColumn int
	EndLine     int
}

// String formats the position as "line:column-endLine" for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d-%d", p.StartLine, p.StartColumn, p.EndLine)
}
