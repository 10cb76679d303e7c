// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package migrate

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxTitleRunes caps the description-and-name part of a destination title.
// The position suffix is appended after truncation so it can never be cut
// off, keeping titles unique within one source document.
const MaxTitleRunes = 175

// 🏷️ DestinationTitle builds the title of the document a record is migrated
// into: "<description> - <translated client name> <index>", truncated and
// title-cased. index is the record's 1-based position in its source document.
func DestinationTitle(description string, translatedName string, index int) string {
	base := description + " - " + translatedName
	if utf8.RuneCountInString(base) > MaxTitleRunes {
		base = string([]rune(base)[:MaxTitleRunes])
	}
	// Casers are stateful, so build one per call rather than sharing across
	// worker goroutines.
	return cases.Title(language.English).String(base + " " + strconv.Itoa(index))
}
