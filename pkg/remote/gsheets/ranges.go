package gsheets

import (
	"strings"
)

// quoteTitle wraps a sheet title in single quotes for A1 notation, doubling
// any quotes the title itself contains.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// sheetRange qualifies a cell reference with its sheet title.
func sheetRange(title, ref string) string {
	return quoteTitle(title) + "!" + ref
}
