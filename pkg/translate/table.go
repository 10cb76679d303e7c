// Package translate maps source document titles to client-facing
// descriptions using a translation table maintained as a spreadsheet by the
// coaches. The table doubles as the migration allowlist: documents without a
// row are left alone.
package translate

import (
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/pkg/remote"
)

// TableTitle is the document title the translation table is created under.
// Documents matching it are never treated as migration candidates.
const TableTitle = "Workout Translations"

// Header labels of the translation table, in their canonical column order.
// Load matches them by name, so coaches may reorder or add columns.
const (
	HeaderOriginalName = "Original Name"
	HeaderDescription  = "Description"
	HeaderSkip         = "Skip?"
)

// Entry is one row of the translation table.
type Entry struct {
	// OriginalName is the source document title the entry applies to.
	OriginalName string

	// Description replaces the original name in generated titles. Blank
	// means "keep the original name".
	Description string

	// Skip excludes the document from migration entirely.
	Skip bool
}

// Table is an in-memory copy of the translation spreadsheet. Lookups use the
// first row matching a title, mirroring how coaches read the sheet top-down.
type Table struct {
	entries []Entry
}

// NewTable builds a table from already-parsed entries. Tests and callers
// with non-spreadsheet sources use this directly.
func NewTable(entries []Entry) *Table {
	return &Table{entries: entries}
}

// Load reads every row of the translation record and parses it into a Table.
// The first row must be a header naming the Original Name, Description and
// Skip? columns; rows that are completely blank are ignored.
func Load(ctx context.Context, rec remote.Record) (*Table, error) {
	rows, err := rec.Rows(ctx)
	if err != nil {
		return nil, errors.Errorf("reading translation rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("translation sheet %q is empty, expected a header row", rec.Title())
	}

	nameCol, descCol, skipCol := -1, -1, -1
	for i, label := range rows[0] {
		switch strings.TrimSpace(label) {
		case HeaderOriginalName:
			nameCol = i
		case HeaderDescription:
			descCol = i
		case HeaderSkip:
			skipCol = i
		}
	}
	if nameCol < 0 || descCol < 0 || skipCol < 0 {
		return nil, errors.Errorf("translation sheet %q header %v is missing one of %q, %q, %q",
			rec.Title(), rows[0], HeaderOriginalName, HeaderDescription, HeaderSkip)
	}

	var entries []Entry
	for _, row := range rows[1:] {
		entry := Entry{
			OriginalName: cellAt(row, nameCol),
			Description:  cellAt(row, descCol),
			Skip:         parseSkip(cellAt(row, skipCol)),
		}
		if entry.OriginalName == "" && entry.Description == "" {
			continue
		}
		entries = append(entries, entry)
	}

	return NewTable(entries), nil
}

// Len returns the number of usable entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the first entry for the source title, in sheet order.
func (t *Table) Lookup(sourceTitle string) (Entry, bool) {
	for _, entry := range t.entries {
		if entry.OriginalName == sourceTitle {
			return entry, true
		}
	}
	return Entry{}, false
}

// Translate returns the description registered for the source title, or the
// title itself when no row names it or the row's description is blank.
func (t *Table) Translate(sourceTitle string) string {
	entry, ok := t.Lookup(sourceTitle)
	if !ok || entry.Description == "" {
		return sourceTitle
	}
	return entry.Description
}

// ShouldMigrate reports whether the document with the given title is cleared
// for migration. Titles absent from the table are not migrated: the table is
// an allowlist, so a forgotten row fails safe instead of copying a document
// nobody reviewed.
func (t *Table) ShouldMigrate(sourceTitle string) bool {
	entry, ok := t.Lookup(sourceTitle)
	return ok && !entry.Skip
}

// parseSkip interprets the Skip? column. Coaches type a lone y, anything
// else (including blank) counts as "do not skip".
func parseSkip(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "y")
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
