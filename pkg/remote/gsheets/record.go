package gsheets

import (
	"context"
	"fmt"

	"gitlab.com/tozd/go/errors"
	"google.golang.org/api/sheets/v4"

	"github.com/walteh/sheetsplit/pkg/remote"
)

// Record is one worksheet tab inside a spreadsheet.
type Record struct {
	client        *Client
	spreadsheetID string
	id            int64
	index         int
	title         string
}

var _ remote.Record = (*Record)(nil)

func newRecord(client *Client, spreadsheetID string, props *sheets.SheetProperties) *Record {
	return &Record{
		client:        client,
		spreadsheetID: spreadsheetID,
		id:            props.SheetId,
		index:         int(props.Index),
		title:         props.Title,
	}
}

func (r *Record) ID() int64 {
	return r.id
}

func (r *Record) Index() int {
	return r.index
}

func (r *Record) Title() string {
	return r.title
}

// BatchRead fetches the given cells in one request, one value per cell in
// request order. Blank cells come back as empty ranges and map to "".
func (r *Record) BatchRead(ctx context.Context, cells []string) ([]string, error) {
	ranges := make([]string, 0, len(cells))
	for _, cell := range cells {
		ranges = append(ranges, sheetRange(r.title, cell))
	}

	resp, err := r.client.sheets.Spreadsheets.Values.BatchGet(r.spreadsheetID).
		Ranges(ranges...).
		Context(ctx).Do()
	if err != nil {
		return nil, remoteErr("reading cells", err)
	}
	if len(resp.ValueRanges) != len(cells) {
		return nil, errors.Errorf("reading cells: expected %d ranges, got %d", len(cells), len(resp.ValueRanges))
	}

	values := make([]string, len(cells))
	for i, vr := range resp.ValueRanges {
		values[i] = firstCell(vr)
	}
	return values, nil
}

// Rows returns every populated row of the sheet.
func (r *Record) Rows(ctx context.Context) ([][]string, error) {
	resp, err := r.client.sheets.Spreadsheets.Values.Get(r.spreadsheetID, quoteTitle(r.title)).
		Context(ctx).Do()
	if err != nil {
		return nil, remoteErr("reading rows", err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, cellString(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRows appends the rows after the sheet's existing content.
func (r *Record) AppendRows(ctx context.Context, rows [][]string) error {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		values = append(values, cells)
	}

	_, err := r.client.sheets.Spreadsheets.Values.
		Append(r.spreadsheetID, sheetRange(r.title, "A1"), &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return remoteErr("appending rows", err)
	}
	return nil
}

// CopyTo copies the sheet into the destination spreadsheet and returns the
// new sheet as a record bound to that spreadsheet.
func (r *Record) CopyTo(ctx context.Context, dest remote.Document) (remote.Record, error) {
	req := &sheets.CopySheetToAnotherSpreadsheetRequest{
		DestinationSpreadsheetId: dest.ID(),
	}
	props, err := r.client.sheets.Spreadsheets.Sheets.CopyTo(r.spreadsheetID, r.id, req).
		Context(ctx).Do()
	if err != nil {
		return nil, remoteErr("copying record", err)
	}
	return newRecord(r.client, dest.ID(), props), nil
}

// Rename changes the sheet's tab title.
func (r *Record) Rename(ctx context.Context, title string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{SheetId: r.id, Title: title},
				Fields:     "title",
			},
		}},
	}
	if _, err := r.client.sheets.Spreadsheets.BatchUpdate(r.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return remoteErr("renaming record", err)
	}
	// Later reads and clears must address the sheet by its new title.
	r.title = title
	return nil
}

// Clear blanks the given ranges within the sheet.
func (r *Record) Clear(ctx context.Context, ranges ...string) error {
	if len(ranges) == 0 {
		return nil
	}

	qualified := make([]string, 0, len(ranges))
	for _, rng := range ranges {
		qualified = append(qualified, sheetRange(r.title, rng))
	}

	req := &sheets.BatchClearValuesRequest{Ranges: qualified}
	if _, err := r.client.sheets.Spreadsheets.Values.BatchClear(r.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return remoteErr("clearing ranges", err)
	}
	return nil
}

// Delete removes the sheet from its spreadsheet.
func (r *Record) Delete(ctx context.Context) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteSheet: &sheets.DeleteSheetRequest{SheetId: r.id},
		}},
	}
	if _, err := r.client.sheets.Spreadsheets.BatchUpdate(r.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return remoteErr("deleting record", err)
	}
	return nil
}

// firstCell returns the first cell of a value range. The store reports blank
// cells as ranges with no values at all.
func firstCell(vr *sheets.ValueRange) string {
	if vr == nil || len(vr.Values) == 0 || len(vr.Values[0]) == 0 {
		return ""
	}
	return cellString(vr.Values[0][0])
}

// cellString renders one API cell value as a string. Formatted reads return
// strings, but numbers and booleans can appear with other render options.
func cellString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
