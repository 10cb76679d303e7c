package remote

import (
	"context"
)

// DocumentInfo identifies a spreadsheet inside a collection folder without
// opening it. Listing is cheap; opening costs a Sheets API read.
type DocumentInfo struct {
	ID   string
	Name string
}

// Client is the primary interface for interacting with the remote spreadsheet
// store (e.g. Google Sheets + Drive)
type Client interface {
	// ListDocuments returns every spreadsheet directly inside the given folder
	ListDocuments(ctx context.Context, folderID string) ([]DocumentInfo, error)
	// OpenDocument opens an existing spreadsheet by id
	OpenDocument(ctx context.Context, id string) (Document, error)
	// CreateDocument creates a new spreadsheet with the given title inside the
	// given folder. The store seeds it with one placeholder record.
	CreateDocument(ctx context.Context, title, folderID string) (Document, error)
}

// Document represents one spreadsheet and its records (worksheet tabs)
type Document interface {
	// ID returns the store identifier of the document
	ID() string
	// Title returns the display title of the document
	Title() string
	// Records returns the document's records in sheet order
	Records(ctx context.Context) ([]Record, error)
	// Placeholder returns the record the store auto-created with the document.
	// It is only known for documents returned by Client.CreateDocument; opened
	// documents report ok=false.
	Placeholder() (Record, bool)
	// Share grants the given principal the given role on the document. Sharing
	// an already-shared document is not an error.
	Share(ctx context.Context, email, role string) error
	// Delete removes the whole document from the store
	Delete(ctx context.Context) error
}

// Record represents a single worksheet tab inside a document
type Record interface {
	// ID returns the store identifier of the record within its document
	ID() int64
	// Index returns the 0-based position of the record within its document
	Index() int
	// Title returns the record's tab title
	Title() string
	// BatchRead fetches the given A1-notation cells in one call and returns
	// one value per requested cell, empty string for blank cells
	BatchRead(ctx context.Context, cells []string) ([]string, error)
	// Rows returns every populated row of the record
	Rows(ctx context.Context) ([][]string, error)
	// AppendRows appends the given rows after the record's existing content
	AppendRows(ctx context.Context, rows [][]string) error
	// CopyTo copies this record into the destination document and returns the
	// new record
	CopyTo(ctx context.Context, dest Document) (Record, error)
	// Rename changes the record's tab title
	Rename(ctx context.Context, title string) error
	// Clear blanks the given A1-notation ranges
	Clear(ctx context.Context, ranges ...string) error
	// Delete removes the record from its document
	Delete(ctx context.Context) error
}
