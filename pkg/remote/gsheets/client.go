// Package gsheets implements the remote interfaces on top of the Google
// Sheets and Drive APIs. Documents are spreadsheets, records are worksheet
// tabs, and collections are Drive folders.
package gsheets

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/walteh/sheetsplit/pkg/remote"
)

const (
	mimeSpreadsheet = "application/vnd.google-apps.spreadsheet"

	// listPageSize keeps folder listings to a few requests even for large
	// collections.
	listPageSize = 100
)

// Options configures the client's authentication.
type Options struct {
	// CredentialsFile points at a service account key. Empty falls back to
	// ambient credentials (gcloud, workload identity).
	CredentialsFile string

	// HTTPClient bypasses authentication entirely. Tests inject a mocked
	// transport here; it is mutually exclusive with CredentialsFile.
	HTTPClient *http.Client
}

// Client talks to the Sheets and Drive APIs. It is safe for concurrent use.
type Client struct {
	sheets *sheets.Service
	drive  *drive.Service
}

var _ remote.Client = (*Client)(nil)

// New builds a Client from the given options.
func New(ctx context.Context, opts Options) (*Client, error) {
	var clientOpts []option.ClientOption
	switch {
	case opts.HTTPClient != nil:
		clientOpts = append(clientOpts, option.WithHTTPClient(opts.HTTPClient))
	case opts.CredentialsFile != "":
		clientOpts = append(clientOpts,
			option.WithCredentialsFile(opts.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope, drive.DriveScope))
	default:
		clientOpts = append(clientOpts,
			option.WithScopes(sheets.SpreadsheetsScope, drive.DriveScope))
	}

	sheetsSvc, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, errors.Errorf("creating sheets service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, errors.Errorf("creating drive service: %w", err)
	}

	return &Client{sheets: sheetsSvc, drive: driveSvc}, nil
}

// ListDocuments returns every spreadsheet directly inside the folder,
// following pagination.
func (c *Client) ListDocuments(ctx context.Context, folderID string) ([]remote.DocumentInfo, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType = '%s' and trashed = false", folderID, mimeSpreadsheet)

	var infos []remote.DocumentInfo
	pageToken := ""
	for {
		call := c.drive.Files.List().
			Q(query).
			Fields("nextPageToken", "files(id, name)").
			PageSize(listPageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, remoteErr("listing folder", err)
		}
		for _, f := range page.Files {
			infos = append(infos, remote.DocumentInfo{ID: f.Id, Name: f.Name})
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	zerolog.Ctx(ctx).Debug().
		Str("folder_id", folderID).
		Int("documents", len(infos)).
		Msg("listed folder")

	return infos, nil
}

// OpenDocument opens an existing spreadsheet by id.
func (c *Client) OpenDocument(ctx context.Context, id string) (remote.Document, error) {
	ss, err := c.sheets.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, remoteErr("opening spreadsheet", err)
	}
	return &Document{client: c, id: ss.SpreadsheetId, title: ss.Properties.Title}, nil
}

// CreateDocument creates a spreadsheet inside the folder. Creation goes
// through the Drive API because only it can place the file in a folder; a
// follow-up metadata read captures the placeholder sheet the store seeds
// every new spreadsheet with.
func (c *Client) CreateDocument(ctx context.Context, title, folderID string) (remote.Document, error) {
	file := &drive.File{
		Name:     title,
		MimeType: mimeSpreadsheet,
		Parents:  []string{folderID},
	}
	created, err := c.drive.Files.Create(file).Fields("id").Context(ctx).Do()
	if err != nil {
		return nil, remoteErr("creating spreadsheet", err)
	}

	ss, err := c.sheets.Spreadsheets.Get(created.Id).Context(ctx).Do()
	if err != nil {
		return nil, remoteErr("inspecting new spreadsheet", err)
	}

	doc := &Document{client: c, id: ss.SpreadsheetId, title: ss.Properties.Title}
	if len(ss.Sheets) > 0 {
		doc.placeholder = newRecord(c, doc.id, ss.Sheets[0].Properties)
	}

	zerolog.Ctx(ctx).Debug().
		Str("document_id", doc.id).
		Str("title", title).
		Msg("created spreadsheet")

	return doc, nil
}
