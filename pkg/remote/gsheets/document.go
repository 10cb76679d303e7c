package gsheets

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/walteh/sheetsplit/pkg/remote"
)

// Document is one spreadsheet.
type Document struct {
	client *Client
	id     string
	title  string

	// placeholder is the sheet the store auto-created, known only for
	// documents born through CreateDocument.
	placeholder *Record
}

var _ remote.Document = (*Document)(nil)

func (d *Document) ID() string {
	return d.id
}

func (d *Document) Title() string {
	return d.title
}

// Records fetches the document's sheets in sheet order. The metadata is read
// fresh on every call; sheet lists change underneath long runs.
func (d *Document) Records(ctx context.Context) ([]remote.Record, error) {
	ss, err := d.client.sheets.Spreadsheets.Get(d.id).Context(ctx).Do()
	if err != nil {
		return nil, remoteErr("listing records", err)
	}

	records := make([]remote.Record, 0, len(ss.Sheets))
	for _, sheet := range ss.Sheets {
		records = append(records, newRecord(d.client, d.id, sheet.Properties))
	}
	return records, nil
}

func (d *Document) Placeholder() (remote.Record, bool) {
	if d.placeholder == nil {
		return nil, false
	}
	return d.placeholder, true
}

// Share grants the principal the given role without sending a notification
// mail. Granting a role the principal already holds is treated as success.
func (d *Document) Share(ctx context.Context, email, role string) error {
	perm := &drive.Permission{
		Type:         "user",
		Role:         role,
		EmailAddress: email,
	}
	_, err := d.client.drive.Permissions.Create(d.id, perm).
		SendNotificationEmail(false).
		Context(ctx).Do()
	if err != nil {
		if alreadyShared(err) {
			zerolog.Ctx(ctx).Debug().
				Str("document", d.title).
				Str("email", email).
				Msg("document already shared")
			return nil
		}
		return remoteErr("sharing document", err)
	}
	return nil
}

// Delete removes the spreadsheet from the store.
func (d *Document) Delete(ctx context.Context) error {
	if err := d.client.drive.Files.Delete(d.id).Context(ctx).Do(); err != nil {
		return remoteErr("deleting document", err)
	}
	return nil
}

// alreadyShared recognizes the store's ways of saying the permission exists.
func alreadyShared(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == http.StatusConflict {
		return true
	}
	for _, item := range apiErr.Errors {
		if item.Reason == "duplicate" {
			return true
		}
	}
	return false
}
