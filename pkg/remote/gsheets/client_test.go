package gsheets

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/sheetsplit/pkg/remote"
)

func TestListDocumentsFollowsPagination(t *testing.T) {
	client := newTestClient(t)

	var queries []url.Values
	httpmock.RegisterResponder("GET", "https://www.googleapis.com/drive/v3/files",
		func(req *http.Request) (*http.Response, error) {
			queries = append(queries, req.URL.Query())
			if req.URL.Query().Get("pageToken") == "" {
				return httpmock.NewStringResponse(200, `{
					"nextPageToken": "page-2",
					"files": [{"id": "doc-1", "name": "Jane Workouts"}]
				}`), nil
			}
			return httpmock.NewStringResponse(200, `{
				"files": [{"id": "doc-2", "name": "Bob Workouts"}]
			}`), nil
		})

	infos, err := client.ListDocuments(context.Background(), "folder-1")
	require.NoError(t, err, "listing should succeed")

	require.Len(t, infos, 2, "both pages should be collected")
	assert.Equal(t, remote.DocumentInfo{ID: "doc-1", Name: "Jane Workouts"}, infos[0])
	assert.Equal(t, remote.DocumentInfo{ID: "doc-2", Name: "Bob Workouts"}, infos[1])

	require.Len(t, queries, 2, "two pages mean two requests")
	assert.Contains(t, queries[0].Get("q"), "'folder-1' in parents", "query should scope to the folder")
	assert.Contains(t, queries[0].Get("q"), mimeSpreadsheet, "query should only match spreadsheets")
	assert.Contains(t, queries[0].Get("q"), "trashed = false", "trashed files should stay invisible")
	assert.Equal(t, "page-2", queries[1].Get("pageToken"), "second request should follow the page token")
}

func TestOpenDocumentReadsMetadata(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", "https://sheets.googleapis.com/v4/spreadsheets/ss-1",
		httpmock.NewStringResponder(200, `{
			"spreadsheetId": "ss-1",
			"properties": {"title": "Jane Workouts"}
		}`))

	doc, err := client.OpenDocument(context.Background(), "ss-1")
	require.NoError(t, err, "open should succeed")

	assert.Equal(t, "ss-1", doc.ID())
	assert.Equal(t, "Jane Workouts", doc.Title())

	_, ok := doc.Placeholder()
	assert.False(t, ok, "opened documents have no known placeholder")
}

func TestCreateDocumentCapturesPlaceholder(t *testing.T) {
	client := newTestClient(t)

	var createBody map[string]interface{}
	httpmock.RegisterResponder("POST", "https://www.googleapis.com/drive/v3/files",
		func(req *http.Request) (*http.Response, error) {
			createBody = decodeBody(t, req)
			return httpmock.NewStringResponse(200, `{"id": "new-1"}`), nil
		})
	httpmock.RegisterResponder("GET", "https://sheets.googleapis.com/v4/spreadsheets/new-1",
		httpmock.NewStringResponder(200, `{
			"spreadsheetId": "new-1",
			"properties": {"title": "Week 1 - Jane Doe 1"},
			"sheets": [{"properties": {"sheetId": 0, "title": "Sheet1", "index": 0}}]
		}`))

	doc, err := client.CreateDocument(context.Background(), "Week 1 - Jane Doe 1", "folder-2")
	require.NoError(t, err, "create should succeed")

	assert.Equal(t, "Week 1 - Jane Doe 1", createBody["name"], "file should carry the destination title")
	assert.Equal(t, mimeSpreadsheet, createBody["mimeType"], "file should be created as a spreadsheet")
	assert.Equal(t, []interface{}{"folder-2"}, createBody["parents"], "file should land in the destination folder")

	assert.Equal(t, "new-1", doc.ID())
	assert.Equal(t, "Week 1 - Jane Doe 1", doc.Title())

	placeholder, ok := doc.Placeholder()
	require.True(t, ok, "new documents should expose their seeded sheet")
	assert.Equal(t, "Sheet1", placeholder.Title())
	assert.Equal(t, int64(0), placeholder.ID())
}

func TestDocumentRecordsListsSheetsInOrder(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", "https://sheets.googleapis.com/v4/spreadsheets/ss-1",
		httpmock.NewStringResponder(200, `{
			"spreadsheetId": "ss-1",
			"properties": {"title": "Jane Workouts"},
			"sheets": [
				{"properties": {"sheetId": 11, "title": "W1", "index": 0}},
				{"properties": {"sheetId": 12, "title": "W2", "index": 1}}
			]
		}`))

	doc := &Document{client: client, id: "ss-1", title: "Jane Workouts"}

	records, err := doc.Records(context.Background())
	require.NoError(t, err, "listing records should succeed")

	require.Len(t, records, 2)
	assert.Equal(t, "W1", records[0].Title())
	assert.Equal(t, int64(11), records[0].ID())
	assert.Equal(t, 0, records[0].Index())
	assert.Equal(t, "W2", records[1].Title())
	assert.Equal(t, 1, records[1].Index())
}
