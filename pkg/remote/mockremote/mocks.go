// Package mockremote provides testify mocks for the remote interfaces. They
// are hand-written so tests can compile without a generation step.
package mockremote

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/walteh/sheetsplit/pkg/remote"
)

// MockClient is a mock implementation of remote.Client.
type MockClient struct {
	mock.Mock
}

var _ remote.Client = (*MockClient)(nil)

func (m *MockClient) ListDocuments(ctx context.Context, folderID string) ([]remote.DocumentInfo, error) {
	result := m.Called(ctx, folderID)
	var infos []remote.DocumentInfo
	if v := result.Get(0); v != nil {
		infos = v.([]remote.DocumentInfo)
	}
	return infos, result.Error(1)
}

func (m *MockClient) OpenDocument(ctx context.Context, id string) (remote.Document, error) {
	result := m.Called(ctx, id)
	var doc remote.Document
	if v := result.Get(0); v != nil {
		doc = v.(remote.Document)
	}
	return doc, result.Error(1)
}

func (m *MockClient) CreateDocument(ctx context.Context, title string, folderID string) (remote.Document, error) {
	result := m.Called(ctx, title, folderID)
	var doc remote.Document
	if v := result.Get(0); v != nil {
		doc = v.(remote.Document)
	}
	return doc, result.Error(1)
}

// MockDocument is a mock implementation of remote.Document.
type MockDocument struct {
	mock.Mock
}

var _ remote.Document = (*MockDocument)(nil)

func (m *MockDocument) ID() string {
	return m.Called().String(0)
}

func (m *MockDocument) Title() string {
	return m.Called().String(0)
}

func (m *MockDocument) Records(ctx context.Context) ([]remote.Record, error) {
	result := m.Called(ctx)
	var recs []remote.Record
	if v := result.Get(0); v != nil {
		recs = v.([]remote.Record)
	}
	return recs, result.Error(1)
}

func (m *MockDocument) Placeholder() (remote.Record, bool) {
	result := m.Called()
	var rec remote.Record
	if v := result.Get(0); v != nil {
		rec = v.(remote.Record)
	}
	return rec, result.Bool(1)
}

func (m *MockDocument) Share(ctx context.Context, email string, role string) error {
	return m.Called(ctx, email, role).Error(0)
}

func (m *MockDocument) Delete(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockRecord is a mock implementation of remote.Record.
type MockRecord struct {
	mock.Mock
}

var _ remote.Record = (*MockRecord)(nil)

func (m *MockRecord) ID() int64 {
	result := m.Called()
	return result.Get(0).(int64)
}

func (m *MockRecord) Index() int {
	return m.Called().Int(0)
}

func (m *MockRecord) Title() string {
	return m.Called().String(0)
}

func (m *MockRecord) BatchRead(ctx context.Context, cells []string) ([]string, error) {
	result := m.Called(ctx, cells)
	var values []string
	if v := result.Get(0); v != nil {
		values = v.([]string)
	}
	return values, result.Error(1)
}

func (m *MockRecord) Rows(ctx context.Context) ([][]string, error) {
	result := m.Called(ctx)
	var rows [][]string
	if v := result.Get(0); v != nil {
		rows = v.([][]string)
	}
	return rows, result.Error(1)
}

func (m *MockRecord) AppendRows(ctx context.Context, rows [][]string) error {
	return m.Called(ctx, rows).Error(0)
}

func (m *MockRecord) CopyTo(ctx context.Context, dest remote.Document) (remote.Record, error) {
	result := m.Called(ctx, dest)
	var rec remote.Record
	if v := result.Get(0); v != nil {
		rec = v.(remote.Record)
	}
	return rec, result.Error(1)
}

func (m *MockRecord) Rename(ctx context.Context, title string) error {
	return m.Called(ctx, title).Error(0)
}

func (m *MockRecord) Clear(ctx context.Context, ranges ...string) error {
	return m.Called(ctx, ranges).Error(0)
}

func (m *MockRecord) Delete(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
