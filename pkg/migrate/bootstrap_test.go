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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/pkg/config"
	"github.com/walteh/sheetsplit/pkg/remote"
	"github.com/walteh/sheetsplit/pkg/remote/mockremote"
	"github.com/walteh/sheetsplit/pkg/translate"
)

func TestBootstrapCreatesTranslationSheet(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)
	cfg.Share = &config.ShareArgs{Email: "coach@example.com", Role: "writer"}

	wantRows := [][]string{
		{translate.HeaderOriginalName, translate.HeaderDescription, translate.HeaderSkip},
		{"Jane Workouts"},
		{"Bob Workouts"},
	}

	sheet := &mockremote.MockRecord{}
	sheet.On("AppendRows", mock.Anything, wantRows).Return(nil).Once()

	doc := &mockremote.MockDocument{}
	doc.On("ID").Return("table-1")
	doc.On("Placeholder").Return(sheet, true).Once()
	doc.On("Share", mock.Anything, "coach@example.com", "writer").Return(nil).Once()

	client := &mockremote.MockClient{}
	client.On("ListDocuments", mock.Anything, "src-folder").
		Return([]remote.DocumentInfo{
			{ID: "doc-1", Name: "Jane Workouts"},
			{ID: "doc-2", Name: "Bob Workouts"},
			{ID: "stale", Name: "Workout Translations"},
		}, nil).Once()
	client.On("CreateDocument", mock.Anything, translate.TableTitle, "dst-folder").
		Return(doc, nil).Once()

	mgr := newMigrator(t, cfg, client, nil)

	res, err := mgr.Bootstrap(ctx)
	require.NoError(t, err, "bootstrap should succeed")

	assert.Equal(t, "table-1", res.DocumentID, "id of the new sheet should be returned")
	assert.Equal(t, 2, res.Clients, "a stale translation sheet must not list itself")

	mock.AssertExpectationsForObjects(t, client, doc, sheet)
}

func TestBootstrapFailsWhenSheetUnwritable(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)

	doc := &mockremote.MockDocument{}
	doc.On("Title").Return(translate.TableTitle)
	doc.On("Placeholder").Return(nil, false).Once()

	client := &mockremote.MockClient{}
	client.On("ListDocuments", mock.Anything, "src-folder").
		Return([]remote.DocumentInfo{{ID: "doc-1", Name: "Jane Workouts"}}, nil).Once()
	client.On("CreateDocument", mock.Anything, translate.TableTitle, "dst-folder").
		Return(doc, nil).Once()

	mgr := newMigrator(t, cfg, client, nil)

	_, err := mgr.Bootstrap(ctx)
	require.Error(t, err, "a sheet without a record cannot be filled")
	assert.Contains(t, err.Error(), "no record to write into")
}

func TestBootstrapFailsWhenCreationFails(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)

	client := &mockremote.MockClient{}
	client.On("ListDocuments", mock.Anything, "src-folder").
		Return([]remote.DocumentInfo{{ID: "doc-1", Name: "Jane Workouts"}}, nil).Once()
	client.On("CreateDocument", mock.Anything, translate.TableTitle, "dst-folder").
		Return(nil, errors.New("folder is read only")).Once()

	mgr := newMigrator(t, cfg, client, nil)

	_, err := mgr.Bootstrap(ctx)
	require.Error(t, err, "creation failure is fatal")
	assert.Contains(t, err.Error(), "creating translation sheet")
}
