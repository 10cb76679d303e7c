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

package retry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/pkg/remote"
	"github.com/walteh/sheetsplit/pkg/remote/mockremote"
)

func TestWrapClientRetriesTransientFailures(t *testing.T) {
	ctx := context.Background()

	inner := &mockremote.MockClient{}
	inner.On("ListDocuments", ctx, "folder-1").Return(nil, errors.New("rate limited")).Twice()
	inner.On("ListDocuments", ctx, "folder-1").Return([]remote.DocumentInfo{{ID: "doc-1", Name: "Jane Workouts"}}, nil).Once()

	client := WrapClient(inner, testConfig())
	infos, err := client.ListDocuments(ctx, "folder-1")

	require.NoError(t, err, "transient failures should be absorbed")
	assert.Equal(t, []remote.DocumentInfo{{ID: "doc-1", Name: "Jane Workouts"}}, infos, "result from the successful attempt")
	inner.AssertExpectations(t)
}

func TestWrapClientWrapsReachedDocumentsAndRecords(t *testing.T) {
	ctx := context.Background()

	innerRec := &mockremote.MockRecord{}
	innerRec.On("Title").Return("Week 1")
	innerRec.On("Rename", ctx, "redone").Return(errors.New("flaky")).Once()
	innerRec.On("Rename", ctx, "redone").Return(nil).Once()

	innerDoc := &mockremote.MockDocument{}
	innerDoc.On("ID").Return("doc-1")
	innerDoc.On("Records", ctx).Return([]remote.Record{innerRec}, nil).Once()

	innerClient := &mockremote.MockClient{}
	innerClient.On("OpenDocument", ctx, "doc-1").Return(innerDoc, nil).Once()

	client := WrapClient(innerClient, testConfig())

	doc, err := client.OpenDocument(ctx, "doc-1")
	require.NoError(t, err, "open should succeed")
	assert.Equal(t, "doc-1", doc.ID(), "accessors pass through to the inner document")

	recs, err := doc.Records(ctx)
	require.NoError(t, err, "listing records should succeed")
	require.Len(t, recs, 1, "one record expected")
	assert.Equal(t, "Week 1", recs[0].Title(), "accessors pass through to the inner record")

	// The record reached through the wrapped document retries too.
	require.NoError(t, recs[0].Rename(ctx, "redone"), "rename should recover from the flaky attempt")

	innerClient.AssertExpectations(t)
	innerDoc.AssertExpectations(t)
	innerRec.AssertExpectations(t)
}

func TestWrapClientStopsOnPermanentErrors(t *testing.T) {
	ctx := context.Background()

	innerDoc := &mockremote.MockDocument{}
	innerDoc.On("Share", ctx, "coach@example.com", "writer").
		Return(Permanent(errors.New("permission denied"))).Once()

	innerClient := &mockremote.MockClient{}
	innerClient.On("CreateDocument", ctx, "Week 1 - Jane", "dest-folder").Return(innerDoc, nil).Once()

	client := WrapClient(innerClient, testConfig())

	doc, err := client.CreateDocument(ctx, "Week 1 - Jane", "dest-folder")
	require.NoError(t, err, "create should succeed")

	err = doc.Share(ctx, "coach@example.com", "writer")
	require.Error(t, err, "permanent failure should surface")
	assert.Contains(t, err.Error(), "permission denied", "underlying error should be kept")
	innerDoc.AssertExpectations(t)
}
