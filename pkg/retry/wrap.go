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

	"github.com/walteh/sheetsplit/pkg/remote"
)

// 🔌 WrapClient decorates a remote.Client so every remote call it (and every
// document and record reached through it) performs goes through Do with the
// given config. Pure accessors like ID and Title never hit the network and
// pass through untouched.
func WrapClient(inner remote.Client, cfg Config) remote.Client {
	return &clientWrapper{inner: inner, cfg: cfg}
}

type clientWrapper struct {
	inner remote.Client
	cfg   Config
}

var _ remote.Client = (*clientWrapper)(nil)

func (w *clientWrapper) ListDocuments(ctx context.Context, folderID string) ([]remote.DocumentInfo, error) {
	return DoValue(ctx, w.cfg, "list documents", func() ([]remote.DocumentInfo, error) {
		return w.inner.ListDocuments(ctx, folderID)
	})
}

func (w *clientWrapper) OpenDocument(ctx context.Context, id string) (remote.Document, error) {
	doc, err := DoValue(ctx, w.cfg, "open document", func() (remote.Document, error) {
		return w.inner.OpenDocument(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &documentWrapper{inner: doc, cfg: w.cfg}, nil
}

func (w *clientWrapper) CreateDocument(ctx context.Context, title string, folderID string) (remote.Document, error) {
	doc, err := DoValue(ctx, w.cfg, "create document", func() (remote.Document, error) {
		return w.inner.CreateDocument(ctx, title, folderID)
	})
	if err != nil {
		return nil, err
	}
	return &documentWrapper{inner: doc, cfg: w.cfg}, nil
}

type documentWrapper struct {
	inner remote.Document
	cfg   Config
}

var _ remote.Document = (*documentWrapper)(nil)

func (w *documentWrapper) ID() string {
	return w.inner.ID()
}

func (w *documentWrapper) Title() string {
	return w.inner.Title()
}

func (w *documentWrapper) Records(ctx context.Context) ([]remote.Record, error) {
	recs, err := DoValue(ctx, w.cfg, "list records", func() ([]remote.Record, error) {
		return w.inner.Records(ctx)
	})
	if err != nil {
		return nil, err
	}
	wrapped := make([]remote.Record, len(recs))
	for i, rec := range recs {
		wrapped[i] = &recordWrapper{inner: rec, cfg: w.cfg}
	}
	return wrapped, nil
}

func (w *documentWrapper) Placeholder() (remote.Record, bool) {
	rec, ok := w.inner.Placeholder()
	if !ok {
		return nil, false
	}
	return &recordWrapper{inner: rec, cfg: w.cfg}, true
}

func (w *documentWrapper) Share(ctx context.Context, email string, role string) error {
	return Do(ctx, w.cfg, "share document", func() error {
		return w.inner.Share(ctx, email, role)
	})
}

func (w *documentWrapper) Delete(ctx context.Context) error {
	return Do(ctx, w.cfg, "delete document", func() error {
		return w.inner.Delete(ctx)
	})
}

type recordWrapper struct {
	inner remote.Record
	cfg   Config
}

var _ remote.Record = (*recordWrapper)(nil)

func (w *recordWrapper) ID() int64 {
	return w.inner.ID()
}

func (w *recordWrapper) Index() int {
	return w.inner.Index()
}

func (w *recordWrapper) Title() string {
	return w.inner.Title()
}

func (w *recordWrapper) BatchRead(ctx context.Context, cells []string) ([]string, error) {
	return DoValue(ctx, w.cfg, "batch read cells", func() ([]string, error) {
		return w.inner.BatchRead(ctx, cells)
	})
}

func (w *recordWrapper) Rows(ctx context.Context) ([][]string, error) {
	return DoValue(ctx, w.cfg, "read rows", func() ([][]string, error) {
		return w.inner.Rows(ctx)
	})
}

func (w *recordWrapper) AppendRows(ctx context.Context, rows [][]string) error {
	return Do(ctx, w.cfg, "append rows", func() error {
		return w.inner.AppendRows(ctx, rows)
	})
}

func (w *recordWrapper) CopyTo(ctx context.Context, dest remote.Document) (remote.Record, error) {
	rec, err := DoValue(ctx, w.cfg, "copy record", func() (remote.Record, error) {
		return w.inner.CopyTo(ctx, dest)
	})
	if err != nil {
		return nil, err
	}
	return &recordWrapper{inner: rec, cfg: w.cfg}, nil
}

func (w *recordWrapper) Rename(ctx context.Context, title string) error {
	return Do(ctx, w.cfg, "rename record", func() error {
		return w.inner.Rename(ctx, title)
	})
}

func (w *recordWrapper) Clear(ctx context.Context, ranges ...string) error {
	return Do(ctx, w.cfg, "clear cells", func() error {
		return w.inner.Clear(ctx, ranges...)
	})
}

func (w *recordWrapper) Delete(ctx context.Context) error {
	return Do(ctx, w.cfg, "delete record", func() error {
		return w.inner.Delete(ctx)
	})
}
