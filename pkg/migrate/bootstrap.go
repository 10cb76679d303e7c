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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/pkg/translate"
)

// 📊 BootstrapResult describes the translation table created by Bootstrap
type BootstrapResult struct {
	DocumentID string // ID of the new translation sheet
	Clients    int    // Number of source documents listed in it
}

// 🏗️ Bootstrap creates a fresh translation table in the destination folder,
// pre-filled with one row per source document. Coaches then fill in the
// descriptions and skip flags before the first migration run. All errors
// here are fatal: there is nothing to recover per document.
func (m *Migrator) Bootstrap(ctx context.Context) (*BootstrapResult, error) {
	infos, err := m.client.ListDocuments(ctx, m.cfg.SourceFolderID)
	if err != nil {
		return nil, errors.Errorf("listing source documents: %w", err)
	}
	infos = m.filterExcluded(ctx, infos)

	doc, err := m.client.CreateDocument(ctx, translate.TableTitle, m.cfg.DestFolderID)
	if err != nil {
		return nil, errors.Errorf("creating translation sheet: %w", err)
	}

	if email := m.cfg.ShareEmail(); email != "" {
		if err := doc.Share(ctx, email, m.cfg.ShareRole()); err != nil {
			return nil, errors.Errorf("sharing translation sheet: %w", err)
		}
	}

	sheet, ok := doc.Placeholder()
	if !ok {
		return nil, errors.Errorf("created translation sheet %q has no record to write into", doc.Title())
	}

	rows := [][]string{{translate.HeaderOriginalName, translate.HeaderDescription, translate.HeaderSkip}}
	for _, info := range infos {
		rows = append(rows, []string{info.Name})
	}
	if err := sheet.AppendRows(ctx, rows); err != nil {
		return nil, errors.Errorf("writing client list: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("document_id", doc.ID()).
		Int("clients", len(infos)).
		Msg("translation sheet created")

	return &BootstrapResult{DocumentID: doc.ID(), Clients: len(infos)}, nil
}
