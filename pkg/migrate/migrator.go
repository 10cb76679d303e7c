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
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/sheetsplit/pkg/classify"
	"github.com/walteh/sheetsplit/pkg/config"
	"github.com/walteh/sheetsplit/pkg/redact"
	"github.com/walteh/sheetsplit/pkg/remote"
	"github.com/walteh/sheetsplit/pkg/status"
	"github.com/walteh/sheetsplit/pkg/translate"
)

// 🎯 Options configures a Migrator
type Options struct {
	Config   *config.Config  // Validated configuration
	Client   remote.Client   // Remote store client, retry-wrapped by the caller
	Reporter status.Reporter // Progress sink, defaults to status.Noop
}

// 🏭 Migrator splits every valid record of the source collection into its
// own destination document. One Migrator performs one run.
type Migrator struct {
	cfg      *config.Config
	client   remote.Client
	reporter status.Reporter
	rules    classify.Rules
	workers  int
}

// 🏗️ New creates a Migrator from options
func New(opts Options) (*Migrator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Client == nil {
		return nil, errors.Errorf("remote client is required")
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = status.Noop{}
	}

	workers := opts.Config.Workers
	if workers < 1 {
		workers = config.DefaultWorkers
	}

	return &Migrator{
		cfg:      opts.Config,
		client:   opts.Client,
		reporter: reporter,
		rules:    opts.Config.ClassifyRules(),
		workers:  workers,
	}, nil
}

// 🏃 Run migrates the whole source collection. It returns an error only for
// setup failures (cannot list the source documents, cannot load the
// translation table); everything after that is recovered per document or per
// record and collected into the summary.
func (m *Migrator) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	summary := &Summary{RunID: runID, Started: time.Now()}
	summary.Stats.RunID = runID

	infos, err := m.client.ListDocuments(ctx, m.cfg.SourceFolderID)
	if err != nil {
		return nil, errors.Errorf("listing source documents: %w", err)
	}
	infos = m.filterExcluded(ctx, infos)

	table, err := m.loadTable(ctx)
	if err != nil {
		return nil, errors.Errorf("loading translation table: %w", err)
	}

	m.reporter.StartRun(ctx, len(infos))
	summary.Stats.Documents = len(infos)

	for _, info := range infos {
		if !table.ShouldMigrate(info.Name) {
			reason := "flagged skip in translation table"
			if _, ok := table.Lookup(info.Name); !ok {
				reason = "not in translation table"
			}
			summary.Stats.DocumentsSkipped++
			m.reporter.SkipDocument(ctx, info.Name, reason)
			continue
		}

		doc, err := m.client.OpenDocument(ctx, info.ID)
		if err != nil {
			summary.Stats.DocumentsSkipped++
			m.reporter.FailDocument(ctx, info.Name, errors.Errorf("opening document: %w", err))
			continue
		}

		results, err := m.migrateDocument(ctx, doc, table)
		if err != nil {
			summary.Stats.DocumentsSkipped++
			m.reporter.FailDocument(ctx, info.Name, err)
			continue
		}
		summary.Stats.DocumentsMigrated++
		summary.Results = append(summary.Results, results...)
	}

	m.tally(summary)
	m.reporter.FinishRun(ctx, summary.Stats)

	return summary, nil
}

// migrateDocument fans the document's records out to the worker pool and
// waits for all of them. Record failures become results, never errors: one
// broken record must not cancel its siblings mid-copy.
func (m *Migrator) migrateDocument(ctx context.Context, doc remote.Document, table *translate.Table) ([]Result, error) {
	records, err := doc.Records(ctx)
	if err != nil {
		return nil, errors.Errorf("listing records: %w", err)
	}

	m.reporter.StartDocument(ctx, status.DocumentEvent{Name: doc.Title(), Records: len(records)})
	defer m.reporter.FinishDocument(ctx, doc.Title())

	translated := table.Translate(doc.Title())

	var (
		mu      sync.Mutex
		results []Result
	)
	report := func(res Result) {
		mu.Lock()
		results = append(results, res)
		mu.Unlock()
		m.reporter.RecordDone(ctx, res.event())
	}

	var g errgroup.Group
	g.SetLimit(m.workers)

	for i, rec := range records {
		index := i + 1
		base := Result{Document: doc.Title(), Record: rec.Title(), Index: index}

		values, err := rec.BatchRead(ctx, classify.CanaryCells)
		if err != nil {
			base.State = StateFailed
			base.Err = errors.Errorf("reading canary cells: %w", err)
			report(base)
			continue
		}
		snap, err := classify.SnapshotFromValues(values)
		if err != nil {
			base.State = StateFailed
			base.Err = errors.Errorf("decoding canary cells: %w", err)
			report(base)
			continue
		}

		cls := m.rules.Classify(snap)
		if !cls.Valid {
			base.State = StateClassified
			base.Reason = cls.Reason
			report(base)
			continue
		}

		task := &Task{
			Document:       doc.Title(),
			RecordTitle:    rec.Title(),
			Record:         rec,
			Index:          index,
			Snapshot:       snap,
			Description:    cls.Description,
			TranslatedName: translated,
		}
		g.Go(func() error {
			report(m.runTask(ctx, task))
			return nil
		})
	}

	_ = g.Wait()

	return results, nil
}

// runTask carries one record into its own destination document.
func (m *Migrator) runTask(ctx context.Context, task *Task) Result {
	res := Result{Document: task.Document, Record: task.RecordTitle, Index: task.Index}

	title := DestinationTitle(task.Description, task.TranslatedName, task.Index)

	dest, err := m.client.CreateDocument(ctx, title, m.cfg.DestFolderID)
	if err != nil {
		res.State = StateFailed
		res.Err = errors.Errorf("creating destination document: %w", err)
		return res
	}

	if err := m.finishDestination(ctx, task, dest); err != nil {
		return m.abandon(ctx, res, dest, err)
	}

	res.State = StateRedacted
	res.DestID = dest.ID()
	res.DestTitle = title
	return res
}

// finishDestination runs the steps that follow destination creation: share,
// copy, rename, placeholder deletion, redaction. Any error means the caller
// must tear the destination down.
func (m *Migrator) finishDestination(ctx context.Context, task *Task, dest remote.Document) error {
	if email := m.cfg.ShareEmail(); email != "" {
		if err := dest.Share(ctx, email, m.cfg.ShareRole()); err != nil {
			return errors.Errorf("sharing destination document: %w", err)
		}
	}

	copied, err := task.Record.CopyTo(ctx, dest)
	if err != nil {
		return errors.Errorf("copying record: %w", err)
	}

	recordTitle := task.Description
	if recordTitle == "" {
		recordTitle = task.RecordTitle
	}
	if err := copied.Rename(ctx, recordTitle); err != nil {
		return errors.Errorf("renaming copied record: %w", err)
	}

	// The store seeds new documents with an empty record; the real copy has
	// landed, so the placeholder goes.
	if placeholder, ok := dest.Placeholder(); ok {
		if err := placeholder.Delete(ctx); err != nil {
			return errors.Errorf("deleting placeholder record: %w", err)
		}
	}

	if err := redact.Apply(ctx, task.Snapshot, copied); err != nil {
		return errors.Errorf("redacting copied record: %w", err)
	}

	return nil
}

// abandon performs compensating deletion of the destination document after a
// failure. Deletion ignores the run's cancellation: an orphaned half-copied
// document is worse than one late delete call.
func (m *Migrator) abandon(ctx context.Context, res Result, dest remote.Document, cause error) Result {
	res.Err = cause

	cleanupCtx := context.WithoutCancel(ctx)
	if err := dest.Delete(cleanupCtx); err != nil {
		res.State = StateFailedManualCleanup
		res.DestID = dest.ID()
		res.CleanupErr = errors.Errorf("deleting destination document: %w", err)
		return res
	}

	res.State = StateFailed
	return res
}

// loadTable opens the translation sheet and parses its first record.
func (m *Migrator) loadTable(ctx context.Context) (*translate.Table, error) {
	doc, err := m.client.OpenDocument(ctx, m.cfg.TranslationSheetID)
	if err != nil {
		return nil, errors.Errorf("opening translation sheet: %w", err)
	}
	records, err := doc.Records(ctx)
	if err != nil {
		return nil, errors.Errorf("listing translation sheet records: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("translation sheet %q has no records", doc.Title())
	}

	table, err := translate.Load(ctx, records[0])
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Int("entries", table.Len()).Msg("translation table loaded")
	return table, nil
}

// filterExcluded drops documents whose names match an exclude pattern, the
// translation table itself first among them.
func (m *Migrator) filterExcluded(ctx context.Context, infos []remote.DocumentInfo) []remote.DocumentInfo {
	logger := zerolog.Ctx(ctx)

	var kept []remote.DocumentInfo
	for _, info := range infos {
		if m.excluded(ctx, info.Name) {
			logger.Debug().Str("document", info.Name).Msg("document excluded by pattern")
			continue
		}
		kept = append(kept, info)
	}
	return kept
}

// excluded checks a document name against the configured exclude patterns.
func (m *Migrator) excluded(ctx context.Context, name string) bool {
	for _, pattern := range m.cfg.ExcludeNames {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("document", name).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// tally fills the summary counters from the collected results.
func (m *Migrator) tally(summary *Summary) {
	for _, res := range summary.Results {
		switch res.State {
		case StateRedacted:
			summary.Stats.Migrated++
		case StateClassified:
			summary.Stats.Skipped++
		case StateFailed:
			summary.Stats.Failed++
		case StateFailedManualCleanup:
			summary.Stats.ManualCleanups++
		}
	}
	summary.Stats.Elapsed = time.Since(summary.Started)
}
