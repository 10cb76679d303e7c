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

// Package status reports migration progress to the person running the tool.
// The orchestrator emits events through the Reporter interface; the console
// implementation renders them with a progress bar while mirroring everything
// to structured logs.
package status

import (
	"context"
	"time"
)

// 📊 Outcome represents how one record migration ended
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeMigrated         // record copied, renamed and redacted
	OutcomeSkipped          // record classified as not worth migrating
	OutcomeFailed           // migration failed, destination cleaned up
	OutcomeManualCleanup    // migration failed and cleanup failed too
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeMigrated:
		return "migrated"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	case OutcomeManualCleanup:
		return "failed_manual_cleanup"
	default:
		return "unknown"
	}
}

// 📄 DocumentEvent describes a source document whose records are being
// migrated
type DocumentEvent struct {
	Name    string // Source document title
	Records int    // Number of records the document holds
}

// 📝 RecordEvent describes the outcome of one record's migration
type RecordEvent struct {
	Document   string  // Source document title
	Record     string  // Source record title
	Index      int     // 1-based position of the record in its document
	Outcome    Outcome // How the migration ended
	DestTitle  string  // Destination document title, when migrated
	Reason     string  // Why the record was skipped
	Err        error   // What failed, for failure outcomes
	CleanupErr error   // Why the destination could not be deleted afterwards
}

// 📈 RunSummary aggregates one migration run
type RunSummary struct {
	RunID             string        // Unique id stamped on the run's logs
	Documents         int           // Documents considered
	DocumentsMigrated int           // Documents whose records were processed
	DocumentsSkipped  int           // Documents skipped or failed before processing
	Migrated          int           // Records migrated successfully
	Skipped           int           // Records classified as not migratable
	Failed            int           // Records whose migration failed
	ManualCleanups    int           // Failures that also left an orphaned document behind
	Elapsed           time.Duration // Wall-clock run duration
}

// Failures reports whether anything in the run needs human attention.
func (s RunSummary) Failures() bool {
	return s.Failed > 0 || s.ManualCleanups > 0
}

// 📢 Reporter receives progress events from the orchestrator. Implementations
// must tolerate concurrent RecordDone calls: record migrations within one
// document run in parallel.
type Reporter interface {
	// StartRun announces the run before any document is touched.
	StartRun(ctx context.Context, documents int)

	// SkipDocument reports a document left alone, with the reason.
	SkipDocument(ctx context.Context, name string, reason string)

	// FailDocument reports a document abandoned by an error before any of
	// its records were submitted.
	FailDocument(ctx context.Context, name string, err error)

	// StartDocument announces a document whose records are about to be
	// migrated.
	StartDocument(ctx context.Context, ev DocumentEvent)

	// RecordDone reports one finished record migration.
	RecordDone(ctx context.Context, ev RecordEvent)

	// FinishDocument marks the end of a document's migrations.
	FinishDocument(ctx context.Context, name string)

	// FinishRun renders the run summary.
	FinishRun(ctx context.Context, summary RunSummary)
}

// 🔇 Noop is a Reporter that does nothing, for callers that do not care
// about progress output.
type Noop struct{}

var _ Reporter = (*Noop)(nil)

func (Noop) StartRun(ctx context.Context, documents int)              {}
func (Noop) SkipDocument(ctx context.Context, name string, r string)  {}
func (Noop) FailDocument(ctx context.Context, name string, err error) {}
func (Noop) StartDocument(ctx context.Context, ev DocumentEvent)      {}
func (Noop) RecordDone(ctx context.Context, ev RecordEvent)           {}
func (Noop) FinishDocument(ctx context.Context, name string)          {}
func (Noop) FinishRun(ctx context.Context, summary RunSummary)        {}
