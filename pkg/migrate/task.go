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
	"time"

	"github.com/walteh/sheetsplit/pkg/classify"
	"github.com/walteh/sheetsplit/pkg/remote"
	"github.com/walteh/sheetsplit/pkg/status"
)

// 📊 TaskState tracks how far one record's migration got
type TaskState int

const (
	// StatePending means the task has not started yet.
	StatePending TaskState = iota
	// StateClassified is terminal for records the classifier rejected.
	StateClassified
	// StateNamed means the destination title was constructed.
	StateNamed
	// StateDestCreated means the destination document exists (and is the
	// point from which failures must clean it up).
	StateDestCreated
	// StateCopied means the record landed in the destination document.
	StateCopied
	// StateRenamed means the copy was renamed and the placeholder deleted.
	StateRenamed
	// StateRedacted is the terminal success state.
	StateRedacted
	// StateFailed is terminal for failures whose destination was cleaned up
	// (or never existed).
	StateFailed
	// StateFailedManualCleanup is terminal for failures that also left an
	// orphaned destination document behind.
	StateFailedManualCleanup
)

// String returns a string representation of TaskState
func (s TaskState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateClassified:
		return "classified"
	case StateNamed:
		return "named"
	case StateDestCreated:
		return "dest_created"
	case StateCopied:
		return "copied"
	case StateRenamed:
		return "renamed"
	case StateRedacted:
		return "redacted"
	case StateFailed:
		return "failed"
	case StateFailedManualCleanup:
		return "failed_manual_cleanup"
	default:
		return "unknown"
	}
}

// 📦 Task is the unit of work for one record: everything a worker needs to
// carry the record into its own destination document. Tasks are never
// retried as a whole; only the remote calls inside them are.
type Task struct {
	Document       string            // Source document title
	RecordTitle    string            // Source record title
	Record         remote.Record     // The record to copy
	Index          int               // 1-based position within the document
	Snapshot       classify.Snapshot // Canary cells captured before the copy
	Description    string            // Workout description from the classifier
	TranslatedName string            // Client name from the translation table
}

// 📝 Result is the terminal outcome of one record
type Result struct {
	Document   string    // Source document title
	Record     string    // Source record title
	Index      int       // 1-based position within the document
	State      TaskState // Terminal state the task reached
	DestID     string    // Destination document id, when one survived
	DestTitle  string    // Destination document title, when migrated
	Reason     string    // Why the classifier rejected the record
	Err        error     // What failed, for failure states
	CleanupErr error     // Why compensating deletion failed, if it did
}

// Outcome maps the terminal state onto the reporting vocabulary.
func (r Result) Outcome() status.Outcome {
	switch r.State {
	case StateRedacted:
		return status.OutcomeMigrated
	case StateClassified:
		return status.OutcomeSkipped
	case StateFailed:
		return status.OutcomeFailed
	case StateFailedManualCleanup:
		return status.OutcomeManualCleanup
	default:
		return status.OutcomeUnknown
	}
}

// event converts the result into its reporter event.
func (r Result) event() status.RecordEvent {
	return status.RecordEvent{
		Document:   r.Document,
		Record:     r.Record,
		Index:      r.Index,
		Outcome:    r.Outcome(),
		DestTitle:  r.DestTitle,
		Reason:     r.Reason,
		Err:        r.Err,
		CleanupErr: r.CleanupErr,
	}
}

// 📈 Summary collects every record result of one run
type Summary struct {
	RunID   string
	Started time.Time
	Results []Result
	Stats   status.RunSummary
}
