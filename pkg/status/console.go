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

package status

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

func init() {
	// Skipped-record lines go through the debug printer
	pterm.EnableDebugMessages()
}

// 📢 Console renders progress with a per-run progress bar and one line per
// record, and mirrors every event to the structured log carried in ctx.
type Console struct {
	out io.Writer

	mu  sync.Mutex
	bar *pterm.ProgressbarPrinter
}

var _ Reporter = (*Console)(nil)

// 🏭 NewConsole creates a console reporter writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) printer(base pterm.PrefixPrinter, emoji string) *pterm.PrefixPrinter {
	return base.WithWriter(c.out).WithPrefix(pterm.Prefix{Text: emoji, Style: base.Prefix.Style})
}

func (c *Console) StartRun(ctx context.Context, documents int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	title := color.New(color.Bold, color.FgCyan).Sprint("sheetsplit")
	fmt.Fprintf(c.out, "\n%s %s\n\n", title, color.New(color.Faint).Sprintf("• splitting %d documents", documents))

	bar, err := pterm.DefaultProgressbar.
		WithWriter(c.out).
		WithTotal(documents).
		WithTitle("Copying").
		Start()
	if err == nil {
		c.bar = bar
	}

	zerolog.Ctx(ctx).Info().Int("documents", documents).Msg("starting migration run")
}

func (c *Console) SkipDocument(ctx context.Context, name string, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.printer(pterm.Debug, "⏭️").Println(fmt.Sprintf("Skipped %s (%s)", name, reason))
	c.increment()

	zerolog.Ctx(ctx).Info().Str("document", name).Str("reason", reason).Msg("document skipped")
}

func (c *Console) FailDocument(ctx context.Context, name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.printer(pterm.Error, "❌").Println(fmt.Sprintf("Could not process %s", name))
	pterm.Error.WithWriter(c.out).Println(err)
	c.increment()

	zerolog.Ctx(ctx).Error().Err(err).Str("document", name).Msg("document failed")
}

func (c *Console) StartDocument(ctx context.Context, ev DocumentEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bar != nil {
		c.bar.UpdateTitle("Copying " + ev.Name)
	}
	c.printer(pterm.Info, "📄").Println(fmt.Sprintf("Splitting %s (%d records)", ev.Name, ev.Records))

	zerolog.Ctx(ctx).Info().Str("document", ev.Name).Int("records", ev.Records).Msg("starting document")
}

func (c *Console) RecordDone(ctx context.Context, ev RecordEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger := zerolog.Ctx(ctx)

	switch ev.Outcome {
	case OutcomeMigrated:
		c.printer(pterm.Success, "✨").Println(fmt.Sprintf("Created %s", ev.DestTitle))
		logger.Info().
			Str("document", ev.Document).
			Str("record", ev.Record).
			Int("index", ev.Index).
			Str("dest_title", ev.DestTitle).
			Msg("record migrated")

	case OutcomeSkipped:
		c.printer(pterm.Debug, "⏭️").Println(fmt.Sprintf("Skipped %s / %s (%s)", ev.Document, ev.Record, ev.Reason))
		logger.Debug().
			Str("document", ev.Document).
			Str("record", ev.Record).
			Str("reason", ev.Reason).
			Msg("record skipped")

	case OutcomeFailed:
		c.printer(pterm.Error, "❌").Println(fmt.Sprintf("Failed %s / %s", ev.Document, ev.Record))
		pterm.Error.WithWriter(c.out).Println(ev.Err)
		logger.Error().
			Err(ev.Err).
			Str("document", ev.Document).
			Str("record", ev.Record).
			Msg("record failed")

	case OutcomeManualCleanup:
		c.printer(pterm.Error, "❌").Println(fmt.Sprintf("Failed %s / %s", ev.Document, ev.Record))
		pterm.Error.WithWriter(c.out).Println(ev.Err)
		c.printer(pterm.Warning, "⚠️").Println(fmt.Sprintf(
			"Manual cleanup required: destination for %s / %s could not be deleted: %v",
			ev.Document, ev.Record, ev.CleanupErr))
		logger.Error().
			Err(ev.Err).
			AnErr("cleanup_error", ev.CleanupErr).
			Str("document", ev.Document).
			Str("record", ev.Record).
			Msg("record failed and cleanup failed, manual intervention required")
	}
}

func (c *Console) FinishDocument(ctx context.Context, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.increment()
	zerolog.Ctx(ctx).Debug().Str("document", name).Msg("document finished")
}

func (c *Console) FinishRun(ctx context.Context, summary RunSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bar != nil {
		_, _ = c.bar.Stop()
		c.bar = nil
	}

	fmt.Fprintln(c.out)
	if summary.Failures() {
		fmt.Fprintf(c.out, "⚠️  %s\n", color.New(color.FgYellow).Sprintf(
			"migrated %d records (%d skipped), %d failed, %d need manual cleanup",
			summary.Migrated, summary.Skipped, summary.Failed, summary.ManualCleanups))
	} else {
		fmt.Fprintf(c.out, "✅ %s\n", color.New(color.FgGreen).Sprintf(
			"migrated %d records, skipped %d", summary.Migrated, summary.Skipped))
	}

	zerolog.Ctx(ctx).Info().
		Str("run_id", summary.RunID).
		Int("documents", summary.Documents).
		Int("documents_migrated", summary.DocumentsMigrated).
		Int("documents_skipped", summary.DocumentsSkipped).
		Int("migrated", summary.Migrated).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Int("manual_cleanups", summary.ManualCleanups).
		Dur("elapsed", summary.Elapsed).
		Msg("migration run finished")
}

// increment assumes c.mu is held.
func (c *Console) increment() {
	if c.bar != nil {
		c.bar.Increment()
	}
}
