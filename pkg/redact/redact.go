// Package redact removes client-identifying cells from a migrated record.
// The destination document is shared outside the gym, so the client name
// must not survive the copy.
package redact

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/pkg/classify"
	"github.com/walteh/sheetsplit/pkg/remote"
)

// Cell ranges cleared per layout. The newer layout keeps the client name in
// B1 next to a "Name: " label, so the whole row segment is cleared in case a
// coach typed the name into a neighboring cell. The older layout only ever
// has the name in B3.
const (
	newNameRange = "A1:C1"
	oldNameCell  = "B3"
)

// Ranges returns the cell ranges that must be cleared for the snapshot's
// layout, or nothing when no name cell is filled in.
func Ranges(s classify.Snapshot) []string {
	switch {
	case s.NewName != "":
		return []string{newNameRange}
	case s.OldName != "":
		return []string{oldNameCell}
	default:
		return nil
	}
}

// Apply clears the identifying cells of the destination record. The snapshot
// is the one captured from the source record before the copy; the copy
// preserves cell addresses, so the same ranges apply to the destination.
// When the snapshot holds no name at all, Apply makes no remote call.
func Apply(ctx context.Context, s classify.Snapshot, rec remote.Record) error {
	ranges := Ranges(s)
	if len(ranges) == 0 {
		return nil
	}
	if err := rec.Clear(ctx, ranges...); err != nil {
		return errors.Errorf("clearing cells %v: %w", ranges, err)
	}
	return nil
}
