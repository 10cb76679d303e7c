package classify

import (
	"gitlab.com/tozd/go/errors"
)

// CanaryCells are the probe cells fetched from every record in one batched
// read. Their order matches the fields of Snapshot; change both together.
//
// The two workout layouts in circulation place the interesting values at
// fixed addresses: the newer layout keeps a header in A1 and the client name
// and workout description in column B rows 1-2, the older layout leaves A1
// blank and uses column B rows 3-4 instead.
var CanaryCells = []string{"A1", "B1", "B2", "B3", "B4"}

// Snapshot is an immutable capture of a record's canary cells. It is the only
// record state the classifier and the redactor ever look at, so both stay
// pure functions over it.
type Snapshot struct {
	LayoutMarker   string // A1, non-empty only in the newer layout
	NewName        string // B1, client name in the newer layout
	NewDescription string // B2, workout description in the newer layout
	OldName        string // B3, client name in the older layout
	OldDescription string // B4, workout description in the older layout
}

// SnapshotFromValues builds a Snapshot from the values of one BatchRead over
// CanaryCells, in the same order.
func SnapshotFromValues(values []string) (Snapshot, error) {
	if len(values) != len(CanaryCells) {
		return Snapshot{}, errors.Errorf("expected %d canary values, got %d", len(CanaryCells), len(values))
	}
	return Snapshot{
		LayoutMarker:   values[0],
		NewName:        values[1],
		NewDescription: values[2],
		OldName:        values[3],
		OldDescription: values[4],
	}, nil
}

// NewLayout reports whether the snapshot came from the newer sheet layout.
// The layout marker cell is blank in older sheets.
func (s Snapshot) NewLayout() bool {
	return s.LayoutMarker != ""
}

// Description returns the workout description from the cell the snapshot's
// layout keeps it in.
func (s Snapshot) Description() string {
	if s.NewLayout() {
		return s.NewDescription
	}
	return s.OldDescription
}

// Empty reports whether every canary cell is blank, i.e. the sheet holds no
// workout at all.
func (s Snapshot) Empty() bool {
	return s.LayoutMarker == "" &&
		s.NewName == "" &&
		s.NewDescription == "" &&
		s.OldName == "" &&
		s.OldDescription == ""
}
