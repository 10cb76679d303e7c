package redact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/pkg/classify"
	"github.com/walteh/sheetsplit/pkg/remote/mockremote"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		snapshot   classify.Snapshot
		wantRanges []string
	}{
		{
			name:       "new_layout_name_clears_the_row_segment",
			snapshot:   classify.Snapshot{LayoutMarker: "Workout Log", NewName: "Jane", NewDescription: "Week 1"},
			wantRanges: []string{"A1:C1"},
		},
		{
			name:       "old_layout_name_clears_a_single_cell",
			snapshot:   classify.Snapshot{OldName: "Joe", OldDescription: "Week 2"},
			wantRanges: []string{"B3"},
		},
		{
			name: "new_layout_name_wins_when_both_are_filled",
			snapshot: classify.Snapshot{
				LayoutMarker: "Workout Log",
				NewName:      "Jane",
				OldName:      "Jane",
			},
			wantRanges: []string{"A1:C1"},
		},
		{
			name:       "no_name_makes_no_remote_call",
			snapshot:   classify.Snapshot{LayoutMarker: "Workout Log", NewDescription: "Week 1"},
			wantRanges: nil,
		},
		{
			name:       "blank_snapshot_makes_no_remote_call",
			snapshot:   classify.Snapshot{},
			wantRanges: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			rec := &mockremote.MockRecord{}
			if tt.wantRanges != nil {
				rec.On("Clear", ctx, tt.wantRanges).Return(nil).Once()
			}

			err := Apply(ctx, tt.snapshot, rec)
			require.NoError(t, err, "Apply should succeed")
			rec.AssertExpectations(t)
		})
	}
}

func TestApplyWrapsClearError(t *testing.T) {
	ctx := context.Background()

	rec := &mockremote.MockRecord{}
	rec.On("Clear", ctx, []string{"A1:C1"}).Return(errors.New("rate limited"))

	err := Apply(ctx, classify.Snapshot{LayoutMarker: "Workout Log", NewName: "Jane"}, rec)
	require.Error(t, err, "remote failure should surface")
	assert.Contains(t, err.Error(), "rate limited", "underlying error should be kept")
	assert.Contains(t, err.Error(), "A1:C1", "error should name the range that failed")
}
