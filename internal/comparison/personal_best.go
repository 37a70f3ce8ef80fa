package comparison

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// PersonalBest reports each segment's stored PersonalBestSplitTime
// directly — it is not derived from history, it is updated by the timer
// whenever an attempt finishes as a new best (spec.md §4.4).
type PersonalBest struct{}

func (PersonalBest) Name() string { return run.ComparisonPersonalBest }

func (PersonalBest) Generate(r *run.Run, method xtime.Method) []xtime.Time {
	out := make([]xtime.Time, len(r.Segments))
	for i, seg := range r.Segments {
		out[i] = seg.PersonalBestSplitTime
	}
	return out
}
