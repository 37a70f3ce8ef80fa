package comparison

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// BestSplitTimes reconstructs, for each segment, the smallest cumulative
// split time ever observed there across past attempts. Since Segment
// history stores segment times rather than split times, each attempt's
// split times are rebuilt by summing forward from the first segment; an
// attempt that skipped a segment (absent history entry) stops
// contributing to every later segment, since its cumulative total past
// that point is unknown (grounded on original LiveSplit-core's
// best_split_times comparison generator).
type BestSplitTimes struct{}

func (BestSplitTimes) Name() string { return run.ComparisonBestSplitTimes }

func (BestSplitTimes) Generate(r *run.Run, method xtime.Method) []xtime.Time {
	best := make([]*xtime.Duration, len(r.Segments))
	for _, attempt := range r.AttemptHistory {
		var running xtime.Duration
		for i, seg := range r.Segments {
			sample, ok := seg.HistorySample(attempt.AttemptID)
			if !ok {
				break
			}
			d, ok := sample.Get(method)
			if !ok {
				break
			}
			running += d
			if best[i] == nil || running < *best[i] {
				v := running
				best[i] = &v
			}
		}
	}
	out := make([]xtime.Time, len(r.Segments))
	for i, v := range best {
		if v != nil {
			out[i] = out[i].With(method, *v)
		}
	}
	return out
}
