package comparison

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// LatestRun reconstructs the cumulative split times of the most recently
// recorded attempt, regardless of whether it finished or how it compares
// to the personal best.
type LatestRun struct{}

func (LatestRun) Name() string { return run.ComparisonLatestRun }

func (LatestRun) Generate(r *run.Run, method xtime.Method) []xtime.Time {
	out := make([]xtime.Time, len(r.Segments))
	if len(r.AttemptHistory) == 0 {
		return out
	}
	latest := r.AttemptHistory[0]
	for _, a := range r.AttemptHistory[1:] {
		if a.AttemptID > latest.AttemptID {
			latest = a
		}
	}
	var running xtime.Duration
	for i, seg := range r.Segments {
		sample, ok := seg.HistorySample(latest.AttemptID)
		if !ok {
			break
		}
		d, ok := sample.Get(method)
		if !ok {
			break
		}
		running += d
		out[i] = out[i].With(method, running)
	}
	return out
}
