package comparison

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// AverageSegments sums, for each segment, the arithmetic mean of its
// recorded segment-time samples, cumulatively. A segment with no samples
// makes itself and every later segment absent (spec.md §4.5).
type AverageSegments struct{}

func (AverageSegments) Name() string { return run.ComparisonAverageSegments }

func (AverageSegments) Generate(r *run.Run, method xtime.Method) []xtime.Time {
	perSegment := make([]*xtime.Duration, len(r.Segments))
	for i := range r.Segments {
		samples := segmentSamples(r, i, method)
		if len(samples) == 0 {
			continue
		}
		var sum xtime.Duration
		for _, s := range samples {
			sum += s
		}
		mean := sum / xtime.Duration(len(samples))
		perSegment[i] = &mean
	}
	return cumulativeFromPerSegment(perSegment, method)
}
