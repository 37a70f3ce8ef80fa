package comparison

import (
	"sort"

	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// MedianSegments sums, for each segment, the median of its recorded
// segment-time samples, cumulatively. Same absent-propagation rule as
// AverageSegments.
type MedianSegments struct{}

func (MedianSegments) Name() string { return run.ComparisonMedianSegments }

func (MedianSegments) Generate(r *run.Run, method xtime.Method) []xtime.Time {
	perSegment := make([]*xtime.Duration, len(r.Segments))
	for i := range r.Segments {
		samples := segmentSamples(r, i, method)
		if len(samples) == 0 {
			continue
		}
		sort.Slice(samples, func(a, b int) bool { return samples[a] < samples[b] })
		n := len(samples)
		var median xtime.Duration
		if n%2 == 1 {
			median = samples[n/2]
		} else {
			median = (samples[n/2-1] + samples[n/2]) / 2
		}
		perSegment[i] = &median
	}
	return cumulativeFromPerSegment(perSegment, method)
}
