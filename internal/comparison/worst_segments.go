package comparison

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// WorstSegments sums, for each segment, the worst (largest) recorded
// segment-time sample, cumulatively. Same absent-propagation rule as
// AverageSegments — a segment that was never reached contributes no
// sample and stops the running sum.
type WorstSegments struct{}

func (WorstSegments) Name() string { return run.ComparisonWorstSegments }

func (WorstSegments) Generate(r *run.Run, method xtime.Method) []xtime.Time {
	perSegment := make([]*xtime.Duration, len(r.Segments))
	for i := range r.Segments {
		samples := segmentSamples(r, i, method)
		if len(samples) == 0 {
			continue
		}
		worst := samples[0]
		for _, s := range samples[1:] {
			if s > worst {
				worst = s
			}
		}
		perSegment[i] = &worst
	}
	return cumulativeFromPerSegment(perSegment, method)
}
