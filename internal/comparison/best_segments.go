package comparison

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// BestSegments ("Sum of Best Segments") sums, for each segment in order,
// the best segment time ever recorded for it. A segment that has never
// produced a finite best segment time makes its own entry and every
// subsequent entry absent, since the cumulative sum cannot continue past
// a missing term (spec.md §4.5, I4 "Sum-of-Best ≤ PB").
type BestSegments struct{}

func (BestSegments) Name() string { return run.ComparisonBestSegments }

func (BestSegments) Generate(r *run.Run, method xtime.Method) []xtime.Time {
	perSegment := make([]*xtime.Duration, len(r.Segments))
	for i, seg := range r.Segments {
		if d, ok := seg.BestSegmentTime.Get(method); ok {
			v := d
			perSegment[i] = &v
		}
	}
	return cumulativeFromPerSegment(perSegment, method)
}
