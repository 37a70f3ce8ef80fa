// Package comparison implements the pluggable comparison generators of
// spec.md §4.5: pure functions producing a target split-time series per
// segment, per timing method, stored denormalized into each Segment's
// comparison map for O(1) read during layout projection.
package comparison

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// Generator produces a full split-time series (one entry per segment) for
// a single timing method. The returned slice has exactly len(r.Segments)
// entries; a nil component on an entry means "no comparison value here".
type Generator interface {
	Name() string
	Generate(r *run.Run, method xtime.Method) []xtime.Time
}

// Standard returns the full set of built-in generators, in the order
// comparisons should be (re)computed. Order does not matter for
// correctness since generators never read each other's output, but it
// keeps regeneration output deterministic for tests.
func Standard() []Generator {
	return []Generator{
		PersonalBest{},
		BestSegments{},
		BestSplitTimes{},
		AverageSegments{},
		MedianSegments{},
		WorstSegments{},
		LatestRun{},
		BalancedPB{},
		None{},
	}
}

// WithGoal returns the standard generator set plus a Goal comparison
// targeting the given duration. Goal is not part of Standard() because
// its target is chosen per use rather than fixed.
func WithGoal(target xtime.Duration) []Generator {
	return append(Standard(), Goal{Target: target})
}

// RegenerateAll runs every generator over r for both timing methods and
// writes the (monotone-clamped) result back into each segment's comparison
// map. Called whenever a Run mutation invalidates the stored comparisons
// (spec.md §4.3, §4.5, invariant I1).
func RegenerateAll(r *run.Run, generators []Generator) {
	for _, g := range generators {
		for _, m := range xtime.Methods() {
			series := g.Generate(r, m)
			clampMonotone(series, m)
			writeBack(r, g.Name(), m, series)
		}
	}
}

// clampMonotone enforces I1 in place: a comparison's split times for a
// given method must be non-decreasing along the segment order. Any entry
// smaller than the previous present one is raised to match it.
func clampMonotone(series []xtime.Time, m xtime.Method) {
	var prev xtime.Duration
	havePrev := false
	for i, v := range series {
		d, ok := v.Get(m)
		if !ok {
			continue
		}
		if havePrev && d < prev {
			d = prev
			series[i] = v.With(m, d)
		}
		prev = d
		havePrev = true
	}
}

// writeBack merges series into every segment's Comparisons[name] entry for
// method m, leaving the other method's component untouched.
func writeBack(r *run.Run, name string, m xtime.Method, series []xtime.Time) {
	for i, v := range series {
		if i >= len(r.Segments) {
			break
		}
		if r.Segments[i].Comparisons == nil {
			r.Segments[i].Comparisons = map[string]xtime.Time{}
		}
		cur := r.Segments[i].Comparisons[name]
		if d, ok := v.Get(m); ok {
			cur = cur.With(m, d)
		} else {
			cur = cur.Cleared(m)
		}
		r.Segments[i].Comparisons[name] = cur
	}
}

// segmentSamples collects, for segment segIdx, the history samples for
// method m across all attempts that recorded a value for that segment.
func segmentSamples(r *run.Run, segIdx int, m xtime.Method) []xtime.Duration {
	seg := r.Segments[segIdx]
	out := make([]xtime.Duration, 0, len(seg.History))
	for _, h := range seg.History {
		if d, ok := h.Time.Get(m); ok {
			out = append(out, d)
		}
	}
	return out
}

// cumulativeFromPerSegment turns a per-segment series of segment-time
// values into a cumulative split-time series for method m. A nil entry
// breaks the chain: it and every later entry become absent, since a split
// time downstream of a missing segment time cannot be reconstructed (used
// by Best/Average/Median/Worst Segments, which all aggregate segment
// times rather than split times directly).
func cumulativeFromPerSegment(perSegment []*xtime.Duration, m xtime.Method) []xtime.Time {
	out := make([]xtime.Time, len(perSegment))
	var sum xtime.Duration
	broken := false
	for i, v := range perSegment {
		if broken || v == nil {
			broken = true
			continue
		}
		sum += *v
		out[i] = out[i].With(m, sum)
	}
	return out
}
