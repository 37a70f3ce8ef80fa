package comparison

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// Goal is a user-supplied target comparison: balanced the same way as
// BalancedPB, but against an arbitrary target time instead of the
// personal best (spec.md §4.5 supplemented feature, "what splits would I
// need to hit this goal time").
type Goal struct {
	Target xtime.Duration
}

func (Goal) Name() string { return "Goal" }

func (g Goal) Generate(r *run.Run, method xtime.Method) []xtime.Time {
	n := len(r.Segments)
	out := make([]xtime.Time, n)

	allWeighted := make([][]weightedSample, 0, n)
	usable := n
	for i := 0; i < n; i++ {
		samples := weightedSegmentTimes(r, i, method)
		if samples == nil {
			fallback, ok := pbSegmentTime(r, i, method)
			if !ok {
				usable = i
				break
			}
			samples = []weightedSample{{weight: 0, time: fallback}}
		}
		allWeighted = append(allWeighted, samples)
	}
	if usable == 0 {
		return out
	}

	percMin, percMax := 0.0, 1.0
	cumulative := make([]xtime.Duration, usable)
	for iter := 0; iter < 50; iter++ {
		percentile := (percMin + percMax) / 2
		var sum xtime.Duration
		for i, samples := range allWeighted {
			sum += percentileTime(samples, percentile)
			cumulative[i] = sum
		}
		switch {
		case sum == g.Target:
			percMin, percMax = percentile, percentile
		case sum < g.Target:
			percMin = percentile
		default:
			percMax = percentile
		}
		if sum == g.Target {
			break
		}
	}
	for i, d := range cumulative {
		out[i] = out[i].With(method, d)
	}
	return out
}
