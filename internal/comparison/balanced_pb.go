package comparison

import (
	"sort"

	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// balancedWeight is the exponential decay factor applied to each segment
// time sample the further back in history it was observed, so that recent
// runs count for more (ported from LiveSplit-core's balanced_pb.rs).
const balancedWeight = 0.9375

// weightedSample pairs a segment-time observation with its cumulative,
// normalized-to-[0,1] weight once sorted.
type weightedSample struct {
	weight float64
	time   xtime.Duration
}

// weightedSegmentTimes builds, for segment i, every usable weighted sample
// from its history, skipping "combined segments": an entry whose previous
// segment has no recorded time for the same attempt id, since the two
// segments were effectively timed together and splitting them out would
// misrepresent the pace.
func weightedSegmentTimes(r *run.Run, i int, method xtime.Method) []weightedSample {
	seg := r.Segments[i]
	var out []weightedSample
	weight := 1.0
	for j := len(seg.History) - 1; j >= 0; j-- {
		h := seg.History[j]
		d, ok := h.Time.Get(method)
		if !ok {
			continue
		}
		if i > 0 {
			prevSample, ok := r.Segments[i-1].HistorySample(h.AttemptID)
			if !ok {
				continue
			}
			if _, ok := prevSample.Get(method); !ok {
				continue
			}
		}
		out = append(out, weightedSample{weight: weight, time: d})
		weight *= balancedWeight
	}
	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(a, b int) bool { return out[a].time < out[b].time })
	sum := 0.0
	for k := range out {
		sum += out[k].weight
		out[k].weight = sum
	}
	min, max := out[0].weight, out[len(out)-1].weight
	if diff := max - min; diff != 0 {
		for k := range out {
			out[k].weight = (out[k].weight - min) / diff
		}
	}
	return out
}

// percentileTime returns the segment time at the given percentile within
// samples, interpolating linearly between the two closest weights.
func percentileTime(samples []weightedSample, percentile float64) xtime.Duration {
	if len(samples) == 1 {
		return samples[0].time
	}
	idx := sort.Search(len(samples), func(k int) bool { return samples[k].weight >= percentile })
	if idx < len(samples) && samples[idx].weight == percentile {
		return samples[idx].time
	}
	var left weightedSample
	if idx > 0 {
		left = samples[idx-1]
	}
	if idx >= len(samples) {
		return left.time
	}
	right := samples[idx]
	span := right.weight - left.weight
	if span == 0 {
		return right.time
	}
	fracRight := (percentile - left.weight) / span
	fracLeft := 1 - fracRight
	return xtime.Duration(fracLeft*float64(left.time) + fracRight*float64(right.time))
}

// pbSegmentTime returns segment i's own personal-best segment time
// (the difference between consecutive PB split times), used as the
// fallback sample when a segment has no usable history.
func pbSegmentTime(r *run.Run, i int, method xtime.Method) (xtime.Duration, bool) {
	cur, ok := r.Segments[i].PersonalBestSplitTime.Get(method)
	if !ok {
		return 0, false
	}
	if i == 0 {
		return cur, true
	}
	prev, ok := r.Segments[i-1].PersonalBestSplitTime.Get(method)
	if !ok {
		return 0, false
	}
	return cur - prev, true
}

// balancedGenerate computes a percentile-based balanced split series that
// sums to goal at the last segment with a personal best split time,
// smoothing out a lopsided personal best using the runner's full segment
// history. A segment with no usable history falls back to its own
// personal-best segment time (spec.md §4.5).
func balancedGenerate(r *run.Run, method xtime.Method) []xtime.Time {
	n := len(r.Segments)

	goalLen := 0
	var goal xtime.Duration
	for i := n - 1; i >= 0; i-- {
		if d, ok := r.Segments[i].PersonalBestSplitTime.Get(method); ok {
			goalLen = i + 1
			goal = d
			break
		}
	}

	out := make([]xtime.Time, n)
	if goalLen == 0 {
		return out
	}

	allWeighted := make([][]weightedSample, 0, goalLen)
	for i := 0; i < goalLen; i++ {
		samples := weightedSegmentTimes(r, i, method)
		if samples == nil {
			fallback, ok := pbSegmentTime(r, i, method)
			if !ok {
				goalLen = i
				break
			}
			samples = []weightedSample{{weight: 0, time: fallback}}
		}
		allWeighted = append(allWeighted, samples)
	}
	if goalLen == 0 {
		return out
	}

	percMin, percMax := 0.0, 1.0
	cumulative := make([]xtime.Duration, goalLen)
	for iter := 0; iter < 50; iter++ {
		percentile := (percMin + percMax) / 2
		var sum xtime.Duration
		for i, samples := range allWeighted {
			sum += percentileTime(samples, percentile)
			cumulative[i] = sum
		}
		switch {
		case sum == goal:
			percMin, percMax = percentile, percentile
		case sum < goal:
			percMin = percentile
		default:
			percMax = percentile
		}
		if sum == goal {
			break
		}
	}
	for i, d := range cumulative {
		out[i] = out[i].With(method, d)
	}
	return out
}

// BalancedPB is the smoothed-personal-best comparison generator (spec.md
// §4.5 supplemented feature).
type BalancedPB struct{}

func (BalancedPB) Name() string { return "Balanced PB" }

func (BalancedPB) Generate(r *run.Run, method xtime.Method) []xtime.Time {
	return balancedGenerate(r, method)
}
