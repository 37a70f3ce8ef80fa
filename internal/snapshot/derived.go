package snapshot

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/timer"
	"github.com/splitcore/splitcore/internal/xtime"
)

// PossibleTimeSave returns PB_split(i) - PB_split(i-1) - best_segment(i),
// clamped to >= 0: how much time is realistically still on the table for
// this segment given the runner's best-ever performance on it.
func PossibleTimeSave(r *run.Run, i int, m xtime.Method) (xtime.Duration, bool) {
	pbCur, ok := r.Segments[i].PersonalBestSplitTime.Get(m)
	if !ok {
		return 0, false
	}
	var pbPrev xtime.Duration
	if i > 0 {
		p, ok := r.Segments[i-1].PersonalBestSplitTime.Get(m)
		if !ok {
			return 0, false
		}
		pbPrev = p
	}
	best, ok := r.Segments[i].BestSegmentTime.Get(m)
	if !ok {
		return 0, false
	}
	save := pbCur - pbPrev - best
	if save < 0 {
		save = 0
	}
	return save, true
}

// SumOfBest returns the Best Segments (sum-of-best) comparison's total at
// the final segment.
func SumOfBest(r *run.Run, m xtime.Method) (xtime.Duration, bool) {
	if len(r.Segments) == 0 {
		return 0, false
	}
	return r.Segments[len(r.Segments)-1].Comparisons[run.ComparisonBestSegments].Get(m)
}

// CurrentPace predicts the final time: the current attempt's split at the
// last completed segment, plus the sum of the remaining segments' personal
// best segment times. Absent if any remaining segment lacks a PB.
func CurrentPace(tm *timer.Timer, r *run.Run, m xtime.Method) (xtime.Duration, bool) {
	n := len(r.Segments)
	lastCompleted := -1
	for i := 0; i < n; i++ {
		if _, ok := tm.SegmentSplit(i); ok {
			lastCompleted = i
		} else {
			break
		}
	}

	var total, prevPB xtime.Duration
	if lastCompleted >= 0 {
		split, _ := tm.SegmentSplit(lastCompleted)
		d, ok := split.Get(m)
		if !ok {
			return 0, false
		}
		total = d
		p, ok := r.Segments[lastCompleted].PersonalBestSplitTime.Get(m)
		if !ok {
			return 0, false
		}
		prevPB = p
	}

	for j := lastCompleted + 1; j < n; j++ {
		pb, ok := r.Segments[j].PersonalBestSplitTime.Get(m)
		if !ok {
			return 0, false
		}
		total += pb - prevPB
		prevPB = pb
	}
	return total, true
}

// BestSegmentFlag reports whether the current attempt's segment time at i
// strictly beats the stored best segment time. A zero-duration segment
// time never flags a new best, even if no best is stored yet.
func BestSegmentFlag(tm *timer.Timer, snap Snapshot, r *run.Run, i int, m xtime.Method) bool {
	segTime := SegmentTime(tm, snap, i)
	d, ok := segTime.Get(m)
	if !ok || d <= 0 {
		return false
	}
	best, hasBest := r.Segments[i].BestSegmentTime.Get(m)
	if !hasBest {
		return true
	}
	return d < best
}
