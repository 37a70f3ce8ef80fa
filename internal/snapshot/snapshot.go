// Package snapshot captures one atomic instant of a running attempt and
// derives every comparison-relative value a layout component needs from
// it, per spec.md §4.6.
package snapshot

import (
	"github.com/splitcore/splitcore/internal/clock"
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/timer"
	"github.com/splitcore/splitcore/internal/xtime"
)

// Snapshot is the single (now, phase, current time) triple every derived
// query is computed against, so that a whole frame's worth of derivations
// see a consistent instant even though computing them may take a few
// microseconds of wall-clock time.
type Snapshot struct {
	Now     clock.Instant
	Phase   timer.Phase
	Current xtime.Time
}

// Capture takes a Snapshot of tm as of mono.Now().
func Capture(tm *timer.Timer, mono clock.MonotonicClock) Snapshot {
	return Snapshot{
		Now:     mono.Now(),
		Phase:   tm.Phase(),
		Current: tm.CurrentTime(),
	}
}

// AttemptSplit returns the current attempt's split time at segment i: the
// already-recorded split if the timer has passed it, the live current
// time if i is the segment in progress, or absent otherwise.
func AttemptSplit(tm *timer.Timer, snap Snapshot, i int) xtime.Time {
	if split, ok := tm.SegmentSplit(i); ok {
		return split
	}
	if i == tm.CurrentSegmentIndex() && (snap.Phase == timer.Running || snap.Phase == timer.Paused) {
		return snap.Current
	}
	return xtime.Time{}
}

// Delta returns current_attempt_split(i) - comparison_split(i, cmp),
// present only when both operands are present.
func Delta(tm *timer.Timer, r *run.Run, snap Snapshot, i int, cmp string, m xtime.Method) (xtime.Duration, bool) {
	cur, ok := AttemptSplit(tm, snap, i).Get(m)
	if !ok {
		return 0, false
	}
	target, ok := r.Segments[i].Comparisons[cmp].Get(m)
	if !ok {
		return 0, false
	}
	return cur - target, true
}

// SegmentTime returns the current attempt's incremental time spent on
// segment i (split(i) - split(i-1), or split(0) itself at i=0).
func SegmentTime(tm *timer.Timer, snap Snapshot, i int) xtime.Time {
	cur := AttemptSplit(tm, snap, i)
	if i == 0 {
		return cur
	}
	prev := AttemptSplit(tm, snap, i-1)
	return xtime.Sub(cur, prev)
}
