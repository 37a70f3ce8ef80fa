package timer

import (
	"github.com/splitcore/splitcore/internal/comparison"
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// Reset ends the current attempt, returning to NotRunning. If save is
// true, or the attempt already reached Ended, the attempt's data is
// merged into the bound Run's history before the in-progress state is
// discarded. A no-op from NotRunning (spec.md §4.4).
func (t *Timer) Reset(save bool) {
	if t.phase == NotRunning {
		return
	}
	if save || t.phase == Ended {
		t.mergeIntoHistory()
	}
	t.phase = NotRunning
	t.currentSegmentIndex = 0
	t.currentSplits = nil
	t.endedAt = xtime.Time{}
}

// reachedSegments returns how many leading segments this attempt produced
// a split-time decision for (split or skip), including the final segment
// when the attempt completed.
func (t *Timer) reachedSegments() int {
	if t.phase == Ended {
		return t.currentSegmentIndex + 1
	}
	return t.currentSegmentIndex
}

// segmentTime returns the incremental time this attempt spent on segment
// i, derived from the cumulative split times recorded in currentSplits.
func (t *Timer) segmentTime(i int) xtime.Time {
	cur := t.currentSplits[i]
	if i == 0 {
		return cur
	}
	prev := t.currentSplits[i-1]
	return xtime.Sub(cur, prev)
}

func (t *Timer) mergeIntoHistory() {
	r := t.r
	reached := t.reachedSegments()

	r.AttemptCount++
	if t.phase == Ended {
		r.FinishedAttemptCount++
		t.updatePersonalBest(reached)
	}

	for i := range r.Segments {
		var entryTime xtime.Time
		if i < reached {
			entryTime = t.segmentTime(i)
			t.updateBestSegment(i, entryTime)
		}
		r.Segments[i].History = append(r.Segments[i].History, run.HistoryEntry{
			AttemptID: t.attemptID,
			Time:      entryTime,
		})
	}

	r.AttemptHistory = append(r.AttemptHistory, run.AttemptRecord{
		AttemptID: t.attemptID,
		StartedAt: t.attemptStartedWall,
		Ended:     t.endedAt,
		PauseTime: t.pauseAccumulator,
	})

	// History, PersonalBestSplitTime, and BestSegmentTime all just changed
	// above; every comparison derived from them is stale until
	// regenerated (spec.md §4.3, §4.5, invariant I1).
	comparison.RegenerateAll(r, comparison.Standard())
}

// updatePersonalBest replaces every reached segment's PersonalBestSplitTime
// component, per method independently, when this attempt's final time for
// that method beats (or the run never had) a stored PB.
func (t *Timer) updatePersonalBest(reached int) {
	r := t.r
	final := t.currentSplits[reached-1]
	for _, m := range xtime.Methods() {
		newTotal, ok := final.Get(m)
		if !ok {
			continue
		}
		storedTotal, hadPB := r.Segments[reached-1].PersonalBestSplitTime.Get(m)
		if hadPB && newTotal >= storedTotal {
			continue
		}
		for i := 0; i < reached; i++ {
			cur := r.Segments[i].PersonalBestSplitTime
			if d, ok := t.currentSplits[i].Get(m); ok {
				cur = cur.With(m, d)
			} else {
				cur = cur.Cleared(m)
			}
			r.Segments[i].PersonalBestSplitTime = cur
		}
	}
}

// updateBestSegment promotes segment i's BestSegmentTime per method when
// this attempt's segment time is both present and non-negative (Open
// Question (a): a negative segment time — possible after an out-of-order
// SetGameTime — never counts as a new best).
func (t *Timer) updateBestSegment(i int, segTime xtime.Time) {
	seg := &t.r.Segments[i]
	for _, m := range xtime.Methods() {
		d, ok := segTime.Get(m)
		if !ok || d < 0 {
			continue
		}
		stored, hadBest := seg.BestSegmentTime.Get(m)
		if hadBest && d >= stored {
			continue
		}
		seg.BestSegmentTime = seg.BestSegmentTime.With(m, d)
	}
}
