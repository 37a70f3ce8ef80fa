package timer

import (
	"testing"
	"time"

	"github.com/splitcore/splitcore/internal/clock"
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

func newTestTimer(t *testing.T, segmentNames []string) (*Timer, *run.Run, *clock.ManualClock) {
	t.Helper()
	r, err := run.New("Test Game", "Any%", segmentNames)
	if err != nil {
		t.Fatalf("run.New: %v", err)
	}
	c := clock.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return New(r, c, c), r, c
}

func realOf(t *testing.T, tm xtime.Time) time.Duration {
	t.Helper()
	d, ok := tm.Get(xtime.RealTime)
	if !ok {
		t.Fatalf("expected real time to be present")
	}
	return d
}

// S1: single segment, Start, wait 1.250s, Split, Reset(save=true).
func TestScenarioSingleSegmentFinish(t *testing.T) {
	tm, r, c := newTestTimer(t, []string{"Any%"})

	tm.Start()
	c.Advance(1250 * time.Millisecond)
	tm.Split()

	if tm.Phase() != Ended {
		t.Fatalf("phase = %v, want Ended", tm.Phase())
	}
	split, ok := tm.SegmentSplit(0)
	if !ok {
		t.Fatalf("expected segment 0 split to be present")
	}
	if got := realOf(t, split); got != 1250*time.Millisecond {
		t.Fatalf("split real time = %v, want 1.25s", got)
	}

	tm.Reset(true)

	if r.FinishedAttemptCount != 1 {
		t.Fatalf("finished attempt count = %d, want 1", r.FinishedAttemptCount)
	}
	pb, ok := r.Segments[0].PersonalBestSplitTime.Get(xtime.RealTime)
	if !ok || pb != 1250*time.Millisecond {
		t.Fatalf("PB = %v ok=%v, want 1.25s", pb, ok)
	}
	best, ok := r.Segments[0].BestSegmentTime.Get(xtime.RealTime)
	if !ok || best != 1250*time.Millisecond {
		t.Fatalf("best segment = %v ok=%v, want 1.25s", best, ok)
	}
}

// S3: Pause semantics. Start, wait 2s, Pause, wait 3s, Resume, wait 1s, Split.
func TestScenarioPauseExcludedFromElapsed(t *testing.T) {
	tm, _, c := newTestTimer(t, []string{"Only"})

	tm.Start()
	c.Advance(2 * time.Second)
	tm.Pause()
	c.Advance(3 * time.Second)
	tm.Resume()
	c.Advance(1 * time.Second)
	tm.Split()

	split, _ := tm.SegmentSplit(0)
	if got := realOf(t, split); got != 3*time.Second {
		t.Fatalf("final split real time = %v, want 3s", got)
	}
}

// S4: Game-time decoupling via SetGameTime and PauseGameTime.
func TestScenarioGameTimeDecoupling(t *testing.T) {
	tm, _, c := newTestTimer(t, []string{"Only"})

	tm.Start()
	c.Advance(10 * time.Second)
	if err := tm.SetGameTime(5 * time.Second); err != nil {
		t.Fatalf("SetGameTime: %v", err)
	}
	c.Advance(2 * time.Second)

	cur := tm.CurrentTime()
	if got := realOf(t, cur); got != 12*time.Second {
		t.Fatalf("current real = %v, want 12s", got)
	}
	game, ok := cur.Get(xtime.GameTime)
	if !ok || game != 7*time.Second {
		t.Fatalf("current game = %v ok=%v, want 7s", game, ok)
	}

	tm.PauseGameTime()
	c.Advance(3 * time.Second)
	cur = tm.CurrentTime()
	game, ok = cur.Get(xtime.GameTime)
	if !ok || game != 7*time.Second {
		t.Fatalf("game time after PauseGameTime = %v ok=%v, want frozen 7s", game, ok)
	}
}

// S6: Skip edge case — segment 1's current-attempt split stays absent.
func TestScenarioSkipLeavesAbsentSplit(t *testing.T) {
	tm, _, c := newTestTimer(t, []string{"A", "B", "C"})

	tm.Start()
	c.Advance(1 * time.Second)
	tm.Split()
	tm.Skip()
	c.Advance(1 * time.Second)
	tm.Split()

	if tm.Phase() != Ended {
		t.Fatalf("phase = %v, want Ended", tm.Phase())
	}
	split1, ok := tm.SegmentSplit(1)
	if !ok {
		t.Fatalf("expected segment 1 entry to exist")
	}
	if !split1.IsEmpty() {
		t.Fatalf("expected segment 1 split to be absent, got %+v", split1)
	}
}

// Boundary: Split on a zero-duration segment yields segment_time = 0.
func TestBoundaryZeroDurationSplit(t *testing.T) {
	tm, _, _ := newTestTimer(t, []string{"A", "B"})

	tm.Start()
	tm.Split()
	split, ok := tm.SegmentSplit(0)
	if !ok {
		t.Fatalf("expected segment 0 split present")
	}
	if got := realOf(t, split); got != 0 {
		t.Fatalf("segment 0 split = %v, want 0", got)
	}
}

// Boundary: Undo past index 0 is ignored.
func TestBoundaryUndoAtZeroIgnored(t *testing.T) {
	tm, _, _ := newTestTimer(t, []string{"A", "B"})
	tm.Start()
	tm.Undo()
	if tm.Phase() != Running || tm.CurrentSegmentIndex() != 0 {
		t.Fatalf("Undo at index 0 should be a no-op")
	}
}

// Boundary: Reset while NotRunning is ignored.
func TestBoundaryResetWhileNotRunningIgnored(t *testing.T) {
	tm, r, _ := newTestTimer(t, []string{"A"})
	tm.Reset(true)
	if r.AttemptCount != 0 {
		t.Fatalf("Reset from NotRunning should not touch attempt count")
	}
}

// Negative segment times (possible via an out-of-order SetGameTime) never
// promote a new best segment (Open Question (a)).
func TestNegativeSegmentTimeNeverBestSegment(t *testing.T) {
	tm, r, c := newTestTimer(t, []string{"A", "B"})
	r.Segments[1].BestSegmentTime = xtime.Time{}.With(xtime.GameTime, 5*time.Second)

	tm.Start()
	c.Advance(1 * time.Second)
	tm.Split() // segment 0 game split = 1s

	// Force a negative game-time segment by setting a game time smaller
	// than the previous split's, then splitting immediately.
	if err := tm.SetGameTime(500 * time.Millisecond); err != nil {
		t.Fatalf("SetGameTime: %v", err)
	}
	tm.Split()
	tm.Reset(true)

	best, ok := r.Segments[1].BestSegmentTime.Get(xtime.GameTime)
	if !ok || best != 5*time.Second {
		t.Fatalf("best segment[1] game time = %v ok=%v, want unchanged 5s", best, ok)
	}
}

// Undo discards a mid-attempt split before it could ever be promoted to a
// best segment (Open Question (b)).
func TestUndoCancelsPromotion(t *testing.T) {
	tm, r, c := newTestTimer(t, []string{"A", "B"})
	r.Segments[0].BestSegmentTime = xtime.Time{}.With(xtime.RealTime, 10*time.Second)

	tm.Start()
	c.Advance(1 * time.Second) // would have been a new best of 1s
	tm.Split()
	tm.Undo()
	c.Advance(20 * time.Second) // redo with a much slower time
	tm.Split()
	tm.Split()
	tm.Reset(true)

	// The discarded 1s split must never be considered: the final merge
	// only sees the redone 21s segment time, which is worse than the
	// pre-existing 10s best, so the best segment stays unchanged.
	best, _ := r.Segments[0].BestSegmentTime.Get(xtime.RealTime)
	if best != 10*time.Second {
		t.Fatalf("best segment[0] = %v, want unchanged 10s", best)
	}
}
