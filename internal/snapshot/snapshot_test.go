package snapshot

import (
	"testing"
	"time"

	"github.com/splitcore/splitcore/internal/clock"
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/timer"
	"github.com/splitcore/splitcore/internal/xtime"
)

func sec(n int) xtime.Duration { return time.Duration(n) * time.Second }

func newHarness(t *testing.T) (*timer.Timer, *run.Run, *clock.ManualClock) {
	t.Helper()
	r, err := run.New("Game", "Cat", []string{"A", "B"})
	if err != nil {
		t.Fatalf("run.New: %v", err)
	}
	c := clock.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return timer.New(r, c, c), r, c
}

func TestDeltaPresentOnlyWhenBothPresent(t *testing.T) {
	tm, r, c := newHarness(t)
	r.Segments[0].Comparisons[run.ComparisonPersonalBest] = xtime.Time{}.With(xtime.RealTime, sec(10))

	tm.Start()
	c.Advance(9 * time.Second)
	snap := Capture(tm, c)

	d, ok := Delta(tm, r, snap, 0, run.ComparisonPersonalBest, xtime.RealTime)
	if !ok {
		t.Fatalf("expected delta to be present")
	}
	if d != -1*time.Second {
		t.Fatalf("delta = %v, want -1s", d)
	}
}

func TestPossibleTimeSaveClampedToZero(t *testing.T) {
	r, err := run.New("Game", "Cat", []string{"A", "B"})
	if err != nil {
		t.Fatalf("run.New: %v", err)
	}
	r.Segments[0].PersonalBestSplitTime = xtime.Time{}.With(xtime.RealTime, sec(10))
	r.Segments[0].BestSegmentTime = xtime.Time{}.With(xtime.RealTime, sec(15)) // best exceeds PB segment time

	save, ok := PossibleTimeSave(r, 0, xtime.RealTime)
	if !ok {
		t.Fatalf("expected possible time save to be present")
	}
	if save != 0 {
		t.Fatalf("possible time save = %v, want clamped 0", save)
	}
}

func TestBestSegmentFlagIgnoresZeroDuration(t *testing.T) {
	tm, r, c := newHarness(t)
	tm.Start()

	// A split taken at the very start (zero elapsed) must never flag as a
	// new best segment, even though no best is stored yet.
	flag := BestSegmentFlag(tm, Capture(tm, c), r, 0, xtime.RealTime)
	if flag {
		t.Fatalf("zero-duration segment must never flag best segment")
	}
}

func TestDeriveColorQuadrants(t *testing.T) {
	cases := []struct {
		name  string
		delta xtime.Duration
		prev  xtime.Duration
		want  SemanticColor
	}{
		{"ahead gaining", -2 * time.Second, -1 * time.Second, AheadGainingTime},
		{"ahead losing", -1 * time.Second, -2 * time.Second, AheadLosingTime},
		{"behind gaining", 1 * time.Second, 2 * time.Second, BehindGainingTime},
		{"behind losing", 2 * time.Second, 1 * time.Second, BehindLosingTime},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DeriveColor(timer.Running, c.delta, true, c.prev, true, false)
			if got != c.want {
				t.Fatalf("DeriveColor = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDeriveColorPhaseOverrides(t *testing.T) {
	if got := DeriveColor(timer.Paused, 0, true, 0, true, false); got != PausedColor {
		t.Fatalf("Paused phase should override to PausedColor, got %v", got)
	}
	if got := DeriveColor(timer.NotRunning, 0, true, 0, true, false); got != NotRunningColor {
		t.Fatalf("NotRunning phase should override to NotRunningColor, got %v", got)
	}
	if got := DeriveColor(timer.Running, 5, true, 0, true, true); got != BestSegment {
		t.Fatalf("best segment flag should override to BestSegment, got %v", got)
	}
}
