package comparison

import (
	"testing"
	"time"

	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

func sec(n int) xtime.Duration { return time.Duration(n) * time.Second }

func newTestRun(t *testing.T) *run.Run {
	t.Helper()
	r, err := run.New("Test Game", "Any%", []string{"Start", "Middle", "End"})
	if err != nil {
		t.Fatalf("run.New: %v", err)
	}
	return r
}

// recordAttempt adds a history entry for each segment's time (cumulative
// split times in, segment times out) and tracks the attempt record.
func recordAttempt(r *run.Run, attemptID int64, splits []xtime.Duration) {
	r.AttemptHistory = append(r.AttemptHistory, run.AttemptRecord{AttemptID: attemptID})
	prev := xtime.Duration(0)
	for i, split := range splits {
		segTime := split - prev
		prev = split
		r.Segments[i].History = append(r.Segments[i].History, run.HistoryEntry{
			AttemptID: attemptID,
			Time:      xtime.Time{}.With(xtime.RealTime, segTime),
		})
	}
}

func TestPersonalBestPassesThrough(t *testing.T) {
	r := newTestRun(t)
	r.Segments[0].PersonalBestSplitTime = xtime.Time{}.With(xtime.RealTime, sec(10))
	r.Segments[1].PersonalBestSplitTime = xtime.Time{}.With(xtime.RealTime, sec(25))
	r.Segments[2].PersonalBestSplitTime = xtime.Time{}.With(xtime.RealTime, sec(40))

	RegenerateAll(r, []Generator{PersonalBest{}})

	for i, want := range []xtime.Duration{sec(10), sec(25), sec(40)} {
		got, ok := r.Segments[i].Comparisons[run.ComparisonPersonalBest].Get(xtime.RealTime)
		if !ok || got != want {
			t.Fatalf("segment %d: got %v ok=%v, want %v", i, got, ok, want)
		}
	}
}

func TestBestSegmentsIsAtMostPersonalBest(t *testing.T) {
	r := newTestRun(t)
	r.Segments[0].BestSegmentTime = xtime.Time{}.With(xtime.RealTime, sec(9))
	r.Segments[1].BestSegmentTime = xtime.Time{}.With(xtime.RealTime, sec(14))
	r.Segments[2].BestSegmentTime = xtime.Time{}.With(xtime.RealTime, sec(13))
	r.Segments[2].PersonalBestSplitTime = xtime.Time{}.With(xtime.RealTime, sec(40))

	RegenerateAll(r, []Generator{BestSegments{}, PersonalBest{}})

	sob, ok := r.Segments[2].Comparisons[run.ComparisonBestSegments].Get(xtime.RealTime)
	if !ok {
		t.Fatalf("expected sum of best to be present")
	}
	pb, _ := r.Segments[2].Comparisons[run.ComparisonPersonalBest].Get(xtime.RealTime)
	if sob > pb {
		t.Fatalf("sum of best %v exceeds personal best %v", sob, pb)
	}
	if want := sec(9 + 14 + 13); sob != want {
		t.Fatalf("sum of best = %v, want %v", sob, want)
	}
}

func TestBestSegmentsAbsentPropagatesForward(t *testing.T) {
	r := newTestRun(t)
	r.Segments[0].BestSegmentTime = xtime.Time{}.With(xtime.RealTime, sec(9))
	// Segment 1 has never produced a best segment time.
	r.Segments[2].BestSegmentTime = xtime.Time{}.With(xtime.RealTime, sec(13))

	RegenerateAll(r, []Generator{BestSegments{}})

	if _, ok := r.Segments[1].Comparisons[run.ComparisonBestSegments].Get(xtime.RealTime); ok {
		t.Fatalf("segment 1 should be absent")
	}
	if _, ok := r.Segments[2].Comparisons[run.ComparisonBestSegments].Get(xtime.RealTime); ok {
		t.Fatalf("segment 2 should be absent once an earlier segment is absent")
	}
}

func TestBestSplitTimesTakesMinimumPerPosition(t *testing.T) {
	r := newTestRun(t)
	recordAttempt(r, 1, []xtime.Duration{sec(10), sec(25), sec(40)})
	recordAttempt(r, 2, []xtime.Duration{sec(12), sec(20), sec(45)})

	RegenerateAll(r, []Generator{BestSplitTimes{}})

	want := []xtime.Duration{sec(10), sec(20), sec(40)}
	for i, w := range want {
		got, ok := r.Segments[i].Comparisons[run.ComparisonBestSplitTimes].Get(xtime.RealTime)
		if !ok || got != w {
			t.Fatalf("segment %d: got %v ok=%v, want %v", i, got, ok, w)
		}
	}
}

func TestComparisonMonotoneClamp(t *testing.T) {
	series := []xtime.Time{
		(xtime.Time{}).With(xtime.RealTime, sec(10)),
		(xtime.Time{}).With(xtime.RealTime, sec(5)), // would regress without clamp
		(xtime.Time{}).With(xtime.RealTime, sec(20)),
	}
	clampMonotone(series, xtime.RealTime)
	prev := xtime.Duration(0)
	for i, v := range series {
		d, ok := v.Get(xtime.RealTime)
		if !ok {
			t.Fatalf("entry %d unexpectedly absent", i)
		}
		if d < prev {
			t.Fatalf("entry %d = %v regresses below previous %v", i, d, prev)
		}
		prev = d
	}
}

func TestAverageSegmentsMean(t *testing.T) {
	r := newTestRun(t)
	recordAttempt(r, 1, []xtime.Duration{sec(10), sec(20), sec(30)})
	recordAttempt(r, 2, []xtime.Duration{sec(12), sec(22), sec(34)})

	RegenerateAll(r, []Generator{AverageSegments{}})

	// Segment 0 times: 10, 12 -> mean 11.
	got, ok := r.Segments[0].Comparisons[run.ComparisonAverageSegments].Get(xtime.RealTime)
	if !ok || got != sec(11) {
		t.Fatalf("segment 0 average = %v ok=%v, want 11s", got, ok)
	}
}

func TestWorstSegmentsMax(t *testing.T) {
	r := newTestRun(t)
	recordAttempt(r, 1, []xtime.Duration{sec(10), sec(20), sec(30)})
	recordAttempt(r, 2, []xtime.Duration{sec(12), sec(22), sec(34)})

	RegenerateAll(r, []Generator{WorstSegments{}})

	got, ok := r.Segments[0].Comparisons[run.ComparisonWorstSegments].Get(xtime.RealTime)
	if !ok || got != sec(12) {
		t.Fatalf("segment 0 worst = %v ok=%v, want 12s", got, ok)
	}
}

func TestBalancedPBMatchesGoalAtFinalSegment(t *testing.T) {
	r := newTestRun(t)
	recordAttempt(r, 1, []xtime.Duration{sec(10), sec(25), sec(40)})
	recordAttempt(r, 2, []xtime.Duration{sec(11), sec(24), sec(41)})
	recordAttempt(r, 3, []xtime.Duration{sec(9), sec(26), sec(39)})
	r.Segments[2].PersonalBestSplitTime = xtime.Time{}.With(xtime.RealTime, sec(39))

	RegenerateAll(r, []Generator{BalancedPB{}})

	got, ok := r.Segments[2].Comparisons["Balanced PB"].Get(xtime.RealTime)
	if !ok {
		t.Fatalf("expected balanced PB final split to be present")
	}
	if diff := got - sec(39); diff > time.Nanosecond || diff < -time.Nanosecond {
		t.Fatalf("balanced PB final split = %v, want within 1ns of 39s", got)
	}
}

func TestGoalMatchesTarget(t *testing.T) {
	r := newTestRun(t)
	recordAttempt(r, 1, []xtime.Duration{sec(10), sec(25), sec(40)})
	recordAttempt(r, 2, []xtime.Duration{sec(11), sec(24), sec(41)})

	g := Goal{Target: sec(42)}
	RegenerateAll(r, []Generator{g})

	got, ok := r.Segments[2].Comparisons["Goal"].Get(xtime.RealTime)
	if !ok {
		t.Fatalf("expected goal final split to be present")
	}
	if diff := got - sec(42); diff > time.Nanosecond || diff < -time.Nanosecond {
		t.Fatalf("goal final split = %v, want within 1ns of 42s", got)
	}
}
