package layout

import (
	"github.com/splitcore/splitcore/internal/snapshot"
	"github.com/splitcore/splitcore/internal/timefmt"
	"github.com/splitcore/splitcore/internal/xtime"
)

// DetailedTimerState is the DetailedTimer component's state buffer
// (spec.md §6): the main attempt timer alongside a small timer for the
// segment currently in progress.
type DetailedTimerState struct {
	Timer          TimerState
	SegmentTimer   TimerState
	ComparisonName string
	ComparisonTime string
}

func (*DetailedTimerState) isComponentState() {}

// DetailedTimerComponent shows the overall attempt timer plus a
// secondary timer tracking only the current segment's elapsed time.
type DetailedTimerComponent struct {
	Comparison string
	main       TimerComponent
}

func (DetailedTimerComponent) NewState() ComponentState { return &DetailedTimerState{} }

func (c DetailedTimerComponent) Update(state ComponentState, ctx *Context) {
	s := state.(*DetailedTimerState)
	c.main.Update(&s.Timer, ctx)

	idx := liveSegmentIndex(ctx)
	var segPtr *xtime.Duration
	if d, ok := snapshot.SegmentTime(ctx.Timer, ctx.Snapshot, idx).Get(ctx.Method); ok {
		segPtr = &d
	}
	s.SegmentTimer.Time = timefmt.FormatMain(segPtr, ctx.Digits)
	s.SegmentTimer.Fraction = timefmt.FormatFraction(segPtr, ctx.Accuracy)
	s.SegmentTimer.SemanticColor = s.Timer.SemanticColor
	s.SegmentTimer.UpdatesFrequently = s.Timer.UpdatesFrequently

	cmp := comparisonOrDefault(c.Comparison)
	s.ComparisonName = cmp
	if cmpTime, ok := ctx.Run.Segments[idx].Comparisons[cmp].Get(ctx.Method); ok {
		s.ComparisonTime = timefmt.Format(&cmpTime, ctx.Accuracy, ctx.Digits)
	} else {
		s.ComparisonTime = timefmt.Format(nil, ctx.Accuracy, ctx.Digits)
	}
}
