package layout

import (
	"github.com/splitcore/splitcore/internal/snapshot"
	"github.com/splitcore/splitcore/internal/timefmt"
	"github.com/splitcore/splitcore/internal/timer"
)

// TimerState is the Timer component's state buffer (spec.md §6).
type TimerState struct {
	BackgroundGradient string
	Time               string
	Fraction           string
	SemanticColor      SemanticColor
	TopColor           string
	BottomColor        string
	Height             int
	UpdatesFrequently  bool
}

func (*TimerState) isComponentState() {}

// TimerComponent renders the big current-time display for the currently
// selected timing method.
type TimerComponent struct{}

func (TimerComponent) NewState() ComponentState {
	return &TimerState{Height: 1, UpdatesFrequently: true}
}

func (TimerComponent) Update(state ComponentState, ctx *Context) {
	s := state.(*TimerState)
	cur := ctx.Snapshot.Current
	if d, ok := cur.Get(ctx.Method); ok {
		s.Time = timefmt.FormatMain(&d, ctx.Digits)
		s.Fraction = timefmt.FormatFraction(&d, ctx.Accuracy)
	} else {
		s.Time = timefmt.FormatMain(nil, ctx.Digits)
		s.Fraction = timefmt.FormatFraction(nil, ctx.Accuracy)
	}
	s.UpdatesFrequently = ctx.Snapshot.Phase == timer.Running

	switch ctx.Snapshot.Phase {
	case timer.Paused:
		s.SemanticColor = snapshot.PausedColor
	case timer.NotRunning:
		s.SemanticColor = snapshot.NotRunningColor
	default:
		s.SemanticColor = snapshot.Default
	}
}
