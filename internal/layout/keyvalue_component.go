package layout

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/snapshot"
	"github.com/splitcore/splitcore/internal/timefmt"
	"github.com/splitcore/splitcore/internal/xtime"
)

// KeyValueState is the KeyValue component's state buffer (spec.md §6): a
// generic labeled numeric value, subsuming PreviousSegment, Delta,
// PossibleTimeSave, SumOfBest, and CurrentPace.
type KeyValueState struct {
	Background        string
	KeyColor          *string
	ValueColor        *string
	SemanticColor     SemanticColor
	Key               string
	Value             string
	KeyAbbreviations  []string
	DisplayTwoRows    bool
	UpdatesFrequently bool
}

func (*KeyValueState) isComponentState() {}

// KeyValueKind selects which derived value a KeyValueComponent displays.
type KeyValueKind int

const (
	KeyValueDelta KeyValueKind = iota
	KeyValuePreviousSegment
	KeyValuePossibleTimeSave
	KeyValueSumOfBest
	KeyValueCurrentPace
)

// KeyValueComponent is a single generic labeled value.
type KeyValueComponent struct {
	Kind       KeyValueKind
	Key        string
	Comparison string // used by Delta/PreviousSegment
}

func (KeyValueComponent) NewState() ComponentState { return &KeyValueState{} }

func (c KeyValueComponent) Update(state ComponentState, ctx *Context) {
	s := state.(*KeyValueState)
	s.Key = c.Key
	s.UpdatesFrequently = c.Kind == KeyValueDelta

	idx := liveSegmentIndex(ctx)
	switch c.Kind {
	case KeyValueDelta:
		c.updateDelta(s, ctx, idx)
	case KeyValuePreviousSegment:
		c.updatePreviousSegment(s, ctx, idx)
	case KeyValuePossibleTimeSave:
		c.updatePossibleTimeSave(s, ctx, idx)
	case KeyValueSumOfBest:
		c.updateSumOfBest(s, ctx)
	case KeyValueCurrentPace:
		c.updateCurrentPace(s, ctx)
	}
}

// liveSegmentIndex returns the segment a "current" derivation should be
// computed against: the one in progress, or the final one once ended.
func liveSegmentIndex(ctx *Context) int {
	idx := ctx.Timer.CurrentSegmentIndex()
	if idx >= len(ctx.Run.Segments) {
		idx = len(ctx.Run.Segments) - 1
	}
	return idx
}

func (c KeyValueComponent) updateDelta(s *KeyValueState, ctx *Context, idx int) {
	cmp := c.Comparison
	if cmp == "" {
		cmp = run.ComparisonPersonalBest
	}
	d, ok := snapshot.Delta(ctx.Timer, ctx.Run, ctx.Snapshot, idx, cmp, ctx.Method)
	if !ok {
		s.Value = timefmt.Format(nil, ctx.Accuracy, ctx.Digits)
		s.SemanticColor = snapshot.Default
		return
	}
	s.Value = formatSigned(d, ctx.Accuracy, ctx.Digits)
	s.SemanticColor = deltaColor(ctx, d, idx, cmp)
}

func (c KeyValueComponent) updatePreviousSegment(s *KeyValueState, ctx *Context, idx int) {
	prevIdx := idx - 1
	if prevIdx < 0 {
		s.Value = timefmt.Format(nil, ctx.Accuracy, ctx.Digits)
		s.SemanticColor = snapshot.Default
		return
	}
	cmp := c.Comparison
	if cmp == "" {
		cmp = run.ComparisonPersonalBest
	}
	d, ok := snapshot.Delta(ctx.Timer, ctx.Run, ctx.Snapshot, prevIdx, cmp, ctx.Method)
	if !ok {
		s.Value = timefmt.Format(nil, ctx.Accuracy, ctx.Digits)
		s.SemanticColor = snapshot.Default
		return
	}
	s.Value = formatSigned(d, ctx.Accuracy, ctx.Digits)
	s.SemanticColor = deltaColor(ctx, d, prevIdx, cmp)
}

func (c KeyValueComponent) updatePossibleTimeSave(s *KeyValueState, ctx *Context, idx int) {
	d, ok := snapshot.PossibleTimeSave(ctx.Run, idx, ctx.Method)
	if !ok {
		s.Value = timefmt.Format(nil, ctx.Accuracy, ctx.Digits)
		return
	}
	s.Value = timefmt.Format(&d, ctx.Accuracy, ctx.Digits)
}

func (c KeyValueComponent) updateSumOfBest(s *KeyValueState, ctx *Context) {
	d, ok := snapshot.SumOfBest(ctx.Run, ctx.Method)
	if !ok {
		s.Value = timefmt.Format(nil, ctx.Accuracy, ctx.Digits)
		return
	}
	s.Value = timefmt.Format(&d, ctx.Accuracy, ctx.Digits)
}

func (c KeyValueComponent) updateCurrentPace(s *KeyValueState, ctx *Context) {
	d, ok := snapshot.CurrentPace(ctx.Timer, ctx.Run, ctx.Method)
	if !ok {
		s.Value = timefmt.Format(nil, ctx.Accuracy, ctx.Digits)
		return
	}
	s.Value = timefmt.Format(&d, ctx.Accuracy, ctx.Digits)
}

// deltaColor derives the semantic color for a delta value at segment idx,
// comparing against the previous segment's delta under the same
// comparison (spec.md §6).
func deltaColor(ctx *Context, delta xtime.Duration, idx int, cmp string) SemanticColor {
	best := snapshot.BestSegmentFlag(ctx.Timer, ctx.Snapshot, ctx.Run, idx, ctx.Method)
	var prevDelta xtime.Duration
	prevOk := false
	if idx > 0 {
		prevDelta, prevOk = snapshot.Delta(ctx.Timer, ctx.Run, ctx.Snapshot, idx-1, cmp, ctx.Method)
	}
	return snapshot.DeriveColor(ctx.Snapshot.Phase, delta, true, prevDelta, prevOk, best)
}

// formatSigned formats a delta with an explicit leading "+" for
// non-negative values (timefmt.Format already supplies the minus sign).
func formatSigned(d xtime.Duration, acc timefmt.Accuracy, df timefmt.DigitsFormat) string {
	if d >= 0 {
		return "+" + timefmt.Format(&d, acc, df)
	}
	return timefmt.Format(&d, acc, df)
}
