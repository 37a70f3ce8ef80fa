package layout

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/snapshot"
	"github.com/splitcore/splitcore/internal/timefmt"
	"github.com/splitcore/splitcore/internal/timer"
	"github.com/splitcore/splitcore/internal/xtime"
)

// StartWith selects a split row column's value before the runner reaches
// that segment (spec.md §6).
type StartWith int

const (
	StartEmpty StartWith = iota
	StartComparisonTime
	StartComparisonSegmentTime
	StartPossibleTimeSave
)

// UpdateWith selects how a column's value is replaced once attempt data
// becomes available for that segment.
type UpdateWith int

const (
	DontUpdate UpdateWith = iota
	UpdateSplitTime
	UpdateDelta
	UpdateDeltaWithFallback
	UpdateSegmentTime
	UpdateSegmentDelta
	UpdateSegmentDeltaWithFallback
)

// UpdateTrigger selects when a column switches from its StartWith value
// to its UpdateWith value.
type UpdateTrigger int

const (
	OnStartingSegment UpdateTrigger = iota
	Contextual
	OnEndingSegment
)

// ColumnConfig describes one split-row column as a (StartWith,
// UpdateWith, UpdateTrigger) triple, plus which comparison it reads.
type ColumnConfig struct {
	StartWith     StartWith
	UpdateWith    UpdateWith
	UpdateTrigger UpdateTrigger
	Comparison    string
}

// segmentStatus reports whether segment idx has been completed by the
// current attempt, and whether it is the segment currently in progress.
func segmentStatus(ctx *Context, idx int) (completed, isCurrent bool) {
	cur := ctx.Timer.CurrentSegmentIndex()
	if ctx.Snapshot.Phase == timer.Ended {
		return idx <= cur, false
	}
	completed = idx < cur
	isCurrent = idx == cur && (ctx.Snapshot.Phase == timer.Running || ctx.Snapshot.Phase == timer.Paused)
	return
}

func shouldUpdate(trigger UpdateTrigger, completed, isCurrent bool) bool {
	switch trigger {
	case OnEndingSegment:
		return completed
	default: // OnStartingSegment, Contextual
		return completed || isCurrent
	}
}

func comparisonOrDefault(name string) string {
	if name == "" {
		return run.ComparisonPersonalBest
	}
	return name
}

// startValue computes a column's value before attempt data has replaced
// it (StartWith).
func startValue(cfg ColumnConfig, ctx *Context, idx int) (xtime.Duration, bool) {
	cmp := comparisonOrDefault(cfg.Comparison)
	switch cfg.StartWith {
	case StartComparisonTime:
		return ctx.Run.Segments[idx].Comparisons[cmp].Get(ctx.Method)
	case StartComparisonSegmentTime:
		cur, ok := ctx.Run.Segments[idx].Comparisons[cmp].Get(ctx.Method)
		if !ok {
			return 0, false
		}
		if idx == 0 {
			return cur, true
		}
		prev, ok := ctx.Run.Segments[idx-1].Comparisons[cmp].Get(ctx.Method)
		if !ok {
			return 0, false
		}
		return cur - prev, true
	case StartPossibleTimeSave:
		return snapshot.PossibleTimeSave(ctx.Run, idx, ctx.Method)
	default:
		return 0, false
	}
}

// updatedValue computes a column's live value once attempt data is
// available (UpdateWith). ok is false when even the fallback search finds
// nothing, letting the caller fall back to startValue.
func updatedValue(cfg ColumnConfig, ctx *Context, idx int) (xtime.Duration, bool) {
	cmp := comparisonOrDefault(cfg.Comparison)
	switch cfg.UpdateWith {
	case UpdateSplitTime:
		return snapshot.AttemptSplit(ctx.Timer, ctx.Snapshot, idx).Get(ctx.Method)
	case UpdateDelta:
		return snapshot.Delta(ctx.Timer, ctx.Run, ctx.Snapshot, idx, cmp, ctx.Method)
	case UpdateDeltaWithFallback:
		return deltaWithFallback(cfg, ctx, idx)
	case UpdateSegmentTime:
		d, ok := snapshot.SegmentTime(ctx.Timer, ctx.Snapshot, idx).Get(ctx.Method)
		return d, ok
	case UpdateSegmentDelta:
		return segmentDelta(cfg, ctx, idx)
	case UpdateSegmentDeltaWithFallback:
		return segmentDeltaWithFallback(cfg, ctx, idx)
	default:
		return 0, false
	}
}

func segmentDelta(cfg ColumnConfig, ctx *Context, idx int) (xtime.Duration, bool) {
	cmp := comparisonOrDefault(cfg.Comparison)
	segTime, ok := snapshot.SegmentTime(ctx.Timer, ctx.Snapshot, idx).Get(ctx.Method)
	if !ok {
		return 0, false
	}
	cmpCur, ok := ctx.Run.Segments[idx].Comparisons[cmp].Get(ctx.Method)
	if !ok {
		return 0, false
	}
	cmpPrev := xtime.Duration(0)
	if idx > 0 {
		p, ok := ctx.Run.Segments[idx-1].Comparisons[cmp].Get(ctx.Method)
		if !ok {
			return 0, false
		}
		cmpPrev = p
	}
	return segTime - (cmpCur - cmpPrev), true
}

// deltaWithFallback implements spec.md §8 S6: when this segment's delta
// is unavailable (it was skipped), fall back to the most recent present
// delta among earlier, already-completed segments instead of leaving the
// column blank.
func deltaWithFallback(cfg ColumnConfig, ctx *Context, idx int) (xtime.Duration, bool) {
	cmp := comparisonOrDefault(cfg.Comparison)
	if d, ok := snapshot.Delta(ctx.Timer, ctx.Run, ctx.Snapshot, idx, cmp, ctx.Method); ok {
		return d, true
	}
	for j := idx - 1; j >= 0; j-- {
		completed, _ := segmentStatus(ctx, j)
		if !completed {
			continue
		}
		if d, ok := snapshot.Delta(ctx.Timer, ctx.Run, ctx.Snapshot, j, cmp, ctx.Method); ok {
			return d, true
		}
	}
	return 0, false
}

func segmentDeltaWithFallback(cfg ColumnConfig, ctx *Context, idx int) (xtime.Duration, bool) {
	if d, ok := segmentDelta(cfg, ctx, idx); ok {
		return d, true
	}
	for j := idx - 1; j >= 0; j-- {
		completed, _ := segmentStatus(ctx, j)
		if !completed {
			continue
		}
		if d, ok := segmentDelta(cfg, ctx, j); ok {
			return d, true
		}
	}
	return 0, false
}

// EvaluateColumn computes one split row's column value for segment idx,
// applying the (StartWith, UpdateWith, UpdateTrigger) triple.
func EvaluateColumn(cfg ColumnConfig, ctx *Context, idx int) ColumnValue {
	completed, isCurrent := segmentStatus(ctx, idx)
	var (
		d  xtime.Duration
		ok bool
	)
	if shouldUpdate(cfg.UpdateTrigger, completed, isCurrent) {
		d, ok = updatedValue(cfg, ctx, idx)
	}
	if !ok {
		d, ok = startValue(cfg, ctx, idx)
	}

	col := ColumnValue{UpdatesFrequently: isCurrent && cfg.UpdateWith != DontUpdate}
	if !ok {
		col.Value = timefmt.Format(nil, ctx.Accuracy, ctx.Digits)
		col.SemanticColor = snapshot.Default
		return col
	}

	signed := cfg.UpdateWith == UpdateDelta || cfg.UpdateWith == UpdateDeltaWithFallback ||
		cfg.UpdateWith == UpdateSegmentDelta || cfg.UpdateWith == UpdateSegmentDeltaWithFallback
	if signed {
		col.Value = formatSigned(d, ctx.Accuracy, ctx.Digits)
		best := snapshot.BestSegmentFlag(ctx.Timer, ctx.Snapshot, ctx.Run, idx, ctx.Method)
		col.SemanticColor = snapshot.DeriveColor(ctx.Snapshot.Phase, d, true, 0, false, best)
	} else {
		col.Value = timefmt.Format(&d, ctx.Accuracy, ctx.Digits)
		col.SemanticColor = snapshot.Default
	}
	return col
}
