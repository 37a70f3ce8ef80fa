package snapshot

import (
	"github.com/splitcore/splitcore/internal/timer"
	"github.com/splitcore/splitcore/internal/xtime"
)

// SemanticColor is the renderer-agnostic color class a layout component
// assigns to a value, per spec.md §6.
type SemanticColor int

const (
	Default SemanticColor = iota
	AheadGainingTime
	AheadLosingTime
	BehindLosingTime
	BehindGainingTime
	BestSegment
	NotRunningColor
	PausedColor
	PersonalBest
)

func (c SemanticColor) String() string {
	switch c {
	case Default:
		return "Default"
	case AheadGainingTime:
		return "AheadGainingTime"
	case AheadLosingTime:
		return "AheadLosingTime"
	case BehindLosingTime:
		return "BehindLosingTime"
	case BehindGainingTime:
		return "BehindGainingTime"
	case BestSegment:
		return "BestSegment"
	case NotRunningColor:
		return "NotRunning"
	case PausedColor:
		return "Paused"
	case PersonalBest:
		return "PersonalBest"
	default:
		return "Unknown"
	}
}

// DeriveColor implements the decision rule of spec.md §6: phase overrides
// take priority, then a best-segment flag, then the delta/previous-delta
// quadrant. deltaOk/prevOk being false mean that operand was absent;
// absent current delta yields Default, absent previous delta is treated
// as a zero baseline.
func DeriveColor(phase timer.Phase, delta xtime.Duration, deltaOk bool, prevDelta xtime.Duration, prevOk bool, isBestSegment bool) SemanticColor {
	if phase == timer.Paused {
		return PausedColor
	}
	if phase == timer.NotRunning {
		return NotRunningColor
	}
	if isBestSegment {
		return BestSegment
	}
	if !deltaOk {
		return Default
	}
	prev := prevDelta
	if !prevOk {
		prev = 0
	}
	switch {
	case delta < 0 && delta < prev:
		return AheadGainingTime
	case delta < 0:
		return AheadLosingTime
	case delta >= 0 && delta <= prev:
		return BehindGainingTime
	default:
		return BehindLosingTime
	}
}
