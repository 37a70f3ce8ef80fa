package xtime

import "time"

// Duration is a signed, nanosecond-resolution duration. time.Duration
// already stores exactly this (an int64 count of nanoseconds), so we
// reuse it rather than reinventing fixed-point arithmetic.
type Duration = time.Duration

// Time is an ordered pair of optional durations: a real-time split/segment
// value and a game-time split/segment value. A nil component means "this
// timing method has no meaningful value here" (skipped segment, run with
// no game-time support, etc).
type Time struct {
	RealTime *Duration
	GameTime *Duration
}

// Get returns the component for the given method and whether it is present.
func (t Time) Get(m Method) (Duration, bool) {
	var d *Duration
	if m == RealTime {
		d = t.RealTime
	} else {
		d = t.GameTime
	}
	if d == nil {
		return 0, false
	}
	return *d, true
}

// With returns a copy of t with the given method's component set to d.
func (t Time) With(m Method, d Duration) Time {
	out := t
	if m == RealTime {
		out.RealTime = &d
	} else {
		out.GameTime = &d
	}
	return out
}

// Cleared returns a copy of t with the given method's component absent.
func (t Time) Cleared(m Method) Time {
	out := t
	if m == RealTime {
		out.RealTime = nil
	} else {
		out.GameTime = nil
	}
	return out
}

// NewTime builds a Time with both components present.
func NewTime(real, game Duration) Time {
	return Time{RealTime: &real, GameTime: &game}
}

// Add returns the elementwise sum of a and b. A component is present in the
// result only when it is present in both operands.
func Add(a, b Time) Time {
	var out Time
	if a.RealTime != nil && b.RealTime != nil {
		sum := *a.RealTime + *b.RealTime
		out.RealTime = &sum
	}
	if a.GameTime != nil && b.GameTime != nil {
		sum := *a.GameTime + *b.GameTime
		out.GameTime = &sum
	}
	return out
}

// Sub returns the elementwise difference a - b. A component is present in
// the result only when it is present in both operands.
func Sub(a, b Time) Time {
	var out Time
	if a.RealTime != nil && b.RealTime != nil {
		diff := *a.RealTime - *b.RealTime
		out.RealTime = &diff
	}
	if a.GameTime != nil && b.GameTime != nil {
		diff := *a.GameTime - *b.GameTime
		out.GameTime = &diff
	}
	return out
}

// Compare compares a and b for a single method. ok is false when either
// side is absent for that method; comparisons across methods are undefined
// and not offered.
func Compare(a, b Time, m Method) (cmp int, ok bool) {
	av, aok := a.Get(m)
	bv, bok := b.Get(m)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case av < bv:
		return -1, true
	case av > bv:
		return 1, true
	default:
		return 0, true
	}
}

// IsEmpty reports whether both components are absent.
func (t Time) IsEmpty() bool {
	return t.RealTime == nil && t.GameTime == nil
}
