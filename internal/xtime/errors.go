package xtime

import "errors"

// ErrInvalidTime is returned when a duration/time string could not be
// parsed (see timefmt.Parse).
var ErrInvalidTime = errors.New("xtime: invalid time")
