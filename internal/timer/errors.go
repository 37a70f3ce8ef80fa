package timer

import "errors"

// ErrInvalidTime is the single recoverable error a Timer can return, from
// SetGameTime. The timer's state is left unchanged when it is returned.
var ErrInvalidTime = errors.New("timer: invalid time")
