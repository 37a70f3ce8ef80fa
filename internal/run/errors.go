package run

import "errors"

var (
	// ErrEmptyRun is returned when an operation would leave a Run with
	// fewer than one segment.
	ErrEmptyRun = errors.New("run: a run must contain at least one segment")
	// ErrReservedComparisonName is returned by AddCustomComparison when the
	// requested name collides with a reserved/built-in comparison name.
	ErrReservedComparisonName = errors.New("run: comparison name is reserved")
	// ErrDuplicateComparisonName is returned by AddCustomComparison when the
	// name is already in use.
	ErrDuplicateComparisonName = errors.New("run: comparison name already exists")
	// ErrUnknownComparisonName is returned when looking up or removing a
	// comparison name that is not a known custom comparison.
	ErrUnknownComparisonName = errors.New("run: unknown comparison name")
	// ErrIndexOutOfRange is returned by segment operations given an
	// out-of-bounds index.
	ErrIndexOutOfRange = errors.New("run: segment index out of range")
)
