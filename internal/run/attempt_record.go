package run

import (
	"time"

	"github.com/splitcore/splitcore/internal/xtime"
)

// AttemptRecord is the permanent record of one past attempt, successful or
// not, retained in Run.AttemptHistory forever (spec.md §4.3).
type AttemptRecord struct {
	AttemptID int64
	StartedAt time.Time
	Ended     xtime.Time
	PauseTime xtime.Duration
}
