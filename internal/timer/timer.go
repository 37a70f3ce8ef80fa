package timer

import (
	"time"

	"github.com/splitcore/splitcore/internal/clock"
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// Timer is the attempt state machine of spec.md §4.4. It owns a *run.Run
// exclusively for the duration of an attempt and is the only component
// permitted to mutate it while Running/Paused/Ended.
type Timer struct {
	r     *run.Run
	mono  clock.MonotonicClock
	wall  clock.SystemClock
	phase Phase

	attemptID             int64
	attemptStartedInstant clock.Instant
	attemptStartedWall    time.Time

	currentSegmentIndex int
	pauseAccumulator    time.Duration
	pauseStartedInstant clock.Instant

	isGameTimePaused  bool
	frozenGameTime    time.Duration
	gameTimeOffset    time.Duration
	loadingTimes      time.Duration
	currentMethod     xtime.Method

	// currentSplits holds the current attempt's recorded split time per
	// segment so far; entries past currentSegmentIndex are zero-valued
	// (not yet reached). A skipped segment's entry stays absent.
	currentSplits []xtime.Time
	endedAt       xtime.Time
}

// New constructs a Timer bound to r, using mono for all elapsed-duration
// computation and wall only to stamp attempts.
func New(r *run.Run, mono clock.MonotonicClock, wall clock.SystemClock) *Timer {
	return &Timer{
		r:     r,
		mono:  mono,
		wall:  wall,
		phase: NotRunning,
	}
}

// Phase returns the timer's current lifecycle state.
func (t *Timer) Phase() Phase { return t.phase }

// CurrentSegmentIndex returns the index of the segment currently being
// timed. In Ended it stays on the final segment; it is meaningless while
// NotRunning.
func (t *Timer) CurrentSegmentIndex() int { return t.currentSegmentIndex }

// AttemptID returns the id of the attempt currently in progress, or the
// id of the most recently completed one while NotRunning.
func (t *Timer) AttemptID() int64 { return t.attemptID }

// Run returns the bound Run.
func (t *Timer) Run() *run.Run { return t.r }

// Start begins a new attempt. No-op outside NotRunning.
func (t *Timer) Start() {
	if t.phase != NotRunning {
		return
	}
	t.attemptID = t.r.NextAttemptID()
	t.attemptStartedInstant = t.mono.Now().Add(-t.r.Offset)
	t.attemptStartedWall = t.wall.Wall()
	t.pauseAccumulator = 0
	t.isGameTimePaused = false
	t.frozenGameTime = 0
	t.gameTimeOffset = 0
	t.loadingTimes = 0
	t.currentSegmentIndex = 0
	t.currentSplits = make([]xtime.Time, len(t.r.Segments))
	t.endedAt = xtime.Time{}
	t.phase = Running
}

// Split records the current attempt time for the active segment and
// advances to the next one, ending the attempt if that was the last
// segment. No-op outside Running.
func (t *Timer) Split() {
	if t.phase != Running {
		return
	}
	cur := t.currentTime()
	t.currentSplits[t.currentSegmentIndex] = cur
	if t.currentSegmentIndex == t.r.FinalSegmentIndex() {
		t.endedAt = cur
		t.phase = Ended
		return
	}
	t.currentSegmentIndex++
}

// Skip marks the active segment's split time absent and advances to the
// next segment. Refused on the final segment or outside Running.
func (t *Timer) Skip() {
	if t.phase != Running {
		return
	}
	if t.currentSegmentIndex == t.r.FinalSegmentIndex() {
		return
	}
	t.currentSplits[t.currentSegmentIndex] = xtime.Time{}
	t.currentSegmentIndex++
}

// Undo discards the previous segment's recorded split time and moves the
// active segment back to it. Refused at segment 0 or outside Running.
func (t *Timer) Undo() {
	if t.phase != Running {
		return
	}
	if t.currentSegmentIndex == 0 {
		return
	}
	t.currentSegmentIndex--
	t.currentSplits[t.currentSegmentIndex] = xtime.Time{}
}

// Pause freezes elapsed time accumulation. No-op outside Running.
func (t *Timer) Pause() {
	if t.phase != Running {
		return
	}
	t.pauseStartedInstant = t.mono.Now()
	t.phase = Paused
}

// Resume folds the just-ended pause into the accumulator. No-op outside
// Paused.
func (t *Timer) Resume() {
	if t.phase != Paused {
		return
	}
	t.pauseAccumulator += t.mono.ElapsedSince(t.pauseStartedInstant)
	t.phase = Running
}

// TogglePause calls Pause or Resume depending on the current phase.
func (t *Timer) TogglePause() {
	switch t.phase {
	case Running:
		t.Pause()
	case Paused:
		t.Resume()
	}
}

// PauseGameTime freezes the game-time component at its current value.
// Allowed in any state except NotRunning.
func (t *Timer) PauseGameTime() {
	if t.phase == NotRunning {
		return
	}
	if t.isGameTimePaused {
		return
	}
	t.frozenGameTime = t.gameTime(t.elapsedReal())
	t.isGameTimePaused = true
}

// ResumeGameTime un-freezes the game-time component. Allowed in any state
// except NotRunning.
func (t *Timer) ResumeGameTime() {
	if t.phase == NotRunning {
		return
	}
	if !t.isGameTimePaused {
		return
	}
	// Re-anchor the offset so game time continues from the frozen value
	// instead of jumping to whatever real elapsed + offset would now be.
	t.gameTimeOffset = t.frozenGameTime - (t.elapsedReal() - t.loadingTimes)
	t.isGameTimePaused = false
}

// SetGameTime overwrites the current game time by recomputing
// gameTimeOffset so the displayed game time equals d. Allowed in Running,
// Paused, Ended.
func (t *Timer) SetGameTime(d time.Duration) error {
	switch t.phase {
	case Running, Paused, Ended:
	default:
		return ErrInvalidTime
	}
	if t.isGameTimePaused {
		t.frozenGameTime = d
		return nil
	}
	t.gameTimeOffset = d - (t.elapsedReal() - t.loadingTimes)
	return nil
}

// SetLoadingTimes sets the duration subtracted from real elapsed time to
// produce game time.
func (t *Timer) SetLoadingTimes(d time.Duration) {
	t.loadingTimes = d
}

// SetCurrentTimingMethod selects which method's current time is treated
// as primary by callers that need a single scalar (layout projection).
func (t *Timer) SetCurrentTimingMethod(m xtime.Method) {
	t.currentMethod = m
}

// CurrentTimingMethod returns the currently selected timing method.
func (t *Timer) CurrentTimingMethod() xtime.Method { return t.currentMethod }

// SwitchTo cycles the current timing method to the other of the two
// methods (there are exactly two, so "next" and "previous" coincide).
func (t *Timer) SwitchTo() {
	if t.currentMethod == xtime.RealTime {
		t.currentMethod = xtime.GameTime
	} else {
		t.currentMethod = xtime.RealTime
	}
}

// elapsedReal computes the attempt's elapsed real time per spec.md §4.4's
// derivation formula, excluding time spent paused.
func (t *Timer) elapsedReal() time.Duration {
	r := t.mono.ElapsedSince(t.attemptStartedInstant) - t.pauseAccumulator
	if t.phase == Paused {
		r -= t.mono.ElapsedSince(t.pauseStartedInstant)
	}
	return r
}

// gameTime derives the game-time component from an already-computed real
// elapsed duration.
func (t *Timer) gameTime(real time.Duration) time.Duration {
	if t.isGameTimePaused {
		return t.frozenGameTime
	}
	return real - t.loadingTimes + t.gameTimeOffset
}

// currentTime returns the attempt's current time for both methods. In
// Ended it returns the frozen value from the last Split.
func (t *Timer) currentTime() xtime.Time {
	if t.phase == Ended {
		return t.endedAt
	}
	if t.phase == NotRunning {
		return xtime.Time{}
	}
	real := t.elapsedReal()
	return xtime.NewTime(real, t.gameTime(real))
}

// CurrentTime is the public accessor used by snapshot/layout projection.
func (t *Timer) CurrentTime() xtime.Time { return t.currentTime() }

// SegmentSplit returns the current attempt's recorded split time for
// segment index i, if it has been reached yet.
func (t *Timer) SegmentSplit(i int) (xtime.Time, bool) {
	if i < 0 || i >= len(t.currentSplits) {
		return xtime.Time{}, false
	}
	if i >= t.currentSegmentIndex && t.phase != Ended {
		return xtime.Time{}, false
	}
	return t.currentSplits[i], true
}
