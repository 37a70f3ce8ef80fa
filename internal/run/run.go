package run

import (
	"fmt"

	"github.com/splitcore/splitcore/internal/imagecache"
	"github.com/splitcore/splitcore/internal/xtime"
)

// Run is the persistent domain model for a game/category: its segments,
// metadata, and history. A Run is exclusively owned by whichever component
// currently holds it — the editor while being edited, the Timer while an
// attempt is live (spec.md §3 "Ownership").
type Run struct {
	GameName     string
	CategoryName string
	GameIcon     imagecache.ID
	Metadata     Metadata

	AttemptCount         int
	FinishedAttemptCount int
	Offset               xtime.Duration

	Segments          []Segment
	CustomComparisons []string
	AttemptHistory    []AttemptRecord

	nextAttemptID int64
}

// New creates a Run from the given segment names. At least one segment is
// required; I5 holds for the lifetime of the Run.
func New(gameName, categoryName string, segmentNames []string) (*Run, error) {
	if len(segmentNames) == 0 {
		return nil, ErrEmptyRun
	}
	r := &Run{
		GameName:      gameName,
		CategoryName:  categoryName,
		Metadata:      NewMetadata(),
		nextAttemptID: 1,
	}
	for _, name := range segmentNames {
		r.Segments = append(r.Segments, NewSegment(name, r.comparisonNames()))
	}
	return r, nil
}

// comparisonNames returns every comparison key that must be present on
// every segment: built-ins plus any custom comparisons (I2).
func (r *Run) comparisonNames() []string {
	names := append([]string(nil), BuiltinComparisons()...)
	names = append(names, r.CustomComparisons...)
	return names
}

// NextAttemptID returns a fresh, strictly-increasing attempt id (I4) and
// consumes it.
func (r *Run) NextAttemptID() int64 {
	id := r.nextAttemptID
	r.nextAttemptID++
	return id
}

// InsertSegment inserts a new segment named name at index, shifting
// subsequent segments right. index == len(Segments) appends.
func (r *Run) InsertSegment(index int, name string) error {
	if index < 0 || index > len(r.Segments) {
		return fmt.Errorf("%w: insert index %d", ErrIndexOutOfRange, index)
	}
	seg := NewSegment(name, r.comparisonNames())
	r.Segments = append(r.Segments, Segment{})
	copy(r.Segments[index+1:], r.Segments[index:])
	r.Segments[index] = seg
	return nil
}

// RemoveSegment removes the segment at index. Refused if doing so would
// leave the Run with zero segments (I5).
func (r *Run) RemoveSegment(index int) error {
	if index < 0 || index >= len(r.Segments) {
		return fmt.Errorf("%w: remove index %d", ErrIndexOutOfRange, index)
	}
	if len(r.Segments) <= 1 {
		return ErrEmptyRun
	}
	r.Segments = append(r.Segments[:index], r.Segments[index+1:]...)
	return nil
}

// Reorder moves the segment at from to position to.
func (r *Run) Reorder(from, to int) error {
	n := len(r.Segments)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: reorder from %d", ErrIndexOutOfRange, from)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: reorder to %d", ErrIndexOutOfRange, to)
	}
	if from == to {
		return nil
	}
	seg := r.Segments[from]
	r.Segments = append(r.Segments[:from], r.Segments[from+1:]...)
	r.Segments = append(r.Segments[:to], append([]Segment{seg}, r.Segments[to:]...)...)
	return nil
}

// Rename changes the display name of the segment at index.
func (r *Run) Rename(index int, name string) error {
	if index < 0 || index >= len(r.Segments) {
		return fmt.Errorf("%w: rename index %d", ErrIndexOutOfRange, index)
	}
	r.Segments[index].Name = name
	return nil
}

// SetIcon sets the icon handle of the segment at index.
func (r *Run) SetIcon(index int, icon imagecache.ID) error {
	if index < 0 || index >= len(r.Segments) {
		return fmt.Errorf("%w: set icon index %d", ErrIndexOutOfRange, index)
	}
	r.Segments[index].Icon = icon
	return nil
}

// SetGameIcon sets the Run's game icon handle.
func (r *Run) SetGameIcon(icon imagecache.ID) {
	r.GameIcon = icon
}

// SetOffset sets the attempt timer's starting value. Negative offsets
// (pre-countdown) are allowed by default (spec.md §7,
// NegativeOffsetForbidden is policy-gated, not enforced here).
func (r *Run) SetOffset(offset xtime.Duration) {
	r.Offset = offset
}

// SetMetadata replaces the Run's metadata wholesale.
func (r *Run) SetMetadata(m Metadata) {
	r.Metadata = m
}

// AddCustomComparison registers a new custom comparison name and adds its
// key (absent) to every segment's comparison map (I2).
func (r *Run) AddCustomComparison(name string) error {
	if IsReservedComparisonName(name) {
		return fmt.Errorf("%w: %q", ErrReservedComparisonName, name)
	}
	for _, existing := range r.CustomComparisons {
		if existing == name {
			return fmt.Errorf("%w: %q", ErrDuplicateComparisonName, name)
		}
	}
	r.CustomComparisons = append(r.CustomComparisons, name)
	for i := range r.Segments {
		if r.Segments[i].Comparisons == nil {
			r.Segments[i].Comparisons = map[string]xtime.Time{}
		}
		r.Segments[i].Comparisons[name] = xtime.Time{}
	}
	return nil
}

// RemoveCustomComparison removes a previously added custom comparison.
// Refused for built-ins/reserved names.
func (r *Run) RemoveCustomComparison(name string) error {
	if IsReservedComparisonName(name) {
		return fmt.Errorf("%w: %q is built-in", ErrReservedComparisonName, name)
	}
	idx := -1
	for i, existing := range r.CustomComparisons {
		if existing == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: %q", ErrUnknownComparisonName, name)
	}
	r.CustomComparisons = append(r.CustomComparisons[:idx], r.CustomComparisons[idx+1:]...)
	for i := range r.Segments {
		delete(r.Segments[i].Comparisons, name)
	}
	return nil
}

// FinalSegmentIndex returns the index of the last segment.
func (r *Run) FinalSegmentIndex() int {
	return len(r.Segments) - 1
}
