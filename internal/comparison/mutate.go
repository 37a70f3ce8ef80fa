package comparison

import "github.com/splitcore/splitcore/internal/run"

// This file pairs every Run mutation that changes the segment set or
// history with a RegenerateAll call. *run.Run cannot call RegenerateAll
// itself — internal/run has no dependency on internal/comparison, and
// comparison already depends on run, so the pairing has to live up here.
// A host editor should drive structural edits through these functions
// rather than calling the run.Run methods directly, or the comparison
// maps silently go stale (spec.md §4.3 "On any structural change,
// regenerate comparisons").

// InsertSegment inserts a segment and regenerates every comparison.
func InsertSegment(r *run.Run, index int, name string) error {
	if err := r.InsertSegment(index, name); err != nil {
		return err
	}
	RegenerateAll(r, Standard())
	return nil
}

// RemoveSegment removes a segment and regenerates every comparison.
func RemoveSegment(r *run.Run, index int) error {
	if err := r.RemoveSegment(index); err != nil {
		return err
	}
	RegenerateAll(r, Standard())
	return nil
}

// Reorder moves a segment and regenerates every comparison — segment
// position, not identity, determines which history entries a generator
// like BestSplitTimes aggregates at a given index.
func Reorder(r *run.Run, from, to int) error {
	if err := r.Reorder(from, to); err != nil {
		return err
	}
	RegenerateAll(r, Standard())
	return nil
}

// AddCustomComparison registers a custom comparison and regenerates every
// comparison so the new column is populated immediately rather than
// waiting for the next attempt.
func AddCustomComparison(r *run.Run, name string) error {
	if err := r.AddCustomComparison(name); err != nil {
		return err
	}
	RegenerateAll(r, Standard())
	return nil
}

// RemoveCustomComparison removes a custom comparison. No regeneration is
// needed: removing a key cannot make any other comparison's values stale.
func RemoveCustomComparison(r *run.Run, name string) error {
	return r.RemoveCustomComparison(name)
}
