package comparison

import (
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"
)

// None always produces an entirely absent series. It exists so that a
// layout column can be pointed at a comparison that deliberately shows
// nothing (spec.md reserved comparison names).
type None struct{}

func (None) Name() string { return run.ComparisonNone }

func (None) Generate(r *run.Run, method xtime.Method) []xtime.Time {
	return make([]xtime.Time, len(r.Segments))
}
