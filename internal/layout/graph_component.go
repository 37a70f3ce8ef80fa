package layout

import (
	"github.com/splitcore/splitcore/internal/snapshot"
	"github.com/splitcore/splitcore/internal/timer"
)

// GraphPoint is one sample in the Graph component's series: x is the
// segment index, y is the delta (vs. the configured comparison)
// normalized into [0, 1] against the series' own min/max, per
// original LiveSplit-core's graph component.
type GraphPoint struct {
	SegmentIndex  int
	Y             float64
	IsBestSegment bool
}

// GraphState is the Graph component's state buffer (spec.md §6).
type GraphState struct {
	Background    string
	Points        []GraphPoint
	MiddleY       float64
	IsLiveDelta   bool
	Height        int
}

func (*GraphState) isComponentState() {}

// GraphComponent plots each completed segment's delta, plus the live
// delta of the segment in progress, against a comparison, scaled to fit.
type GraphComponent struct {
	Comparison string
	Height     int
}

func (GraphComponent) NewState() ComponentState { return &GraphState{} }

func (c GraphComponent) Update(state ComponentState, ctx *Context) {
	s := state.(*GraphState)
	s.Height = c.Height
	if s.Height == 0 {
		s.Height = 8
	}
	cmp := comparisonOrDefault(c.Comparison)

	n := len(ctx.Run.Segments)
	if cap(s.Points) < n {
		s.Points = make([]GraphPoint, 0, n)
	} else {
		s.Points = s.Points[:0]
	}

	min, max := 0.0, 0.0
	raw := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		completed, isCurrent := segmentStatus(ctx, i)
		if !completed && !isCurrent {
			continue
		}
		d, ok := snapshot.Delta(ctx.Timer, ctx.Run, ctx.Snapshot, i, cmp, ctx.Method)
		if !ok {
			continue
		}
		v := float64(d)
		raw = append(raw, v)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		s.Points = append(s.Points, GraphPoint{
			SegmentIndex:  i,
			IsBestSegment: snapshot.BestSegmentFlag(ctx.Timer, ctx.Snapshot, ctx.Run, i, ctx.Method),
		})
	}

	span := max - min
	for i := range s.Points {
		if span == 0 {
			s.Points[i].Y = 0.5
			continue
		}
		s.Points[i].Y = (raw[i] - min) / span
	}
	if span == 0 {
		s.MiddleY = 0.5
	} else {
		s.MiddleY = (0 - min) / span
	}
	s.IsLiveDelta = ctx.Snapshot.Phase == timer.Running
}
