package layout

import "github.com/splitcore/splitcore/internal/timer"

// ColumnValue is one cell in a split row.
type ColumnValue struct {
	Value             string
	SemanticColor     SemanticColor
	VisualColor       string
	UpdatesFrequently bool
}

// SplitRow is one row of the Splits component.
type SplitRow struct {
	Icon           ImageID
	Name           string
	Columns        []ColumnValue
	IsCurrentSplit bool
	Index          int
}

// SplitsState is the Splits component's state buffer (spec.md §6).
type SplitsState struct {
	Background           string
	ColumnLabels         []string
	Splits               []SplitRow
	HasIcons             bool
	ShowThinSeparators   bool
	ShowFinalSeparator   bool
	DisplayTwoRows       bool
	CurrentSplitGradient string
}

func (*SplitsState) isComponentState() {}

// SplitsComponent is a windowed, scrollable view over a Run's segments.
// Scroll state is owned by the component itself (ScrollUp/ScrollDown),
// mirroring the teacher's Bubble Tea viewport scroll-offset handling and
// grounded on original LiveSplit-core's splits::Component.scroll_up/down
// (component.rs).
type SplitsComponent struct {
	VisibleCount          int
	AlwaysShowLastSegment bool
	UpcomingSegments      int
	ShowThinSeparators    bool
	ColumnLabels          []string
	Columns               []ColumnConfig

	scrollOffset int
}

func (SplitsComponent) NewState() ComponentState { return &SplitsState{} }

// ScrollUp moves the visible window one segment earlier, never past the
// first segment.
func (c *SplitsComponent) ScrollUp() {
	if c.scrollOffset > 0 {
		c.scrollOffset--
	}
}

// ScrollDown moves the visible window one segment later.
func (c *SplitsComponent) ScrollDown(segmentCount int) {
	maxOffset := segmentCount - c.visibleCount()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.scrollOffset < maxOffset {
		c.scrollOffset++
	}
}

func (c *SplitsComponent) visibleCount() int {
	if c.VisibleCount <= 0 {
		return 1
	}
	return c.VisibleCount
}

// window computes the half-open [start, end) segment range to display,
// honoring AlwaysShowLastSegment and the current scroll offset.
func (c *SplitsComponent) window(ctx *Context) (start, end int) {
	n := len(ctx.Run.Segments)
	visible := c.visibleCount()
	if visible >= n {
		return 0, n
	}

	start = c.scrollOffset
	cur := ctx.Timer.CurrentSegmentIndex()
	if cur >= n {
		cur = n - 1
	}
	if ctx.Snapshot.Phase == timer.Running || ctx.Snapshot.Phase == timer.Paused {
		if cur < start {
			start = cur
		}
		if cur >= start+visible {
			start = cur - visible + 1
		}
	}

	end = start + visible
	if end > n {
		end = n
		start = end - visible
	}
	if start < 0 {
		start = 0
	}

	if c.AlwaysShowLastSegment && end < n {
		end = n
		start = end - visible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

func (c *SplitsComponent) Update(state ComponentState, ctx *Context) {
	s := state.(*SplitsState)
	s.ColumnLabels = c.ColumnLabels
	s.ShowThinSeparators = c.ShowThinSeparators
	s.ShowFinalSeparator = true
	s.HasIcons = false

	start, end := c.window(ctx)
	rowCount := end - start
	if cap(s.Splits) < rowCount {
		s.Splits = make([]SplitRow, rowCount)
	} else {
		s.Splits = s.Splits[:rowCount]
	}

	cur := ctx.Timer.CurrentSegmentIndex()
	for i := start; i < end; i++ {
		row := &s.Splits[i-start]
		seg := ctx.Run.Segments[i]
		row.Icon = seg.Icon
		row.Name = seg.Name
		row.Index = i
		row.IsCurrentSplit = i == cur && (ctx.Snapshot.Phase == timer.Running || ctx.Snapshot.Phase == timer.Paused)
		if !seg.Icon.Empty() {
			s.HasIcons = true
		}

		if cap(row.Columns) < len(c.Columns) {
			row.Columns = make([]ColumnValue, len(c.Columns))
		} else {
			row.Columns = row.Columns[:len(c.Columns)]
		}
		for ci, col := range c.Columns {
			row.Columns[ci] = EvaluateColumn(col, ctx, i)
		}
	}
}
