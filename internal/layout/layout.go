package layout

// Layout is an ordered list of Components rendered top to bottom. State
// buffers are allocated once and reused for every subsequent Update call.
type Layout struct {
	components []Component
	states     []ComponentState
}

// New constructs a Layout from an ordered component list.
func New(components ...Component) *Layout {
	states := make([]ComponentState, len(components))
	for i, c := range components {
		states[i] = c.NewState()
	}
	return &Layout{components: components, states: states}
}

// Update recomputes every component's state against ctx and returns the
// (reused) state-buffer slice in layout order.
func (l *Layout) Update(ctx *Context) []ComponentState {
	for i, c := range l.components {
		c.Update(l.states[i], ctx)
	}
	return l.states
}

// Components exposes the underlying component list, e.g. so a caller can
// type-assert to *SplitsComponent and call ScrollUp/ScrollDown.
func (l *Layout) Components() []Component { return l.components }
