package layout

// TextState is the Text component's state buffer: a static or
// two-part label with no timing data.
type TextState struct {
	Background    string
	Left          string
	Right         string
	Centered      string
	DisplayTwoRows bool
}

func (*TextState) isComponentState() {}

// TextComponent displays a fixed or externally-set label.
type TextComponent struct {
	Left, Right, Centered string
}

func (TextComponent) NewState() ComponentState { return &TextState{} }

func (c TextComponent) Update(state ComponentState, ctx *Context) {
	s := state.(*TextState)
	s.Left = c.Left
	s.Right = c.Right
	s.Centered = c.Centered
	s.DisplayTwoRows = c.Centered == "" && (c.Left != "" || c.Right != "")
}

// BlankSpaceState is the BlankSpace component's state buffer: pure
// vertical padding.
type BlankSpaceState struct {
	Height int
}

func (*BlankSpaceState) isComponentState() {}

// BlankSpaceComponent reserves a fixed amount of vertical space.
type BlankSpaceComponent struct {
	Height int
}

func (BlankSpaceComponent) NewState() ComponentState { return &BlankSpaceState{} }

func (c BlankSpaceComponent) Update(state ComponentState, ctx *Context) {
	state.(*BlankSpaceState).Height = c.Height
}

// SeparatorState is the Separator component's state buffer: a thin
// horizontal rule between other components.
type SeparatorState struct{}

func (*SeparatorState) isComponentState() {}

// SeparatorComponent renders a thin horizontal rule.
type SeparatorComponent struct{}

func (SeparatorComponent) NewState() ComponentState { return &SeparatorState{} }

func (SeparatorComponent) Update(state ComponentState, ctx *Context) {}
