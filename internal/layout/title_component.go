package layout

// TitleState is the Title component's state buffer (spec.md §6).
type TitleState struct {
	Background     string
	TextColor      *string
	Icon           ImageID
	Line1          []string
	Line2          []string
	IsCentered     bool
	FinishedRuns   *int
	Attempts       *int
}

func (*TitleState) isComponentState() {}

// TitleComponent shows the game/category name, icon, and attempt counts.
type TitleComponent struct{}

func (TitleComponent) NewState() ComponentState { return &TitleState{IsCentered: true} }

func (TitleComponent) Update(state ComponentState, ctx *Context) {
	s := state.(*TitleState)
	s.Icon = ctx.Run.GameIcon
	s.Line1 = abbreviations(ctx.Run.GameName)
	s.Line2 = abbreviations(ctx.Run.CategoryName)
	finished := ctx.Run.FinishedAttemptCount
	attempts := ctx.Run.AttemptCount
	s.FinishedRuns = &finished
	s.Attempts = &attempts
}

// abbreviations returns progressively shorter renderings of name, the
// last element always being the full, unabbreviated string — mirroring
// LiveSplit-core's title component line1/line2 contract, which lets a
// narrow renderer pick the longest variant that still fits.
func abbreviations(name string) []string {
	if name == "" {
		return nil
	}
	runes := []rune(name)
	if len(runes) <= 24 {
		return []string{name}
	}
	return []string{string(runes[:24]) + "…", name}
}
