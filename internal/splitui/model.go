// Package splitui provides the Bubble Tea demo renderer that drives
// internal/timer with keyboard input and renders internal/layout's
// component state buffers as plain styled text. It is a thin host-side
// consumer of the layout state contract, not a graphical renderer: no
// mesh/path rasterization, font shaping, or image decoding happens
// here.
package splitui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/splitcore/splitcore/internal/clock"
	"github.com/splitcore/splitcore/internal/config"
	"github.com/splitcore/splitcore/internal/journal"
	"github.com/splitcore/splitcore/internal/layout"
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/snapshot"
	"github.com/splitcore/splitcore/internal/telemetry"
	"github.com/splitcore/splitcore/internal/timer"
)

const tickInterval = 30 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model implements the Bubble Tea timer UI.
type Model struct {
	run  *run.Run
	tm   *timer.Timer
	lay  *layout.Layout
	jrn  *journal.Store
	cfg  config.Settings
	mono clock.MonotonicClock

	vp    viewport.Model
	ready bool

	width, height int
	quitting      bool
}

// NewModel constructs a timer TUI model over r, driven by a fresh
// Timer backed by clk. jrn may be nil, in which case finished attempts
// are not persisted.
func NewModel(r *run.Run, clk clock.RealClock, jrn *journal.Store, cfg config.Settings) *Model {
	tm := timer.New(r, clk, clk)
	lay := layout.New(
		layout.TitleComponent{},
		layout.TimerComponent{},
		layout.KeyValueComponent{Kind: layout.KeyValuePreviousSegment, Key: "Previous Segment", Comparison: cfg.Comparison},
		layout.KeyValueComponent{Kind: layout.KeyValuePossibleTimeSave, Key: "Possible Time Save", Comparison: cfg.Comparison},
		layout.KeyValueComponent{Kind: layout.KeyValueSumOfBest, Key: "Sum of Best Segments"},
		layout.KeyValueComponent{Kind: layout.KeyValueCurrentPace, Key: "Current Pace", Comparison: cfg.Comparison},
		&layout.SplitsComponent{
			VisibleCount:          cfg.VisibleCount,
			AlwaysShowLastSegment: cfg.AlwaysShowLastSegment,
			UpcomingSegments:      cfg.UpcomingSegments,
			ShowThinSeparators:    cfg.ShowThinSeparators,
			ColumnLabels:          []string{"Time", "Delta"},
			Columns: []layout.ColumnConfig{
				{StartWith: layout.StartComparisonTime, UpdateWith: layout.UpdateSplitTime, UpdateTrigger: layout.OnStartingSegment, Comparison: cfg.Comparison},
				{StartWith: layout.StartEmpty, UpdateWith: layout.UpdateDeltaWithFallback, UpdateTrigger: layout.OnStartingSegment, Comparison: cfg.Comparison},
			},
		},
		layout.GraphComponent{Comparison: cfg.Comparison, Height: 8},
	)
	return &Model{run: r, tm: tm, lay: lay, jrn: jrn, cfg: cfg, mono: clk}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height)
			m.ready = true
		} else {
			m.vp.Width, m.vp.Height = msg.Width, msg.Height
		}
		return m, nil
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case " ", "enter":
		m.tm.Split()
	case "s":
		m.tm.Skip()
	case "backspace", "u":
		m.tm.Undo()
	case "p":
		m.tm.TogglePause()
	case "g":
		m.tm.PauseGameTime()
	case "G":
		m.tm.ResumeGameTime()
	case "r":
		m.finishAndReset(true)
	case "R":
		m.finishAndReset(false)
	case "up":
		if sc, ok := splitsComponent(m.lay); ok {
			sc.ScrollUp()
		}
	case "down":
		if sc, ok := splitsComponent(m.lay); ok {
			sc.ScrollDown(len(m.run.Segments))
		}
	case "pgup", "pgdown", "home", "end":
		if m.ready {
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) finishAndReset(save bool) {
	wasEnded := m.tm.Phase() == timer.Ended
	m.tm.Reset(save)
	if save && wasEnded && m.jrn != nil && len(m.run.AttemptHistory) > 0 {
		last := m.run.AttemptHistory[len(m.run.AttemptHistory)-1]
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := m.jrn.RecordAttempt(ctx, m.run.GameName, m.run.CategoryName, last); err != nil {
			telemetry.Errf("failed to journal attempt: %v\n", err)
		}
	}
}

func splitsComponent(l *layout.Layout) (*layout.SplitsComponent, bool) {
	for _, c := range l.Components() {
		if sc, ok := c.(*layout.SplitsComponent); ok {
			return sc, true
		}
	}
	return nil, false
}

// View implements tea.Model.
func (m *Model) View() string {
	ctx := &layout.Context{
		Timer:    m.tm,
		Run:      m.run,
		Snapshot: snapshot.Capture(m.tm, m.mono),
		Accuracy: m.cfg.Accuracy,
		Digits:   m.cfg.Digits,
		Method:   m.cfg.Method,
	}
	states := m.lay.Update(ctx)

	var b strings.Builder
	for _, s := range states {
		if line := renderState(s); line != "" {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	body := b.String()
	if m.width > 0 {
		body = lipgloss.NewStyle().Width(m.width).Render(body)
	}
	if !m.ready {
		return body
	}
	// The viewport clips and scrolls the rendered body when it grows
	// taller than the terminal — the splits list is unbounded by the
	// component itself, only by VisibleCount, so long run configs with
	// a small terminal still need somewhere for the overflow to go.
	m.vp.SetContent(body)
	return m.vp.View()
}

func renderState(s layout.ComponentState) string {
	switch st := s.(type) {
	case *layout.TitleState:
		return strings.Join(st.Line1, " ") + " — " + strings.Join(st.Line2, " ") +
			fmt.Sprintf("  (%d/%d)", valueOr(st.FinishedRuns), valueOr(st.Attempts))
	case *layout.TimerState:
		return colorStyle(st.SemanticColor).Render(st.Time + st.Fraction)
	case *layout.KeyValueState:
		return fmt.Sprintf("%-20s %s", st.Key, colorStyle(st.SemanticColor).Render(st.Value))
	case *layout.SplitsState:
		return renderSplits(st)
	case *layout.GraphState:
		return renderGraph(st)
	default:
		return ""
	}
}

func valueOr(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

const nameColumnWidth = 16

func renderSplits(st *layout.SplitsState) string {
	var b strings.Builder
	for _, row := range st.Splits {
		marker := "  "
		if row.IsCurrentSplit {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(padDisplayWidth(row.Name, nameColumnWidth))
		for _, col := range row.Columns {
			b.WriteString("  ")
			b.WriteString(colorStyle(col.SemanticColor).Render(fmt.Sprintf("%10s", col.Value)))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// padDisplayWidth right-pads s to width terminal columns, measuring with
// runewidth so segment names containing wide (e.g. CJK) or zero-width
// characters still line up with the Time/Delta columns next to them.
func padDisplayWidth(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func renderGraph(st *layout.GraphState) string {
	if len(st.Points) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Graph: ")
	for _, p := range st.Points {
		row := int(p.Y * float64(st.Height-1))
		style := lipgloss.NewStyle()
		if p.IsBestSegment {
			style = colorStyle(snapshot.BestSegment)
		}
		b.WriteString(style.Render(sparkChar(row, st.Height)))
	}
	return b.String()
}

func sparkChar(row, height int) string {
	glyphs := []rune(" .:-=+*#%@")
	if height <= 1 {
		return string(glyphs[len(glyphs)-1])
	}
	idx := row * (len(glyphs) - 1) / (height - 1)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(glyphs) {
		idx = len(glyphs) - 1
	}
	return string(glyphs[idx])
}

func colorStyle(c layout.SemanticColor) lipgloss.Style {
	hex, ok := colorHex[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

var colorHex = map[layout.SemanticColor]string{
	snapshot.AheadGainingTime: "#2ECC71",
	snapshot.AheadLosingTime:  "#A9DFBF",
	snapshot.BehindLosingTime: "#E74C3C",
	snapshot.BehindGainingTime: "#F1948A",
	snapshot.BestSegment:      "#C89A3A",
	snapshot.NotRunningColor:  "#8C8C8C",
	snapshot.PausedColor:      "#6E6E6E",
	snapshot.PersonalBest:     "#3498DB",
}
