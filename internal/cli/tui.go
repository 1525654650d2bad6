package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/layout"
	"github.com/matzehuels/windowgram/pkg/render"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// View styles
var (
	viewLabelStyle = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	viewValueStyle = lipgloss.NewStyle().Foreground(colorWhite)
	viewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	viewTypeStyle  = map[layout.Type]lipgloss.Style{
		layout.TypeSplit:   lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		layout.TypeTiled:   lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
		layout.TypeLayered: lipgloss.NewStyle().Foreground(colorRed).Bold(true),
	}
)

// =============================================================================
// Key bindings
// =============================================================================

type viewKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Plan key.Binding
	Quit key.Binding
}

func defaultViewKeys() viewKeyMap {
	return viewKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "down", "l", "j"),
			key.WithHelp("tab/→", "next pane"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "up", "h", "k"),
			key.WithHelp("shift+tab/←", "previous"),
		),
		Plan: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "split plan"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k viewKeyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Next, k.Prev, k.Plan, k.Quit} {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// =============================================================================
// ViewModel - Interactive pane browser
// =============================================================================

// ViewModel is the bubbletea model behind `windowgram view`. It cycles a
// highlight through the panes in scan order and shows each pane's box and,
// for split layouts, where the plan places it.
type ViewModel struct {
	Windowgram *windowgram.Windowgram
	Panes      []windowgram.Pane
	Analysis   layout.Analysis
	Cursor     int
	ShowPlan   bool

	keys viewKeyMap
}

// NewViewModel creates a view model for w and its analysis.
func NewViewModel(w *windowgram.Windowgram, a layout.Analysis) ViewModel {
	keys := defaultViewKeys()
	keys.Plan.SetEnabled(a.Plan != nil && len(a.Plan.Splits) > 0)
	return ViewModel{
		Windowgram: w,
		Panes:      w.SortedPanes(),
		Analysis:   a,
		keys:       keys,
	}
}

func (m ViewModel) Init() tea.Cmd {
	return nil
}

func (m ViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Panes) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Next):
		m.Cursor = (m.Cursor + 1) % len(m.Panes)
	case key.Matches(keyMsg, m.keys.Prev):
		m.Cursor = (m.Cursor + len(m.Panes) - 1) % len(m.Panes)
	case key.Matches(keyMsg, m.keys.Plan):
		m.ShowPlan = !m.ShowPlan
	}
	return m, nil
}

// Selected returns the highlighted pane.
func (m ViewModel) Selected() windowgram.Pane {
	return m.Panes[m.Cursor]
}

func (m ViewModel) View() string {
	var b strings.Builder

	typeStyle, ok := viewTypeStyle[m.Analysis.Type]
	if !ok {
		typeStyle = StyleWarning
	}
	b.WriteString(StyleTitle.Render("Windowgram"))
	b.WriteString(" " + typeStyle.Render(string(m.Analysis.Type)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %dx%d, %d panes", m.Windowgram.Width(), m.Windowgram.Height(), len(m.Panes))))
	b.WriteString("\n\n")

	p := m.Selected()
	b.WriteString(render.Windowgram(m.Windowgram, render.Options{Highlight: string(p.ID)}))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(viewLabelStyle.Render(label) + viewValueStyle.Render(value) + "\n")
	}
	row("Pane", fmt.Sprintf("%c  [%d/%d]", p.ID, m.Cursor+1, len(m.Panes)))
	row("Box", p.Rect.String())
	if m.Analysis.Plan != nil {
		if a, ok := m.Analysis.Plan.Assignment(p.ID); ok {
			row("Link", fmt.Sprintf("%d (index %d)", a.LinkID, a.Index))
			row("Canvas", a.Canvas.String())
		}
	}
	if m.Analysis.Err != nil {
		row("Problem", errors.UserMessage(m.Analysis.Err))
	}

	if m.ShowPlan && m.Analysis.Plan != nil {
		b.WriteString("\n")
		b.WriteString(render.SplitTable(m.Analysis.Plan))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(viewHelpStyle.Render(m.keys.help()))
	return b.String()
}
