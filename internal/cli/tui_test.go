package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/windowgram/pkg/layout"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

func newTestViewModel(t *testing.T, text string) ViewModel {
	t.Helper()
	w := windowgram.MustParse(text)
	return NewViewModel(w, layout.AnalyzeWindowgram(w, nil))
}

func press(m ViewModel, msg tea.KeyMsg) (ViewModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(ViewModel), cmd
}

func TestViewModelCursorWraps(t *testing.T) {
	m := newTestViewModel(t, "112\n332\n")

	if got := m.Selected().ID; got != '1' {
		t.Fatalf("initial selection = %c, want 1", got)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.Selected().ID; got != '3' {
		t.Errorf("shift+tab from first = %c, want 3", got)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Selected().ID; got != '1' {
		t.Errorf("tab from last = %c, want 1", got)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	if got := m.Selected().ID; got != '2' {
		t.Errorf("l = %c, want 2", got)
	}
}

func TestViewModelPlanToggle(t *testing.T) {
	m := newTestViewModel(t, "12\n")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if !m.ShowPlan {
		t.Error("p should show the plan")
	}
	if !strings.Contains(m.View(), "Percent") {
		t.Errorf("plan table missing from view:\n%s", m.View())
	}

	single := newTestViewModel(t, "1\n")
	single, _ = press(single, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if single.ShowPlan {
		t.Error("p should be disabled without splits")
	}
}

func TestViewModelQuit(t *testing.T) {
	m := newTestViewModel(t, "12\n")
	if _, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("q should return a quit command")
	}
	if _, cmd := press(m, tea.KeyMsg{Type: tea.KeyTab}); cmd != nil {
		t.Error("tab should not return a command")
	}
}

func TestViewModelView(t *testing.T) {
	m := newTestViewModel(t, "12\n21\n")
	view := m.View()
	for _, want := range []string{"layered", "Pane", "Box", "Problem"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
