package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rudram/trivl/internal/router"
	"github.com/rudram/trivl/internal/screen"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                              { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                       { return "" }
func (stubScreen) Title() string                              { return "stub" }

func TestSummaryScreen_ReplayOnEnter(t *testing.T) {
	replayed := false
	s := New(3, 5, func() screen.Screen {
		replayed = true
		return stubScreen{}
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if !replayed {
		t.Error("expected the replay factory to run")
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(4, 5, nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "4 / 5") {
		t.Errorf("view missing score, got:\n%s", view)
	}
	if !strings.Contains(view, "80%") {
		t.Errorf("view missing accuracy, got:\n%s", view)
	}
}
