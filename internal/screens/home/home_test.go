package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/rudram/trivl/internal/opentdb"
	"github.com/rudram/trivl/internal/router"
	"github.com/rudram/trivl/internal/screens/play"
	"github.com/rudram/trivl/internal/screens/setup"
)

func testHome() *HomeScreen {
	client := opentdb.NewClient("http://example.invalid")
	req := opentdb.BatchRequest{Amount: 10, Category: 9, Difficulty: opentdb.DifficultyEasy}
	return New(client, req, zap.NewNop())
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func down() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyDown}
}

func TestHomeScreen_StartQuiz(t *testing.T) {
	h := testHome()

	_, cmd := h.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command from START QUIZ")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*play.PlayScreen); !ok {
		t.Fatalf("expected play screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_RoundSetup(t *testing.T) {
	h := testHome()

	h.Update(down())
	_, cmd := h.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command from ROUND SETUP")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*setup.SetupScreen); !ok {
		t.Fatalf("expected setup screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_ViewShowsSettings(t *testing.T) {
	h := testHome()

	view := h.View(80, 24)
	if !strings.Contains(view, "General Knowledge") {
		t.Errorf("view missing category name:\n%s", view)
	}
	if !strings.Contains(view, "10 questions") {
		t.Errorf("view missing amount:\n%s", view)
	}
}
