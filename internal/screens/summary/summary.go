package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rudram/trivl/internal/router"
	"github.com/rudram/trivl/internal/screen"
	"github.com/rudram/trivl/internal/ui/layout"
	"github.com/rudram/trivl/internal/ui/theme"
)

// SummaryScreen shows the final score of a round and offers a rematch.
// The replay factory builds a play screen that reuses the finished
// session, so a new round picks up with a fresh batch.
type SummaryScreen struct {
	score  int
	total  int
	replay func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a finished round.
func New(score, total int, replay func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{score: score, total: total, replay: replay}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "p":
			if s.replay != nil {
				next := s.replay()
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Round complete!"))
	b.WriteString("\n\n")

	scoreStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true)
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d / %d", s.score, s.total)))
	b.WriteString("\n\n")

	accuracy := 0.0
	if s.total > 0 {
		accuracy = float64(s.score) / float64(s.total)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Accuracy: %.0f%%", accuracy*100)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(verdictLine(accuracy)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter for a rematch, Esc for the menu."))

	return b.String()
}

func verdictLine(accuracy float64) string {
	switch {
	case accuracy >= 1:
		return "Flawless. The question bank fears you."
	case accuracy >= 0.8:
		return "Sharp! Pub quiz team captain material."
	case accuracy >= 0.5:
		return "Solid round. A rematch could tip the scales."
	default:
		return "Tough batch. Shuffle the deck and go again."
	}
}
