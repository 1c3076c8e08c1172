package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/rudram/trivl/internal/opentdb"
	"github.com/rudram/trivl/internal/router"
	"github.com/rudram/trivl/internal/screen"
	"github.com/rudram/trivl/internal/screens/play"
	"github.com/rudram/trivl/internal/screens/setup"
	"github.com/rudram/trivl/internal/ui/components"
	"github.com/rudram/trivl/internal/ui/layout"
	"github.com/rudram/trivl/internal/ui/theme"
)

var banner = []string{
	`╔╦╗╦═╗╦╦  ╦╦  `,
	` ║ ╠╦╝║╚╗╔╝║  `,
	` ╩ ╩╚═╩ ╚╝ ╩═╝`,
}

// HomeScreen is the main menu. It holds the round settings so the
// setup screen can tweak them in place before a quiz starts.
type HomeScreen struct {
	menu components.Menu
	req  *opentdb.BatchRequest
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. The request seeds the round settings and
// is shared with the setup screen.
func New(client *opentdb.Client, req opentdb.BatchRequest, log *zap.Logger) *HomeScreen {
	shared := &req

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(client, *shared, log)}
			}
		}},
		{Label: "ROUND SETUP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(shared)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		req:  shared,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q":
			return h, tea.Quit
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	for _, line := range banner {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render(line))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("A terminal trivia quiz"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(h.settingsLine()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) settingsLine() string {
	difficulty := string(h.req.Difficulty)
	if difficulty == "" {
		difficulty = "any"
	}
	return fmt.Sprintf("%d questions · %s · %s",
		h.req.Amount,
		opentdb.CategoryName(h.req.Category),
		difficulty)
}
