package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rudram/trivl/internal/config"
	"github.com/rudram/trivl/internal/opentdb"
	"github.com/rudram/trivl/internal/router"
	"github.com/rudram/trivl/internal/screen"
	"github.com/rudram/trivl/internal/ui/components"
	"github.com/rudram/trivl/internal/ui/layout"
	"github.com/rudram/trivl/internal/ui/theme"
)

const (
	fieldAmount = iota
	fieldCategory
	fieldDifficulty
	fieldCount
)

// difficulty cycle; the empty value means no filter.
var difficulties = []opentdb.Difficulty{
	"",
	opentdb.DifficultyEasy,
	opentdb.DifficultyMedium,
	opentdb.DifficultyHard,
}

// SetupScreen edits the round settings in place. Enter saves back into
// the shared request and returns to the menu; Esc discards.
type SetupScreen struct {
	req *opentdb.BatchRequest

	amount    components.NumberInput
	catIndex  int
	diffIndex int
	focus     int
	errMsg    string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen bound to the given request.
func New(req *opentdb.BatchRequest) *SetupScreen {
	amount := components.NewNumberInput("10", 2)
	amount.SetValue(req.Amount)

	catIndex := 0
	for i, c := range categoryOptions() {
		if c.ID == req.Category {
			catIndex = i
			break
		}
	}

	diffIndex := 0
	for i, d := range difficulties {
		if d == req.Difficulty {
			diffIndex = i
			break
		}
	}

	return &SetupScreen{
		req:       req,
		amount:    amount,
		catIndex:  catIndex,
		diffIndex: diffIndex,
	}
}

func categoryOptions() []opentdb.Category {
	opts := make([]opentdb.Category, 0, len(opentdb.Categories)+1)
	opts = append(opts, opentdb.Category{ID: 0, Name: "Any Category"})
	opts = append(opts, opentdb.Categories...)
	return opts
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.amount.Init()
}

func (s *SetupScreen) Title() string {
	return "Round Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Field"},
		{Key: "←/→", Description: "Change"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "shift+tab":
		s.focus = (s.focus + fieldCount - 1) % fieldCount
		return s, nil
	case "down", "tab":
		s.focus = (s.focus + 1) % fieldCount
		return s, nil
	case "left":
		s.cycle(-1)
		return s, nil
	case "right":
		s.cycle(1)
		return s, nil
	case "enter":
		return s.save()
	}

	if s.focus == fieldAmount {
		var cmd tea.Cmd
		s.amount, cmd = s.amount.Update(msg)
		s.errMsg = ""
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) cycle(delta int) {
	switch s.focus {
	case fieldCategory:
		n := len(categoryOptions())
		s.catIndex = (s.catIndex + delta + n) % n
	case fieldDifficulty:
		n := len(difficulties)
		s.diffIndex = (s.diffIndex + delta + n) % n
	}
}

func (s *SetupScreen) save() (screen.Screen, tea.Cmd) {
	amount, ok := s.amount.Value()
	if !ok || amount < 1 || amount > config.MaxAmount {
		s.errMsg = fmt.Sprintf("Questions must be between 1 and %d.", config.MaxAmount)
		return s, nil
	}

	s.req.Amount = amount
	s.req.Category = categoryOptions()[s.catIndex].ID
	s.req.Difficulty = difficulties[s.diffIndex]

	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Round Setup"))
	b.WriteString("\n\n")

	diffLabel := string(difficulties[s.diffIndex])
	if diffLabel == "" {
		diffLabel = "any"
	}

	rows := []string{
		s.renderField(fieldAmount, "Questions", s.amount.View()),
		s.renderField(fieldCategory, "Category", "◂ "+categoryOptions()[s.catIndex].Name+" ▸"),
		s.renderField(fieldDifficulty, "Difficulty", "◂ "+diffLabel+" ▸"),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n\n")))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SetupScreen) renderField(id int, label, value string) string {
	labelStyle := theme.Unselected
	cursor := "  "
	if s.focus == id {
		labelStyle = theme.Selected
		cursor = "▸ "
	}
	return fmt.Sprintf("%s%s  %s", cursor, labelStyle.Render(fmt.Sprintf("%-12s", label)), value)
}
