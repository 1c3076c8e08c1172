package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/rudram/trivl/internal/quiz"
	"github.com/rudram/trivl/internal/ui/theme"
)

var answerLabels = []string{"A", "B", "C", "D", "E", "F"}

// AnswerList renders the options of the current question and tracks the
// cursor. Once an answer is locked it stops reacting to navigation and
// highlights the correct option (green) and a wrong choice (red) — the
// lock state comes from the session, never from the component itself.
type AnswerList struct {
	Answers      []string
	Selected     int
	Locked       bool
	ChosenIndex  int
	CorrectIndex int
}

// NewAnswerList builds an answer list for one question.
func NewAnswerList(q quiz.Question) AnswerList {
	answers := make([]string, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = a.Text
	}
	return AnswerList{
		Answers:      answers,
		Selected:     0,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Lock freezes the list with the outcome of a selection.
func (l *AnswerList) Lock(res quiz.SelectionResult) {
	l.Locked = true
	l.ChosenIndex = res.ChosenIndex
	l.CorrectIndex = res.CorrectIndex
}

// Update handles cursor navigation. Locked lists ignore input.
func (l AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	if l.Locked {
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Answers)-1 {
			l.Selected++
		}
	}

	return l, nil
}

// View renders the options with labels.
func (l AnswerList) View() string {
	var s string
	for i, text := range l.Answers {
		label := "?"
		if i < len(answerLabels) {
			label = answerLabels[i]
		}

		prefix := "  "
		if i == l.Selected && !l.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, text)

		switch {
		case l.Locked && i == l.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case l.Locked && i == l.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case l.Locked:
			s += theme.Locked.Render(line) + "\n"
		case i == l.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
