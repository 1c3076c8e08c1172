package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput wraps bubbles/textinput restricted to digits, used for the
// question-count field on the setup screen.
type NumberInput struct {
	Model textinput.Model
}

// NewNumberInput creates a digit-only input with a placeholder.
func NewNumberInput(placeholder string, maxDigits int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	return NumberInput{Model: ti}
}

// Init returns the initial command.
func (n NumberInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages, dropping non-digit keystrokes.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NumberInput) View() string {
	return n.Model.View()
}

// Value returns the current input as an integer; ok is false while the
// field is empty or unparsable.
func (n NumberInput) Value() (int, bool) {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil {
		return 0, false
	}
	return v, true
}

// SetValue replaces the field contents.
func (n *NumberInput) SetValue(v int) {
	n.Model.SetValue(strconv.Itoa(v))
}
