package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/deltabase/internal/ui/theme"
)

// optionLabels letters the options A, B, C, ... in render order.
var optionLabels = "ABCDEFGHIJ"

// MultiChoice renders a question's options with a movable cursor. The
// component only tracks the highlight; confirming and revealing the
// outcome is the owner's job via Reveal.
type MultiChoice struct {
	Statement string
	Options   []string

	Selected int

	// Set by Reveal once the answer is locked in.
	Revealed     bool
	ChosenIndex  int
	CorrectIndex int
}

// NewMultiChoice creates a multi-choice component for one question.
func NewMultiChoice(statement string, options []string) MultiChoice {
	return MultiChoice{
		Statement:    statement,
		Options:      options,
		Selected:     0,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Update moves the highlight. Ignored once revealed.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// Reveal locks the component and colors the chosen and correct options.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.Revealed = true
	m.ChosenIndex = chosen
	m.CorrectIndex = correct
}

// View renders the statement and the option list.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Statement) + "\n\n"

	for i, opt := range m.Options {
		label := "?"
		if i < len(optionLabels) {
			label = string(optionLabels[i])
		}
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case m.Revealed && i == m.ChosenIndex:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		s += style.Render(line) + "\n"
	}

	return s
}
