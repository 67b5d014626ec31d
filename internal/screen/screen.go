package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/deltabase/internal/quiz"
	"github.com/abhisek/deltabase/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that put text in
// the header's right slot (the session screen's countdown).
type StatusProvider interface {
	Status() string
}

// SwitchMsg asks the app model to replace the active screen.
type SwitchMsg struct {
	To Screen
}

// Switch builds a command that switches to the given screen.
func Switch(to Screen) tea.Cmd {
	return func() tea.Msg { return SwitchMsg{To: to} }
}

// RetryMsg asks the app to restart the same question set. The app wires
// the session back into a fresh session screen; the results and summary
// screens never import each other.
type RetryMsg struct {
	Session *quiz.Session
	Title   string
}

// NewQuizMsg asks the app to return to the setup flow.
type NewQuizMsg struct{}
