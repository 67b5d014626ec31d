// Package app wires the quiz flow into a Bubble Tea program: setup,
// session, and results screens swapped in a single linear flow.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/deltabase/internal/fetch"
	"github.com/abhisek/deltabase/internal/profile"
	"github.com/abhisek/deltabase/internal/screen"
	sessscreen "github.com/abhisek/deltabase/internal/screens/session"
	"github.com/abhisek/deltabase/internal/screens/setup"
	"github.com/abhisek/deltabase/internal/ui/layout"
)

// Options configures one run of the quiz TUI.
type Options struct {
	KV      profile.KV
	Cache   *fetch.Cache
	Subject string

	// Setup defaults taken from flags; zero values fall back to the
	// interactive prompts.
	Chapter    string
	Difficulty string
	Count      int
	Minutes    int
}

// AppModel is the root Bubble Tea model. It owns the frame (header,
// footer, min-size guard) and the single active screen.
type AppModel struct {
	opts   Options
	active screen.Screen
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		opts:   opts,
		active: newSetup(opts),
	}
}

func newSetup(opts Options) screen.Screen {
	return setup.New(opts.Cache, opts.KV, opts.Subject, setup.Defaults{
		Chapter:    opts.Chapter,
		Difficulty: opts.Difficulty,
		Count:      opts.Count,
		Minutes:    opts.Minutes,
	})
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SwitchMsg:
		m.active = msg.To
		return m, m.active.Init()

	case screen.RetryMsg:
		msg.Session.Retry()
		m.active = sessscreen.New(m.opts.KV, msg.Session, msg.Title)
		return m, m.active.Init()

	case screen.NewQuizMsg:
		// drop the chapter preselection so the list shows again
		opts := m.opts
		opts.Chapter = ""
		m.active = newSetup(opts)
		return m, m.active.Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	status := ""
	if sp, ok := m.active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(m.active.Title(), status, m.width)

	hints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := m.active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.active.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
