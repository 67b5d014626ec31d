// Package session is the in-quiz screen: one question at a time with
// confirm-then-reveal feedback and the optional countdown in the header.
package session

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/deltabase/internal/profile"
	"github.com/abhisek/deltabase/internal/quiz"
	"github.com/abhisek/deltabase/internal/screen"
	"github.com/abhisek/deltabase/internal/screens/summary"
	"github.com/abhisek/deltabase/internal/ui/components"
	"github.com/abhisek/deltabase/internal/ui/layout"
	"github.com/abhisek/deltabase/internal/ui/theme"
)

// timerTickMsg fires once a second while the countdown runs.
type timerTickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// Screen plays a quiz session to completion, then records the result in
// the profile and hands off to the summary screen.
type Screen struct {
	kv    profile.KV
	sess  *quiz.Session
	title string

	mc       components.MultiChoice
	feedback bool
	last     quiz.Result
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

func New(kv profile.KV, sess *quiz.Session, title string) *Screen {
	s := &Screen{kv: kv, sess: sess, title: title}
	s.loadCurrent()
	return s
}

func (s *Screen) loadCurrent() {
	q := s.sess.CurrentQuestion()
	if q == nil {
		return
	}
	s.mc = components.NewMultiChoice(q.Statement, q.Options)
	s.feedback = false
}

func (s *Screen) Init() tea.Cmd {
	if s.sess.Timed() {
		return tickCmd()
	}
	return nil
}

func (s *Screen) Title() string { return s.title }

// Status feeds the header's right slot with the countdown.
func (s *Screen) Status() string {
	return layout.TimerText(s.sess.Remaining, s.sess.Timed())
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.feedback {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.sess.Completed() {
			return s, nil
		}
		if s.sess.TickSecond() {
			return s.finish(true)
		}
		return s, tickCmd()

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s.handleEnter()
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleEnter() (screen.Screen, tea.Cmd) {
	if s.feedback {
		s.sess.Advance()
		if s.sess.Completed() {
			return s.finish(false)
		}
		s.loadCurrent()
		return s, nil
	}

	s.sess.SelectOption(s.mc.Selected)
	res, ok := s.sess.Confirm()
	if !ok {
		return s, nil
	}
	s.last = res
	s.feedback = true
	s.mc.Reveal(s.mc.Selected, res.CorrectIndex)
	return s, nil
}

// finish folds the session's stats into the durable profile and switches
// to the results screen.
func (s *Screen) finish(timedOut bool) (screen.Screen, tea.Cmd) {
	stats := make(map[string]profile.Stat, len(s.sess.Stats))
	for cat, cs := range s.sess.Stats {
		stats[cat] = profile.Stat{Correct: cs.Correct, Total: cs.Total}
	}

	prof := profile.Load(s.kv)
	prof.Apply(s.sess.Subject, stats)
	profile.Save(s.kv, prof)

	return s, screen.Switch(summary.New(s.sess, prof, s.title, timedOut))
}

func (s *Screen) View(width, height int) string {
	q := s.sess.CurrentQuestion()
	if q == nil {
		return ""
	}

	total := len(s.sess.Questions)
	var b strings.Builder

	bar := components.ProgressBar{
		Label:   fmt.Sprintf("Question %d of %d", s.sess.Current+1, total),
		Percent: float64(s.sess.Current) / float64(total),
		Width:   min(width-8, 56),
	}
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(s.mc.View())

	if s.feedback {
		b.WriteString("\n")
		b.WriteString(s.feedbackView())
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (s *Screen) feedbackView() string {
	var b strings.Builder
	if s.last.Correct {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✨ Correct!"))
	} else {
		q := s.sess.CurrentQuestion()
		answer := ""
		if q != nil && s.last.CorrectIndex >= 0 && s.last.CorrectIndex < len(q.Options) {
			answer = q.Options[s.last.CorrectIndex]
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render("❌ Incorrect. Answer: " + answer))
	}

	if q := s.sess.CurrentQuestion(); q != nil && q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(q.Explanation))
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
