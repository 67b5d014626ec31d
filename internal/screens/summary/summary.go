// Package summary renders the post-quiz report: score, per-category
// accuracy, and the player's all-time totals.
package summary

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/deltabase/internal/profile"
	"github.com/abhisek/deltabase/internal/quiz"
	"github.com/abhisek/deltabase/internal/screen"
	"github.com/abhisek/deltabase/internal/ui/components"
	"github.com/abhisek/deltabase/internal/ui/layout"
	"github.com/abhisek/deltabase/internal/ui/theme"
)

// Screen shows the results of a finished session.
type Screen struct {
	sess     *quiz.Session
	prof     *profile.Profile
	title    string
	timedOut bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(sess *quiz.Session, prof *profile.Profile, title string, timedOut bool) *Screen {
	return &Screen{sess: sess, prof: prof, title: title, timedOut: timedOut}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return s.title + " — Results" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retry quiz"},
		{Key: "N", Description: "New quiz"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "r":
		return s, func() tea.Msg {
			return screen.RetryMsg{Session: s.sess, Title: s.title}
		}
	case "n":
		return s, func() tea.Msg { return screen.NewQuizMsg{} }
	case "q", "esc":
		return s, tea.Quit
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	sum := s.sess.Summarize()

	var b strings.Builder

	headline := "Quiz complete!"
	if s.timedOut {
		headline = "Time's up!"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(headline))
	b.WriteString("\n\n")

	pct := 0.0
	if sum.Total > 0 {
		pct = float64(sum.Correct) / float64(sum.Total)
	}
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if pct < 0.5 {
		scoreStyle = scoreStyle.Foreground(theme.Error)
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d / %d (%.0f%%)", sum.Correct, sum.Total, pct*100)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d correct, %d incorrect", sum.Correct, sum.Incorrect)))
	b.WriteString("\n\n")

	if len(s.sess.Stats) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("By category"))
		b.WriteString("\n")
		for _, cat := range sortedCategories(s.sess.Stats) {
			cs := s.sess.Stats[cat]
			ratio := 0.0
			if cs.Total > 0 {
				ratio = float64(cs.Correct) / float64(cs.Total)
			}
			bar := components.ProgressBar{
				Label:       fmt.Sprintf("%-12s %d/%d", cat, cs.Correct, cs.Total),
				Percent:     ratio,
				ShowPercent: true,
				Width:       min(width-8, 48),
			}
			b.WriteString(bar.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.prof != nil && s.prof.Overall.Total > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("All time"))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
			"%d of %d answered correctly (%d%%)",
			s.prof.Overall.Correct, s.prof.Overall.Total, s.prof.Overall.Accuracy)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func sortedCategories(stats map[string]*quiz.CategoryStats) []string {
	cats := make([]string, 0, len(stats))
	for cat := range stats {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
