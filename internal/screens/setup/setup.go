// Package setup is the pre-quiz flow: pick a chapter, a difficulty, a
// question count, and an optional countdown, then build the session.
package setup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/deltabase/internal/bank"
	"github.com/abhisek/deltabase/internal/fetch"
	"github.com/abhisek/deltabase/internal/picker"
	"github.com/abhisek/deltabase/internal/profile"
	"github.com/abhisek/deltabase/internal/quiz"
	"github.com/abhisek/deltabase/internal/screen"
	sessscreen "github.com/abhisek/deltabase/internal/screens/session"
	"github.com/abhisek/deltabase/internal/ui/components"
	"github.com/abhisek/deltabase/internal/ui/layout"
	"github.com/abhisek/deltabase/internal/ui/theme"
)

type step int

const (
	stepChapter step = iota
	stepDifficulty
	stepCount
	stepMinutes
)

// Defaults seeds the setup prompts from command-line flags.
type Defaults struct {
	Chapter    string
	Difficulty string
	Count      int
	Minutes    int
}

// Screen walks the user through quiz settings and starts the session.
type Screen struct {
	cache   *fetch.Cache
	kv      profile.KV
	subject string
	def     Defaults

	step     step
	loading  bool
	starting bool
	errMsg   string

	chapters     []fetch.Chapter
	chapterMenu  components.Menu
	diffMenu     components.Menu
	difficulties []string
	countInput   components.TextInput
	minutesInput components.TextInput

	chapterSlug  string
	chapterTitle string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the setup screen. When defaults preselect a chapter the
// chapter list step is skipped entirely.
func New(cache *fetch.Cache, kv profile.KV, subject string, def Defaults) *Screen {
	s := &Screen{
		cache:        cache,
		kv:           kv,
		subject:      strings.ToLower(subject),
		def:          def,
		difficulties: difficultiesFor(subject),
		countInput:   components.NewTextInput("10", true, 2),
		minutesInput: components.NewTextInput("0", true, 3),
	}
	if def.Count > 0 {
		s.countInput.Model.SetValue(strconv.Itoa(def.Count))
	}
	if def.Minutes > 0 {
		s.minutesInput.Model.SetValue(strconv.Itoa(def.Minutes))
	}
	s.diffMenu = components.NewMenu(s.difficulties)
	for i, d := range s.difficulties {
		if strings.EqualFold(d, def.Difficulty) {
			s.diffMenu.Selected = i
		}
	}

	if def.Chapter != "" {
		s.chapterSlug = strings.ToLower(def.Chapter)
		s.chapterTitle = titleCase(def.Chapter)
		s.step = stepDifficulty
	} else {
		s.loading = true
	}
	return s
}

// difficultiesFor mirrors the subject menus: biology gets the NEET tier,
// everything else JEE.
func difficultiesFor(subject string) []string {
	advanced := string(bank.TierJEE)
	if strings.ToLower(subject) == "biology" {
		advanced = string(bank.TierNEET)
	}
	return []string{
		string(bank.TierNormal),
		string(bank.TierModerate),
		string(bank.TierHard),
		advanced,
		picker.MixedMode,
	}
}

func titleCase(s string) string {
	if s == "" {
		return "Quiz"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *Screen) Init() tea.Cmd {
	if s.step != stepChapter {
		return nil
	}
	return s.loadChapters()
}

func (s *Screen) Title() string {
	return titleCase(s.subject) + " Chapters"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Next"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

type chaptersMsg struct {
	Chapters []fetch.Chapter
	Err      error
}

type quizReadyMsg struct {
	Session *quiz.Session
	Title   string
}

type quizFailedMsg struct {
	Err error
}

func (s *Screen) loadChapters() tea.Cmd {
	return func() tea.Msg {
		v, err := s.cache.Load(context.Background(), s.subject, "index", fetch.IndexPath(s.subject))
		if err != nil {
			return chaptersMsg{Err: err}
		}
		return chaptersMsg{Chapters: fetch.ParseChapters(v)}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case chaptersMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = "Could not load chapters for " + s.subject + "."
			return s, nil
		}
		if len(msg.Chapters) == 0 {
			s.errMsg = "No chapters found for " + s.subject + "."
			return s, nil
		}
		s.chapters = msg.Chapters
		labels := make([]string, len(msg.Chapters))
		for i, ch := range msg.Chapters {
			labels[i] = ch.Icon + " " + ch.Title
		}
		s.chapterMenu = components.NewMenu(labels)
		return s, nil

	case quizReadyMsg:
		return s, screen.Switch(sessscreen.New(s.kv, msg.Session, msg.Title))

	case quizFailedMsg:
		s.starting = false
		s.errMsg = failureText(msg.Err)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, s.forward(msg)
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading || s.starting {
		return s, nil
	}

	if msg.String() == "enter" {
		return s.advanceStep()
	}
	return s, s.forward(msg)
}

// forward routes a message to the active step's component.
func (s *Screen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.step {
	case stepChapter:
		s.chapterMenu, cmd = s.chapterMenu.Update(msg)
	case stepDifficulty:
		s.diffMenu, cmd = s.diffMenu.Update(msg)
	case stepCount:
		s.countInput, cmd = s.countInput.Update(msg)
	case stepMinutes:
		s.minutesInput, cmd = s.minutesInput.Update(msg)
	}
	return cmd
}

func (s *Screen) advanceStep() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	switch s.step {
	case stepChapter:
		if len(s.chapters) == 0 {
			return s, nil
		}
		ch := s.chapters[s.chapterMenu.Selected]
		s.chapterSlug = ch.Slug
		s.chapterTitle = ch.Title
		s.step = stepDifficulty
	case stepDifficulty:
		s.step = stepCount
	case stepCount:
		s.step = stepMinutes
		return s, s.minutesInput.Init()
	case stepMinutes:
		return s.startQuiz()
	}
	return s, nil
}

func (s *Screen) startQuiz() (screen.Screen, tea.Cmd) {
	difficulty := s.diffMenu.Value()
	count := s.countInput.NumericValue(10)
	minutes := s.minutesInput.NumericValue(0)

	if err := picker.ValidateCount(difficulty, count); err != nil {
		s.errMsg = failureText(err)
		s.step = stepCount
		return s, nil
	}

	s.starting = true
	subject, slug, title := s.subject, s.chapterSlug, s.chapterTitle
	return s, func() tea.Msg {
		v, err := s.cache.Load(context.Background(), subject, slug, fetch.DatasetPath(subject, slug))
		if err != nil {
			return quizFailedMsg{Err: err}
		}
		questions, err := picker.New(nil).Pick(bank.Normalize(v), difficulty, count)
		if err != nil {
			return quizFailedMsg{Err: err}
		}
		return quizReadyMsg{
			Session: quiz.New(subject, questions, minutes),
			Title:   title,
		}
	}
}

// failureText maps pipeline errors to the player-facing message.
func failureText(err error) string {
	switch err.(type) {
	case *picker.ErrInvalidRequest:
		return "Please enter a valid number of questions: " + err.Error()
	case *picker.ErrEmptyPool:
		return "No valid questions found for this chapter."
	default:
		return "Could not load quiz data. " + err.Error()
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
		b.WriteString("\n\n")
	}

	if s.loading {
		b.WriteString(theme.Subtitle.Width(width).Render("Loading chapters..."))
		return b.String()
	}
	if s.starting {
		b.WriteString(theme.Subtitle.Width(width).Render("Preparing quiz..."))
		return b.String()
	}

	label := func(text string) string {
		return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(text) + "\n\n"
	}

	switch s.step {
	case stepChapter:
		b.WriteString(label("Pick a chapter"))
		b.WriteString(s.chapterMenu.View())
	case stepDifficulty:
		b.WriteString(label(fmt.Sprintf("%s — difficulty", s.chapterTitle)))
		b.WriteString(s.diffMenu.View())
	case stepCount:
		max := picker.MaxSingleCount
		if s.diffMenu.Value() == picker.MixedMode {
			max = picker.MaxMixedCount
		}
		b.WriteString(label(fmt.Sprintf("How many questions? (1-%d)", max)))
		b.WriteString(s.countInput.View())
	case stepMinutes:
		b.WriteString(label("Minutes on the clock? (0 = no timer)"))
		b.WriteString(s.minutesInput.View())
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}
