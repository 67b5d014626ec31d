package setup

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/deltabase/internal/fetch"
	"github.com/abhisek/deltabase/internal/picker"
)

func TestDifficultiesFor(t *testing.T) {
	tests := []struct {
		subject  string
		advanced string
	}{
		{"physics", "jee"},
		{"chemistry", "jee"},
		{"mathematics", "jee"},
		{"biology", "neet"},
		{"Biology", "neet"},
	}
	for _, tt := range tests {
		got := difficultiesFor(tt.subject)
		if len(got) != 5 {
			t.Fatalf("%s: expected 5 difficulties, got %v", tt.subject, got)
		}
		if got[3] != tt.advanced {
			t.Errorf("%s: advanced tier = %q, want %q", tt.subject, got[3], tt.advanced)
		}
		if got[4] != picker.MixedMode {
			t.Errorf("%s: last entry should be mixed, got %q", tt.subject, got[4])
		}
	}
}

func TestNew_ChapterFlagSkipsList(t *testing.T) {
	s := New(nil, nil, "physics", Defaults{Chapter: "Kinematics"})
	if s.step != stepDifficulty {
		t.Errorf("step = %d, want stepDifficulty", s.step)
	}
	if s.chapterSlug != "kinematics" {
		t.Errorf("chapterSlug = %q", s.chapterSlug)
	}
	if s.Init() != nil {
		t.Error("preselected chapter should not trigger an index fetch")
	}
}

func TestChaptersMsg_PopulatesMenu(t *testing.T) {
	s := New(nil, nil, "physics", Defaults{})

	updated, _ := s.Update(chaptersMsg{Chapters: []fetch.Chapter{
		{Slug: "kinematics", Title: "Kinematics", Icon: "🚀"},
		{Slug: "optics", Title: "Ray Optics", Icon: "🔭"},
	}})
	s = updated.(*Screen)

	if s.loading {
		t.Error("loading should clear once chapters arrive")
	}
	if len(s.chapterMenu.Items) != 2 {
		t.Fatalf("menu items = %d, want 2", len(s.chapterMenu.Items))
	}

	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*Screen)
	if s.chapterSlug != "kinematics" || s.step != stepDifficulty {
		t.Errorf("enter should pick the highlighted chapter, got slug=%q step=%d", s.chapterSlug, s.step)
	}
}

func TestStartQuiz_RejectsBadCount(t *testing.T) {
	s := New(nil, nil, "physics", Defaults{Chapter: "kinematics", Count: 99})

	// difficulty menu defaults to the first tier; jump to the final step
	s.step = stepMinutes
	updated, cmd := s.advanceStep()
	s = updated.(*Screen)

	if cmd != nil {
		t.Error("invalid count should not start the quiz")
	}
	if s.step != stepCount {
		t.Errorf("step = %d, want stepCount for correction", s.step)
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestFailureText(t *testing.T) {
	if got := failureText(&picker.ErrEmptyPool{Difficulty: "hard"}); got != "No valid questions found for this chapter." {
		t.Errorf("empty pool text = %q", got)
	}
	if got := failureText(&picker.ErrInvalidRequest{Count: 99, Max: 20}); got == "" {
		t.Error("expected invalid request text")
	}
}
