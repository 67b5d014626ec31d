// Package quiz drives one quiz attempt question by question: pending
// selection, confirmation and grading, advancing, and the optional
// countdown.
package quiz

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/deltabase/internal/bank"
)

// Session is the state machine for a single quiz attempt. The question
// list is fixed once built; only the cursor, pending selection, stats,
// and countdown mutate.
type Session struct {
	ID        string
	Subject   string
	Questions []bank.Question

	Current  int
	Selected int // pending option index, -1 when unset
	Phase    Phase

	// Stats buckets confirmed answers by question category.
	Stats map[string]*CategoryStats

	// Remaining is the countdown in seconds. Meaningful only when timed.
	Remaining int
	timed     bool
}

// New creates a session over a fixed question list. minutes <= 0 means no
// countdown.
func New(subject string, questions []bank.Question, minutes int) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Subject:   subject,
		Questions: questions,
		Selected:  -1,
		Stats:     make(map[string]*CategoryStats),
	}
	if minutes > 0 {
		s.timed = true
		s.Remaining = minutes * 60
	}
	return s
}

// Timed reports whether a countdown was configured.
func (s *Session) Timed() bool {
	return s.timed
}

// CurrentQuestion returns the active question, or nil once completed.
func (s *Session) CurrentQuestion() *bank.Question {
	if s.Phase == PhaseCompleted || s.Current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Current]
}

// SelectOption records i as the pending selection. Ignored unless the
// session is awaiting a selection and i indexes the current options.
func (s *Session) SelectOption(i int) bool {
	q := s.CurrentQuestion()
	if s.Phase != PhaseAwaitingSelection || q == nil || i < 0 || i >= len(q.Options) {
		return false
	}
	s.Selected = i
	return true
}

// Confirm locks the pending selection, grades it, and updates stats.
// A confirm with no pending selection, or a second confirm for the same
// question, is a no-op with ok=false.
func (s *Session) Confirm() (Result, bool) {
	q := s.CurrentQuestion()
	if s.Phase != PhaseAwaitingSelection || q == nil || s.Selected < 0 {
		return Result{}, false
	}

	correctIdx, _ := bank.CorrectIndex(*q)
	correct := s.Selected == correctIdx

	bucket := categoryBucket(q)
	cs := s.Stats[bucket]
	if cs == nil {
		cs = &CategoryStats{}
		s.Stats[bucket] = cs
	}
	cs.Total++
	if correct {
		cs.Correct++
	}

	s.Phase = PhaseConfirmed
	return Result{Correct: correct, CorrectIndex: correctIdx}, true
}

// Advance moves to the next question. Legal only after a confirm; past
// the last question the session completes.
func (s *Session) Advance() bool {
	if s.Phase != PhaseConfirmed {
		return false
	}
	s.Current++
	s.Selected = -1
	if s.Current >= len(s.Questions) {
		s.Phase = PhaseCompleted
	} else {
		s.Phase = PhaseAwaitingSelection
	}
	return true
}

// TickSecond advances the countdown by one second. Returns true when the
// countdown has just expired, in which case the session is completed; an
// unconfirmed in-flight question stays out of the stats.
func (s *Session) TickSecond() bool {
	if !s.timed || s.Phase == PhaseCompleted {
		return false
	}
	s.Remaining--
	if s.Remaining < 0 {
		s.Timeout()
		return true
	}
	return false
}

// Timeout forces immediate completion from any state. Pending unconfirmed
// selections are discarded without touching the stats.
func (s *Session) Timeout() {
	s.Phase = PhaseCompleted
}

// Completed reports whether the session has ended.
func (s *Session) Completed() bool {
	return s.Phase == PhaseCompleted
}

// Retry restarts the state machine over the same question list: cursor
// back to zero, stats cleared, selection unset. The countdown is not
// re-armed; a retried attempt runs untimed. No re-fetch or
// re-normalization happens.
func (s *Session) Retry() {
	s.Current = 0
	s.Selected = -1
	s.Phase = PhaseAwaitingSelection
	s.Stats = make(map[string]*CategoryStats)
	s.timed = false
	s.Remaining = 0
}

// Totals sums the per-category stats.
func (s *Session) Totals() (correct, total int) {
	for _, cs := range s.Stats {
		correct += cs.Correct
		total += cs.Total
	}
	return correct, total
}

// Summarize computes the end-of-session summary from the stats.
func (s *Session) Summarize() Summary {
	correct, total := s.Totals()
	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(correct) / float64(total)))
	}
	return Summary{
		Score:     score,
		Total:     total,
		Correct:   correct,
		Incorrect: total - correct,
	}
}

// categoryBucket returns the stats bucket for a question: its lowercased
// type, or "misc" when the type is absent.
func categoryBucket(q *bank.Question) string {
	t := strings.ToLower(strings.TrimSpace(string(q.Type)))
	if t == "" {
		return MiscCategory
	}
	return t
}
