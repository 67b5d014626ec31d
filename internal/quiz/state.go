package quiz

// Phase is the session state machine's position for the current question.
type Phase int

const (
	// PhaseAwaitingSelection: the current question is shown and no option
	// has been locked in.
	PhaseAwaitingSelection Phase = iota

	// PhaseConfirmed: an option is locked, correctness revealed.
	PhaseConfirmed

	// PhaseCompleted: the question list is exhausted or the countdown
	// expired.
	PhaseCompleted
)

// CategoryStats counts answers for one category bucket.
type CategoryStats struct {
	Correct int
	Total   int
}

// MiscCategory buckets questions that carry no type.
const MiscCategory = "misc"

// Result reports the outcome of confirming a selection.
type Result struct {
	Correct      bool
	CorrectIndex int
}

// Summary aggregates a session's stats for display.
type Summary struct {
	Score     int // round(100 * correct / total), 0 when total is 0
	Total     int
	Correct   int
	Incorrect int
}
