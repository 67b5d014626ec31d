package picker

import "fmt"

// ErrInvalidRequest indicates a requested question count outside the
// allowed range. It is raised before any fetch or selection work.
type ErrInvalidRequest struct {
	Count int
	Max   int
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid question count %d: must be between 1 and %d", e.Count, e.Max)
}

// ErrEmptyPool indicates selection found zero playable questions for the
// requested mode after sanitation and validation.
type ErrEmptyPool struct {
	Difficulty string
}

func (e *ErrEmptyPool) Error() string {
	return fmt.Sprintf("no valid questions for difficulty %q", e.Difficulty)
}
