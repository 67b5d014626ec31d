package fetch

import "fmt"

// ErrRetrieval indicates a dataset could not be fetched (transport or
// status failure). Surfaced to the user as "cannot load"; never retried
// automatically.
type ErrRetrieval struct {
	Path   string
	Status int // HTTP status when >0
	Err    error
}

func (e *ErrRetrieval) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.Path, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Path, e.Err)
}

func (e *ErrRetrieval) Unwrap() error { return e.Err }

// ErrMalformedJSON indicates dataset text that failed to parse even after
// the repair pass. Callers treat it like a retrieval failure.
type ErrMalformedJSON struct {
	Path string
	Err  error
}

func (e *ErrMalformedJSON) Error() string {
	return fmt.Sprintf("malformed dataset %s: %v", e.Path, e.Err)
}

func (e *ErrMalformedJSON) Unwrap() error { return e.Err }
