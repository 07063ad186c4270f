package asset

import "fmt"

// LoadError reports a fetch that came back with a non-success status.
type LoadError struct {
	URL    string
	Status int
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: status %d", e.URL, e.Status)
}

// DecodeError reports a payload the format decoder rejected.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
