package extraction

import "fmt"

// ParseError represents a model response that cannot be coerced into a
// Profile. Extraction failures are fatal for the run; no partial profile is
// ever accepted.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
