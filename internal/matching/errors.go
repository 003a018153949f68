package matching

import "fmt"

// ParseError represents a model response for one listing that cannot be
// coerced into skill assessments. Unlike profile extraction, a ParseError
// here only drops the affected listing; the run continues.
type ParseError struct {
	ListingIndex int
	Message      string
	Cause        error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error for listing %d: %s: %v", e.ListingIndex, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error for listing %d: %s", e.ListingIndex, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
