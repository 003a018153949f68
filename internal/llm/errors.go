package llm

import "fmt"

// ServiceError represents a failure reaching or using the remote model
// provider: network errors, timeouts, non-2xx responses, empty completions.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("llm service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
