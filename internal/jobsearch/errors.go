package jobsearch

import "fmt"

// ServiceError represents a failure reaching or using the job search
// provider. Fatal for the search stage; zero results is not an error.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job search error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("job search error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
