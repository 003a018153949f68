package config

import "fmt"

// ConfigurationError represents missing or invalid credentials or settings.
// It is surfaced before any pipeline stage runs.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Setting != "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}
