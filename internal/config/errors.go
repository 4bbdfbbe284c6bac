package config

import "fmt"

// ValidationError reports a configuration value that cannot be used.
type ValidationError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Key, e.Value, e.Reason)
}
