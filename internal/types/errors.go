package types

import "fmt"

// ValidationError reports structurally invalid input rejected before any
// scoring took place. Degraded-signal conditions are never errors; they are
// absorbed into the output instead.
type ValidationError struct {
	Subject string // "profile" or "career <id>"
	Cause   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Subject, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
