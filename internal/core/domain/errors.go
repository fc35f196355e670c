package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrProjectNotFound       = errors.New("project not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrRecurrenceNotFound    = errors.New("recurrence not found")
	ErrInvalidPayload        = errors.New("invalid payload")
	ErrMalformedResponse     = errors.New("malformed upstream response")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// DependencyError reports a transport failure or unexpected status from a
// downstream service. StatusCode is zero when no response was received.
type DependencyError struct {
	Service    string
	Operation  string
	StatusCode int
	Err        error
}

func (e *DependencyError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Service, e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Service, e.Operation, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func (e *DependencyError) Is(target error) bool {
	return target == ErrDependencyUnavailable
}
