// File: services/booking/errors.go
package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrSessionComplete is returned when a mutation targets a confirmed session.
	ErrSessionComplete = errors.New("booking session already confirmed")

	// ErrConfirmRequired is returned when Advance is called at the review step;
	// the review step is left through Confirm, not Advance.
	ErrConfirmRequired = errors.New("confirm the booking to finish")
)

// ValidationError reports a draft field that fails a step guard.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// SlotUnavailableError reports a requested time that is not currently bookable,
// either because it lapsed or because another booking took it.
type SlotUnavailableError struct {
	Date string
	Time string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot %s %s is no longer available", e.Date, e.Time)
}

// SubmissionError wraps a persistence failure during Confirm. The session is
// kept at the review step so the client can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("booking submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
