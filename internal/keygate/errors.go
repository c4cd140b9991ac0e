package keygate

import (
	"errors"
	"fmt"
)

var (
	// ErrCapabilityUnavailable means the host offers no key check.
	ErrCapabilityUnavailable = errors.New("key check capability unavailable")

	// ErrCapabilityTimeout means the key check did not settle in time.
	ErrCapabilityTimeout = errors.New("key check timed out")

	// ErrSelectionUnavailable means the host offers no key selection flow.
	// Callers show it to the user as a notice.
	ErrSelectionUnavailable = errors.New("API key selection is not available in this environment")

	// ErrNotAwaitingSelection is returned when key selection is requested
	// outside the KeyMissing state.
	ErrNotAwaitingSelection = errors.New("gate is not waiting for a key")
)

// CapabilityError wraps a failure raised by the host's key check.
type CapabilityError struct {
	Err error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("key check failed: %v", e.Err)
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}
