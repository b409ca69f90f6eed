package utils

import (
	"errors"
	"fmt"
)

// ErrNotFound means the requested record does not exist. A creative
// with no saved schedule is NOT this error; that case falls back to
// defaults.
var ErrNotFound = errors.New("not found")

// ErrSessionExpired is terminal: the session is past its expiry and
// the account must sign in again.
var ErrSessionExpired = errors.New("session expired")

// ErrSaveInFlight means another save for the same record is still
// outstanding; the caller should retry once it resolves.
var ErrSaveInFlight = errors.New("a save for this record is already in flight")

// ValidationError is a local input rejection. It never reaches the
// persistence layer and never mutates stored state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for the given field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// TransportError wraps a failed call to an external collaborator
// (database, cache, push gateway). Callers keep their local state so
// the operation can be retried without re-entering data.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Transport wraps err as a TransportError, passing nil through.
func Transport(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Op: op, Err: err}
}
