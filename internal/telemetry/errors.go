package telemetry

import "fmt"

// ValidationError reports caller input that was rejected before any query ran.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// StorageError reports a failed query.  The cause is logged, never returned
// to HTTP callers.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

var (
	errMissingFields = &ValidationError{Msg: "Missing required fields"}
	errInvalidDate   = &ValidationError{Msg: "Invalid date format. Use YYYY-MM-DD"}
	errInvalidJSON   = &ValidationError{Msg: "Invalid JSON body"}
)
