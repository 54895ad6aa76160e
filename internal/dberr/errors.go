// Package dberr defines the error vocabulary shared by the execution,
// backup and export layers. Callers classify failures with errors.Is /
// errors.As rather than string matching.
package dberr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDialect is returned when a user-supplied database kind
	// matches no registry entry.
	ErrUnknownDialect = errors.New("unknown dialect")

	// ErrConnectionFailed wraps failures to open or ping a connection.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnsupportedOperation is returned for operations the active
	// dialect cannot perform (e.g. bound parameters on a dialect whose
	// driver has no parameter support).
	ErrUnsupportedOperation = errors.New("operation not supported for this dialect")

	// ErrBatchWithParameters is returned when a batch-separator script is
	// submitted together with bound parameters. Per-batch rebinding
	// semantics are undefined, so the combination is rejected up front.
	ErrBatchWithParameters = errors.New("batch scripts cannot carry bound parameters")

	// ErrNoDriver is returned when the dialect is known but no Go driver
	// is wired for it in this build.
	ErrNoDriver = errors.New("no driver available for this dialect")
)

// SQLError wraps an error reported by the underlying driver. The Message
// field is already credential-redacted and safe to show to the user.
type SQLError struct {
	Message string
	Err     error
}

func (e *SQLError) Error() string { return e.Message }

func (e *SQLError) Unwrap() error { return e.Err }

// BatchError reports which batch of a multi-batch script failed.
// Index is 0-based.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch %d failed: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
