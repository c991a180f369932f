package output

import (
	"errors"
	"io/fs"

	"github.com/gorewood/blockgen/internal/block"
)

// Process exit codes. A generate run that inserts nothing, because the
// prompt was cancelled or the document refused the edit, exits with
// ExitSuccess.
const (
	ExitSuccess     = 0
	ExitUserError   = 1 // bad kind, bad --at, missing file
	ExitSystemError = 2 // I/O failure, malformed settings or overrides
)

// ExitError carries the exit code a command failed with.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError reports a mistake in the command line.
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// Classify turns an error from the library packages into an ExitError.
// Missing files and unknown block kinds are the user's; anything else is
// a system failure. ExitErrors pass through and nil stays nil.
func Classify(err error) *ExitError {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	code := ExitSystemError
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, block.ErrUnknownKind) {
		code = ExitUserError
	}
	return &ExitError{Code: code, Message: err.Error(), Cause: err}
}

// ExitCode maps err to a process exit code. Errors without a code, such
// as cobra flag parsing failures, count as user errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}
