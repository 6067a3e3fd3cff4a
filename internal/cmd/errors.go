package cmd

import (
	"errors"

	oerrors "github.com/forgelabs/forge/internal/errors"
	"github.com/forgelabs/forge/internal/output"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed marks the error as already presented to the user, so the
	// entry point doesn't print it twice.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrTemplateNotFound):
		return ExitNotFound
	case errors.Is(err, oerrors.ErrDirectoryExists):
		return ExitDirectoryExists
	case errors.Is(err, oerrors.ErrGitNotAvailable):
		return ExitGitUnavailable
	case errors.Is(err, oerrors.ErrGitClone), errors.Is(err, oerrors.ErrGit):
		return ExitGitError
	case errors.Is(err, oerrors.ErrIO):
		return ExitIOError
	default:
		return ExitGeneralError
	}
}

// WrapExit attaches the exit code derived from err's sentinel chain.
func WrapExit(err error) error {
	if err == nil {
		return nil
	}
	code := ExitCodeFromError(err)
	output.Debug("command failed", "exitCode", code, "exitName", ExitCodeName(code))
	return &ExitError{Err: err, Code: code}
}
