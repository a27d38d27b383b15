package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/jerryzhao173985/cursorlog/internal/errors"
)

// Exit codes for the cursorlog CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitFetchFailed indicates the changelog page could not be retrieved.
	ExitFetchFailed = 1

	// ExitPersistenceFailed indicates the snapshot could not be written.
	ExitPersistenceFailed = 2

	// ExitInvalidArguments indicates invalid command arguments or configuration.
	ExitInvalidArguments = 3

	// ExitEmptySnapshot indicates a query ran against an empty snapshot.
	ExitEmptySnapshot = 4
)

// ExitError carries an explicit exit code out of a command.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an error carrying the given exit code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// isExitOnly reports whether err is a bare exit code with no message of its
// own; those commands have already printed their diagnostics.
func isExitOnly(err error) bool {
	var exitErr *ExitError
	return stderrors.As(err, &exitErr)
}

// ExitCode maps an error returned by Execute to a process exit code.
// Explicit ExitErrors win; CLIErrors map by category; anything else is a
// generic failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case errors.Fetch:
			return ExitFetchFailed
		case errors.Persistence:
			return ExitPersistenceFailed
		case errors.Argument, errors.Configuration:
			return ExitInvalidArguments
		}
	}

	return ExitFetchFailed
}
