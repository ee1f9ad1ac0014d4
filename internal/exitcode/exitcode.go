package exitcode

import (
	stderrors "errors"
	"os"

	"github.com/vendalink/vendalink/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure or a missing session
	AuthError = 3

	// PermissionDenied indicates the resolved role lacks rights for the action
	PermissionDenied = 4

	// NetworkError indicates the CRM API could not be reached
	NetworkError = 5

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var verr *errors.VendalinkError
	if stderrors.As(err, &verr) {
		switch verr.Code {
		case errors.ErrCodeAuthRequired, errors.ErrCodeAuthInvalidCredentials, errors.ErrCodeAuthSessionExpired:
			return AuthError
		case errors.ErrCodeAuthPermissionDenied:
			return PermissionDenied
		case errors.ErrCodeAPIUnavailable:
			return NetworkError
		case errors.ErrCodeInputRequired, errors.ErrCodeInputInvalid:
			return UsageError
		}
	}

	return GeneralError
}
