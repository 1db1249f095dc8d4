package errors

import "errors"

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a missing parameter, invalid flag value or invalid feature combination.
	ExitValidationError = 2

	// ExitEnvironmentError indicates the host cannot run environment setup or an external tool failed.
	ExitEnvironmentError = 3

	// ExitNotFound indicates a template, dependency file or configuration record was not found.
	ExitNotFound = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
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
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrMissingParameter),
		errors.Is(err, ErrInvalidCombination):
		return ExitValidationError
	case errors.Is(err, ErrUnsupportedOS), errors.Is(err, ErrShellOut):
		return ExitEnvironmentError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// AsExitError wraps err in an ExitError with the code derived from its sentinel.
// A nil error stays nil and an existing ExitError is returned unchanged.
func AsExitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: ExitCodeFromError(err), Err: err}
}
