package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid flag value or argument.
	ErrValidation = errors.New("validation error")

	// ErrMissingParameter indicates a required command parameter was not supplied.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidCombination indicates a feature was requested without the feature it builds on.
	ErrInvalidCombination = errors.New("invalid feature combination")

	// ErrNotFound indicates a template, dependency file, or configuration record was not found.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedOS indicates the host operating system has no environment setup path.
	ErrUnsupportedOS = errors.New("unsupported operating system")

	// ErrShellOut indicates an external tool could not be started or exited non-zero.
	ErrShellOut = errors.New("shell-out failed")
)

// ErrAborted indicates the user cancelled an interactive prompt.
var ErrAborted = errors.New("aborted by user")
