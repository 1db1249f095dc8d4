// Package errors provides sentinel errors, structured error details and
// exit codes for the pyrepo CLI.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Fixed user-facing messages.
const (
	// MsgMissingParameter is printed when a command is invoked without all of its required flags.
	MsgMissingParameter = "Exiting setup...please provide all flags for command. Try pyrepo <command> --help to learn more."

	// MsgFlaskRequired is printed when postgres is requested without flask.
	MsgFlaskRequired = "This configuration requires a flask application to exist, please enable flask to integrate postgres database."

	// MsgNoConfiguration is printed when the configuration record is absent.
	MsgNoConfiguration = `No configuration has been set...run "pyrepo easy-setup" or "pyrepo config" to set configuration`

	// MsgUnsupportedOS is printed when environment setup runs on an unknown host.
	MsgUnsupportedOS = "System not recognized, exiting setup"
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Field is the parameter name involved (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewMissingParameterError reports required parameters that were not supplied.
func NewMissingParameterError(command string, missing []string) error {
	return &DetailError{
		Type:    "missing parameter",
		Message: MsgMissingParameter,
		Context: map[string]string{"Missing": strings.Join(missing, ", ")},
		Hint:    fmt.Sprintf("Run 'pyrepo %s --help' to see the flags this command accepts.", command),
		Cause:   ErrMissingParameter,
	}
}

// NewInvalidCombinationError reports a feature requested without its base feature.
func NewInvalidCombinationError(message, hint string) error {
	return &DetailError{
		Type:    "invalid feature combination",
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidCombination,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewShellOutError reports an external tool that failed to start or exited non-zero.
func NewShellOutError(command string, exitCode int, cause error) error {
	ctx := map[string]string{"Command": command}
	if exitCode >= 0 {
		ctx["Exit code"] = fmt.Sprintf("%d", exitCode)
	}
	detail := &DetailError{
		Type:    "shell-out failed",
		Message: fmt.Sprintf("%s did not complete successfully", command),
		Context: ctx,
		Cause:   ErrShellOut,
	}
	if cause != nil {
		detail.Cause = fmt.Errorf("%w: %w", ErrShellOut, cause)
	}
	return detail
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
