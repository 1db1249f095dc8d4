//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	all := []error{ErrValidation, ErrMissingParameter, ErrInvalidCombination, ErrNotFound, ErrUnsupportedOS, ErrShellOut}
	for i := range all {
		for j := range all {
			if i != j {
				assert.NotEqual(t, all[i], all[j])
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "not found",
		Message:  "template not found: Dockerfile_proj",
		Location: "/tmp/templates",
		Field:    "template",
		Context:  map[string]string{"Generator": "docker"},
		Hint:     "Check --templates-dir",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: not found")
	assert.Contains(t, output, "Location: /tmp/templates")
	assert.Contains(t, output, "Field: template")
	assert.Contains(t, output, "Generator: docker")
	assert.Contains(t, output, "template not found: Dockerfile_proj")
	assert.Contains(t, output, "Hint: Check --templates-dir")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{Type: "test", Message: "test message", Cause: ErrNotFound}

	assert.True(t, errors.Is(detail, ErrNotFound))
	assert.Equal(t, ErrNotFound, detail.Unwrap())
}

func TestNewMissingParameterError(t *testing.T) {
	err := NewMissingParameterError("easy poetry", []string{"repo", "maintain"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingParameter))
	assert.Contains(t, err.Error(), MsgMissingParameter)
	assert.Contains(t, err.Error(), "Missing: repo, maintain")
	assert.Contains(t, err.Error(), "pyrepo easy poetry --help")
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestNewInvalidCombinationError(t *testing.T) {
	err := NewInvalidCombinationError(MsgFlaskRequired, "Pass --flask")

	assert.True(t, errors.Is(err, ErrInvalidCombination))
	assert.Contains(t, err.Error(), MsgFlaskRequired)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestNewShellOutError(t *testing.T) {
	cause := fmt.Errorf("exec: not found")
	err := NewShellOutError("python3 -m venv env", -1, cause)

	assert.True(t, errors.Is(err, ErrShellOut))
	assert.True(t, errors.Is(err, cause))
	assert.NotContains(t, err.Error(), "Exit code")

	err = NewShellOutError("env/bin/dvc init", 2, nil)
	assert.True(t, errors.Is(err, ErrShellOut))
	assert.Contains(t, err.Error(), "Exit code: 2")
	assert.Equal(t, ExitEnvironmentError, ExitCodeFromError(err))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "loading record")

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "loading record")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit exit error", &ExitError{Code: 7, Err: errors.New("x")}, 7},
		{"validation", fmt.Errorf("bad: %w", ErrValidation), ExitValidationError},
		{"unsupported os", fmt.Errorf("setup: %w", ErrUnsupportedOS), ExitEnvironmentError},
		{"not found", fmt.Errorf("load: %w", ErrNotFound), ExitNotFound},
		{"unknown", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestAsExitError(t *testing.T) {
	assert.NoError(t, AsExitError(nil))

	err := AsExitError(fmt.Errorf("render: %w", ErrNotFound))
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitNotFound, exitErr.Code)

	orig := &ExitError{Code: ExitValidationError, Err: ErrValidation}
	assert.Same(t, orig, AsExitError(orig))
}
