// Package shell runs the external tools used to finish environment setup.
// Every call goes through the Runner interface so tests can substitute a Recorder.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/output"
)

// Command is one external process invocation.
type Command struct {
	// Name is the program to run, resolved via PATH when it has no separator.
	Name string

	// Args are passed to the program unchanged.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String returns the command line as a user would type it.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner executes commands and reports the exit code.
// A non-zero exit code is not an error; err is set only when the process could not run.
type Runner interface {
	Run(ctx context.Context, cmd Command) (exitCode int, err error)
}

// ExecRunner runs commands with os/exec, passing stdout and stderr through.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner attached to the process's stdout and stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = os.Stdin

	output.Debug("running command", "cmd", c.String(), "dir", c.Dir)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("starting %s: %w", c.Name, err)
}

// Must runs c and converts a start failure or non-zero exit into an ErrShellOut error.
func Must(ctx context.Context, r Runner, c Command) error {
	code, err := r.Run(ctx, c)
	if err != nil {
		return oerrors.NewShellOutError(c.String(), -1, err)
	}
	if code != 0 {
		return oerrors.NewShellOutError(c.String(), code, nil)
	}
	return nil
}
