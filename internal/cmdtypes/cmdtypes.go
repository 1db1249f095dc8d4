// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/easy).
package cmdtypes

import (
	"context"
	"io"

	"github.com/pyrepo/cli/internal/config"
	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/generator"
	"github.com/pyrepo/cli/internal/prompt"
	"github.com/pyrepo/cli/internal/shell"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created empty by the root command, populated once at startup and
// passed explicitly into every sub-command constructor.
type GlobalConfig struct {
	Settings *config.Settings
	Paths    *config.ProjectPaths

	// Gen is the invocation context handed to generators.
	Gen *generator.Context

	Verbose bool

	// Overrides for tests. Zero values select the real implementations.
	Runner       shell.Runner
	GOOS         string
	Stdin        io.Reader
	Prompter     prompt.Prompter
	DetectPython func(ctx context.Context) (string, error)
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitEnvironmentError = oerrors.ExitEnvironmentError
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
