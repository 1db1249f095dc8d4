package shell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/pyrepo/cli/internal/errors"
)

// DefaultPythonVersion is used when no interpreter can be detected.
const DefaultPythonVersion = "3.11"

// NormalizePythonVersion reduces a version such as "3.12.4", "v3.12" or
// "Python 3.12.4" to "major.minor".
func NormalizePythonVersion(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "Python ")
	s = strings.TrimSpace(s)

	v, err := semver.NewVersion(s)
	if err != nil {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("invalid python version %q", raw),
			"python-version",
			"Use a version such as 3.11 or 3.12.4.",
		)
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor()), nil
}

// VersionProbe asks an interpreter for its version string.
type VersionProbe func(ctx context.Context, c Command) (string, error)

// ExecProbe runs the command and returns its combined output.
func ExecProbe(ctx context.Context, c Command) (string, error) {
	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w", c.String(), err)
	}
	return buf.String(), nil
}

// DetectPythonVersion returns the "major.minor" version of the host interpreter.
func DetectPythonVersion(ctx context.Context, p Platform, probe VersionProbe) (string, error) {
	out, err := probe(ctx, p.PythonVersion())
	if err != nil {
		return "", err
	}
	return NormalizePythonVersion(out)
}
