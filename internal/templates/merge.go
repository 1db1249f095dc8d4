package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	oerrors "github.com/pyrepo/cli/internal/errors"
)

// MergeRequirements returns the rendered feature dependency list followed by a
// newline and the current content of projectFile. Entries are never
// de-duplicated. projectFile must already exist; it is not created here.
func (r *Resolver) MergeRequirements(featureList, projectFile string) (string, error) {
	feature, err := r.Render(featureList, nil)
	if err != nil {
		return "", err
	}

	project, err := os.ReadFile(projectFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", oerrors.NewNotFoundError(
				fmt.Sprintf("file not found: %s", projectFile),
				projectFile,
				"Create requirements.txt in the project directory before adding a feature.",
			)
		}
		return "", fmt.Errorf("reading %s: %w", projectFile, err)
	}

	return feature + "\n" + string(project), nil
}
