// Package templates provides the embedded template payloads, the catalog of
// template names and their placeholders, and the placeholder renderer.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	oerrors "github.com/pyrepo/cli/internal/errors"
)

//go:embed all:payload
var payloadFS embed.FS

// Embedded returns the template payloads compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(payloadFS, "payload")
	if err != nil {
		// payload is a literal directory in this package
		panic(fmt.Sprintf("templates: embedded payload missing: %v", err))
	}
	return sub
}

// OpenDir returns a filesystem rooted at a user-supplied templates directory.
func OpenDir(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("templates directory not found: %s", dir),
				dir,
				"Unset --templates-dir to use the built-in templates.",
			)
		}
		return nil, fmt.Errorf("checking templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("%s is not a directory", dir),
			"templates-dir",
			"Point --templates-dir at a directory of template files.",
		)
	}
	return os.DirFS(dir), nil
}
