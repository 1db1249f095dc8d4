package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/samber/lo"

	oerrors "github.com/pyrepo/cli/internal/errors"
)

// ValidateName checks that a template name is a relative path inside the templates directory.
func ValidateName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("template name cannot be empty", "template", "")
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, "\\") {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid template name %q: must be a relative slash-separated path", name),
			"template", "")
	}
	if !fs.ValidPath(name) || path.Clean(name) != name {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid template name %q: must not contain '.' or '..' segments", name),
			"template", "")
	}
	return nil
}

// Problem is one mismatch between a templates directory and the catalog.
type Problem struct {
	Template string
	Message  string
}

// String returns "template: message".
func (p Problem) String() string {
	return p.Template + ": " + p.Message
}

// CheckPayloads compares a templates filesystem against the catalog. It reports
// catalogued templates that are missing and rendered templates whose
// placeholders are not bound by their generator. Verbatim and requirements
// payloads are never substituted, so their braces are not inspected.
func CheckPayloads(fsys fs.FS) ([]Problem, error) {
	var problems []Problem
	for _, name := range Names() {
		tmpl := catalog[name]

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				problems = append(problems, Problem{Template: name, Message: "missing"})
				continue
			}
			return nil, fmt.Errorf("reading template %s: %w", name, err)
		}

		if tmpl.Kind != KindRendered {
			continue
		}
		unbound, _ := lo.Difference(Placeholders(string(data)), tmpl.Vars)
		for _, v := range unbound {
			problems = append(problems, Problem{
				Template: name,
				Message:  fmt.Sprintf("placeholder %q is never bound and will be left as-is", v),
			})
		}
	}
	return problems, nil
}
