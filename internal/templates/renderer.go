package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	cp "github.com/otiai10/copy"

	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/output"
)

// placeholderRegex matches "{{ name }}" where name is an identifier.
// Anything else between braces, such as "${{ secrets.TOKEN }}", never matches.
var placeholderRegex = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Vars binds placeholder names to replacement text.
type Vars map[string]string

// Resolver reads templates by name and substitutes placeholders.
// It keeps no cache; every call reads the file again.
type Resolver struct {
	fsys fs.FS
}

// NewResolver creates a resolver over the given templates filesystem.
func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{fsys: fsys}
}

// FS returns the templates filesystem.
func (r *Resolver) FS() fs.FS {
	return r.fsys
}

// Raw returns the unmodified content of a template.
func (r *Resolver) Raw(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", oerrors.NewNotFoundError(
				fmt.Sprintf("template not found: %s", name),
				name,
				"Check --templates-dir, or unset it to use the built-in templates.",
			)
		}
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}
	return string(data), nil
}

// Render reads a template and replaces every placeholder bound in vars.
// Unbound placeholders are left as literal text. Substituted values are not
// scanned again, so a value may itself contain "{{ ... }}".
func (r *Resolver) Render(name string, vars Vars) (string, error) {
	content, err := r.Raw(name)
	if err != nil {
		return "", err
	}

	output.Debug("rendering template", "template", name, "vars", len(vars))
	return Substitute(content, vars), nil
}

// Copy writes a template byte for byte to dest, creating parent directories.
func (r *Resolver) Copy(name, dest string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, err := fs.Stat(r.fsys, name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return oerrors.NewNotFoundError(fmt.Sprintf("template not found: %s", name), name, "")
		}
		return fmt.Errorf("checking template %s: %w", name, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}

	opts := cp.Options{
		FS:                r.fsys,
		PreserveTimes:     false,
		PreserveOwner:     false,
		PermissionControl: cp.AddPermission(0o644),
	}
	if err := cp.Copy(name, dest, opts); err != nil {
		return fmt.Errorf("copying template %s to %s: %w", name, dest, err)
	}
	return nil
}

// Substitute replaces bound placeholders in a single pass.
func Substitute(content string, vars Vars) string {
	if len(vars) == 0 {
		return content
	}
	return placeholderRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := placeholderRegex.FindStringSubmatch(match)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return match
	})
}

// Placeholders returns the distinct placeholder names used in content, in order of first use.
func Placeholders(content string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderRegex.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
