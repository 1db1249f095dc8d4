// Package generator writes the files for each pyrepo feature and runs the
// external tools that finish environment setup.
package generator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/pyrepo/cli/internal/config"
	"github.com/pyrepo/cli/internal/output"
	"github.com/pyrepo/cli/internal/shell"
	"github.com/pyrepo/cli/internal/templates"
)

// Context is built once per invocation and passed to every generator.
type Context struct {
	// BaseDir is the project directory all destinations are relative to.
	BaseDir string

	// PyVersion is the "major.minor" Python version bound to {{ pyversion }}.
	PyVersion string

	Resolver *templates.Resolver
	Runner   shell.Runner

	// GOOS selects the virtual environment commands.
	GOOS string

	// Out receives progress messages.
	Out io.Writer
}

// Validate checks that the context can be used by generators.
func (c *Context) Validate() error {
	switch {
	case c.BaseDir == "":
		return errors.New("generator context: base directory is empty")
	case c.Resolver == nil:
		return errors.New("generator context: template resolver is nil")
	case c.Runner == nil:
		return errors.New("generator context: process runner is nil")
	case c.PyVersion == "":
		return errors.New("generator context: python version is empty")
	}
	return nil
}

// File is one written file.
type File struct {
	// Path is project-relative and slash separated.
	Path string

	// Status is output.StatusCreated or output.StatusOverwritten.
	Status string
}

// Result lists what a generator wrote.
type Result struct {
	Files []File
	Dirs  []string
}

// Merge appends other's entries. A path written twice keeps its first status.
func (r *Result) Merge(other *Result) *Result {
	if other == nil {
		return r
	}
	for _, f := range other.Files {
		r.addFile(f)
	}
	for _, d := range other.Dirs {
		r.addDir(d)
	}
	return r
}

// Paths returns the written file paths in write order.
func (r *Result) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return paths
}

// Tree lists the created directories, then the written files, for output.RenderFileTree.
func (r *Result) Tree() []output.TreeEntry {
	entries := make([]output.TreeEntry, 0, len(r.Dirs)+len(r.Files))
	for _, d := range r.Dirs {
		entries = append(entries, output.TreeEntry{Path: d, Status: output.StatusDirectory})
	}
	for _, f := range r.Files {
		entries = append(entries, output.TreeEntry{Path: f.Path, Status: f.Status})
	}
	return entries
}

func (r *Result) addFile(f File) {
	for _, existing := range r.Files {
		if existing.Path == f.Path {
			return
		}
	}
	r.Files = append(r.Files, f)
}

func (r *Result) addDir(d string) {
	for _, existing := range r.Dirs {
		if existing == d {
			return
		}
	}
	r.Dirs = append(r.Dirs, d)
}

// emitter writes one generator's files and records them in its result.
type emitter struct {
	ctx *Context
	log *log.Logger
	res *Result
}

func (c *Context) emitter(name string) *emitter {
	return &emitter{ctx: c, log: output.GeneratorLogger(name), res: &Result{}}
}

func (c *Context) path(rel string) string {
	return filepath.Join(c.BaseDir, filepath.FromSlash(rel))
}

func (c *Context) say(msg string) {
	if c.Out != nil {
		fmt.Fprintln(c.Out, msg)
	}
}

func (c *Context) vars(extra templates.Vars) templates.Vars {
	vars := templates.Vars{templates.VarPyVersion: c.PyVersion}
	for k, v := range extra {
		vars[k] = v
	}
	return vars
}

// render substitutes a template and writes it to dest.
func (e *emitter) render(name, dest string, extra templates.Vars) error {
	content, err := e.ctx.Resolver.Render(name, e.ctx.vars(extra))
	if err != nil {
		return err
	}
	return e.write(dest, content)
}

// copy writes a template to dest without substitution.
func (e *emitter) copy(name, dest string) error {
	status := e.status(dest)
	if err := e.ctx.Resolver.Copy(name, e.ctx.path(dest)); err != nil {
		return err
	}
	e.record(dest, status)
	return nil
}

// mergeRequirements prepends a feature dependency list to the project's requirements.txt.
func (e *emitter) mergeRequirements(list string) error {
	merged, err := e.ctx.Resolver.MergeRequirements(list, e.ctx.path(config.RequirementsFile))
	if err != nil {
		return err
	}
	return e.write(config.RequirementsFile, merged)
}

func (e *emitter) mkdir(rel string) error {
	if err := os.MkdirAll(e.ctx.path(rel), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", rel, err)
	}
	e.res.addDir(rel)
	e.log.Debug("directory ready", "path", rel)
	return nil
}

func (e *emitter) write(dest, content string) error {
	path := e.ctx.path(dest)
	status := e.status(dest)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	e.record(dest, status)
	return nil
}

func (e *emitter) status(dest string) string {
	if _, err := os.Stat(e.ctx.path(dest)); err == nil {
		return output.StatusOverwritten
	} else if !errors.Is(err, fs.ErrNotExist) {
		e.log.Debug("stat failed", "path", dest, "error", err)
	}
	return output.StatusCreated
}

func (e *emitter) record(dest, status string) {
	e.res.addFile(File{Path: dest, Status: status})
	e.log.Debug(output.FormatFileLine(dest, status))
}
