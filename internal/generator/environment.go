package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pyrepo/cli/internal/config"
	"github.com/pyrepo/cli/internal/shell"
	"github.com/pyrepo/cli/internal/templates"
)

// Destinations of the environment generators.
const (
	DockerfilePath   = "Dockerfile"
	DockerignorePath = ".dockerignore"
	PyprojectPath    = "pyproject.toml"
)

// ProjectMeta is the project description bound into pyproject.toml.
type ProjectMeta struct {
	Repo        string
	Maintainer  string
	Description string
}

// EnvKind is the dependency management chosen for a project.
type EnvKind string

const (
	EnvDocker     EnvKind = "docker"
	EnvPoetry     EnvKind = "poetry"
	EnvVirtualenv EnvKind = "virtualenv"
)

// EnvOptions selects the environment generator.
type EnvOptions struct {
	Docker bool
	Poetry bool
	Meta   ProjectMeta
}

// Kind returns the environment that Environment will create. Docker wins over poetry.
func (o EnvOptions) Kind() EnvKind {
	switch {
	case o.Docker:
		return EnvDocker
	case o.Poetry:
		return EnvPoetry
	default:
		return EnvVirtualenv
	}
}

// Docker writes the Dockerfile and .dockerignore.
func Docker(c *Context) (*Result, error) {
	e := c.emitter("docker")
	c.say("Creating Dockerfile...")

	if err := e.render("Dockerfile_proj", DockerfilePath, nil); err != nil {
		return e.res, err
	}
	if err := e.render(".dockerignore", DockerignorePath, nil); err != nil {
		return e.res, err
	}

	c.say("Dockerfile has been integrated. See configuration in ./Dockerfile. Reference .dockerignore for files to exclude from the build image.")
	return e.res, nil
}

// Poetry writes pyproject.toml for the project.
func Poetry(c *Context, meta ProjectMeta) (*Result, error) {
	e := c.emitter("poetry")
	c.say("Creating poetry environment...")

	vars := templates.Vars{
		templates.VarRepo:        meta.Repo,
		templates.VarAuthor:      meta.Maintainer,
		templates.VarDescription: meta.Description,
	}
	if err := e.render("pyproject_template.toml", PyprojectPath, vars); err != nil {
		return e.res, err
	}

	c.say("Poetry environment created. Add dependencies manually or use `cat requirements.txt|xargs poetry add` on Linux")
	return e.res, nil
}

// Virtualenv creates ./env and installs requirements.txt into it when the file exists.
func Virtualenv(ctx context.Context, c *Context) (*Result, error) {
	e := c.emitter("virtualenv")

	platform, err := shell.PlatformFor(c.GOOS)
	if err != nil {
		return e.res, err
	}

	c.say("Creating virtual environment and installing requirements...")

	hasRequirements, err := exists(c.path(config.RequirementsFile))
	if err != nil {
		return e.res, err
	}

	if !hasRequirements {
		c.say("No requirements.txt file detected, creating basic virtualenv environment")
	}
	if err := shell.Must(ctx, c.Runner, platform.CreateVenv(c.BaseDir)); err != nil {
		return e.res, err
	}
	e.res.addDir(shell.EnvDir)

	if hasRequirements {
		if err := shell.Must(ctx, c.Runner, platform.InstallRequirements(c.BaseDir)); err != nil {
			return e.res, err
		}
		c.say(platform.ActivateHint)
	}

	e.log.Debug("virtual environment ready", "dir", shell.EnvDir, "requirements", hasRequirements)
	return e.res, nil
}

// Environment runs the dependency management tail shared by most commands:
// Docker if requested, else Poetry if requested, else Virtualenv.
func Environment(ctx context.Context, c *Context, opts EnvOptions) (*Result, error) {
	switch opts.Kind() {
	case EnvDocker:
		return Docker(c)
	case EnvPoetry:
		return Poetry(c, opts.Meta)
	default:
		return Virtualenv(ctx, c)
	}
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
}
