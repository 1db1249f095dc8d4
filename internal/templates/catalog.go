package templates

import (
	"fmt"
	"sort"

	oerrors "github.com/pyrepo/cli/internal/errors"
)

// Kind describes how a generator consumes a template.
type Kind string

const (
	// KindRendered templates have their placeholders substituted before writing.
	KindRendered Kind = "rendered"

	// KindRequirements templates are dependency lists merged into requirements.txt.
	KindRequirements Kind = "requirements"

	// KindVerbatim templates are copied byte for byte.
	KindVerbatim Kind = "verbatim"
)

// Placeholder names bound by generators.
const (
	VarPyVersion   = "pyversion"
	VarCodecov     = "codecov"
	VarGitHub      = "github"
	VarRepo        = "repo"
	VarAuthor      = "author"
	VarDescription = "description"
)

// Template describes one payload and the placeholder names it may use.
type Template struct {
	// Name is the payload file name within the templates directory.
	Name string

	// Description is shown next to generated files.
	Description string

	// Kind is how generators consume the payload.
	Kind Kind

	// Vars is the exact set of placeholder names a generator binds for this payload.
	Vars []string
}

var (
	pyOnly   = []string{VarPyVersion}
	workflow = []string{VarPyVersion, VarCodecov, VarGitHub}
)

// catalog is the registry of every template a generator may select.
var catalog = map[string]Template{}

func register(kind Kind, vars []string, name, description string) {
	catalog[name] = Template{Name: name, Description: description, Kind: kind, Vars: vars}
}

func init() {
	// CI
	register(KindRendered, workflow, "workflow_master_template_docker.yml", "master branch workflow")
	register(KindRendered, workflow, "workflow_master_template_nodocker.yml", "master branch workflow")
	register(KindRendered, workflow, "workflow_dev_template_docker.yml", "dev branch workflow")
	register(KindRendered, workflow, "workflow_dev_template_nodocker.yml", "dev branch workflow")
	register(KindRendered, pyOnly, "config_template_ecr.yml", "CircleCI pipeline with ECR push")
	register(KindRendered, pyOnly, "config_template_docker_noecr.yml", "CircleCI pipeline with docker build")
	register(KindRendered, pyOnly, "config_template_noecr.yml", "CircleCI pipeline")
	register(KindVerbatim, nil, "lambda_template.yml", "Lambda deploy workflow")

	// Environment
	register(KindRendered, pyOnly, "Dockerfile_proj", "container image")
	register(KindRendered, pyOnly, ".dockerignore", "build context exclusions")
	register(KindRendered, []string{VarRepo, VarPyVersion, VarAuthor, VarDescription}, "pyproject_template.toml", "poetry project")

	// Flask and Postgres
	register(KindRendered, pyOnly, "flask_app.py", "Flask application")
	register(KindRequirements, nil, "flask_requirements.txt", "")
	register(KindRendered, pyOnly, "flask_postgres.py", "Postgres models and CLI")
	register(KindRendered, pyOnly, "flask_postgres_README.md", "Postgres setup notes")
	register(KindRequirements, nil, "flask_postgres_requirements.txt", "")

	// FastAPI
	register(KindRendered, pyOnly, "fastapi_app.py", "FastAPI application")
	register(KindRendered, pyOnly, "fastapi_models.py", "ORM models")
	register(KindRendered, pyOnly, "fastapi_database.py", "database session")
	register(KindVerbatim, nil, "fastapi_layout.html", "base page layout")
	register(KindVerbatim, nil, "fastapi_home.html", "home page")
	register(KindRequirements, nil, "fastapi_requirements.txt", "")

	// Dash
	register(KindRendered, pyOnly, "dash_basic_template.py", "Dash application")
	register(KindRequirements, nil, "dash_basic_requirements.txt", "")
	register(KindRendered, pyOnly, "dash_gis_template.py", "Dash GIS application")
	register(KindRequirements, nil, "dash_gis_requirements.txt", "")

	// ML
	register(KindRendered, pyOnly, "automl.py", "AutoML training script")
	register(KindRequirements, nil, "automl_requirements.txt", "")
	register(KindRendered, pyOnly, "ingest.py", "ingest stage")
	register(KindRendered, pyOnly, "clean.py", "clean stage")
	register(KindRendered, pyOnly, "validate.py", "validate stage")
	register(KindRendered, pyOnly, "profile.py", "profile stage")
	register(KindRendered, pyOnly, "model.py", "model stage")
	register(KindRendered, pyOnly, "dvc.yaml", "DVC pipeline")
	register(KindRendered, pyOnly, "params.yaml", "pipeline parameters")
	register(KindRequirements, nil, "fullml_requirements.txt", "")
}

// Lookup returns a template by name.
func Lookup(name string) (Template, error) {
	t, ok := catalog[name]
	if !ok {
		return Template{}, oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("unknown template %q", name))
	}
	return t, nil
}

// Names returns every catalogued template name in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the file description for a template, or "" when unknown.
func Describe(name string) string {
	return catalog[name].Description
}
