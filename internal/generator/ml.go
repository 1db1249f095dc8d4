package generator

import (
	"context"
	"path"

	"github.com/pyrepo/cli/internal/shell"
)

// MLDir holds the ML pipeline files.
const MLDir = "ml"

// FullMLStages are the pipeline files written by FullML, in write order.
var FullMLStages = []string{"ingest.py", "clean.py", "validate.py", "profile.py", "model.py", "dvc.yaml", "params.yaml"}

// MLDataDirs are created under ml/data for pipeline artifacts.
var MLDataDirs = []string{"raw", "processed", "results", "external", "profile_reports"}

// AutoML writes the mljar AutoML script and merges its requirements.
func AutoML(c *Context) (*Result, error) {
	e := c.emitter("automl")
	c.say("Creating AutoML Implementation...")

	if err := e.render("automl.py", MLDir+"/automl.py", nil); err != nil {
		return e.res, err
	}
	if err := e.mergeRequirements("automl_requirements.txt"); err != nil {
		return e.res, err
	}

	c.say("AutoML Implementation created. See ml/ directory to begin.")
	return e.res, nil
}

// FullML writes the DVC pipeline stages and merges their requirements.
func FullML(c *Context) (*Result, error) {
	e := c.emitter("fullml")
	c.say("Creating Full ML Pipeline Implementation...")

	for _, name := range FullMLStages {
		if err := e.render(name, MLDir+"/"+name, nil); err != nil {
			return e.res, err
		}
	}
	if err := e.mergeRequirements("fullml_requirements.txt"); err != nil {
		return e.res, err
	}
	return e.res, nil
}

// MLData creates ml/data and its artifact directories.
func MLData(c *Context) (*Result, error) {
	e := c.emitter("fullml")
	for _, dir := range MLDataDirs {
		if err := e.mkdir(path.Join(MLDir, "data", dir)); err != nil {
			return e.res, err
		}
	}
	return e.res, nil
}

// DVCInit runs dvc init with the dvc installed in the project's virtual environment.
func DVCInit(ctx context.Context, c *Context) error {
	platform, err := shell.PlatformFor(c.GOOS)
	if err != nil {
		return err
	}
	return shell.Must(ctx, c.Runner, platform.DVCInit(c.BaseDir))
}
