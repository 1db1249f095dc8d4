package generator

import (
	"github.com/pyrepo/cli/internal/templates"
)

// Destinations of the CI generators.
const (
	WorkflowMasterPath = ".github/workflows/workflow_master.yml"
	WorkflowDevPath    = ".github/workflows/workflow_dev.yml"
	CircleCIPath       = ".circleci/config.yml"
	LambdaPath         = ".github/workflows/lambda.yml"
)

// GitHub expressions bound into the workflow templates so they survive rendering.
const (
	CodecovSecret = "${{ secrets.CODECOV_TOKEN }}"
	GitHubSecret  = "${{ secrets.GITHUB_TOKEN }}"
)

// GitHubActions writes the master and dev branch workflows.
func GitHubActions(c *Context, docker bool) (*Result, error) {
	e := c.emitter("github-actions")

	master, dev := "workflow_master_template_nodocker.yml", "workflow_dev_template_nodocker.yml"
	if docker {
		master, dev = "workflow_master_template_docker.yml", "workflow_dev_template_docker.yml"
	}
	vars := templates.Vars{
		templates.VarCodecov: CodecovSecret,
		templates.VarGitHub:  GitHubSecret,
	}

	if err := e.render(master, WorkflowMasterPath, vars); err != nil {
		return e.res, err
	}
	if err := e.render(dev, WorkflowDevPath, vars); err != nil {
		return e.res, err
	}
	return e.res, nil
}

// CircleCI writes the CircleCI pipeline. ECR takes precedence over docker.
func CircleCI(c *Context, docker, ecr bool) (*Result, error) {
	e := c.emitter("circleci")

	name := "config_template_noecr.yml"
	switch {
	case ecr:
		name = "config_template_ecr.yml"
	case docker:
		name = "config_template_docker_noecr.yml"
	}

	if err := e.render(name, CircleCIPath, nil); err != nil {
		return e.res, err
	}
	return e.res, nil
}

// LambdaWorkflow copies the Lambda deploy workflow verbatim.
func LambdaWorkflow(c *Context) (*Result, error) {
	e := c.emitter("lambda")
	if err := e.copy("lambda_template.yml", LambdaPath); err != nil {
		return e.res, err
	}
	return e.res, nil
}
