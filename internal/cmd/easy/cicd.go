package easy

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/pyrepo/cli/internal/cmdtypes"
	"github.com/pyrepo/cli/internal/cmdutil"
	"github.com/pyrepo/cli/internal/generator"
	"github.com/pyrepo/cli/internal/params"
)

// NewCCICmd creates the easy cci command.
func NewCCICmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "cci",
		Short: "Create a CircleCI pipeline",
		Long: `Create the CircleCI pipeline in .circleci/config.yml.

--ecr selects the pipeline that pushes to Amazon ECR; otherwise --docker
selects the pipeline that builds a docker image.`,
	}
	return newFeatureCmd(cfg, params.CCISchema, c, func(v params.Values) step {
		return func(_ context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			cmdutil.Say(out, "Setting up CircleCI workflow...")
			if err := col.Add(generator.CircleCI(gen, v.Bool(params.Docker.Name), v.Bool(params.ECR.Name))); err != nil {
				return err
			}
			cmdutil.Say(out, "CircleCI Setup Complete, see configuration in .circleci/config.yml")
			return nil
		}
	})
}

// NewGitHubActionsCmd creates the easy github-actions command.
func NewGitHubActionsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "github-actions",
		Short: "Create GitHub Actions workflows",
		Long: `Create the master and dev branch workflows in .github/workflows.

With --docker the workflows also build and push a container image.`,
	}
	return newFeatureCmd(cfg, params.GitHubActionsSchema, c, func(v params.Values) step {
		return func(_ context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			cmdutil.Say(out, "Setting up Github Actions workflow...")
			if err := col.Add(generator.GitHubActions(gen, v.Bool(params.Docker.Name))); err != nil {
				return err
			}
			cmdutil.Say(out, "Github Actions Setup Complete, see configuration in .github/workflows/workflow_*.yml")
			return nil
		}
	})
}

// NewLambdaWorkflowCmd creates the easy lambda-workflow command.
func NewLambdaWorkflowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "lambda-workflow",
		Short: "Create a GitHub Actions workflow that deploys to AWS Lambda",
	}
	return newFeatureCmd(cfg, params.LambdaWorkflowSchema, c, func(params.Values) step {
		return func(_ context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			cmdutil.Say(out, "Setting up Lambda workflow...")
			if err := col.Add(generator.LambdaWorkflow(gen)); err != nil {
				return err
			}
			cmdutil.Say(out, "Lambda Setup Complete, see configuration in .github/workflows/lambda.yml")
			return nil
		}
	})
}
