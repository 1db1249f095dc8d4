// Package easy provides the `pyrepo easy` command group: one command per feature.
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

// NewEasyCmd creates the easy command group.
func NewEasyCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "easy",
		Short: "Add a single feature to the project",
		Long: `Commands that add one feature to the project in the current directory.

Feature commands write their files at fixed locations, merge the feature's
dependencies into requirements.txt and finish with an environment:
a Dockerfile (--docker), a pyproject.toml (--poetry) or a virtualenv in ./env.`,
	}

	c.AddCommand(
		NewCCICmd(cfg),
		NewGitHubActionsCmd(cfg),
		NewLambdaWorkflowCmd(cfg),
		NewDockerCmd(cfg),
		NewVirtualenvCmd(cfg),
		NewPoetryCmd(cfg),
		NewFlaskCmd(cfg),
		NewPostgresCmd(cfg),
		NewFastAPICmd(cfg),
		NewDashCmd(cfg),
		NewAutoMLCmd(cfg),
		NewFullMLCmd(cfg),
	)

	return c
}

// step is the body of a feature command.
type step func(ctx context.Context, gen *generator.Context, out io.Writer, c *cmdutil.Collector) error

// run executes body and prints the summary of written files.
func run(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, body step) error {
	c := &cmdutil.Collector{}
	err := body(cmd.Context(), cfg.Gen, cmd.OutOrStdout(), c)
	return cmdutil.Finish(cmd.OutOrStdout(), cfg, c, err)
}

// newFeatureCmd builds a command whose flags come from a parameter schema.
// body runs only after every required parameter is present.
func newFeatureCmd(cfg *cmdtypes.GlobalConfig, schema params.Schema, c *cobra.Command,
	body func(v params.Values) step,
) *cobra.Command {
	flags := cmdutil.NewSchemaFlags(schema)
	c.Args = cobra.NoArgs
	c.RunE = func(cmd *cobra.Command, _ []string) error {
		return run(cmd, cfg, func(ctx context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			v, err := flags.Values(cmd, cfg)
			if err != nil {
				return err
			}
			return body(v)(ctx, gen, out, col)
		})
	}
	flags.AddTo(c)
	return c
}

// environment runs the shared dependency management tail.
func environment(ctx context.Context, gen *generator.Context, c *cmdutil.Collector, v params.Values) error {
	return c.Add(generator.Environment(ctx, gen, cmdutil.EnvOptions(v)))
}
