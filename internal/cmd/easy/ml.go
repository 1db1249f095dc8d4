package easy

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/pyrepo/cli/internal/cmdtypes"
	"github.com/pyrepo/cli/internal/cmdutil"
	"github.com/pyrepo/cli/internal/generator"
	"github.com/pyrepo/cli/internal/output"
	"github.com/pyrepo/cli/internal/params"
)

// NewAutoMLCmd creates the easy automl command.
func NewAutoMLCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "automl",
		Short: "Create an mljar AutoML script",
		Long: `Create ml/automl.py, then set up the environment.

--repo, --maintain and --description are required only with --poetry.`,
	}
	return newFeatureCmd(cfg, params.AutoMLSchema, c, func(v params.Values) step {
		return func(ctx context.Context, gen *generator.Context, _ io.Writer, col *cmdutil.Collector) error {
			if err := col.Add(generator.AutoML(gen)); err != nil {
				return err
			}
			return environment(ctx, gen, col, v)
		}
	})
}

// NewFullMLCmd creates the easy fullml command.
func NewFullMLCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "fullml",
		Short: "Create a DVC machine learning pipeline",
		Long: `Create the DVC pipeline stages in ml/ and the ml/data directories,
then set up the environment.

dvc init runs only with the virtualenv environment, where dvc was just
installed into ./env. With --docker or --poetry run it yourself once the
environment is built.`,
	}
	return newFeatureCmd(cfg, params.FullMLSchema, c, func(v params.Values) step {
		return func(ctx context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			if err := col.Add(generator.FullML(gen)); err != nil {
				return err
			}
			opts := cmdutil.EnvOptions(v)
			if err := col.Add(generator.Environment(ctx, gen, opts)); err != nil {
				return err
			}
			if err := col.Add(generator.MLData(gen)); err != nil {
				return err
			}
			if opts.Kind() == generator.EnvVirtualenv {
				if err := generator.DVCInit(ctx, gen); err != nil {
					return err
				}
			} else {
				output.Debug("skipping dvc init", "environment", string(opts.Kind()))
				cmdutil.Say(out, "Run `dvc init` once dvc is installed in your environment.")
			}
			cmdutil.Say(out, "Full ML Implementation created. See ml directory or run `dvc status` to begin.")
			return nil
		}
	})
}
