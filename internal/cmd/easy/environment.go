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

// NewDockerCmd creates the easy docker command.
func NewDockerCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "docker",
		Short: "Create a Dockerfile and .dockerignore",
	}
	return newFeatureCmd(cfg, params.DockerSchema, c, func(params.Values) step {
		return func(_ context.Context, gen *generator.Context, _ io.Writer, col *cmdutil.Collector) error {
			return col.Add(generator.Docker(gen))
		}
	})
}

// NewVirtualenvCmd creates the easy virtualenv command.
func NewVirtualenvCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "virtualenv",
		Short: "Create a virtual environment in ./env",
		Long: `Create a virtual environment in ./env with the host Python.

When requirements.txt exists it is installed into the environment.`,
	}
	return newFeatureCmd(cfg, params.VirtualenvSchema, c, func(params.Values) step {
		return func(ctx context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			cmdutil.Say(out, "Setting up Virtualenv Virtual Environment Configuration...")
			if err := col.Add(generator.Virtualenv(ctx, gen)); err != nil {
				return err
			}
			cmdutil.Say(out, "Setup of virtual environment complete, environment located in ./env folder")
			return nil
		}
	})
}

// NewPoetryCmd creates the easy poetry command.
func NewPoetryCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "poetry",
		Short: "Create pyproject.toml for poetry",
		Long: `Create pyproject.toml for poetry.

--repo, --maintain and --description are all required.`,
	}
	return newFeatureCmd(cfg, params.PoetrySchema, c, func(v params.Values) step {
		return func(_ context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			cmdutil.Say(out, "Setting up Poetry Virtual Environment Configuration...")
			if err := col.Add(generator.Poetry(gen, cmdutil.ProjectMeta(v))); err != nil {
				return err
			}
			cmdutil.Say(out, "Poetry Setup Complete, see configuration in pyproject.toml")
			return nil
		}
	})
}
