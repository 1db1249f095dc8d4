package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pyrepo/cli/internal/cmdtypes"
	"github.com/pyrepo/cli/internal/cmdutil"
	"github.com/pyrepo/cli/internal/config"
	"github.com/pyrepo/cli/internal/generator"
	"github.com/pyrepo/cli/internal/output"
	"github.com/pyrepo/cli/internal/params"
)

// NewConfigCmd creates the config command.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	schema := params.ConfigSchema

	c := &cobra.Command{
		Use:   "config",
		Short: "Save the project configuration and set up the repository",
		Long: `Save the project configuration and set up every selected feature.

Values not given as flags are prompted for. The answers are saved to the
configuration record (config.toml) before any file is written. Then:

  - a CircleCI pipeline (--circleci) or GitHub Actions workflows
  - a Flask application, optionally with Postgres
  - a FastAPI application
  - basic and GIS Dash front ends
  - the environment: docker, poetry or virtualenv`,
		Example: `  # Answer every question interactively
  pyrepo config

  # Flask with Postgres in docker, no further questions for these flags
  pyrepo config -r myapp -d "My app" -m jane --docker --flask --postgres`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := &cmdutil.Collector{}
			err := runConfig(cmd, cfg, schema, c)
			return cmdutil.Finish(cmd.OutOrStdout(), cfg, c, err)
		},
	}

	schema.AddFlags(c.Flags())
	c.Flags().SetNormalizeFunc(params.NormalizeAliases)
	return c
}

func runConfig(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, schema params.Schema, c *cmdutil.Collector) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	gen := cfg.Gen

	v, err := promptValues(cmd, cfg, schema)
	if err != nil {
		return err
	}
	if err := generator.RequireFlask(v.Bool(params.Flask.Name), v.Bool(params.Postgres.Name)); err != nil {
		return err
	}
	if err := saveRecord(out, cfg, schema, v); err != nil {
		return err
	}

	if v.Bool(params.CircleCI.Name) {
		cmdutil.Say(out, "Creating circleci pipeline")
		err = c.Add(generator.CircleCI(gen, v.Bool(params.Docker.Name), v.Bool(params.ECR.Name)))
	} else {
		cmdutil.Say(out, "Creating github actions workflow...")
		err = c.Add(generator.GitHubActions(gen, v.Bool(params.Docker.Name)))
	}
	if err != nil {
		return err
	}

	if err := configApps(gen, out, c, v); err != nil {
		return err
	}

	if err := c.Add(generator.Environment(ctx, gen, cmdutil.EnvOptions(v))); err != nil {
		return err
	}
	cmdutil.Say(out, output.FormatCheckmark("Repository Setup Complete"))
	return nil
}

// configApps writes the application features selected in v, in fixed order.
func configApps(gen *generator.Context, out io.Writer, c *cmdutil.Collector, v params.Values) error {
	if v.Bool(params.Flask.Name) {
		cmdutil.Say(out, "Create flask application...")
		if err := c.Add(generator.Flask(gen)); err != nil {
			return err
		}
		if v.Bool(params.Postgres.Name) {
			cmdutil.Say(out, "Adding postgres database...")
			if err := c.Add(generator.Postgres(gen)); err != nil {
				return err
			}
		}
	}
	if v.Bool(params.FastAPI.Name) {
		cmdutil.Say(out, "Setting up fastapi application")
		if err := c.Add(generator.FastAPI(gen)); err != nil {
			return err
		}
	}
	if v.Bool(params.DashBasic.Name) {
		cmdutil.Say(out, "Creating Basic Dash Front End")
		if err := c.Add(generator.Dash(gen, generator.DashBasic)); err != nil {
			return err
		}
	}
	if v.Bool(params.DashGIS.Name) {
		cmdutil.Say(out, "Creating GIS Specific Dash Front End")
		if err := c.Add(generator.Dash(gen, generator.DashGIS)); err != nil {
			return err
		}
	}
	return nil
}

// promptValues reads the schema's flags and prompts for the rest.
func promptValues(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, schema params.Schema) (params.Values, error) {
	v, err := schema.FromFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := schema.Prompt(v, cmd.Flags(), cfg.Prompter); err != nil {
		return nil, err
	}
	if err := schema.Validate(v); err != nil {
		return nil, err
	}
	return v, nil
}

// saveRecord replaces the configuration record with v.
func saveRecord(out io.Writer, cfg *cmdtypes.GlobalConfig, schema params.Schema, v params.Values) error {
	cmdutil.Say(out, "\nSetting config...")
	if err := config.Save(cfg.Paths.Record, schema.Entries(v)); err != nil {
		return err
	}
	cmdutil.Say(out, fmt.Sprintf("Settings saved as %s", filepath.Base(cfg.Paths.Record)))
	return nil
}
