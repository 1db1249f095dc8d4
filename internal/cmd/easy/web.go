package easy

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pyrepo/cli/internal/cmdtypes"
	"github.com/pyrepo/cli/internal/cmdutil"
	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/generator"
	"github.com/pyrepo/cli/internal/params"
)

const (
	msgActionsCreated = "Github actions created"
	msgFlaskComplete  = "Flask Application setup is complete. See configuration in flask/flask_app.py"
)

// NewFlaskCmd creates the easy flask command.
func NewFlaskCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "flask",
		Short: "Create a Flask application",
		Long: `Create a Flask application in flask/ together with GitHub Actions workflows,
then set up the environment.`,
		Example: `  pyrepo easy flask -r myapp -d "My app" -m jane --docker`,
	}
	return newFeatureCmd(cfg, params.FlaskSchema, c, func(v params.Values) step {
		return func(ctx context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			if err := col.Add(generator.GitHubActions(gen, v.Bool(params.Docker.Name))); err != nil {
				return err
			}
			cmdutil.Say(out, msgActionsCreated)
			if err := col.Add(generator.Flask(gen)); err != nil {
				return err
			}
			cmdutil.Say(out, msgFlaskComplete)
			return environment(ctx, gen, col, v)
		}
	})
}

// NewPostgresCmd creates the easy postgres command.
func NewPostgresCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "postgres",
		Short: "Add a Postgres database to a Flask application",
		Long: `Create the Flask application with its Postgres integration files.

Postgres is only available with Flask, so --flask is required.`,
	}
	return newFeatureCmd(cfg, params.PostgresSchema, c, func(v params.Values) step {
		return func(ctx context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			if err := generator.RequireFlask(v.Bool(params.Flask.Name), true); err != nil {
				return err
			}
			if err := col.Add(generator.Flask(gen)); err != nil {
				return err
			}
			cmdutil.Say(out, msgFlaskComplete)
			cmdutil.Say(out, "Creating Postgres files...")
			if err := col.Add(generator.Postgres(gen)); err != nil {
				return err
			}
			cmdutil.Say(out, "Postgres integration files have been setup. Please see flask_postgres_README.md "+
				"for instructions on how to set up Postgres credentials and DB tables via CLI.")
			return environment(ctx, gen, col, v)
		}
	})
}

// NewFastAPICmd creates the easy fastapi command.
func NewFastAPICmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "fastapi",
		Short: "Create a FastAPI application",
		Long: `Create a FastAPI application in fastapi/ together with GitHub Actions workflows,
then set up the environment.`,
	}
	return newFeatureCmd(cfg, params.FastAPISchema, c, func(v params.Values) step {
		return func(ctx context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			if err := col.Add(generator.GitHubActions(gen, v.Bool(params.Docker.Name))); err != nil {
				return err
			}
			cmdutil.Say(out, msgActionsCreated)
			if err := col.Add(generator.FastAPI(gen)); err != nil {
				return err
			}
			cmdutil.Say(out, "Navigate to and run fastapi/fastapi_app.py to start your app")
			return environment(ctx, gen, col, v)
		}
	})
}

// NewDashCmd creates the easy dash command.
func NewDashCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "dash",
		Short: "Create a Dash front end",
		Long: `Create a Dash front end in dash-basic/ or dash-gis/, then set up the environment.

Without --gis the basic front end is created.`,
	}
	return newFeatureCmd(cfg, params.DashSchema, c, func(v params.Values) step {
		return func(ctx context.Context, gen *generator.Context, out io.Writer, col *cmdutil.Collector) error {
			if v.Bool(params.Basic.Name) && v.Bool(params.GIS.Name) {
				return oerrors.NewValidationError("--basic and --gis cannot be used together", "app-type",
					"Pass one of --basic or --gis.")
			}
			t := generator.DashBasic
			if v.Bool(params.GIS.Name) {
				t = generator.DashGIS
			}
			cmdutil.Say(out, fmt.Sprintf("Importing %s Dash files...", t))
			if err := col.Add(generator.Dash(gen, t)); err != nil {
				return err
			}
			cmdutil.Say(out, fmt.Sprintf("Dash files have been setup. Run Python %s/dash_%s_template.py to launch server", t.Dir(), t))
			return environment(ctx, gen, col, v)
		}
	})
}
