package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pyrepo/cli/internal/cmdtypes"
	"github.com/pyrepo/cli/internal/cmdutil"
	"github.com/pyrepo/cli/internal/generator"
	"github.com/pyrepo/cli/internal/output"
	"github.com/pyrepo/cli/internal/params"
)

// NewEasySetupCmd creates the easy-setup command.
func NewEasySetupCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	schema := params.EasySetupSchema

	c := &cobra.Command{
		Use:   "easy-setup",
		Short: "Save a basic configuration and set up CI and a virtualenv",
		Long: `Save the repository name and description, then create GitHub Actions
workflows without docker and a virtual environment in ./env.

Values not given as flags are prompted for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := &cmdutil.Collector{}
			err := runEasySetup(cmd, cfg, schema, c)
			return cmdutil.Finish(cmd.OutOrStdout(), cfg, c, err)
		},
	}

	schema.AddFlags(c.Flags())
	c.Flags().SetNormalizeFunc(params.NormalizeAliases)
	return c
}

func runEasySetup(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, schema params.Schema, c *cmdutil.Collector) error {
	out := cmd.OutOrStdout()

	v, err := promptValues(cmd, cfg, schema)
	if err != nil {
		return err
	}
	if err := saveRecord(out, cfg, schema, v); err != nil {
		return err
	}
	if err := c.Add(generator.GitHubActions(cfg.Gen, false)); err != nil {
		return err
	}
	if err := c.Add(generator.Virtualenv(cmd.Context(), cfg.Gen)); err != nil {
		return err
	}
	cmdutil.Say(out, output.FormatCheckmark("Basic Repository Setup Complete"))
	return nil
}
