package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyrepo/cli/internal/cmdtypes"
	"github.com/pyrepo/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show pyrepo version information.

Displays:
  - pyrepo version, commit, and build date
  - the Python version generated files target, and where it came from`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			py := version.PythonInfo{}
			if cfg.Settings != nil {
				py.Version = cfg.Settings.PythonVersion.Value
				py.Source = string(cfg.Settings.PythonVersion.Source)
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.FullVersionString(version.GetInfo(), py))
			return nil
		},
	}
}
