package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pyrepo/cli/internal/cmdtypes"
	"github.com/pyrepo/cli/internal/config"
	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/output"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "inspect",
		Short: "Print the saved configuration",
		Long: `Print the configuration record written by config or easy-setup.

Output formats:
  text   KEY : value lines in file order (default)
  table  a two-column table
  yaml   a YAML mapping
  json   a JSON object`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipPythonDetect: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, ok := output.ParseOutputFormat(outputFlag)
			if !ok {
				return oerrors.AsExitError(oerrors.NewValidationError(
					fmt.Sprintf("unknown output format %q", outputFlag),
					"output",
					fmt.Sprintf("Use one of: %s.", strings.Join(output.ValidFormats(), ", ")),
				))
			}

			rec, err := config.Load(cfg.Paths.Record)
			if err != nil {
				return oerrors.AsExitError(err)
			}
			return oerrors.AsExitError(writeRecord(cmd.OutOrStdout(), rec, format))
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", string(output.FormatText),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
	return c
}

func writeRecord(w io.Writer, rec *config.Record, format output.OutputFormat) error {
	switch format {
	case output.FormatTable:
		fmt.Fprintln(w, output.RecordTable(rec.Keys(), rec.Map()))
	case output.FormatYAML:
		data, err := yaml.Marshal(rec.Map())
		if err != nil {
			return fmt.Errorf("encoding record as yaml: %w", err)
		}
		fmt.Fprint(w, string(data))
	case output.FormatJSON:
		data, err := json.MarshalIndent(rec.Map(), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding record as json: %w", err)
		}
		fmt.Fprintln(w, string(data))
	default:
		for _, k := range rec.Keys() {
			v, _ := rec.Get(k)
			fmt.Fprintf(w, "%s : %s\n", strings.ToUpper(k), v)
		}
	}
	return nil
}
