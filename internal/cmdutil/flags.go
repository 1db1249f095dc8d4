// Package cmdutil provides shared command utilities for pyrepo subcommands.
// It centralizes parameter flag binding, configuration record fallback and
// output helpers.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/pyrepo/cli/internal/cmdtypes"
	"github.com/pyrepo/cli/internal/config"
	"github.com/pyrepo/cli/internal/generator"
	"github.com/pyrepo/cli/internal/output"
	"github.com/pyrepo/cli/internal/params"
)

// SchemaFlags holds the flags generated from a parameter schema.
type SchemaFlags struct {
	Schema params.Schema

	// UseConfig fills omitted strings from the configuration record.
	UseConfig bool
}

// NewSchemaFlags creates flags for the given schema.
func NewSchemaFlags(s params.Schema) *SchemaFlags {
	return &SchemaFlags{Schema: s}
}

// AddTo registers one flag per parameter on the given cobra command.
// Commands with string parameters also get --use-config.
func (f *SchemaFlags) AddTo(cmd *cobra.Command) {
	f.Schema.AddFlags(cmd.Flags())
	if len(f.Schema.Strings()) > 0 {
		cmd.Flags().BoolVar(&f.UseConfig, "use-config", false,
			"Fill omitted values from the configuration record")
	}
	cmd.Flags().SetNormalizeFunc(params.NormalizeAliases)
}

// Values reads the parameters and fails when a required one is still missing.
func (f *SchemaFlags) Values(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig) (params.Values, error) {
	v, err := f.Schema.FromFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	if f.UseConfig && len(f.Schema.Missing(v)) > 0 {
		rec, err := config.Load(cfg.Paths.Record)
		if err != nil {
			return nil, err
		}
		if filled := f.Schema.FillFromRecord(v, rec); len(filled) > 0 {
			output.Debug("filled from configuration record", "params", filled, "record", cfg.Paths.Record)
		}
	}

	if err := f.Schema.Validate(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ProjectMeta extracts the pyproject.toml fields from parameter values.
func ProjectMeta(v params.Values) generator.ProjectMeta {
	return generator.ProjectMeta{
		Repo:        v.String(params.Repo.Name),
		Maintainer:  v.String(params.Maintainer.Name),
		Description: v.String(params.Description.Name),
	}
}

// EnvOptions extracts the environment selection from parameter values.
func EnvOptions(v params.Values) generator.EnvOptions {
	return generator.EnvOptions{
		Docker: v.Bool(params.Docker.Name),
		Poetry: v.Bool(params.Poetry.Name),
		Meta:   ProjectMeta(v),
	}
}
