// Package cmd provides CLI command implementations.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pyrepo/cli/internal/cmd/easy"
	"github.com/pyrepo/cli/internal/cmdtypes"
	"github.com/pyrepo/cli/internal/config"
	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/generator"
	"github.com/pyrepo/cli/internal/output"
	"github.com/pyrepo/cli/internal/prompt"
	"github.com/pyrepo/cli/internal/shell"
	"github.com/pyrepo/cli/internal/templates"
	"github.com/pyrepo/cli/internal/version"
)

// skipPythonDetect marks commands that never render templates, so the host
// interpreter is not probed for them.
const skipPythonDetect = "pyrepo/skip-python-detect"

// rootFlags holds the persistent flag values.
type rootFlags struct {
	verbose       bool
	timestamps    bool
	pythonVersion string
	templatesDir  string
	recordFile    string
	dir           string
}

// NewRootCmd creates the root command for the pyrepo CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cmdtypes.GlobalConfig{})
}

// newRootCmd builds the command tree around cfg. Tests pre-fill cfg's overrides.
func newRootCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "pyrepo",
		Short: "Scaffold Python projects",
		Long: `pyrepo scaffolds Python projects.

It writes CI workflows, container and dependency files, web application and
machine learning skeletons from built-in templates, then sets up a docker,
poetry or virtualenv environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, cfg, flags)
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return oerrors.AsExitError(oerrors.NewValidationError(err.Error(), "", "Run with --help to see the accepted flags."))
	})

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	pf.StringVar(&flags.pythonVersion, "python-version", "", "Python version for generated files (env: PYREPO_PYTHON_VERSION)")
	pf.StringVar(&flags.templatesDir, "templates-dir", "", "Directory overriding the built-in templates (env: PYREPO_TEMPLATES_DIR)")
	pf.StringVar(&flags.recordFile, "record-file", "", "Configuration record file (env: PYREPO_RECORD_FILE)")
	pf.StringVarP(&flags.dir, "dir", "C", "", "Project directory (env: PYREPO_DIR)")

	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewEasySetupCmd(cfg))
	rootCmd.AddCommand(NewInspectCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))
	rootCmd.AddCommand(easy.NewEasyCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging, resolves settings and builds the generator context.
func initializeGlobals(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *rootFlags) error {
	logCfg := output.LogConfig{
		Verbose: flags.verbose,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	}
	output.SetupLogging(logCfg)
	cfg.Verbose = flags.verbose

	info := version.GetInfo()
	output.Debug("pyrepo started", "version", info.Version)

	if cfg.GOOS == "" {
		cfg.GOOS = shell.HostOS()
	}
	if cfg.Runner == nil {
		cfg.Runner = shell.NewExecRunner()
	}
	if cfg.DetectPython == nil {
		cfg.DetectPython = hostPython(cfg.GOOS)
	}

	detect := cfg.DetectPython
	if cmd.Annotations[skipPythonDetect] != "" {
		detect = nil
	}

	settings, err := config.ResolveSettings(cmd.Context(), config.ResolveOptions{
		DirFlag:           flags.dir,
		PythonVersionFlag: flags.pythonVersion,
		TemplatesDirFlag:  flags.templatesDir,
		RecordFileFlag:    flags.recordFile,
		DetectPython:      detect,
	})
	if err != nil {
		return oerrors.AsExitError(err)
	}
	config.LogResolvedValues(settings.Values())
	cfg.Settings = settings

	paths, err := config.NewProjectPaths(settings.ProjectDir.Value, settings.RecordFile.Value)
	if err != nil {
		return oerrors.AsExitError(err)
	}
	cfg.Paths = paths

	resolver, err := newResolver(settings.TemplatesDir.Value)
	if err != nil {
		return oerrors.AsExitError(err)
	}

	cfg.Gen = &generator.Context{
		BaseDir:   paths.Root,
		PyVersion: settings.PythonVersion.Value,
		Resolver:  resolver,
		Runner:    cfg.Runner,
		GOOS:      cfg.GOOS,
		Out:       cmd.OutOrStdout(),
	}
	if err := cfg.Gen.Validate(); err != nil {
		return oerrors.AsExitError(err)
	}

	if cfg.Prompter == nil {
		in := cfg.Stdin
		if in == nil {
			in = cmd.InOrStdin()
		}
		cfg.Prompter = prompt.New(in, cmd.OutOrStdout())
	}
	return nil
}

// hostPython detects the interpreter version on the given host.
func hostPython(goos string) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		platform, err := shell.PlatformFor(goos)
		if err != nil {
			return "", err
		}
		return shell.DetectPythonVersion(ctx, platform, shell.ExecProbe)
	}
}

// newResolver returns the embedded templates, or the templates in dir when it is set.
// Problems in an override directory are reported as warnings; a missing template
// still fails the command that needs it.
func newResolver(dir string) (*templates.Resolver, error) {
	if dir == "" {
		return templates.NewResolver(templates.Embedded()), nil
	}

	fsys, err := templates.OpenDir(dir)
	if err != nil {
		return nil, err
	}

	problems, err := templates.CheckPayloads(fsys)
	if err != nil {
		return nil, err
	}
	for _, p := range problems {
		output.Warn("template override", "dir", dir, "problem", p.String(), "file", templates.Describe(p.Template))
	}
	return templates.NewResolver(fsys), nil
}
