// Package config resolves pyrepo's tool settings and persists the project's
// configuration record.
package config

import (
	"context"
	"os"

	"github.com/pyrepo/cli/internal/output"
	"github.com/pyrepo/cli/internal/shell"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from the settings file.
	SourceConfig ConfigSource = "config"
	// SourceDetected indicates value was read from the host.
	SourceDetected ConfigSource = "detected"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one setting with the source that won and the values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// candidate is one source's value in precedence order.
type candidate struct {
	source ConfigSource
	value  string
}

// resolve picks the first non-empty candidate and records the rest as shadowed.
func resolve(key string, candidates ...candidate) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return rv
}

// Settings holds every resolved tool setting for one invocation.
type Settings struct {
	ProjectDir    ResolvedValue
	PythonVersion ResolvedValue
	TemplatesDir  ResolvedValue
	RecordFile    ResolvedValue
}

// Values returns the settings in a stable order for logging.
func (s *Settings) Values() []ResolvedValue {
	return []ResolvedValue{s.ProjectDir, s.PythonVersion, s.TemplatesDir, s.RecordFile}
}

// ResolveOptions carries the flag values and collaborators for ResolveSettings.
type ResolveOptions struct {
	DirFlag           string
	PythonVersionFlag string
	TemplatesDirFlag  string
	RecordFileFlag    string

	// Loader reads env and file values. Nil means NewLoader().
	Loader *Loader

	// DetectPython reports the host interpreter version. Nil or failing means the default is used.
	DetectPython func(ctx context.Context) (string, error)
}

// ResolveSettings resolves each setting using precedence
// flag > PYREPO_* env > settings file > detected > default.
// The project directory cannot come from the settings file because the file lives in it.
func ResolveSettings(ctx context.Context, opts ResolveOptions) (*Settings, error) {
	loader := opts.Loader
	if loader == nil {
		loader = NewLoader()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	s := &Settings{}
	s.ProjectDir = resolve(KeyProjectDir,
		candidate{SourceFlag, opts.DirFlag},
		candidate{SourceEnv, loader.Env(KeyProjectDir)},
		candidate{SourceDefault, cwd},
	)

	file, err := loader.LoadFile(s.ProjectDir.Value)
	if err != nil {
		return nil, err
	}

	s.TemplatesDir = resolve(KeyTemplatesDir,
		candidate{SourceFlag, opts.TemplatesDirFlag},
		candidate{SourceEnv, loader.Env(KeyTemplatesDir)},
		candidate{SourceConfig, file.TemplatesDir},
	)
	if s.TemplatesDir.Value != "" {
		expanded, err := ExpandPath(s.TemplatesDir.Value)
		if err != nil {
			return nil, err
		}
		s.TemplatesDir.Value = expanded
	}

	s.RecordFile = resolve(KeyRecordFile,
		candidate{SourceFlag, opts.RecordFileFlag},
		candidate{SourceEnv, loader.Env(KeyRecordFile)},
		candidate{SourceConfig, file.RecordFile},
		candidate{SourceDefault, DefaultRecordFile},
	)

	python := resolve(KeyPythonVersion,
		candidate{SourceFlag, opts.PythonVersionFlag},
		candidate{SourceEnv, loader.Env(KeyPythonVersion)},
		candidate{SourceConfig, file.PythonVersion},
	)
	if python.Source == "" {
		python = detectPython(ctx, opts.DetectPython)
	}
	normalized, err := shell.NormalizePythonVersion(python.Value)
	if err != nil {
		return nil, err
	}
	python.Value = normalized
	s.PythonVersion = python

	return s, nil
}

func detectPython(ctx context.Context, detect func(context.Context) (string, error)) ResolvedValue {
	if detect != nil {
		v, err := detect(ctx)
		if err == nil && v != "" {
			return resolve(KeyPythonVersion, candidate{SourceDetected, v})
		}
		output.Debug("python detection failed, using default", "error", err, "default", shell.DefaultPythonVersion)
	}
	return resolve(KeyPythonVersion, candidate{SourceDefault, shell.DefaultPythonVersion})
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
