package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Environment variable prefix for pyrepo settings.
const envPrefix = "PYREPO"

// Setting keys shared by flags, environment variables and the settings file.
const (
	KeyProjectDir    = "dir"
	KeyPythonVersion = "python_version"
	KeyTemplatesDir  = "templates_dir"
	KeyRecordFile    = "record_file"
)

// FileSettings holds the values read from the project's settings file.
type FileSettings struct {
	PythonVersion string `mapstructure:"python_version"`
	TemplatesDir  string `mapstructure:"templates_dir"`
	RecordFile    string `mapstructure:"record_file"`
}

// Loader reads tool settings from PYREPO_* environment variables and the
// project's settings file. The two sources are kept apart so the resolver can
// report which one a value came from.
type Loader struct {
	env *viper.Viper
}

// NewLoader creates a new settings loader.
func NewLoader() *Loader {
	env := viper.New()
	env.SetEnvPrefix(envPrefix)

	_ = env.BindEnv(KeyProjectDir, "PYREPO_DIR")
	_ = env.BindEnv(KeyPythonVersion, "PYREPO_PYTHON_VERSION")
	_ = env.BindEnv(KeyTemplatesDir, "PYREPO_TEMPLATES_DIR")
	_ = env.BindEnv(KeyRecordFile, "PYREPO_RECORD_FILE")

	return &Loader{env: env}
}

// Env returns the environment value bound to key, or "".
func (l *Loader) Env(key string) string {
	return l.env.GetString(key)
}

// LoadFile reads the settings file in projectDir. A missing file yields empty settings.
func (l *Loader) LoadFile(projectDir string) (*FileSettings, error) {
	path := filepath.Join(projectDir, SettingsFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileSettings{}, nil
		}
		return nil, fmt.Errorf("checking settings file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var s FileSettings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling settings file %s: %w", path, err)
	}
	return &s, nil
}
