package config

import (
	"os"
	"path/filepath"
)

// Default file names in the project directory.
const (
	// DefaultRecordFile keeps the historical name even though the content is INI.
	DefaultRecordFile = "config.toml"

	// SettingsFileName is the optional per-project tool settings file.
	SettingsFileName = ".pyrepo.yaml"

	// RequirementsFile is the project's dependency list.
	RequirementsFile = "requirements.txt"
)

// ProjectPaths contains the well-known paths inside a project directory.
type ProjectPaths struct {
	// Root is the absolute project directory.
	Root string

	// Record is the configuration record file.
	Record string

	// Requirements is the project's requirements.txt.
	Requirements string
}

// NewProjectPaths resolves project paths. A relative record file is placed under root.
func NewProjectPaths(root, recordFile string) (*ProjectPaths, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if recordFile == "" {
		recordFile = DefaultRecordFile
	}
	if !filepath.IsAbs(recordFile) {
		recordFile = filepath.Join(abs, recordFile)
	}
	return &ProjectPaths{
		Root:         abs,
		Record:       recordFile,
		Requirements: filepath.Join(abs, RequirementsFile),
	}, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
