package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Env(t *testing.T) {
	t.Setenv("PYREPO_PYTHON_VERSION", "3.12")
	t.Setenv("PYREPO_RECORD_FILE", "pyrepo.ini")

	l := NewLoader()
	assert.Equal(t, "3.12", l.Env(KeyPythonVersion))
	assert.Equal(t, "pyrepo.ini", l.Env(KeyRecordFile))
	assert.Equal(t, "", l.Env(KeyTemplatesDir))
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "python_version: \"3.10\"\ntemplates_dir: ./tpl\nrecord_file: settings.ini\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(content), 0o644))

	s, err := NewLoader().LoadFile(dir)
	require.NoError(t, err)
	assert.Equal(t, "3.10", s.PythonVersion)
	assert.Equal(t, "./tpl", s.TemplatesDir)
	assert.Equal(t, "settings.ini", s.RecordFile)
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	s, err := NewLoader().LoadFile(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &FileSettings{}, s)
}

func TestLoader_LoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte("python_version: [\n"), 0o644))

	_, err := NewLoader().LoadFile(dir)
	assert.Error(t, err)
}
