package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/pyrepo/cli/internal/errors"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultRecordFile)

	entries := []Entry{
		{Key: "repo", Value: "demo"},
		{Key: "author", Value: "Ada"},
		{Key: "docker", Value: true},
		{Key: "postgres", Value: false},
		{Key: "workers", Value: 4},
	}
	require.NoError(t, Save(path, entries))

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"repo", "author", "docker", "postgres", "workers"}, rec.Keys())

	v, ok := rec.Get("docker")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	v, _ = rec.Get("workers")
	assert.Equal(t, "4", v)

	_, ok = rec.Get("missing")
	assert.False(t, ok)
}

func TestSaveLoad_RoundTripValues(t *testing.T) {
	values := map[string]string{
		"plain":         "demo",
		"quoted":        `"quoted"`,
		"single-quoted": `'quoted'`,
		"triple-quote":  `"""`,
		"lead-quote":    `"""tail`,
		"both-quotes":   `it's "x"`,
		"open-quote":    `"it's`,
		"padded":        "  spaced  ",
		"blank":         "   ",
		"empty":         "",
		"comment":       "a # b; c",
		"padded-hash":   " #1 ",
		"backtick":      "run `make`",
		"multi-line":    "first\nsecond",
		"backslash":     `C:\path\`,
		"equals":        "a=b",
	}

	for name, value := range values {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultRecordFile)
			require.NoError(t, Save(path, []Entry{{Key: "value", Value: value}, {Key: "next", Value: "kept"}}))

			rec, err := Load(path)
			require.NoError(t, err)
			got, ok := rec.Get("value")
			require.True(t, ok)
			assert.Equal(t, value, got)

			next, _ := rec.Get("next")
			assert.Equal(t, "kept", next)
		})
	}
}

func TestSave_RejectsUnstorableValues(t *testing.T) {
	for name, value := range map[string]string{
		"multi-line triple quote": "a\n\"\"\"b",
		"padded with both quotes": ` "it's" `,
		"quoted with both quotes": `"it's"`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultRecordFile)
			err := Save(path, []Entry{{Key: "value", Value: value}})
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.NoFileExists(t, path)
		})
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultRecordFile)

	require.NoError(t, Save(path, []Entry{{Key: "repo", Value: "one"}, {Key: "author", Value: "a"}}))
	require.NoError(t, Save(path, []Entry{{Key: "repo", Value: "two"}}))

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"repo": "two"}, rec.Map())
}

func TestSave_WritesMainSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultRecordFile)
	require.NoError(t, Save(path, []Entry{{Key: "repo", Value: "demo"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[main]")
	assert.Contains(t, string(data), "repo")
	assert.Contains(t, string(data), "demo")
}

func TestSave_EmptyKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultRecordFile)
	err := Save(path, []Entry{{Key: "", Value: "x"}})
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.NoFileExists(t, path)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), oerrors.MsgNoConfiguration)
}

func TestLoad_WithoutMainSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[other]\nkey = value\n"), 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, rec.Keys())
}
