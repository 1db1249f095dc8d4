package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildDate, info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.2.3",
		GitCommit: "abc123",
		BuildDate: "2024-01-01",
		GoVersion: "go1.25.0",
	}

	s := info.String()
	assert.Contains(t, s, "v1.2.3")
	assert.Contains(t, s, "2024-01-01/abc123")
	assert.Contains(t, s, "go1.25.0")
}

func TestPythonInfoString(t *testing.T) {
	assert.Equal(t, "  Target Version: 3.12 (flag)", PythonInfo{Version: "3.12", Source: "flag"}.String())
	assert.Equal(t, "  Target Version: unknown", PythonInfo{}.String())
}

func TestFullVersionString(t *testing.T) {
	s := FullVersionString(Info{Version: "v0.1.0"}, PythonInfo{Version: "3.11", Source: "default"})
	assert.Contains(t, s, "pyrepo:")
	assert.Contains(t, s, "Python:")
	assert.Contains(t, s, "3.11 (default)")
}
