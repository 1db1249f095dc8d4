package cmdutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyrepo/cli/internal/cmdtypes"
	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/generator"
	"github.com/pyrepo/cli/internal/output"
)

func testConfig() *cmdtypes.GlobalConfig {
	return &cmdtypes.GlobalConfig{Gen: &generator.Context{BaseDir: "/work/demo"}}
}

func TestCollector_AddPassesErrorThrough(t *testing.T) {
	c := &Collector{}
	boom := errors.New("boom")

	err := c.Add(&generator.Result{Files: []generator.File{{Path: "a.py", Status: output.StatusCreated}}}, boom)
	assert.Equal(t, boom, err)
	assert.Equal(t, []string{"a.py"}, c.Result().Paths())

	require.NoError(t, c.Add(&generator.Result{Files: []generator.File{{Path: "a.py", Status: output.StatusOverwritten}}}, nil))
	assert.Equal(t, []string{"a.py"}, c.Result().Paths())
}

func TestPrintSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, testConfig(), &generator.Result{})
	assert.Empty(t, buf.String())
}

func TestFinish(t *testing.T) {
	c := &Collector{}
	_ = c.Add(&generator.Result{Files: []generator.File{{Path: "flask/flask_app.py", Status: output.StatusCreated}}}, nil)

	var buf bytes.Buffer
	err := Finish(&buf, testConfig(), c, oerrors.NewShellOutError("python3 -m venv env", 1, nil))
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, oerrors.ExitEnvironmentError, exitErr.Code)
	assert.Contains(t, buf.String(), "demo")
	assert.Contains(t, buf.String(), "flask_app.py")

	buf.Reset()
	assert.NoError(t, Finish(&buf, testConfig(), &Collector{}, nil))
	assert.Empty(t, buf.String())
}
