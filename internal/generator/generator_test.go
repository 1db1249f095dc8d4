package generator

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/output"
	"github.com/pyrepo/cli/internal/shell"
	"github.com/pyrepo/cli/internal/templates"
	"github.com/pyrepo/cli/internal/testutil"
)

type fixture struct {
	ctx    *Context
	runner *shell.Recorder
	out    *bytes.Buffer
}

func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()
	runner := &shell.Recorder{}
	out := &bytes.Buffer{}
	ctx := &Context{
		BaseDir:   testutil.ProjectDir(t, files),
		PyVersion: "3.12",
		Resolver:  templates.NewResolver(templates.Embedded()),
		Runner:    runner,
		GOOS:      "linux",
		Out:       out,
	}
	require.NoError(t, ctx.Validate())
	return &fixture{ctx: ctx, runner: runner, out: out}
}

func (f *fixture) read(t *testing.T, rel string) string {
	t.Helper()
	return testutil.ReadFile(t, f.ctx.BaseDir, rel)
}

func (f *fixture) commands() []string {
	var cmds []string
	for _, c := range f.runner.Commands() {
		cmds = append(cmds, c.String())
	}
	return cmds
}

func TestGitHubActions_Docker(t *testing.T) {
	f := newFixture(t, nil)

	res, err := GitHubActions(f.ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{WorkflowMasterPath, WorkflowDevPath}, res.Paths())
	assert.Equal(t, []string{WorkflowDevPath, WorkflowMasterPath}, testutil.ListFiles(t, f.ctx.BaseDir))

	for _, p := range []string{WorkflowMasterPath, WorkflowDevPath} {
		content := f.read(t, p)
		assert.Contains(t, content, `python-version: "3.12"`)
		assert.Contains(t, content, CodecovSecret)
		assert.Contains(t, content, GitHubSecret)
		assert.Contains(t, content, "${{ github.actor }}")
		assert.NotContains(t, content, "{{ pyversion }}")
		assert.NotContains(t, content, "{{ codecov }}")
		assert.NotContains(t, content, "{{ github }}")
	}
}

func TestGitHubActions_NoDocker(t *testing.T) {
	f := newFixture(t, nil)

	_, err := GitHubActions(f.ctx, false)
	require.NoError(t, err)

	master := f.read(t, WorkflowMasterPath)
	assert.Contains(t, master, CodecovSecret)
	assert.NotContains(t, master, "docker/build-push-action")
}

func TestGitHubActions_Idempotent(t *testing.T) {
	f := newFixture(t, nil)

	first, err := GitHubActions(f.ctx, true)
	require.NoError(t, err)
	before := f.read(t, WorkflowMasterPath)

	second, err := GitHubActions(f.ctx, true)
	require.NoError(t, err)

	assert.Equal(t, before, f.read(t, WorkflowMasterPath))
	assert.Equal(t, output.StatusCreated, first.Files[0].Status)
	assert.Equal(t, output.StatusOverwritten, second.Files[0].Status)
	assert.Len(t, testutil.ListFiles(t, f.ctx.BaseDir), 2)
}

func TestCircleCI_Selection(t *testing.T) {
	tests := []struct {
		name   string
		docker bool
		ecr    bool
		want   string
	}{
		{"plain", false, false, "config_template_noecr.yml"},
		{"docker", true, false, "config_template_docker_noecr.yml"},
		{"ecr", false, true, "config_template_ecr.yml"},
		{"ecr wins over docker", true, true, "config_template_ecr.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)

			_, err := CircleCI(f.ctx, tt.docker, tt.ecr)
			require.NoError(t, err)

			want, err := f.ctx.Resolver.Render(tt.want, templates.Vars{templates.VarPyVersion: "3.12"})
			require.NoError(t, err)
			assert.Equal(t, want, f.read(t, CircleCIPath))
			assert.Equal(t, []string{CircleCIPath}, testutil.ListFiles(t, f.ctx.BaseDir))
		})
	}
}

func TestLambdaWorkflow_Verbatim(t *testing.T) {
	f := newFixture(t, nil)

	_, err := LambdaWorkflow(f.ctx)
	require.NoError(t, err)

	raw, err := f.ctx.Resolver.Raw("lambda_template.yml")
	require.NoError(t, err)
	assert.Equal(t, raw, f.read(t, LambdaPath))
}

func TestDocker(t *testing.T) {
	f := newFixture(t, nil)

	res, err := Docker(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{DockerfilePath, DockerignorePath}, res.Paths())
	assert.True(t, strings.HasPrefix(f.read(t, DockerfilePath), "FROM python:3.12-slim"))
	assert.Contains(t, f.out.String(), "Dockerfile has been integrated.")
}

func TestPoetry(t *testing.T) {
	f := newFixture(t, nil)

	_, err := Poetry(f.ctx, ProjectMeta{Repo: "demo", Maintainer: "Ada", Description: "a demo"})
	require.NoError(t, err)

	content := f.read(t, PyprojectPath)
	assert.Contains(t, content, `name = "demo"`)
	assert.Contains(t, content, `description = "a demo"`)
	assert.Contains(t, content, `authors = ["Ada"]`)
	assert.Contains(t, content, `python = "^3.12"`)
	assert.Empty(t, f.runner.Commands())
}

func TestVirtualenv_WithRequirements(t *testing.T) {
	f := newFixture(t, map[string]string{"requirements.txt": "requests\n"})

	res, err := Virtualenv(context.Background(), f.ctx)
	require.NoError(t, err)

	base := f.ctx.BaseDir
	assert.Equal(t, []string{
		"python3 -m venv env",
		filepath.Join(base, "env/bin/python") + " -m pip install -r requirements.txt",
	}, f.commands())
	for _, c := range f.runner.Commands() {
		assert.Equal(t, base, c.Dir)
	}
	assert.Equal(t, []string{"env"}, res.Dirs)
	assert.Empty(t, res.Files)
	assert.Contains(t, f.out.String(), "source env/bin/activate")
}

func TestVirtualenv_WithoutRequirements(t *testing.T) {
	f := newFixture(t, nil)

	_, err := Virtualenv(context.Background(), f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"python3 -m venv env"}, f.commands())
	assert.Contains(t, f.out.String(), "No requirements.txt file detected")
}

func TestVirtualenv_Windows(t *testing.T) {
	f := newFixture(t, map[string]string{"requirements.txt": "requests\n"})
	f.ctx.GOOS = "windows"

	_, err := Virtualenv(context.Background(), f.ctx)
	require.NoError(t, err)

	cmds := f.runner.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, "python", cmds[0].Name)
	assert.True(t, strings.HasSuffix(cmds[1].Name, `env\Scripts\python.exe`))
}

func TestVirtualenv_UnsupportedOS(t *testing.T) {
	f := newFixture(t, nil)
	f.ctx.GOOS = "darwin"

	_, err := Virtualenv(context.Background(), f.ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrUnsupportedOS))
	assert.Equal(t, oerrors.ExitEnvironmentError, oerrors.ExitCodeFromError(err))
	assert.Empty(t, f.runner.Commands())
}

func TestVirtualenv_ShellOutFailure(t *testing.T) {
	f := newFixture(t, map[string]string{"requirements.txt": "requests\n"})
	f.runner.ExitCodes = map[string]int{"python3 -m venv env": 1}

	_, err := Virtualenv(context.Background(), f.ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrShellOut))
	// install is not attempted after the venv failed
	assert.Len(t, f.runner.Commands(), 1)
}

func TestEnvironment_Selection(t *testing.T) {
	tests := []struct {
		name  string
		opts  EnvOptions
		kind  EnvKind
		files []string
		cmds  int
	}{
		{"docker wins", EnvOptions{Docker: true, Poetry: true}, EnvDocker, []string{DockerignorePath, DockerfilePath}, 0},
		{"poetry", EnvOptions{Poetry: true}, EnvPoetry, []string{PyprojectPath}, 0},
		{"virtualenv", EnvOptions{}, EnvVirtualenv, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			assert.Equal(t, tt.kind, tt.opts.Kind())

			_, err := Environment(context.Background(), f.ctx, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.files, testutil.ListFiles(t, f.ctx.BaseDir))
			assert.Len(t, f.runner.Commands(), tt.cmds)
		})
	}
}

func TestFlask(t *testing.T) {
	f := newFixture(t, map[string]string{"requirements.txt": "requests\n"})

	res, err := Flask(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"flask/flask_app.py", "requirements.txt"}, res.Paths())

	feature, err := f.ctx.Resolver.Raw("flask_requirements.txt")
	require.NoError(t, err)
	assert.Equal(t, feature+"\nrequests\n", f.read(t, "requirements.txt"))
	assert.Contains(t, f.read(t, "flask/flask_app.py"), "Python 3.12")
}

func TestFlask_MissingRequirements(t *testing.T) {
	f := newFixture(t, nil)

	_, err := Flask(f.ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	// the app file written before the failure stays
	assert.Equal(t, []string{"flask/flask_app.py"}, testutil.ListFiles(t, f.ctx.BaseDir))
}

func TestFlaskThenPostgres_MergesTwice(t *testing.T) {
	f := newFixture(t, map[string]string{"requirements.txt": "requests\n"})

	_, err := Flask(f.ctx)
	require.NoError(t, err)
	_, err = Postgres(f.ctx)
	require.NoError(t, err)

	flaskReqs, _ := f.ctx.Resolver.Raw("flask_requirements.txt")
	pgReqs, _ := f.ctx.Resolver.Raw("flask_postgres_requirements.txt")
	assert.Equal(t, pgReqs+"\n"+flaskReqs+"\nrequests\n", f.read(t, "requirements.txt"))
	assert.Equal(t, []string{
		"flask/flask_app.py",
		"flask/flask_postgres.py",
		"flask/flask_postgres_README.md",
		"requirements.txt",
	}, testutil.ListFiles(t, f.ctx.BaseDir))
}

func TestRequireFlask(t *testing.T) {
	assert.NoError(t, RequireFlask(true, true))
	assert.NoError(t, RequireFlask(false, false))
	assert.NoError(t, RequireFlask(true, false))

	err := RequireFlask(false, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrInvalidCombination))
	assert.Contains(t, err.Error(), oerrors.MsgFlaskRequired)
}

func TestFastAPI(t *testing.T) {
	f := newFixture(t, map[string]string{"requirements.txt": ""})

	_, err := FastAPI(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"fastapi/fastapi_app.py",
		"fastapi/fastapi_database.py",
		"fastapi/fastapi_home.html",
		"fastapi/fastapi_layout.html",
		"fastapi/fastapi_models.py",
		"requirements.txt",
	}, testutil.ListFiles(t, f.ctx.BaseDir))

	raw, err := f.ctx.Resolver.Raw("fastapi_home.html")
	require.NoError(t, err)
	assert.Equal(t, raw, f.read(t, "fastapi/fastapi_home.html"))
}

func TestDash(t *testing.T) {
	for _, dt := range []DashType{DashBasic, DashGIS} {
		t.Run(string(dt), func(t *testing.T) {
			f := newFixture(t, map[string]string{"requirements.txt": ""})

			_, err := Dash(f.ctx, dt)
			require.NoError(t, err)
			assert.Equal(t, []string{
				dt.Dir() + "/dash_" + string(dt) + "_template.py",
				"requirements.txt",
			}, testutil.ListFiles(t, f.ctx.BaseDir))
		})
	}
}

func TestParseDashType(t *testing.T) {
	got, err := ParseDashType("gis")
	require.NoError(t, err)
	assert.Equal(t, DashGIS, got)

	_, err = ParseDashType("maps")
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestAutoML(t *testing.T) {
	f := newFixture(t, map[string]string{"requirements.txt": "numpy\n"})

	_, err := AutoML(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ml/automl.py", "requirements.txt"}, testutil.ListFiles(t, f.ctx.BaseDir))
	assert.True(t, strings.HasSuffix(f.read(t, "requirements.txt"), "\nnumpy\n"))
	assert.Contains(t, f.out.String(), "AutoML Implementation created. See ml/ directory to begin.")
}

func TestFullML_AndData(t *testing.T) {
	f := newFixture(t, map[string]string{"requirements.txt": ""})

	_, err := FullML(f.ctx)
	require.NoError(t, err)

	var want []string
	for _, s := range FullMLStages {
		want = append(want, "ml/"+s)
	}
	want = append(want, "requirements.txt")
	assert.ElementsMatch(t, want, testutil.ListFiles(t, f.ctx.BaseDir))

	res, err := MLData(f.ctx)
	require.NoError(t, err)
	assert.Len(t, res.Dirs, len(MLDataDirs))
	for _, d := range MLDataDirs {
		assert.DirExists(t, filepath.Join(f.ctx.BaseDir, "ml", "data", d))
	}

	// directories already present are fine
	_, err = MLData(f.ctx)
	require.NoError(t, err)
}

func TestDVCInit(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, DVCInit(context.Background(), f.ctx))
	assert.Equal(t, []string{filepath.Join(f.ctx.BaseDir, "env/bin/dvc") + " init"}, f.commands())
}

func TestResult_MergeAndTree(t *testing.T) {
	a := &Result{Files: []File{{Path: "a", Status: output.StatusCreated}}, Dirs: []string{"env"}}
	b := &Result{Files: []File{{Path: "a", Status: output.StatusOverwritten}, {Path: "b", Status: output.StatusCreated}}}

	a.Merge(b).Merge(nil)
	assert.Equal(t, []string{"a", "b"}, a.Paths())
	assert.Equal(t, []output.TreeEntry{
		{Path: "env", Status: output.StatusDirectory},
		{Path: "a", Status: output.StatusCreated},
		{Path: "b", Status: output.StatusCreated},
	}, a.Tree())
}

func TestContext_Validate(t *testing.T) {
	assert.Error(t, (&Context{}).Validate())
	assert.Error(t, (&Context{BaseDir: "x", Resolver: templates.NewResolver(templates.Embedded())}).Validate())
}
