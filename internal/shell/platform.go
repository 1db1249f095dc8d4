package shell

import (
	"fmt"
	"path/filepath"
	"runtime"

	oerrors "github.com/pyrepo/cli/internal/errors"
)

// EnvDir is the virtual environment directory created in the project root.
const EnvDir = "env"

// Platform holds the fixed argument lists for one supported host family.
type Platform struct {
	// OS is the GOOS value this platform was built for.
	OS string

	// Python is the interpreter used to create the virtual environment.
	Python string

	// EnvPython is the interpreter inside the virtual environment, relative to the project.
	EnvPython string

	// EnvDVC is the dvc executable inside the virtual environment, relative to the project.
	EnvDVC string

	// ActivateHint tells the user how to enter the environment.
	ActivateHint string
}

// HostOS returns the operating system the binary is running on.
func HostOS() string {
	return runtime.GOOS
}

// PlatformFor returns the platform for a GOOS value. Only linux and windows are supported.
func PlatformFor(goos string) (Platform, error) {
	switch goos {
	case "linux":
		return Platform{
			OS:           goos,
			Python:       "python3",
			EnvPython:    EnvDir + "/bin/python",
			EnvDVC:       EnvDir + "/bin/dvc",
			ActivateHint: "Activate Virtual Environment with source env/bin/activate. Use deactivate to exit virtual environment",
		}, nil
	case "windows":
		return Platform{
			OS:           goos,
			Python:       "python",
			EnvPython:    EnvDir + `\Scripts\python.exe`,
			EnvDVC:       EnvDir + `\Scripts\dvc.exe`,
			ActivateHint: `Activate Virtual Environment with .\env\Scripts\Activate.ps1 or if using command prompt use .\env\Scripts\activate.bat. Use deactivate to exit virtual environment`,
		}, nil
	default:
		return Platform{}, &oerrors.DetailError{
			Type:    "unsupported operating system",
			Message: oerrors.MsgUnsupportedOS,
			Context: map[string]string{"OS": goos},
			Hint:    "Environment setup supports linux and windows hosts.",
			Cause:   oerrors.ErrUnsupportedOS,
		}
	}
}

// CreateVenv returns the command that creates the project's virtual environment.
func (p Platform) CreateVenv(dir string) Command {
	return Command{Name: p.Python, Args: []string{"-m", "venv", EnvDir}, Dir: dir}
}

// InstallRequirements returns the command that installs requirements.txt into the environment.
func (p Platform) InstallRequirements(dir string) Command {
	return Command{Name: p.envPath(dir, p.EnvPython), Args: []string{"-m", "pip", "install", "-r", "requirements.txt"}, Dir: dir}
}

// DVCInit returns the command that initialises dvc using the environment's dvc.
func (p Platform) DVCInit(dir string) Command {
	return Command{Name: p.envPath(dir, p.EnvDVC), Args: []string{"init"}, Dir: dir}
}

// PythonVersion returns the command that prints the host interpreter version.
func (p Platform) PythonVersion() Command {
	return Command{Name: p.Python, Args: []string{"--version"}}
}

// envPath anchors an environment executable to the project directory so it
// resolves regardless of the caller's working directory.
func (p Platform) envPath(dir, rel string) string {
	if dir == "" {
		return rel
	}
	if p.OS == "windows" {
		return fmt.Sprintf(`%s\%s`, dir, rel)
	}
	return filepath.Join(dir, rel)
}
