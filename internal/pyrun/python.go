package pyrun

import (
	"os/exec"
	"path/filepath"
	"runtime"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// venvCandidates are the virtualenv directories probed under the project root
var venvCandidates = []string{".venv", "venv"}

// FindPython resolves the interpreter to use, in order: an explicit command,
// a virtualenv path, the conventional venv directories under root, and
// finally python3/python on PATH.
func FindPython(root, explicit, venv string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if venv != "" {
		if python := venvPython(venv); python != "" {
			return python, nil
		}
	}

	for _, candidate := range venvCandidates {
		if python := venvPython(filepath.Join(root, candidate)); python != "" {
			return python, nil
		}
	}

	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", shipiterrors.NewProcessError("python", nil, 1, exec.ErrNotFound)
}

// venvPython returns the interpreter inside a virtualenv directory, or ""
func venvPython(venv string) string {
	var candidate string
	if runtime.GOOS == "windows" {
		candidate = filepath.Join(venv, "Scripts", "python.exe")
	} else {
		candidate = filepath.Join(venv, "bin", "python")
	}
	if _, err := exec.LookPath(candidate); err == nil {
		return candidate
	}
	return ""
}
