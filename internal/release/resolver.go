package release

import (
	"fmt"
	"os"
	"path/filepath"

	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
)

const maxManualPathAttempts = 3

// resolveRoot locates a usable git repository root. Candidates are tried in
// order: the user-supplied hint, the current directory, the executable's
// directory, and its two parents. When none qualify the user may initialize a
// new repository or supply a path manually.
func (f *Flow) resolveRoot() (string, error) {
	for _, candidate := range f.rootCandidates() {
		if candidate == "" {
			continue
		}
		if git.IsInsideWorkTree(candidate) {
			return git.GetRepoRootFrom(candidate)
		}
	}

	base := f.opts.RepoHint
	if base == "" {
		if cwd, err := os.Getwd(); err == nil {
			base = cwd
		}
	}

	if base != "" {
		ok, err := f.prompt.Confirm(fmt.Sprintf("No git repository found. Initialize one at %s?", base), true)
		if err != nil {
			return "", err
		}
		if ok {
			if root, err := initRepositoryAt(base); err == nil {
				return root, nil
			} else {
				f.log.Warn("Could not initialize repository: %v", err)
			}
		}
	}

	for attempt := 0; attempt < maxManualPathAttempts; attempt++ {
		path, err := f.prompt.Input("Path to an existing git repository", "")
		if err != nil {
			return "", err
		}
		if path == "" {
			continue
		}
		if git.IsInsideWorkTree(path) {
			return git.GetRepoRootFrom(path)
		}
		f.log.Warn("%s is not a git repository.", path)
	}

	return "", shipiterrors.ErrNoRepository
}

// rootCandidates returns the ordered candidate directories for resolution
func (f *Flow) rootCandidates() []string {
	candidates := []string{f.opts.RepoHint}

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, cwd)
	}

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates, dir, filepath.Dir(dir), filepath.Dir(filepath.Dir(dir)))
	}

	return candidates
}

// initRepositoryAt creates dir if missing and runs git init there
func initRepositoryAt(dir string) (string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := git.InitRepo(dir); err != nil {
		return "", err
	}
	return git.GetRepoRootFrom(dir)
}
