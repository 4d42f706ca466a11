package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens a git repository at the given path, searching parent
// directories for the .git directory the way git itself does.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// HasCommits reports whether HEAD resolves to a commit.
// A freshly initialized repository has no commits and no resolvable HEAD.
func (r *Repository) HasCommits() bool {
	head, err := r.Head()
	return err == nil && head.Hash() != plumbing.ZeroHash
}

// RemoteNames returns the names of all configured remotes
func (r *Repository) RemoteNames() ([]string, error) {
	remotes, err := r.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	names := make([]string, 0, len(remotes))
	for _, remote := range remotes {
		names = append(names, remote.Config().Name)
	}
	return names, nil
}

// HasRemote reports whether a remote with the given name is configured
func (r *Repository) HasRemote(name string) bool {
	_, err := r.Remote(name)
	return err == nil
}
