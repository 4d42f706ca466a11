package git

import (
	"fmt"
	"strings"
)

// IsInsideWorkTree reports whether dir is inside a git working tree
func IsInsideWorkTree(dir string) bool {
	out, err := RunGitCommandInDir(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// GetRepoRootFrom returns the top-level directory of the working tree containing dir
func GetRepoRootFrom(dir string) (string, error) {
	root, err := RunGitCommandInDir(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to get repo root: %w", err)
	}
	return root, nil
}

// GetRepoRoot returns the top-level directory of the current working tree
func GetRepoRoot() (string, error) {
	root, err := RunGitCommand("rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to get repo root: %w", err)
	}
	return root, nil
}

// InitRepo initializes a new git repository at dir
func InitRepo(dir string) error {
	_, err := RunGitCommandInDir(dir, "init")
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	return nil
}

// GetCurrentBranch returns the current branch name
func GetCurrentBranch() (string, error) {
	branch, err := RunGitCommand("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return branch, nil
}

// RenameCurrentBranch renames the current branch
func RenameCurrentBranch(name string) error {
	_, err := RunGitCommand("branch", "-M", name)
	if err != nil {
		return fmt.Errorf("failed to rename branch to %s: %w", name, err)
	}
	return nil
}

// GetUpstream returns the upstream ref of the current branch, or "" when none is configured
func GetUpstream() string {
	upstream, err := RunGitCommand("rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(upstream)
}
