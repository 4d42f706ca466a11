package git

import (
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked files
func StageAll() error {
	_, err := RunGitCommand("add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// StagePaths stages the given paths
func StagePaths(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	_, err := RunGitCommand(args...)
	if err != nil {
		return fmt.Errorf("failed to stage paths: %w", err)
	}
	return nil
}

// UnstageAll removes everything from the index, keeping working tree changes.
// Falls back to reset for git versions without restore.
func UnstageAll() error {
	_, err := RunGitCommand("restore", "--staged", ".")
	if err == nil {
		return nil
	}
	_, err = RunGitCommand("reset", "HEAD", ".")
	if err != nil {
		return fmt.Errorf("failed to unstage changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func HasStagedChanges() (bool, error) {
	output, err := RunGitCommand("diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// StagedChange is a single staged path with its change type
type StagedChange struct {
	Status byte // A, M, D, or R
	Path   string
}

// StagedNameStatus returns the staged changes as (status, path) pairs.
// Rename entries collapse to their destination path.
func StagedNameStatus() ([]StagedChange, error) {
	out, err := RunGitCommandRaw("diff", "--cached", "--name-status", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to get staged changes: %w", err)
	}
	var changes []StagedChange
	fields := strings.Split(out, "\x00")
	for i := 0; i < len(fields); i++ {
		status := fields[i]
		if status == "" {
			continue
		}
		if i+1 >= len(fields) {
			break
		}
		i++
		path := fields[i]
		// Renames and copies carry a score and a second path field
		if status[0] == 'R' || status[0] == 'C' {
			if i+1 < len(fields) {
				i++
				path = fields[i]
			}
		}
		changes = append(changes, StagedChange{Status: status[0], Path: path})
	}
	return changes, nil
}

// StagedDiffStat returns a summary of staged changes
func StagedDiffStat() (string, error) {
	out, err := RunGitCommandRaw("diff", "--cached", "--stat")
	if err != nil {
		return "", fmt.Errorf("failed to get staged diff stat: %w", err)
	}
	return out, nil
}

// UnstagedDiffStat returns a summary of unstaged changes to tracked files
func UnstagedDiffStat() (string, error) {
	out, err := RunGitCommandRaw("diff", "--stat")
	if err != nil {
		return "", fmt.Errorf("failed to get diff stat: %w", err)
	}
	return out, nil
}
