package git

import (
	"fmt"
)

// Commit creates a commit with the given message
func Commit(message string) error {
	_, err := RunGitCommand("commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// HasParentCommit reports whether HEAD has a parent commit
func HasParentCommit() bool {
	_, err := RunGitCommand("rev-parse", "--verify", "--quiet", "HEAD~1")
	return err == nil
}
