package git

import (
	"fmt"
)

// SoftResetOne moves HEAD back one commit, keeping the changes staged
func SoftResetOne() error {
	_, err := RunGitCommand("reset", "--soft", "HEAD~1")
	if err != nil {
		return fmt.Errorf("failed to soft reset: %w", err)
	}
	return nil
}

// MixedResetOne moves HEAD back one commit, leaving the changes unstaged
func MixedResetOne() error {
	_, err := RunGitCommand("reset", "--mixed", "HEAD~1")
	if err != nil {
		return fmt.Errorf("failed to mixed reset: %w", err)
	}
	return nil
}
