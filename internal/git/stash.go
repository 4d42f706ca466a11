package git

import (
	"fmt"
)

// StashPush shelves tracked working tree changes under the given message.
// Untracked files are left in place.
func StashPush(message string) error {
	_, err := RunGitCommand("stash", "push", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to stash changes: %w", err)
	}
	return nil
}

// StashPop restores the most recent stash entry
func StashPop() error {
	_, err := RunGitCommand("stash", "pop")
	if err != nil {
		return fmt.Errorf("failed to pop stash: %w", err)
	}
	return nil
}

// StashList returns the current stash entries
func StashList() ([]string, error) {
	return RunGitCommandLines("stash", "list")
}
