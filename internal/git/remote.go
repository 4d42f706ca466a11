package git

import (
	"fmt"
)

// HasRemote reports whether a remote with the given name is configured
func HasRemote(name string) bool {
	_, err := RunGitCommand("remote", "get-url", name)
	return err == nil
}

// AddRemote adds a new remote
func AddRemote(name, url string) error {
	_, err := RunGitCommand("remote", "add", name, url)
	if err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// SetRemoteURL changes the URL of an existing remote
func SetRemoteURL(name, url string) error {
	_, err := RunGitCommand("remote", "set-url", name, url)
	if err != nil {
		return fmt.Errorf("failed to set url for remote %s: %w", name, err)
	}
	return nil
}
