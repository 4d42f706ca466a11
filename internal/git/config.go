package git

import (
	"fmt"
)

// GetConfig reads a git config value, returning "" when unset
func GetConfig(key string) string {
	value, err := RunGitCommand("config", "--get", key)
	if err != nil {
		return ""
	}
	return value
}

// SetLocalConfig sets a git config value in the repository's local config.
// Global config is never touched.
func SetLocalConfig(key, value string) error {
	_, err := RunGitCommand("config", "--local", key, value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// GetUserName returns the configured commit author name, "" when unset
func GetUserName() string {
	return GetConfig("user.name")
}

// GetUserEmail returns the configured commit author email, "" when unset
func GetUserEmail() string {
	return GetConfig("user.email")
}
