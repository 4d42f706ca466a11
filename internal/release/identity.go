package release

import (
	"shipit.dev/shipit/internal/git"
)

// ensureIdentity makes sure commit author identity is configured.
// Missing values are prompted for and written to the repository-local config;
// global config is never modified. No-op when both are already set.
func (f *Flow) ensureIdentity() error {
	if git.GetUserName() == "" {
		name, err := f.promptNonEmpty("Commit author name (user.name)")
		if err != nil {
			return err
		}
		if err := git.SetLocalConfig("user.name", name); err != nil {
			return err
		}
	}

	if git.GetUserEmail() == "" {
		email, err := f.promptNonEmpty("Commit author email (user.email)")
		if err != nil {
			return err
		}
		if err := git.SetLocalConfig("user.email", email); err != nil {
			return err
		}
	}

	return nil
}

// promptNonEmpty re-asks until the user provides a non-empty answer
func (f *Flow) promptNonEmpty(message string) (string, error) {
	for {
		value, err := f.prompt.Input(message, "")
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		f.log.Warn("A value is required.")
	}
}
