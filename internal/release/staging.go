package release

import (
	"shipit.dev/shipit/internal/git"
)

// stageAndCommit enumerates changed files, offers to stage them, and commits
// the index with a chosen or suggested message. A clean tree or an
// intentionally empty index simply skips the commit.
func (f *Flow) stageAndCommit() error {
	files, err := git.ChangedFiles()
	if err != nil {
		return err
	}

	if len(files) > 0 {
		if err := f.offerStaging(files); err != nil {
			return err
		}
	}

	staged, err := git.HasStagedChanges()
	if err != nil {
		return err
	}
	if !staged {
		f.log.Info("Nothing staged; skipping commit.")
		return nil
	}

	message, err := f.chooseCommitMessage()
	if err != nil {
		return err
	}
	if err := git.Commit(message); err != nil {
		return err
	}
	f.log.Success("Committed: %s", message)

	return f.refresh()
}

// offerStaging presents the stage-all / by-number / skip menu
func (f *Flow) offerStaging(files []string) error {
	f.log.Newline()
	f.log.Header("Changed files")
	for i, file := range files {
		f.log.Info("  %d) %s", i+1, file)
	}

	choice, err := f.prompt.Select("Stage changes?", []string{
		"Stage all",
		"Choose files by number",
		"Skip staging",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		return git.StageAll()
	case 1:
		input, err := f.prompt.Input("Files to stage (e.g. 1,3-5)", "")
		if err != nil {
			return err
		}
		indices, warnings := parseIndexSelection(input, len(files))
		for _, warning := range warnings {
			f.log.Warn("%s", warning)
		}
		if len(indices) == 0 {
			f.log.Warn("No valid selection; nothing staged.")
			return nil
		}
		return git.StagePaths(pickByIndices(files, indices))
	default:
		return nil
	}
}

// chooseCommitMessage loops suggestions and free-text entry until a
// non-empty message is picked. Suggestions are deterministic for the current
// index, so "regenerate" only changes the outcome if staging changed.
func (f *Flow) chooseCommitMessage() (string, error) {
	for {
		changes, err := git.StagedNameStatus()
		if err != nil {
			return "", err
		}
		suggestions := SuggestMessages(changes)

		options := append([]string{}, suggestions...)
		options = append(options, "Type a custom message", "Regenerate suggestions")

		choice, err := f.prompt.Select("Commit message", options)
		if err != nil {
			return "", err
		}

		switch {
		case choice < len(suggestions):
			return suggestions[choice], nil
		case choice == len(suggestions): // custom
			message, err := f.prompt.Input("Commit message", "")
			if err != nil {
				return "", err
			}
			if message != "" {
				return message, nil
			}
			f.log.Warn("Commit message cannot be empty.")
		default: // regenerate
		}
	}
}
