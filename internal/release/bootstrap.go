package release

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
)

// bootstrap creates the first commit in a repository whose HEAD does not
// resolve, then renames the branch and optionally configures a remote.
func (f *Flow) bootstrap(ctx context.Context) error {
	ok, err := f.prompt.Confirm("This repository has no commits yet. Create the first commit now?", true)
	if err != nil {
		return err
	}
	if !ok {
		return shipiterrors.ErrNoInitialCommit
	}

	if err := f.ensureReadme(); err != nil {
		return err
	}

	if err := f.bootstrapStaging(); err != nil {
		return err
	}

	message, err := f.prompt.Input("Commit message", "first commit")
	if err != nil {
		return err
	}
	if message == "" {
		message = "first commit"
	}
	if err := git.Commit(message); err != nil {
		return err
	}

	branch, err := f.prompt.Input("Branch name", "main")
	if err != nil {
		return err
	}
	if branch == "" {
		branch = "main"
	}
	if err := git.RenameCurrentBranch(branch); err != nil {
		return err
	}
	f.log.Success("Created first commit on %s.", branch)

	return f.bootstrapRemote(ctx, branch)
}

// ensureReadme writes a README.md with a user-chosen title when none exists
func (f *Flow) ensureReadme() error {
	path := filepath.Join(f.repo.Root, "README.md")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	title, err := f.prompt.Input("Project title for README.md", filepath.Base(f.repo.Root))
	if err != nil {
		return err
	}
	if title == "" {
		title = filepath.Base(f.repo.Root)
	}

	content := fmt.Sprintf("# %s\n", title)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to create README.md: %w", err)
	}
	return nil
}

// bootstrapStaging loops a staging menu until at least one file is staged
func (f *Flow) bootstrapStaging() error {
	options := []string{
		"Stage all files",
		"Stage README.md only",
		"Choose files by number",
		"Cancel",
	}

	for {
		choice, err := f.prompt.Select("What should go into the first commit?", options)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			if err := git.StageAll(); err != nil {
				return err
			}
		case 1:
			if err := git.StagePaths([]string{"README.md"}); err != nil {
				return err
			}
		case 2:
			if err := f.stageByIndex(); err != nil {
				return err
			}
		case 3:
			return shipiterrors.ErrCanceled
		}

		staged, err := git.HasStagedChanges()
		if err != nil {
			return err
		}
		if staged {
			return nil
		}
		f.log.Warn("Nothing is staged yet; the first commit needs at least one file.")
	}
}

// stageByIndex lists changed files and stages a user-chosen subset
func (f *Flow) stageByIndex() error {
	files, err := git.ChangedFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		f.log.Warn("No changed files to choose from.")
		return nil
	}

	for i, file := range files {
		f.log.Info("  %d) %s", i+1, file)
	}

	input, err := f.prompt.Input("Files to stage (e.g. 1,3-5)", "")
	if err != nil {
		return err
	}

	indices, warnings := parseIndexSelection(input, len(files))
	for _, warning := range warnings {
		f.log.Warn("%s", warning)
	}
	if len(indices) == 0 {
		f.log.Warn("No valid selection.")
		return nil
	}

	return git.StagePaths(pickByIndices(files, indices))
}

// bootstrapRemote offers to configure a remote and push the fresh branch.
// Declining clears the remote for the rest of the run.
func (f *Flow) bootstrapRemote(ctx context.Context, branch string) error {
	if f.repo.Remote == "" {
		return nil
	}
	if git.HasRemote(f.repo.Remote) {
		return nil
	}

	ok, err := f.prompt.Confirm(fmt.Sprintf("Remote %s is not configured. Configure it now?", f.repo.Remote), true)
	if err != nil {
		return err
	}
	if !ok {
		f.repo.Remote = ""
		return nil
	}

	url, err := f.promptNonEmpty(fmt.Sprintf("URL for remote %s", f.repo.Remote))
	if err != nil {
		return err
	}
	if git.HasRemote(f.repo.Remote) {
		err = git.SetRemoteURL(f.repo.Remote, url)
	} else {
		err = git.AddRemote(f.repo.Remote, url)
	}
	if err != nil {
		return err
	}

	push, err := f.prompt.Confirm(fmt.Sprintf("Push %s to %s now?", branch, f.repo.Remote), true)
	if err != nil {
		return err
	}
	if push {
		if err := git.PushBranch(ctx, f.repo.Remote, branch, true); err != nil {
			return err
		}
		f.log.Success("Pushed %s to %s.", branch, f.repo.Remote)
	}
	return nil
}
