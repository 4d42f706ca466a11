package release

import (
	"context"
	"fmt"
	"time"

	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
)

// tagAndChangelog computes the release version, verifies its preconditions,
// updates the changelog, and creates the annotated tag. Returns the tag name.
func (f *Flow) tagAndChangelog(ctx context.Context) (string, error) {
	if f.repo.Remote != "" {
		if err := git.FetchTags(ctx, f.repo.Remote); err != nil {
			f.log.Warn("Could not fetch tags from %s: %v", f.repo.Remote, err)
		}
	}

	latest, err := latestTag()
	if err != nil {
		return "", err
	}

	revRange := "HEAD"
	if latest != "" {
		revRange = latest + "..HEAD"
		count, err := git.RevListCount(revRange)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return "", fmt.Errorf("%w: nothing to release since %s", shipiterrors.ErrNoNewCommits, latest)
		}
	}

	tag, err := f.chooseVersion(latest)
	if err != nil {
		return "", err
	}

	if git.TagExistsLocally(tag) {
		return "", shipiterrors.NewTagExistsError(tag)
	}
	if f.repo.Remote != "" {
		exists, err := git.TagExistsOnRemote(f.repo.Remote, tag)
		if err != nil {
			return "", err
		}
		if exists {
			return "", shipiterrors.NewRemoteTagExistsError(tag, f.repo.Remote)
		}
	}

	commits, err := git.OnelineLog(revRange)
	if err != nil {
		return "", err
	}

	var files []string
	if latest != "" {
		files, err = git.ChangedFilesInRange(revRange)
	} else {
		files, err = git.FilesInHistory()
	}
	if err != nil {
		return "", err
	}

	f.printPreview(tag, commits, files)

	section := ReleaseSection{
		Tag:     tag,
		Date:    time.Now().UTC(),
		Commits: commits,
		Files:   files,
	}
	if err := UpdateChangelog(f.repo.Root, section); err != nil {
		return "", err
	}

	if err := git.StagePaths([]string{ChangelogName}); err != nil {
		return "", err
	}
	if err := git.Commit(fmt.Sprintf("chore(release): %s", tag)); err != nil {
		return "", err
	}
	if err := git.CreateAnnotatedTag(tag, "Release "+tag); err != nil {
		return "", err
	}
	f.log.Success("Created tag %s.", tag)

	return tag, f.refresh()
}

// latestTag returns the highest semantic-version tag, falling back to the
// most recently created tag of any name, or "" when the repo has no tags
func latestTag() (string, error) {
	tag, err := git.LatestVersionTag()
	if err != nil {
		return "", err
	}
	if tag != "" {
		return tag, nil
	}
	return git.NewestTagByCreation()
}

// chooseVersion takes the explicit version argument or prompts with the
// computed default, then normalizes it
func (f *Flow) chooseVersion(latest string) (string, error) {
	input := f.opts.Version
	if input == "" {
		var err error
		input, err = f.prompt.Input("Release version", NextPatchVersion(latest))
		if err != nil {
			return "", err
		}
	}
	return NormalizeVersion(input)
}

// printPreview renders the release summary before any mutation
func (f *Flow) printPreview(tag string, commits, files []string) {
	f.log.Newline()
	f.log.Header("Release %s", tag)

	if len(commits) > 0 {
		f.log.Info("Commits:")
		for _, commit := range commits {
			f.log.Info("  %s", commit)
		}
	}
	if len(files) > 0 {
		f.log.Info("Files:")
		for _, file := range files {
			f.log.Info("  %s", file)
		}
	}
}
