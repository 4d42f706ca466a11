package release

import (
	"strings"

	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
)

// preflightChoice enumerates the preflight menu entries
type preflightChoice int

const (
	preflightContinue preflightChoice = iota
	preflightStatus
	preflightUnstage
	preflightSoftReset
	preflightMixedReset
	preflightCancel
)

var preflightOptions = []string{
	"Continue with release",
	"Show detailed status",
	"Unstage all changes",
	"Undo last commit, keep changes staged (soft reset)",
	"Undo last commit, keep changes unstaged (mixed reset)",
	"Cancel",
}

// preflight runs the interactive checkpoint before any remote operation.
// The menu re-shows after every action; state is refreshed after each
// mutating choice so the summary never goes stale.
func (f *Flow) preflight() error {
	for {
		f.printStateSummary()

		choice, err := f.prompt.Select("Preflight checks", preflightOptions)
		if err != nil {
			return err
		}

		switch preflightChoice(choice) {
		case preflightContinue:
			return nil

		case preflightStatus:
			if err := f.printDetailedStatus(); err != nil {
				return err
			}

		case preflightUnstage:
			if err := git.UnstageAll(); err != nil {
				return err
			}
			if err := f.refresh(); err != nil {
				return err
			}

		case preflightSoftReset, preflightMixedReset:
			ok, err := f.resetAllowed()
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if preflightChoice(choice) == preflightSoftReset {
				err = git.SoftResetOne()
			} else {
				err = git.MixedResetOne()
			}
			if err != nil {
				return err
			}
			if err := f.refresh(); err != nil {
				return err
			}

		case preflightCancel:
			return shipiterrors.ErrCanceled
		}
	}
}

// resetAllowed applies the guards protecting published history.
// A reset is refused when HEAD has no parent, refused when the upstream has
// every local commit, and requires an extra confirmation when no upstream
// exists because published status cannot be verified.
func (f *Flow) resetAllowed() (bool, error) {
	if !git.HasParentCommit() {
		f.log.Warn("HEAD has no parent commit; nothing to reset.")
		return false, nil
	}

	if f.repo.Upstream != "" {
		if f.state.Ahead == 0 {
			f.log.Warn("All local commits are already on %s; refusing to rewrite published history.", f.repo.Upstream)
			return false, nil
		}
		return true, nil
	}

	ok, err := f.prompt.Confirm("No upstream is configured, so it cannot be verified whether this commit was published. Reset anyway?", false)
	if err != nil {
		return false, err
	}
	if !ok {
		f.log.Info("Reset skipped.")
	}
	return ok, nil
}

// printStateSummary prints the one-line repository summary above the menu
func (f *Flow) printStateSummary() {
	f.log.Newline()
	if f.repo.Upstream != "" {
		f.log.Header("%s (ahead %d, behind %d)", f.repo.Branch, f.state.Ahead, f.state.Behind)
	} else {
		f.log.Header("%s (no upstream)", f.repo.Branch)
	}
	f.log.Detail("staged %d, unstaged %d, untracked %d", f.state.Staged, f.state.Unstaged, f.state.Untracked)
}

// printDetailedStatus prints short status, diff summaries, untracked files,
// and the unpushed commit log. Read-only.
func (f *Flow) printDetailedStatus() error {
	status, err := git.ShortStatus()
	if err != nil {
		return err
	}
	f.log.Newline()
	f.log.Header("Status")
	f.log.Page(status)

	staged, err := git.StagedDiffStat()
	if err != nil {
		return err
	}
	if strings.TrimSpace(staged) != "" {
		f.log.Header("Staged changes")
		f.log.Page(staged)
	}

	unstaged, err := git.UnstagedDiffStat()
	if err != nil {
		return err
	}
	if strings.TrimSpace(unstaged) != "" {
		f.log.Header("Unstaged changes")
		f.log.Page(unstaged)
	}

	untracked, err := git.UntrackedFiles()
	if err != nil {
		return err
	}
	if len(untracked) > 0 {
		f.log.Header("Untracked files")
		for _, file := range untracked {
			f.log.Info("  %s", file)
		}
	}

	if f.repo.Upstream != "" {
		unpushed, err := git.OnelineLog(f.repo.Upstream + "..HEAD")
		if err != nil {
			return err
		}
		if len(unpushed) > 0 {
			f.log.Header("Unpushed commits")
			for _, line := range unpushed {
				f.log.Info("  %s", line)
			}
		}
	}

	return nil
}
