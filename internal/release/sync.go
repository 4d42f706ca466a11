package release

import (
	"context"
	"fmt"
	"time"

	"shipit.dev/shipit/internal/git"
)

// sync optionally stashes local changes, fetches the remote branch into its
// disambiguated tracking ref, rebases onto it, and restores the stash.
// Declining the stash skips the sync without failing the run; any git failure
// after that point is fatal so an interrupted rebase never reaches the tag
// stage.
func (f *Flow) sync(ctx context.Context) error {
	proceed := true
	if f.opts.Pull != nil {
		proceed = *f.opts.Pull
	} else {
		var err error
		proceed, err = f.prompt.Confirm(
			fmt.Sprintf("Pull latest changes from %s/%s before releasing?", f.repo.Remote, f.repo.Branch), true)
		if err != nil {
			return err
		}
	}
	if !proceed {
		f.log.Info("Skipping sync with %s.", f.repo.Remote)
		return nil
	}

	dirty, err := git.IsWorkingTreeDirty()
	if err != nil {
		return err
	}

	stashed := false
	if dirty {
		ok, err := f.prompt.Confirm("The working tree has local changes. Stash tracked changes during the sync?", false)
		if err != nil {
			return err
		}
		if !ok {
			f.log.Warn("Working tree is dirty; skipping sync for this run.")
			return nil
		}
		before, err := git.StashList()
		if err != nil {
			return err
		}
		message := "shipit auto-stash " + time.Now().UTC().Format("20060102150405")
		if err := git.StashPush(message); err != nil {
			return err
		}
		// stash push exits 0 without creating an entry when only untracked
		// files are dirty; popping then would hit an unrelated stash.
		after, err := git.StashList()
		if err != nil {
			return err
		}
		stashed = len(after) > len(before)
		if !stashed {
			f.log.Info("No tracked changes to stash; untracked files stay in place.")
		}
	}

	f.log.Info("Fetching %s from %s...", f.repo.Branch, f.repo.Remote)
	if err := git.FetchBranch(ctx, f.repo.Remote, f.repo.Branch); err != nil {
		return err
	}

	f.log.Info("Rebasing onto %s/%s...", f.repo.Remote, f.repo.Branch)
	if err := git.RebaseOntoRemote(ctx, f.repo.Remote, f.repo.Branch); err != nil {
		return err
	}

	if stashed {
		if err := git.StashPop(); err != nil {
			return err
		}
	}

	f.log.Success("Synced with %s/%s.", f.repo.Remote, f.repo.Branch)
	return f.refresh()
}
