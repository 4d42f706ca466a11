package release

import (
	"context"
	"fmt"

	"shipit.dev/shipit/internal/git"
)

// push sends the branch and the new tag to the remote. The commit and tag
// already exist locally; a failed push is fatal but nothing is rolled back,
// so rerunning the push by hand stays possible.
func (f *Flow) push(ctx context.Context, tag string) error {
	if f.repo.Remote == "" {
		f.log.Info("No remote configured; skipping push. Tag %s exists locally.", tag)
		return nil
	}

	proceed := true
	if f.opts.Push != nil {
		proceed = *f.opts.Push
	} else {
		var err error
		proceed, err = f.prompt.Confirm(
			fmt.Sprintf("Push %s and tag %s to %s?", f.repo.Branch, tag, f.repo.Remote), true)
		if err != nil {
			return err
		}
	}
	if !proceed {
		f.log.Info("Skipping push. Tag %s exists locally.", tag)
		f.log.Tip("Publish it later with 'git push --follow-tags %s %s'.", f.repo.Remote, f.repo.Branch)
		return nil
	}

	setUpstream := f.repo.Upstream == ""
	if err := git.PushBranch(ctx, f.repo.Remote, f.repo.Branch, setUpstream); err != nil {
		return err
	}
	if err := git.PushTag(ctx, f.repo.Remote, tag); err != nil {
		return err
	}

	f.log.Success("Pushed %s and tag %s to %s.", f.repo.Branch, tag, f.repo.Remote)
	return nil
}
