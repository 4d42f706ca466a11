package git

import (
	"context"
	"fmt"
)

// FetchBranch fetches a branch into its remote-tracking ref using an explicit
// refspec. Fetching into the disambiguated ref avoids the "ambiguous
// remote-tracking branch" rebase failure when multiple remotes carry the same
// branch name.
func FetchBranch(ctx context.Context, remote, branch string) error {
	refspec := fmt.Sprintf("refs/heads/%s:refs/remotes/%s/%s", branch, remote, branch)
	_, err := RunGitCommandWithContext(ctx, "fetch", remote, refspec)
	if err != nil {
		return fmt.Errorf("failed to fetch %s from %s: %w", branch, remote, err)
	}
	return nil
}

// RebaseOntoRemote rebases the current branch onto the remote-tracking ref
func RebaseOntoRemote(ctx context.Context, remote, branch string) error {
	ref := fmt.Sprintf("refs/remotes/%s/%s", remote, branch)
	_, err := RunGitCommandWithContext(ctx, "rebase", ref)
	if err != nil {
		return fmt.Errorf("failed to rebase onto %s: %w", ref, err)
	}
	return nil
}

// FetchTags fetches tags from the remote
func FetchTags(ctx context.Context, remote string) error {
	_, err := RunGitCommandWithContext(ctx, "fetch", remote, "--tags")
	if err != nil {
		return fmt.Errorf("failed to fetch tags from %s: %w", remote, err)
	}
	return nil
}
