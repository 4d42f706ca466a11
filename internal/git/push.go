package git

import (
	"context"
	"fmt"
)

// PushBranch pushes a branch to the remote.
// setUpstream adds -u so the branch starts tracking the remote branch.
func PushBranch(ctx context.Context, remote, branch string, setUpstream bool) error {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "-u")
	}
	args = append(args, remote, branch)
	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to push branch %s to %s: %w", branch, remote, err)
	}
	return nil
}

// PushTag pushes a single tag to the remote
func PushTag(ctx context.Context, remote, tag string) error {
	_, err := RunGitCommandWithContext(ctx, "push", remote, "refs/tags/"+tag)
	if err != nil {
		return fmt.Errorf("failed to push tag %s to %s: %w", tag, remote, err)
	}
	return nil
}
