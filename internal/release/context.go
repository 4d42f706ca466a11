package release

import (
	"shipit.dev/shipit/internal/git"
)

// RepoContext holds the resolved repository identifiers for a release run.
// Branch and Remote may be mutated during bootstrap; Refresh re-derives the
// values that git owns.
type RepoContext struct {
	Root     string
	Branch   string
	Remote   string // "" when no usable remote is configured
	Upstream string // "" when the current branch has no upstream

	branchOverride string
}

// SetBranchOverride pins Branch to the given name for the rest of the run.
// Refresh keeps the pinned name instead of re-deriving it from HEAD.
func (c *RepoContext) SetBranchOverride(name string) {
	c.branchOverride = name
	c.Branch = name
}

// Refresh re-derives branch and upstream from the repository.
// Must be called after any operation that can move HEAD or change tracking.
func (c *RepoContext) Refresh() error {
	branch, err := git.GetCurrentBranch()
	if err != nil {
		return err
	}
	c.Branch = branch
	if c.branchOverride != "" {
		c.Branch = c.branchOverride
	}
	c.Upstream = git.GetUpstream()
	return nil
}

// RepoState is a point-in-time snapshot of the working tree and its relation
// to the upstream. Snapshots go stale the moment a mutating git operation
// runs; always recompute through Refresh rather than reusing an old value.
type RepoState struct {
	Ahead     int
	Behind    int
	Staged    int
	Unstaged  int
	Untracked int
}

// Refresh recomputes the snapshot from the repository
func (s *RepoState) Refresh(ctx *RepoContext) error {
	counts, err := git.CountStatus()
	if err != nil {
		return err
	}
	s.Staged = counts.Staged
	s.Unstaged = counts.Unstaged
	s.Untracked = counts.Untracked

	s.Ahead, s.Behind = 0, 0
	if ctx.Upstream != "" {
		ahead, behind, err := git.AheadBehind(ctx.Upstream)
		if err != nil {
			return err
		}
		s.Ahead = ahead
		s.Behind = behind
	}
	return nil
}
