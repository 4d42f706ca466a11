// Package release implements the release tagging workflow: repository
// resolution, identity checks, preflight inspection, remote sync, staging and
// commit, changelog and tag creation, and the final push.
package release

import (
	"context"
	"strings"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/output"
)

// Options configures a release run. Pull and Push are three-state: nil means
// ask interactively, otherwise the flag decides.
type Options struct {
	Version  string
	RepoHint string
	Remote   string
	Branch   string
	Pull     *bool
	Push     *bool
}

// Flow runs the release workflow stage by stage. Stages execute strictly in
// order and any fatal error aborts the whole run.
type Flow struct {
	opts   Options
	prompt Prompter
	log    *output.Splog

	repo  RepoContext
	state RepoState
}

// NewFlow creates a release flow
func NewFlow(opts Options, prompt Prompter, log *output.Splog) *Flow {
	return &Flow{
		opts:   opts,
		prompt: prompt,
		log:    log,
	}
}

// Run executes the full workflow
func (f *Flow) Run(ctx context.Context) error {
	root, err := f.resolveRoot()
	if err != nil {
		return err
	}
	f.repo.Root = root
	git.SetWorkingDir(root)

	// Open through go-git as well so a corrupt .git directory is caught
	// here rather than mid-workflow.
	gitRepo, err := git.OpenRepository(root)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	f.repo.Remote = firstNonEmpty(f.opts.Remote, cfg.RemoteOr("origin"))

	if err := f.ensureIdentity(); err != nil {
		return err
	}

	if !gitRepo.HasCommits() {
		if err := f.bootstrap(ctx); err != nil {
			return err
		}
	}

	if f.opts.Branch != "" {
		f.repo.SetBranchOverride(f.opts.Branch)
	}
	if err := f.repo.Refresh(); err != nil {
		return err
	}
	if f.opts.Branch == "" {
		if want := cfg.BranchOr(f.repo.Branch); want != f.repo.Branch {
			f.log.Detail("current branch %s differs from configured branch %s", f.repo.Branch, want)
		}
	}

	if f.repo.Remote != "" && !gitRepo.HasRemote(f.repo.Remote) {
		if names, err := gitRepo.RemoteNames(); err == nil && len(names) > 0 {
			f.log.Info("Remote %s is not configured (have: %s); sync and push will be skipped.",
				f.repo.Remote, strings.Join(names, ", "))
		} else {
			f.log.Info("Remote %s is not configured; sync and push will be skipped.", f.repo.Remote)
		}
		f.repo.Remote = ""
	}
	if err := f.state.Refresh(&f.repo); err != nil {
		return err
	}

	if err := f.preflight(); err != nil {
		return err
	}

	if f.repo.Remote != "" {
		if err := f.sync(ctx); err != nil {
			return err
		}
	}

	if err := f.stageAndCommit(); err != nil {
		return err
	}

	tag, err := f.tagAndChangelog(ctx)
	if err != nil {
		return err
	}

	if err := f.push(ctx, tag); err != nil {
		return err
	}

	f.log.Success("Release %s complete.", tag)
	return nil
}

// refresh recomputes context and state after a mutating git operation
func (f *Flow) refresh() error {
	if err := f.repo.Refresh(); err != nil {
		return err
	}
	return f.state.Refresh(&f.repo)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
