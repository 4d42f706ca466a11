package release_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/output"
	"shipit.dev/shipit/internal/release"
	"shipit.dev/shipit/testhelpers"
)

// scriptedPrompter feeds queued answers to the workflow. Each prompt kind
// consumes its own queue in order; running out of answers fails the test.
type scriptedPrompter struct {
	t        *testing.T
	confirms []bool
	inputs   []string
	selects  []int
}

func (p *scriptedPrompter) Confirm(message string, _ bool) (bool, error) {
	p.t.Helper()
	require.NotEmpty(p.t, p.confirms, "unexpected confirm prompt: %s", message)
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *scriptedPrompter) Input(message, defaultValue string) (string, error) {
	p.t.Helper()
	require.NotEmpty(p.t, p.inputs, "unexpected input prompt: %s", message)
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func (p *scriptedPrompter) Select(message string, options []string) (int, error) {
	p.t.Helper()
	require.NotEmpty(p.t, p.selects, "unexpected select prompt: %s", message)
	answer := p.selects[0]
	p.selects = p.selects[1:]
	require.Less(p.t, answer, len(options), "scripted choice out of range for: %s", message)
	return answer, nil
}

func newFlowScene(t *testing.T, setup testhelpers.SceneSetup) *testhelpers.Scene {
	t.Helper()
	scene := testhelpers.NewScene(t, setup)
	prev := git.GetWorkingDir()
	t.Cleanup(func() { git.SetWorkingDir(prev) })
	return scene
}

func runFlow(t *testing.T, opts release.Options, prompt *scriptedPrompter) error {
	t.Helper()
	var out, errOut bytes.Buffer
	log := output.NewSplogWithWriters(&out, &errOut)
	flow := release.NewFlow(opts, prompt, log)
	err := flow.Run(context.Background())
	if err != nil && testing.Verbose() {
		t.Logf("output:\n%s\nerrors:\n%s", out.String(), errOut.String())
	}
	return err
}

func boolPtr(v bool) *bool { return &v }

func TestReleaseFlowEndToEnd(t *testing.T) {
	scene := newFlowScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})

	bareDir, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.PushBranch("origin", "main"))
	remote := &testhelpers.GitRepo{Dir: bareDir}

	t.Run("first release tags local and remote", func(t *testing.T) {
		prompt := &scriptedPrompter{
			t:        t,
			selects:  []int{0},           // preflight: continue
			confirms: []bool{true, true}, // sync, push
			inputs:   []string{"v0.0.1"}, // version
		}
		err := runFlow(t, release.Options{}, prompt)
		require.NoError(t, err)

		require.True(t, scene.Repo.TagExists("v0.0.1"), "tag must exist locally")
		require.True(t, remote.TagExists("v0.0.1"), "tag must exist on the remote")

		changelog, err := scene.Repo.ReadFile("CHANGELOG.md")
		require.NoError(t, err)
		require.Contains(t, changelog, "## [v0.0.1]")
		require.Contains(t, changelog, "- Release v0.0.1")
	})

	t.Run("second release with dirty tree auto-stashes", func(t *testing.T) {
		// Unstaged change to a tracked file
		require.NoError(t, scene.Repo.CreateChange("updated", "init", true))

		prompt := &scriptedPrompter{
			t:        t,
			selects:  []int{0, 0, 0},           // preflight continue, stage all, first suggestion
			confirms: []bool{true, true, true}, // sync, stash, push
			inputs:   []string{"v0.0.2"},       // version
		}
		err := runFlow(t, release.Options{}, prompt)
		require.NoError(t, err)

		require.True(t, scene.Repo.TagExists("v0.0.2"))
		require.True(t, remote.TagExists("v0.0.2"))

		stashes, err := git.StashList()
		require.NoError(t, err)
		require.Empty(t, stashes, "auto-stash must be popped after the sync")

		changelog, err := scene.Repo.ReadFile("CHANGELOG.md")
		require.NoError(t, err)
		// Newest release sits above the previous one
		require.Less(t, strings.Index(changelog, "## [v0.0.2]"), strings.Index(changelog, "## [v0.0.1]"))
	})
}

func TestReleaseFlowSyncWithOnlyUntrackedChanges(t *testing.T) {
	// stash push saves nothing when only untracked files are dirty; the
	// sync must notice that and not pop afterwards.
	scene := newFlowScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})
	bareDir, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.PushBranch("origin", "main"))
	require.NoError(t, scene.Repo.CreateChange("scratch", "scratch", true))
	remote := &testhelpers.GitRepo{Dir: bareDir}

	prompt := &scriptedPrompter{
		t:        t,
		selects:  []int{0, 0, 0},           // preflight continue, stage all, first suggestion
		confirms: []bool{true, true, true}, // sync, stash, push
		inputs:   []string{""},             // accept the suggested version
	}
	require.NoError(t, runFlow(t, release.Options{}, prompt))

	require.True(t, scene.Repo.TagExists("v0.0.1"))
	require.True(t, remote.TagExists("v0.0.1"))

	stashes, err := git.StashList()
	require.NoError(t, err)
	require.Empty(t, stashes)

	status, err := scene.Repo.RunGitCommandAndGetOutput("status", "--porcelain")
	require.NoError(t, err)
	require.Empty(t, status, "the untracked file must end up committed")
}

func TestBranchOverrideSurvivesRefresh(t *testing.T) {
	newFlowScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})

	var repo release.RepoContext
	require.NoError(t, repo.Refresh())
	require.Equal(t, "main", repo.Branch)

	repo.SetBranchOverride("release-line")
	require.NoError(t, repo.Refresh())
	require.Equal(t, "release-line", repo.Branch, "the override must survive a refresh")
}

func TestReleaseFlowNoNewCommits(t *testing.T) {
	newFlowScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
			return err
		}
		return s.Repo.CreateTag("v0.1.0", "Release v0.1.0")
	})

	prompt := &scriptedPrompter{
		t:       t,
		selects: []int{0}, // preflight: continue
	}
	err := runFlow(t, release.Options{Version: "v0.1.1"}, prompt)
	require.ErrorIs(t, err, shipiterrors.ErrNoNewCommits)
}

func TestReleaseFlowTagAlreadyExists(t *testing.T) {
	scene := newFlowScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
			return err
		}
		if err := s.Repo.CreateTag("v0.1.0", "Release v0.1.0"); err != nil {
			return err
		}
		return s.Repo.CreateChangeAndCommit("more work", "next")
	})

	shaBefore, err := scene.Repo.GetCurrentSHA()
	require.NoError(t, err)

	prompt := &scriptedPrompter{
		t:       t,
		selects: []int{0}, // preflight: continue
	}
	err = runFlow(t, release.Options{Version: "v0.1.0"}, prompt)
	require.ErrorIs(t, err, shipiterrors.ErrTagExists)

	// The failed precondition must leave the repository untouched
	shaAfter, err := scene.Repo.GetCurrentSHA()
	require.NoError(t, err)
	require.Equal(t, shaBefore, shaAfter)
	_, err = scene.Repo.ReadFile("CHANGELOG.md")
	require.Error(t, err, "no changelog may be written when tagging fails")
}

func TestReleaseFlowInvalidVersion(t *testing.T) {
	newFlowScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})

	prompt := &scriptedPrompter{
		t:       t,
		selects: []int{0},
	}
	err := runFlow(t, release.Options{Version: "1.2"}, prompt)
	require.ErrorIs(t, err, shipiterrors.ErrInvalidVersion)
}

func TestReleaseFlowBootstrap(t *testing.T) {
	scene := newFlowScene(t, nil)

	prompt := &scriptedPrompter{
		t:        t,
		confirms: []bool{true, false}, // create first commit; decline remote setup
		inputs: []string{
			"Scanner Suite", // README title
			"",              // commit message (default "first commit")
			"",              // branch name (default "main")
		},
		selects: []int{1, 0}, // stage README only; preflight continue
	}
	err := runFlow(t, release.Options{Version: "0.1.0"}, prompt)
	require.NoError(t, err)

	branch, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	readme, err := scene.Repo.ReadFile("README.md")
	require.NoError(t, err)
	require.Contains(t, readme, "# Scanner Suite")

	// The version argument is normalized to carry the v prefix
	require.True(t, scene.Repo.TagExists("v0.1.0"))
}

func TestReleaseFlowDecliningBootstrapFails(t *testing.T) {
	newFlowScene(t, nil)

	prompt := &scriptedPrompter{
		t:        t,
		confirms: []bool{false},
	}
	err := runFlow(t, release.Options{}, prompt)
	require.ErrorIs(t, err, shipiterrors.ErrNoInitialCommit)
}

func TestPreflightResetGuards(t *testing.T) {
	t.Run("refuses reset when all commits are pushed", func(t *testing.T) {
		scene := newFlowScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.CreateChangeAndCommit("second", "next")
		})
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))

		shaBefore, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)

		prompt := &scriptedPrompter{
			t:       t,
			selects: []int{3, 5}, // soft reset (refused), then cancel
		}
		err = runFlow(t, release.Options{}, prompt)
		require.ErrorIs(t, err, shipiterrors.ErrCanceled)

		shaAfter, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, shaBefore, shaAfter, "reset must not run against fully pushed history")
	})

	t.Run("reset without upstream needs explicit confirmation", func(t *testing.T) {
		scene := newFlowScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("first", "a"); err != nil {
				return err
			}
			return s.Repo.CreateChangeAndCommit("second", "b")
		})

		shaBefore, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)

		// Declined confirmation leaves HEAD alone
		prompt := &scriptedPrompter{
			t:        t,
			selects:  []int{3, 5},
			confirms: []bool{false},
		}
		err = runFlow(t, release.Options{}, prompt)
		require.ErrorIs(t, err, shipiterrors.ErrCanceled)

		shaAfter, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, shaBefore, shaAfter)

		// Accepted confirmation moves HEAD back one commit
		prompt = &scriptedPrompter{
			t:        t,
			selects:  []int{3, 5},
			confirms: []bool{true},
		}
		err = runFlow(t, release.Options{}, prompt)
		require.ErrorIs(t, err, shipiterrors.ErrCanceled)

		shaReset, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.NotEqual(t, shaBefore, shaReset)

		parent, err := scene.Repo.RunGitCommandAndGetOutput("rev-parse", shaBefore+"~1")
		require.NoError(t, err)
		require.Equal(t, parent, shaReset)
	})

	t.Run("refuses reset of the only commit", func(t *testing.T) {
		scene := newFlowScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		shaBefore, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)

		prompt := &scriptedPrompter{
			t:       t,
			selects: []int{3, 5},
		}
		err = runFlow(t, release.Options{}, prompt)
		require.ErrorIs(t, err, shipiterrors.ErrCanceled)

		shaAfter, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, shaBefore, shaAfter)
	})
}

func TestReleaseFlowSkipsSyncAndPushWithFlags(t *testing.T) {
	scene := newFlowScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})
	bareDir, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.PushBranch("origin", "main"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("local work", "work"))
	remote := &testhelpers.GitRepo{Dir: bareDir}

	prompt := &scriptedPrompter{
		t:       t,
		selects: []int{0}, // preflight: continue
	}
	opts := release.Options{
		Version: "v1.0.0",
		Pull:    boolPtr(false),
		Push:    boolPtr(false),
	}
	require.NoError(t, runFlow(t, opts, prompt))

	require.True(t, scene.Repo.TagExists("v1.0.0"))
	require.False(t, remote.TagExists("v1.0.0"), "tag must not be pushed with --no-push")
}
