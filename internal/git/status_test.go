package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/testhelpers"
)

func TestChangedFiles(t *testing.T) {
	t.Run("reports staged, unstaged, and untracked files once", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "tracked")
		})

		require.NoError(t, scene.Repo.CreateChange("modified", "tracked", true))
		require.NoError(t, scene.Repo.CreateChange("brand new", "untracked", true))

		files, err := git.ChangedFiles()
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"tracked_test.txt", "untracked_test.txt"}, files)
	})

	t.Run("clean tree yields nothing", func(t *testing.T) {
		_ = testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		files, err := git.ChangedFiles()
		require.NoError(t, err)
		require.Empty(t, files)
	})

	t.Run("staged rename reports the destination path", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "old")
		})

		require.NoError(t, scene.Repo.RunGitCommand("mv", "old_test.txt", "renamed_test.txt"))

		files, err := git.ChangedFiles()
		require.NoError(t, err)
		require.Equal(t, []string{"renamed_test.txt"}, files)
	})
}

func TestCountStatus(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "a")
	})

	require.NoError(t, scene.Repo.CreateChange("staged", "b", false))
	require.NoError(t, scene.Repo.CreateChange("modified", "a", true))
	require.NoError(t, scene.Repo.CreateChange("untracked", "c", true))

	counts, err := git.CountStatus()
	require.NoError(t, err)
	require.Equal(t, 1, counts.Staged)
	require.Equal(t, 1, counts.Unstaged)
	require.Equal(t, 1, counts.Untracked)
}

func TestIsWorkingTreeDirty(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})

	dirty, err := git.IsWorkingTreeDirty()
	require.NoError(t, err)
	require.False(t, dirty)

	require.NoError(t, scene.Repo.CreateChange("changed", "init", true))

	dirty, err = git.IsWorkingTreeDirty()
	require.NoError(t, err)
	require.True(t, dirty)
}
