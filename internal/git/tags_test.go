package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/testhelpers"
)

func TestLatestVersionTag(t *testing.T) {
	t.Run("picks the highest by semantic version order", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		for _, tag := range []string{"v0.1.0", "v0.10.0", "v0.2.0"} {
			require.NoError(t, scene.Repo.CreateTag(tag, "Release "+tag))
		}

		latest, err := git.LatestVersionTag()
		require.NoError(t, err)
		require.Equal(t, "v0.10.0", latest)
	})

	t.Run("ignores tags that are not versions", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		require.NoError(t, scene.Repo.CreateTag("vacation-snapshot", "not a version"))

		latest, err := git.LatestVersionTag()
		require.NoError(t, err)
		require.Empty(t, latest)
	})

	t.Run("repo without tags has no version tag", func(t *testing.T) {
		_ = testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		latest, err := git.LatestVersionTag()
		require.NoError(t, err)
		require.Empty(t, latest)
	})
}

func TestTagExistence(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})

	require.False(t, git.TagExistsLocally("v1.0.0"))
	require.NoError(t, git.CreateAnnotatedTag("v1.0.0", "Release v1.0.0"))
	require.True(t, git.TagExistsLocally("v1.0.0"))

	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	exists, err := git.TagExistsOnRemote("origin", "v1.0.0")
	require.NoError(t, err)
	require.False(t, exists, "tag was never pushed")

	require.NoError(t, git.PushTag(context.Background(), "origin", "v1.0.0"))

	exists, err = git.TagExistsOnRemote("origin", "v1.0.0")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestAheadBehind(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})

	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.PushBranch("origin", "main"))

	ahead, behind, err := git.AheadBehind("origin/main")
	require.NoError(t, err)
	require.Zero(t, ahead)
	require.Zero(t, behind)

	require.NoError(t, scene.Repo.CreateChangeAndCommit("local work", "work"))

	ahead, behind, err = git.AheadBehind("origin/main")
	require.NoError(t, err)
	require.Equal(t, 1, ahead)
	require.Zero(t, behind)
}
