package release_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/release"
)

func TestNormalizeVersion(t *testing.T) {
	t.Run("adds the v prefix", func(t *testing.T) {
		tag, err := release.NormalizeVersion("1.2.3")
		require.NoError(t, err)
		require.Equal(t, "v1.2.3", tag)
	})

	t.Run("keeps an existing v prefix", func(t *testing.T) {
		tag, err := release.NormalizeVersion("v1.2.3")
		require.NoError(t, err)
		require.Equal(t, "v1.2.3", tag)
	})

	t.Run("rejects missing components", func(t *testing.T) {
		_, err := release.NormalizeVersion("1.2")
		require.Error(t, err)
		require.True(t, errors.Is(err, shipiterrors.ErrInvalidVersion))
	})

	t.Run("rejects extra components", func(t *testing.T) {
		_, err := release.NormalizeVersion("v1.2.3.4")
		require.ErrorIs(t, err, shipiterrors.ErrInvalidVersion)
	})

	t.Run("rejects pre-release suffixes", func(t *testing.T) {
		_, err := release.NormalizeVersion("v1.2.3-rc1")
		require.ErrorIs(t, err, shipiterrors.ErrInvalidVersion)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := release.NormalizeVersion("")
		require.ErrorIs(t, err, shipiterrors.ErrInvalidVersion)
	})
}

func TestNextPatchVersion(t *testing.T) {
	t.Run("increments the patch component", func(t *testing.T) {
		require.Equal(t, "v1.4.10", release.NextPatchVersion("v1.4.9"))
	})

	t.Run("absent base yields the first version", func(t *testing.T) {
		require.Equal(t, "v0.0.1", release.NextPatchVersion(""))
	})

	t.Run("unparsable base yields the first version", func(t *testing.T) {
		require.Equal(t, "v0.0.1", release.NextPatchVersion("nightly-build"))
	})
}
