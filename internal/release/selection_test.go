package release

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIndexSelection(t *testing.T) {
	t.Run("single indices", func(t *testing.T) {
		indices, warnings := parseIndexSelection("1,3,5", 5)
		require.Equal(t, []int{1, 3, 5}, indices)
		require.Empty(t, warnings)
	})

	t.Run("inclusive ranges", func(t *testing.T) {
		indices, warnings := parseIndexSelection("2-4", 5)
		require.Equal(t, []int{2, 3, 4}, indices)
		require.Empty(t, warnings)
	})

	t.Run("mixed indices and ranges", func(t *testing.T) {
		indices, warnings := parseIndexSelection("1, 3-4", 5)
		require.Equal(t, []int{1, 3, 4}, indices)
		require.Empty(t, warnings)
	})

	t.Run("duplicates collapse to first occurrence", func(t *testing.T) {
		indices, _ := parseIndexSelection("2,1-3,2", 5)
		require.Equal(t, []int{2, 1, 3}, indices)
	})

	t.Run("out of range tokens warn and are skipped", func(t *testing.T) {
		indices, warnings := parseIndexSelection("1,9", 3)
		require.Equal(t, []int{1}, indices)
		require.Len(t, warnings, 1)
	})

	t.Run("malformed tokens warn and are skipped", func(t *testing.T) {
		indices, warnings := parseIndexSelection("abc,2,x-y", 3)
		require.Equal(t, []int{2}, indices)
		require.Len(t, warnings, 2)
	})

	t.Run("range spanning out of range keeps the valid part", func(t *testing.T) {
		indices, warnings := parseIndexSelection("2-5", 3)
		require.Equal(t, []int{2, 3}, indices)
		require.Len(t, warnings, 2)
	})

	t.Run("inverted range is invalid", func(t *testing.T) {
		indices, warnings := parseIndexSelection("4-2", 5)
		require.Empty(t, indices)
		require.Len(t, warnings, 1)
	})

	t.Run("empty input selects nothing", func(t *testing.T) {
		indices, warnings := parseIndexSelection("", 3)
		require.Empty(t, indices)
		require.Empty(t, warnings)
	})
}

func TestPickByIndices(t *testing.T) {
	paths := []string{"a.py", "b.py", "c.py"}
	require.Equal(t, []string{"c.py", "a.py"}, pickByIndices(paths, []int{3, 1}))
}
