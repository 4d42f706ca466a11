package release_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/release"
)

func changes(entries ...git.StagedChange) []git.StagedChange {
	return entries
}

func modified(path string) git.StagedChange {
	return git.StagedChange{Status: 'M', Path: path}
}

func deleted(path string) git.StagedChange {
	return git.StagedChange{Status: 'D', Path: path}
}

func TestSuggestMessages(t *testing.T) {
	t.Run("always yields three unique suggestions", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(modified("tool.py")))
		require.Len(t, suggestions, 3)

		seen := make(map[string]bool)
		for _, s := range suggestions {
			require.False(t, seen[s], "duplicate suggestion %q", s)
			seen[s] = true
		}
	})

	t.Run("docs-only changes suggest docs first", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(
			modified("docs/guide.md"),
			modified("README.md"),
		))
		require.True(t, strings.HasPrefix(suggestions[0], "docs"))
		require.Contains(t, suggestions[0], "project documentation")
	})

	t.Run("source plus tests suggest feat first", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(
			modified("adb_automation_tool.py"),
			modified("tests/test_helpers.py"),
		))
		require.True(t, strings.HasPrefix(suggestions[0], "feat"))
		require.Contains(t, suggestions[0], "workflows and tests")
	})

	t.Run("tests-only changes suggest test first", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(
			modified("tests/test_scan.py"),
		))
		require.True(t, strings.HasPrefix(suggestions[0], "test"))
		require.Contains(t, suggestions[0], "test suite")
	})

	t.Run("scope comes from the dominant top-level directory", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(
			modified("intelligence/pipeline.py"),
			modified("intelligence/models.py"),
			modified("main.py"),
		))
		require.Contains(t, suggestions[0], "(intelligence)")
	})

	t.Run("top-level files yield no scope", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(modified("main.py")))
		require.NotContains(t, suggestions[0], "(")
	})

	t.Run("pure deletions force cleanup types", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(
			deleted("old_module.py"),
			deleted("tests/test_old.py"),
		))
		require.True(t, strings.HasPrefix(suggestions[0], "chore"))
		require.True(t, strings.HasPrefix(suggestions[1], "refactor"))
	})

	t.Run("config-only changes suggest chore first", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(
			modified("settings.yaml"),
			modified("pyproject.toml"),
		))
		require.True(t, strings.HasPrefix(suggestions[0], "chore"))
		require.Contains(t, suggestions[0], "project configuration")
	})

	t.Run("ci-only changes name the pipeline", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(
			modified(".github/workflows/ci.yml"),
		))
		require.Contains(t, suggestions[0], "ci pipeline")
	})

	t.Run("data-only changes name the datasets", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(
			modified("data/threat_feeds.csv"),
		))
		require.Contains(t, suggestions[0], "intel datasets")
	})

	t.Run("mixed unclassified changes fall back to project files", func(t *testing.T) {
		suggestions := release.SuggestMessages(changes(
			modified("Makefile"),
			modified("LICENSE"),
		))
		require.Contains(t, suggestions[0], "project files")
	})

	t.Run("empty index yields no suggestions", func(t *testing.T) {
		require.Empty(t, release.SuggestMessages(nil))
	})
}
