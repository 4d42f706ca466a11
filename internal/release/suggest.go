package release

import (
	"fmt"
	"path"
	"strings"

	"shipit.dev/shipit/internal/git"
)

// fileClass is the coarse classification of a staged path
type fileClass int

const (
	classOther fileClass = iota
	classDocs
	classTests
	classScripts
	classSource
	classConfig
	classData
	classCI
)

const maxSuggestions = 3

// fallbackTypes backfills the suggestion list when deduplication leaves
// fewer than three distinct messages
var fallbackTypes = []string{"chore", "fix", "feat", "refactor", "docs", "test"}

// SuggestMessages produces up to three conventional-commit style messages for
// the given staged changes. The heuristic classifies paths, derives a scope
// from the dominant top-level directory, and picks a base phrase with an
// ordered list of commit types. Deterministic for a given index.
func SuggestMessages(changes []git.StagedChange) []string {
	if len(changes) == 0 {
		return nil
	}

	classes := make(map[fileClass]int)
	dirs := make(map[string]int)
	var dirOrder []string
	deletions := 0

	for _, change := range changes {
		classes[classifyPath(change.Path)]++
		if change.Status == 'D' {
			deletions++
		}

		dir := topLevelDir(change.Path)
		if _, ok := dirs[dir]; !ok {
			dirOrder = append(dirOrder, dir)
		}
		dirs[dir]++
	}

	scope := dominantScope(dirs, dirOrder)
	phrase, types := pickPhrase(classes)

	// Pure deletions read better as cleanup regardless of what was removed
	if deletions == len(changes) {
		types = []string{"chore", "refactor", "fix"}
	}

	var suggestions []string
	seen := make(map[string]bool)
	appendType := func(commitType string) {
		rendered := renderSuggestion(commitType, scope, phrase)
		if !seen[rendered] {
			seen[rendered] = true
			suggestions = append(suggestions, rendered)
		}
	}

	for _, commitType := range types {
		appendType(commitType)
	}
	for _, commitType := range fallbackTypes {
		if len(suggestions) >= maxSuggestions {
			break
		}
		appendType(commitType)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// classifyPath buckets a path by prefix and extension
func classifyPath(p string) fileClass {
	lower := strings.ToLower(p)
	base := path.Base(lower)
	ext := path.Ext(lower)

	switch {
	case strings.HasPrefix(lower, ".github/") || strings.Contains(base, ".gitlab-ci"):
		return classCI
	case strings.HasPrefix(lower, "tests/") || strings.HasPrefix(lower, "test/") ||
		strings.Contains(base, "_test.") || strings.HasPrefix(base, "test_"):
		return classTests
	case strings.HasPrefix(lower, "docs/") || ext == ".md" || ext == ".rst":
		return classDocs
	case strings.HasPrefix(lower, "scripts/") || ext == ".sh" || ext == ".ps1" ||
		ext == ".psm1" || ext == ".bat" || ext == ".cmd":
		return classScripts
	case strings.HasPrefix(lower, "data/") || ext == ".csv" || ext == ".db" || ext == ".sqlite":
		return classData
	case ext == ".py" || ext == ".go" || ext == ".js" || ext == ".ts" ||
		ext == ".java" || ext == ".c" || ext == ".cpp" || ext == ".rs":
		return classSource
	case ext == ".yml" || ext == ".yaml" || ext == ".toml" || ext == ".ini" ||
		ext == ".cfg" || ext == ".json" || base == "requirements.txt" || base == "dockerfile":
		return classConfig
	default:
		return classOther
	}
}

// topLevelDir returns the first path segment, or "root" for top-level files
func topLevelDir(p string) string {
	if dir, _, ok := strings.Cut(p, "/"); ok {
		return dir
	}
	return "root"
}

// dominantScope picks the most frequent top-level directory as the commit
// scope, ties resolved by first appearance. Top-level files yield no scope.
func dominantScope(dirs map[string]int, order []string) string {
	best := ""
	bestCount := 0
	for _, dir := range order {
		if dirs[dir] > bestCount {
			best = dir
			bestCount = dirs[dir]
		}
	}
	return normalizeScope(best)
}

// normalizeScope restricts the scope to [a-z0-9._-] with collapsed hyphens.
// An empty result or the literal "root" means no scope.
func normalizeScope(scope string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(scope) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-' || r == ' ':
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	normalized := strings.Trim(b.String(), "-")
	if normalized == "" || normalized == "root" {
		return ""
	}
	return normalized
}

// pickPhrase maps the classification set onto a base phrase and an ordered
// list of candidate commit types, first match wins
func pickPhrase(classes map[fileClass]int) (string, []string) {
	only := func(class fileClass) bool {
		return classes[class] > 0 && classes[class] == total(classes)
	}
	has := func(class fileClass) bool { return classes[class] > 0 }

	switch {
	case only(classDocs):
		return "project documentation", []string{"docs", "chore", "fix"}
	case only(classTests):
		return "test suite", []string{"test", "chore", "fix"}
	case only(classScripts):
		return "release automation scripts", []string{"chore", "fix", "feat"}
	case has(classSource) && has(classTests):
		return "automation workflows and tests", []string{"feat", "fix", "refactor"}
	case only(classSource):
		return "automation workflows", []string{"feat", "fix", "refactor"}
	case only(classConfig):
		return "project configuration", []string{"chore", "fix", "docs"}
	case has(classScripts) && has(classDocs) && classes[classScripts]+classes[classDocs] == total(classes):
		return "release automation scripts and documentation", []string{"chore", "docs", "fix"}
	case only(classData):
		return "intel datasets", []string{"chore", "feat", "fix"}
	case only(classCI):
		return "ci pipeline", []string{"chore", "fix", "refactor"}
	default:
		return "project files", []string{"chore", "feat", "fix"}
	}
}

func total(classes map[fileClass]int) int {
	sum := 0
	for _, count := range classes {
		sum += count
	}
	return sum
}

// renderSuggestion renders "type(scope): verb phrase"
func renderSuggestion(commitType, scope, phrase string) string {
	var subject string
	switch commitType {
	case "feat":
		subject = fmt.Sprintf("add %s improvements", phrase)
	case "fix":
		subject = fmt.Sprintf("fix issues in %s", phrase)
	case "refactor":
		subject = fmt.Sprintf("refactor %s", phrase)
	case "test":
		subject = fmt.Sprintf("improve %s coverage", phrase)
	default: // chore, docs
		subject = fmt.Sprintf("update %s", phrase)
	}

	if scope != "" {
		return fmt.Sprintf("%s(%s): %s", commitType, scope, subject)
	}
	return fmt.Sprintf("%s: %s", commitType, subject)
}
