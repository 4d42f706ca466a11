package release

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ChangelogName is the changelog file maintained at the repository root
const ChangelogName = "CHANGELOG.md"

const unreleasedAnchor = "## [Unreleased]"

const changelogHeader = `# Changelog

All notable changes to this project will be documented in this file.

The format is based on Keep a Changelog, and releases are tagged with
semantic versions.

## [Unreleased]
`

// ReleaseSection describes one release entry in the changelog
type ReleaseSection struct {
	Tag     string
	Date    time.Time
	Commits []string
	Files   []string
}

// Render produces the markdown block for this release
func (s ReleaseSection) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "## [%s] - %s\n\n", s.Tag, s.Date.UTC().Format("2006-01-02"))
	b.WriteString("### Summary\n\n")
	fmt.Fprintf(&b, "- Release %s\n", s.Tag)

	if len(s.Commits) > 0 {
		b.WriteString("\n### Commits\n\n")
		for _, commit := range s.Commits {
			fmt.Fprintf(&b, "- %s\n", commit)
		}
	}

	if len(s.Files) > 0 {
		b.WriteString("\n### Files\n\n")
		for _, file := range s.Files {
			fmt.Fprintf(&b, "- %s\n", file)
		}
	}

	return b.String()
}

// UpdateChangelog writes the release section into CHANGELOG.md at root.
// A missing file is created with the boilerplate header first. The section is
// inserted directly after the first "## [Unreleased]" line when present,
// otherwise prepended.
func UpdateChangelog(root string, section ReleaseSection) error {
	path := filepath.Join(root, ChangelogName)

	existing, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read %s: %w", ChangelogName, err)
		}
		existing = []byte(changelogHeader)
	}

	updated := insertSection(string(existing), section.Render())
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ChangelogName, err)
	}
	return nil
}

// insertSection places the rendered section after the unreleased anchor,
// or at the top of the document when no anchor exists
func insertSection(document, section string) string {
	lines := strings.Split(document, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == unreleasedAnchor {
			head := strings.Join(lines[:i+1], "\n")
			tail := strings.Join(lines[i+1:], "\n")
			return head + "\n\n" + strings.TrimRight(section, "\n") + "\n" + tail
		}
	}
	return strings.TrimRight(section, "\n") + "\n\n" + document
}
