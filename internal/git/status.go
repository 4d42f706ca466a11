package git

import (
	"fmt"
	"strings"
)

// StatusEntry is a single entry from porcelain status.
// For renames, Path is the destination and OrigPath the source.
type StatusEntry struct {
	Staged   byte // X column
	Unstaged byte // Y column
	Path     string
	OrigPath string
}

// IsUntracked reports whether the entry is an untracked file
func (e StatusEntry) IsUntracked() bool {
	return e.Staged == '?' && e.Unstaged == '?'
}

// StatusPorcelain returns the parsed porcelain v1 status of the working tree.
// Uses -z output so paths with spaces or unusual characters survive parsing.
func StatusPorcelain() ([]StatusEntry, error) {
	out, err := RunGitCommandRaw("status", "--porcelain", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return parsePorcelain(out), nil
}

// parsePorcelain parses NUL-delimited porcelain v1 output.
// Rename and copy entries carry a second NUL-delimited field with the source path.
func parsePorcelain(out string) []StatusEntry {
	var entries []StatusEntry
	fields := strings.Split(out, "\x00")
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		if len(field) < 4 {
			continue
		}
		entry := StatusEntry{
			Staged:   field[0],
			Unstaged: field[1],
			Path:     field[3:],
		}
		if entry.Staged == 'R' || entry.Staged == 'C' || entry.Unstaged == 'R' || entry.Unstaged == 'C' {
			if i+1 < len(fields) {
				i++
				entry.OrigPath = fields[i]
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// ChangedFiles returns the working-tree-relative paths of all changed files
// in the order git reports them, de-duplicated by first appearance.
// Rename entries collapse to their destination path.
func ChangedFiles() ([]string, error) {
	entries, err := StatusPorcelain()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var paths []string
	for _, entry := range entries {
		if entry.Path == "" || seen[entry.Path] {
			continue
		}
		seen[entry.Path] = true
		paths = append(paths, entry.Path)
	}
	return paths, nil
}

// IsWorkingTreeDirty reports whether the working tree has any changes,
// staged, unstaged, or untracked.
func IsWorkingTreeDirty() (bool, error) {
	entries, err := StatusPorcelain()
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

// StatusCounts summarizes the working tree state
type StatusCounts struct {
	Staged    int
	Unstaged  int
	Untracked int
}

// CountStatus returns staged/unstaged/untracked counts from porcelain status
func CountStatus() (StatusCounts, error) {
	entries, err := StatusPorcelain()
	if err != nil {
		return StatusCounts{}, err
	}
	var counts StatusCounts
	for _, entry := range entries {
		if entry.IsUntracked() {
			counts.Untracked++
			continue
		}
		if entry.Staged != ' ' {
			counts.Staged++
		}
		if entry.Unstaged != ' ' {
			counts.Unstaged++
		}
	}
	return counts, nil
}

// ShortStatus returns the human-readable short status output
func ShortStatus() (string, error) {
	out, err := RunGitCommandRaw("status", "--short", "--branch")
	if err != nil {
		return "", fmt.Errorf("failed to get short status: %w", err)
	}
	return out, nil
}

// UntrackedFiles returns the paths of untracked files
func UntrackedFiles() ([]string, error) {
	return RunGitCommandLines("ls-files", "--others", "--exclude-standard")
}
