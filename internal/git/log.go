package git

import (
	"fmt"
	"strconv"
	"strings"
)

// RevListCount returns the number of commits in the given revision range
func RevListCount(revRange string) (int, error) {
	out, err := RunGitCommand("rev-list", "--count", revRange)
	if err != nil {
		return 0, fmt.Errorf("failed to count commits in %s: %w", revRange, err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", out, err)
	}
	return count, nil
}

// AheadBehind returns how many commits the current branch is ahead of and
// behind its upstream.
func AheadBehind(upstream string) (ahead, behind int, err error) {
	out, err := RunGitCommand("rev-list", "--left-right", "--count", "HEAD..."+upstream)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compare with %s: %w", upstream, err)
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", out)
	}
	ahead, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	behind, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return ahead, behind, nil
}

// OnelineLog returns the one-line commit log for a revision range.
// An empty range means the full history of HEAD.
func OnelineLog(revRange string) ([]string, error) {
	args := []string{"log", "--oneline", "--no-decorate"}
	if revRange != "" {
		args = append(args, revRange)
	}
	return RunGitCommandLines(args...)
}

// FilesInHistory returns every path touched by any commit reachable from
// HEAD, de-duplicated by first appearance.
func FilesInHistory() ([]string, error) {
	lines, err := RunGitCommandLines("log", "--name-only", "--pretty=format:")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var files []string
	for _, line := range lines {
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		files = append(files, line)
	}
	return files, nil
}

// ChangedFilesInRange returns the files changed in a revision range
func ChangedFilesInRange(revRange string) ([]string, error) {
	args := []string{"diff", "--name-only"}
	if revRange != "" {
		args = append(args, revRange)
	}
	lines, err := RunGitCommandLines(args...)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var files []string
	for _, line := range lines {
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		files = append(files, line)
	}
	return files, nil
}
