package git

import (
	"fmt"
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// TagList returns all tag names matching the given pattern
func TagList(pattern string) ([]string, error) {
	args := []string{"tag", "--list"}
	if pattern != "" {
		args = append(args, pattern)
	}
	return RunGitCommandLines(args...)
}

// LatestVersionTag returns the highest tag matching v* by semantic-version
// order, or "" when no tag parses as a version.
func LatestVersionTag() (string, error) {
	tags, err := TagList("v*")
	if err != nil {
		return "", err
	}

	type parsed struct {
		name    string
		version *goversion.Version
	}
	var versions []parsed
	for _, tag := range tags {
		v, err := goversion.NewVersion(strings.TrimPrefix(tag, "v"))
		if err != nil {
			continue
		}
		versions = append(versions, parsed{name: tag, version: v})
	}
	if len(versions) == 0 {
		return "", nil
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].version.LessThan(versions[j].version)
	})
	return versions[len(versions)-1].name, nil
}

// NewestTagByCreation returns the most recently created tag of any name,
// or "" when the repository has no tags.
func NewestTagByCreation() (string, error) {
	out, err := RunGitCommand("tag", "--list", "--sort=-creatordate")
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}
	if out == "" {
		return "", nil
	}
	return strings.SplitN(out, "\n", 2)[0], nil
}

// TagExistsLocally reports whether the tag exists in the local repository
func TagExistsLocally(tag string) bool {
	_, err := RunGitCommand("rev-parse", "--verify", "--quiet", "refs/tags/"+tag)
	return err == nil
}

// TagExistsOnRemote reports whether the tag exists on the remote
func TagExistsOnRemote(remote, tag string) (bool, error) {
	out, err := RunGitCommand("ls-remote", "--tags", remote, "refs/tags/"+tag)
	if err != nil {
		return false, fmt.Errorf("failed to query remote tags: %w", err)
	}
	return strings.TrimSpace(out) != "", nil
}

// CreateAnnotatedTag creates an annotated tag with the given message
func CreateAnnotatedTag(tag, message string) error {
	_, err := RunGitCommand("tag", "-a", tag, "-m", message)
	if err != nil {
		return fmt.Errorf("failed to create tag %s: %w", tag, err)
	}
	return nil
}
