// Package errors provides sentinel errors and custom error types for the shipit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for fatal workflow conditions
var (
	// ErrNoRepository indicates that no usable git repository could be located or created
	ErrNoRepository = errors.New("no git repository found")

	// ErrNoInitialCommit indicates that the repository has no commits and the user declined to create one
	ErrNoInitialCommit = errors.New("repository has no initial commit")

	// ErrNoNewCommits indicates that there are no commits since the latest tag
	ErrNoNewCommits = errors.New("no new commits since latest tag")

	// ErrInvalidVersion indicates that a version string does not match the required shape
	ErrInvalidVersion = errors.New("invalid version")

	// ErrTagExists indicates that the requested release tag already exists
	ErrTagExists = errors.New("tag already exists")

	// ErrCanceled indicates that the user canceled the workflow
	ErrCanceled = errors.New("canceled by user")
)

// InvalidVersionError reports a version string that failed normalization
type InvalidVersionError struct {
	Version string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q: expected MAJOR.MINOR.PATCH with optional v prefix", e.Version)
}

// Is returns true if the target error is ErrInvalidVersion
func (e *InvalidVersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}

// NewInvalidVersionError creates a new InvalidVersionError
func NewInvalidVersionError(version string) *InvalidVersionError {
	return &InvalidVersionError{Version: version}
}

// TagExistsError reports a release tag that already exists locally or on the remote
type TagExistsError struct {
	Tag    string
	Remote string // empty when the tag exists locally
}

func (e *TagExistsError) Error() string {
	if e.Remote != "" {
		return fmt.Sprintf("tag %s already exists on remote %s", e.Tag, e.Remote)
	}
	return fmt.Sprintf("tag %s already exists locally", e.Tag)
}

// Is returns true if the target error is ErrTagExists
func (e *TagExistsError) Is(target error) bool {
	return target == ErrTagExists
}

// NewTagExistsError creates a new TagExistsError for a local tag collision
func NewTagExistsError(tag string) *TagExistsError {
	return &TagExistsError{Tag: tag}
}

// NewRemoteTagExistsError creates a new TagExistsError for a remote tag collision
func NewRemoteTagExistsError(tag, remote string) *TagExistsError {
	return &TagExistsError{Tag: tag, Remote: remote}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ProcessError represents a failed external command other than git,
// carrying the exit code so the CLI can propagate it.
type ProcessError struct {
	Command  string
	Args     []string
	ExitCode int
	Err      error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s failed with exit code %d", e.Command, e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// NewProcessError creates a new ProcessError
func NewProcessError(command string, args []string, exitCode int, err error) *ProcessError {
	return &ProcessError{
		Command:  command,
		Args:     args,
		ExitCode: exitCode,
		Err:      err,
	}
}
