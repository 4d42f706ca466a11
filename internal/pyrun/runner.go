// Package pyrun wraps the Python toolchain: locating an interpreter,
// packaging the desktop app with PyInstaller, and launching it directly.
package pyrun

import (
	"context"
	"os"
	"os/exec"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// ConfirmFunc asks a yes/no question, letting callers plug in their prompter
type ConfirmFunc func(message string, defaultYes bool) (bool, error)

// runStreaming executes a command with output attached to the terminal.
// Failures carry the subprocess exit code so the CLI can propagate it.
func runStreaming(ctx context.Context, dir, command string, args ...string) error {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	exitCode := 1
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	return shipiterrors.NewProcessError(command, args, exitCode, err)
}

// runQuiet executes a command discarding output, reporting only success
func runQuiet(ctx context.Context, dir, command string, args ...string) error {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	return cmd.Run()
}
