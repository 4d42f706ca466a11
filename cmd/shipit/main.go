package main

import (
	"errors"
	"os"

	"shipit.dev/shipit/internal/cli"
	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/git"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a failed run to the process exit code: the failing
// subprocess's code when one is known, 1 otherwise.
func exitCode(err error) int {
	var procErr *shipiterrors.ProcessError
	if errors.As(err, &procErr) && procErr.ExitCode > 0 {
		return procErr.ExitCode
	}
	if code := git.ExitCode(err); code > 0 {
		return code
	}
	return 1
}
