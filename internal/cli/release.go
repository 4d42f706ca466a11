package cli

import (
	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/output"
	"shipit.dev/shipit/internal/release"
)

// newReleaseCmd creates the release command
func newReleaseCmd() *cobra.Command {
	var (
		repo    string
		remote  string
		branch  string
		yesPull bool
		noPull  bool
		yesPush bool
		noPush  bool
	)

	cmd := &cobra.Command{
		Use:   "release [version]",
		Short: "Create and push a release tag with a changelog update",
		Long: `Release runs the full tagging workflow: preflight checks, optional sync
with the remote, staging and committing local changes, changelog regeneration,
annotated tag creation, and the final push.

The version argument must be MAJOR.MINOR.PATCH with an optional v prefix.
Without it, the next patch version after the latest tag is offered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := release.Options{
				RepoHint: repo,
				Remote:   remote,
				Branch:   branch,
				Pull:     threeState(yesPull, noPull),
				Push:     threeState(yesPush, noPush),
			}
			if len(args) > 0 {
				opts.Version = args[0]
			}

			log := output.NewSplog()
			flow := release.NewFlow(opts, release.NewSurveyPrompter(), log)
			if err := flow.Run(cmd.Context()); err != nil {
				log.Error("%v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "Path to the git repository")
	cmd.Flags().StringVar(&remote, "remote", "", "Remote name (default from .shipit.yml, else origin)")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to sync and push (default: current branch)")
	cmd.Flags().BoolVar(&yesPull, "yes-pull", false, "Sync with the remote without asking")
	cmd.Flags().BoolVar(&noPull, "no-pull", false, "Skip the remote sync without asking")
	cmd.Flags().BoolVar(&yesPush, "yes-push", false, "Push branch and tag without asking")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Skip the push without asking")
	cmd.MarkFlagsMutuallyExclusive("yes-pull", "no-pull")
	cmd.MarkFlagsMutuallyExclusive("yes-push", "no-push")

	return cmd
}

// threeState folds a yes/no flag pair into nil (ask), true, or false
func threeState(yes, no bool) *bool {
	switch {
	case yes:
		value := true
		return &value
	case no:
		value := false
		return &value
	default:
		return nil
	}
}
