package cli

import (
	"os"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/output"
	"shipit.dev/shipit/internal/pyrun"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var opts pyrun.RunOptions

	cmd := &cobra.Command{
		Use:   "run [-- app_args...]",
		Short: "Launch the application from source",
		Long: `Run launches the desktop application through the project's Python
interpreter. Arguments after -- are passed to the application unchanged.
With --intel the intelligent scan entry point is launched instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			if opts.Venv == "" {
				opts.Venv = cfg.Run.Venv
			}
			if opts.Python == "" {
				opts.Python = cfg.Run.Python
			}
			opts.Args = args

			log := output.NewSplog()
			if err := pyrun.Run(cmd.Context(), root, opts, log); err != nil {
				log.Error("%v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Intel, "intel", false, "Launch the intelligent scan entry point")
	cmd.Flags().StringVar(&opts.Venv, "venv", "", "Virtualenv directory")
	cmd.Flags().StringVar(&opts.Python, "python", "", "Python interpreter command")

	return cmd
}
