package cli

import (
	"os"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/output"
	"shipit.dev/shipit/internal/pyrun"
	"shipit.dev/shipit/internal/release"
)

// newBuildCmd creates the build command
func newBuildCmd() *cobra.Command {
	var opts pyrun.BuildOptions
	var mode string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Package the application with PyInstaller",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			if opts.Entry == "" {
				opts.Entry = cfg.Build.Entry
			}
			if opts.Entry == "" {
				opts.Entry = pyrun.DefaultEntry
			}
			if opts.Spec == "" {
				opts.Spec = cfg.Build.Spec
			}
			if opts.Name == "" {
				opts.Name = cfg.Build.Name
			}
			if opts.Icon == "" {
				opts.Icon = cfg.Build.Icon
			}
			opts.Mode = pyrun.BuildMode(mode)

			log := output.NewSplog()
			prompt := release.NewSurveyPrompter()
			if err := pyrun.Build(cmd.Context(), root, opts, prompt.Confirm, log); err != nil {
				log.Error("%v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "direct", "Build mode: spec or direct")
	cmd.Flags().StringVar(&opts.Entry, "entry", "", "Entry point for direct mode")
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "PyInstaller .spec file for spec mode")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Application name")
	cmd.Flags().StringVar(&opts.Icon, "icon", "", "Icon file path")
	cmd.Flags().BoolVar(&opts.OneDir, "onedir", false, "Build a directory instead of a single file")
	cmd.Flags().BoolVar(&opts.Console, "console", false, "Keep the console window")
	cmd.Flags().BoolVar(&opts.Clean, "clean", false, "Clean PyInstaller caches before building")
	cmd.Flags().BoolVar(&opts.InstallPyInstall, "install-pyinstaller", false, "Install PyInstaller via pip if missing")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Skip confirmations")
	cmd.Flags().StringVar(&opts.Venv, "venv", "", "Virtualenv directory")
	cmd.Flags().StringVar(&opts.Python, "python", "", "Python interpreter command")

	return cmd
}
