package pyrun

import (
	"context"
	"fmt"

	"shipit.dev/shipit/internal/output"
)

// BuildMode selects how PyInstaller is driven
type BuildMode string

const (
	// ModeSpec builds from an existing .spec file
	ModeSpec BuildMode = "spec"
	// ModeDirect assembles PyInstaller arguments from flags
	ModeDirect BuildMode = "direct"
)

// BuildOptions configures a packaging run
type BuildOptions struct {
	Mode             BuildMode
	Entry            string
	Spec             string
	Name             string
	Icon             string
	OneDir           bool
	Console          bool
	Clean            bool
	InstallPyInstall bool
	Yes              bool
	Venv             string
	Python           string
}

// Build packages the application with PyInstaller in the project root
func Build(ctx context.Context, root string, opts BuildOptions, confirm ConfirmFunc, log *output.Splog) error {
	python, err := FindPython(root, opts.Python, opts.Venv)
	if err != nil {
		return fmt.Errorf("no python interpreter found: %w", err)
	}
	log.Info("Using interpreter %s", python)

	if err := ensurePyInstaller(ctx, root, python, opts, confirm, log); err != nil {
		return err
	}

	args := []string{"-m", "PyInstaller"}
	switch opts.Mode {
	case ModeSpec:
		if opts.Spec == "" {
			return fmt.Errorf("spec mode requires a spec file")
		}
		args = append(args, opts.Spec)
	case ModeDirect:
		if opts.Entry == "" {
			return fmt.Errorf("direct mode requires an entry file")
		}
		if opts.Name != "" {
			args = append(args, "--name", opts.Name)
		}
		if opts.Icon != "" {
			args = append(args, "--icon", opts.Icon)
		}
		if opts.OneDir {
			args = append(args, "--onedir")
		} else {
			args = append(args, "--onefile")
		}
		if opts.Console {
			args = append(args, "--console")
		} else {
			args = append(args, "--windowed")
		}
		args = append(args, opts.Entry)
	default:
		return fmt.Errorf("unknown build mode %q", opts.Mode)
	}
	if opts.Clean {
		args = append(args, "--clean")
	}

	if !opts.Yes {
		ok, err := confirm(fmt.Sprintf("Run PyInstaller in %s mode?", opts.Mode), true)
		if err != nil {
			return err
		}
		if !ok {
			log.Info("Build canceled.")
			return nil
		}
	}

	log.Info("Packaging with PyInstaller...")
	if err := runStreaming(ctx, root, python, args...); err != nil {
		return err
	}
	log.Success("Build finished; artifacts are under dist/.")
	return nil
}

// ensurePyInstaller installs PyInstaller via pip when missing
func ensurePyInstaller(ctx context.Context, root, python string, opts BuildOptions, confirm ConfirmFunc, log *output.Splog) error {
	if runQuiet(ctx, root, python, "-m", "PyInstaller", "--version") == nil {
		return nil
	}

	install := opts.InstallPyInstall || opts.Yes
	if !install {
		ok, err := confirm("PyInstaller is not installed. Install it now with pip?", true)
		if err != nil {
			return err
		}
		install = ok
	}
	if !install {
		return fmt.Errorf("PyInstaller is required but not installed")
	}

	log.Info("Installing PyInstaller...")
	return runStreaming(ctx, root, python, "-m", "pip", "install", "pyinstaller")
}
