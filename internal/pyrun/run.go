package pyrun

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"shipit.dev/shipit/internal/output"
)

// Default entry points for the packaged application
const (
	DefaultEntry = "adb_automation_tool.py"
	IntelEntry   = "smart_intel_scan.py"
)

// RunOptions configures an application launch
type RunOptions struct {
	Intel  bool
	Entry  string
	Venv   string
	Python string
	Args   []string
}

// Run launches the application from source through the resolved interpreter,
// passing any extra arguments straight through.
func Run(ctx context.Context, root string, opts RunOptions, log *output.Splog) error {
	python, err := FindPython(root, opts.Python, opts.Venv)
	if err != nil {
		return fmt.Errorf("no python interpreter found: %w", err)
	}

	entry := opts.Entry
	if entry == "" {
		entry = DefaultEntry
		if opts.Intel {
			entry = IntelEntry
		}
	}
	if _, err := os.Stat(filepath.Join(root, entry)); err != nil {
		return fmt.Errorf("entry file %s not found in %s", entry, root)
	}

	args := append([]string{entry}, opts.Args...)
	log.Info("Launching %s with %s", entry, python)
	return runStreaming(ctx, root, python, args...)
}
