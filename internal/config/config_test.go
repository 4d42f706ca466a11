package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields the zero config", func(t *testing.T) {
		cfg, err := config.Load(t.TempDir())
		require.NoError(t, err)
		require.Equal(t, "origin", cfg.RemoteOr("origin"))
		require.Equal(t, "main", cfg.BranchOr("main"))
	})

	t.Run("values override the fallbacks", func(t *testing.T) {
		dir := t.TempDir()
		content := `remote: upstream
branch: release
build:
  entry: adb_automation_tool.py
  name: scanner
run:
  venv: .venv
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644))

		cfg, err := config.Load(dir)
		require.NoError(t, err)
		require.Equal(t, "upstream", cfg.RemoteOr("origin"))
		require.Equal(t, "release", cfg.BranchOr("main"))
		require.Equal(t, "adb_automation_tool.py", cfg.Build.Entry)
		require.Equal(t, "scanner", cfg.Build.Name)
		require.Equal(t, ".venv", cfg.Run.Venv)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("remote: [unclosed"), 0o644))

		_, err := config.Load(dir)
		require.Error(t, err)
	})
}
