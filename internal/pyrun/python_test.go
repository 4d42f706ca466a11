package pyrun

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindPython(t *testing.T) {
	t.Run("explicit command wins", func(t *testing.T) {
		python, err := FindPython(t.TempDir(), "/opt/custom/python", "")
		require.NoError(t, err)
		require.Equal(t, "/opt/custom/python", python)
	})

	t.Run("missing venv falls through", func(t *testing.T) {
		// No interpreter inside the empty venv dir, so resolution continues
		// to the conventional candidates and PATH.
		python, err := FindPython(t.TempDir(), "", t.TempDir())
		if err != nil {
			t.Skip("no python on PATH")
		}
		require.NotEmpty(t, python)
	})
}
