package terminal_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiview/terminal"
)

func TestClearer(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		force bool
		want  string
	}{
		"skips non-terminal": {force: false, want: ""},
		"forced":             {force: true, want: "\x1b[H\x1b[2J\x1b[3J"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			c := terminal.NewClearer(&buf, tc.force)
			require.NoError(t, c.Clear())
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, f.Close())
	})

	assert.False(t, terminal.IsTerminal(f))
	assert.False(t, terminal.IsTerminal(&bytes.Buffer{}))
}

func TestClearer_Terminal(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, f.Close())
	})

	require.NoError(t, terminal.NewClearer(f, false).Clear())

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}
