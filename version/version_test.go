package version_test

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiview/version"
)

func TestInfo_Marshal(t *testing.T) {
	t.Parallel()

	info := version.Info{
		Version:   "v1.2.3",
		Revision:  "abc123",
		GoVersion: "go1.25.0",
		Platform:  "linux/amd64",
	}

	tcs := map[string]struct {
		format string
		decode func([]byte, any) error
	}{
		"yaml": {format: "yaml", decode: yaml.Unmarshal},
		"json": {format: "json", decode: json.Unmarshal},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := info.Marshal(tc.format)
			require.NoError(t, err)

			var got version.Info
			require.NoError(t, tc.decode(out, &got))
			assert.Equal(t, info, got)
		})
	}
}

func TestInfo_MarshalText(t *testing.T) {
	t.Parallel()

	info := version.Info{Version: "v1", Revision: "r", GoVersion: "go1", Platform: "os/arch"}

	out, err := info.Marshal("text")
	require.NoError(t, err)
	assert.Equal(t, "asciiview v1 (r, go1, os/arch)\n", string(out))

	_, err = info.Marshal("xml")
	require.ErrorIs(t, err, version.ErrUnknownFormat)
}

func TestGet(t *testing.T) {
	t.Parallel()

	info := version.Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Revision)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
