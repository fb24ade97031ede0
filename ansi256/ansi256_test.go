package ansi256_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/asciiview/ansi256"
)

func TestIndexGray(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		v    uint8
		want uint8
	}{
		"black":            {v: 0, want: 16},
		"near black":       {v: 7, want: 16},
		"first ramp value": {v: 8, want: 232},
		"mid gray":         {v: 128, want: 243},
		"last ramp value":  {v: 248, want: 255},
		"near white":       {v: 249, want: 231},
		"white":            {v: 255, want: 231},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ansi256.Index(tc.v, tc.v, tc.v))
		})
	}
}

func TestIndexGrayMonotonic(t *testing.T) {
	t.Parallel()

	prev := ansi256.Index(8, 8, 8)
	for v := 9; v <= 248; v++ {
		c := uint8(v)
		idx := ansi256.Index(c, c, c)

		assert.GreaterOrEqual(t, idx, prev, "value %d", v)
		assert.GreaterOrEqual(t, idx, uint8(ansi256.GrayBase))

		prev = idx
	}
}

func TestIndexCube(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		r, g, b uint8
		want    uint8
	}{
		"pure red":      {r: 255, g: 0, b: 0, want: 196},
		"pure green":    {r: 0, g: 255, b: 0, want: 46},
		"pure blue":     {r: 0, g: 0, b: 255, want: 21},
		"yellow":        {r: 255, g: 255, b: 0, want: 226},
		"dark teal":     {r: 0, g: 102, b: 102, want: 30},
		"below level 1": {r: 50, g: 0, b: 1, want: 16},
		"level 1 red":   {r: 51, g: 0, b: 1, want: 52},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ansi256.Index(tc.r, tc.g, tc.b))
		})
	}
}

func TestIndexCubeRange(t *testing.T) {
	t.Parallel()

	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 1; b <= 255; b += 23 {
				if r == g && g == b {
					continue
				}

				idx := ansi256.Index(uint8(r), uint8(g), uint8(b))
				assert.GreaterOrEqual(t, idx, uint8(ansi256.CubeBase))
				assert.LessOrEqual(t, idx, uint8(ansi256.CubeWhite))
			}
		}
	}
}

func TestIndexCubeLevelInvariance(t *testing.T) {
	t.Parallel()

	// Every value in [52, 101] quantizes to level 1.
	want := ansi256.Index(52, 0, 200)
	for r := 52; r <= 101; r++ {
		assert.Equal(t, want, ansi256.Index(uint8(r), 0, 200), "red %d", r)
	}
}

func TestForeground(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\x1b[38;5;16m", ansi256.Foreground(16))
	assert.Equal(t, "\x1b[38;5;231m", ansi256.Foreground(231))
	assert.Equal(t, "\x1b[0m", ansi256.Reset)
}
