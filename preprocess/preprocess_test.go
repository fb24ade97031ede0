package preprocess_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiview/preprocess"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}

	return img
}

func TestTargetHeight(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		srcW, srcH int
		width      int
		factor     float64
		want       int
	}{
		"square":            {srcW: 100, srcH: 100, width: 10, factor: 1, want: 10},
		"four by three":     {srcW: 400, srcH: 300, width: 100, factor: 1, want: 75},
		"four by three 0.5": {srcW: 400, srcH: 300, width: 100, factor: 0.5, want: 38},
		"wide clamps to 1":  {srcW: 10000, srcH: 1, width: 10, factor: 1, want: 1},
		"tall":              {srcW: 50, srcH: 200, width: 20, factor: 1, want: 80},
		"zero source width": {srcW: 0, srcH: 20, width: 20, factor: 1, want: 1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := preprocess.TargetHeight(tc.srcW, tc.srcH, tc.width, tc.factor)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		src        image.Image
		width      int
		factor     float64
		wantW      int
		wantH      int
		wantCorner color.NRGBA
	}{
		"solid black": {
			src:        solid(100, 100, color.Black),
			width:      10,
			factor:     1,
			wantW:      10,
			wantH:      10,
			wantCorner: color.NRGBA{A: 0xff},
		},
		"solid white": {
			src:        solid(100, 100, color.White),
			width:      10,
			factor:     1,
			wantW:      10,
			wantH:      10,
			wantCorner: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		},
		"transparent red keeps color": {
			src:        solid(40, 30, color.NRGBA{R: 0xff, A: 0x00}),
			width:      8,
			factor:     0.5,
			wantW:      8,
			wantH:      3,
			wantCorner: color.NRGBA{R: 0xff, A: 0xff},
		},
		"gray image": {
			src:        image.NewGray(image.Rect(0, 0, 20, 20)),
			width:      5,
			factor:     1,
			wantW:      5,
			wantH:      5,
			wantCorner: color.NRGBA{A: 0xff},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := preprocess.Prepare(tc.src, tc.width, tc.factor)
			require.NoError(t, err)

			assert.Equal(t, tc.wantW, got.Bounds().Dx())
			assert.Equal(t, tc.wantH, got.Bounds().Dy())
			assert.Equal(t, tc.wantCorner, got.NRGBAAt(0, 0))
		})
	}
}

func TestPrepareErrors(t *testing.T) {
	t.Parallel()

	_, err := preprocess.Prepare(solid(10, 10, color.White), 0, 1)
	require.ErrorIs(t, err, preprocess.ErrInvalidWidth)

	_, err = preprocess.Prepare(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 10, 1)
	require.ErrorIs(t, err, preprocess.ErrEmptyImage)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0xff})
	src.Set(1, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80})

	got := preprocess.Normalize(src)

	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}, got.NRGBAAt(0, 0))
	assert.Equal(t, uint8(0xff), got.NRGBAAt(1, 0).A)
}

func TestAutoContrast(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 50, G: 100, B: 7, A: 0xff})
	src.SetNRGBA(1, 0, color.NRGBA{R: 100, G: 100, B: 7, A: 0xff})
	src.SetNRGBA(2, 0, color.NRGBA{R: 150, G: 100, B: 7, A: 0xff})

	got := preprocess.AutoContrast(src)

	// Red spans [50, 150] and is stretched to [0, 255].
	assert.Equal(t, uint8(0), got.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(127), got.NRGBAAt(1, 0).R)
	assert.Equal(t, uint8(255), got.NRGBAAt(2, 0).R)

	// Flat channels are untouched.
	assert.Equal(t, uint8(100), got.NRGBAAt(1, 0).G)
	assert.Equal(t, uint8(7), got.NRGBAAt(1, 0).B)
}

func TestResize(t *testing.T) {
	t.Parallel()

	got := preprocess.Resize(solid(64, 48, color.NRGBA{R: 0x20, G: 0x40, B: 0x60, A: 0xff}), 16, 12)

	assert.Equal(t, image.Rect(0, 0, 16, 12), got.Bounds())
	assert.Equal(t, color.NRGBA{R: 0x20, G: 0x40, B: 0x60, A: 0xff}, got.NRGBAAt(8, 6))
}

func TestPrepareDeterministic(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(0, 0, 32, 24))
	for y := range 24 {
		for x := range 32 {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 10), B: uint8(x + y), A: 0xff})
		}
	}

	a, err := preprocess.Prepare(src, 16, 1)
	require.NoError(t, err)

	b, err := preprocess.Prepare(src, 16, 1)
	require.NoError(t, err)

	assert.Equal(t, a.Pix, b.Pix)
}
