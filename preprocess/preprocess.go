// Package preprocess prepares decoded images for character rendering.
//
// [Prepare] runs the full pipeline: [Normalize], [Blur], [AutoContrast], and
// an aspect-preserving [Resize] to the target character grid. Each step is a
// pure transform returning a new [*image.NRGBA].
package preprocess

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// BlurSigma is the standard deviation of the smoothing applied before
// downscaling.
const BlurSigma = 1.2

var (
	// ErrInvalidWidth indicates a non-positive target width.
	ErrInvalidWidth = errors.New("invalid width")
	// ErrEmptyImage indicates a source image with no pixels.
	ErrEmptyImage = errors.New("empty image")
)

// Prepare normalizes, smooths and contrast-stretches img, then resizes it to
// width columns and a height derived from the source aspect ratio scaled by
// verticalFactor.
func Prepare(img image.Image, width int, verticalFactor float64) (*image.NRGBA, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	height := TargetHeight(b.Dx(), b.Dy(), width, verticalFactor)

	out := Normalize(img)
	out = Blur(out)
	out = AutoContrast(out)

	return Resize(out, width, height), nil
}

// TargetHeight returns round(width * srcH/srcW * verticalFactor), and never
// less than one row.
func TargetHeight(srcW, srcH, width int, verticalFactor float64) int {
	if srcW <= 0 {
		return 1
	}

	h := math.Round(float64(width) * (float64(srcH) / float64(srcW)) * verticalFactor)

	return max(1, int(h))
}

// Normalize converts img to opaque NRGBA. Alpha is dropped rather than
// composited, so color channels keep their straight values.
func Normalize(img image.Image) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.A = 0xff

		return c
	})
}

// Blur applies a Gaussian blur of [BlurSigma].
func Blur(img *image.NRGBA) *image.NRGBA {
	return imaging.Blur(img, BlurSigma)
}

// AutoContrast stretches each color channel independently so that its
// darkest occupied value maps to 0 and its lightest to 255. A channel holding
// a single value is left unchanged.
func AutoContrast(img *image.NRGBA) *image.NRGBA {
	var hist [3][256]int

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			hist[0][c.R]++
			hist[1][c.G]++
			hist[2][c.B]++
		}
	}

	luts := [3][256]uint8{
		stretchLUT(&hist[0]),
		stretchLUT(&hist[1]),
		stretchLUT(&hist[2]),
	}

	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.R = luts[0][c.R]
		c.G = luts[1][c.G]
		c.B = luts[2][c.B]

		return c
	})
}

// stretchLUT builds the lookup table mapping the occupied range of hist onto
// [0, 255].
func stretchLUT(hist *[256]int) [256]uint8 {
	var lut [256]uint8

	lo, hi := 0, 255
	for lo < 256 && hist[lo] == 0 {
		lo++
	}

	for hi >= 0 && hist[hi] == 0 {
		hi--
	}

	if hi <= lo {
		for i := range lut {
			lut[i] = uint8(i) //nolint:gosec // Index is below 256.
		}

		return lut
	}

	for i := range lut {
		v := (i - lo) * 255 / (hi - lo)
		lut[i] = uint8(max(0, min(v, 255))) //nolint:gosec // Clamped.
	}

	return lut
}

// Resize resamples img to exactly width x height using Catmull-Rom
// interpolation.
func Resize(img *image.NRGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	return dst
}
