// Package ansi256 quantizes RGB colors to the xterm 256-color palette.
//
// Indices 0-15 hold the terminal's configurable system colors and are never
// produced. Chromatic colors map into the 6x6x6 color cube (16-231) and
// achromatic colors into the 24-step grayscale ramp (232-255), with the
// darkest and lightest grays snapped to the cube's black (16) and white (231).
package ansi256

import "strconv"

const (
	// CubeBase is the palette index of the first color cube entry (black).
	CubeBase = 16
	// CubeWhite is the palette index of the last color cube entry (white).
	CubeWhite = 231
	// GrayBase is the palette index of the first grayscale ramp entry.
	GrayBase = 232

	cubeLevels = 6
	graySteps  = 24
)

// Reset clears all graphic rendition attributes.
const Reset = "\x1b[0m"

// Index returns the palette index in [16, 255] approximating r, g, b.
func Index(r, g, b uint8) uint8 {
	if r == g && g == b {
		return grayIndex(r)
	}

	return CubeBase +
		36*cubeLevel(r) +
		6*cubeLevel(g) +
		cubeLevel(b)
}

func grayIndex(v uint8) uint8 {
	switch {
	case v < 8:
		return CubeBase
	case v > 248:
		return CubeWhite
	}

	return GrayBase + uint8((int(v)-8)*graySteps/247) //nolint:gosec // At most 23.
}

func cubeLevel(c uint8) uint8 {
	return uint8(int(c) * (cubeLevels - 1) / 255) //nolint:gosec // At most 5.
}

// Foreground returns the SGR sequence selecting palette index idx as the
// foreground color.
func Foreground(idx uint8) string {
	return "\x1b[38;5;" + strconv.Itoa(int(idx)) + "m"
}
