package glyph

// Ramp holds the glyphs used for rendering, ordered from sparsest to densest.
const Ramp = " .:-=+*%@#"

// Luminance weights scaled by 10000, so that the weights sum to exactly 10000
// and pure white yields 255.
const (
	weightR = 2126
	weightG = 7152
	weightB = 722

	weightScale = weightR + weightG + weightB
)

// Luminance returns the perceptual brightness of an RGB sample, computed as
// 0.2126*R + 0.7152*G + 0.0722*B and truncated toward zero.
func Luminance(r, g, b uint8) uint8 {
	y := (weightR*uint32(r) + weightG*uint32(g) + weightB*uint32(b)) / weightScale

	return uint8(min(y, 255)) //nolint:gosec // Bounded above.
}

// Index returns the position in [Ramp] for luminance y.
func Index(y uint8) int {
	idx := int(y) * (len(Ramp) - 1) / 255

	return max(0, min(idx, len(Ramp)-1))
}

// ForLuminance returns the glyph for luminance y.
func ForLuminance(y uint8) byte {
	return Ramp[Index(y)]
}

// FromRGB returns the glyph for an RGB sample.
func FromRGB(r, g, b uint8) byte {
	return ForLuminance(Luminance(r, g, b))
}
