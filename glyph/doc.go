// Package glyph maps pixel brightness to characters of a fixed density ramp.
//
// Brightness is the Rec. 709 relative luminance of an RGB sample, truncated
// to an integer in [0, 255]. The luminance is spread linearly over [Ramp],
// so black maps to the sparsest glyph (a space) and white to the densest:
//
//	c := glyph.FromRGB(0x80, 0x40, 0x20) // ':'
package glyph
