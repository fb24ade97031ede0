// Package render turns images into colored character frames.
//
// Each pixel of a preprocessed image becomes a [Cell]: a glyph chosen by
// luminance from [glyph.Ramp] and an xterm-256 palette index from
// [ansi256.Index]. A [Frame] writes every cell wrapped in its own color and
// reset sequences, so no styling leaks between cells or past the frame.
//
// Typical usage creates a [Config], registers flags, then renders:
//
//	cfg := render.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//
//	// After flag parsing:
//	err := cfg.Resolve()
//	frame, err := cfg.NewRenderer().Render(img)
//	_, err = frame.WriteTo(os.Stdout)
//
// In [ModeCompact] the image is resized to half its aspect-correct height
// and odd rows are then dropped, so the emitted row count is roughly a
// quarter of [ModeNormal]. Dropped rows are discarded, not merged.
package render
