package render

import (
	"errors"
	"slices"
	"strings"
)

// Mode selects the row layout of rendered frames.
type Mode string

const (
	// ModeNormal renders one text row per image row.
	ModeNormal Mode = "normal"
	// ModeCompact halves the image height and then skips every odd row.
	ModeCompact Mode = "compact"
)

// ErrUnknownMode indicates an unrecognized mode string.
var ErrUnknownMode = errors.New("unknown mode")

// compactArgs are the literal positional arguments selecting [ModeCompact].
var compactArgs = []string{"hack", "-h", "--mode=hack"}

// ParseMode parses a mode flag value. "hack" is accepted as an alias of
// "compact" and the empty string selects [ModeNormal].
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", string(ModeNormal):
		return ModeNormal, nil
	case string(ModeCompact), "hack":
		return ModeCompact, nil
	}

	return "", ErrUnknownMode
}

// ModeFromArg interprets a positional mode argument. Only the exact literals
// "hack", "-h" and "--mode=hack" select [ModeCompact]; any other value,
// including the empty string, selects [ModeNormal].
func ModeFromArg(arg string) Mode {
	if slices.Contains(compactArgs, arg) {
		return ModeCompact
	}

	return ModeNormal
}

// VerticalFactor returns the factor applied to the aspect-derived image
// height before resizing.
func (m Mode) VerticalFactor() float64 {
	if m == ModeCompact {
		return 0.5
	}

	return 1
}

// SkipRow reports whether row y is dropped from the output.
func (m Mode) SkipRow(y int) bool {
	return m == ModeCompact && y%2 == 1
}

// GetAllModeStrings returns the canonical mode names.
func GetAllModeStrings() []string {
	return []string{string(ModeNormal), string(ModeCompact)}
}
