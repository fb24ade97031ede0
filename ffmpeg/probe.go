package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.jacobcolvin.com/asciiview/playback"
)

var (
	// ErrNotFound indicates a required binary is not on PATH.
	ErrNotFound = errors.New("binary not found in PATH")
	// ErrMalformedRate indicates ffprobe output that is not a "num/den" rate.
	ErrMalformedRate = errors.New("malformed frame rate")
)

// Prober reads frame rates with ffprobe.
type Prober struct {
	// Binary is the ffprobe executable name or path. Empty means "ffprobe".
	Binary string
}

// FrameRate returns the real base frame rate of the first video stream in
// videoPath.
func (p *Prober) FrameRate(ctx context.Context, videoPath string) (playback.Rate, error) {
	bin, err := lookPath(p.Binary, "ffprobe")
	if err != nil {
		return playback.Rate{}, err
	}

	//nolint:gosec // videoPath is a user-provided CLI argument, not untrusted input.
	cmd := exec.CommandContext(ctx, bin,
		"-v", "0",
		"-of", "csv=p=0",
		"-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate",
		videoPath,
	)

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return playback.Rate{}, fmt.Errorf("running ffprobe: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return ParseRate(string(out))
}

// ParseRate parses a rate such as "30000/1001" or "25". Surrounding
// whitespace and a trailing comma left by the csv writer are ignored. Only the
// first line is considered.
func ParseRate(s string) (playback.Rate, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	line = strings.TrimSuffix(strings.TrimSpace(line), ",")

	num, den, hasDen := strings.Cut(line, "/")
	if !hasDen {
		den = "1"
	}

	n, err := strconv.Atoi(num)
	if err != nil {
		return playback.Rate{}, fmt.Errorf("%w: %q", ErrMalformedRate, s)
	}

	d, err := strconv.Atoi(den)
	if err != nil {
		return playback.Rate{}, fmt.Errorf("%w: %q", ErrMalformedRate, s)
	}

	return playback.Rate{Num: n, Den: d}, nil
}

func lookPath(bin, fallback string) (string, error) {
	if bin == "" {
		bin = fallback
	}

	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotFound, bin, err)
	}

	return path, nil
}
