package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"go.jacobcolvin.com/asciiview/playback"
)

// Extractor writes video frames as PNG files with ffmpeg.
type Extractor struct {
	// Binary is the ffmpeg executable name or path. Empty means "ffmpeg".
	Binary string
}

// Extract writes every frame of videoPath into dir, named by
// [playback.FramePattern] and numbered from 1.
func (e *Extractor) Extract(ctx context.Context, videoPath, dir string) error {
	bin, err := lookPath(e.Binary, "ffmpeg")
	if err != nil {
		return err
	}

	//nolint:gosec // videoPath is a user-provided CLI argument, not untrusted input.
	cmd := exec.CommandContext(ctx, bin, Args(videoPath, dir)...)

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	err = cmd.Run()
	if err != nil {
		return fmt.Errorf("running ffmpeg: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return nil
}

// Args returns the ffmpeg arguments used to extract videoPath into dir.
func Args(videoPath, dir string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
		filepath.Join(dir, playback.FramePattern),
	}
}
