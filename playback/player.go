package playback

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"go.jacobcolvin.com/asciiview/render"
)

var (
	// ErrFileNotFound indicates the input path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrDecode indicates an image or frame could not be decoded.
	ErrDecode = errors.New("decode image")
	// ErrExtract indicates frame extraction failed.
	ErrExtract = errors.New("extract frames")
	// ErrNoFrames indicates extraction produced no frames.
	ErrNoFrames = errors.New("no frames extracted")
)

// FrameRateProbe determines the frame rate of a video.
type FrameRateProbe interface {
	FrameRate(ctx context.Context, videoPath string) (Rate, error)
}

// FrameExtractor writes every frame of a video into dir as files named by
// [FramePattern].
type FrameExtractor interface {
	Extract(ctx context.Context, videoPath, dir string) error
}

// ScreenClearer resets the visible terminal content before a frame.
type ScreenClearer interface {
	Clear() error
}

// Renderer converts a decoded image into a frame.
type Renderer interface {
	Render(img image.Image) (render.Frame, error)
}

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Player renders images and videos to Out.
//
// Renderer, Out, Clearer and, for videos, Extractor are required. Probe may
// be nil, in which case [DefaultFPS] is used unless FPS is set.
type Player struct {
	Renderer  Renderer
	Out       io.Writer
	Probe     FrameRateProbe
	Extractor FrameExtractor
	Clearer   ScreenClearer
	Sleep     SleepFunc
	Logger    *slog.Logger

	// FPS overrides the probed frame rate when non-zero. An override that
	// is not a usable rate is logged and ignored.
	FPS float64
}

// Play renders the file at path, as a still image or as a video depending on
// [IsImagePath].
func (p *Player) Play(ctx context.Context, path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if IsImagePath(path) {
		return p.PlayImage(ctx, path)
	}

	return p.PlayVideo(ctx, path)
}

// PlayImage decodes, renders, clears the screen and prints one image.
func (p *Player) PlayImage(ctx context.Context, path string) error {
	err := ctx.Err()
	if err != nil {
		return err
	}

	img, err := decodeFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	frame, err := p.Renderer.Render(img)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}

	err = p.Clearer.Clear()
	if err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}

	_, err = frame.WriteTo(p.Out)
	if err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	return nil
}

// PlayVideo extracts the frames of the video at path into a temporary
// directory and shows them in order, pausing 1/fps between frames. The
// directory is removed before PlayVideo returns.
func (p *Player) PlayVideo(ctx context.Context, path string) error {
	rate := p.frameRate(ctx, path)
	interval := rate.Interval()

	tmpDir, err := os.MkdirTemp("", "asciiview_*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}

	defer func() {
		rmErr := os.RemoveAll(tmpDir)
		if rmErr != nil {
			p.logger().Warn("removing frame directory",
				slog.String("dir", tmpDir),
				slog.Any("err", rmErr),
			)
		}
	}()

	err = p.Extractor.Extract(ctx, path, tmpDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExtract, err)
	}

	frames, err := listFrames(tmpDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExtract, err)
	}

	if len(frames) == 0 {
		return fmt.Errorf("%w: %s", ErrNoFrames, path)
	}

	p.logger().Debug("playing video",
		slog.String("path", path),
		slog.Int("frames", len(frames)),
		slog.String("rate", rate.String()),
		slog.Duration("interval", interval),
	)

	for _, frame := range frames {
		err := p.PlayImage(ctx, frame)
		if err != nil {
			return err
		}

		err = p.sleep(ctx, interval)
		if err != nil {
			return err
		}
	}

	return nil
}

// frameRate returns the playback rate for path. Invalid overrides and probe
// failures are logged; the latter are replaced by [DefaultFPS].
func (p *Player) frameRate(ctx context.Context, path string) Rate {
	if p.FPS != 0 {
		rate, err := RateFromFPS(p.FPS)
		if err == nil {
			return rate
		}

		p.logger().Warn("ignoring fps override", slog.Any("err", err))
	}

	fallback := Rate{Num: DefaultFPS, Den: 1}

	if p.Probe == nil {
		return fallback
	}

	rate, err := p.Probe.FrameRate(ctx, path)
	if err == nil {
		err = rate.Validate()
	}

	if err != nil {
		p.logger().Warn("failed to get fps, using default",
			slog.Int("fps", DefaultFPS),
			slog.Any("err", err),
		)

		return fallback
	}

	return rate
}

func (p *Player) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}

	return Sleep(ctx, d)
}

func (p *Player) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}

	return slog.New(slog.DiscardHandler)
}

// Sleep pauses for d, returning early with the context error if ctx is done
// first.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
