package playback

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder.
	_ "image/jpeg" // JPEG decoder.
	_ "image/png"  // PNG decoder.
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder.
	_ "golang.org/x/image/webp" // WebP decoder for extracted or renamed frames.
)

// FramePattern is the printf-style name of extracted frames. The zero padding
// makes lexicographic order match playback order.
const FramePattern = "frame_%05d.png"

// imageExts lists the extensions rendered as a single still image.
var imageExts = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// IsImagePath reports whether path names a still image. Matching is by
// extension and ignores case; everything else is treated as a video.
func IsImagePath(path string) bool {
	return slices.Contains(imageExts, strings.ToLower(filepath.Ext(path)))
}

// decodeFile opens and decodes the image at path.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the CLI or our own temp dir.
	if err != nil {
		return nil, err
	}

	defer func() {
		//nolint:errcheck // Read-only file.
		f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// listFrames returns the extracted frame files in dir in playback order.
func listFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		ok, err := filepath.Match("frame_*.png", e.Name())
		if err != nil {
			return nil, err
		}

		if ok {
			names = append(names, e.Name())
		}
	}

	slices.Sort(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}

	return paths, nil
}
