package render

import (
	"fmt"
	"image"

	"go.jacobcolvin.com/asciiview/preprocess"
)

// Renderer converts decoded images into frames at a fixed width and mode.
//
// Create instances with [Config.NewRenderer].
type Renderer struct {
	Mode  Mode
	Width int
}

// Render preprocesses img for the configured width and mode and builds its
// frame.
func (r *Renderer) Render(img image.Image) (Frame, error) {
	prepared, err := preprocess.Prepare(img, r.Width, r.Mode.VerticalFactor())
	if err != nil {
		return Frame{}, fmt.Errorf("preprocessing image: %w", err)
	}

	return Build(prepared, r.Mode), nil
}
