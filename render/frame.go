package render

import (
	"bufio"
	"image"
	"io"
	"strings"

	"go.jacobcolvin.com/asciiview/ansi256"
	"go.jacobcolvin.com/asciiview/glyph"
)

// Cell is the visual unit written to one character position.
type Cell struct {
	Glyph byte
	Color uint8
}

// CellFor returns the cell for an RGB sample.
func CellFor(r, g, b uint8) Cell {
	return Cell{
		Glyph: glyph.FromRGB(r, g, b),
		Color: ansi256.Index(r, g, b),
	}
}

// Frame is an ordered sequence of rows of cells.
type Frame struct {
	Rows [][]Cell
}

// Build maps every pixel of img to a [Cell]. Rows skipped by mode are
// omitted entirely.
func Build(img *image.NRGBA, mode Mode) Frame {
	b := img.Bounds()
	rows := make([][]Cell, 0, b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		if mode.SkipRow(y - b.Min.Y) {
			continue
		}

		row := make([]Cell, 0, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			row = append(row, CellFor(c.R, c.G, c.B))
		}

		rows = append(rows, row)
	}

	return Frame{Rows: rows}
}

// Height returns the number of emitted rows.
func (f Frame) Height() int {
	return len(f.Rows)
}

// Width returns the number of cells per row.
func (f Frame) Width() int {
	if len(f.Rows) == 0 {
		return 0
	}

	return len(f.Rows[0])
}

// WriteTo writes the styled frame to w. Each cell is emitted as a
// foreground color sequence, the glyph, and a reset; each row ends with a
// newline.
func (f Frame) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	for _, row := range f.Rows {
		for _, c := range row {
			bw.WriteString(ansi256.Foreground(c.Color))
			bw.WriteByte(c.Glyph)
			bw.WriteString(ansi256.Reset)
		}

		bw.WriteByte('\n')
	}

	err := bw.Flush()

	return cw.n, err
}

// String returns the styled frame as a single string.
func (f Frame) String() string {
	var sb strings.Builder

	//nolint:errcheck // strings.Builder never returns an error.
	f.WriteTo(&sb)

	return sb.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
