// Package document defines the JSON form of a pixl canvas.
package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"pixl/canvas"
	"pixl/core"
)

// ErrMalformed is returned when a document does not describe a valid canvas.
var ErrMalformed = errors.New("malformed document")

// Document is the serialisable form of a canvas. Pixels holds one row of
// "#RRGGBB" tokens per canvas row.
type Document struct {
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	PixelSize    int        `json:"pixelSize"`
	CurrentColor string     `json:"currentColor,omitempty"`
	Pixels       [][]string `json:"pixels"`
}

// FromCanvas snapshots c into a document.
func FromCanvas(c *canvas.Canvas) *Document {
	w, h := c.Size()
	rows := c.Rows()
	pixels := make([][]string, h)
	for y, row := range rows {
		pixels[y] = make([]string, w)
		for x, col := range row {
			pixels[y][x] = col.String()
		}
	}
	return &Document{
		Width:        w,
		Height:       h,
		PixelSize:    c.PixelSize(),
		CurrentColor: c.CurrentColor().String(),
		Pixels:       pixels,
	}
}

// Canvas validates the document and builds the canvas it describes.
func (d *Document) Canvas() (*canvas.Canvas, error) {
	if len(d.Pixels) != d.Height {
		return nil, fmt.Errorf("%w: %d rows, height %d", ErrMalformed, len(d.Pixels), d.Height)
	}

	rows := make([][]core.Color, len(d.Pixels))
	for y, line := range d.Pixels {
		if len(line) != d.Width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, width %d", ErrMalformed, y, len(line), d.Width)
		}
		rows[y] = make([]core.Color, len(line))
		for x, tok := range line {
			col, err := core.ParseColor(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: pixel (%d,%d): %w", ErrMalformed, x, y, err)
			}
			rows[y][x] = col
		}
	}

	pixelSize := d.PixelSize
	if pixelSize == 0 {
		pixelSize = 1
	}
	c, err := canvas.FromRows(rows, pixelSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if d.CurrentColor != "" {
		col, err := core.ParseColor(d.CurrentColor)
		if err != nil {
			return nil, fmt.Errorf("%w: current color: %w", ErrMalformed, err)
		}
		c.SetCurrentColor(col)
	}
	return c, nil
}

// Marshal encodes the canvas as indented JSON.
func Marshal(c *canvas.Canvas) ([]byte, error) {
	return json.MarshalIndent(FromCanvas(c), "", "  ")
}

// Unmarshal decodes JSON into a canvas.
func Unmarshal(data []byte) (*canvas.Canvas, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return d.Canvas()
}
