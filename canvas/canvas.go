// Package canvas provides the pixel grid that pixl paints on.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"pixl/core"
)

// Common errors
var (
	ErrInvalidDimension = errors.New("invalid canvas dimension")
	ErrSizeMismatch     = errors.New("canvas size mismatch")
)

// Default colors for a fresh canvas.
const (
	DefaultBackground   = core.White
	DefaultCurrentColor = core.Black
)

// Canvas is a fixed-size grid of colors.
//
// Thread Safety:
// Every method takes the canvas lock, so a single Canvas may be shared between
// goroutines. Flood fill holds the lock for the whole traversal.
//
// Performance Characteristics:
//   - At/SetPixel: O(1)
//   - FillArea: O(width × height) time and space in the worst case
//   - Clear/Clone/Restore: O(width × height)
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - Coordinates are grid cells; pixelSize only matters at export time
type Canvas struct {
	mu           sync.Mutex
	width        int
	height       int
	pixelSize    int
	grid         []core.Color // row-major, index y*width+x
	currentColor core.Color
}

// New creates a canvas with every cell set to white and the current color set
// to black.
func New(width, height, pixelSize int) (*Canvas, error) {
	if err := checkDimensions(width, height, pixelSize); err != nil {
		return nil, err
	}

	grid := make([]core.Color, width*height)
	for i := range grid {
		grid[i] = DefaultBackground
	}

	return &Canvas{
		width:        width,
		height:       height,
		pixelSize:    pixelSize,
		grid:         grid,
		currentColor: DefaultCurrentColor,
	}, nil
}

// FromRows creates a canvas from rows of colors. Every row must have the same,
// non-zero length.
func FromRows(rows [][]core.Color, pixelSize int) (*Canvas, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	c, err := New(width, height, pixelSize)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrSizeMismatch, y, len(row), width)
		}
		copy(c.grid[y*width:], row)
	}
	return c, nil
}

func checkDimensions(width, height, pixelSize int) error {
	switch {
	case width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalidDimension, width)
	case height <= 0:
		return fmt.Errorf("%w: height %d", ErrInvalidDimension, height)
	case pixelSize <= 0:
		return fmt.Errorf("%w: pixel size %d", ErrInvalidDimension, pixelSize)
	case !fitsInt(width, height):
		return fmt.Errorf("%w: %dx%d cells", ErrInvalidDimension, width, height)
	}
	return checkRaster(width, height, pixelSize)
}

// bytesPerPixel is the NRGBA stride used by Image and the PNG raster.
const bytesPerPixel = 4

// checkRaster rejects sizes whose scaled image buffer cannot be addressed.
func checkRaster(width, height, pixelSize int) error {
	if !fitsInt(width, pixelSize) || !fitsInt(height, pixelSize) {
		return fmt.Errorf("%w: pixel size %d too large for %dx%d", ErrInvalidDimension, pixelSize, width, height)
	}
	rw, rh := width*pixelSize, height*pixelSize
	if !fitsInt(rw, rh) || !fitsInt(rw*rh, bytesPerPixel) {
		return fmt.Errorf("%w: %dx%d raster", ErrInvalidDimension, rw, rh)
	}
	return nil
}

// fitsInt reports whether a*b fits in an int. Both must be positive.
func fitsInt(a, b int) bool {
	return a <= math.MaxInt/b
}

// Size returns the width and height of the canvas in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Bounds returns the cell rectangle of the canvas.
func (c *Canvas) Bounds() core.Bounds {
	return core.Rect(c.width, c.height)
}

// PixelSize returns the export scale factor.
func (c *Canvas) PixelSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pixelSize
}

// SetPixelSize changes the export scale factor.
func (c *Canvas) SetPixelSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: pixel size %d", ErrInvalidDimension, size)
	}
	if err := checkRaster(c.width, c.height, size); err != nil {
		return err
	}
	c.mu.Lock()
	c.pixelSize = size
	c.mu.Unlock()
	return nil
}

// RasterSize returns the pixel dimensions of the exported image.
func (c *Canvas) RasterSize() (width, height int, err error) {
	c.mu.Lock()
	ps := c.pixelSize
	c.mu.Unlock()
	if err := checkRaster(c.width, c.height, ps); err != nil {
		return 0, 0, err
	}
	return c.width * ps, c.height * ps, nil
}

// CurrentColor returns the active drawing color. The canvas itself never
// paints with it; it is kept for callers such as the editor.
func (c *Canvas) CurrentColor() core.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentColor
}

// SetCurrentColor changes the active drawing color.
func (c *Canvas) SetCurrentColor(col core.Color) {
	c.mu.Lock()
	c.currentColor = col
	c.mu.Unlock()
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the color at (x, y). The boolean is false when the coordinate
// lies outside the canvas.
func (c *Canvas) At(x, y int) (core.Color, bool) {
	if !c.inBounds(x, y) {
		return 0, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid[y*c.width+x], true
}

// SetPixel overwrites one cell. Out of range coordinates are ignored so that
// callers can sweep a region without clipping it first.
func (c *Canvas) SetPixel(x, y int, col core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.mu.Lock()
	c.grid[y*c.width+x] = col
	c.mu.Unlock()
}

// Clear sets every cell to col.
func (c *Canvas) Clear(col core.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.grid {
		c.grid[i] = col
	}
}

// Rows returns a copy of the grid as rows of colors.
func (c *Canvas) Rows() [][]core.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows := make([][]core.Color, c.height)
	for y := range rows {
		rows[y] = make([]core.Color, c.width)
		copy(rows[y], c.grid[y*c.width:(y+1)*c.width])
	}
	return rows
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	c.mu.Lock()
	defer c.mu.Unlock()
	grid := make([]core.Color, len(c.grid))
	copy(grid, c.grid)
	return &Canvas{
		width:        c.width,
		height:       c.height,
		pixelSize:    c.pixelSize,
		grid:         grid,
		currentColor: c.currentColor,
	}
}

// Restore copies the grid, pixel size and current color of from into c.
// Both canvases must have the same dimensions.
func (c *Canvas) Restore(from *Canvas) error {
	if from == c {
		return nil
	}
	if from.width != c.width || from.height != c.height {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch,
			from.width, from.height, c.width, c.height)
	}
	snap := from.Clone()
	c.mu.Lock()
	defer c.mu.Unlock()
	copy(c.grid, snap.grid)
	c.pixelSize = snap.pixelSize
	c.currentColor = snap.currentColor
	return nil
}

// Image returns a snapshot of the grid as an image with one pixel per cell.
func (c *Canvas) Image() *image.NRGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetNRGBA(x, y, c.grid[y*c.width+x].NRGBA())
		}
	}
	return img
}
