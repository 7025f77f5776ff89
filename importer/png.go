package importer

import (
	"bytes"
	"fmt"
	"image/png"

	"pixl/canvas"
	"pixl/core"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// PNGImporter reads PNG images. Each pixelSize x pixelSize block becomes one
// cell, colored by its top-left pixel.
type PNGImporter struct {
	pixelSize int
}

// NewPNGImporter creates a PNG importer. A non-positive pixel size means 1.
func NewPNGImporter(pixelSize int) *PNGImporter {
	if pixelSize <= 0 {
		pixelSize = 1
	}
	return &PNGImporter{pixelSize: pixelSize}
}

// CanImport checks the PNG signature.
func (i *PNGImporter) CanImport(data []byte) bool {
	return bytes.HasPrefix(data, pngMagic)
}

// Import decodes the image and samples one pixel per block.
func (i *PNGImporter) Import(data []byte) (*canvas.Canvas, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	b := img.Bounds()
	if b.Dx()%i.pixelSize != 0 || b.Dy()%i.pixelSize != 0 {
		return nil, fmt.Errorf("%w: %dx%d image is not a multiple of pixel size %d",
			ErrMalformed, b.Dx(), b.Dy(), i.pixelSize)
	}

	c, err := canvas.New(b.Dx()/i.pixelSize, b.Dy()/i.pixelSize, i.pixelSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := img.At(b.Min.X+x*i.pixelSize, b.Min.Y+y*i.pixelSize)
			c.SetPixel(x, y, core.FromColor(px))
		}
	}
	return c, nil
}

// FormatName returns the format name
func (i *PNGImporter) FormatName() string {
	return "PNG"
}

// FileExtensions returns the file extensions for PNG
func (i *PNGImporter) FileExtensions() []string {
	return []string{".png"}
}
