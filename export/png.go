package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"pixl/canvas"
)

// PNGExporter exports canvases as PNG images
type PNGExporter struct {
	encoder png.Encoder
}

// NewPNGExporter creates a new PNG exporter
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{
		encoder: png.Encoder{CompressionLevel: png.BestCompression},
	}
}

// Export encodes the rasterized canvas. The encoder writes no timestamp or
// text chunks.
func (e *PNGExporter) Export(c *canvas.Canvas, w io.Writer) error {
	if c == nil {
		return fmt.Errorf("canvas is nil")
	}
	img, err := Rasterize(c)
	if err != nil {
		return err
	}
	if err := e.encoder.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// FileExtension returns the file extension for PNG
func (e *PNGExporter) FileExtension() string {
	return ".png"
}

// FormatName returns the format name
func (e *PNGExporter) FormatName() string {
	return "PNG"
}

// Rasterize scales the canvas by its pixel size. Each cell becomes a solid
// pixelSize x pixelSize block; nearest-neighbour scaling keeps edges hard.
func Rasterize(c *canvas.Canvas) (*image.NRGBA, error) {
	w, h, err := c.RasterSize()
	if err != nil {
		return nil, fmt.Errorf("rasterizing canvas: %w", err)
	}
	src := c.Image()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
