// Package export writes canvases to image, terminal and document formats.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"pixl/canvas"
)

// ErrUnknownFormat is returned for a format name no exporter handles.
var ErrUnknownFormat = errors.New("unknown export format")

// Format represents an export format
type Format string

const (
	// FormatPNG exports a scaled raster image
	FormatPNG Format = "png"
	// FormatANSI exports truecolor half-block text for terminals
	FormatANSI Format = "ansi"
	// FormatJSON exports the canvas document
	FormatJSON Format = "json"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export writes the canvas in the target format
	Export(c *canvas.Canvas, w io.Writer) error
	// FileExtension returns the recommended file extension for this format
	FileExtension() string
	// FormatName returns a human-readable name for this format
	FormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatPNG:
		return NewPNGExporter(), nil
	case FormatANSI:
		return NewANSIExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png", "image":
		return FormatPNG, nil
	case "ansi", "ans", "text", "txt", "term":
		return FormatANSI, nil
	case "json", "doc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension on %q", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatPNG,
		FormatANSI,
		FormatJSON,
	}
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatPNG:  "PNG image, each cell scaled to pixelSize",
		FormatANSI: "Truecolor half-block text for terminals",
		FormatJSON: "pixl JSON document",
	}
}

// ExportToImage renders the canvas as PNG bytes. The same canvas state always
// yields the same bytes.
func ExportToImage(c *canvas.Canvas) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewPNGExporter().Export(c, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
