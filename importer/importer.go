// Package importer loads canvases from documents and images.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"pixl/canvas"
)

// ErrMalformed is returned when input cannot be turned into a canvas.
var ErrMalformed = errors.New("malformed input")

// Importer interface defines methods for importing canvases from various formats
type Importer interface {
	// CanImport checks if the given content can be imported by this importer
	CanImport(data []byte) bool

	// Import converts the input content into a canvas
	Import(data []byte) (*canvas.Canvas, error)

	// FormatName returns the human-readable name of the format
	FormatName() string

	// FileExtensions returns common file extensions for this format
	FileExtensions() []string
}

// Registry manages available importers
type Registry struct {
	importers []Importer
}

// NewRegistry creates a registry holding the JSON and PNG importers. PNG
// input is read with the given pixel size.
func NewRegistry(pngPixelSize int) *Registry {
	return &Registry{
		importers: []Importer{
			NewJSONImporter(),
			NewPNGImporter(pngPixelSize),
		},
	}
}

// Register adds a new importer to the registry
func (r *Registry) Register(importer Importer) {
	r.importers = append(r.importers, importer)
}

// DetectFormat attempts to detect the format of the given content
func (r *Registry) DetectFormat(data []byte) (Importer, error) {
	for _, imp := range r.importers {
		if imp.CanImport(data) {
			return imp, nil
		}
	}
	return nil, fmt.Errorf("unable to detect format")
}

// Import attempts to import content using auto-detection
func (r *Registry) Import(data []byte) (*canvas.Canvas, error) {
	importer, err := r.DetectFormat(data)
	if err != nil {
		return nil, err
	}
	return importer.Import(data)
}

// ImportWithFormat imports content using a specific format, matched against
// the format name or any of its file extensions.
func (r *Registry) ImportWithFormat(data []byte, format string) (*canvas.Canvas, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))

	for _, imp := range r.importers {
		if strings.ToLower(imp.FormatName()) == format {
			return imp.Import(data)
		}
		for _, ext := range imp.FileExtensions() {
			if strings.TrimPrefix(ext, ".") == format {
				return imp.Import(data)
			}
		}
	}

	return nil, fmt.Errorf("unknown format: %s", format)
}

// GetAvailableFormats returns a list of available import formats
func (r *Registry) GetAvailableFormats() []string {
	formats := make([]string, len(r.importers))
	for i, imp := range r.importers {
		formats[i] = imp.FormatName()
	}
	return formats
}
