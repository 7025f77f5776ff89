package importer

import (
	"bytes"
	"fmt"

	"pixl/canvas"
	"pixl/document"
)

// JSONImporter reads pixl documents
type JSONImporter struct{}

// NewJSONImporter creates a new JSON importer
func NewJSONImporter() *JSONImporter {
	return &JSONImporter{}
}

// CanImport reports whether data looks like a JSON object.
func (i *JSONImporter) CanImport(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// Import decodes a document into a canvas.
func (i *JSONImporter) Import(data []byte) (*canvas.Canvas, error) {
	c, err := document.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return c, nil
}

// FormatName returns the format name
func (i *JSONImporter) FormatName() string {
	return "JSON"
}

// FileExtensions returns the file extensions for JSON
func (i *JSONImporter) FileExtensions() []string {
	return []string{".json"}
}
