package export

import (
	"fmt"
	"io"

	"pixl/canvas"
	"pixl/document"
)

// JSONExporter exports canvases as pixl documents
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export writes the canvas document as indented JSON
func (e *JSONExporter) Export(c *canvas.Canvas, w io.Writer) error {
	if c == nil {
		return fmt.Errorf("canvas is nil")
	}
	data, err := document.Marshal(c)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// FileExtension returns the file extension for JSON
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// FormatName returns the format name
func (e *JSONExporter) FormatName() string {
	return "JSON"
}
