package export

import (
	"bufio"
	"fmt"
	"io"

	"pixl/canvas"
	"pixl/core"
)

const (
	upperHalf = '▀'
	sgrReset  = "\x1b[0m"
)

// ANSIExporter renders canvases as truecolor text. Each character cell shows
// two grid rows: the foreground paints the upper one and the background the
// lower one.
type ANSIExporter struct{}

// NewANSIExporter creates a new ANSI exporter
func NewANSIExporter() *ANSIExporter {
	return &ANSIExporter{}
}

// Export writes the canvas as escape-coded lines
func (e *ANSIExporter) Export(c *canvas.Canvas, w io.Writer) error {
	if c == nil {
		return fmt.Errorf("canvas is nil")
	}
	bw := bufio.NewWriter(w)
	rows := c.Rows()

	for y := 0; y < len(rows); y += 2 {
		for x, top := range rows[y] {
			writeFg(bw, top)
			if y+1 < len(rows) {
				writeBg(bw, rows[y+1][x])
			} else {
				bw.WriteString("\x1b[49m")
			}
			bw.WriteRune(upperHalf)
		}
		bw.WriteString(sgrReset)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func writeFg(w *bufio.Writer, c core.Color) {
	r, g, b := c.RGB()
	fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm", r, g, b)
}

func writeBg(w *bufio.Writer, c core.Color) {
	r, g, b := c.RGB()
	fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm", r, g, b)
}

// FileExtension returns the recommended file extension
func (e *ANSIExporter) FileExtension() string {
	return ".ans"
}

// FormatName returns the format name
func (e *ANSIExporter) FormatName() string {
	return "ANSI truecolor text"
}
