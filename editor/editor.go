// Package editor implements the pixl painter: a vi-style state machine over a
// canvas, its : command language and a tcell front end.
package editor

import (
	"fmt"

	"pixl/canvas"
	"pixl/core"
)

// Key codes delivered to HandleKey for non-printable keys.
const (
	KeyCtrlC     rune = 3
	KeyBackspace rune = 8
	KeyEnter     rune = 13
	KeyCtrlR     rune = 18
	KeyEscape    rune = 27
	KeyDelete    rune = 127
)

// Editor holds the painter state. It is not tied to a terminal; the TUI feeds
// it keys and draws whatever it reports.
type Editor struct {
	canvas *canvas.Canvas
	path   string // file used by :w when no path is given

	mode          Mode
	cursor        core.Point
	commandBuffer []rune

	palette      []core.Color
	paletteIndex int

	history *History
	message string
	dirty   bool
	quit    bool
}

// New creates an editor over c. path may be empty.
func New(c *canvas.Canvas, path string) *Editor {
	return &Editor{
		canvas:        c,
		path:          path,
		mode:          ModeNormal,
		commandBuffer: []rune{},
		palette:       DefaultPalette,
		history:       NewHistory(historyLimit, c),
	}
}

// Canvas returns the canvas being edited. Undo, redo and :new replace it, so
// callers should not hold on to the result across edits.
func (e *Editor) Canvas() *canvas.Canvas {
	return e.canvas
}

// Path returns the file :w writes to.
func (e *Editor) Path() string {
	return e.path
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Cursor returns the cursor cell.
func (e *Editor) Cursor() core.Point {
	return e.cursor
}

// CommandLine returns the command being typed.
func (e *Editor) CommandLine() string {
	return string(e.commandBuffer)
}

// Message returns the last status message.
func (e *Editor) Message() string {
	return e.message
}

// Dirty reports whether there are unsaved changes.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// Quit reports whether the editor asked to exit.
func (e *Editor) Quit() bool {
	return e.quit
}

// Palette returns the palette and the highlighted slot.
func (e *Editor) Palette() ([]core.Color, int) {
	return e.palette, e.paletteIndex
}

// History returns the undo stack.
func (e *Editor) History() *History {
	return e.history
}

func (e *Editor) setMessage(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
}

// MoveCursor moves the cursor by (dx, dy), clamped to the canvas.
func (e *Editor) MoveCursor(dx, dy int) {
	e.cursor = e.canvas.Bounds().Clamp(e.cursor.Add(core.Point{X: dx, Y: dy}))
}

// SetCursor places the cursor, clamped to the canvas.
func (e *Editor) SetCursor(p core.Point) {
	e.cursor = e.canvas.Bounds().Clamp(p)
}

// SetColor changes the drawing color.
func (e *Editor) SetColor(col core.Color) {
	e.canvas.SetCurrentColor(col)
	e.setMessage("color %s", col)
}

// Paint sets one cell and records it in history when it changed.
func (e *Editor) Paint(x, y int, col core.Color) {
	old, ok := e.canvas.At(x, y)
	if !ok || old == col {
		return
	}
	e.canvas.SetPixel(x, y, col)
	e.commit()
}

// Fill flood-fills from (x, y) and records the change.
func (e *Editor) Fill(x, y int, col core.Color) int {
	n := e.canvas.FillArea(x, y, col)
	if n > 0 {
		e.commit()
	}
	e.setMessage("filled %d cells", n)
	return n
}

// Clear paints the whole canvas one color.
func (e *Editor) Clear(col core.Color) {
	e.canvas.Clear(col)
	e.commit()
}

// Undo restores the previous state.
func (e *Editor) Undo() bool {
	prev := e.history.Undo()
	if prev == nil {
		e.setMessage("already at oldest change")
		return false
	}
	e.swap(prev)
	cur, total := e.history.Stats()
	e.setMessage("undo %d/%d", cur, total)
	return true
}

// Redo reapplies an undone state.
func (e *Editor) Redo() bool {
	next := e.history.Redo()
	if next == nil {
		e.setMessage("already at newest change")
		return false
	}
	e.swap(next)
	cur, total := e.history.Stats()
	e.setMessage("redo %d/%d", cur, total)
	return true
}

// Replace swaps in a new canvas. Its history starts from that canvas, so
// undo cannot cross back to the old size.
func (e *Editor) Replace(c *canvas.Canvas) {
	e.canvas = c
	e.cursor = c.Bounds().Clamp(e.cursor)
	e.history = NewHistory(historyLimit, c)
	e.dirty = true
}

// swap installs a canvas from history, keeping the drawing color.
func (e *Editor) swap(c *canvas.Canvas) {
	c.SetCurrentColor(e.canvas.CurrentColor())
	e.canvas = c
	e.dirty = true
}

func (e *Editor) commit() {
	e.history.Record(e.canvas)
	e.dirty = true
}
