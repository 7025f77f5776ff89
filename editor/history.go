package editor

import (
	"slices"

	"pixl/canvas"
)

// historyLimit is the number of snapshots an editor keeps, the live one
// included.
const historyLimit = 50

// History is the undo stack of a painting session. Each entry is a full
// canvas snapshot; pos marks the one the live canvas currently matches.
type History struct {
	snapshots []*canvas.Canvas
	pos       int
	limit     int
}

// NewHistory starts a history whose only snapshot is the initial canvas.
func NewHistory(limit int, initial *canvas.Canvas) *History {
	if limit < 1 {
		limit = historyLimit
	}
	return &History{
		snapshots: []*canvas.Canvas{initial.Clone()},
		limit:     limit,
	}
}

// Record snapshots c after an edit. Undone snapshots are discarded, and the
// oldest ones fall off once the limit is reached.
func (h *History) Record(c *canvas.Canvas) {
	h.snapshots = append(h.snapshots[:h.pos+1], c.Clone())
	if over := len(h.snapshots) - h.limit; over > 0 {
		h.snapshots = slices.Delete(h.snapshots, 0, over)
	}
	h.pos = len(h.snapshots) - 1
}

// CanUndo reports whether an older snapshot exists.
func (h *History) CanUndo() bool {
	return h.pos > 0
}

// CanRedo reports whether an undone snapshot can be reapplied.
func (h *History) CanRedo() bool {
	return h.pos < len(h.snapshots)-1
}

// Undo moves back one snapshot and returns a private copy of it, or nil at
// the oldest one.
func (h *History) Undo() *canvas.Canvas {
	return h.step(-1)
}

// Redo moves forward one snapshot, or returns nil at the newest one.
func (h *History) Redo() *canvas.Canvas {
	return h.step(1)
}

func (h *History) step(delta int) *canvas.Canvas {
	next := h.pos + delta
	if next < 0 || next >= len(h.snapshots) {
		return nil
	}
	h.pos = next
	return h.snapshots[next].Clone()
}

// Stats returns the 1-based position of the live snapshot and the number kept.
func (h *History) Stats() (pos, total int) {
	return h.pos + 1, len(h.snapshots)
}
