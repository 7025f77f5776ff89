package editor

import (
	"testing"

	"pixl/canvas"
	"pixl/core"
)

func historyCanvas(t *testing.T, marker core.Color) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(2, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	c.SetPixel(0, 0, marker)
	return c
}

func marker(t *testing.T, c *canvas.Canvas) core.Color {
	t.Helper()
	if c == nil {
		t.Fatal("got nil snapshot")
	}
	col, _ := c.At(0, 0)
	return col
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory(5, historyCanvas(t, 1))
	h.Record(historyCanvas(t, 2))
	h.Record(historyCanvas(t, 3))

	if pos, total := h.Stats(); pos != 3 || total != 3 {
		t.Errorf("Stats() = (%d, %d), want (3, 3)", pos, total)
	}

	if got := marker(t, h.Undo()); got != 2 {
		t.Errorf("Undo() = %v, want marker 2", got)
	}
	if got := marker(t, h.Undo()); got != 1 {
		t.Errorf("Undo() = %v, want marker 1", got)
	}
	if h.CanUndo() || h.Undo() != nil {
		t.Error("undo past the initial canvas should return nil")
	}

	if got := marker(t, h.Redo()); got != 2 {
		t.Errorf("Redo() = %v, want marker 2", got)
	}
	h.Redo()
	if h.CanRedo() || h.Redo() != nil {
		t.Error("redo past the newest snapshot should return nil")
	}
}

func TestHistory_LimitDropsOldest(t *testing.T) {
	h := NewHistory(3, historyCanvas(t, 1))
	for m := core.Color(2); m <= 5; m++ {
		h.Record(historyCanvas(t, m))
	}

	if pos, total := h.Stats(); pos != 3 || total != 3 {
		t.Errorf("Stats() = (%d, %d), want (3, 3)", pos, total)
	}
	h.Undo()
	if got := marker(t, h.Undo()); got != 3 {
		t.Errorf("oldest kept snapshot = %v, want marker 3", got)
	}
}

func TestHistory_RecordAfterUndoDropsRedo(t *testing.T) {
	h := NewHistory(10, historyCanvas(t, 1))
	h.Record(historyCanvas(t, 2))
	h.Undo()
	h.Record(historyCanvas(t, 3))

	if h.CanRedo() {
		t.Error("recording after undo should drop the undone snapshot")
	}
	if _, total := h.Stats(); total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if got := marker(t, h.Undo()); got != 1 {
		t.Errorf("Undo() = %v, want marker 1", got)
	}
}

func TestHistory_SnapshotsArePrivate(t *testing.T) {
	live := historyCanvas(t, core.Red)
	h := NewHistory(10, live)
	live.SetPixel(0, 0, core.Blue)
	h.Record(live)
	live.SetPixel(0, 0, core.Green)

	prev := h.Undo()
	if got := marker(t, prev); got != core.Red {
		t.Errorf("initial snapshot = %v, want red", got)
	}
	prev.SetPixel(0, 0, core.Black)

	if got := marker(t, h.Redo()); got != core.Blue {
		t.Errorf("recorded snapshot = %v, want blue", got)
	}
	if got := marker(t, h.Undo()); got != core.Red {
		t.Errorf("mutating an undo result leaked into history: %v", got)
	}
}

func TestHistory_ZeroLimitUsesDefault(t *testing.T) {
	h := NewHistory(0, historyCanvas(t, 1))
	for i := 0; i < historyLimit+10; i++ {
		h.Record(historyCanvas(t, core.Color(i)))
	}
	if _, total := h.Stats(); total != historyLimit {
		t.Errorf("total = %d, want %d", total, historyLimit)
	}
}
