package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"pixl/core"
)

// cellWidth is the number of terminal columns per canvas cell, which keeps
// cells roughly square in most fonts.
const cellWidth = 2

// chromeRows is the number of screen rows used by the status and command lines.
const chromeRows = 2

// TUI draws an Editor on a tcell screen and feeds it input events.
type TUI struct {
	editor *Editor
	screen tcell.Screen
	offset core.Point // top-left canvas cell shown on screen
}

// NewTUI binds an editor to an initialised screen.
func NewTUI(e *Editor, screen tcell.Screen) *TUI {
	return &TUI{editor: e, screen: screen}
}

// RunTUI runs the painter on screen until the editor quits. The caller owns
// the screen and must call Init before and Fini after.
func RunTUI(e *Editor, screen tcell.Screen) error {
	return NewTUI(e, screen).Run()
}

// Run is the event loop.
func (t *TUI) Run() error {
	t.screen.EnableMouse()
	t.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t.draw()
	for ev := range events {
		if t.handleEvent(ev) {
			return nil
		}
		t.draw()
	}
	return nil
}

// handleEvent applies one event and reports whether to exit.
func (t *TUI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.editor.HandleKey(translateKey(ev))

	case *tcell.EventMouse:
		t.handleMouse(ev)

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

// translateKey maps tcell keys onto the runes HandleKey understands.
func translateKey(ev *tcell.EventKey) rune {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune()
	case tcell.KeyLeft:
		return 'h'
	case tcell.KeyRight:
		return 'l'
	case tcell.KeyUp:
		return 'k'
	case tcell.KeyDown:
		return 'j'
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyDelete
	case tcell.KeyCtrlR:
		return KeyCtrlR
	case tcell.KeyCtrlC:
		return KeyCtrlC
	}
	return 0
}

// KeyEvent builds the tcell event that translateKey maps back to r. Control
// runes such as KeyEnter become the matching special keys.
func KeyEvent(r rune) *tcell.EventKey {
	switch r {
	case KeyEnter, '\n':
		return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	case KeyEscape:
		return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	case KeyDelete:
		return tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	case KeyCtrlR:
		return tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl)
	case KeyCtrlC:
		return tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	}
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// handleMouse paints with the left button and fills with the right one.
func (t *TUI) handleMouse(ev *tcell.EventMouse) {
	if t.editor.Mode() != ModeNormal {
		return
	}
	mx, my := ev.Position()
	p := core.Point{X: t.offset.X + mx/cellWidth, Y: t.offset.Y + my}
	if !t.editor.Canvas().Bounds().Contains(p) {
		return
	}

	col := t.editor.Canvas().CurrentColor()
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		t.editor.SetCursor(p)
		t.editor.Paint(p.X, p.Y, col)
	case ev.Buttons()&tcell.Button2 != 0:
		t.editor.SetCursor(p)
		t.editor.Fill(p.X, p.Y, col)
	}
}

// viewport returns the number of canvas columns and rows that fit.
func (t *TUI) viewport() (cols, rows int) {
	w, h := t.screen.Size()
	cols = w / cellWidth
	rows = h - chromeRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// scrollToCursor moves the viewport so the cursor is visible.
func (t *TUI) scrollToCursor() {
	cols, rows := t.viewport()
	cur := t.editor.Cursor()
	if cur.X < t.offset.X {
		t.offset.X = cur.X
	}
	if cur.X >= t.offset.X+cols {
		t.offset.X = cur.X - cols + 1
	}
	if cur.Y < t.offset.Y {
		t.offset.Y = cur.Y
	}
	if cur.Y >= t.offset.Y+rows {
		t.offset.Y = cur.Y - rows + 1
	}
}

func (t *TUI) draw() {
	t.screen.Clear()
	t.scrollToCursor()

	c := t.editor.Canvas()
	cols, rows := t.viewport()
	cur := t.editor.Cursor()

	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < cols; sx++ {
			p := core.Point{X: t.offset.X + sx, Y: t.offset.Y + sy}
			col, ok := c.At(p.X, p.Y)
			if !ok {
				continue
			}
			style := tcell.StyleDefault.Background(tcellColor(col))
			left, right := ' ', ' '
			if p == cur {
				style = style.Foreground(tcellColor(contrast(col)))
				left, right = '[', ']'
			}
			t.screen.SetContent(sx*cellWidth, sy, left, nil, style)
			t.screen.SetContent(sx*cellWidth+1, sy, right, nil, style)
		}
	}

	t.drawStatus()
	t.screen.Show()
}

func (t *TUI) drawStatus() {
	w, h := t.screen.Size()
	e := t.editor
	c := e.Canvas()
	cur := e.Cursor()

	status := fmt.Sprintf(" %s  %d,%d  %s", e.Mode(), cur.X, cur.Y, c.CurrentColor())
	if e.Dirty() {
		status += " [+]"
	}
	if e.Mode() == ModePalette {
		palette, idx := e.Palette()
		status += fmt.Sprintf("  palette %d/%d %s", idx+1, len(palette), palette[idx])
	}

	swatch := tcell.StyleDefault.Background(tcellColor(c.CurrentColor()))
	bar := tcell.StyleDefault.Reverse(true)
	t.screen.SetContent(0, h-2, ' ', nil, swatch)
	t.drawText(1, h-2, w-1, status, bar)

	line := e.Message()
	if e.Mode() == ModeCommand {
		line = ":" + e.CommandLine()
	}
	t.drawText(0, h-1, w, line, tcell.StyleDefault)
}

// drawText writes s at (x, y), truncated to width columns.
func (t *TUI) drawText(x, y, width int, s string, style tcell.Style) {
	if width <= 0 {
		return
	}
	s = runewidth.Truncate(s, width, "…")
	s = runewidth.FillRight(s, width)
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func tcellColor(c core.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// contrast picks black or white, whichever reads better on c.
func contrast(c core.Color) core.Color {
	r, g, b := c.RGB()
	if 299*int(r)+587*int(g)+114*int(b) > 128000 {
		return core.Black
	}
	return core.White
}
