package editor

import (
	"unicode"
)

// HandleKey processes one key and reports whether the editor should exit.
func (e *Editor) HandleKey(key rune) bool {
	switch e.mode {
	case ModeNormal:
		e.handleNormalKey(key)
	case ModeCommand:
		e.handleCommandKey(key)
	case ModePalette:
		e.handlePaletteKey(key)
	}
	return e.quit
}

// handleNormalKey processes keys in normal mode
func (e *Editor) handleNormalKey(key rune) {
	switch key {
	case 'q':
		e.requestQuit(false)

	case KeyCtrlC:
		e.quit = true

	case 'h':
		e.MoveCursor(-1, 0)
	case 'l':
		e.MoveCursor(1, 0)
	case 'k':
		e.MoveCursor(0, -1)
	case 'j':
		e.MoveCursor(0, 1)
	case 'H':
		e.MoveCursor(-8, 0)
	case 'L':
		e.MoveCursor(8, 0)
	case 'K':
		e.MoveCursor(0, -8)
	case 'J':
		e.MoveCursor(0, 8)

	case ' ', 'x': // Paint with the current color
		e.Paint(e.cursor.X, e.cursor.Y, e.canvas.CurrentColor())

	case 'f': // Flood fill with the current color
		e.Fill(e.cursor.X, e.cursor.Y, e.canvas.CurrentColor())

	case 'i': // Pick the color under the cursor
		if col, ok := e.canvas.At(e.cursor.X, e.cursor.Y); ok {
			e.SetColor(col)
		}

	case 'u':
		e.Undo()

	case KeyCtrlR:
		e.Redo()

	case 'p':
		e.SetMode(ModePalette)

	case ':':
		e.SetMode(ModeCommand)

	default:
		if slot, ok := paletteKey(key); ok && slot < len(e.palette) {
			e.paletteIndex = slot
			e.SetColor(e.palette[slot])
		}
	}
}

// handleCommandKey processes keys in command mode
func (e *Editor) handleCommandKey(key rune) {
	switch key {
	case KeyEscape: // cancel command
		e.SetMode(ModeNormal)

	case KeyDelete, KeyBackspace:
		if len(e.commandBuffer) > 0 {
			e.commandBuffer = e.commandBuffer[:len(e.commandBuffer)-1]
		} else {
			e.SetMode(ModeNormal)
		}

	case KeyEnter, '\n':
		cmd := string(e.commandBuffer)
		e.SetMode(ModeNormal)
		if err := e.Execute(cmd); err != nil {
			e.setMessage("error: %v", err)
		}

	default:
		if unicode.IsPrint(key) {
			e.commandBuffer = append(e.commandBuffer, key)
		}
	}
}

// handlePaletteKey processes keys while choosing a palette color
func (e *Editor) handlePaletteKey(key rune) {
	n := len(e.palette)
	switch key {
	case KeyEscape, 'q':
		e.SetMode(ModeNormal)

	case 'h', 'k':
		e.paletteIndex = (e.paletteIndex + n - 1) % n
	case 'l', 'j':
		e.paletteIndex = (e.paletteIndex + 1) % n

	case KeyEnter, '\n', ' ':
		idx := e.paletteIndex
		e.SetMode(ModeNormal)
		e.SetColor(e.palette[idx])

	default:
		if slot, ok := paletteKey(key); ok && slot < n {
			e.paletteIndex = slot
		}
	}
}

// requestQuit exits unless there are unsaved changes and force is false.
func (e *Editor) requestQuit(force bool) {
	if e.dirty && !force {
		e.setMessage("unsaved changes (use :q! to discard)")
		return
	}
	e.quit = true
}
