package editor

// Mode represents the current editing mode
type Mode int

const (
	ModeNormal  Mode = iota // Cursor movement and painting
	ModeCommand             // Typing a : command
	ModePalette             // Choosing a palette color
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeCommand:
		return "COMMAND"
	case ModePalette:
		return "PALETTE"
	default:
		return "UNKNOWN"
	}
}

// SetMode changes the editor mode
func (e *Editor) SetMode(mode Mode) {
	e.mode = mode

	// Clear the command buffer when entering or leaving command mode
	e.commandBuffer = e.commandBuffer[:0]

	if mode == ModePalette {
		e.paletteIndex = e.paletteIndexOf(e.canvas.CurrentColor())
	}
}
