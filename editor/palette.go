package editor

import "pixl/core"

// DefaultPalette is the 16-color palette bound to the number keys and
// palette mode.
var DefaultPalette = []core.Color{
	core.Black,
	core.White,
	core.Red,
	core.Green,
	core.Blue,
	0xFFFF00, // yellow
	0xFF00FF, // magenta
	0x00FFFF, // cyan
	0x808080, // gray
	0xC0C0C0, // silver
	0x800000, // maroon
	0x008000, // dark green
	0x000080, // navy
	0xFFA500, // orange
	0x800080, // purple
	0xA52A2A, // brown
}

// paletteIndexOf returns the palette slot holding col, or 0.
func (e *Editor) paletteIndexOf(col core.Color) int {
	for i, p := range e.palette {
		if p == col {
			return i
		}
	}
	return 0
}

// paletteKey maps the digit keys to palette slots: 1-9 then 0 for the tenth.
func paletteKey(key rune) (int, bool) {
	switch {
	case key >= '1' && key <= '9':
		return int(key - '1'), true
	case key == '0':
		return 9, true
	}
	return 0, false
}
