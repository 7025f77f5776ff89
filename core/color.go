package core

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color token cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is a packed 24-bit RGB value, 0xRRGGBB.
type Color uint32

// Common colors.
const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
	Red   Color = 0xFF0000
	Green Color = 0x00FF00
	Blue  Color = 0x0000FF
)

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns the individual channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String formats the color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// NRGBA returns the opaque image/color equivalent.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts an arbitrary image color, dropping alpha.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(n.R, n.G, n.B)
}

// ParseColor accepts #RRGGBB, RRGGBB, #RGB and CSS color names.
func ParseColor(s string) (Color, error) {
	tok := strings.ToLower(strings.TrimSpace(s))
	if tok == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if named, ok := colornames.Map[tok]; ok {
		return RGB(named.R, named.G, named.B), nil
	}
	if !strings.HasPrefix(tok, "#") {
		tok = "#" + tok
	}
	if len(tok) != 4 && len(tok) != 7 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	hex, err := colorful.Hex(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := hex.RGB255()
	return RGB(r, g, b), nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
