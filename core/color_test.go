package core

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"#FFFFFF", White, false},
		{"#ff0000", Red, false},
		{"00FF00", Green, false},
		{"#00f", Blue, false},
		{"  #123456 ", 0x123456, false},
		{"red", Red, false},
		{"CornflowerBlue", 0x6495ED, false},
		{"black", Black, false},
		{"", 0, true},
		{"#12345", 0, true},
		{"#GG0000", 0, true},
		{"notacolor", 0, true},
		{"#1234567", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, Red, 0x0A0B0C, 0xABCDEF} {
		s := c.String()
		if len(s) != 7 || s[0] != '#' {
			t.Errorf("String() = %q, want #RRGGBB", s)
		}
		back, err := ParseColor(s)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", s, err)
		}
		if back != c {
			t.Errorf("round trip %v -> %q -> %v", c, s, back)
		}
	}
	if got := Color(0x00FF00).String(); got != "#00FF00" {
		t.Errorf("String() = %q, want #00FF00", got)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"NRGBA", color.NRGBA{R: 1, G: 2, B: 3, A: 255}, 0x010203},
		{"RGBA", color.RGBA{R: 255, A: 255}, Red},
		{"Gray", color.Gray{Y: 0x80}, 0x808080},
		{"Color", Blue, Blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Rect(5, 3)
	tests := []struct {
		in, want Point
	}{
		{Point{2, 1}, Point{2, 1}},
		{Point{-1, -4}, Point{0, 0}},
		{Point{9, 9}, Point{4, 2}},
	}
	for _, tt := range tests {
		if got := b.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if !b.Contains(b.Clamp(tt.in)) {
			t.Errorf("Clamp(%v) left the bounds", tt.in)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	for _, d := range Directions {
		sum := d.Delta().Add(d.Opposite().Delta())
		if sum != (Point{}) {
			t.Errorf("%v + opposite = %v, want origin", d, sum)
		}
	}
}
