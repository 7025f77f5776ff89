package document

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pixl/canvas"
	"pixl/core"
)

func TestRoundTrip(t *testing.T) {
	c, err := canvas.New(3, 2, 7)
	if err != nil {
		t.Fatal(err)
	}
	c.SetPixel(0, 0, core.Red)
	c.SetPixel(2, 1, 0x123456)
	c.SetCurrentColor(core.Blue)

	data, err := Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if diff := cmp.Diff(c.Rows(), back.Rows()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	if got := back.PixelSize(); got != 7 {
		t.Errorf("PixelSize() = %d, want 7", got)
	}
	if got := back.CurrentColor(); got != core.Blue {
		t.Errorf("CurrentColor() = %v, want blue", got)
	}
}

func TestFromCanvas(t *testing.T) {
	c, _ := canvas.New(2, 2, 10)
	c.SetPixel(0, 0, core.Red)
	c.SetPixel(1, 0, core.Green)
	c.SetPixel(0, 1, core.Blue)

	want := &Document{
		Width:        2,
		Height:       2,
		PixelSize:    10,
		CurrentColor: "#000000",
		Pixels: [][]string{
			{"#FF0000", "#00FF00"},
			{"#0000FF", "#FFFFFF"},
		},
	}
	if diff := cmp.Diff(want, FromCanvas(c)); diff != "" {
		t.Errorf("FromCanvas (-want +got):\n%s", diff)
	}
}

func TestUnmarshal_Names(t *testing.T) {
	data := []byte(`{"width":2,"height":1,"pixels":[["red","#00f"]]}`)
	c, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := [][]core.Color{{core.Red, core.Blue}}
	if diff := cmp.Diff(want, c.Rows()); diff != "" {
		t.Errorf("grid (-want +got):\n%s", diff)
	}
	if got := c.PixelSize(); got != 1 {
		t.Errorf("PixelSize() default = %d, want 1", got)
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		doc   Document
		cause error
	}{
		{"RowCount", Document{Width: 1, Height: 2, PixelSize: 1, Pixels: [][]string{{"#FFFFFF"}}}, nil},
		{"RowWidth", Document{Width: 2, Height: 1, PixelSize: 1, Pixels: [][]string{{"#FFFFFF"}}}, nil},
		{"BadColor", Document{Width: 1, Height: 1, PixelSize: 1, Pixels: [][]string{{"purple-ish"}}}, core.ErrInvalidColor},
		{"Empty", Document{Width: 0, Height: 0, PixelSize: 1}, canvas.ErrInvalidDimension},
		{"NegativePixelSize", Document{Width: 1, Height: 1, PixelSize: -2, Pixels: [][]string{{"#FFFFFF"}}}, canvas.ErrInvalidDimension},
		{"BadCurrent", Document{Width: 1, Height: 1, PixelSize: 1, CurrentColor: "?", Pixels: [][]string{{"#FFFFFF"}}}, core.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.doc)
			if err != nil {
				t.Fatal(err)
			}
			_, err = Unmarshal(data)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Unmarshal() error = %v, want ErrMalformed", err)
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("Unmarshal() error = %v, want it to wrap %v", err, tt.cause)
			}
		})
	}

	if _, err := Unmarshal([]byte("{not json")); !errors.Is(err, ErrMalformed) {
		t.Errorf("Unmarshal(garbage) error = %v, want ErrMalformed", err)
	}
}
