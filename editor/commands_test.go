package editor

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pixl/core"
	"pixl/document"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name    string
		cmds    []string
		check   func(t *testing.T, e *Editor)
		wantErr error
	}{
		{
			name: "SetWithColor",
			cmds: []string{"set 1 1 #00FF00"},
			check: func(t *testing.T, e *Editor) {
				if got, _ := e.Canvas().At(1, 1); got != core.Green {
					t.Errorf("At(1,1) = %v, want green", got)
				}
			},
		},
		{
			name: "SetUsesCurrentColor",
			cmds: []string{"color blue", ":set 0 0"},
			check: func(t *testing.T, e *Editor) {
				if got, _ := e.Canvas().At(0, 0); got != core.Blue {
					t.Errorf("At(0,0) = %v, want blue", got)
				}
			},
		},
		{
			name: "SetOutOfBoundsIsIgnored",
			cmds: []string{"set 10 10 red"},
			check: func(t *testing.T, e *Editor) {
				if e.Dirty() {
					t.Error("out of bounds set marked the editor dirty")
				}
			},
		},
		{
			name: "FillBehindBarrier",
			cmds: []string{"set 1 0 red", "set 1 1 red", "set 1 2 red", "fill 0 0 blue"},
			check: func(t *testing.T, e *Editor) {
				if got, _ := e.Canvas().At(0, 2); got != core.Blue {
					t.Errorf("At(0,2) = %v, want blue", got)
				}
				if got, _ := e.Canvas().At(2, 0); got != core.White {
					t.Errorf("At(2,0) = %v, fill crossed the barrier", got)
				}
			},
		},
		{
			name: "ClearAndUndo",
			cmds: []string{"clear black", "undo"},
			check: func(t *testing.T, e *Editor) {
				if got, _ := e.Canvas().At(2, 2); got != core.White {
					t.Errorf("At(2,2) = %v, want white after undo", got)
				}
			},
		},
		{
			name: "Redo",
			cmds: []string{"clear black", "undo", "redo"},
			check: func(t *testing.T, e *Editor) {
				if got, _ := e.Canvas().At(2, 2); got != core.Black {
					t.Errorf("At(2,2) = %v, want black after redo", got)
				}
			},
		},
		{
			name: "New",
			cmds: []string{"goto 2 2", "new 8 6 3"},
			check: func(t *testing.T, e *Editor) {
				c := e.Canvas()
				if w, h := c.Size(); w != 8 || h != 6 {
					t.Errorf("Size() = (%d, %d), want (8, 6)", w, h)
				}
				if got := c.PixelSize(); got != 3 {
					t.Errorf("PixelSize() = %d, want 3", got)
				}
				if e.History().CanUndo() {
					t.Error("new canvas should start a fresh history")
				}
			},
		},
		{
			name: "Goto",
			cmds: []string{"goto 2 1"},
			check: func(t *testing.T, e *Editor) {
				if got := e.Cursor(); got != (core.Point{X: 2, Y: 1}) {
					t.Errorf("Cursor() = %v", got)
				}
			},
		},
		{
			name: "PixelSize",
			cmds: []string{"pixelsize 12"},
			check: func(t *testing.T, e *Editor) {
				if got := e.Canvas().PixelSize(); got != 12 {
					t.Errorf("PixelSize() = %d, want 12", got)
				}
			},
		},
		{name: "Unknown", cmds: []string{"paint 1 1"}, wantErr: ErrUnknownCommand},
		{name: "BadCoordinate", cmds: []string{"set a 1"}, wantErr: ErrBadArgument},
		{name: "BadColor", cmds: []string{"fill 0 0 mauve-ish"}, wantErr: ErrBadArgument},
		{name: "MissingArgs", cmds: []string{"set 1"}, wantErr: ErrBadArgument},
		{name: "ColorArity", cmds: []string{"color"}, wantErr: ErrBadArgument},
		{name: "NewTooSmall", cmds: []string{"new 0 4"}},
		{name: "NewOverflowingSize", cmds: []string{"new 4611686018427387904 4611686018427387904"}},
		{name: "PixelSizeTooLarge", cmds: []string{"pixelsize 1152921504606846976"}},
		{name: "WriteWithoutPath", cmds: []string{"w"}, wantErr: ErrNoPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t, 3, 3)
			var err error
			for _, cmd := range tt.cmds {
				if err = e.Execute(cmd); err != nil {
					break
				}
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.check == nil {
				if err == nil {
					t.Fatal("Execute() error = nil, want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			tt.check(t, e)
		})
	}
}

func TestRunScript(t *testing.T) {
	script := `
# border with a filled interior
new 5 5 10
color black
set 0 0
set 1 0
set 2 0
set 3 0
set 4 0
set 0 4
set 1 4
set 2 4
set 3 4
set 4 4
set 0 1
set 0 2
set 0 3
set 4 1
set 4 2
set 4 3
fill 2 2 #FF8800
q!
set 2 2 blue
`
	e := newTestEditor(t, 1, 1)
	if err := e.RunScript(strings.NewReader(script)); err != nil {
		t.Fatalf("RunScript() error = %v", err)
	}
	if !e.Quit() {
		t.Error("script did not quit")
	}

	k, o := core.Black, core.Color(0xFF8800)
	want := [][]core.Color{
		{k, k, k, k, k},
		{k, o, o, o, k},
		{k, o, o, o, k},
		{k, o, o, o, k},
		{k, k, k, k, k},
	}
	if diff := cmp.Diff(want, e.Canvas().Rows()); diff != "" {
		t.Errorf("grid (-want +got):\n%s", diff)
	}
}

func TestRunScript_ReportsLine(t *testing.T) {
	e := newTestEditor(t, 2, 2)
	err := e.RunScript(strings.NewReader("set 0 0 red\n\nexplode\n"))
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("RunScript() error = %v, want ErrUnknownCommand", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not name line 3", err)
	}
}

func TestSaveAndExport(t *testing.T) {
	dir := t.TempDir()
	e := newTestEditor(t, 2, 2)
	if err := e.Execute("set 0 0 red"); err != nil {
		t.Fatal(err)
	}

	docPath := filepath.Join(dir, "art.json")
	if err := e.Execute("w " + docPath); err != nil {
		t.Fatalf(":w error = %v", err)
	}
	if e.Dirty() {
		t.Error("editor still dirty after :w")
	}
	if e.Path() != docPath {
		t.Errorf("Path() = %q, want %q", e.Path(), docPath)
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		t.Fatal(err)
	}
	back, err := document.Unmarshal(data)
	if err != nil {
		t.Fatalf("saved document does not load: %v", err)
	}
	if diff := cmp.Diff(e.Canvas().Rows(), back.Rows()); diff != "" {
		t.Errorf("saved grid (-want +got):\n%s", diff)
	}

	pngPath := filepath.Join(dir, "art.out")
	if err := e.Execute("export " + pngPath + " png"); err != nil {
		t.Fatalf(":export error = %v", err)
	}
	if e.Path() != docPath {
		t.Error(":export changed the document path")
	}
	raw, err := os.ReadFile(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("exported file is not a png: %v", err)
	}
	if got := core.FromColor(img.At(0, 0)); got != core.Red {
		t.Errorf("exported pixel = %v, want red", got)
	}

	if err := e.Execute("export " + filepath.Join(dir, "art.bmp")); err == nil {
		t.Error("export to unknown extension should fail")
	}

	if err := e.Execute("wq"); err != nil {
		t.Fatalf(":wq error = %v", err)
	}
	if !e.Quit() {
		t.Error(":wq did not quit")
	}
}
