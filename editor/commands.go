package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"pixl/canvas"
	"pixl/core"
	"pixl/export"
)

// Command errors
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgument    = errors.New("bad argument")
	ErrNoPath         = errors.New("no file name")
)

// Execute runs one : command. The leading colon is optional.
func (e *Editor) Execute(cmd string) error {
	parts := strings.Fields(strings.TrimPrefix(strings.TrimSpace(cmd), ":"))
	if len(parts) == 0 {
		return nil
	}
	args := parts[1:]

	switch parts[0] {
	case "set", "s":
		x, y, col, err := e.pointArgs(args)
		if err != nil {
			return fmt.Errorf("set: %w", err)
		}
		e.Paint(x, y, col)

	case "fill", "f":
		x, y, col, err := e.pointArgs(args)
		if err != nil {
			return fmt.Errorf("fill: %w", err)
		}
		e.Fill(x, y, col)

	case "color", "c":
		if len(args) != 1 {
			return fmt.Errorf("color: %w: want COLOR", ErrBadArgument)
		}
		col, err := parseColorArg(args[0])
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		e.SetColor(col)

	case "clear":
		col := canvas.DefaultBackground
		if len(args) > 0 {
			var err error
			if col, err = parseColorArg(args[0]); err != nil {
				return fmt.Errorf("clear: %w", err)
			}
		}
		e.Clear(col)

	case "undo":
		e.Undo()

	case "redo":
		e.Redo()

	case "goto", "g":
		if len(args) != 2 {
			return fmt.Errorf("goto: %w: want X Y", ErrBadArgument)
		}
		x, y, err := parseXY(args[0], args[1])
		if err != nil {
			return fmt.Errorf("goto: %w", err)
		}
		e.SetCursor(core.Point{X: x, Y: y})

	case "new":
		c, err := newCanvasArgs(args, e.canvas.PixelSize())
		if err != nil {
			return fmt.Errorf("new: %w", err)
		}
		c.SetCurrentColor(e.canvas.CurrentColor())
		e.Replace(c)
		e.setMessage("new %dx%d canvas", c.Bounds().Width(), c.Bounds().Height())

	case "pixelsize", "ps":
		if len(args) != 1 {
			return fmt.Errorf("pixelsize: %w: want N", ErrBadArgument)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("pixelsize: %w: %q", ErrBadArgument, args[0])
		}
		if err := e.canvas.SetPixelSize(n); err != nil {
			return fmt.Errorf("pixelsize: %w", err)
		}
		e.commit()

	case "export", "e":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("export: %w: want PATH [FORMAT]", ErrBadArgument)
		}
		format := ""
		if len(args) == 2 {
			format = args[1]
		}
		return e.Export(args[0], format)

	case "w", "write":
		path := e.path
		if len(args) > 0 {
			path = args[0]
		}
		return e.Save(path)

	case "wq", "x":
		path := e.path
		if len(args) > 0 {
			path = args[0]
		}
		if err := e.Save(path); err != nil {
			return err
		}
		e.quit = true

	case "q", "quit":
		e.requestQuit(false)

	case "q!":
		e.requestQuit(true)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}

	return nil
}

// RunScript executes commands from r, one per line. Blank lines and lines
// starting with # are skipped. Execution stops at the first error or when a
// command quits.
func (e *Editor) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := e.Execute(text); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if e.quit {
			break
		}
	}
	return scanner.Err()
}

// Save writes the canvas to path, in the format its extension names. Paths
// without a known extension are written as JSON documents.
func (e *Editor) Save(path string) error {
	if path == "" {
		return ErrNoPath
	}
	format, err := export.FormatFromPath(path)
	if err != nil {
		format = export.FormatJSON
	}
	if err := e.writeFile(path, format); err != nil {
		return err
	}
	e.path = path
	e.dirty = false
	return nil
}

// Export writes the canvas to path without changing the editor's file name.
// An empty format is taken from the path's extension.
func (e *Editor) Export(path, format string) error {
	var (
		f   export.Format
		err error
	)
	if format == "" {
		f, err = export.FormatFromPath(path)
	} else {
		f, err = export.ParseFormat(format)
	}
	if err != nil {
		return err
	}
	return e.writeFile(path, f)
}

func (e *Editor) writeFile(path string, format export.Format) error {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exporter.Export(e.canvas, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("wrote %s (%s)", path, exporter.FormatName())
	e.setMessage("wrote %s", path)
	return nil
}

// pointArgs parses "X Y [COLOR]"; a missing color means the current one.
func (e *Editor) pointArgs(args []string) (x, y int, col core.Color, err error) {
	if len(args) < 2 || len(args) > 3 {
		return 0, 0, 0, fmt.Errorf("%w: want X Y [COLOR]", ErrBadArgument)
	}
	x, y, err = parseXY(args[0], args[1])
	if err != nil {
		return 0, 0, 0, err
	}
	col = e.canvas.CurrentColor()
	if len(args) == 3 {
		col, err = parseColorArg(args[2])
	}
	return x, y, col, err
}

func parseXY(xs, ys string) (int, int, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: x %q", ErrBadArgument, xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: y %q", ErrBadArgument, ys)
	}
	return x, y, nil
}

func parseColorArg(s string) (core.Color, error) {
	col, err := core.ParseColor(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadArgument, err)
	}
	return col, nil
}

// newCanvasArgs parses "W H [PIXELSIZE]".
func newCanvasArgs(args []string, pixelSize int) (*canvas.Canvas, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("%w: want W H [PIXELSIZE]", ErrBadArgument)
	}
	w, h, err := parseXY(args[0], args[1])
	if err != nil {
		return nil, err
	}
	if len(args) == 3 {
		if pixelSize, err = strconv.Atoi(args[2]); err != nil {
			return nil, fmt.Errorf("%w: pixel size %q", ErrBadArgument, args[2])
		}
	}
	return canvas.New(w, h, pixelSize)
}
