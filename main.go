package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"golang.org/x/term"

	"pixl/canvas"
	"pixl/demo"
	"pixl/editor"
	"pixl/export"
	"pixl/importer"
)

// options collects the command line flags.
type options struct {
	width, height, pixelSize int

	interactive bool
	script      string

	format     string
	outputFile string

	inputFormat    string
	inputPixelSize int

	logFile  string
	demoFile string
}

func main() {
	var opts options

	// Canvas flags
	flag.IntVar(&opts.width, "w", 16, "Width of a new canvas in cells")
	flag.IntVar(&opts.height, "h", 16, "Height of a new canvas in cells")
	flag.IntVar(&opts.pixelSize, "pixel-size", 10, "Export scale factor for a new canvas")

	// Mode flags
	flag.BoolVar(&opts.interactive, "i", false, "Interactive painter (default when no -script, -format or -o is given)")
	flag.StringVar(&opts.script, "script", "", "Run editor commands from `file` (- for stdin)")

	// Export flags
	flag.StringVar(&opts.format, "format", "", "Export format: png, ansi, json (default from -o extension, else ansi)")
	flag.StringVar(&opts.outputFile, "o", "", "Output file (default: stdout)")

	// Import flags
	flag.StringVar(&opts.inputFormat, "input-format", "", "Input format: json, png (auto-detect if not specified)")
	flag.IntVar(&opts.inputPixelSize, "input-pixel-size", 1, "Block size when importing a PNG")

	flag.StringVar(&opts.logFile, "log", "", "Write log output to `file` while the painter runs")
	flag.StringVar(&opts.demoFile, "demo", "", "Replay keystrokes from a demo `script` in the painter")
	demoExample := flag.Bool("demo-example", false, "Print an example demo script and exit")

	help := flag.Bool("help", false, "Show help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A pixel-art canvas with flood fill and PNG export.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s art.json                        # Paint art.json (created on :w)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -w 32 -h 32 sprite.json         # New 32x32 canvas\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -o art.png art.json             # Export to PNG\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format ansi art.json           # Preview in the terminal\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -script draw.txt -o out.png     # Batch drawing\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input-pixel-size 10 -o a.json a.png\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -demo square.json               # Replay a recorded session\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPainter keys:\n")
		fmt.Fprintf(os.Stderr, "  h j k l / arrows   move      space, x   paint     f   fill\n")
		fmt.Fprintf(os.Stderr, "  1-9, 0             palette   p          palette   i   pick color\n")
		fmt.Fprintf(os.Stderr, "  u / ctrl-r         undo/redo :          command   q   quit\n")
		fmt.Fprintf(os.Stderr, "\nCommands (painter and -script):\n")
		fmt.Fprintf(os.Stderr, "  set X Y [COLOR]  fill X Y [COLOR]  color COLOR  clear [COLOR]\n")
		fmt.Fprintf(os.Stderr, "  undo  redo  goto X Y  new W H [PIXELSIZE]  pixelsize N\n")
		fmt.Fprintf(os.Stderr, "  export PATH [FORMAT]  w [PATH]  wq  q  q!\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if *demoExample {
		fmt.Println(demo.Example())
		os.Exit(0)
	}

	log.SetFlags(0)
	log.SetPrefix("pixl: ")

	var filename string
	if flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	if err := run(opts, filename, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads or creates the canvas, applies the requested mode and writes any
// export.
func run(opts options, filename string, stdin io.Reader, stdout io.Writer) error {
	c, err := loadCanvas(filename, opts)
	if err != nil {
		return err
	}
	e := editor.New(c, filename)

	if opts.script != "" {
		if err := runScript(e, opts.script, stdin); err != nil {
			return err
		}
	}

	exporting := opts.format != "" || opts.outputFile != ""
	interactive := opts.interactive || opts.demoFile != "" || (opts.script == "" && !exporting)
	if interactive {
		if err := runInteractiveMode(e, opts.logFile, opts.demoFile); err != nil {
			return err
		}
	}

	// A batch run with no export flags previews the result on stdout.
	if exporting || !interactive {
		return exportCanvas(e.Canvas(), opts.format, opts.outputFile, stdout)
	}
	return nil
}

// loadCanvas imports filename, or creates a blank canvas when there is no
// file yet.
func loadCanvas(filename string, opts options) (*canvas.Canvas, error) {
	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case err == nil:
			return importCanvas(data, opts)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("reading %s: %w", filename, err)
		}
		log.Printf("%s does not exist, starting a new canvas", filename)
	}

	c, err := canvas.New(opts.width, opts.height, opts.pixelSize)
	if err != nil {
		return nil, fmt.Errorf("creating canvas: %w", err)
	}
	return c, nil
}

func importCanvas(data []byte, opts options) (*canvas.Canvas, error) {
	registry := importer.NewRegistry(opts.inputPixelSize)

	if opts.inputFormat != "" {
		c, err := registry.ImportWithFormat(data, opts.inputFormat)
		if err != nil {
			return nil, fmt.Errorf("importing canvas: %w", err)
		}
		return c, nil
	}

	c, err := registry.Import(data)
	if err != nil {
		return nil, fmt.Errorf("importing canvas: %w", err)
	}
	return c, nil
}

func runScript(e *editor.Editor, path string, stdin io.Reader) error {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := e.RunScript(r); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}

// exportCanvas writes c to outputFile, or to stdout when it is empty. The
// format defaults to the output file's extension, then to ANSI text.
func exportCanvas(c *canvas.Canvas, format, outputFile string, stdout io.Writer) error {
	exportFormat, err := resolveFormat(format, outputFile)
	if err != nil {
		return err
	}

	exporter, err := export.NewExporter(exportFormat)
	if err != nil {
		return err
	}

	if outputFile == "" {
		if exportFormat == export.FormatPNG && isTerminal(stdout) {
			return fmt.Errorf("refusing to write PNG data to a terminal; use -o")
		}
		return exporter.Export(c, stdout)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := exporter.Export(c, f); err != nil {
		f.Close()
		return fmt.Errorf("exporting canvas: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("exported %s to %s", exporter.FormatName(), outputFile)
	return nil
}

func resolveFormat(format, outputFile string) (export.Format, error) {
	switch {
	case format != "":
		return export.ParseFormat(format)
	case outputFile != "":
		return export.FormatFromPath(outputFile)
	default:
		return export.FormatANSI, nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
