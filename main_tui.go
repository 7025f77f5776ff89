package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"pixl/demo"
	"pixl/editor"
)

// runInteractiveMode launches the painter on the controlling terminal. Log
// output is redirected for the duration so it cannot corrupt the screen.
func runInteractiveMode(e *editor.Editor, logFile, demoFile string) error {
	var player *demo.Player
	var screen tcell.Screen

	if demoFile != "" {
		player = demo.NewPlayer(func(r rune) {
			if err := screen.PostEvent(editor.KeyEvent(r)); err != nil {
				log.Printf("demo: dropped key %q: %v", r, err)
			}
		})
		if err := player.LoadScript(demoFile); err != nil {
			return err
		}
	}

	restore, err := redirectLog(logFile)
	if err != nil {
		return err
	}
	defer restore()

	screen, err = tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	defer screen.Fini()

	if player != nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := player.Play(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("demo: %v", err)
			}
		}()
	}

	return editor.RunTUI(e, screen)
}

// redirectLog points the standard logger at path, or discards it when path
// is empty, and returns a function restoring stderr.
func redirectLog(path string) (func(), error) {
	var (
		out     io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	log.SetOutput(out)
	return func() {
		log.SetOutput(os.Stderr)
		closeFn()
	}, nil
}
