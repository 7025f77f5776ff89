package demo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"
	"unicode/utf8"
)

// ErrNoScript is returned by Play when nothing has been loaded.
var ErrNoScript = errors.New("no demo script loaded")

// Command is a single step of a demo.
type Command struct {
	Type     string `json:"type"`     // "key", "text", "pause"
	Value    string `json:"value"`    // keys or text to send
	Delay    int    `json:"delay"`    // base delay in milliseconds
	Variance int    `json:"variance"` // random variance in ms (±variance)
}

// Script is a recorded painting session.
type Script struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Commands     []Command `json:"commands"`
	BaseDelay    int       `json:"base_delay"`
	BaseVariance int       `json:"base_variance"`
}

// Player feeds a script's keystrokes to the painter.
type Player struct {
	script *Script
	onKey  func(rune)

	// Sleep and Intn are replaced in tests.
	Sleep func(time.Duration)
	Intn  func(int) int
}

// NewPlayer creates a player delivering keys to onKey.
func NewPlayer(onKey func(rune)) *Player {
	return &Player{
		onKey: onKey,
		Sleep: time.Sleep,
		Intn:  rand.Intn,
	}
}

// LoadScript reads a script from a JSON file.
func (p *Player) LoadScript(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read demo script: %w", err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return err
	}
	p.script = script
	return nil
}

// SetScript installs an already parsed script.
func (p *Player) SetScript(s *Script) {
	p.script = s
}

// ParseScript decodes a script and fills in default timings.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse demo script: %w", err)
	}
	if script.BaseDelay == 0 {
		script.BaseDelay = 300
	}
	if script.BaseVariance == 0 {
		script.BaseVariance = 100
	}
	return &script, nil
}

// Play sends every command in order, blocking until the script ends or ctx
// is cancelled.
func (p *Player) Play(ctx context.Context) error {
	if p.script == nil {
		return ErrNoScript
	}

	for _, cmd := range p.script.Commands {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch cmd.Type {
		case "key", "text":
			last := utf8.RuneCountInString(cmd.Value) - 1
			i := 0
			for _, ch := range cmd.Value {
				p.onKey(ch)
				// Typing pace between characters
				if cmd.Type == "text" && i < last {
					p.Sleep(time.Duration(30+p.Intn(40)) * time.Millisecond)
				}
				i++
			}
		case "pause":
		default:
			return fmt.Errorf("unknown demo command %q", cmd.Type)
		}

		p.Sleep(p.delay(cmd))
	}
	return nil
}

func (p *Player) delay(cmd Command) time.Duration {
	delay := cmd.Delay
	if delay == 0 {
		delay = p.script.BaseDelay
	}
	variance := cmd.Variance
	if variance == 0 {
		variance = p.script.BaseVariance
	}
	if variance > 0 {
		delay += p.Intn(variance*2) - variance
	}
	if delay < 50 {
		delay = 50
	}
	return time.Duration(delay) * time.Millisecond
}

// Example returns a demo script that draws a framed red square and quits.
func Example() string {
	script := Script{
		Name:         "Framed square",
		Description:  "Draws a border, fills it and quits without saving",
		BaseDelay:    400,
		BaseVariance: 150,
		Commands: []Command{
			{Type: "key", Value: "jl", Delay: 600},
			{Type: "key", Value: "xlxlxjxjxhxhxkx"},
			{Type: "key", Value: "l3", Delay: 600},
			{Type: "key", Value: "f", Delay: 800},
			{Type: "pause", Delay: 1500},
			{Type: "text", Value: ":q!\r"},
		},
	}

	data, _ := json.MarshalIndent(script, "", "  ")
	return string(data)
}
