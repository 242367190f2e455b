package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Script is a replayable sequence of strokes.
//
// Example script:
//
//	[[stroke]]
//	tool = "draw"
//	size = 32
//	points = [[40, 40], [200, 120], [360, 80]]
//
//	[[stroke]]
//	tool = "erase"
//	points = [[200, 120], [240, 130]]
type Script struct {
	Strokes []Stroke `toml:"stroke"`
}

// Stroke is one pointer-down-to-pointer-up gesture.
type Stroke struct {
	Tool   string       `toml:"tool"` // "draw" (default) or "erase"
	Size   int          `toml:"size"` // brush diameter in pixels; 0 uses the -brush flag
	Points [][2]float64 `toml:"points"`
}

// loadScript parses a TOML stroke script.
func loadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	return &s, nil
}

// defaultScript draws a diagonal gesture across the image.
func defaultScript(w, h int) *Script {
	fw, fh := float64(w), float64(h)
	return &Script{Strokes: []Stroke{{
		Tool: "draw",
		Points: [][2]float64{
			{fw * 0.2, fh * 0.2},
			{fw * 0.5, fh * 0.5},
			{fw * 0.8, fh * 0.8},
		},
	}}}
}
