// Command maskdemo replays a stroke script against a source image and
// writes the resulting binary mask and raw overlay PNGs. It exercises the
// full maskedit surface headlessly and doubles as a fixture generator.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/pixelatelier/maskedit"
)

func main() {
	var (
		imagePath  = flag.String("image", "", "source image (file path, http(s) URL, or data URL)")
		maskOut    = flag.String("mask", "mask.png", "output file for the binary mask")
		overlayOut = flag.String("overlay", "", "optional output file for the raw overlay")
		scriptPath = flag.String("script", "", "TOML stroke script (default: a built-in gesture)")
		brush      = flag.Int("brush", 24, "default brush diameter in pixels")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("maskdemo: -image is required")
	}
	if *verbose {
		maskedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx := context.Background()
	ed := maskedit.NewEditor()
	if err := ed.Load(ctx, *imagePath); err != nil {
		log.Fatalf("maskdemo: %v", err)
	}

	w, h := ed.Size()
	// Headless replay: the viewport matches the buffer 1:1, so script
	// coordinates are buffer pixels.
	ed.SetViewport(maskedit.ElementRect{Width: float64(w), Height: float64(h)})
	ed.SetBrushSize(*brush)

	script := defaultScript(w, h)
	if *scriptPath != "" {
		var err error
		script, err = loadScript(*scriptPath)
		if err != nil {
			log.Fatalf("maskdemo: %v", err)
		}
	}
	replay(ed, script, *brush)

	mask, err := ed.ExportMask(ctx)
	if err != nil {
		log.Fatalf("maskdemo: export mask: %v", err)
	}
	if err := writeDataURL(*maskOut, mask); err != nil {
		log.Fatalf("maskdemo: %v", err)
	}
	log.Printf("mask saved to %s (%dx%d)", *maskOut, w, h)

	if *overlayOut != "" {
		overlay, err := ed.OverlayDataURL()
		if err != nil {
			log.Fatalf("maskdemo: export overlay: %v", err)
		}
		if err := writeDataURL(*overlayOut, overlay); err != nil {
			log.Fatalf("maskdemo: %v", err)
		}
		log.Printf("overlay saved to %s", *overlayOut)
	}
}

// replay drives the editor's pointer state machine with each scripted
// stroke: down at the first point, move through the rest, then up.
func replay(ed *maskedit.Editor, s *Script, defaultBrush int) {
	for _, stroke := range s.Strokes {
		if stroke.Tool == "erase" {
			ed.SetTool(maskedit.ToolErase)
		} else {
			ed.SetTool(maskedit.ToolDraw)
		}
		size := stroke.Size
		if size <= 0 {
			size = defaultBrush
		}
		ed.SetBrushSize(size)

		if len(stroke.Points) == 0 {
			continue
		}
		first := stroke.Points[0]
		ed.PointerDown(maskedit.PointerEvent{ClientX: first[0], ClientY: first[1]})
		for _, pt := range stroke.Points[1:] {
			ed.PointerMove(maskedit.PointerEvent{ClientX: pt[0], ClientY: pt[1]})
		}
		last := stroke.Points[len(stroke.Points)-1]
		ed.PointerUp(maskedit.PointerEvent{ClientX: last[0], ClientY: last[1]})
	}
}

// writeDataURL decodes a base64 PNG data URL and writes its payload.
func writeDataURL(path, dataURL string) error {
	comma := strings.IndexByte(dataURL, ',')
	raw, err := base64.StdEncoding.DecodeString(dataURL[comma+1:])
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
