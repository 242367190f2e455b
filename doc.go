// Package maskedit implements a headless raster mask editor for product
// photographs: freehand brush and eraser strokes over a source image,
// snapshot-based undo/redo, and export of the selection as a strict
// two-color (black/white) mask at the image's native resolution.
//
// The editor owns a premultiplied-alpha pixel buffer sized to the source
// image. Pointer gestures (down, move, up) are translated from viewport
// coordinates into buffer pixels and rendered as anti-aliased round-capped
// stroke segments. Every completed gesture commits a full snapshot to a
// linear history, so undo and redo restore pixel content byte for byte.
//
// Basic usage:
//
//	ed := maskedit.NewEditor()
//	if err := ed.Load(ctx, "https://example.com/photo.jpg"); err != nil {
//		return err
//	}
//	w, h := ed.Size()
//	ed.SetViewport(maskedit.ElementRect{Width: float64(w), Height: float64(h)})
//	ed.SetBrushSize(32)
//	ed.PointerDown(maskedit.PointerEvent{ClientX: 10, ClientY: 10})
//	ed.PointerMove(maskedit.PointerEvent{ClientX: 120, ClientY: 80})
//	ed.PointerUp(maskedit.PointerEvent{ClientX: 120, ClientY: 80})
//	mask, err := ed.ExportMask(ctx) // data:image/png;base64,...
//
// The exported mask contains exactly two colors: opaque black for untouched
// pixels and opaque white for every pixel the brush reached, including
// anti-aliased stroke edges. Downstream inpainting services rely on this
// binary property.
//
// An Editor is not safe for concurrent use; drive it from a single
// event-handling goroutine.
package maskedit
