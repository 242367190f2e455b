package maskedit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pixelatelier/maskedit/internal/blend"
	"github.com/pixelatelier/maskedit/internal/loader"
)

// defaultBrushSize is the initial brush diameter in buffer pixels.
const defaultBrushSize = 24

// Editor is the mask canvas engine. It owns a stroke buffer sized to the
// source image, renders brush and eraser gestures into it, and keeps a
// linear snapshot history for undo and redo.
//
// An Editor is driven from a single event-handling goroutine; it is not
// safe for concurrent use.
type Editor struct {
	session string
	opts    editorOptions

	src     string
	buf     *Pixmap
	history *History

	tool      Tool
	brushSize int
	viewport  ElementRect

	// Stroke state machine: drawing is true between a pointer-down and the
	// gesture's end, with last tracking the previous mapped point.
	drawing bool
	last    Point
}

// NewEditor creates an editor with no source image loaded. Stroke and
// history operations are no-ops until Load succeeds.
func NewEditor(opts ...Option) *Editor {
	o := defaultEditorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Editor{
		session:   uuid.NewString(),
		opts:      o,
		tool:      ToolDraw,
		brushSize: defaultBrushSize,
	}
}

// Session returns the editor's session identifier, attached to all of its
// log records.
func (e *Editor) Session() string {
	return e.session
}

// Load fetches and decodes the source image, then creates a fresh stroke
// buffer and history sized to the image's natural dimensions. Loading a new
// source invalidates all prior drawing state.
//
// On failure no buffer is created (or the previous one is discarded) and
// subsequent stroke operations are no-ops.
func (e *Editor) Load(ctx context.Context, src string) error {
	img, err := loader.Load(ctx, e.opts.httpClient, src)
	if err != nil {
		e.src = ""
		e.buf = nil
		e.history = nil
		e.drawing = false
		Logger().Warn("source image load failed",
			"session", e.session, "src", src, "err", err)
		return fmt.Errorf("maskedit: load source image: %w", err)
	}

	bounds := img.Bounds()
	e.src = src
	e.buf = NewPixmap(bounds.Dx(), bounds.Dy())
	e.history = newHistory(e.buf, e.opts.historyLimit)
	e.drawing = false

	Logger().Info("source image loaded",
		"session", e.session, "width", bounds.Dx(), "height", bounds.Dy())
	e.notify()
	return nil
}

// Ready reports whether a source image has been loaded and the stroke
// buffer exists.
func (e *Editor) Ready() bool {
	return e.buf != nil
}

// Size returns the stroke buffer dimensions, which equal the source
// image's natural dimensions. Returns zeros before a successful Load.
func (e *Editor) Size() (width, height int) {
	if e.buf == nil {
		return 0, 0
	}
	return e.buf.Width(), e.buf.Height()
}

// SetViewport records the canvas element's current on-screen rectangle,
// used to map pointer coordinates into buffer pixels. Hosts call this on
// mount and whenever the element is resized or repositioned.
func (e *Editor) SetViewport(rect ElementRect) {
	e.viewport = rect
}

// SetTool selects the brush or eraser. The choice is read at the start of
// each stroke segment.
func (e *Editor) SetTool(t Tool) {
	e.tool = t
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool {
	return e.tool
}

// SetBrushSize sets the brush diameter in buffer pixels.
// Non-positive sizes are clamped to 1.
func (e *Editor) SetBrushSize(px int) {
	if px < 1 {
		px = 1
	}
	e.brushSize = px
}

// BrushSize returns the brush diameter in buffer pixels.
func (e *Editor) BrushSize() int {
	return e.brushSize
}

// PointerDown begins a stroke at the event's position. Ignored while no
// source image is loaded or no surface is mounted.
func (e *Editor) PointerDown(ev PointerEvent) {
	if e.buf == nil {
		return
	}
	pt, err := MapPointerToBuffer(ev, e.viewport, e.buf.Width(), e.buf.Height())
	if err != nil {
		return
	}
	e.drawing = true
	e.last = pt
}

// PointerMove extends the active stroke with a segment from the previous
// point to the event's position, rendered with the active tool and brush
// size. Ignored while no stroke is in progress.
func (e *Editor) PointerMove(ev PointerEvent) {
	if !e.drawing || e.buf == nil {
		return
	}
	pt, err := MapPointerToBuffer(ev, e.viewport, e.buf.Width(), e.buf.Height())
	if err != nil {
		return
	}

	op := blend.SourceOver
	if e.tool == ToolErase {
		op = blend.DestinationOut
	}
	e.buf.strokeSegment(e.last, pt, float64(e.brushSize)/2, e.opts.marker, op)
	e.last = pt
}

// PointerUp ends the active stroke and commits the buffer state as a new
// history entry. Every gesture commits, even one that changed no pixels,
// so each gesture is individually undoable.
func (e *Editor) PointerUp(ev PointerEvent) {
	e.endStroke()
}

// PointerLeave ends the active stroke exactly like PointerUp; leaving the
// canvas mid-gesture commits what was drawn so far.
func (e *Editor) PointerLeave() {
	e.endStroke()
}

func (e *Editor) endStroke() {
	if !e.drawing || e.buf == nil {
		e.drawing = false
		return
	}
	e.drawing = false
	e.history.Push(e.buf)
	Logger().Debug("stroke committed",
		"session", e.session, "tool", e.tool.String(),
		"brush", e.brushSize, "history_index", e.history.Index())
	e.notify()
}

// Undo restores the previous history snapshot. No-op at the initial state.
func (e *Editor) Undo() {
	if e.buf == nil {
		return
	}
	snap := e.history.Undo()
	if snap == nil {
		return
	}
	e.buf.CopyFrom(snap)
	Logger().Debug("undo", "session", e.session, "history_index", e.history.Index())
	e.notify()
}

// Redo restores the next history snapshot. No-op at the newest entry.
func (e *Editor) Redo() {
	if e.buf == nil {
		return
	}
	snap := e.history.Redo()
	if snap == nil {
		return
	}
	e.buf.CopyFrom(snap)
	Logger().Debug("redo", "session", e.session, "history_index", e.history.Index())
	e.notify()
}

// Clear resets the buffer to the empty initial snapshot and truncates the
// history back to that single entry. Clearing an already-empty editor still
// notifies the observer.
func (e *Editor) Clear() {
	if e.buf == nil {
		return
	}
	e.buf.CopyFrom(e.history.Reset())
	Logger().Debug("cleared", "session", e.session)
	e.notify()
}

// HasDrawing reports whether any undoable drawing exists, i.e. the history
// cursor has advanced past the initial empty state.
func (e *Editor) HasDrawing() bool {
	return e.history != nil && e.history.Index() > 0
}

func (e *Editor) notify() {
	if fn := e.opts.onDrawingChanged; fn != nil {
		fn(e.HasDrawing())
	}
}
