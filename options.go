package maskedit

import "net/http"

// Option configures an Editor during creation.
//
// Example:
//
//	ed := maskedit.NewEditor(
//		maskedit.WithHistoryLimit(100),
//		maskedit.WithDrawingChanged(func(has bool) { confirm.SetEnabled(has) }),
//	)
type Option func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	marker           RGBA
	historyLimit     int
	httpClient       *http.Client
	onDrawingChanged func(bool)
}

// defaultEditorOptions returns the default editor options.
func defaultEditorOptions() editorOptions {
	return editorOptions{
		marker:       DefaultMarker,
		historyLimit: 0, // unbounded
	}
}

// WithMarkerColor sets the color used for drawn strokes.
// The exporter collapses any marker hue to pure white, so this only affects
// the overlay appearance.
func WithMarkerColor(c RGBA) Option {
	return func(o *editorOptions) {
		o.marker = c
	}
}

// WithHistoryLimit caps the number of undoable snapshots kept beyond the
// initial empty state. When the cap is exceeded the oldest non-initial
// snapshot is evicted, so undoing past the cap lands on the empty state.
// A limit of 0 (the default) keeps every snapshot.
func WithHistoryLimit(n int) Option {
	return func(o *editorOptions) {
		o.historyLimit = n
	}
}

// WithHTTPClient sets the HTTP client used to fetch remote source images.
// Defaults to http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(o *editorOptions) {
		o.httpClient = c
	}
}

// WithDrawingChanged registers a callback invoked after every
// state-changing operation with whether any undoable drawing exists.
// Hosts use it to enable or disable dependent controls.
func WithDrawingChanged(fn func(hasDrawing bool)) Option {
	return func(o *editorOptions) {
		o.onDrawingChanged = fn
	}
}
