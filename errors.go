package maskedit

import "errors"

var (
	// ErrNotLoaded is returned by exports requested before a source image
	// has been loaded successfully.
	ErrNotLoaded = errors.New("maskedit: no source image loaded")

	// ErrNoSurface is returned by the coordinate mapper when no canvas
	// surface is mounted (the element rectangle has no area).
	ErrNoSurface = errors.New("maskedit: no canvas surface mounted")

	// ErrSourceUnavailable is returned by ExportMask when the source image
	// cannot be reloaded at export time. The failure is recoverable; the
	// caller may retry.
	ErrSourceUnavailable = errors.New("maskedit: source image unavailable")
)
