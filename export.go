package maskedit

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/pixelatelier/maskedit/internal/loader"
)

// ExportMask produces the binary mask for downstream inpainting: a PNG at
// the source image's native resolution containing exactly two colors,
// opaque black for untouched pixels and opaque white for every pixel the
// brush reached. Anti-aliased stroke edges collapse to pure white; no
// intermediate values survive.
//
// The source image is reloaded to establish the native output dimensions,
// so the call may perform a network round-trip. The stroke buffer is
// snapshotted before any I/O; strokes drawn while an export is in flight do
// not affect its result. Returns an error wrapping ErrSourceUnavailable
// when the source cannot be reloaded; the failure is recoverable and the
// caller may retry.
//
// The result is a data:image/png;base64 data URL.
func (e *Editor) ExportMask(ctx context.Context) (string, error) {
	if e.buf == nil {
		return "", ErrNotLoaded
	}
	snapshot := e.buf.Clone()

	img, err := loader.Load(ctx, e.opts.httpClient, e.src)
	if err != nil {
		Logger().Warn("export: source image reload failed",
			"session", e.session, "src", e.src, "err", err)
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// The buffer was sized to the source at load time; scale only if the
	// reloaded source reports different dimensions.
	overlay := snapshot.ToRGBA()
	if snapshot.Width() != w || snapshot.Height() != h {
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.BiLinear.Scale(scaled, scaled.Bounds(), overlay, overlay.Bounds(), xdraw.Src, nil)
		overlay = scaled
	}

	// Black background, then the source-in white flood: any pixel with
	// nonzero coverage becomes pure white.
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(out.Pix); i += 4 {
		if overlay.Pix[i+3] > 0 {
			out.Pix[i+0] = 0xff
			out.Pix[i+1] = 0xff
			out.Pix[i+2] = 0xff
		}
		out.Pix[i+3] = 0xff
	}

	Logger().Debug("mask exported", "session", e.session, "width", w, "height", h)
	return encodePNGDataURL(out)
}

// OverlayDataURL returns the raw stroke buffer as a PNG data URL: the
// marker color on a transparent background, without the black/white
// collapse. Intended for preview and debugging rather than the inpainting
// pipeline.
func (e *Editor) OverlayDataURL() (string, error) {
	if e.buf == nil {
		return "", ErrNotLoaded
	}
	return encodePNGDataURL(e.buf.ToNRGBA())
}

// encodePNGDataURL serializes img as a PNG wrapped in a base64 data URL.
func encodePNGDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("data:image/png;base64,")
	enc := base64.NewEncoder(base64.StdEncoding, &buf)
	if err := png.Encode(enc, img); err != nil {
		return "", fmt.Errorf("maskedit: encode png: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("maskedit: encode png: %w", err)
	}
	return buf.String(), nil
}
