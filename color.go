package maskedit

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// DefaultMarker is the stroke color used for drawn mask regions: a fully
// saturated magenta, chosen to stand apart from plausible photo content.
// The exporter collapses it to pure white, so the hue only matters for the
// on-screen overlay.
var DefaultMarker = RGBA{R: 1, G: 0, B: 1, A: 1}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// premul8 converts the color to premultiplied 8-bit components, the
// representation the stroke buffer stores.
func (c RGBA) premul8() (r, g, b, a uint8) {
	a = uint8(clamp255(c.A * 255))
	r = uint8(clamp255(c.R * c.A * 255))
	g = uint8(clamp255(c.G * c.A * 255))
	b = uint8(clamp255(c.B * c.A * 255))
	return r, g, b, a
}

// withAlpha returns the color with its alpha scaled by t.
func (c RGBA) withAlpha(t float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A * t}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
