package maskedit

import (
	"bytes"
	"image"
	"image/color"
)

// Pixmap is the stroke buffer: a rectangular pixel raster holding
// premultiplied RGBA values, 4 bytes per pixel. A freshly created Pixmap is
// fully transparent.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (premultiplied RGBA, 4 bytes per pixel).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clone creates an independent copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	clone := NewPixmap(p.width, p.height)
	copy(clone.data, p.data)
	return clone
}

// Equal reports whether two pixmaps have identical dimensions and
// byte-identical pixel data.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if q == nil {
		return false
	}
	return p.width == q.width && p.height == q.height && bytes.Equal(p.data, q.data)
}

// CopyFrom overwrites the pixmap's pixels with those of q.
// The two pixmaps must have identical dimensions; mismatched sources are
// ignored.
func (p *Pixmap) CopyFrom(q *Pixmap) {
	if q == nil || q.width != p.width || q.height != p.height {
		return
	}
	copy(p.data, q.data)
}

// Clear resets every pixel to fully transparent.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// AlphaAt returns the alpha component at (x, y).
// Returns 0 for coordinates outside the pixmap bounds.
func (p *Pixmap) AlphaAt(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[(y*p.width+x)*4+3]
}

// ToRGBA copies the pixmap into an image.RGBA, which shares the
// premultiplied representation.
func (p *Pixmap) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// ToNRGBA converts the pixmap to a straight-alpha image.NRGBA.
// Un-premultiplying preserves the marker hue for the overlay export.
func (p *Pixmap) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i := 0; i < len(p.data); i += 4 {
		a := p.data[i+3]
		if a == 0 {
			continue
		}
		img.Pix[i+0] = unmul8(p.data[i+0], a)
		img.Pix[i+1] = unmul8(p.data[i+1], a)
		img.Pix[i+2] = unmul8(p.data[i+2], a)
		img.Pix[i+3] = a
	}
	return img
}

// unmul8 reverses premultiplication of a single component with rounding.
func unmul8(v, a uint8) uint8 {
	x := (uint16(v)*255 + uint16(a)/2) / uint16(a)
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
