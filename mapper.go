package maskedit

// ElementRect describes the on-screen bounding rectangle of the canvas
// element, in viewport (CSS) coordinates. The displayed size may differ
// from the buffer's backing resolution.
type ElementRect struct {
	Left, Top     float64
	Width, Height float64
}

// TouchPoint is a single contact point of a touch-style event.
type TouchPoint struct {
	ClientX, ClientY float64
}

// PointerEvent carries the viewport coordinates of a pointer gesture.
// Mouse-style events populate ClientX/ClientY; touch-style events populate
// Touches, of which the first point is used.
type PointerEvent struct {
	ClientX, ClientY float64
	Touches          []TouchPoint
}

// clientPoint returns the event's viewport coordinate, preferring the
// first touch point when present.
func (ev PointerEvent) clientPoint() Point {
	if len(ev.Touches) > 0 {
		return Pt(ev.Touches[0].ClientX, ev.Touches[0].ClientY)
	}
	return Pt(ev.ClientX, ev.ClientY)
}

// MapPointerToBuffer converts an event's viewport coordinates into buffer
// pixel coordinates, accounting for the ratio between the element's
// displayed size and the buffer's backing resolution:
//
//	x = (clientX - left) * bufferWidth / width
//	y = (clientY - top) * bufferHeight / height
//
// Returns ErrNoSurface when the element rectangle has no area, which is the
// case while no canvas is mounted.
func MapPointerToBuffer(ev PointerEvent, rect ElementRect, bufferWidth, bufferHeight int) (Point, error) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return Point{}, ErrNoSurface
	}
	c := ev.clientPoint()
	return Pt(
		(c.X-rect.Left)*float64(bufferWidth)/rect.Width,
		(c.Y-rect.Top)*float64(bufferHeight)/rect.Height,
	), nil
}
