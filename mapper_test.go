package maskedit

import (
	"errors"
	"math"
	"testing"
)

func TestMapPointerToBufferCenter(t *testing.T) {
	tests := []struct {
		name             string
		rect             ElementRect
		bufferW, bufferH int
	}{
		{"1:1", ElementRect{Left: 10, Top: 20, Width: 100, Height: 100}, 100, 100},
		{"2:1 displayed", ElementRect{Left: 0, Top: 0, Width: 200, Height: 200}, 100, 100},
		{"0.5:1 displayed", ElementRect{Left: 5, Top: 5, Width: 50, Height: 50}, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := PointerEvent{
				ClientX: tt.rect.Left + tt.rect.Width/2,
				ClientY: tt.rect.Top + tt.rect.Height/2,
			}
			pt, err := MapPointerToBuffer(ev, tt.rect, tt.bufferW, tt.bufferH)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			wantX := float64(tt.bufferW) / 2
			wantY := float64(tt.bufferH) / 2
			if math.Abs(pt.X-wantX) > 1e-9 || math.Abs(pt.Y-wantY) > 1e-9 {
				t.Errorf("center event mapped to (%g, %g), expected (%g, %g)", pt.X, pt.Y, wantX, wantY)
			}
		})
	}
}

func TestMapPointerToBufferOffsets(t *testing.T) {
	rect := ElementRect{Left: 50, Top: 100, Width: 200, Height: 100}
	pt, err := MapPointerToBuffer(PointerEvent{ClientX: 50, ClientY: 100}, rect, 400, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.X != 0 || pt.Y != 0 {
		t.Errorf("top-left corner should map to origin, got (%g, %g)", pt.X, pt.Y)
	}

	pt, err = MapPointerToBuffer(PointerEvent{ClientX: 250, ClientY: 200}, rect, 400, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.X != 400 || pt.Y != 300 {
		t.Errorf("bottom-right corner should map to (400, 300), got (%g, %g)", pt.X, pt.Y)
	}
}

func TestMapPointerPrefersFirstTouch(t *testing.T) {
	rect := ElementRect{Width: 100, Height: 100}
	ev := PointerEvent{
		ClientX: 90, ClientY: 90, // stale mouse coordinates
		Touches: []TouchPoint{{ClientX: 10, ClientY: 20}, {ClientX: 70, ClientY: 70}},
	}
	pt, err := MapPointerToBuffer(ev, rect, 100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.X != 10 || pt.Y != 20 {
		t.Errorf("expected the first touch point, got (%g, %g)", pt.X, pt.Y)
	}
}

func TestMapPointerWithoutSurface(t *testing.T) {
	_, err := MapPointerToBuffer(PointerEvent{ClientX: 10, ClientY: 10}, ElementRect{}, 100, 100)
	if !errors.Is(err, ErrNoSurface) {
		t.Errorf("expected ErrNoSurface, got %v", err)
	}

	_, err = MapPointerToBuffer(PointerEvent{}, ElementRect{Width: 100, Height: -1}, 100, 100)
	if !errors.Is(err, ErrNoSurface) {
		t.Errorf("expected ErrNoSurface for a degenerate rect, got %v", err)
	}
}
