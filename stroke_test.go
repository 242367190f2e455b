package maskedit

import (
	"testing"

	"github.com/pixelatelier/maskedit/internal/blend"
)

func TestStrokeSegmentCoverage(t *testing.T) {
	p := NewPixmap(64, 64)
	p.strokeSegment(Pt(10, 32), Pt(54, 32), 5, DefaultMarker, blend.SourceOver)

	if got := p.AlphaAt(32, 32); got != 255 {
		t.Errorf("expected full coverage on the segment spine, got %d", got)
	}
	if got := p.AlphaAt(32, 20); got != 0 {
		t.Errorf("expected zero coverage outside the capsule, got %d", got)
	}
}

func TestStrokeSegmentRoundCaps(t *testing.T) {
	p := NewPixmap(64, 64)
	p.strokeSegment(Pt(20, 32), Pt(40, 32), 6, DefaultMarker, blend.SourceOver)

	// Pixels beyond the endpoint but within the cap radius are covered.
	if got := p.AlphaAt(43, 32); got != 255 {
		t.Errorf("expected the round cap to extend past the endpoint, got %d", got)
	}
	// Pixels past the cap radius are not.
	if got := p.AlphaAt(48, 32); got != 0 {
		t.Errorf("expected no coverage past the cap, got %d", got)
	}
}

func TestStrokeSegmentDegenerateStampsDot(t *testing.T) {
	p := NewPixmap(32, 32)
	p.strokeSegment(Pt(16, 16), Pt(16, 16), 4, DefaultMarker, blend.SourceOver)

	if got := p.AlphaAt(16, 16); got != 255 {
		t.Errorf("expected a dot at the stationary point, got %d", got)
	}
	if got := p.AlphaAt(25, 16); got != 0 {
		t.Errorf("expected no coverage away from the dot, got %d", got)
	}
}

func TestStrokeSegmentEraseClears(t *testing.T) {
	p := NewPixmap(64, 64)
	p.strokeSegment(Pt(10, 32), Pt(54, 32), 5, DefaultMarker, blend.SourceOver)
	p.strokeSegment(Pt(10, 32), Pt(54, 32), 8, DefaultMarker, blend.DestinationOut)

	if got := p.AlphaAt(32, 32); got != 0 {
		t.Errorf("expected destination-out to clear drawn pixels, got %d", got)
	}
}

func TestStrokeSegmentClampedToBounds(t *testing.T) {
	p := NewPixmap(16, 16)
	// A segment mostly outside the buffer must not panic and must only
	// touch in-bounds pixels.
	p.strokeSegment(Pt(-20, 8), Pt(8, 8), 4, DefaultMarker, blend.SourceOver)

	if got := p.AlphaAt(2, 8); got != 255 {
		t.Errorf("expected in-bounds part of the segment to render, got %d", got)
	}
}

func TestStrokeSegmentNonPositiveRadius(t *testing.T) {
	p := NewPixmap(16, 16)
	empty := p.Clone()
	p.strokeSegment(Pt(2, 2), Pt(12, 12), 0, DefaultMarker, blend.SourceOver)
	if !p.Equal(empty) {
		t.Error("a non-positive radius should draw nothing")
	}
}

func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"on segment", Pt(5, 0), Pt(0, 0), Pt(10, 0), 0},
		{"perpendicular", Pt(5, 3), Pt(0, 0), Pt(10, 0), 3},
		{"beyond start", Pt(-4, 0), Pt(0, 0), Pt(10, 0), 4},
		{"beyond end", Pt(13, 4), Pt(0, 0), Pt(10, 0), 5},
		{"degenerate", Pt(3, 4), Pt(0, 0), Pt(0, 0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentDistance(tt.p, tt.a, tt.b); got != tt.want {
				t.Errorf("segmentDistance = %g, expected %g", got, tt.want)
			}
		})
	}
}

func TestSmoothstepCoverage(t *testing.T) {
	if got := smoothstepCoverage(-1); got != 1 {
		t.Errorf("deep inside: expected 1, got %g", got)
	}
	if got := smoothstepCoverage(1); got != 0 {
		t.Errorf("far outside: expected 0, got %g", got)
	}
	mid := smoothstepCoverage(0)
	if mid <= 0 || mid >= 1 {
		t.Errorf("boundary coverage should be fractional, got %g", mid)
	}
}
