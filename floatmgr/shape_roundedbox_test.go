package floatmgr

import (
	"math"
	"testing"

	"github.com/boergens/floatmgr/layout"
)

func almostEqual(a, b layout.Abs) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestRoundedBoxSquareCornersActLikeMarginBox(t *testing.T) {
	rect := layout.LogicalRect{LineLeft: 0, BlockStart: 0, Width: 200, Height: 100}
	b := NewRoundedBox(rect, layout.Corners[layout.Axes[layout.Abs]]{})

	if got := b.LineLeft(40, 60); got != 0 {
		t.Errorf("LineLeft = %v, want 0", got)
	}
	if got := b.LineRight(40, 60); got != 200 {
		t.Errorf("LineRight = %v, want 200", got)
	}
}

func TestRoundedBoxCornerIntrusionAtApex(t *testing.T) {
	// A 50x50 corner radius on every corner of a 200x100 box. At the very
	// top edge (the corner's apex), the intrusion should equal the full
	// radius: the shape touches the box's inline edge only at y == ry.
	radii := layout.CornersSplat(layout.Axes[layout.Abs]{X: 50, Y: 50})
	rect := layout.LogicalRect{LineLeft: 0, BlockStart: 0, Width: 200, Height: 100}
	b := NewRoundedBox(rect, radii)

	if got := b.LineLeft(0, 0); !almostEqual(got, 50) {
		t.Errorf("LineLeft at apex = %v, want 50", got)
	}
}

func TestRoundedBoxCornerIntrusionAtEdgeOfRadius(t *testing.T) {
	// At y == ry (the point where the corner arc meets the straight side),
	// intrusion should be zero.
	radii := layout.CornersSplat(layout.Axes[layout.Abs]{X: 50, Y: 50})
	rect := layout.LogicalRect{LineLeft: 0, BlockStart: 0, Width: 200, Height: 100}
	b := NewRoundedBox(rect, radii)

	if got := b.LineLeft(50, 50); !almostEqual(got, 0) {
		t.Errorf("LineLeft at y=ry = %v, want 0", got)
	}
}

func TestRoundedBoxOnlyTopLeftRounded(t *testing.T) {
	radii := layout.Corners[layout.Axes[layout.Abs]]{
		TopLeft: layout.Axes[layout.Abs]{X: 40, Y: 40},
	}
	rect := layout.LogicalRect{LineLeft: 0, BlockStart: 0, Width: 200, Height: 100}
	b := NewRoundedBox(rect, radii)

	// Band entirely in the straight middle: no intrusion anywhere.
	if got := b.LineLeft(50, 90); got != 0 {
		t.Errorf("LineLeft in straight middle = %v, want 0", got)
	}
	// Band touching the top: intrudes from the rounded top-left corner.
	if got := b.LineLeft(0, 10); got <= 0 {
		t.Errorf("LineLeft touching rounded top = %v, want > 0", got)
	}
	// Bottom-left isn't rounded, so a band touching the bottom sees no
	// intrusion.
	if got := b.LineLeft(90, 100); got != 0 {
		t.Errorf("LineLeft touching square bottom = %v, want 0", got)
	}
}

func TestRoundedBoxTranslated(t *testing.T) {
	rect := layout.LogicalRect{LineLeft: 10, BlockStart: 20, Width: 100, Height: 50}
	b := NewRoundedBox(rect, layout.Corners[layout.Axes[layout.Abs]]{})
	moved := translateShape(b, 5, 7)

	if got := moved.BStart(); got != 27 {
		t.Errorf("BStart after translate = %v, want 27", got)
	}
	if got := moved.LineLeft(30, 40); got != 15 {
		t.Errorf("LineLeft after translate = %v, want 15", got)
	}
}
