package layout

import "testing"

func TestPhysicalRectNormalizedClampsWidth(t *testing.T) {
	r := PhysicalRect{X: 100, Y: 0, Width: -40, Height: 10}
	out := r.Normalized()
	if out.X != 60 || out.Width != 0 {
		t.Errorf("got X=%v Width=%v, want X=60 Width=0", out.X, out.Width)
	}
}

func TestPhysicalRectDeflate(t *testing.T) {
	r := PhysicalRect{X: 0, Y: 0, Width: 100, Height: 50}
	out := r.Deflate(Sides[Abs]{Left: 10, Right: 5, Top: 2, Bottom: 3})
	if out.X != 10 || out.Y != 2 {
		t.Errorf("got X=%v Y=%v, want X=10 Y=2", out.X, out.Y)
	}
	if out.Width != 85 || out.Height != 45 {
		t.Errorf("got Width=%v Height=%v, want Width=85 Height=45", out.Width, out.Height)
	}
}

func TestPhysicalRectDeflateClampsAtZero(t *testing.T) {
	r := PhysicalRect{X: 0, Y: 0, Width: 10, Height: 10}
	out := r.Deflate(Sides[Abs]{Left: 100, Right: 100})
	if out.Width != 0 {
		t.Errorf("Width = %v, want 0", out.Width)
	}
}

func TestCornersZero(t *testing.T) {
	if !CornersZero(Corners[Abs]{}) {
		t.Error("zero-value Corners should be CornersZero")
	}
	if CornersZero(Corners[Abs]{TopLeft: 1}) {
		t.Error("Corners with a nonzero corner should not be CornersZero")
	}
}

func TestSidesSplat(t *testing.T) {
	s := SidesSplat(Abs(5))
	if s.Left != 5 || s.Top != 5 || s.Right != 5 || s.Bottom != 5 {
		t.Errorf("SidesSplat(5) = %+v, want all sides 5", s)
	}
}
