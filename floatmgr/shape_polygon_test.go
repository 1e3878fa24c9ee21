package floatmgr

import (
	"testing"

	"github.com/boergens/floatmgr/layout"
)

func pt(x, y layout.Abs) layout.Point { return layout.Point{X: x, Y: y} }

func TestPolygonFewerThanThreeVerticesIsEmpty(t *testing.T) {
	p := NewPolygon([]layout.Point{pt(0, 0), pt(10, 10)})
	if !p.IsEmpty() {
		t.Fatal("two-vertex polygon should be empty")
	}
}

func TestPolygonAllCollinearIsEmpty(t *testing.T) {
	p := NewPolygon([]layout.Point{pt(0, 0), pt(10, 10), pt(20, 20), pt(5, 5)})
	if !p.IsEmpty() {
		t.Fatal("collinear polygon should be empty")
	}
}

func TestPolygonTriangleBStartBEnd(t *testing.T) {
	p := NewPolygon([]layout.Point{pt(0, 0), pt(200, 0), pt(0, 200)})
	if p.IsEmpty() {
		t.Fatal("triangle should not be empty")
	}
	if got := p.BStart(); got != 0 {
		t.Errorf("BStart = %v, want 0", got)
	}
	if got := p.BEnd(); got != 200 {
		t.Errorf("BEnd = %v, want 200", got)
	}
}

// Triangle (0,0), (200,0), (0,200): the hypotenuse runs from (200,0) to
// (0,200), i.e. x = 200 - y along that edge. The left vertical edge
// (0,0)-(0,200) contributes x=0 for the whole band. The band [150,160]
// evaluated at its two endpoints (the algorithm's rule: sample the edges
// at bs and be, not at some interior point) gives edge-x values of 0, 50
// (at y=150) and 0, 40 (at y=160); LineLeft takes the minimum of those,
// which is 0 from the vertical edge. To exercise the hypotenuse alone,
// these tests query a band strictly inside (0, 200) on the right side
// via LineRight, which only the hypotenuse and the top edge can reach.
func TestPolygonTriangleLineRightSamplesBandEndpoints(t *testing.T) {
	p := NewPolygon([]layout.Point{pt(0, 0), pt(200, 0), pt(0, 200)})

	// At y=150, the hypotenuse x = 200-150 = 50. At y=160, x = 200-160 =
	// 40. LineRight takes the max of the two endpoint samples, 50.
	if got := p.LineRight(150, 160); got != 50 {
		t.Errorf("LineRight(150,160) = %v, want 50", got)
	}
}

func TestPolygonTriangleLineLeftSamplesBandEndpoints(t *testing.T) {
	p := NewPolygon([]layout.Point{pt(0, 0), pt(200, 0), pt(0, 200)})

	// The vertical left edge contributes x=0 throughout, so LineLeft is 0
	// regardless of band placement within [0,200].
	if got := p.LineLeft(150, 160); got != 0 {
		t.Errorf("LineLeft(150,160) = %v, want 0", got)
	}
}

func TestPolygonRectangleIsExact(t *testing.T) {
	p := NewPolygon([]layout.Point{pt(10, 10), pt(110, 10), pt(110, 60), pt(10, 60)})
	if got := p.LineLeft(20, 40); got != 10 {
		t.Errorf("LineLeft = %v, want 10", got)
	}
	if got := p.LineRight(20, 40); got != 110 {
		t.Errorf("LineRight = %v, want 110", got)
	}
}

func TestPolygonTranslated(t *testing.T) {
	p := NewPolygon([]layout.Point{pt(0, 0), pt(100, 0), pt(0, 100)})
	moved := translateShape(p, 5, 10).(*Polygon)
	if got := moved.BStart(); got != 10 {
		t.Errorf("BStart after translate = %v, want 10", got)
	}
	if got := moved.vertices[0]; got != pt(5, 10) {
		t.Errorf("vertex 0 after translate = %v, want (5,10)", got)
	}
}
