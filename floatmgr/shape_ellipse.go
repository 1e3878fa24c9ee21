package floatmgr

import "github.com/boergens/floatmgr/layout"

// Ellipse is the shape-outside strategy for circle()/ellipse(): a center
// point and (width, height) radii. It reuses the same corner-intrusion
// math as RoundedBox applied to its own implicit bounding rect.
type Ellipse struct {
	center layout.Point
	rx, ry layout.Abs
}

// NewEllipse builds an ellipse shape from a center and radii, already in
// the frame the caller wants it stored in.
func NewEllipse(center layout.Point, rx, ry layout.Abs) *Ellipse {
	return &Ellipse{center: center, rx: rx, ry: ry}
}

func (e *Ellipse) BStart() layout.Abs { return e.center.Y - e.ry }
func (e *Ellipse) BEnd() layout.Abs   { return e.center.Y + e.ry }
func (e *Ellipse) IsEmpty() bool      { return e.rx <= 0 || e.ry <= 0 }

func (e *Ellipse) translated(dLineLeft, dBlockStart layout.Abs) Shape {
	out := *e
	out.center = layout.Point{X: out.center.X + dLineLeft, Y: out.center.Y + dBlockStart}
	return &out
}

func (e *Ellipse) LineLeft(bs, be layout.Abs) layout.Abs {
	return e.center.X - e.rx + e.intrusion(bs, be)
}

func (e *Ellipse) LineRight(bs, be layout.Abs) layout.Abs {
	return e.center.X + e.rx - e.intrusion(bs, be)
}

// intrusion computes the shared left/right corner intrusion depth for the
// band against the ellipse's top and bottom "corners" (the whole curve is
// corner, since an ellipse has no straight sides).
func (e *Ellipse) intrusion(bs, be layout.Abs) layout.Abs {
	top := e.BStart()
	bottom := e.BEnd()

	delta := layout.Abs(0)
	if be >= top && be <= top+e.ry {
		y := be - top
		if d := cornerIntrusion(e.rx, e.ry, y); d > delta {
			delta = d
		}
	}
	if bs >= bottom-e.ry && bs <= bottom {
		y := bottom - bs
		if d := cornerIntrusion(e.rx, e.ry, y); d > delta {
			delta = d
		}
	}
	return delta
}
