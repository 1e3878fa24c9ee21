package floatmgr

import (
	"math"

	"github.com/boergens/floatmgr/layout"
)

// RoundedBox is the shape-outside strategy for a rect plus up to eight
// half-radii, used for <shape-box> keywords and inset(round ...). Null
// radii collapse it to an axis-aligned rectangle.
//
// The corner-intrusion math is solved implicitly against the corner's
// ellipse equation rather than approximated with Bezier control points,
// since an inline edge query needs an exact x-depth, not a drawable curve.
type RoundedBox struct {
	rect layout.LogicalRect
	// RX/RY hold the X/Y half-radius for each corner. A zero pair means a
	// square corner.
	topLeftX, topLeftY         layout.Abs
	topRightX, topRightY       layout.Abs
	bottomLeftX, bottomLeftY   layout.Abs
	bottomRightX, bottomRightY layout.Abs
}

// NewRoundedBox builds a rounded-rectangle shape in the frame rect is
// already expressed in (callers translate afterward via AddFloat).
func NewRoundedBox(rect layout.LogicalRect, radii layout.Corners[layout.Axes[layout.Abs]]) *RoundedBox {
	return &RoundedBox{
		rect:         rect,
		topLeftX:     radii.TopLeft.X, topLeftY: radii.TopLeft.Y,
		topRightX:    radii.TopRight.X, topRightY: radii.TopRight.Y,
		bottomLeftX:  radii.BottomLeft.X, bottomLeftY: radii.BottomLeft.Y,
		bottomRightX: radii.BottomRight.X, bottomRightY: radii.BottomRight.Y,
	}
}

func (b *RoundedBox) BStart() layout.Abs { return b.rect.BlockStart }
func (b *RoundedBox) BEnd() layout.Abs   { return b.rect.BlockEnd() }
func (b *RoundedBox) IsEmpty() bool      { return b.rect.IsEmpty() }

func (b *RoundedBox) translated(dLineLeft, dBlockStart layout.Abs) Shape {
	out := *b
	out.rect = out.rect.Translate(dLineLeft, dBlockStart)
	return &out
}

// cornerIntrusion solves the implicit ellipse equation for the x-depth an
// elliptical corner of half-radii (rx, ry) intrudes at vertical distance y
// from the corner's own vertex, along the corner's horizontal tangent.
// Generalizes a quarter-circle parametrization from circular to
// elliptical radii.
func cornerIntrusion(rx, ry, y layout.Abs) layout.Abs {
	if rx <= 0 || ry <= 0 {
		return 0
	}
	t := 1 - float64(y)/float64(ry)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return layout.Abs(float64(rx) * (1 - math.Sqrt(1-t*t)))
}

// LineLeft returns rect.LineLeft plus the left-corner intrusion depth for
// the band, or rect.LineLeft unmodified when the band spans the straight
// middle of the left side.
func (b *RoundedBox) LineLeft(bs, be layout.Abs) layout.Abs {
	delta := layout.Abs(0)
	top := b.rect.BlockStart
	bottom := b.rect.BlockEnd()

	if b.topLeftY > 0 && be >= top && be <= top+b.topLeftY {
		y := be - top
		if d := cornerIntrusion(b.topLeftX, b.topLeftY, y); d > delta {
			delta = d
		}
	}
	if b.bottomLeftY > 0 && bs >= bottom-b.bottomLeftY && bs <= bottom {
		y := bottom - bs
		if d := cornerIntrusion(b.bottomLeftX, b.bottomLeftY, y); d > delta {
			delta = d
		}
	}
	return b.rect.LineLeft + delta
}

// LineRight is LineLeft's mirror image on the right corners.
func (b *RoundedBox) LineRight(bs, be layout.Abs) layout.Abs {
	delta := layout.Abs(0)
	top := b.rect.BlockStart
	bottom := b.rect.BlockEnd()

	if b.topRightY > 0 && be >= top && be <= top+b.topRightY {
		y := be - top
		if d := cornerIntrusion(b.topRightX, b.topRightY, y); d > delta {
			delta = d
		}
	}
	if b.bottomRightY > 0 && bs >= bottom-b.bottomRightY && bs <= bottom {
		y := bottom - bs
		if d := cornerIntrusion(b.bottomRightX, b.bottomRightY, y); d > delta {
			delta = d
		}
	}
	return b.rect.LineRight() - delta
}
