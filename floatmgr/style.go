package floatmgr

import (
	"image"

	"github.com/boergens/floatmgr/layout"
)

// FrameHandle is the opaque identity a caller's frame tree uses to refer
// to a float. The registry and RemoveTrailingRegions only need equality,
// so any comparable value works (a pointer, an integer id, ...).
type FrameHandle = any

// Side is the physical side a float is pushed to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// ShapeOutsideKind discriminates which ShapeSpec variant is populated.
type ShapeOutsideKind int

const (
	ShapeOutsideNone ShapeOutsideKind = iota
	ShapeOutsideBox                  // a <shape-box> keyword: use the box itself
	ShapeOutsideInset
	ShapeOutsideCircle
	ShapeOutsideEllipse
	ShapeOutsidePolygon
	ShapeOutsideImage
)

// ShapeSpec is the resolved shape-outside value a style system hands the
// float manager. Exactly one payload field is meaningful, selected by
// Kind.
type ShapeSpec struct {
	Kind ShapeOutsideKind

	// ShapeBox selects which box (margin/border/padding/content) the shape
	// is computed against; used by ShapeOutsideBox/Inset/Circle/Ellipse/
	// Polygon to find the reference rect before the basic-shape function
	// is applied.
	ShapeBox ReferenceBox

	// Inset(t, r, b, l) and its optional corner radii, in physical units
	// relative to the reference box.
	Inset       layout.Sides[layout.Abs]
	InsetRadius layout.Corners[layout.Axes[layout.Abs]]

	// Circle()/Ellipse(): radii in physical units. Center is resolved by
	// the caller against the reference box and passed pre-resolved.
	Center layout.Point
	RX, RY layout.Abs

	// Polygon(): vertices in physical units, already resolved against the
	// reference box.
	Vertices []layout.Point

	// Image(): the decoded source and opacity threshold in [0,1].
	Image     ImageSource
	Threshold float64
}

// ReferenceBox names which box a shape-outside basic shape is computed
// relative to.
type ReferenceBox int

const (
	ReferenceBoxMargin ReferenceBox = iota
	ReferenceBoxBorder
	ReferenceBoxPadding
	ReferenceBoxContent
)

// StyleSource is the minimal external collaborator interface AddFloat
// consumes from the frame tree/style system.
type StyleSource interface {
	// PhysicalFloat resolves which physical side this frame floats to
	// under the given writing mode.
	PhysicalFloat(wm layout.WritingMode) Side
	// ShapeOutside returns the resolved shape-outside value.
	ShapeOutside() ShapeSpec
	// UsedMarginBorderPadding returns the frame's margin, border, and
	// padding, each as physical sides, for deflating the margin box down
	// to whichever reference box a shape needs.
	UsedMarginBorderPadding() (margin, border, padding layout.Sides[layout.Abs])
	// ShapeBoxBorderRadii returns the frame's border radii (as X/Y half
	// -radius pairs per corner) for the <shape-box> keyword construction
	// path, and whether any corner is non-zero.
	ShapeBoxBorderRadii() (layout.Corners[layout.Axes[layout.Abs]], bool)
}

// ImageSource is the external collaborator for image() shape-outside
// values: a synchronous, best-effort image decoder. Ready reports false
// while the source is still loading; AddFloat treats that as
// ErrImageNotReady and installs no shape rather than blocking.
type ImageSource interface {
	Ready() bool
	Decode() (image.Image, error)
}

// RegionStore attaches or reads an opaque margin-corrected region on a
// frame handle.
type RegionStore interface {
	GetRegionFor(frame FrameHandle) (layout.LogicalRect, bool)
	StoreRegionFor(frame FrameHandle, region layout.LogicalRect)
}
