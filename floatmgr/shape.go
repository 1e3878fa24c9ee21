package floatmgr

import "github.com/boergens/floatmgr/layout"

// Shape is the capability every shape-outside strategy exposes: the
// line-left/line-right-most inline coordinate intersecting a block band,
// the shape's own block extent, emptiness, and origin translation.
//
// Implementations are sealed to this package (rounded box, ellipse,
// polygon, image); FloatInfo calls them through this interface.
type Shape interface {
	// LineLeft returns the line-left-most inline coordinate of the shape's
	// intersection with the block band [bStart, bEnd].
	LineLeft(bStart, bEnd layout.Abs) layout.Abs
	// LineRight returns the line-right-most inline coordinate of the
	// shape's intersection with the block band [bStart, bEnd].
	LineRight(bStart, bEnd layout.Abs) layout.Abs
	// BStart returns the shape's own block-axis start.
	BStart() layout.Abs
	// BEnd returns the shape's own block-axis end.
	BEnd() layout.Abs
	// IsEmpty reports whether the shape contributes no exclusion at all.
	IsEmpty() bool
}

// translatable is implemented by every concrete shape so AddFloat can
// shift a shape built in the margin-box frame by the manager's current
// origin before storing it.
type translatable interface {
	translated(dLineLeft, dBlockStart layout.Abs) Shape
}

// translateShape translates s by the given offset, returning s unchanged
// if it does not implement translatable (which none of the sealed
// variants should skip, but this keeps the call site total).
func translateShape(s Shape, dLineLeft, dBlockStart layout.Abs) Shape {
	if s == nil {
		return nil
	}
	if t, ok := s.(translatable); ok {
		return t.translated(dLineLeft, dBlockStart)
	}
	return s
}
