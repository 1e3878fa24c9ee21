package layout

// WritingMode names the block-axis/inline-axis orientation of a
// formatting context, independent of the RTL flag (which only mirrors the
// inline axis).
type WritingMode int

const (
	// HorizontalTB: block axis top-to-bottom, inline axis left-to-right
	// (or right-to-left under RTL).
	HorizontalTB WritingMode = iota
	// VerticalRL: block axis right-to-left, inline axis top-to-bottom,
	// columns progress right-to-left.
	VerticalRL
	// VerticalLR: block axis left-to-right, inline axis top-to-bottom,
	// columns progress left-to-right.
	VerticalLR
	// SidewaysLR: like VerticalLR but glyphs are rotated the other way;
	// irrelevant to geometry, included for completeness of the writing
	// mode enumeration.
	SidewaysLR
	// SidewaysRL: like VerticalRL, glyph rotation reversed.
	SidewaysRL
)

// IsVertical reports whether the block axis runs left/right rather than
// top/bottom.
func (wm WritingMode) IsVertical() bool {
	return wm != HorizontalTB
}

// ColumnsRightToLeft reports whether successive blocks progress toward
// decreasing physical X, which determines image-shape interval scan
// order.
func (wm WritingMode) ColumnsRightToLeft() bool {
	return wm == VerticalRL || wm == SidewaysRL
}

// LogicalRect is a rectangle in flow-logical coordinates: X is the inline
// axis (line-left → line-right), Y is the block axis (block-start →
// block-end). Both axes increase in the "forward" direction regardless of
// writing mode or RTL — mirroring is applied only at the physical
// boundary.
type LogicalRect struct {
	LineLeft   Abs
	BlockStart Abs
	Width      Abs // inline size
	Height     Abs // block size
}

// LineRight returns the line-right edge.
func (r LogicalRect) LineRight() Abs { return r.LineLeft + r.Width }

// BlockEnd returns the block-end edge.
func (r LogicalRect) BlockEnd() Abs { return r.BlockStart + r.Height }

// IsEmpty reports whether the rect has no area.
func (r LogicalRect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate shifts the rect by (dLineLeft, dBlockStart).
func (r LogicalRect) Translate(dLineLeft, dBlockStart Abs) LogicalRect {
	return LogicalRect{
		LineLeft:   r.LineLeft + dLineLeft,
		BlockStart: r.BlockStart + dBlockStart,
		Width:      r.Width,
		Height:     r.Height,
	}
}

// Normalized clamps a negative width/height to zero, keeping the edge the
// box is anchored from — the logical-frame analogue of
// PhysicalRect.Normalized, needed because AddFloat receives already
// logical-izable input whose degenerate cases must clamp the same way.
func (r LogicalRect) Normalized() LogicalRect {
	out := r
	if out.Width < 0 {
		out.LineLeft += out.Width
		out.Width = 0
	}
	if out.Height < 0 {
		out.BlockStart += out.Height
		out.Height = 0
	}
	return out
}

// ToLogicalRect converts a physical rect to flow-logical coordinates for
// the given writing mode, mirroring the inline axis under RTL and the
// block axis under vertical-rl/sideways-rl. containerSize is the physical size of the box
// that defines the mirroring origin (e.g. the containing block).
func ToLogicalRect(r PhysicalRect, wm WritingMode, rtl bool, containerSize Size) LogicalRect {
	switch wm {
	case HorizontalTB:
		lineLeft := r.X
		if rtl {
			lineLeft = containerSize.Width - r.Right()
		}
		return LogicalRect{LineLeft: lineLeft, BlockStart: r.Y, Width: r.Width, Height: r.Height}
	case VerticalLR, SidewaysLR:
		// Block axis is physical X (top-to-bottom reading of columns left
		// to right); inline axis is physical Y, mirrored under RTL (i.e.
		// bottom-to-top inline progression).
		inlineStart := r.Y
		if rtl {
			inlineStart = containerSize.Height - r.Bottom()
		}
		return LogicalRect{LineLeft: inlineStart, BlockStart: r.X, Width: r.Height, Height: r.Width}
	case VerticalRL, SidewaysRL:
		// Block axis runs left-to-right in logical terms but columns are
		// laid out right-to-left physically, so block-start maps to the
		// distance from the physical right edge.
		inlineStart := r.Y
		if rtl {
			inlineStart = containerSize.Height - r.Bottom()
		}
		blockStart := containerSize.Width - r.Right()
		return LogicalRect{LineLeft: inlineStart, BlockStart: blockStart, Width: r.Height, Height: r.Width}
	default:
		return LogicalRect{LineLeft: r.X, BlockStart: r.Y, Width: r.Width, Height: r.Height}
	}
}

// ToLogicalPoint converts a physical point to flow-logical coordinates,
// used for polygon vertices and ellipse centers during shape construction.
func ToLogicalPoint(p Point, wm WritingMode, rtl bool, containerSize Size) Point {
	switch wm {
	case HorizontalTB:
		x := p.X
		if rtl {
			x = containerSize.Width - p.X
		}
		return Point{X: x, Y: p.Y}
	case VerticalLR, SidewaysLR:
		y := p.Y
		if rtl {
			y = containerSize.Height - p.Y
		}
		return Point{X: y, Y: p.X}
	case VerticalRL, SidewaysRL:
		y := p.Y
		if rtl {
			y = containerSize.Height - p.Y
		}
		return Point{X: y, Y: containerSize.Width - p.X}
	default:
		return p
	}
}

// ToPhysicalRect is the inverse of ToLogicalRect.
func ToPhysicalRect(r LogicalRect, wm WritingMode, rtl bool, containerSize Size) PhysicalRect {
	switch wm {
	case HorizontalTB:
		x := r.LineLeft
		if rtl {
			x = containerSize.Width - r.LineRight()
		}
		return PhysicalRect{X: x, Y: r.BlockStart, Width: r.Width, Height: r.Height}
	case VerticalLR, SidewaysLR:
		y := r.LineLeft
		if rtl {
			y = containerSize.Height - (r.LineLeft + r.Width)
		}
		return PhysicalRect{X: r.BlockStart, Y: y, Width: r.Height, Height: r.Width}
	case VerticalRL, SidewaysRL:
		y := r.LineLeft
		if rtl {
			y = containerSize.Height - (r.LineLeft + r.Width)
		}
		x := containerSize.Width - (r.BlockStart + r.Height)
		return PhysicalRect{X: x, Y: y, Width: r.Height, Height: r.Width}
	default:
		return PhysicalRect{X: r.LineLeft, Y: r.BlockStart, Width: r.Width, Height: r.Height}
	}
}
