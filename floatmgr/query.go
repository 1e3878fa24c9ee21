package floatmgr

import "github.com/boergens/floatmgr/layout"

// BandMode selects how GetFlowArea interprets its requested block extent.
type BandMode int

const (
	// BandFromPoint finds the first uniform band starting at bCoord; the
	// returned block size may be smaller than requested when a float's
	// edge is encountered.
	BandFromPoint BandMode = iota
	// WidthWithinHeight takes the band's exact block extent as given and
	// returns the narrowest inline extent that fits all floats anywhere
	// within it.
	WidthWithinHeight
)

// ShapeType selects whether a query considers a float's margin box or its
// shape-outside exclusion (clipped to the margin box).
type ShapeType int

const (
	ShapeTypeMargin ShapeType = iota
	ShapeTypeShapeOutside
)

// BreakType selects which side(s) ClearFloats clears.
type BreakType int

const (
	BreakNone BreakType = iota
	BreakLeft
	BreakRight
	BreakBoth
)

// ClearFlags is a bitmask of ClearFloats modifiers, left open for callers
// to extend with their own bits above bit 0.
type ClearFlags uint32

const DontClearPushedFloats ClearFlags = 1 << 0

// SavedFloatCount restricts a query to the registry prefix with index <
// Count, as captured by an earlier PushState — used by trial-reflow
// callers that want to query "as of" a checkpoint without actually
// popping back to it.
type SavedFloatCount struct {
	Count int
}

// FlowAreaRect is GetFlowArea's result, in the caller's flow-logical frame
// relative to the manager's current origin.
type FlowAreaRect struct {
	InlineStart layout.Abs
	BlockStart  layout.Abs
	InlineSize  layout.Abs
	BlockSize   layout.Abs
	HasFloats   bool
}

// GetFlowArea answers, for the band starting at bCoord (relative to the
// manager's current origin), the inline-axis region subsequent content may
// flow into.
//
// bSize may be layout.Infinite() only when bandMode is BandFromPoint.
// contentArea is the containing block's inline span in flow-logical
// coordinates, relative to the current origin. saved, if non-nil,
// restricts the query to floats registered before that checkpoint.
func (m *Manager) GetFlowArea(
	bCoord, bSize layout.Abs,
	bandMode BandMode,
	shapeType ShapeType,
	contentArea layout.LogicalRect,
	saved *SavedFloatCount,
) FlowAreaRect {
	floats := m.floats
	if saved != nil && saved.Count < len(floats) {
		floats = floats[:saved.Count]
	}

	b0 := bCoord + m.blockStart

	if len(floats) == 0 || (floats[len(floats)-1].LeftBEnd <= b0 && floats[len(floats)-1].RightBEnd <= b0) {
		return FlowAreaRect{
			InlineStart: contentArea.LineLeft,
			BlockStart:  bCoord,
			InlineSize:  contentArea.Width,
			BlockSize:   bSize,
			HasFloats:   false,
		}
	}

	b1 := b0 + bSize

	l := m.lineLeft + contentArea.LineLeft
	r := m.lineLeft + contentArea.LineRight()

	hasFloats := false

	for i := len(floats) - 1; i >= 0; i-- {
		fi := &floats[i]

		if fi.LeftBEnd <= b0 && fi.RightBEnd <= b0 {
			break
		}
		if fi.IsEmpty(shapeType) {
			continue
		}

		fbs := fi.effectiveBStart(shapeType)
		fbe := fi.effectiveBEnd(shapeType)

		switch {
		case b0 < fbs && bandMode == BandFromPoint && fbs < b1:
			b1 = fbs
			continue
		case overlaps(fbs, fbe, b0, b1) || (bandMode == WidthWithinHeight && b0 == fbs && b1 == fbs):
			bandEndForShape := b1
			if bandMode == BandFromPoint {
				bandEndForShape = b0
			}
			if fi.Side == SideLeft {
				edge := fi.lineRight(b0, bandEndForShape.Min(b1), shapeType)
				if edge > l {
					l = edge
					hasFloats = true
				}
			} else {
				edge := fi.lineLeft(b0, bandEndForShape.Min(b1), shapeType)
				if edge < r {
					r = edge
					hasFloats = true
				}
			}
		}

		if bandMode == BandFromPoint && fbe < b1 {
			b1 = fbe
		}
	}

	var inlineStart layout.Abs
	if !m.rtl {
		inlineStart = l - m.lineLeft
	} else {
		inlineStart = m.lineLeft - r + (contentArea.LineLeft + contentArea.Width)
	}

	return FlowAreaRect{
		InlineStart: inlineStart,
		BlockStart:  bCoord,
		InlineSize:  r - l,
		BlockSize:   b1 - b0,
		HasFloats:   hasFloats,
	}
}

func overlaps(aStart, aEnd, bStart, bEnd layout.Abs) bool {
	return aStart < bEnd && bStart < aEnd
}

// ClearFloats computes the block-axis coordinate clearance moves past
// preceding floats of the given side(s), honoring the break-continuation
// flags. Returns layout.Infinite() when clearance is unresolved across a
// pending break.
func (m *Manager) ClearFloats(bCoord layout.Abs, breakType BreakType, flags ClearFlags) layout.Abs {
	pendingAcrossBreak := flags&DontClearPushedFloats == 0 && m.hasPendingBreak(breakType)
	if pendingAcrossBreak {
		return layout.Infinite()
	}

	b0 := bCoord + m.blockStart
	side := m.sideBEnd(breakType)
	return side.Max(b0) - m.blockStart
}

func (m *Manager) hasPendingBreak(breakType BreakType) bool {
	left := m.pushedLeftPastBreak || m.splitLeftAcrossBreak
	right := m.pushedRightPastBreak || m.splitRightAcrossBreak
	switch breakType {
	case BreakLeft:
		return left
	case BreakRight:
		return right
	case BreakBoth:
		return left || right
	default:
		return false
	}
}

// sideBEnd returns the tail entry's cumulative block-end for breakType's
// side(s), using -Inf when the registry is empty.
func (m *Manager) sideBEnd(breakType BreakType) layout.Abs {
	if len(m.floats) == 0 {
		return layout.NegativeInfinite()
	}
	tail := m.floats[len(m.floats)-1]
	switch breakType {
	case BreakLeft:
		return tail.LeftBEnd
	case BreakRight:
		return tail.RightBEnd
	case BreakBoth:
		return tail.LeftBEnd.Max(tail.RightBEnd)
	default:
		return tail.LeftBEnd.Max(tail.RightBEnd)
	}
}

// GetLowestFloatTop returns the block-start of the most recently added
// float (relative to the current origin), layout.Infinite() if a pushed-
// past-break flag is set on either side, or layout.NegativeInfinite() if
// the registry is empty — used by a reflow driver to detect forward
// progress.
func (m *Manager) GetLowestFloatTop() layout.Abs {
	if m.pushedLeftPastBreak || m.pushedRightPastBreak {
		return layout.Infinite()
	}
	if len(m.floats) == 0 {
		return layout.NegativeInfinite()
	}
	return m.floats[len(m.floats)-1].Rect.BlockStart - m.blockStart
}
