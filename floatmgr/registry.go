package floatmgr

import "github.com/boergens/floatmgr/layout"

// FloatInfo is one registered float: its geometry, optional shape
// strategy, physical side, and the cumulative "deepest bottom so far" on
// that side.
type FloatInfo struct {
	Frame FrameHandle
	Rect  layout.LogicalRect
	Shape Shape // nil if the float uses its margin box verbatim
	Side  Side

	// LeftBEnd/RightBEnd are the running max block-end across all floats
	// of that physical side from index 0 through this entry, inclusive.
	// Monotone non-decreasing with index on each side.
	LeftBEnd  layout.Abs
	RightBEnd layout.Abs
}

// effectiveBStart returns max(rect.BlockStart, shape.BStart()) when
// shapeType wants the shape: a shape's influence is always clipped to
// the float's own margin box.
func (fi *FloatInfo) effectiveBStart(shapeType ShapeType) layout.Abs {
	if shapeType == ShapeTypeShapeOutside && fi.Shape != nil {
		return fi.Rect.BlockStart.Max(fi.Shape.BStart())
	}
	return fi.Rect.BlockStart
}

// effectiveBEnd is effectiveBStart's BEnd counterpart.
func (fi *FloatInfo) effectiveBEnd(shapeType ShapeType) layout.Abs {
	if shapeType == ShapeTypeShapeOutside && fi.Shape != nil {
		return fi.Rect.BlockEnd().Min(fi.Shape.BEnd())
	}
	return fi.Rect.BlockEnd()
}

// IsEmpty reports whether this entry contributes nothing at all for the
// given shapeType: either the margin box itself is empty, or (under
// ShapeOutside) the shape reports empty.
func (fi *FloatInfo) IsEmpty(shapeType ShapeType) bool {
	if fi.Rect.IsEmpty() {
		return true
	}
	return shapeType == ShapeTypeShapeOutside && fi.Shape != nil && fi.Shape.IsEmpty()
}

// lineLeft returns the effective line-left edge for the band, clipped to
// the margin box.
func (fi *FloatInfo) lineLeft(bs, be layout.Abs, shapeType ShapeType) layout.Abs {
	if shapeType == ShapeTypeShapeOutside && fi.Shape != nil {
		return fi.Rect.LineLeft.Max(fi.Shape.LineLeft(bs, be))
	}
	return fi.Rect.LineLeft
}

// lineRight is lineLeft's mirror.
func (fi *FloatInfo) lineRight(bs, be layout.Abs, shapeType ShapeType) layout.Abs {
	if shapeType == ShapeTypeShapeOutside && fi.Shape != nil {
		return fi.Rect.LineRight().Min(fi.Shape.LineRight(bs, be))
	}
	return fi.Rect.LineRight()
}

// AddFloat registers a new float. marginRect is given in physical
// coordinates and converted to flow-logical using wm/rtl/containerSize,
// then translated by the manager's current origin. The shape-outside
// strategy, if any, is constructed from src and clipped to the same
// margin box.
//
// Degenerate margin boxes (negative width/height) collapse to zero at the
// correctly anchored edge rather than erroring.
func (m *Manager) AddFloat(frame FrameHandle, marginRect layout.PhysicalRect, src StyleSource) {
	logicalRect := layout.ToLogicalRect(marginRect, m.wm, m.rtl, m.containerSize).Normalized()
	translated := logicalRect.Translate(m.lineLeft, m.blockStart)

	side := src.PhysicalFloat(m.wm)

	var shape Shape
	if !translated.IsEmpty() {
		shape = m.buildShape(src, logicalRect, translated)
	}

	prevLeft, prevRight := layout.NegativeInfinite(), layout.NegativeInfinite()
	if n := len(m.floats); n > 0 {
		prevLeft = m.floats[n-1].LeftBEnd
		prevRight = m.floats[n-1].RightBEnd
	}

	entry := FloatInfo{
		Frame:     frame,
		Rect:      translated,
		Shape:     shape,
		Side:      side,
		LeftBEnd:  prevLeft,
		RightBEnd: prevRight,
	}
	if side == SideLeft {
		entry.LeftBEnd = prevLeft.Max(translated.BlockEnd())
	} else {
		entry.RightBEnd = prevRight.Max(translated.BlockEnd())
	}

	m.floats = append(m.floats, entry)
	m.damage.Record(frame)
}

// buildShape constructs the shape-outside strategy from src's resolved
// ShapeSpec, dispatching per-kind construction rules. The shape is built
// in the margin-box frame (logicalRect, pre-origin translation) and then
// translated by the same origin the margin rect itself was translated
// by, so both line up in storage.
func (m *Manager) buildShape(src StyleSource, logicalRect, translated layout.LogicalRect) Shape {
	spec := src.ShapeOutside()
	if spec.Kind == ShapeOutsideNone {
		return nil
	}

	var shape Shape
	switch spec.Kind {
	case ShapeOutsideBox:
		refRect := m.deflateToReferenceBox(src, logicalRect, spec.ShapeBox)
		radii, _ := src.ShapeBoxBorderRadii()
		shape = NewRoundedBox(refRect, radii)
	case ShapeOutsideInset:
		refRect := m.deflateToReferenceBox(src, logicalRect, spec.ShapeBox)
		physRef := layout.ToPhysicalRect(refRect, m.wm, m.rtl, m.containerSize)
		insetRect := layout.ToLogicalRect(physRef.Deflate(spec.Inset), m.wm, m.rtl, m.containerSize)
		shape = NewRoundedBox(insetRect, spec.InsetRadius)
	case ShapeOutsideCircle, ShapeOutsideEllipse:
		refRect := m.deflateToReferenceBox(src, logicalRect, spec.ShapeBox)
		physRef := layout.ToPhysicalRect(refRect, m.wm, m.rtl, m.containerSize)
		center := layout.ToLogicalPoint(layout.Point{X: physRef.X, Y: physRef.Y}.Add(spec.Center), m.wm, m.rtl, m.containerSize)
		rx, ry := spec.RX, spec.RY
		if m.wm.IsVertical() {
			rx, ry = ry, rx
		}
		shape = NewEllipse(center, rx, ry)
	case ShapeOutsidePolygon:
		refRect := m.deflateToReferenceBox(src, logicalRect, spec.ShapeBox)
		physRef := layout.ToPhysicalRect(refRect, m.wm, m.rtl, m.containerSize)
		vertices := make([]layout.Point, len(spec.Vertices))
		for i, v := range spec.Vertices {
			vertices[i] = layout.ToLogicalPoint(layout.Point{X: physRef.X, Y: physRef.Y}.Add(v), m.wm, m.rtl, m.containerSize)
		}
		shape = NewPolygon(vertices)
	case ShapeOutsideImage:
		built, err := m.imageShape(spec)
		if err != nil {
			// Not ready yet or failed to decode: AddFloat installs no shape
			// and a later reflow may retry once the image source settles.
			return nil
		}
		refRect := m.deflateToReferenceBox(src, logicalRect, ReferenceBoxContent)
		shape = built.translated(refRect.LineLeft, refRect.BlockStart)
	default:
		return nil
	}

	return translateShape(shape, m.lineLeft, m.blockStart)
}

// deflateToReferenceBox shrinks the margin-box logicalRect down to the
// requested reference box using src's margin/border/padding, deflating
// by border and padding in turn to reach the content/padding/border box.
func (m *Manager) deflateToReferenceBox(src StyleSource, logicalRect layout.LogicalRect, box ReferenceBox) layout.LogicalRect {
	if box == ReferenceBoxMargin {
		return logicalRect
	}
	margin, border, padding := src.UsedMarginBorderPadding()
	phys := layout.ToPhysicalRect(logicalRect, m.wm, m.rtl, m.containerSize)
	phys = phys.Deflate(margin)
	if box == ReferenceBoxPadding || box == ReferenceBoxContent {
		phys = phys.Deflate(border)
	}
	if box == ReferenceBoxContent {
		phys = phys.Deflate(padding)
	}
	return layout.ToLogicalRect(phys, m.wm, m.rtl, m.containerSize)
}

// RemoveTrailingRegions discards trailing registry entries whose frame is
// in frames, stopping at the first entry (scanning from the tail) whose
// frame is not in the set. Entries earlier than that boundary are never
// removed, because removing an internal entry would invalidate the
// cumulative LeftBEnd/RightBEnd summaries of every later entry — the
// caller must honor this contract.
func (m *Manager) RemoveTrailingRegions(frames map[FrameHandle]struct{}) {
	i := len(m.floats)
	for i > 0 {
		if _, ok := frames[m.floats[i-1].Frame]; !ok {
			break
		}
		i--
	}
	m.floats = m.floats[:i]
}

// HasAnyFloats reports whether the registry holds any float at all.
func (m *Manager) HasAnyFloats() bool {
	return len(m.floats) > 0
}
