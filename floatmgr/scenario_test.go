package floatmgr

import (
	"testing"

	"github.com/boergens/floatmgr/layout"
)

// These tests walk the multi-float interactions end to end: register a
// small formatting context's floats in order, then issue the queries a
// line-layout driver would, checking every intermediate the driver relies
// on rather than just a final number.

func TestScenarioSingleLeftFloatQueryBelowItIsUnrestricted(t *testing.T) {
	m := New(layout.HorizontalTB, false, layout.Size{Width: 1000, Height: 2000})
	m.AddFloat("l", layout.PhysicalRect{X: 0, Y: 0, Width: 200, Height: 100}, left())

	area := m.GetFlowArea(150, 50, BandFromPoint, ShapeTypeMargin, contentArea(1000, layout.Infinite()), nil)
	if area.HasFloats || area.InlineStart != 0 || area.InlineSize != 1000 || area.BlockSize != 50 {
		t.Fatalf("got %+v, want full-width unrestricted area", area)
	}
}

func TestScenarioSingleLeftFloatWidthWithinHeightNarrows(t *testing.T) {
	m := New(layout.HorizontalTB, false, layout.Size{Width: 1000, Height: 2000})
	m.AddFloat("l", layout.PhysicalRect{X: 0, Y: 0, Width: 200, Height: 100}, left())

	area := m.GetFlowArea(20, 30, WidthWithinHeight, ShapeTypeMargin, contentArea(1000, layout.Infinite()), nil)
	if !area.HasFloats || area.InlineStart != 200 || area.InlineSize != 800 || area.BlockSize != 30 {
		t.Fatalf("got %+v, want inlineStart=200 inlineSize=800 blockSize=30 hasFloats=true", area)
	}
}

func TestScenarioTwoFacingFloatsThenClearPastBoth(t *testing.T) {
	m := New(layout.HorizontalTB, false, layout.Size{Width: 1000, Height: 2000})
	m.AddFloat("l", layout.PhysicalRect{X: 0, Y: 0, Width: 200, Height: 100}, left())
	m.AddFloat("r", layout.PhysicalRect{X: 800, Y: 0, Width: 200, Height: 100}, right())

	narrowed := m.GetFlowArea(0, layout.Infinite(), BandFromPoint, ShapeTypeMargin, contentArea(1000, layout.Infinite()), nil)
	if !narrowed.HasFloats || narrowed.InlineStart != 200 || narrowed.InlineSize != 600 || narrowed.BlockSize != 100 {
		t.Fatalf("got %+v, want inlineStart=200 inlineSize=600 blockSize=100", narrowed)
	}

	cleared := m.ClearFloats(0, BreakBoth, 0)
	if cleared != 100 {
		t.Fatalf("ClearFloats = %v, want 100", cleared)
	}

	after := m.GetFlowArea(cleared, layout.Infinite(), BandFromPoint, ShapeTypeMargin, contentArea(1000, layout.Infinite()), nil)
	if after.HasFloats || after.InlineSize != 1000 {
		t.Fatalf("got %+v, want full width past both floats", after)
	}
}

func TestScenarioStaggeredSameSideFloatsCumulateBEnd(t *testing.T) {
	m := New(layout.HorizontalTB, false, layout.Size{Width: 1000, Height: 2000})
	m.AddFloat("tall", layout.PhysicalRect{X: 0, Y: 0, Width: 300, Height: 400}, left())
	m.AddFloat("short", layout.PhysicalRect{X: 0, Y: 50, Width: 150, Height: 20}, left())

	// The shorter float was registered second but is shallower; the band
	// at y=300 must still see the taller float's exclusion because it was
	// registered earlier and the registry is a stack of exclusions by
	// insertion order, not by depth.
	area := m.GetFlowArea(300, 10, WidthWithinHeight, ShapeTypeMargin, contentArea(1000, layout.Infinite()), nil)
	if !area.HasFloats || area.InlineStart != 300 {
		t.Fatalf("got %+v, want inlineStart=300 hasFloats=true", area)
	}
}

func TestScenarioShapeOutsideCircleNarrowsAwayFromCenter(t *testing.T) {
	m := New(layout.HorizontalTB, false, layout.Size{Width: 1000, Height: 1000})
	src := &circleStyleSource{side: SideLeft, radius: 50}
	// A 100x100 margin box with an inscribed circle shape-outside: the
	// circle only reaches the full margin-box edge at the vertical center
	// (y=50); everywhere else it falls short of the margin box.
	m.AddFloat("c", layout.PhysicalRect{X: 0, Y: 0, Width: 100, Height: 100}, src)

	marginQuery := m.GetFlowArea(0, 10, WidthWithinHeight, ShapeTypeMargin, contentArea(1000, layout.Infinite()), nil)
	if marginQuery.InlineStart != 100 {
		t.Fatalf("margin query InlineStart = %v, want 100 (margin box ignores band placement)", marginQuery.InlineStart)
	}

	nearTop := m.GetFlowArea(0, 10, WidthWithinHeight, ShapeTypeShapeOutside, contentArea(1000, layout.Infinite()), nil)
	if nearTop.InlineStart != 80 {
		t.Fatalf("shape-outside query near the top InlineStart = %v, want 80", nearTop.InlineStart)
	}

	atCenter := m.GetFlowArea(49, 2, WidthWithinHeight, ShapeTypeShapeOutside, contentArea(1000, layout.Infinite()), nil)
	if atCenter.InlineStart != 100 {
		t.Fatalf("shape-outside query straddling the center InlineStart = %v, want 100 (circle touches the margin box there)", atCenter.InlineStart)
	}
}

// circleStyleSource is a minimal StyleSource for a circle() shape-outside
// centered on the margin box, used only by the scenario test above.
type circleStyleSource struct {
	side   Side
	radius layout.Abs
}

func (s *circleStyleSource) PhysicalFloat(wm layout.WritingMode) Side { return s.side }
func (s *circleStyleSource) ShapeOutside() ShapeSpec {
	return ShapeSpec{
		Kind:     ShapeOutsideCircle,
		ShapeBox: ReferenceBoxMargin,
		Center:   layout.Point{X: 50, Y: 50},
		RX:       s.radius,
		RY:       s.radius,
	}
}
func (s *circleStyleSource) UsedMarginBorderPadding() (margin, border, padding layout.Sides[layout.Abs]) {
	return
}
func (s *circleStyleSource) ShapeBoxBorderRadii() (layout.Corners[layout.Axes[layout.Abs]], bool) {
	return layout.Corners[layout.Axes[layout.Abs]]{}, false
}
