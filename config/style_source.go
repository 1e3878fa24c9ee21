package config

import (
	"image"
	"os"

	"github.com/boergens/floatmgr/floatmgr"
	"github.com/boergens/floatmgr/floatmgr/shapeimg"
	"github.com/boergens/floatmgr/layout"
)

// manifestStyleSource adapts one ManifestFloat into floatmgr.StyleSource,
// the minimal collaborator AddFloat needs. A manifest float is always
// already resolved to a physical side, so PhysicalFloat ignores wm.
type manifestStyleSource struct {
	side     floatmgr.Side
	manifest ManifestFloat
}

func sidesFromQuad(q [4]float64) layout.Sides[layout.Abs] {
	return layout.Sides[layout.Abs]{
		Top:    layout.Abs(q[0]),
		Right:  layout.Abs(q[1]),
		Bottom: layout.Abs(q[2]),
		Left:   layout.Abs(q[3]),
	}
}

func (s *manifestStyleSource) PhysicalFloat(wm layout.WritingMode) floatmgr.Side {
	return s.side
}

func (s *manifestStyleSource) UsedMarginBorderPadding() (margin, border, padding layout.Sides[layout.Abs]) {
	return sidesFromQuad(s.manifest.Margin), sidesFromQuad(s.manifest.Border), sidesFromQuad(s.manifest.Padding)
}

func (s *manifestStyleSource) ShapeBoxBorderRadii() (layout.Corners[layout.Axes[layout.Abs]], bool) {
	return layout.Corners[layout.Axes[layout.Abs]]{}, false
}

func referenceBoxByName(name string) floatmgr.ReferenceBox {
	switch name {
	case "border":
		return floatmgr.ReferenceBoxBorder
	case "padding":
		return floatmgr.ReferenceBoxPadding
	case "content":
		return floatmgr.ReferenceBoxContent
	default:
		return floatmgr.ReferenceBoxMargin
	}
}

func (s *manifestStyleSource) ShapeOutside() floatmgr.ShapeSpec {
	shape := s.manifest.Shape
	box := referenceBoxByName(shape.Box)

	switch shape.Kind {
	case "box":
		return floatmgr.ShapeSpec{Kind: floatmgr.ShapeOutsideBox, ShapeBox: box}
	case "inset":
		inset := sidesFromQuad(shape.Inset)
		return floatmgr.ShapeSpec{Kind: floatmgr.ShapeOutsideInset, ShapeBox: box, Inset: inset}
	case "circle":
		r := layout.Abs(shape.RX)
		return floatmgr.ShapeSpec{
			Kind: floatmgr.ShapeOutsideCircle, ShapeBox: box,
			Center: layout.Point{X: layout.Abs(shape.CenterX), Y: layout.Abs(shape.CenterY)},
			RX:     r, RY: r,
		}
	case "ellipse":
		return floatmgr.ShapeSpec{
			Kind: floatmgr.ShapeOutsideEllipse, ShapeBox: box,
			Center: layout.Point{X: layout.Abs(shape.CenterX), Y: layout.Abs(shape.CenterY)},
			RX:     layout.Abs(shape.RX), RY: layout.Abs(shape.RY),
		}
	case "polygon":
		vertices := make([]layout.Point, len(shape.Vertices))
		for i, v := range shape.Vertices {
			vertices[i] = layout.Point{X: layout.Abs(v[0]), Y: layout.Abs(v[1])}
		}
		return floatmgr.ShapeSpec{Kind: floatmgr.ShapeOutsidePolygon, ShapeBox: box, Vertices: vertices}
	case "image":
		return floatmgr.ShapeSpec{
			Kind: floatmgr.ShapeOutsideImage, ShapeBox: floatmgr.ReferenceBoxContent,
			Image:     &fileImageSource{path: shape.ImagePath},
			Threshold: shape.Threshold,
		}
	default:
		return floatmgr.ShapeSpec{Kind: floatmgr.ShapeOutsideNone}
	}
}

// fileImageSource implements floatmgr.ImageSource against a path on disk,
// decoded synchronously on first Decode call via shapeimg.Decode — this
// CLI has no async loading pipeline, so Ready is always true once the
// path is set.
type fileImageSource struct {
	path string
}

func (s *fileImageSource) Ready() bool { return s.path != "" }

func (s *fileImageSource) Decode() (image.Image, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return shapeimg.Decode(f)
}
