package floatmgr

import "github.com/boergens/floatmgr/layout"

// Polygon is the shape-outside strategy for polygon(): an ordered vertex
// list plus a precomputed bounding band and emptiness flag.
type Polygon struct {
	vertices []layout.Point
	bStart   layout.Abs
	bEnd     layout.Abs
	empty    bool
}

// NewPolygon builds a polygon shape from vertices already in the frame
// the caller wants it stored in. A polygon with fewer than three vertices
// or all vertices collinear is empty.
func NewPolygon(vertices []layout.Point) *Polygon {
	p := &Polygon{vertices: append([]layout.Point(nil), vertices...)}

	if len(p.vertices) < 3 {
		p.empty = true
		return p
	}

	p.empty = allCollinear(p.vertices)

	p.bStart = p.vertices[0].Y
	p.bEnd = p.vertices[0].Y
	for _, v := range p.vertices[1:] {
		p.bStart = p.bStart.Min(v.Y)
		p.bEnd = p.bEnd.Max(v.Y)
	}
	return p
}

// allCollinear reports whether every vertex lies on the line through the
// first two vertices, via the 2x2 cross-product determinant test.
func allCollinear(vertices []layout.Point) bool {
	p0, p1 := vertices[0], vertices[1]
	dx1, dy1 := float64(p1.X-p0.X), float64(p1.Y-p0.Y)
	for _, v := range vertices[2:] {
		dx2, dy2 := float64(v.X-p0.X), float64(v.Y-p0.Y)
		if dx1*dy2-dy1*dx2 != 0 {
			return false
		}
	}
	return true
}

func (p *Polygon) BStart() layout.Abs { return p.bStart }
func (p *Polygon) BEnd() layout.Abs   { return p.bEnd }
func (p *Polygon) IsEmpty() bool      { return p.empty }

func (p *Polygon) translated(dLineLeft, dBlockStart layout.Abs) Shape {
	out := &Polygon{
		vertices: make([]layout.Point, len(p.vertices)),
		bStart:   p.bStart + dBlockStart,
		bEnd:     p.bEnd + dBlockStart,
		empty:    p.empty,
	}
	for i, v := range p.vertices {
		out.vertices[i] = layout.Point{X: v.X + dLineLeft, Y: v.Y + dBlockStart}
	}
	return out
}

// edgeXAt linearly interpolates the edge (p,q), with p.Y <= q.Y, at the
// given y, clamping to the endpoint when y falls outside [p.Y, q.Y].
func edgeXAt(p, q layout.Point, y layout.Abs) layout.Abs {
	if y <= p.Y {
		return p.X
	}
	if y >= q.Y {
		return q.X
	}
	t := float64(y-p.Y) / float64(q.Y-p.Y)
	return p.X + layout.Abs(t)*(q.X-p.X)
}

// LineLeft takes the minimum edge-intersection x across all edges that
// overlap the band.
func (p *Polygon) LineLeft(bs, be layout.Abs) layout.Abs {
	result := layout.Infinite()
	p.forEachEdge(bs, be, func(x layout.Abs) {
		result = result.Min(x)
	})
	return result
}

// LineRight takes the maximum edge-intersection x across all edges that
// overlap the band.
func (p *Polygon) LineRight(bs, be layout.Abs) layout.Abs {
	result := layout.NegativeInfinite()
	p.forEachEdge(bs, be, func(x layout.Abs) {
		result = result.Max(x)
	})
	return result
}

// forEachEdge visits the band-clamped x intersection at both bs and be for
// every non-horizontal edge overlapping [bs, be].
func (p *Polygon) forEachEdge(bs, be layout.Abs, visit func(x layout.Abs)) {
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		if a.Y == b.Y {
			continue // horizontal edges contribute only via their endpoints
		}
		pEdge, qEdge := a, b
		if pEdge.Y > qEdge.Y {
			pEdge, qEdge = qEdge, pEdge
		}
		if bs >= qEdge.Y || be <= pEdge.Y {
			continue
		}
		visit(edgeXAt(pEdge, qEdge, bs))
		visit(edgeXAt(pEdge, qEdge, be))
	}
}
