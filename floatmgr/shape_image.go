package floatmgr

import (
	"image"
	"sort"

	"github.com/boergens/floatmgr/layout"
)

// ImageInterval is one device-pixel-thick slice of an image shape,
// spanning the inline range of opaque pixels in one row (or column, under
// vertical writing modes).
type ImageInterval struct {
	Top       layout.Abs // block-axis position of this slice
	Bottom    layout.Abs // Top + one device pixel
	LineLeft  layout.Abs
	LineRight layout.Abs
}

// ImageShape is the shape-outside strategy for image(), built once at
// insertion time from a decoded alpha buffer and retained for the
// strategy's lifetime.
type ImageShape struct {
	intervals []ImageInterval
}

// BuildImageIntervals scans img against threshold (in [0,1], compared to
// each pixel's alpha channel normalized to [0,1]) and emits one interval
// per row (per column under vertical writing modes) with any pixel above
// threshold, in the frame img's content box
// occupies. When wm scans columns right-to-left (VerticalRL/SidewaysRL),
// the rows are built column-by-column and the result is reversed so it
// stays sorted ascending on the block axis.
func BuildImageIntervals(img image.Image, threshold float64, wm layout.WritingMode) []ImageInterval {
	bounds := img.Bounds()
	if wm.IsVertical() {
		return buildIntervalsByColumn(img, bounds, threshold, wm.ColumnsRightToLeft())
	}
	return buildIntervalsByRow(img, bounds, threshold)
}

func buildIntervalsByRow(img image.Image, bounds image.Rectangle, threshold float64) []ImageInterval {
	var out []ImageInterval
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		left, right, any := scanRow(img, bounds, y, threshold)
		if !any {
			continue
		}
		out = append(out, ImageInterval{
			Top:       layout.Abs(y - bounds.Min.Y),
			Bottom:    layout.Abs(y - bounds.Min.Y + 1),
			LineLeft:  layout.Abs(left - bounds.Min.X),
			LineRight: layout.Abs(right - bounds.Min.X + 1),
		})
	}
	return out
}

func buildIntervalsByColumn(img image.Image, bounds image.Rectangle, threshold float64, rightToLeft bool) []ImageInterval {
	var out []ImageInterval
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		top, bottom, any := scanColumn(img, bounds, x, threshold)
		if !any {
			continue
		}
		// The block axis is physical X for vertical writing modes; a
		// right-to-left column scan still records Top/Bottom as one-pixel
		// block slices, but the physical column index must be reversed
		// relative to bounds.Min.X/Max.X for the array to end up sorted
		// ascending on the block axis after the final reversal below.
		col := x - bounds.Min.X
		if rightToLeft {
			col = bounds.Max.X - 1 - x
		}
		out = append(out, ImageInterval{
			Top:       layout.Abs(col),
			Bottom:    layout.Abs(col + 1),
			LineLeft:  layout.Abs(top - bounds.Min.Y),
			LineRight: layout.Abs(bottom - bounds.Min.Y + 1),
		})
	}
	if rightToLeft {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func scanRow(img image.Image, bounds image.Rectangle, y int, threshold float64) (left, right int, any bool) {
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		if alphaAt(img, x, y) > threshold {
			if !any {
				left = x
				any = true
			}
			right = x
		}
	}
	return
}

func scanColumn(img image.Image, bounds image.Rectangle, x int, threshold float64) (top, bottom int, any bool) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if alphaAt(img, x, y) > threshold {
			if !any {
				top = y
				any = true
			}
			bottom = y
		}
	}
	return
}

func alphaAt(img image.Image, x, y int) float64 {
	_, _, _, a := img.At(x, y).RGBA()
	return float64(a) / 0xffff
}

// NewImageShape wraps pre-built intervals (already translated into the
// frame the caller wants them stored in).
func NewImageShape(intervals []ImageInterval) *ImageShape {
	return &ImageShape{intervals: intervals}
}

// imageShape builds the ImageShape for an image() shape-outside from
// spec.Image, returning ErrImageNotReady if the source hasn't decoded yet
// and spec.Image.Decode()'s error unwrapped otherwise. buildShape swallows
// both: the float is registered without a shape and a later AddFloat call
// (after a reflow) may retry once the image source settles.
func (m *Manager) imageShape(spec ShapeSpec) (*ImageShape, error) {
	if !spec.Image.Ready() {
		return nil, ErrImageNotReady
	}
	img, err := spec.Image.Decode()
	if err != nil {
		return nil, err
	}
	intervals := BuildImageIntervals(img, spec.Threshold, m.wm)
	return NewImageShape(intervals), nil
}

func (s *ImageShape) BStart() layout.Abs {
	if len(s.intervals) == 0 {
		return 0
	}
	return s.intervals[0].Top
}

func (s *ImageShape) BEnd() layout.Abs {
	if len(s.intervals) == 0 {
		return 0
	}
	return s.intervals[len(s.intervals)-1].Bottom
}

func (s *ImageShape) IsEmpty() bool {
	return len(s.intervals) == 0
}

func (s *ImageShape) translated(dLineLeft, dBlockStart layout.Abs) Shape {
	out := &ImageShape{intervals: make([]ImageInterval, len(s.intervals))}
	for i, iv := range s.intervals {
		out.intervals[i] = ImageInterval{
			Top:       iv.Top + dBlockStart,
			Bottom:    iv.Bottom + dBlockStart,
			LineLeft:  iv.LineLeft + dLineLeft,
			LineRight: iv.LineRight + dLineLeft,
		}
	}
	return out
}

// LineLeft binary-searches for the first interval overlapping bs, then
// scans forward while interval.Top <= be, taking the minimum LineLeft. If
// nothing overlaps, returns the MAX identity so the margin-box max()
// collapses it to a no-op.
func (s *ImageShape) LineLeft(bs, be layout.Abs) layout.Abs {
	result := layout.Infinite()
	s.scan(bs, be, func(iv ImageInterval) {
		result = result.Min(iv.LineLeft)
	})
	return result
}

// LineRight is LineLeft's maximum-taking mirror. If nothing overlaps,
// returns the MIN identity.
func (s *ImageShape) LineRight(bs, be layout.Abs) layout.Abs {
	result := layout.NegativeInfinite()
	s.scan(bs, be, func(iv ImageInterval) {
		result = result.Max(iv.LineRight)
	})
	return result
}

func (s *ImageShape) scan(bs, be layout.Abs, visit func(ImageInterval)) {
	if len(s.intervals) == 0 {
		return
	}
	start := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].Bottom > bs
	})
	for i := start; i < len(s.intervals); i++ {
		iv := s.intervals[i]
		if iv.Top > be {
			break
		}
		if iv.Bottom <= bs {
			continue
		}
		visit(iv)
	}
}
