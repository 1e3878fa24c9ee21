package floatmgr

import "github.com/boergens/floatmgr/layout"

// regionTable backs the RegionStore methods on Manager: a per-frame cache
// of the last margin-corrected region a caller computed for it, so a
// later pass can reuse the value instead of recomputing it. It is keyed
// by FrameHandle identity, same as the registry itself.
type regionTable struct {
	byFrame map[FrameHandle]layout.LogicalRect
}

func newRegionTable() *regionTable {
	return &regionTable{byFrame: make(map[FrameHandle]layout.LogicalRect)}
}

// CalculateRegionFor derives a frame's margin-corrected region from its
// flow area: the margins on both inline sides (left/right, or top/bottom
// under vertical writing modes) are subtracted from the inline extent,
// with the width clamped at zero, and the block extent is kept as is —
// the region a caller stores via StoreRegionFor after a successful reflow.
func CalculateRegionFor(flowArea FlowAreaRect, margin layout.Sides[layout.Abs], wm layout.WritingMode) layout.LogicalRect {
	marginLineStart, marginLineEnd := margin.Left, margin.Right
	if wm.IsVertical() {
		marginLineStart, marginLineEnd = margin.Top, margin.Bottom
	}
	return layout.LogicalRect{
		LineLeft:   flowArea.InlineStart + marginLineStart,
		BlockStart: flowArea.BlockStart,
		Width:      (flowArea.InlineSize - marginLineStart - marginLineEnd).ClampMin0(),
		Height:     flowArea.BlockSize,
	}
}

// GetRegionFor implements RegionStore, returning the region last stored
// for frame, if any.
func (m *Manager) GetRegionFor(frame FrameHandle) (layout.LogicalRect, bool) {
	r, ok := m.region.byFrame[frame]
	return r, ok
}

// StoreRegionFor implements RegionStore, recording region for frame,
// overwriting any previous value.
func (m *Manager) StoreRegionFor(frame FrameHandle, region layout.LogicalRect) {
	m.region.byFrame[frame] = region
}

// ForgetRegionFor discards a stored region, e.g. once its frame is
// destroyed and RemoveTrailingRegions has dropped it from the registry.
func (m *Manager) ForgetRegionFor(frame FrameHandle) {
	delete(m.region.byFrame, frame)
}
