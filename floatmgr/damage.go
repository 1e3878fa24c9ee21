package floatmgr

// DamageSink accumulates the set of frames whose floats were registered
// (AddFloat records each one), for a caller to turn into an incremental
// repaint/reflow region afterward. Damage is explicitly NOT part of a
// checkpoint: PushState/PopState never touch it, because frames a
// speculative reflow attempt touched are still candidates for repaint
// even if that attempt is later discarded.
type DamageSink struct {
	frames map[FrameHandle]struct{}
	order  []FrameHandle
}

func newDamageSink() *DamageSink {
	return &DamageSink{frames: make(map[FrameHandle]struct{})}
}

// Record marks frame as damaged. Recording the same frame twice is a
// no-op.
func (d *DamageSink) Record(frame FrameHandle) {
	if _, ok := d.frames[frame]; ok {
		return
	}
	d.frames[frame] = struct{}{}
	d.order = append(d.order, frame)
}

// Frames returns the damaged frames in the order they were first
// recorded.
func (d *DamageSink) Frames() []FrameHandle {
	out := make([]FrameHandle, len(d.order))
	copy(out, d.order)
	return out
}

// Len reports how many distinct frames have been recorded.
func (d *DamageSink) Len() int { return len(d.order) }

// Clear empties the sink, e.g. once a caller has consumed Frames() into a
// repaint pass.
func (d *DamageSink) Clear() {
	d.frames = make(map[FrameHandle]struct{})
	d.order = nil
}
