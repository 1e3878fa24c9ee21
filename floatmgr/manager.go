package floatmgr

import "github.com/boergens/floatmgr/layout"

// Manager is the float manager for a single block formatting context: an
// append-only (between checkpoints) registry of floats plus the query
// engine that answers flow-area and clear questions about them. A Manager
// is an exclusive resource of its owning layout pass: it is strictly
// single-threaded and non-suspending, and callers must not share one
// across goroutines.
type Manager struct {
	wm            layout.WritingMode
	rtl           bool
	containerSize layout.Size

	floats []FloatInfo

	lineLeft   layout.Abs
	blockStart layout.Abs

	pushedLeftPastBreak   bool
	pushedRightPastBreak  bool
	splitLeftAcrossBreak  bool
	splitRightAcrossBreak bool

	damage *DamageSink
	region *regionTable
}

// New creates an empty manager for the given writing mode, RTL-ness, and
// containing block size (used to mirror the inline axis under RTL and the
// block axis under vertical-rl/sideways-rl).
func New(wm layout.WritingMode, rtl bool, containerSize layout.Size) *Manager {
	return &Manager{
		wm:            wm,
		rtl:           rtl,
		containerSize: containerSize,
		damage:        newDamageSink(),
		region:        newRegionTable(),
	}
}

// WritingMode returns the manager's writing mode.
func (m *Manager) WritingMode() layout.WritingMode { return m.wm }

// Translate adds (dLineLeft, dBlockStart) to the manager's origin. This
// affects only future insertions and future query translations — stored
// floats are never retroactively shifted.
func (m *Manager) Translate(dLineLeft, dBlockStart layout.Abs) {
	m.lineLeft += dLineLeft
	m.blockStart += dBlockStart
}

// Damage returns the manager's damage sink, accumulated across push/pop.
func (m *Manager) Damage() *DamageSink { return m.damage }

// PushedLeftPastBreak / PushedRightPastBreak / SplitLeftAcrossBreak /
// SplitRightAcrossBreak are the four break-continuation flags consulted by
// ClearFloats and GetLowestFloatTop, set by external pagination logic.
func (m *Manager) PushedLeftPastBreak() bool  { return m.pushedLeftPastBreak }
func (m *Manager) PushedRightPastBreak() bool { return m.pushedRightPastBreak }
func (m *Manager) SplitLeftAcrossBreak() bool { return m.splitLeftAcrossBreak }
func (m *Manager) SplitRightAcrossBreak() bool {
	return m.splitRightAcrossBreak
}

func (m *Manager) SetPushedLeftPastBreak(v bool)   { m.pushedLeftPastBreak = v }
func (m *Manager) SetPushedRightPastBreak(v bool)  { m.pushedRightPastBreak = v }
func (m *Manager) SetSplitLeftAcrossBreak(v bool)  { m.splitLeftAcrossBreak = v }
func (m *Manager) SetSplitRightAcrossBreak(v bool) { m.splitRightAcrossBreak = v }

// State is a checkpoint captured by PushState and consumed by PopState.
// The zero value is not a valid checkpoint; always obtain one from
// PushState.
type State struct {
	valid      bool
	owner      *Manager
	lineLeft   layout.Abs
	blockStart layout.Abs

	pushedLeftPastBreak   bool
	pushedRightPastBreak  bool
	splitLeftAcrossBreak  bool
	splitRightAcrossBreak bool

	floatCount int
}

// FloatCount exposes the checkpoint's recorded registry length, so a
// caller can build a SavedFloatCount for GetFlowArea without actually
// popping back to the checkpoint.
func (s State) FloatCount() int { return s.floatCount }

// PushState captures the manager's origin, break flags, and float count.
// The damage sink is explicitly NOT captured: a speculative trial
// reflow's damage must survive a later PopState, since the final reflow
// may move a float to yet another position and both contributions must
// be visible to the frame tree.
func (m *Manager) PushState() State {
	return State{
		valid:                 true,
		owner:                 m,
		lineLeft:              m.lineLeft,
		blockStart:            m.blockStart,
		pushedLeftPastBreak:   m.pushedLeftPastBreak,
		pushedRightPastBreak:  m.pushedRightPastBreak,
		splitLeftAcrossBreak:  m.splitLeftAcrossBreak,
		splitRightAcrossBreak: m.splitRightAcrossBreak,
		floatCount:            len(m.floats),
	}
}

// PopState restores the origin, break flags, and float count captured by
// s, discarding any floats appended since. The damage sink is left
// untouched.
//
// Popping with a checkpoint from a different manager, or one whose
// recorded float count exceeds the manager's current length (which can
// only happen if the caller already popped past it, or mutated the
// registry through RemoveTrailingRegions below the checkpoint), is a
// contract bug and panics rather than silently producing an inconsistent
// manager.
func (m *Manager) PopState(s State) {
	if !s.valid {
		panic("floatmgr: PopState called with a zero State")
	}
	if s.owner != m {
		panic("floatmgr: PopState called with a State from a different Manager")
	}
	if s.floatCount > len(m.floats) {
		panic("floatmgr: PopState checkpoint float count exceeds current registry length")
	}

	m.lineLeft = s.lineLeft
	m.blockStart = s.blockStart
	m.pushedLeftPastBreak = s.pushedLeftPastBreak
	m.pushedRightPastBreak = s.pushedRightPastBreak
	m.splitLeftAcrossBreak = s.splitLeftAcrossBreak
	m.splitRightAcrossBreak = s.splitRightAcrossBreak
	m.floats = m.floats[:s.floatCount]
}
