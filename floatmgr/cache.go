package floatmgr

import "github.com/boergens/floatmgr/layout"

// ManagerCache is a bounded free list of reset Managers, letting a layout
// pass that creates and discards many block formatting contexts per
// document (one per table cell, one per block container, ...) avoid
// reallocating the registry backing array each time. It is not a global:
// callers own one per layout pass or per thread of reflow.
type ManagerCache struct {
	free    []*Manager
	maxSize int
}

// NewManagerCache creates a cache that retains at most maxSize idle
// Managers. A maxSize of 0 disables retention: Get always allocates and
// Put always discards.
func NewManagerCache(maxSize int) *ManagerCache {
	return &ManagerCache{maxSize: maxSize}
}

// Get returns a Manager configured for the given writing mode, RTL-ness,
// and container size, reusing an idle one from the free list when
// available.
func (c *ManagerCache) Get(wm layout.WritingMode, rtl bool, containerSize layout.Size) *Manager {
	if n := len(c.free); n > 0 {
		m := c.free[n-1]
		c.free = c.free[:n-1]
		m.reset(wm, rtl, containerSize)
		return m
	}
	return New(wm, rtl, containerSize)
}

// Put returns m to the cache for reuse, if there is room. Callers must not
// use m again after calling Put.
func (c *ManagerCache) Put(m *Manager) {
	if len(c.free) >= c.maxSize {
		return
	}
	c.free = append(c.free, m)
}

// Drain discards every idle Manager held by the cache, e.g. at shutdown
// or between documents.
func (c *ManagerCache) Drain() {
	c.free = nil
}

// Len reports how many idle Managers the cache currently holds.
func (c *ManagerCache) Len() int { return len(c.free) }

// reset restores m to a freshly-constructed state for the given
// parameters, without discarding its backing arrays.
func (m *Manager) reset(wm layout.WritingMode, rtl bool, containerSize layout.Size) {
	m.wm = wm
	m.rtl = rtl
	m.containerSize = containerSize
	m.floats = m.floats[:0]
	m.lineLeft = 0
	m.blockStart = 0
	m.pushedLeftPastBreak = false
	m.pushedRightPastBreak = false
	m.splitLeftAcrossBreak = false
	m.splitRightAcrossBreak = false
	m.damage.Clear()
	for k := range m.region.byFrame {
		delete(m.region.byFrame, k)
	}
}
