package testing

import (
	"github.com/go-mosaic/mosaic/pkg/pool"
)

// MountEvent is one recorded mount or unmount side effect.
type MountEvent struct {
	Op     string // "mount" or "unmount"
	Key    string
	Target pool.Target // zero for unmounts
}

// RecorderHost implements engine.Host with in-memory scroll geometry and
// records every mount/unmount the engine issues. It stands in for the
// visual layer in tests and headless simulations.
type RecorderHost struct {
	offset float64
	width  float64
	height float64

	Events []MountEvent
	// SetOffsetCalls counts scroll restorations issued by the engine.
	SetOffsetCalls int
}

// NewRecorderHost creates a host with the given viewport size.
func NewRecorderHost(width, height float64) *RecorderHost {
	return &RecorderHost{width: width, height: height}
}

// ScrollOffset returns the simulated scroll offset.
func (h *RecorderHost) ScrollOffset() float64 { return h.offset }

// SetScrollOffset moves the simulated scroll position.
func (h *RecorderHost) SetScrollOffset(offset float64) {
	h.offset = offset
	h.SetOffsetCalls++
}

// Scroll moves the simulated scroll position without counting as an
// engine-issued restoration.
func (h *RecorderHost) Scroll(offset float64) { h.offset = offset }

// ViewportSize returns the simulated container size.
func (h *RecorderHost) ViewportSize() (float64, float64) { return h.width, h.height }

// Resize changes the simulated container size.
func (h *RecorderHost) Resize(width, height float64) {
	h.width = width
	h.height = height
}

// Mount records the side effect and returns the key as the handle.
func (h *RecorderHost) Mount(t pool.Target) pool.Handle {
	h.Events = append(h.Events, MountEvent{Op: "mount", Key: t.Item.Key, Target: t})
	return t.Item.Key
}

// Unmount records the side effect.
func (h *RecorderHost) Unmount(handle pool.Handle) {
	key, _ := handle.(string)
	h.Events = append(h.Events, MountEvent{Op: "unmount", Key: key})
}

// Counts returns how many mounts and unmounts have been recorded.
func (h *RecorderHost) Counts() (mounts, unmounts int) {
	for _, e := range h.Events {
		if e.Op == "mount" {
			mounts++
		} else {
			unmounts++
		}
	}
	return mounts, unmounts
}

// Reset clears recorded events.
func (h *RecorderHost) Reset() {
	h.Events = nil
	h.SetOffsetCalls = 0
}
