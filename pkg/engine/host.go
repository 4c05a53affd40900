package engine

import "time"

// Host is the set of collaborator callbacks the engine is constructed with.
// The engine owns no UI objects and performs no I/O; everything it needs
// from the outside world arrives through this interface, and geometry is
// sampled on demand rather than pushed.
type Host interface {
	// ScrollOffset returns the current scroll offset of the container.
	ScrollOffset() float64
	// SetScrollOffset moves the container, used to preserve the scroll
	// position across a discovery relayout.
	SetScrollOffset(offset float64)
	// ViewportSize returns the container's client width and height.
	ViewportSize() (width, height float64)
}

// Options tune the engine's fixed geometry. Non-positive values fall back
// to defaults.
type Options struct {
	// RowExtent is the fixed height of one packed row.
	RowExtent float64
	// ColumnExtent is the fixed width of one column; the column count is
	// derived from it on resize.
	ColumnExtent float64
	// LeadingRowExtent is the fixed height of one leading row.
	LeadingRowExtent float64
	// BufferRows expands the visible window on each side.
	BufferRows int
}

const (
	defaultRowExtent        = 420
	defaultColumnExtent     = 300
	defaultLeadingRowExtent = 48
)

func (o Options) normalized() Options {
	if o.RowExtent <= 0 {
		o.RowExtent = defaultRowExtent
	}
	if o.ColumnExtent <= 0 {
		o.ColumnExtent = defaultColumnExtent
	}
	if o.LeadingRowExtent <= 0 {
		o.LeadingRowExtent = defaultLeadingRowExtent
	}
	if o.BufferRows < 0 {
		o.BufferRows = 0
	}
	return o
}

// Stats counts the engine's units of work, for diagnostics and tests.
type Stats struct {
	Relayouts     int
	Reconciles    int
	Mounts        int
	Unmounts      int
	StaleReports  int
	LastRelayout  time.Duration
	LastReconcile time.Duration
}
