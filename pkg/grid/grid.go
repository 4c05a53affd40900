// Package grid computes bin-packed positions for variable-span items in a
// column grid.
//
// The grid places items with a greedy first-fit algorithm: each item takes
// the first free cell (or pair of adjacent cells, for wide items) scanning
// left-to-right, top-to-bottom. Items are processed strictly in input order
// and are never reordered for a tighter packing, so the caller's ordering is
// authoritative.
//
// Placement is pure: [Compute] has no side effects and is deterministic for
// a given item order and wide set, which makes layouts safe to recompute at
// any time.
package grid

// Item is a single entry in the packed collection. Identity is Key.
type Item struct {
	// Key uniquely identifies the item across relayouts.
	Key string
	// WideEligible marks items whose content may turn out to need two
	// columns. Items without it never enter the wide set.
	WideEligible bool
}

// LeadingItem is an entry in the small collection rendered before the packed
// grid, placed row-major without packing. Folder entries in a gallery view
// are the typical use.
type LeadingItem struct {
	Key   string
	Title string
}

// Position locates one item in the grid.
type Position struct {
	Column int
	Row    int
	// Span is the number of columns occupied, 1 or 2.
	Span int
}

// Geometry describes the measurable dimensions of the scrollable grid.
// It is recomputed only when the container resizes.
type Geometry struct {
	ColumnCount int
	// RowExtent is the fixed height of one packed row.
	RowExtent float64
	// ColumnExtent is the fixed width of one column.
	ColumnExtent float64
	// LeadingExtent is the total height consumed by leading items.
	LeadingExtent float64
}

// WideSet tracks item keys that have been discovered to need a two-column
// span. The set only grows: a discovery is never forgotten within a session.
type WideSet struct {
	keys map[string]struct{}
}

// NewWideSet returns an empty wide set.
func NewWideSet() *WideSet {
	return &WideSet{keys: make(map[string]struct{})}
}

// Add records a key as wide. It returns true if the key was not already
// present.
func (w *WideSet) Add(key string) bool {
	if _, ok := w.keys[key]; ok {
		return false
	}
	w.keys[key] = struct{}{}
	return true
}

// Has reports whether key has been discovered wide.
func (w *WideSet) Has(key string) bool {
	if w == nil {
		return false
	}
	_, ok := w.keys[key]
	return ok
}

// Len returns the number of discovered keys.
func (w *WideSet) Len() int {
	if w == nil {
		return 0
	}
	return len(w.keys)
}
