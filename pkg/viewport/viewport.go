// Package viewport maps scroll offsets to the half-open range of grid rows
// that must be materialized, and provides the scroll state the visual layer
// attaches to the engine.
package viewport

import "math"

// VisibleRows returns the half-open [start, end) range of packed rows that
// intersect the viewport, expanded by bufferRows on each side and clamped to
// [0, rowCount].
//
// leadingExtent is the height consumed by the leading block before the
// packed rows; leading items are always materialized and never windowed, so
// only the packed range is computed here.
func VisibleRows(offset, viewportExtent, leadingExtent, rowExtent float64, rowCount, bufferRows int) (start, end int) {
	if rowCount <= 0 || rowExtent <= 0 {
		return 0, 0
	}
	if bufferRows < 0 {
		bufferRows = 0
	}

	if offset < leadingExtent {
		start = 0
	} else {
		start = int(math.Floor((offset - leadingExtent) / rowExtent))
	}
	end = int(math.Ceil((offset + viewportExtent - leadingExtent) / rowExtent))

	start -= bufferRows
	end += bufferRows

	if start < 0 {
		start = 0
	}
	if end > rowCount {
		end = rowCount
	}
	if end < start {
		end = start
	}
	return start, end
}
