package grid

// maxColumns bounds the occupancy bitmask. Column counts beyond this are
// clamped; realistic viewports stay far below it.
const maxColumns = 64

// Layout is the result of one packing pass.
type Layout struct {
	// Positions holds one entry per input item, in input order.
	Positions []Position
	// Rows maps a row number to the item indexes placed in it.
	Rows map[int][]int
	// RowCount is the number of rows the packed collection occupies.
	RowCount int
}

// Compute packs items into columnCount columns and returns their positions.
//
// Items in wide request a span of two columns when columnCount permits it.
// The pass is greedy first-fit: a later single-span item may fill a gap left
// next to an earlier wide item, but placed items are never moved.
//
// columnCount is clamped to at least 1. A nil wide set packs everything at
// span 1.
func Compute(items []Item, columnCount int, wide *WideSet) Layout {
	if columnCount < 1 {
		columnCount = 1
	}
	if columnCount > maxColumns {
		columnCount = maxColumns
	}

	full := fullMask(columnCount)
	occupancy := make(map[int]uint64)
	positions := make([]Position, len(items))
	rows := make(map[int][]int)

	// firstOpenRow skips rows already saturated by earlier placements, so
	// the scan below never re-examines them. This keeps the whole pass
	// amortized O(n + rowCount).
	firstOpenRow := 0
	rowCount := 0

	for i, item := range items {
		span := 1
		if columnCount > 1 && wide.Has(item.Key) {
			span = 2
		}
		if span > columnCount {
			span = columnCount
		}

		row, col := firstFit(occupancy, full, columnCount, firstOpenRow, span)
		occupancy[row] |= spanMask(span) << uint(col)

		positions[i] = Position{Column: col, Row: row, Span: span}
		rows[row] = append(rows[row], i)
		if row+1 > rowCount {
			rowCount = row + 1
		}

		for occupancy[firstOpenRow] == full {
			delete(occupancy, firstOpenRow)
			firstOpenRow++
		}
	}

	return Layout{Positions: positions, Rows: rows, RowCount: rowCount}
}

// firstFit scans rows from startRow upward, columns left to right, for the
// first gap of span contiguous free columns.
func firstFit(occupancy map[int]uint64, full uint64, columnCount, startRow, span int) (row, col int) {
	window := spanMask(span)
	for row = startRow; ; row++ {
		mask := occupancy[row]
		if mask == full {
			continue
		}
		for col = 0; col+span <= columnCount; col++ {
			if mask&(window<<uint(col)) == 0 {
				return row, col
			}
		}
	}
}

func fullMask(columnCount int) uint64 {
	if columnCount >= maxColumns {
		return ^uint64(0)
	}
	return uint64(1)<<uint(columnCount) - 1
}

func spanMask(span int) uint64 {
	return uint64(1)<<uint(span) - 1
}

// LeadingPositions places leading items row-major, span 1, with no packing.
func LeadingPositions(count, columnCount int) []Position {
	if columnCount < 1 {
		columnCount = 1
	}
	positions := make([]Position, count)
	for i := range positions {
		positions[i] = Position{Column: i % columnCount, Row: i / columnCount, Span: 1}
	}
	return positions
}

// LeadingRowCount returns the number of rows count leading items occupy.
func LeadingRowCount(count, columnCount int) int {
	if count <= 0 {
		return 0
	}
	if columnCount < 1 {
		columnCount = 1
	}
	return (count + columnCount - 1) / columnCount
}
