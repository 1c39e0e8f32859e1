// Package grid derives the dense logical grid of a table from its sparse
// row/cell tree and edits tables without breaking the grid.
package grid

// SpanTracker records which columns of later rows are already occupied by
// cells spanning down from an earlier row. A tracker lives for exactly one
// forward walk.
type SpanTracker struct {
	// rows maps a future row to column start -> occupied width.
	rows map[int]map[int]int
}

// NewSpanTracker returns an empty tracker.
func NewSpanTracker() *SpanTracker {
	return &SpanTracker{rows: make(map[int]map[int]int)}
}

// Adjust returns the first column at or after column that is not occupied
// by a span recorded for row. Adjacent spans are skipped one after another.
func (st *SpanTracker) Adjust(row, column int) int {
	spans := st.rows[row]
	for {
		width, ok := spans[column]
		if !ok {
			return column
		}
		column += width
	}
}

// Record registers a cell anchored at (row, column). Cells one row high
// leave nothing for later rows.
func (st *SpanTracker) Record(row, column, height, width int) {
	if height <= 1 {
		return
	}
	for r := row + 1; r < row+height; r++ {
		spans := st.rows[r]
		if spans == nil {
			spans = make(map[int]int)
			st.rows[r] = spans
		}
		spans[column] = width
	}
}
