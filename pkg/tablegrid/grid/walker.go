package grid

import (
	"iter"

	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
)

// Slot is one cell placed on the grid at its anchor.
type Slot struct {
	Row     int
	Column  int
	Cell    *model.Cell
	RowSpan int
	ColSpan int
}

// EndRow returns the first grid row below the slot.
func (s Slot) EndRow() int { return s.Row + s.RowSpan }

// EndColumn returns the first grid column right of the slot.
func (s Slot) EndColumn() int { return s.Column + s.ColSpan }

// Covers reports whether the slot occupies grid position (row, column).
func (s Slot) Covers(row, column int) bool {
	return row >= s.Row && row < s.EndRow() && column >= s.Column && column < s.EndColumn()
}

// Walk yields every cell of t in anchor order: row by row, and within a row
// in source order. Each call starts a fresh walk.
func Walk(t *model.Table) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		spans := NewSpanTracker()
		for rowIndex, row := range t.Rows() {
			column := 0
			for _, cell := range row.Cells() {
				column = spans.Adjust(rowIndex, column)
				s := Slot{
					Row:     rowIndex,
					Column:  column,
					Cell:    cell,
					RowSpan: cell.RowSpan(),
					ColSpan: cell.ColSpan(),
				}
				if !yield(s) {
					return
				}
				spans.Record(rowIndex, column, s.RowSpan, s.ColSpan)
				column += s.ColSpan
			}
		}
	}
}

// WalkRow yields the cells anchored in grid row target.
func WalkRow(t *model.Table, target int) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for s := range Walk(t) {
			if s.Row > target {
				return
			}
			if s.Row == target && !yield(s) {
				return
			}
		}
	}
}

// Slots collects a full walk.
func Slots(t *model.Table) []Slot {
	var out []Slot
	for s := range Walk(t) {
		out = append(out, s)
	}
	return out
}

// SlotOf returns the grid placement of cell c, found by a single walk.
func SlotOf(t *model.Table, c *model.Cell) (Slot, bool) {
	for s := range Walk(t) {
		if s.Cell == c {
			return s, true
		}
	}
	return Slot{}, false
}

// Width returns the number of grid columns, taken as the sum of colspans of
// the first row. It assumes a rectangular table.
func Width(t *model.Table) int {
	if t.RowCount() == 0 {
		return 0
	}
	w := 0
	for _, c := range t.Row(0).Cells() {
		w += c.ColSpan()
	}
	return w
}

// Dense returns the table as a rows x W matrix where every grid position
// holds the slot covering it. Positions no cell covers hold a zero Slot;
// positions past W are dropped.
func Dense(t *model.Table) [][]Slot {
	w := Width(t)
	out := make([][]Slot, t.RowCount())
	for i := range out {
		out[i] = make([]Slot, w)
	}
	for s := range Walk(t) {
		for r := s.Row; r < s.EndRow() && r < len(out); r++ {
			for c := s.Column; c < s.EndColumn() && c < w; c++ {
				out[r][c] = s
			}
		}
	}
	return out
}
