package grid

import "github.com/ukaji3/gridsync/pkg/tablegrid/view"

// SectionOf returns the section grid row belongs to.
func SectionOf(row, headingRows int) view.SectionKind {
	if row < headingRows {
		return view.Header
	}
	return view.Body
}

// IsHeaderCell reports whether a cell anchored at (row, column) renders as
// a header cell.
func IsHeaderCell(row, column, headingRows, headingColumns int) bool {
	return row < headingRows || column < headingColumns
}

// CellKindOf classifies a slot of t.
func CellKindOf(s Slot, headingRows, headingColumns int) view.CellKind {
	return view.KindOf(IsHeaderCell(s.Row, s.Column, headingRows, headingColumns))
}
