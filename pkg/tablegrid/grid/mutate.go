package grid

import (
	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
)

// InsertRow inserts count empty grid rows at index at of an attached table
// in a change block of its own.
func InsertRow(t *model.Table, at, count int) {
	documentOf(t).Change(func(b *model.Batch) {
		InsertRows(b, t, at, count)
	})
}

// InsertColumn inserts count empty grid columns at index at of an attached
// table in a change block of its own.
func InsertColumn(t *model.Table, at, count int) {
	documentOf(t).Change(func(b *model.Batch) {
		InsertColumns(b, t, at, count)
	})
}

// InsertRows inserts count grid rows before grid row at. Cells straddling
// the insertion point grow to cover the new rows; every other column of a
// new row gets a fresh 1x1 cell. at is clamped to [0, rows].
func InsertRows(b *model.Batch, t *model.Table, at, count int) {
	if count <= 0 {
		return
	}
	at = clampIndex(at, t.RowCount())
	width := Width(t)

	var grow []*model.Cell
	covered := make([]bool, width)
	for s := range Walk(t) {
		if s.Row >= at {
			break
		}
		if s.EndRow() > at {
			grow = append(grow, s.Cell)
			for c := s.Column; c < s.EndColumn() && c < width; c++ {
				covered[c] = true
			}
		}
	}

	if at < t.HeadingRows() {
		b.SetAttribute(t, model.AttrHeadingRows, t.HeadingRows()+count)
	}
	for _, c := range grow {
		b.SetAttribute(c, model.AttrRowSpan, c.RowSpan()+count)
	}
	for i := 0; i < count; i++ {
		var cells []*model.Cell
		for c := 0; c < width; c++ {
			if !covered[c] {
				cells = append(cells, model.NewCell(""))
			}
		}
		b.InsertRow(t, at+i, model.NewRow(cells...))
	}
}

// InsertColumns inserts count grid columns before grid column at. Cells
// straddling the insertion point grow to cover the new columns; every row
// not covered by such a cell gets count fresh 1x1 cells. at is clamped to
// [0, W].
func InsertColumns(b *model.Batch, t *model.Table, at, count int) {
	if count <= 0 {
		return
	}
	at = clampIndex(at, Width(t))
	rows := t.RowCount()

	var grow []*model.Cell
	covered := make([]bool, rows)
	// before counts, per row, the anchored cells left of at. Columns grow
	// with source order inside a row, so this is also the insertion index.
	before := make([]int, rows)
	for s := range Walk(t) {
		if s.Column < at && s.EndColumn() > at {
			grow = append(grow, s.Cell)
			for r := s.Row; r < s.EndRow() && r < rows; r++ {
				covered[r] = true
			}
		}
		if s.Column < at {
			before[s.Row]++
		}
	}

	if at < t.HeadingColumns() {
		b.SetAttribute(t, model.AttrHeadingColumns, t.HeadingColumns()+count)
	}
	for _, c := range grow {
		b.SetAttribute(c, model.AttrColSpan, c.ColSpan()+count)
	}
	for r := 0; r < rows; r++ {
		if covered[r] {
			continue
		}
		row := t.Row(r)
		for i := 0; i < count; i++ {
			b.InsertCell(row, before[r]+i, model.NewCell(""))
		}
	}
}

// SetHeadingRows sets headingRows, clamped to [0, rows].
func SetHeadingRows(b *model.Batch, t *model.Table, n int) {
	b.SetAttribute(t, model.AttrHeadingRows, clampIndex(n, t.RowCount()))
}

// SetHeadingColumns sets headingColumns, clamped to [0, W].
func SetHeadingColumns(b *model.Batch, t *model.Table, n int) {
	b.SetAttribute(t, model.AttrHeadingColumns, clampIndex(n, Width(t)))
}

func documentOf(t *model.Table) *model.Document {
	d := t.Document()
	if d == nil {
		panic("grid: table is not attached to a document")
	}
	return d
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
