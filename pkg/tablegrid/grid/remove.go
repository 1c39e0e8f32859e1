package grid

import (
	"sort"

	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
)

// RemoveRow removes count grid rows starting at at in a change block of its own.
func RemoveRow(t *model.Table, at, count int) {
	documentOf(t).Change(func(b *model.Batch) {
		RemoveRows(b, t, at, count)
	})
}

// RemoveColumn removes count grid columns starting at at in a change block
// of its own.
func RemoveColumn(t *model.Table, at, count int) {
	documentOf(t).Change(func(b *model.Batch) {
		RemoveColumns(b, t, at, count)
	})
}

type movedCell struct {
	cell    *model.Cell
	column  int
	rowSpan int
}

// RemoveRows removes grid rows [at, at+count). Cells reaching into the
// removed range from above shrink. Cells anchored in a removed row whose
// span continues below move down to the first surviving row, keeping their
// grid column.
func RemoveRows(b *model.Batch, t *model.Table, at, count int) {
	rows := t.RowCount()
	if count <= 0 || at < 0 || at >= rows {
		return
	}
	end := min(at+count, rows)

	type shrink struct {
		cell *model.Cell
		span int
	}
	var shrinks []shrink
	var moves []movedCell
	var targetColumns []int
	for s := range Walk(t) {
		switch {
		case s.Row < at && s.EndRow() > at:
			overlap := min(s.EndRow(), end) - at
			shrinks = append(shrinks, shrink{s.Cell, s.RowSpan - overlap})
		case s.Row >= at && s.Row < end && s.EndRow() > end:
			moves = append(moves, movedCell{s.Cell, s.Column, s.EndRow() - end})
		case s.Row == end:
			targetColumns = append(targetColumns, s.Column)
		}
	}

	if hr := t.HeadingRows(); at < hr {
		b.SetAttribute(t, model.AttrHeadingRows, hr-(min(end, hr)-at))
	}
	// An empty table has width 0.
	if at == 0 && end == rows && t.HeadingColumns() > 0 {
		b.SetAttribute(t, model.AttrHeadingColumns, 0)
	}
	for _, s := range shrinks {
		b.SetAttribute(s.cell, model.AttrRowSpan, s.span)
	}
	if len(moves) > 0 {
		target := t.Row(end)
		sort.Slice(moves, func(i, j int) bool { return moves[i].column < moves[j].column })
		for k, m := range moves {
			index := sort.SearchInts(targetColumns, m.column) + k
			b.RemoveCell(m.cell)
			b.SetAttribute(m.cell, model.AttrRowSpan, m.rowSpan)
			b.InsertCell(target, index, m.cell)
		}
	}
	for i := at; i < end; i++ {
		b.RemoveRow(t.Row(at))
	}
}

// RemoveColumns removes grid columns [at, at+count). Cells lying entirely
// inside the range are removed, cells partly inside shrink.
func RemoveColumns(b *model.Batch, t *model.Table, at, count int) {
	width := Width(t)
	if count <= 0 || at < 0 || at >= width {
		return
	}
	end := min(at+count, width)

	var remove []*model.Cell
	type shrink struct {
		cell *model.Cell
		span int
	}
	var shrinks []shrink
	for s := range Walk(t) {
		overlap := min(s.EndColumn(), end) - max(s.Column, at)
		if overlap <= 0 {
			continue
		}
		if overlap == s.ColSpan {
			remove = append(remove, s.Cell)
		} else {
			shrinks = append(shrinks, shrink{s.Cell, s.ColSpan - overlap})
		}
	}

	if hc := t.HeadingColumns(); at < hc {
		b.SetAttribute(t, model.AttrHeadingColumns, hc-(min(end, hc)-at))
	}
	for _, s := range shrinks {
		b.SetAttribute(s.cell, model.AttrColSpan, s.span)
	}
	for _, c := range remove {
		b.RemoveCell(c)
	}
}
