package output

import (
	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
	"github.com/ukaji3/gridsync/pkg/tablegrid/viewsync"
)

// salesTable returns a synchronised table with a two-column header cell
// and a two-row header column cell:
//
//	| Region      | Total |
//	| North | Q1  | 10    |
//	|       | Q2  | 20    |
func salesTable() Table {
	table := model.NewTable(1, 1,
		model.NewRow(model.NewSpanCell("Region", 1, 2), model.NewCell("Total")),
		model.NewRow(model.NewSpanCell("North", 2, 1), model.NewCell("Q1"), model.NewCell("10")),
		model.NewRow(model.NewCell("Q2"), model.NewCell("20")),
	)
	return synced("Sales", "A1:C3", table)
}

func synced(name, rangeRef string, table *model.Table) Table {
	d := model.NewDocument(nil)
	s := viewsync.Attach(d, nil)
	d.Change(func(b *model.Batch) { b.InsertTable(table, 0) })
	return Table{Name: name, Range: rangeRef, View: s.View(table)}
}
