package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
)

// attach inserts t into a fresh document so that it can be edited.
func attach(t *model.Table) *model.Table {
	d := model.NewDocument(nil)
	d.Change(func(b *model.Batch) {
		b.InsertTable(t, 0)
	})
	return t
}

func row(contents ...string) *model.Row {
	var cells []*model.Cell
	for _, c := range contents {
		cells = append(cells, model.NewCell(c))
	}
	return model.NewRow(cells...)
}

// pos is a slot reduced to comparable values.
type pos struct {
	Row, Column, RowSpan, ColSpan int
	Content                       string
}

func positions(t *model.Table) []pos {
	var out []pos
	for s := range Walk(t) {
		out = append(out, pos{s.Row, s.Column, s.RowSpan, s.ColSpan, s.Cell.Content})
	}
	return out
}

func contents(r *model.Row) []string {
	var out []string
	for _, c := range r.Cells() {
		out = append(out, c.Content)
	}
	return out
}

func requireValid(t *testing.T, table *model.Table) {
	t.Helper()
	require.NoError(t, Validate(table))
}
