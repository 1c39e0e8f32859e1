package output

import (
	"github.com/ukaji3/gridsync/pkg/tablegrid/grid"
	"github.com/ukaji3/gridsync/pkg/tablegrid/models"
	"github.com/ukaji3/gridsync/pkg/tablegrid/parser"
)

// Snapshot builds the serialisable tree of every table loaded from source.
func Snapshot(source string, tables []Table) models.Document {
	doc := models.Document{Source: source, Tables: []models.Table{}}
	for _, t := range tables {
		doc.Tables = append(doc.Tables, TableSnapshot(t))
	}
	return doc
}

// TableSnapshot converts one table view. Rows and cells are listed in view
// order; grid positions come from a fresh walk of the source table.
func TableSnapshot(t Table) models.Table {
	src := t.View.Source
	slots := slotIndex(src)

	out := models.Table{
		Name:           t.Name,
		Range:          t.Range,
		Rows:           src.RowCount(),
		Columns:        grid.Width(src),
		HeadingRows:    src.HeadingRows(),
		HeadingColumns: src.HeadingColumns(),
		Sections:       []models.Section{},
	}

	for _, sec := range t.View.Sections {
		ms := models.Section{Kind: sec.Kind.String(), Rows: []models.Row{}}
		for _, rv := range sec.Rows {
			mr := models.Row{R: rv.Source.Index(), Cells: []models.Cell{}}
			for _, cv := range rv.Cells {
				s := slots[cv.Source]
				mc := models.Cell{
					C:     s.Column,
					Kind:  cv.Kind.String(),
					Value: parser.ParseValue(cv.Source.Content),
				}
				if s.RowSpan > 1 {
					mc.RowSpan = s.RowSpan
				}
				if s.ColSpan > 1 {
					mc.ColSpan = s.ColSpan
				}
				mr.Cells = append(mr.Cells, mc)
			}
			ms.Rows = append(ms.Rows, mr)
		}
		out.Sections = append(out.Sections, ms)
	}
	return out
}
