package parser

import (
	"fmt"

	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
)

// layout renders each row's cells as "content" or "content/RxC" for
// spanning cells.
func layout(t *model.Table) [][]string {
	var out [][]string
	for _, r := range t.Rows() {
		row := []string{}
		for _, c := range r.Cells() {
			if c.RowSpan() == 1 && c.ColSpan() == 1 {
				row = append(row, c.Content)
				continue
			}
			row = append(row, fmt.Sprintf("%s/%dx%d", c.Content, c.RowSpan(), c.ColSpan()))
		}
		out = append(out, row)
	}
	return out
}
