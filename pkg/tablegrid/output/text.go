package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/gridsync/pkg/tablegrid/grid"
	"github.com/ukaji3/gridsync/pkg/tablegrid/view"
)

// RenderText draws each table as a box grid. Column-spanning cells are
// drawn across their columns; rows covered by a rowspan are left blank.
// A double rule separates the header section from the body.
func RenderText(w io.Writer, tables []Table) error {
	bw := bufio.NewWriter(w)
	for i, t := range tables {
		if i > 0 {
			bw.WriteString("\n")
		}
		renderTable(bw, t)
	}
	return bw.Flush()
}

func renderTable(w *bufio.Writer, t Table) {
	if t.Name != "" {
		w.WriteString(t.Name + "\n")
	}

	dense := grid.Dense(t.View.Source)
	widths := columnWidths(dense)
	if len(widths) == 0 {
		w.WriteString("(empty)\n")
		return
	}

	w.WriteString(rule(widths, '-'))
	for _, sec := range t.View.Sections {
		for i, rv := range sec.Rows {
			r := rv.Source.Index()
			if r < 0 || r >= len(dense) {
				continue
			}
			w.WriteString(renderRow(dense[r], r, widths))
			fill := '-'
			if sec.Kind == view.Header && i == len(sec.Rows)-1 && len(t.View.Sections) > 1 {
				fill = '='
			}
			w.WriteString(rule(widths, fill))
		}
	}
}

// columnWidths sizes columns from single-column cells, then widens the
// last column of any spanning cell that does not fit.
func columnWidths(dense [][]grid.Slot) []int {
	if len(dense) == 0 {
		return nil
	}
	widths := make([]int, len(dense[0]))
	for i := range widths {
		widths[i] = 1
	}
	for r, row := range dense {
		for c, s := range row {
			if s.Cell == nil || s.Row != r || s.Column != c || s.ColSpan != 1 {
				continue
			}
			widths[c] = max(widths[c], runewidth.StringWidth(s.Cell.Content))
		}
	}
	for r, row := range dense {
		for c, s := range row {
			if s.Cell == nil || s.Row != r || s.Column != c || s.ColSpan == 1 {
				continue
			}
			end := min(s.EndColumn(), len(widths))
			if avail := segmentWidth(widths[c:end]); avail < runewidth.StringWidth(s.Cell.Content) {
				widths[end-1] += runewidth.StringWidth(s.Cell.Content) - avail
			}
		}
	}
	return widths
}

func segmentWidth(widths []int) int {
	n := 3 * (len(widths) - 1)
	for _, w := range widths {
		n += w
	}
	return n
}

func renderRow(row []grid.Slot, r int, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for c := 0; c < len(row); {
		s := row[c]
		end := c + 1
		if s.Cell != nil {
			end = min(s.EndColumn(), len(row))
		}
		content := ""
		if s.Cell != nil && s.Row == r {
			content = s.Cell.Content
		}
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(content, segmentWidth(widths[c:end])))
		sb.WriteString(" |")
		c = end
	}
	sb.WriteString("\n")
	return sb.String()
}

func rule(widths []int, fill rune) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, w := range widths {
		sb.WriteString(strings.Repeat(string(fill), w+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
	return sb.String()
}
