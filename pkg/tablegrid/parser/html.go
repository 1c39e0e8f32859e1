package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/gridsync/pkg/tablegrid/grid"
	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlCell is a td/th element before it becomes a model cell.
type htmlCell struct {
	content string
	rowSpan int
	colSpan int
	header  bool
}

// ReadHTML imports every top-level <table> of an HTML document. Tables
// nested in a cell are part of that cell's text.
func ReadHTML(r io.Reader) ([]TableSource, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var out []TableSource
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			name := caption(n)
			if name == "" {
				name = fmt.Sprintf("table%d", len(out)+1)
			}
			out = append(out, TableSource{Name: name, Table: tableFromNode(n)})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return out, nil
}

func tableFromNode(n *html.Node) *model.Table {
	// thead rows lead the table wherever the section appears.
	var head, body [][]htmlCell
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Tr:
			body = append(body, rowFromNode(c))
		case atom.Thead, atom.Tbody, atom.Tfoot:
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type != html.ElementNode || tr.DataAtom != atom.Tr {
					continue
				}
				if c.DataAtom == atom.Thead {
					head = append(head, rowFromNode(tr))
				} else {
					body = append(body, rowFromNode(tr))
				}
			}
		}
	}
	headRows := len(head)
	rows := append(head, body...)

	isHeader := make(map[*model.Cell]bool)
	var trs []*model.Row
	for _, row := range normalizeRows(rows) {
		var cells []*model.Cell
		for _, hc := range row {
			cell := model.NewSpanCell(hc.content, hc.rowSpan, hc.colSpan)
			isHeader[cell] = hc.header
			cells = append(cells, cell)
		}
		trs = append(trs, model.NewRow(cells...))
	}

	headingRows := headRows
	if headingRows == 0 {
		for _, row := range rows {
			if len(row) == 0 || !allHeader(row) {
				break
			}
			headingRows++
		}
	}
	headingRows = min(headingRows, len(trs))

	t := model.NewTable(headingRows, 0, trs...)
	return model.NewTable(headingRows, headingColumns(t, isHeader), detachRows(t)...)
}

// headingColumns returns the number of leading grid columns made of th
// cells in every body row.
func headingColumns(t *model.Table, isHeader map[*model.Cell]bool) int {
	dense := grid.Dense(t)
	n := -1
	for r := t.HeadingRows(); r < len(dense); r++ {
		k := 0
		for k < len(dense[r]) && dense[r][k].Cell != nil && isHeader[dense[r][k].Cell] {
			k++
		}
		if n < 0 || k < n {
			n = k
		}
	}
	if n < 0 {
		return 0
	}
	return n
}

// detachRows rebuilds the rows of a detached table so they can be adopted
// by another one.
func detachRows(t *model.Table) []*model.Row {
	var out []*model.Row
	for _, r := range t.Rows() {
		var cells []*model.Cell
		for _, c := range r.Cells() {
			cells = append(cells, model.NewSpanCell(c.Content, c.RowSpan(), c.ColSpan()))
		}
		out = append(out, model.NewRow(cells...))
	}
	return out
}

// normalizeRows makes ragged HTML rows rectangular: rowspans are clipped to
// the table, colspans running into an occupied column are shortened, and
// short rows are padded with empty cells.
func normalizeRows(rows [][]htmlCell) [][]htmlCell {
	var occupied [][]bool
	mark := func(r, c int) {
		for len(occupied) <= r {
			occupied = append(occupied, nil)
		}
		for len(occupied[r]) <= c {
			occupied[r] = append(occupied[r], false)
		}
		occupied[r][c] = true
	}
	isOccupied := func(r, c int) bool {
		return r < len(occupied) && c < len(occupied[r]) && occupied[r][c]
	}

	out := make([][]htmlCell, len(rows))
	for r, row := range rows {
		col := 0
		for _, cell := range row {
			for isOccupied(r, col) {
				col++
			}
			cell.rowSpan = min(cell.rowSpan, len(rows)-r)
			width := 1
			for width < cell.colSpan && !isOccupied(r, col+width) {
				width++
			}
			cell.colSpan = width
			for dr := 0; dr < cell.rowSpan; dr++ {
				for dc := 0; dc < cell.colSpan; dc++ {
					mark(r+dr, col+dc)
				}
			}
			out[r] = append(out[r], cell)
			col += cell.colSpan
		}
	}

	width := 0
	for _, occ := range occupied {
		width = max(width, len(occ))
	}
	for r := range out {
		for c := 0; c < width; c++ {
			if !isOccupied(r, c) {
				out[r] = append(out[r], htmlCell{rowSpan: 1, colSpan: 1})
				mark(r, c)
			}
		}
	}
	return out
}

func rowFromNode(tr *html.Node) []htmlCell {
	var cells []htmlCell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		cells = append(cells, htmlCell{
			content: normalizeSpace(textContent(c)),
			rowSpan: spanAttr(c, "rowspan"),
			colSpan: spanAttr(c, "colspan"),
			header:  c.DataAtom == atom.Th,
		})
	}
	return cells
}

// spanAttr returns the rowspan/colspan attribute value (default 1).
func spanAttr(n *html.Node, key string) int {
	for _, a := range n.Attr {
		if a.Key != key {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSpace(a.Val)); err == nil && v > 0 {
			return v
		}
	}
	return 1
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

func caption(table *html.Node) string {
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Caption {
			return normalizeSpace(textContent(c))
		}
	}
	return ""
}

func allHeader(row []htmlCell) bool {
	for _, c := range row {
		if !c.header {
			return false
		}
	}
	return true
}
