// Package model is the source tree of a table: tables hold rows, rows hold
// only the cells anchored in them. Nodes are mutated through a Batch opened
// by Document.Change so that every write produces a change notification.
package model

import "fmt"

// Attribute keys understood by GetAttribute and Batch.SetAttribute.
const (
	AttrHeadingRows    = "headingRows"
	AttrHeadingColumns = "headingColumns"
	AttrRowSpan        = "rowspan"
	AttrColSpan        = "colspan"
)

// Node is implemented by *Table, *Row and *Cell.
type Node interface {
	fmt.Stringer
	isNode()
}

// Table is an ordered sequence of rows plus its heading bounds.
type Table struct {
	doc            *Document
	rows           []*Row
	headingRows    int
	headingColumns int
}

// Row is an ordered sequence of the cells anchored in it. Cells spanning
// into the row from an earlier row are implicit.
type Row struct {
	table *Table
	cells []*Cell
}

// Cell is a single table cell. Its content is opaque to the grid engine.
type Cell struct {
	row     *Row
	rowSpan int
	colSpan int
	Content string
}

// NewTable creates a detached table with the given rows and heading bounds.
func NewTable(headingRows, headingColumns int, rows ...*Row) *Table {
	if headingRows < 0 || headingColumns < 0 {
		panicf("negative heading bounds %d/%d", headingRows, headingColumns)
	}
	t := &Table{headingRows: headingRows, headingColumns: headingColumns}
	for _, r := range rows {
		r.attach(t)
		t.rows = append(t.rows, r)
	}
	return t
}

// NewRow creates a detached row holding the given cells.
func NewRow(cells ...*Cell) *Row {
	r := &Row{}
	for _, c := range cells {
		c.attach(r)
		r.cells = append(r.cells, c)
	}
	return r
}

// NewCell creates a detached 1x1 cell.
func NewCell(content string) *Cell {
	return &Cell{rowSpan: 1, colSpan: 1, Content: content}
}

// NewSpanCell creates a detached cell covering rowSpan x colSpan grid slots.
func NewSpanCell(content string, rowSpan, colSpan int) *Cell {
	if rowSpan < 1 || colSpan < 1 {
		panicf("invalid span %dx%d", rowSpan, colSpan)
	}
	return &Cell{rowSpan: rowSpan, colSpan: colSpan, Content: content}
}

func (*Table) isNode() {}
func (*Row) isNode()   {}
func (*Cell) isNode()  {}

// Document returns the document the table is attached to, or nil.
func (t *Table) Document() *Document { return t.doc }

// Rows returns the table rows. The slice must not be modified.
func (t *Table) Rows() []*Row { return t.rows }

// RowCount returns the number of rows, which is also the number of grid rows.
func (t *Table) RowCount() int { return len(t.rows) }

// Row returns the row at index i.
func (t *Table) Row(i int) *Row { return t.rows[i] }

// HeadingRows returns the number of leading grid rows rendered as header.
func (t *Table) HeadingRows() int { return t.headingRows }

// HeadingColumns returns the number of leading grid columns rendered as header.
func (t *Table) HeadingColumns() int { return t.headingColumns }

func (t *Table) String() string {
	return fmt.Sprintf("table(rows=%d heading=%d/%d)", len(t.rows), t.headingRows, t.headingColumns)
}

// Table returns the owning table, or nil for a detached row.
func (r *Row) Table() *Table { return r.table }

// Cells returns the cells anchored in the row. The slice must not be modified.
func (r *Row) Cells() []*Cell { return r.cells }

// Index returns the position of the row in its table, or -1 when detached.
func (r *Row) Index() int {
	if r.table == nil {
		return -1
	}
	for i, other := range r.table.rows {
		if other == r {
			return i
		}
	}
	return -1
}

func (r *Row) String() string {
	return fmt.Sprintf("row(%d cells=%d)", r.Index(), len(r.cells))
}

func (r *Row) attach(t *Table) {
	if r.table != nil {
		panicf("%s is already attached", r)
	}
	r.table = t
}

// Row returns the owning row, or nil for a detached cell.
func (c *Cell) Row() *Row { return c.row }

// Table returns the table owning the cell's row, or nil.
func (c *Cell) Table() *Table {
	if c.row == nil {
		return nil
	}
	return c.row.table
}

// RowSpan returns the number of grid rows the cell covers.
func (c *Cell) RowSpan() int { return c.rowSpan }

// ColSpan returns the number of grid columns the cell covers.
func (c *Cell) ColSpan() int { return c.colSpan }

// Index returns the position of the cell in its row, or -1 when detached.
func (c *Cell) Index() int {
	if c.row == nil {
		return -1
	}
	for i, other := range c.row.cells {
		if other == c {
			return i
		}
	}
	return -1
}

func (c *Cell) String() string {
	return fmt.Sprintf("cell(%q %dx%d)", c.Content, c.rowSpan, c.colSpan)
}

func (c *Cell) attach(r *Row) {
	if c.row != nil {
		panicf("%s is already attached", c)
	}
	c.row = r
}

// ParentOf returns the parent node, or nil for tables and detached nodes.
func ParentOf(n Node) Node {
	switch n := n.(type) {
	case *Row:
		if n.table != nil {
			return n.table
		}
	case *Cell:
		if n.row != nil {
			return n.row
		}
	}
	return nil
}

// ChildrenOf returns the child nodes of n in order.
func ChildrenOf(n Node) []Node {
	var out []Node
	switch n := n.(type) {
	case *Table:
		for _, r := range n.rows {
			out = append(out, r)
		}
	case *Row:
		for _, c := range n.cells {
			out = append(out, c)
		}
	}
	return out
}

// GetAttribute returns the integer attribute key of n. Unknown keys
// report ok == false.
func GetAttribute(n Node, key string) (value int, ok bool) {
	switch n := n.(type) {
	case *Table:
		switch key {
		case AttrHeadingRows:
			return n.headingRows, true
		case AttrHeadingColumns:
			return n.headingColumns, true
		}
	case *Cell:
		switch key {
		case AttrRowSpan:
			return n.rowSpan, true
		case AttrColSpan:
			return n.colSpan, true
		}
	}
	return 0, false
}

func panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf("model: "+format, a...))
}
