package model

// Batch is the writer handed to a change block. All mutations of attached
// tables go through it.
type Batch struct {
	doc *Document
}

// Document returns the document the batch writes to.
func (b *Batch) Document() *Document { return b.doc }

// InsertTable attaches a detached table at index (clamped to the table count).
func (b *Batch) InsertTable(t *Table, index int) {
	if t.doc != nil {
		panicf("%s is already attached", t)
	}
	d := b.doc
	index = clamp(index, len(d.tables))
	d.tables = insertAt(d.tables, index, t)
	t.doc = d
	d.queue(Change{Type: TableInserted, Table: t, Index: index})
}

// RemoveTable detaches t from the document.
func (b *Batch) RemoveTable(t *Table) {
	d := b.doc
	b.owned(t)
	index := -1
	for i, other := range d.tables {
		if other == t {
			index = i
			break
		}
	}
	d.tables = append(d.tables[:index], d.tables[index+1:]...)
	t.doc = nil
	d.queue(Change{Type: TableRemoved, Table: t, Index: index})
}

// InsertRow attaches a detached row to t at index (clamped to the row count).
func (b *Batch) InsertRow(t *Table, index int, r *Row) {
	b.owned(t)
	r.attach(t)
	index = clamp(index, len(t.rows))
	t.rows = insertAt(t.rows, index, r)
	b.doc.queue(Change{Type: RowInserted, Table: t, Row: r, Index: index})
}

// RemoveRow detaches r, with the cells anchored in it, from its table.
func (b *Batch) RemoveRow(r *Row) {
	t := r.table
	if t == nil {
		panicf("%s is detached", r)
	}
	b.owned(t)
	index := r.Index()
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
	r.table = nil
	b.doc.queue(Change{Type: RowRemoved, Table: t, Row: r, Index: index})
}

// InsertCell attaches a detached cell to r at index (clamped to the cell count).
func (b *Batch) InsertCell(r *Row, index int, c *Cell) {
	if r.table == nil {
		panicf("%s is detached", r)
	}
	b.owned(r.table)
	c.attach(r)
	index = clamp(index, len(r.cells))
	r.cells = insertAt(r.cells, index, c)
	b.doc.queue(Change{Type: CellInserted, Table: r.table, Row: r, Cell: c, Index: index})
}

// RemoveCell detaches c from its row.
func (b *Batch) RemoveCell(c *Cell) {
	r := c.row
	if r == nil || r.table == nil {
		panicf("%s is detached", c)
	}
	b.owned(r.table)
	index := c.Index()
	r.cells = append(r.cells[:index], r.cells[index+1:]...)
	c.row = nil
	b.doc.queue(Change{Type: CellRemoved, Table: r.table, Row: r, Cell: c, Index: index})
}

// SetAttribute writes an integer attribute. Writing the current value is a
// no-op and produces no notification.
func (b *Batch) SetAttribute(n Node, key string, value int) {
	old, ok := GetAttribute(n, key)
	if !ok {
		panicf("%s has no attribute %q", n, key)
	}
	var t *Table
	switch n := n.(type) {
	case *Table:
		if value < 0 {
			panicf("%s: %s must not be negative, got %d", n, key, value)
		}
		t = n
	case *Cell:
		if value < 1 {
			panicf("%s: %s must be at least 1, got %d", n, key, value)
		}
		t = n.Table()
	}
	if t != nil {
		b.owned(t)
	}
	if old == value {
		return
	}
	switch n := n.(type) {
	case *Table:
		if key == AttrHeadingRows {
			n.headingRows = value
		} else {
			n.headingColumns = value
		}
	case *Cell:
		if key == AttrRowSpan {
			n.rowSpan = value
		} else {
			n.colSpan = value
		}
	}
	if t == nil {
		return
	}
	c := Change{Type: AttributeChanged, Table: t, Node: n, Key: key, Old: old, New: value}
	if cell, ok := n.(*Cell); ok {
		c.Cell = cell
		c.Row = cell.row
	}
	b.doc.queue(c)
}

func (b *Batch) owned(t *Table) {
	if t.doc != b.doc {
		panicf("%s does not belong to this document", t)
	}
}

func clamp(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n {
		return n
	}
	return index
}

func insertAt[T any](s []T, index int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[index+1:], s[index:])
	s[index] = v
	return s
}
