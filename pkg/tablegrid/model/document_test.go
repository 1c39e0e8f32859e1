package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	changes []Change
}

func (r *recorder) HandleChange(c Change) { r.changes = append(r.changes, c) }

func (r *recorder) types() []ChangeType {
	var out []ChangeType
	for _, c := range r.changes {
		out = append(out, c.Type)
	}
	return out
}

func TestChangeDeliversAfterBlock(t *testing.T) {
	d := NewDocument(nil)
	rec := &recorder{}
	d.Listen(rec)

	table := NewTable(0, 0, NewRow(NewCell("a")))
	d.Change(func(b *Batch) {
		b.InsertTable(table, 0)
		b.InsertRow(table, 5, NewRow(NewCell("b")))
		d.Change(func(b *Batch) {
			b.SetAttribute(table, AttrHeadingRows, 1)
		})
		assert.Empty(t, rec.changes, "notifications must wait for the outer block")
	})

	assert.Equal(t, []ChangeType{TableInserted, RowInserted, AttributeChanged}, rec.types())
	assert.Equal(t, 1, rec.changes[1].Index)
	assert.Equal(t, AttrHeadingRows, rec.changes[2].Key)
	assert.Equal(t, 0, rec.changes[2].Old)
	assert.Equal(t, 1, rec.changes[2].New)
	assert.Same(t, d, table.Document())
}

func TestSetAttributeUnchangedIsSilent(t *testing.T) {
	d := NewDocument(nil)
	cell := NewSpanCell("a", 2, 1)
	table := NewTable(0, 0, NewRow(cell), NewRow())
	d.Change(func(b *Batch) { b.InsertTable(table, 0) })

	rec := &recorder{}
	d.Listen(rec)
	d.Change(func(b *Batch) {
		b.SetAttribute(cell, AttrRowSpan, 2)
		b.SetAttribute(cell, AttrColSpan, 3)
	})

	require.Len(t, rec.changes, 1)
	c := rec.changes[0]
	assert.Same(t, cell, c.Cell)
	assert.Same(t, table, c.Table)
	assert.Equal(t, 3, cell.ColSpan())
}

func TestRemovalCarriesFormerParents(t *testing.T) {
	d := NewDocument(nil)
	cell := NewCell("x")
	r := NewRow(NewCell("w"), cell)
	table := NewTable(0, 0, r)
	d.Change(func(b *Batch) { b.InsertTable(table, 0) })

	rec := &recorder{}
	d.Listen(rec)
	d.Change(func(b *Batch) {
		b.RemoveCell(cell)
		b.RemoveRow(r)
		b.RemoveTable(table)
	})

	require.Equal(t, []ChangeType{CellRemoved, RowRemoved, TableRemoved}, rec.types())
	assert.Same(t, r, rec.changes[0].Row)
	assert.Equal(t, 1, rec.changes[0].Index)
	assert.Same(t, table, rec.changes[1].Table)
	assert.Nil(t, cell.Row())
	assert.Nil(t, r.Table())
	assert.Nil(t, table.Document())
	assert.Empty(t, d.Tables())
}

func TestListenerChangesAreQueued(t *testing.T) {
	d := NewDocument(nil)
	table := NewTable(0, 0)
	var seen []ChangeType
	d.Listen(ListenerFunc(func(c Change) {
		seen = append(seen, c.Type)
		if c.Type == TableInserted {
			d.Change(func(b *Batch) { b.InsertRow(table, 0, NewRow()) })
		}
	}))

	d.Change(func(b *Batch) { b.InsertTable(table, 0) })

	assert.Equal(t, []ChangeType{TableInserted, RowInserted}, seen)
}

func TestMisusePanics(t *testing.T) {
	d := NewDocument(nil)
	table := NewTable(0, 0, NewRow(NewCell("a")))
	d.Change(func(b *Batch) { b.InsertTable(table, 0) })

	assert.Panics(t, func() {
		d.Change(func(b *Batch) { b.SetAttribute(table, "width", 3) })
	})
	assert.Panics(t, func() {
		d.Change(func(b *Batch) { b.SetAttribute(table.Row(0).Cells()[0], AttrColSpan, 0) })
	})
	assert.Panics(t, func() {
		d.Change(func(b *Batch) { b.InsertRow(table, 0, table.Row(0)) })
	})
	assert.Panics(t, func() {
		other := NewDocument(nil)
		other.Change(func(b *Batch) { b.InsertRow(table, 0, NewRow()) })
	})
	assert.Panics(t, func() { NewSpanCell("x", 0, 1) })
}

func TestQueries(t *testing.T) {
	cell := NewSpanCell("x", 2, 3)
	r := NewRow(NewCell("a"), cell)
	table := NewTable(1, 2, r)

	assert.Same(t, r, ParentOf(cell))
	assert.Same(t, table, ParentOf(r))
	assert.Nil(t, ParentOf(table))
	assert.Len(t, ChildrenOf(r), 2)
	assert.Len(t, ChildrenOf(table), 1)
	assert.Empty(t, ChildrenOf(cell))

	v, ok := GetAttribute(cell, AttrColSpan)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	v, ok = GetAttribute(table, AttrHeadingColumns)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = GetAttribute(r, AttrRowSpan)
	assert.False(t, ok)

	assert.Equal(t, 1, cell.Index())
	assert.Equal(t, 0, r.Index())
	assert.Equal(t, -1, NewRow().Index())
	assert.Same(t, table, cell.Table())
}
