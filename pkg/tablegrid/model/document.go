package model

import (
	"log/slog"
)

// ChangeType identifies the kind of mutation a Change describes.
type ChangeType int

const (
	TableInserted ChangeType = iota
	TableRemoved
	RowInserted
	RowRemoved
	CellInserted
	CellRemoved
	AttributeChanged
)

var changeTypeNames = [...]string{
	TableInserted:    "tableInserted",
	TableRemoved:     "tableRemoved",
	RowInserted:      "rowInserted",
	RowRemoved:       "rowRemoved",
	CellInserted:     "cellInserted",
	CellRemoved:      "cellRemoved",
	AttributeChanged: "attributeChanged",
}

func (t ChangeType) String() string {
	if int(t) < len(changeTypeNames) {
		return changeTypeNames[t]
	}
	return "unknown"
}

// Change is a single notification delivered to listeners once the change
// block that produced it has finished. Removal notifications carry the
// former parents since the removed node is already detached.
type Change struct {
	Type  ChangeType
	Table *Table
	Row   *Row
	Cell  *Cell
	// Index is the position the node was inserted at or removed from.
	Index int
	// Node, Key, Old and New describe an AttributeChanged notification.
	Node Node
	Key  string
	Old  int
	New  int
}

// Listener receives change notifications.
type Listener interface {
	HandleChange(c Change)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(c Change)

// HandleChange calls f(c).
func (f ListenerFunc) HandleChange(c Change) { f(c) }

// Document owns a list of tables and serialises all mutations of them
// through change blocks. It is not safe for concurrent use.
type Document struct {
	tables      []*Table
	listeners   []Listener
	pending     []Change
	depth       int
	dispatching bool
	log         *slog.Logger
}

// NewDocument creates an empty document. A nil logger means slog.Default().
func NewDocument(logger *slog.Logger) *Document {
	if logger == nil {
		logger = slog.Default()
	}
	return &Document{log: logger}
}

// Tables returns the tables of the document in order.
func (d *Document) Tables() []*Table { return d.tables }

// Listen registers l for all future change notifications.
func (d *Document) Listen(l Listener) {
	d.listeners = append(d.listeners, l)
}

// Change runs fn inside an exclusive change block. Mutations made through
// the batch are applied immediately; their notifications are delivered in
// order after the outermost block returns. Nested calls join the
// enclosing block.
func (d *Document) Change(fn func(b *Batch)) {
	d.depth++
	func() {
		defer func() { d.depth-- }()
		fn(&Batch{doc: d})
	}()
	if d.depth > 0 || d.dispatching {
		return
	}
	d.flush()
}

func (d *Document) flush() {
	d.dispatching = true
	defer func() { d.dispatching = false }()
	for len(d.pending) > 0 {
		changes := d.pending
		d.pending = nil
		d.log.Debug("dispatching change block", slog.Int("changes", len(changes)))
		for _, c := range changes {
			for _, l := range d.listeners {
				l.HandleChange(c)
			}
		}
	}
}

func (d *Document) queue(c Change) {
	d.pending = append(d.pending, c)
}
