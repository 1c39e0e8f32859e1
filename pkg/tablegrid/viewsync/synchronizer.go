// Package viewsync keeps the output tree of every table in a document in
// step with the source tree. Each change notification is applied
// incrementally: existing row and cell views are reused, and only the
// section a row lives in and the kind of a cell are ever updated in place.
package viewsync

import (
	"log/slog"

	"github.com/ukaji3/gridsync/pkg/tablegrid/grid"
	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
	"github.com/ukaji3/gridsync/pkg/tablegrid/view"
)

// Synchronizer binds source nodes to their views. It implements
// model.Listener and must be registered before any table is inserted.
type Synchronizer struct {
	tables map[*model.Table]*view.TableView
	rows   map[*model.Row]*view.RowView
	cells  map[*model.Cell]*view.CellView
	log    *slog.Logger
}

var _ model.Listener = (*Synchronizer)(nil)

// New creates a Synchronizer. A nil logger means slog.Default().
func New(logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synchronizer{
		tables: make(map[*model.Table]*view.TableView),
		rows:   make(map[*model.Row]*view.RowView),
		cells:  make(map[*model.Cell]*view.CellView),
		log:    logger,
	}
}

// Attach creates a Synchronizer and registers it with d.
func Attach(d *model.Document, logger *slog.Logger) *Synchronizer {
	s := New(logger)
	d.Listen(s)
	return s
}

// View returns the output tree of t, or nil when t is not bound.
func (s *Synchronizer) View(t *model.Table) *view.TableView {
	return s.tables[t]
}

// RowView returns the view bound to r, or nil.
func (s *Synchronizer) RowView(r *model.Row) *view.RowView {
	return s.rows[r]
}

// CellView returns the view bound to c, or nil.
func (s *Synchronizer) CellView(c *model.Cell) *view.CellView {
	return s.cells[c]
}

// HandleChange implements model.Listener.
func (s *Synchronizer) HandleChange(c model.Change) {
	switch c.Type {
	case model.TableInserted:
		s.OnTableInserted(c.Table)
	case model.TableRemoved:
		s.OnTableRemoved(c.Table)
	case model.RowInserted:
		s.OnRowInserted(c.Row)
	case model.RowRemoved:
		s.OnRowRemoved(c.Table, c.Row)
	case model.CellInserted:
		s.OnCellInserted(c.Cell)
	case model.CellRemoved:
		s.OnCellRemoved(c.Table, c.Cell)
	case model.AttributeChanged:
		switch c.Key {
		case model.AttrHeadingRows, model.AttrHeadingColumns:
			s.OnHeadingBoundsChanged(c.Table, c.Key, c.Old, c.New)
		case model.AttrRowSpan, model.AttrColSpan:
			s.OnSpanChanged(c.Table)
		}
	}
}

// OnTableInserted builds the whole output tree of t with one walk.
func (s *Synchronizer) OnTableInserted(t *model.Table) {
	if t.Document() == nil {
		return
	}
	if _, ok := s.tables[t]; ok {
		return
	}
	tv := &view.TableView{Source: t}
	s.tables[t] = tv

	hr, hc := t.HeadingRows(), t.HeadingColumns()
	indexes := rowIndexes(t)
	for slot := range grid.Walk(t) {
		rv := s.ensureRow(tv, slot.Cell.Row(), slot.Row, hr, indexes)
		s.bindCell(rv, slot, hr, hc)
	}
	// Rows fully covered by spans from above yield no slot.
	for i, row := range t.Rows() {
		s.ensureRow(tv, row, i, hr, indexes)
	}
	s.log.Debug("table view built",
		slog.Int("rows", t.RowCount()),
		slog.Int("sections", len(tv.Sections)))
}

// OnTableRemoved drops every binding of t.
func (s *Synchronizer) OnTableRemoved(t *model.Table) {
	tv, ok := s.tables[t]
	if !ok {
		return
	}
	for _, rv := range tv.Rows() {
		s.unbindRow(rv)
	}
	delete(s.tables, t)
	s.log.Debug("table view dropped", slog.Int("rows", t.RowCount()))
}

// OnRowInserted creates the view of row r inside the section its grid index
// belongs to and fills it with the cells anchored in it. Calling it again
// for a bound row changes nothing.
func (s *Synchronizer) OnRowInserted(r *model.Row) {
	t := r.Table()
	if t == nil {
		return
	}
	tv := s.tables[t]
	if tv == nil {
		return
	}
	index := r.Index()
	hr, hc := t.HeadingRows(), t.HeadingColumns()
	rv := s.ensureRow(tv, r, index, hr, rowIndexes(t))
	for slot := range grid.WalkRow(t, index) {
		s.bindCell(rv, slot, hr, hc)
	}
	// Rows below shifted down by one grid row.
	s.reconcile(t)
}

// OnRowRemoved drops the view of r and settles the rest of the table.
func (s *Synchronizer) OnRowRemoved(t *model.Table, r *model.Row) {
	rv, ok := s.rows[r]
	if !ok {
		return
	}
	s.unbindRow(rv)
	s.reconcile(t)
}

// OnCellInserted inserts the view of c into its row view at the position of
// c within the source row.
func (s *Synchronizer) OnCellInserted(c *model.Cell) {
	if _, ok := s.cells[c]; ok {
		return
	}
	t := c.Table()
	if t == nil || s.tables[t] == nil {
		return
	}
	rv := s.rows[c.Row()]
	if rv == nil {
		return
	}
	slot, ok := grid.SlotOf(t, c)
	if !ok {
		return
	}
	s.bindCell(rv, slot, t.HeadingRows(), t.HeadingColumns())
	// Cells to the right may have moved to another grid column.
	s.reconcile(t)
}

// OnCellRemoved drops the view of c and settles the rest of the table.
func (s *Synchronizer) OnCellRemoved(t *model.Table, c *model.Cell) {
	cv, ok := s.cells[c]
	if !ok {
		return
	}
	if cv.Row != nil {
		cv.Row.Remove(cv)
	}
	delete(s.cells, c)
	s.reconcile(t)
}

// OnHeadingBoundsChanged moves rows between sections and retypes cells
// after headingRows or headingColumns changed.
func (s *Synchronizer) OnHeadingBoundsChanged(t *model.Table, key string, oldValue, newValue int) {
	s.log.Debug("heading bounds changed",
		slog.String("attribute", key),
		slog.Int("old", oldValue),
		slog.Int("new", newValue))
	s.reconcile(t)
}

// OnSpanChanged retypes cells after a rowspan or colspan changed, since
// anchors to the right or below may have moved.
func (s *Synchronizer) OnSpanChanged(t *model.Table) {
	s.reconcile(t)
}

// reconcile walks t once and brings every bound row and cell view in line
// with the current heading bounds. Nodes that are not bound yet are left
// to their own insertion notification.
func (s *Synchronizer) reconcile(t *model.Table) {
	tv := s.tables[t]
	if tv == nil {
		return
	}
	s.prune(tv)

	hr, hc := t.HeadingRows(), t.HeadingColumns()
	indexes := rowIndexes(t)
	for i, row := range t.Rows() {
		rv := s.rows[row]
		if rv == nil {
			continue
		}
		want := grid.SectionOf(i, hr)
		if rv.Section != nil && rv.Section.Kind == want {
			continue
		}
		from := rv.Section
		if from != nil {
			from.Remove(rv)
		}
		place(tv.EnsureSection(want), rv, i, indexes)
		s.log.Debug("row moved", slog.Int("row", i), slog.String("section", want.String()))
	}
	for slot := range grid.Walk(t) {
		cv := s.cells[slot.Cell]
		if cv == nil {
			continue
		}
		if want := grid.CellKindOf(slot, hr, hc); cv.Kind != want {
			cv.Kind = want
			s.log.Debug("cell retyped",
				slog.Int("row", slot.Row),
				slog.Int("column", slot.Column),
				slog.String("kind", want.String()))
		}
	}

	if sec := tv.Section(view.Header); hr == 0 && sec != nil && len(sec.Rows) == 0 {
		tv.RemoveSection(view.Header)
		s.log.Debug("header section removed")
	}
	if sec := tv.Section(view.Body); hr >= t.RowCount() && sec != nil && len(sec.Rows) == 0 {
		tv.RemoveSection(view.Body)
		s.log.Debug("body section removed")
	}
}

// prune drops views whose source node left the table or moved to another
// row, so that later placement only sees live nodes.
func (s *Synchronizer) prune(tv *view.TableView) {
	for _, rv := range tv.Rows() {
		if rv.Source.Table() != tv.Source {
			s.unbindRow(rv)
			continue
		}
		for _, cv := range append([]*view.CellView(nil), rv.Cells...) {
			if cv.Source.Row() != rv.Source {
				rv.Remove(cv)
				if s.cells[cv.Source] == cv {
					delete(s.cells, cv.Source)
				}
			}
		}
	}
}

func (s *Synchronizer) ensureRow(tv *view.TableView, r *model.Row, index, headingRows int, indexes map[*model.Row]int) *view.RowView {
	if rv, ok := s.rows[r]; ok {
		return rv
	}
	rv := &view.RowView{Source: r}
	place(tv.EnsureSection(grid.SectionOf(index, headingRows)), rv, index, indexes)
	s.rows[r] = rv
	return rv
}

func (s *Synchronizer) bindCell(rv *view.RowView, slot grid.Slot, headingRows, headingColumns int) {
	if _, ok := s.cells[slot.Cell]; ok {
		return
	}
	cv := &view.CellView{
		Source: slot.Cell,
		Kind:   grid.CellKindOf(slot, headingRows, headingColumns),
	}
	// Intra-row order is source order, not grid column.
	index := slot.Cell.Index()
	pos := 0
	for i, other := range rv.Cells {
		if other.Source.Row() == rv.Source && other.Source.Index() < index {
			pos = i + 1
		}
	}
	rv.Insert(pos, cv)
	s.cells[slot.Cell] = cv
}

func (s *Synchronizer) unbindRow(rv *view.RowView) {
	if rv.Section != nil {
		rv.Section.Remove(rv)
	}
	for _, cv := range rv.Cells {
		if s.cells[cv.Source] == cv {
			delete(s.cells, cv.Source)
		}
	}
	if s.rows[rv.Source] == rv {
		delete(s.rows, rv.Source)
	}
}

// place inserts rv into sec right after the view of the closest preceding
// grid row already in sec, or at the section start when there is none.
func place(sec *view.Section, rv *view.RowView, index int, indexes map[*model.Row]int) {
	pos := 0
	for i, other := range sec.Rows {
		if j, ok := indexes[other.Source]; ok && j < index {
			pos = i + 1
		}
	}
	sec.Insert(pos, rv)
}

func rowIndexes(t *model.Table) map[*model.Row]int {
	m := make(map[*model.Row]int, t.RowCount())
	for i, r := range t.Rows() {
		m[r] = i
	}
	return m
}
