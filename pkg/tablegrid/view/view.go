// Package view defines the output tree kept in sync with a source table:
// sections hold row views, row views hold cell views. Kinds are plain
// enum fields so a view can be retyped in place.
package view

import "github.com/ukaji3/gridsync/pkg/tablegrid/model"

// SectionKind says whether a section groups header or body rows.
type SectionKind int

const (
	Header SectionKind = iota
	Body
)

func (k SectionKind) String() string {
	if k == Header {
		return "header"
	}
	return "body"
}

// MarshalText implements encoding.TextMarshaler.
func (k SectionKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// CellKind says whether a cell renders as a header cell or a plain cell.
type CellKind int

const (
	PlainCell CellKind = iota
	HeaderCell
)

func (k CellKind) String() string {
	if k == HeaderCell {
		return "header"
	}
	return "plain"
}

// MarshalText implements encoding.TextMarshaler.
func (k CellKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// KindOf maps the classifier result to a cell kind.
func KindOf(header bool) CellKind {
	if header {
		return HeaderCell
	}
	return PlainCell
}

// TableView is the root of the output tree for one source table.
type TableView struct {
	Source   *model.Table
	Sections []*Section
}

// Section groups consecutive grid rows. A table has at most one section of
// each kind and the header section always comes first.
type Section struct {
	Kind SectionKind
	Rows []*RowView
}

// RowView mirrors a source row.
type RowView struct {
	Source  *model.Row
	Section *Section
	Cells   []*CellView
}

// CellView mirrors a source cell.
type CellView struct {
	Source *model.Cell
	Kind   CellKind
	Row    *RowView
}

// Section returns the section of the given kind, or nil.
func (tv *TableView) Section(kind SectionKind) *Section {
	for _, s := range tv.Sections {
		if s.Kind == kind {
			return s
		}
	}
	return nil
}

// EnsureSection returns the section of the given kind, creating it when
// missing: a header section is created at the front, a body section at the
// end.
func (tv *TableView) EnsureSection(kind SectionKind) *Section {
	if s := tv.Section(kind); s != nil {
		return s
	}
	s := &Section{Kind: kind}
	if kind == Header {
		tv.Sections = append([]*Section{s}, tv.Sections...)
	} else {
		tv.Sections = append(tv.Sections, s)
	}
	return s
}

// RemoveSection drops the section of the given kind if present.
func (tv *TableView) RemoveSection(kind SectionKind) {
	for i, s := range tv.Sections {
		if s.Kind == kind {
			tv.Sections = append(tv.Sections[:i], tv.Sections[i+1:]...)
			return
		}
	}
}

// Rows returns every row view in rendering order.
func (tv *TableView) Rows() []*RowView {
	var out []*RowView
	for _, s := range tv.Sections {
		out = append(out, s.Rows...)
	}
	return out
}

// Insert places rv at position i of the section (clamped).
func (s *Section) Insert(i int, rv *RowView) {
	if i < 0 {
		i = 0
	}
	if i > len(s.Rows) {
		i = len(s.Rows)
	}
	s.Rows = append(s.Rows, nil)
	copy(s.Rows[i+1:], s.Rows[i:])
	s.Rows[i] = rv
	rv.Section = s
}

// Remove detaches rv from the section. It reports whether rv was found.
func (s *Section) Remove(rv *RowView) bool {
	for i, other := range s.Rows {
		if other == rv {
			s.Rows = append(s.Rows[:i], s.Rows[i+1:]...)
			rv.Section = nil
			return true
		}
	}
	return false
}

// IndexOf returns the position of rv in the section, or -1.
func (s *Section) IndexOf(rv *RowView) int {
	for i, other := range s.Rows {
		if other == rv {
			return i
		}
	}
	return -1
}

// Insert places cv at position i of the row (clamped).
func (rv *RowView) Insert(i int, cv *CellView) {
	if i < 0 {
		i = 0
	}
	if i > len(rv.Cells) {
		i = len(rv.Cells)
	}
	rv.Cells = append(rv.Cells, nil)
	copy(rv.Cells[i+1:], rv.Cells[i:])
	rv.Cells[i] = cv
	cv.Row = rv
}

// Remove detaches cv from the row. It reports whether cv was found.
func (rv *RowView) Remove(cv *CellView) bool {
	for i, other := range rv.Cells {
		if other == cv {
			rv.Cells = append(rv.Cells[:i], rv.Cells[i+1:]...)
			cv.Row = nil
			return true
		}
	}
	return false
}
