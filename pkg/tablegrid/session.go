package tablegrid

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/gridsync/pkg/tablegrid/grid"
	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
	"github.com/ukaji3/gridsync/pkg/tablegrid/models"
	"github.com/ukaji3/gridsync/pkg/tablegrid/output"
	"github.com/ukaji3/gridsync/pkg/tablegrid/parser"
	"github.com/ukaji3/gridsync/pkg/tablegrid/view"
	"github.com/ukaji3/gridsync/pkg/tablegrid/viewsync"
)

// Session owns a document loaded from one source file together with the
// synchronizer keeping its output trees current.
type Session struct {
	source string
	doc    *model.Document
	sync   *viewsync.Synchronizer
	tables []output.Table
	opts   Options
	log    *slog.Logger
}

// Load imports every table of the xlsx or html file at path.
func Load(path string, opts Options) (*Session, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	source := filepath.Base(path)
	var (
		sources   []parser.TableSource
		component string
		err       error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		component = "xlsx"
		sources, err = parser.ReadXLSX(path)
	case ".html", ".htm":
		component = "html"
		sources, err = readHTMLFile(path)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext)
	}
	if err != nil {
		return nil, NewImportError(source, component, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	if len(sources) == 0 {
		return nil, NewImportError(source, component, ErrNoTable)
	}

	return NewSession(source, sources, opts)
}

func readHTMLFile(path string) ([]parser.TableSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.ReadHTML(f)
}

// NewSession inserts detached source tables into a new document in one
// change block and applies the heading overrides of opts.
func NewSession(source string, sources []parser.TableSource, opts Options) (*Session, error) {
	log := opts.logger()
	doc := model.NewDocument(log)
	s := &Session{
		source: source,
		doc:    doc,
		sync:   viewsync.Attach(doc, log),
		opts:   opts,
		log:    log,
	}

	doc.Change(func(b *model.Batch) {
		for i, src := range sources {
			b.InsertTable(src.Table, i)
			if opts.HeadingRows != nil {
				grid.SetHeadingRows(b, src.Table, *opts.HeadingRows)
			}
			if opts.HeadingColumns != nil {
				grid.SetHeadingColumns(b, src.Table, *opts.HeadingColumns)
			}
		}
	})
	for _, src := range sources {
		s.tables = append(s.tables, output.Table{
			Name:  src.Name,
			Range: src.Range,
			View:  s.sync.View(src.Table),
		})
		log.Debug("table loaded", "source", source, "table", src.Name,
			"rows", src.Table.RowCount(), "columns", grid.Width(src.Table))
	}
	log.Info("loaded tables", "source", source, "count", len(sources))

	if err := s.check(s.tables...); err != nil {
		return nil, err
	}
	return s, nil
}

// Source returns the base name of the loaded file.
func (s *Session) Source() string { return s.source }

// Document returns the underlying document.
func (s *Session) Document() *model.Document { return s.doc }

// Len returns the number of tables.
func (s *Session) Len() int { return len(s.tables) }

// Tables returns the named views of every table in source order.
func (s *Session) Tables() []output.Table { return s.tables }

// Table returns the source tree of table i.
func (s *Session) Table(i int) (*model.Table, error) {
	if i < 0 || i >= len(s.tables) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrTableIndex, i, len(s.tables))
	}
	return s.tables[i].View.Source, nil
}

// View returns the output tree of table i, or nil for a bad index.
func (s *Session) View(i int) *view.TableView {
	if i < 0 || i >= len(s.tables) {
		return nil
	}
	return s.tables[i].View
}

// InsertRows inserts count empty rows before row at of table i.
func (s *Session) InsertRows(i, at, count int) error {
	return s.edit(i, "insert rows", func(b *model.Batch, t *model.Table) {
		grid.InsertRows(b, t, at, count)
	})
}

// InsertColumns inserts count empty columns before column at of table i.
func (s *Session) InsertColumns(i, at, count int) error {
	return s.edit(i, "insert columns", func(b *model.Batch, t *model.Table) {
		grid.InsertColumns(b, t, at, count)
	})
}

// RemoveRows removes count grid rows starting at row at of table i.
func (s *Session) RemoveRows(i, at, count int) error {
	return s.edit(i, "remove rows", func(b *model.Batch, t *model.Table) {
		grid.RemoveRows(b, t, at, count)
	})
}

// RemoveColumns removes count grid columns starting at column at of table i.
func (s *Session) RemoveColumns(i, at, count int) error {
	return s.edit(i, "remove columns", func(b *model.Batch, t *model.Table) {
		grid.RemoveColumns(b, t, at, count)
	})
}

// SetHeadingRows sets the heading rows of table i, clamped to the table.
func (s *Session) SetHeadingRows(i, n int) error {
	return s.edit(i, "set heading rows", func(b *model.Batch, t *model.Table) {
		grid.SetHeadingRows(b, t, n)
	})
}

// SetHeadingColumns sets the heading columns of table i, clamped to the
// grid width.
func (s *Session) SetHeadingColumns(i, n int) error {
	return s.edit(i, "set heading columns", func(b *model.Batch, t *model.Table) {
		grid.SetHeadingColumns(b, t, n)
	})
}

// Change runs fn as one change block over the whole document and then
// checks every table.
func (s *Session) Change(fn func(b *model.Batch)) error {
	s.doc.Change(fn)
	return s.check(s.tables...)
}

// RemoveTable drops table i from the document and the session.
func (s *Session) RemoveTable(i int) error {
	t, err := s.Table(i)
	if err != nil {
		return err
	}
	s.doc.Change(func(b *model.Batch) { b.RemoveTable(t) })
	s.log.Debug("table removed", "table", s.tables[i].Name)
	s.tables = append(s.tables[:i], s.tables[i+1:]...)
	return nil
}

// Keep removes every table except table i.
func (s *Session) Keep(i int) error {
	if _, err := s.Table(i); err != nil {
		return err
	}
	kept := s.tables[i]
	s.doc.Change(func(b *model.Batch) {
		for j, t := range s.tables {
			if j != i {
				b.RemoveTable(t.View.Source)
			}
		}
	})
	s.tables = []output.Table{kept}
	return nil
}

// Snapshot returns the serialisable tree of every table.
func (s *Session) Snapshot() models.Document {
	return output.Snapshot(s.source, s.tables)
}

// Render writes every table in the given format.
func (s *Session) Render(w io.Writer, format Format, pretty bool) error {
	switch format {
	case FormatJSON:
		doc := s.Snapshot()
		data, err := output.ToJSON(&doc, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatText:
		return output.RenderText(w, s.tables)
	case FormatHTML:
		return output.RenderHTML(w, s.tables)
	}
	return fmt.Errorf("invalid format: %s", format)
}

// SaveXLSX writes every table to a new workbook at path.
func (s *Session) SaveXLSX(path string) error {
	return output.SaveXLSX(path, s.tables)
}

func (s *Session) edit(i int, op string, fn func(b *model.Batch, t *model.Table)) error {
	t, err := s.Table(i)
	if err != nil {
		return err
	}
	s.doc.Change(func(b *model.Batch) { fn(b, t) })
	s.log.Debug(op, "table", s.tables[i].Name, "rows", t.RowCount(), "columns", grid.Width(t),
		"headingRows", t.HeadingRows(), "headingColumns", t.HeadingColumns())
	return s.check(s.tables[i])
}

// check validates tables when invariant checking is enabled.
func (s *Session) check(tables ...output.Table) error {
	if !s.opts.CheckInvariants {
		return nil
	}
	for _, t := range tables {
		if err := grid.Validate(t.View.Source); err != nil {
			s.log.Error("grid invariant broken", "table", t.Name, "error", err)
			return fmt.Errorf("table %q: %w", t.Name, err)
		}
	}
	return nil
}
