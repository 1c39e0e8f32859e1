package output

import (
	"io"
	"strconv"

	"github.com/ukaji3/gridsync/pkg/tablegrid/view"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes every table as an HTML <table>: the header section
// becomes <thead>, the body section <tbody>, header cells <th>.
func RenderHTML(w io.Writer, tables []Table) error {
	for _, t := range tables {
		if err := html.Render(w, TableNode(t)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// TableNode builds the <table> element for one table view.
func TableNode(t Table) *html.Node {
	table := element(atom.Table)
	if t.Name != "" {
		caption := element(atom.Caption)
		caption.AppendChild(&html.Node{Type: html.TextNode, Data: t.Name})
		table.AppendChild(caption)
	}

	slots := slotIndex(t.View.Source)
	for _, sec := range t.View.Sections {
		group := element(atom.Tbody)
		if sec.Kind == view.Header {
			group = element(atom.Thead)
		}
		for _, rv := range sec.Rows {
			tr := element(atom.Tr)
			for _, cv := range rv.Cells {
				cell := element(atom.Td)
				if cv.Kind == view.HeaderCell {
					cell = element(atom.Th)
				}
				s := slots[cv.Source]
				if s.RowSpan > 1 {
					cell.Attr = append(cell.Attr, html.Attribute{Key: "rowspan", Val: strconv.Itoa(s.RowSpan)})
				}
				if s.ColSpan > 1 {
					cell.Attr = append(cell.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(s.ColSpan)})
				}
				if cv.Source.Content != "" {
					cell.AppendChild(&html.Node{Type: html.TextNode, Data: cv.Source.Content})
				}
				tr.AppendChild(cell)
			}
			group.AppendChild(tr)
		}
		table.AppendChild(group)
	}
	return table
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
