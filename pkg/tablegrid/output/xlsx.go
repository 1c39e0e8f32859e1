package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gridsync/pkg/tablegrid/parser"
	"github.com/ukaji3/gridsync/pkg/tablegrid/view"
	"github.com/xuri/excelize/v2"
)

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// ToWorkbook writes each table to its own sheet starting at A1. Spanning
// cells become merged ranges and header cells are bold.
func ToWorkbook(tables []Table) (*excelize.File, error) {
	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	used := make(map[string]bool)
	for i, t := range tables {
		name := sheetName(t.Name, i, used)
		if i == 0 {
			err = f.SetSheetName("Sheet1", name)
		} else {
			_, err = f.NewSheet(name)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name, t, bold); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	return f, nil
}

// SaveXLSX writes the tables to a new workbook at path.
func SaveXLSX(path string, tables []Table) error {
	f, err := ToWorkbook(tables)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, t Table, bold int) error {
	slots := slotIndex(t.View.Source)
	for _, rv := range t.View.Rows() {
		for _, cv := range rv.Cells {
			s := slots[cv.Source]
			topLeft, err := excelize.CoordinatesToCellName(s.Column+1, s.Row+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, topLeft, parser.ParseValue(cv.Source.Content)); err != nil {
				return err
			}
			bottomRight, err := excelize.CoordinatesToCellName(s.EndColumn(), s.EndRow())
			if err != nil {
				return err
			}
			if s.RowSpan > 1 || s.ColSpan > 1 {
				if err := f.MergeCell(sheet, topLeft, bottomRight); err != nil {
					return err
				}
			}
			if cv.Kind == view.HeaderCell {
				if err := f.SetCellStyle(sheet, topLeft, bottomRight, bold); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// sheetName derives a unique, valid sheet name from a table name.
func sheetName(name string, index int, used map[string]bool) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.Trim(name, "'"))
	if name == "" {
		name = fmt.Sprintf("Table%d", index+1)
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}

	base := name
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf("_%d", n)
		r := []rune(base)
		if len(r)+len(suffix) > maxSheetName {
			r = r[:maxSheetName-len(suffix)]
		}
		name = string(r) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}
