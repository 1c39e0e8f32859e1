package parser

import (
	"fmt"

	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
	"github.com/xuri/excelize/v2"
)

// region is a worksheet range to be imported as one table.
type region struct {
	name           string
	area           Area
	headingRows    int
	headingColumns int
}

// mergedRange is a merged cell range and the value shown in it.
type mergedRange struct {
	Area
	value string
}

// ReadXLSX opens the workbook at path and imports its tables.
func ReadXLSX(path string) ([]TableSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadWorkbook(f)
}

// ReadWorkbook imports the tables of every sheet in f. A sheet's tables are
// its declared table objects; without any, its print areas; without any,
// the detected data region.
func ReadWorkbook(f *excelize.File) ([]TableSource, error) {
	printAreas := ExtractPrintAreas(f)

	var out []TableSource
	for _, sheetName := range f.GetSheetList() {
		tables, err := ReadSheet(f, sheetName, printAreas[sheetName])
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		out = append(out, tables...)
	}
	return out, nil
}

// ReadSheet imports the tables of one sheet. Merged ranges become spanning
// cells anchored at their top-left corner.
func ReadSheet(f *excelize.File, sheetName string, printAreas []Area) ([]TableSource, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	merges, err := sheetMerges(f, sheetName)
	if err != nil {
		return nil, err
	}
	regions, err := sheetRegions(f, sheetName, rows, merges, printAreas)
	if err != nil {
		return nil, err
	}

	var out []TableSource
	for _, rg := range regions {
		out = append(out, TableSource{
			Name:  rg.name,
			Range: rg.area.Ref(),
			Table: buildTable(rows, merges, rg),
		})
	}
	return out, nil
}

func sheetMerges(f *excelize.File, sheetName string) ([]mergedRange, error) {
	cells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	var out []mergedRange
	for _, mc := range cells {
		a, ok := ParseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if !ok {
			continue
		}
		out = append(out, mergedRange{Area: a, value: mc.GetCellValue()})
	}
	return out, nil
}

func sheetRegions(f *excelize.File, sheetName string, rows [][]string, merges []mergedRange, printAreas []Area) ([]region, error) {
	tables, err := f.GetTables(sheetName)
	if err != nil {
		return nil, err
	}

	var regions []region
	for _, tbl := range tables {
		a, ok := ParseRange(tbl.Range)
		if !ok {
			continue
		}
		rg := region{name: tbl.Name, area: a, headingRows: 1}
		if tbl.ShowHeaderRow != nil && !*tbl.ShowHeaderRow {
			rg.headingRows = 0
		}
		if tbl.ShowFirstColumn {
			rg.headingColumns = 1
		}
		regions = append(regions, rg)
	}
	if len(regions) > 0 {
		return regions, nil
	}

	for i, a := range printAreas {
		name := sheetName
		if len(printAreas) > 1 {
			name = fmt.Sprintf("%s#%d", sheetName, i+1)
		}
		regions = append(regions, region{name: name, area: a})
	}
	if len(regions) > 0 {
		return regions, nil
	}

	areas := make([]Area, 0, len(merges))
	for _, m := range merges {
		areas = append(areas, m.Area)
	}
	for _, a := range DetectTables(rows, areas, DefaultTableParams()) {
		regions = append(regions, region{name: sheetName, area: a})
	}
	return regions, nil
}

// buildTable turns a worksheet region into a detached source tree. Merges
// crossing the region border are clipped to it; a merge overlapping an
// earlier one is ignored.
func buildTable(rows [][]string, merges []mergedRange, rg region) *model.Table {
	a := rg.area
	type span struct {
		rowSpan, colSpan int
		value            string
	}
	anchors := make(map[[2]int]span)
	covered := make(map[[2]int]bool)

	for _, m := range merges {
		clipped, ok := m.Clip(a)
		if !ok || overlaps(covered, clipped) {
			continue
		}
		anchors[[2]int{clipped.R1, clipped.C1}] = span{
			rowSpan: clipped.R2 - clipped.R1 + 1,
			colSpan: clipped.C2 - clipped.C1 + 1,
			value:   m.value,
		}
		for r := clipped.R1; r <= clipped.R2; r++ {
			for c := clipped.C1; c <= clipped.C2; c++ {
				covered[[2]int{r, c}] = true
			}
		}
	}

	var trs []*model.Row
	for r := a.R1; r <= a.R2; r++ {
		var cells []*model.Cell
		for c := a.C1; c <= a.C2; c++ {
			key := [2]int{r, c}
			if sp, ok := anchors[key]; ok {
				cells = append(cells, model.NewSpanCell(sp.value, sp.rowSpan, sp.colSpan))
				continue
			}
			if covered[key] {
				continue
			}
			cells = append(cells, model.NewCell(cellAt(rows, r-1, c-1)))
		}
		trs = append(trs, model.NewRow(cells...))
	}

	width := a.C2 - a.C1 + 1
	return model.NewTable(min(rg.headingRows, len(trs)), min(rg.headingColumns, width), trs...)
}

func overlaps(covered map[[2]int]bool, a Area) bool {
	for r := a.R1; r <= a.R2; r++ {
		for c := a.C1; c <= a.C2; c++ {
			if covered[[2]int{r, c}] {
				return true
			}
		}
	}
	return false
}
