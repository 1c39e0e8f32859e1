// Package parser reads tables with merged or spanning cells from xlsx
// workbooks and HTML documents into the sparse source tree.
package parser

import (
	"fmt"

	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
	"github.com/xuri/excelize/v2"
)

// TableSource is one imported table and where it came from.
type TableSource struct {
	// Name is the sheet/table name for xlsx, "table<N>" for html.
	Name string
	// Range is the worksheet range for xlsx sources.
	Range string
	// Table is the detached source tree.
	Table *model.Table
}

// Area is a rectangular cell range with 1-based inclusive bounds.
type Area struct {
	R1, C1, R2, C2 int
}

// Contains reports whether the 1-based cell (row, col) lies in the area.
func (a Area) Contains(row, col int) bool {
	return row >= a.R1 && row <= a.R2 && col >= a.C1 && col <= a.C2
}

// Clip returns the intersection of a and b and whether it is non-empty.
func (a Area) Clip(b Area) (Area, bool) {
	out := Area{
		R1: max(a.R1, b.R1),
		C1: max(a.C1, b.C1),
		R2: min(a.R2, b.R2),
		C2: min(a.C2, b.C2),
	}
	return out, out.R1 <= out.R2 && out.C1 <= out.C2
}

// Ref renders the area in A1:B2 notation.
func (a Area) Ref() string {
	start, _ := excelize.CoordinatesToCellName(a.C1, a.R1)
	end, _ := excelize.CoordinatesToCellName(a.C2, a.R2)
	return fmt.Sprintf("%s:%s", start, end)
}
