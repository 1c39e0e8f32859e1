package parser

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects a table-like region in a sheet's cell grid when the
// workbook declares none. Merged ranges count as filled and widen the
// bounds. Returns nil when the data is too sparse.
func DetectTables(rows [][]string, merges []Area, params TableDetectionParams) []Area {
	if len(rows) == 0 && len(merges) == 0 {
		return nil
	}

	// Find the bounding box of non-empty cells
	bounds, ok := findDataBounds(rows)
	for _, m := range merges {
		if !ok {
			bounds, ok = m, true
			continue
		}
		bounds = Area{
			R1: min(bounds.R1, m.R1),
			C1: min(bounds.C1, m.C1),
			R2: max(bounds.R2, m.R2),
			C2: max(bounds.C2, m.C2),
		}
	}
	if !ok {
		return nil
	}

	// Calculate density
	totalCells := (bounds.R2 - bounds.R1 + 1) * (bounds.C2 - bounds.C1 + 1)
	nonEmptyCells := countNonEmptyCells(rows, bounds)
	for _, m := range merges {
		nonEmptyCells += (m.R2 - m.R1 + 1) * (m.C2 - m.C1 + 1)
	}

	if nonEmptyCells < params.MinNonemptyCells {
		return nil
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil
	}

	return []Area{bounds}
}

// findDataBounds finds the 1-based bounding box of non-empty cells.
func findDataBounds(rows [][]string) (Area, bool) {
	var a Area
	found := false

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			r, c := rowIdx+1, colIdx+1
			if !found {
				a = Area{R1: r, C1: c, R2: r, C2: c}
				found = true
				continue
			}
			a.R1 = min(a.R1, r)
			a.R2 = max(a.R2, r)
			a.C1 = min(a.C1, c)
			a.C2 = max(a.C2, c)
		}
	}

	return a, found
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, bounds Area) int {
	count := 0
	for r := bounds.R1; r <= bounds.R2; r++ {
		for c := bounds.C1; c <= bounds.C2; c++ {
			if cellAt(rows, r-1, c-1) != "" {
				count++
			}
		}
	}
	return count
}
