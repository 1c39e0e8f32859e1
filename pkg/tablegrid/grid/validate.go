package grid

import (
	"fmt"

	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
)

// Invariant names reported by InvariantError.
const (
	InvariantOverlap       = "no-overlap"
	InvariantRectangular   = "rectangularity"
	InvariantHeadingBounds = "heading-bounds"
)

// InvariantError describes the first grid invariant a table breaks. The
// grid mutators never produce one, so seeing it means a bug in a writer.
type InvariantError struct {
	Invariant string
	Row       int
	Column    int
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("table grid invariant %s broken at (%d, %d): %s", e.Invariant, e.Row, e.Column, e.Detail)
}

// Validate checks that no two cells overlap, that every grid row covers
// exactly [0, W) and that the heading bounds lie inside the grid.
func Validate(t *model.Table) error {
	rows := t.RowCount()
	width := Width(t)

	if hr := t.HeadingRows(); hr < 0 || hr > rows {
		return &InvariantError{InvariantHeadingBounds, hr, 0,
			fmt.Sprintf("headingRows %d outside [0, %d]", hr, rows)}
	}
	if hc := t.HeadingColumns(); hc < 0 || hc > width {
		return &InvariantError{InvariantHeadingBounds, 0, hc,
			fmt.Sprintf("headingColumns %d outside [0, %d]", hc, width)}
	}

	owner := make([][]*model.Cell, rows)
	for i := range owner {
		owner[i] = make([]*model.Cell, width)
	}
	for s := range Walk(t) {
		if s.EndRow() > rows {
			return &InvariantError{InvariantRectangular, s.Row, s.Column,
				fmt.Sprintf("%s spans past the last row", s.Cell)}
		}
		if s.EndColumn() > width {
			return &InvariantError{InvariantRectangular, s.Row, s.Column,
				fmt.Sprintf("%s spans past column %d", s.Cell, width)}
		}
		for r := s.Row; r < s.EndRow(); r++ {
			for c := s.Column; c < s.EndColumn(); c++ {
				if other := owner[r][c]; other != nil {
					return &InvariantError{InvariantOverlap, r, c,
						fmt.Sprintf("%s overlaps %s", s.Cell, other)}
				}
				owner[r][c] = s.Cell
			}
		}
	}
	for r, row := range owner {
		for c, cell := range row {
			if cell == nil {
				return &InvariantError{InvariantRectangular, r, c, "grid position not covered by any cell"}
			}
		}
	}
	return nil
}
