package models

// Row is one grid row with the cells anchored in it.
type Row struct {
	// R is the grid row index (0-based).
	R int `json:"r"`
	// Cells contains the anchored cells in source order.
	Cells []Cell `json:"cells"`
}
