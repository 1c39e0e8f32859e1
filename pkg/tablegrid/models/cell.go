package models

// Cell is a cell placed at its grid anchor.
type Cell struct {
	// C is the anchor grid column (0-based).
	C int `json:"c"`
	// Kind is "header" or "plain".
	Kind string `json:"kind"`
	// RowSpan is the number of covered grid rows (omitted when 1).
	RowSpan int `json:"rowspan,omitempty"`
	// ColSpan is the number of covered grid columns (omitted when 1).
	ColSpan int `json:"colspan,omitempty"`
	// Value is the cell content: int64, float64 or string.
	Value interface{} `json:"value"`
}
