package models

// Table is the output tree of one table.
type Table struct {
	// Name identifies the table within its source (sheet/table name or html index).
	Name string `json:"name"`
	// Range is the worksheet range the table was read from (xlsx only).
	Range string `json:"range,omitempty"`
	// Rows is the number of grid rows.
	Rows int `json:"rows"`
	// Columns is the number of grid columns (W).
	Columns int `json:"columns"`
	// HeadingRows is the number of leading grid rows rendered as header.
	HeadingRows int `json:"heading_rows"`
	// HeadingColumns is the number of leading grid columns rendered as header.
	HeadingColumns int `json:"heading_columns"`
	// Sections contains the header section (if any) followed by the body section (if any).
	Sections []Section `json:"sections"`
}
