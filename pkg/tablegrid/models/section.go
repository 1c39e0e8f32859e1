package models

// Section groups consecutive grid rows.
type Section struct {
	// Kind is "header" or "body".
	Kind string `json:"kind"`
	// Rows contains the rows of the section in grid order.
	Rows []Row `json:"rows"`
}
