// Package models defines the serialisable snapshot of synchronised tables.
package models

// Document is the snapshot of every table loaded from one source file.
type Document struct {
	// Source is the input file name (no path).
	Source string `json:"source"`
	// Tables contains one entry per imported table, in source order.
	Tables []Table `json:"tables"`
}
