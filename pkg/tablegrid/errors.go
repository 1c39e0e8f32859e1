package tablegrid

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx or html
// document.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrNoTable indicates the input holds no table.
var ErrNoTable = errors.New("no table found")

// ErrTableIndex indicates a table index outside the session.
var ErrTableIndex = errors.New("table index out of range")

// ImportError represents an error while reading a source file.
type ImportError struct {
	Source    string
	Component string // "xlsx", "html"
	Err       error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import error in %q (%s): %v", e.Source, e.Component, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError.
func NewImportError(source, component string, err error) *ImportError {
	return &ImportError{
		Source:    source,
		Component: component,
		Err:       err,
	}
}
