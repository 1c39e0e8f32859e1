package output

import (
	"encoding/json"

	"github.com/ukaji3/gridsync/pkg/tablegrid/models"
)

// ToJSON serializes a snapshot document to JSON.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// TableToJSON serializes a single table snapshot to JSON.
func TableToJSON(t *models.Table, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(t, "", "  ")
	}
	return json.Marshal(t)
}
