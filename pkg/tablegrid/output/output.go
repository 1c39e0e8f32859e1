// Package output serialises and renders synchronised table views.
package output

import (
	"github.com/ukaji3/gridsync/pkg/tablegrid/grid"
	"github.com/ukaji3/gridsync/pkg/tablegrid/model"
	"github.com/ukaji3/gridsync/pkg/tablegrid/view"
)

// Table is a synchronised view plus the name and range it was imported
// under.
type Table struct {
	Name  string
	Range string
	View  *view.TableView
}

// slotIndex maps every anchored cell of t to its grid slot.
func slotIndex(t *model.Table) map[*model.Cell]grid.Slot {
	all := grid.Slots(t)
	slots := make(map[*model.Cell]grid.Slot, len(all))
	for _, s := range all {
		slots[s.Cell] = s
	}
	return slots
}
