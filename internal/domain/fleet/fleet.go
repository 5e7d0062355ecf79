package fleet

import "github.com/daehan-dev/fleetworks-go/internal/domain/shared"

// FleetCount is the number of fleets per player, SlotCount the ships per fleet
const (
	FleetCount = 4
	SlotCount  = 6
)

// ValidFleetNo reports whether n names one of the player's fleets
func ValidFleetNo(n int) bool {
	return n >= 1 && n <= FleetCount
}

// Fleet is an ordered assignment of up to six owned ships
type Fleet struct {
	PlayerID shared.PlayerID
	FleetNo  int
	Name     string
	// ShipIDs holds ship instance ids in slot order; nil means empty slot
	ShipIDs [SlotCount]*int
}

// AssignedShipIDs returns the non-empty slots in order
func (f *Fleet) AssignedShipIDs() []int {
	ids := make([]int, 0, SlotCount)
	for _, id := range f.ShipIDs {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}
