package ship

import "github.com/daehan-dev/fleetworks-go/internal/domain/shared"

// EquipmentMaster is the immutable equipment reference data. Only the four
// stats that feed final-stat computation are modeled.
type EquipmentMaster struct {
	ID        int
	Name      string
	Firepower int
	Torpedo   int
	AA        int
	Armor     int
}

// PlayerEquipment is an owned equipment instance referenced by a ship slot
type PlayerEquipment struct {
	ID       int
	PlayerID shared.PlayerID
	MasterID int
}

// EquippedItem pairs an owned equipment instance with its master data
type EquippedItem struct {
	Instance PlayerEquipment
	Master   EquipmentMaster
}
