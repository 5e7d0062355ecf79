package ship

import (
	"time"

	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// Initial supply issued to a freshly constructed ship. Deliberately below
// template capacity so a new ship requires resupply before sortie.
const (
	InitialFuel = 10
	InitialAmmo = 10
)

// SlotCount is the number of equipment slots per ship
const SlotCount = 5

// Ship is a constructed ship instance owned by exactly one player
type Ship struct {
	ID         int
	PlayerID   shared.PlayerID
	TemplateID int
	Level      int
	Exp        int
	CurrentHP  int
	Fuel       int
	Ammo       int

	ModernizedFirepower int
	ModernizedTorpedo   int
	ModernizedAA        int
	ModernizedArmor     int

	// Slots hold player_equipment ids; nil means empty
	Slots [SlotCount]*int

	IsLocked    bool
	RepairUntil *time.Time
}

// NewFromTemplate creates the initial ship record issued by a completed
// construction: level 1, full base HP, starter supply.
func NewFromTemplate(playerID shared.PlayerID, tpl Template) *Ship {
	return &Ship{
		PlayerID:   playerID,
		TemplateID: tpl.ID,
		Level:      1,
		Exp:        0,
		CurrentHP:  tpl.HPBase,
		Fuel:       InitialFuel,
		Ammo:       InitialAmmo,
	}
}

// EquippedSlotIDs returns the non-empty slot ids in slot order
func (s *Ship) EquippedSlotIDs() []int {
	ids := make([]int, 0, SlotCount)
	for _, slot := range s.Slots {
		if slot != nil {
			ids = append(ids, *slot)
		}
	}
	return ids
}

// UnderRepair reports whether the ship is docked for repair at the given time
func (s *Ship) UnderRepair(now time.Time) bool {
	return s.RepairUntil != nil && s.RepairUntil.After(now)
}
