package sortie

import (
	"fmt"
	"time"

	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// HeavyDamageRatio is the HP fraction at or below which a ship may not sortie
const HeavyDamageRatio = 0.25

// Log records one sortie launch
type Log struct {
	ID        string
	PlayerID  shared.PlayerID
	FleetNo   int
	MapID     int
	StartedAt time.Time
}

// ReadyCheck is the per-ship snapshot evaluated for sortie eligibility
type ReadyCheck struct {
	ShipID      int
	CurrentHP   int
	HPMax       int
	Fuel        int
	FuelMax     int
	Ammo        int
	AmmoMax     int
	UnderRepair bool
}

// CheckEligibility validates the whole fleet: it must contain at least one
// ship, no ship may be heavily damaged or under repair, and every ship must
// be fully supplied. The first violation is reported.
func CheckEligibility(ships []ReadyCheck) error {
	if len(ships) == 0 {
		return shared.NewSortieNotReadyError("fleet has no ships assigned")
	}
	for _, s := range ships {
		if s.HPMax > 0 && float64(s.CurrentHP)/float64(s.HPMax) <= HeavyDamageRatio {
			return shared.NewSortieNotReadyError(fmt.Sprintf("ship %d is heavily damaged and cannot sortie", s.ShipID))
		}
		if s.UnderRepair {
			return shared.NewSortieNotReadyError(fmt.Sprintf("ship %d is under repair", s.ShipID))
		}
		if s.Fuel < s.FuelMax || s.Ammo < s.AmmoMax {
			return shared.NewSortieNotReadyError(fmt.Sprintf("ship %d needs resupply", s.ShipID))
		}
	}
	return nil
}
