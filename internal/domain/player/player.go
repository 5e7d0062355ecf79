package player

import (
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// Resources is a value object holding the four fungible resource counters
type Resources struct {
	Fuel    int
	Ammo    int
	Steel   int
	Bauxite int
}

// CanAfford reports whether every counter independently covers the cost
func (r Resources) CanAfford(cost Resources) bool {
	return r.Fuel >= cost.Fuel &&
		r.Ammo >= cost.Ammo &&
		r.Steel >= cost.Steel &&
		r.Bauxite >= cost.Bauxite
}

// Sub returns the counters with cost removed
func (r Resources) Sub(cost Resources) Resources {
	return Resources{
		Fuel:    r.Fuel - cost.Fuel,
		Ammo:    r.Ammo - cost.Ammo,
		Steel:   r.Steel - cost.Steel,
		Bauxite: r.Bauxite - cost.Bauxite,
	}
}

// Add returns the counters with amount credited
func (r Resources) Add(amount Resources) Resources {
	return Resources{
		Fuel:    r.Fuel + amount.Fuel,
		Ammo:    r.Ammo + amount.Ammo,
		Steel:   r.Steel + amount.Steel,
		Bauxite: r.Bauxite + amount.Bauxite,
	}
}

// Equals reports exact counter equality, used by tutorial recipe matching
func (r Resources) Equals(other Resources) bool {
	return r == other
}

// IsNonNegative reports whether no counter is below zero
func (r Resources) IsNonNegative() bool {
	return r.Fuel >= 0 && r.Ammo >= 0 && r.Steel >= 0 && r.Bauxite >= 0
}

// Player is the resource-owning aggregate. All mutations happen inside a
// player-scoped unit of work, so methods here only enforce local invariants.
type Player struct {
	ID             shared.PlayerID
	Nickname       string
	CommanderLevel int
	Resources      Resources
	InstantBuild   int
}

// Debit removes cost from the resource counters. All four counters are
// checked before any is decremented; on failure the counters are unchanged.
func (p *Player) Debit(cost Resources) error {
	if !cost.IsNonNegative() {
		return shared.NewValidationError("cost", "resource amounts must be non-negative")
	}
	if !p.Resources.CanAfford(cost) {
		return shared.NewInsufficientResourcesError()
	}
	p.Resources = p.Resources.Sub(cost)
	return nil
}

// Credit adds amount to the resource counters unconditionally
func (p *Player) Credit(amount Resources) {
	p.Resources = p.Resources.Add(amount)
}

// ConsumeInstantBuild spends one instant construction material
func (p *Player) ConsumeInstantBuild() error {
	if p.InstantBuild < 1 {
		return shared.NewInsufficientItemsError()
	}
	p.InstantBuild--
	return nil
}
