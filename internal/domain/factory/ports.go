package factory

import (
	"context"

	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// DockRepository defines dock persistence operations. Within a unit of work
// the dock rows are guarded by the player row lock.
type DockRepository interface {
	ListByPlayer(ctx context.Context, playerID shared.PlayerID) ([]*Dock, error)
	FindByPlayerAndNumber(ctx context.Context, playerID shared.PlayerID, dockNumber int) (*Dock, error)
	// CountOccupied returns how many of the player's docks hold a build,
	// matured or not. Used by the tutorial single-build rule.
	CountOccupied(ctx context.Context, playerID shared.PlayerID) (int, error)
	Save(ctx context.Context, d *Dock) error
	// CreateForPlayer provisions the four empty docks at player creation
	CreateForPlayer(ctx context.Context, playerID shared.PlayerID) error
}
