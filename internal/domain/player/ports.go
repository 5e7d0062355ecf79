package player

import (
	"context"

	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// Repository defines player persistence operations. Inside a unit of work the
// implementation is transaction-scoped and the player row is already locked.
type Repository interface {
	FindByID(ctx context.Context, playerID shared.PlayerID) (*Player, error)
	Save(ctx context.Context, p *Player) error
}
