package fleet

import (
	"context"

	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// Repository defines fleet persistence operations
type Repository interface {
	ListByPlayer(ctx context.Context, playerID shared.PlayerID) ([]*Fleet, error)
	FindByPlayerAndNo(ctx context.Context, playerID shared.PlayerID, fleetNo int) (*Fleet, error)
	Save(ctx context.Context, f *Fleet) error
}
