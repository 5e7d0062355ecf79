package ship

import (
	"context"

	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// Repository defines ship instance persistence operations
type Repository interface {
	CountByPlayer(ctx context.Context, playerID shared.PlayerID) (int, error)
	FindByIDAndPlayer(ctx context.Context, shipID int, playerID shared.PlayerID) (*Ship, error)
	ListByIDs(ctx context.Context, playerID shared.PlayerID, shipIDs []int) ([]*Ship, error)
	// Add persists a new ship and fills in its generated id
	Add(ctx context.Context, s *Ship) error
}

// TemplateRepository provides read-only access to the ship_master catalog
type TemplateRepository interface {
	ListAll(ctx context.Context) ([]Template, error)
	FindByID(ctx context.Context, templateID int) (*Template, error)
}

// EquipmentRepository resolves equipped items from ship slot references
type EquipmentRepository interface {
	FindEquipped(ctx context.Context, equipmentIDs []int) ([]EquippedItem, error)
}
