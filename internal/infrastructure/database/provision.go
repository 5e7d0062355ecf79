package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/persistence"
	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
)

// StartingResources is the grant issued to a freshly provisioned player,
// enough for the whole tutorial chain.
var StartingResources = player.Resources{Fuel: 500, Ammo: 500, Steel: 500, Bauxite: 500}

// ProvisionPlayer creates a player with starting resources plus the four
// empty docks and four empty fleets every account owns. Identity mapping
// (OAuth account to player) happens upstream; this only builds the game-side
// rows.
func ProvisionPlayer(ctx context.Context, db *gorm.DB, nickname string) (*player.Player, error) {
	p := &player.Player{
		Nickname:       nickname,
		CommanderLevel: 1,
		Resources:      StartingResources,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		players := persistence.NewGormPlayerRepository(tx)
		if err := players.Create(ctx, p); err != nil {
			return err
		}
		if err := persistence.NewGormDockRepository(tx).CreateForPlayer(ctx, p.ID); err != nil {
			return err
		}
		return persistence.NewGormFleetRepository(tx).CreateForPlayer(ctx, p.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to provision player: %w", err)
	}
	return p, nil
}
