package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// GormPlayerRepository implements player.Repository using GORM
type GormPlayerRepository struct {
	db *gorm.DB
}

// NewGormPlayerRepository creates a new GORM player repository
func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{db: db}
}

// FindByID retrieves a player by ID
func (r *GormPlayerRepository) FindByID(ctx context.Context, playerID shared.PlayerID) (*player.Player, error) {
	var model PlayerModel
	result := r.db.WithContext(ctx).Where("id = ?", playerID.Value()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewPlayerNotFoundError(playerID.Value())
		}
		return nil, fmt.Errorf("failed to find player: %w", result.Error)
	}

	return modelToPlayer(&model), nil
}

// Save persists the player's mutable state
func (r *GormPlayerRepository) Save(ctx context.Context, p *player.Player) error {
	updates := map[string]interface{}{
		"nickname":        p.Nickname,
		"commander_level": p.CommanderLevel,
		"fuel":            p.Resources.Fuel,
		"ammo":            p.Resources.Ammo,
		"steel":           p.Resources.Steel,
		"bauxite":         p.Resources.Bauxite,
		"instant_build":   p.InstantBuild,
	}
	result := r.db.WithContext(ctx).Model(&PlayerModel{}).Where("id = ?", p.ID.Value()).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to save player: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewPlayerNotFoundError(p.ID.Value())
	}
	return nil
}

// Create inserts a new player row and fills in the generated id
func (r *GormPlayerRepository) Create(ctx context.Context, p *player.Player) error {
	model := &PlayerModel{
		Nickname:       p.Nickname,
		CommanderLevel: p.CommanderLevel,
		Fuel:           p.Resources.Fuel,
		Ammo:           p.Resources.Ammo,
		Steel:          p.Resources.Steel,
		Bauxite:        p.Resources.Bauxite,
		InstantBuild:   p.InstantBuild,
	}
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return fmt.Errorf("failed to create player: %w", result.Error)
	}
	p.ID = shared.MustNewPlayerID(model.ID)
	return nil
}

func modelToPlayer(model *PlayerModel) *player.Player {
	return &player.Player{
		ID:             shared.MustNewPlayerID(model.ID),
		Nickname:       model.Nickname,
		CommanderLevel: model.CommanderLevel,
		Resources: player.Resources{
			Fuel:    model.Fuel,
			Ammo:    model.Ammo,
			Steel:   model.Steel,
			Bauxite: model.Bauxite,
		},
		InstantBuild: model.InstantBuild,
	}
}
