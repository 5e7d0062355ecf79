package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// GormDockRepository implements factory.DockRepository using GORM
type GormDockRepository struct {
	db *gorm.DB
}

// NewGormDockRepository creates a new GORM dock repository
func NewGormDockRepository(db *gorm.DB) *GormDockRepository {
	return &GormDockRepository{db: db}
}

// ListByPlayer retrieves the player's docks in dock order
func (r *GormDockRepository) ListByPlayer(ctx context.Context, playerID shared.PlayerID) ([]*factory.Dock, error) {
	var models []ConstructionDockModel
	result := r.db.WithContext(ctx).
		Where("player_id = ?", playerID.Value()).
		Order("dock_number ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list docks: %w", result.Error)
	}

	docks := make([]*factory.Dock, 0, len(models))
	for i := range models {
		docks = append(docks, modelToDock(&models[i]))
	}
	return docks, nil
}

// FindByPlayerAndNumber retrieves one dock
func (r *GormDockRepository) FindByPlayerAndNumber(ctx context.Context, playerID shared.PlayerID, dockNumber int) (*factory.Dock, error) {
	var model ConstructionDockModel
	result := r.db.WithContext(ctx).
		Where("player_id = ? AND dock_number = ?", playerID.Value(), dockNumber).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewPlayerNotFoundError(playerID.Value())
		}
		return nil, fmt.Errorf("failed to find dock: %w", result.Error)
	}
	return modelToDock(&model), nil
}

// CountOccupied counts docks holding a build, matured or not
func (r *GormDockRepository) CountOccupied(ctx context.Context, playerID shared.PlayerID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&ConstructionDockModel{}).
		Where("player_id = ? AND ship_master_id IS NOT NULL", playerID.Value()).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count occupied docks: %w", result.Error)
	}
	return int(count), nil
}

// Save persists the dock's occupancy state
func (r *GormDockRepository) Save(ctx context.Context, d *factory.Dock) error {
	updates := map[string]interface{}{
		"ship_master_id":  d.TemplateID,
		"completion_time": d.CompletionTime,
	}
	result := r.db.WithContext(ctx).
		Model(&ConstructionDockModel{}).
		Where("id = ?", d.ID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to save dock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("dock %d not found for update", d.ID)
	}
	return nil
}

// CreateForPlayer provisions the four empty docks at player creation
func (r *GormDockRepository) CreateForPlayer(ctx context.Context, playerID shared.PlayerID) error {
	models := make([]ConstructionDockModel, 0, factory.DockCount)
	for n := 1; n <= factory.DockCount; n++ {
		models = append(models, ConstructionDockModel{
			PlayerID:   playerID.Value(),
			DockNumber: n,
		})
	}
	if result := r.db.WithContext(ctx).Create(&models); result.Error != nil {
		return fmt.Errorf("failed to create docks: %w", result.Error)
	}
	return nil
}

func modelToDock(model *ConstructionDockModel) *factory.Dock {
	return &factory.Dock{
		ID:             model.ID,
		PlayerID:       shared.MustNewPlayerID(model.PlayerID),
		Number:         model.DockNumber,
		TemplateID:     model.ShipMasterID,
		CompletionTime: model.CompletionTime,
	}
}
