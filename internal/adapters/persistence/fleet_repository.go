package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/domain/fleet"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// GormFleetRepository implements fleet.Repository using GORM
type GormFleetRepository struct {
	db *gorm.DB
}

// NewGormFleetRepository creates a new GORM fleet repository
func NewGormFleetRepository(db *gorm.DB) *GormFleetRepository {
	return &GormFleetRepository{db: db}
}

// ListByPlayer retrieves the player's fleets in fleet order
func (r *GormFleetRepository) ListByPlayer(ctx context.Context, playerID shared.PlayerID) ([]*fleet.Fleet, error) {
	var models []PlayerFleetModel
	result := r.db.WithContext(ctx).
		Where("player_id = ?", playerID.Value()).
		Order("fleet_no ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list fleets: %w", result.Error)
	}

	fleets := make([]*fleet.Fleet, 0, len(models))
	for i := range models {
		fleets = append(fleets, modelToFleet(&models[i]))
	}
	return fleets, nil
}

// FindByPlayerAndNo retrieves one fleet
func (r *GormFleetRepository) FindByPlayerAndNo(ctx context.Context, playerID shared.PlayerID, fleetNo int) (*fleet.Fleet, error) {
	var model PlayerFleetModel
	result := r.db.WithContext(ctx).
		Where("player_id = ? AND fleet_no = ?", playerID.Value(), fleetNo).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewPlayerNotFoundError(playerID.Value())
		}
		return nil, fmt.Errorf("failed to find fleet: %w", result.Error)
	}
	return modelToFleet(&model), nil
}

// Save persists the fleet's slot assignment
func (r *GormFleetRepository) Save(ctx context.Context, f *fleet.Fleet) error {
	updates := map[string]interface{}{
		"name":   f.Name,
		"ship_1": f.ShipIDs[0],
		"ship_2": f.ShipIDs[1],
		"ship_3": f.ShipIDs[2],
		"ship_4": f.ShipIDs[3],
		"ship_5": f.ShipIDs[4],
		"ship_6": f.ShipIDs[5],
	}
	result := r.db.WithContext(ctx).
		Model(&PlayerFleetModel{}).
		Where("player_id = ? AND fleet_no = ?", f.PlayerID.Value(), f.FleetNo).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to save fleet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewPlayerNotFoundError(f.PlayerID.Value())
	}
	return nil
}

// CreateForPlayer provisions the four named fleets at player creation
func (r *GormFleetRepository) CreateForPlayer(ctx context.Context, playerID shared.PlayerID) error {
	models := make([]PlayerFleetModel, 0, fleet.FleetCount)
	for n := 1; n <= fleet.FleetCount; n++ {
		models = append(models, PlayerFleetModel{
			PlayerID: playerID.Value(),
			FleetNo:  n,
			Name:     fmt.Sprintf("Fleet %d", n),
		})
	}
	if result := r.db.WithContext(ctx).Create(&models); result.Error != nil {
		return fmt.Errorf("failed to create fleets: %w", result.Error)
	}
	return nil
}

func modelToFleet(model *PlayerFleetModel) *fleet.Fleet {
	f := &fleet.Fleet{
		PlayerID: shared.MustNewPlayerID(model.PlayerID),
		FleetNo:  model.FleetNo,
		Name:     model.Name,
	}
	f.ShipIDs = [fleet.SlotCount]*int{model.Ship1, model.Ship2, model.Ship3, model.Ship4, model.Ship5, model.Ship6}
	return f
}
