package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
)

// GormShipRepository implements ship.Repository using GORM
type GormShipRepository struct {
	db *gorm.DB
}

// NewGormShipRepository creates a new GORM ship repository
func NewGormShipRepository(db *gorm.DB) *GormShipRepository {
	return &GormShipRepository{db: db}
}

// CountByPlayer counts the player's ships; this drives tutorial phase detection
func (r *GormShipRepository) CountByPlayer(ctx context.Context, playerID shared.PlayerID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&ShipModel{}).
		Where("player_id = ?", playerID.Value()).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count ships: %w", result.Error)
	}
	return int(count), nil
}

// FindByIDAndPlayer retrieves one ship, enforcing ownership
func (r *GormShipRepository) FindByIDAndPlayer(ctx context.Context, shipID int, playerID shared.PlayerID) (*ship.Ship, error) {
	var model ShipModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND player_id = ?", shipID, playerID.Value()).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewShipNotFoundError(shipID)
		}
		return nil, fmt.Errorf("failed to find ship: %w", result.Error)
	}
	return modelToShip(&model), nil
}

// ListByIDs retrieves the subset of shipIDs owned by the player
func (r *GormShipRepository) ListByIDs(ctx context.Context, playerID shared.PlayerID, shipIDs []int) ([]*ship.Ship, error) {
	if len(shipIDs) == 0 {
		return nil, nil
	}
	var models []ShipModel
	result := r.db.WithContext(ctx).
		Where("id IN ? AND player_id = ?", shipIDs, playerID.Value()).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list ships: %w", result.Error)
	}

	ships := make([]*ship.Ship, 0, len(models))
	for i := range models {
		ships = append(ships, modelToShip(&models[i]))
	}
	return ships, nil
}

// Add persists a new ship and fills in its generated id
func (r *GormShipRepository) Add(ctx context.Context, s *ship.Ship) error {
	model := shipToModel(s)
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return fmt.Errorf("failed to add ship: %w", result.Error)
	}
	s.ID = model.ID
	return nil
}

func modelToShip(model *ShipModel) *ship.Ship {
	s := &ship.Ship{
		ID:         model.ID,
		PlayerID:   shared.MustNewPlayerID(model.PlayerID),
		TemplateID: model.MasterID,
		Level:      model.Level,
		Exp:        model.Exp,
		CurrentHP:  model.CurrentHP,
		Fuel:       model.Fuel,
		Ammo:       model.Ammo,

		ModernizedFirepower: model.ModernizedFirepower,
		ModernizedTorpedo:   model.ModernizedTorpedo,
		ModernizedAA:        model.ModernizedAA,
		ModernizedArmor:     model.ModernizedArmor,

		IsLocked:    model.IsLocked,
		RepairUntil: model.RepairUntil,
	}
	s.Slots = [ship.SlotCount]*int{model.Slot1, model.Slot2, model.Slot3, model.Slot4, model.Slot5}
	return s
}

func shipToModel(s *ship.Ship) *ShipModel {
	return &ShipModel{
		ID:        s.ID,
		PlayerID:  s.PlayerID.Value(),
		MasterID:  s.TemplateID,
		Level:     s.Level,
		Exp:       s.Exp,
		CurrentHP: s.CurrentHP,
		Fuel:      s.Fuel,
		Ammo:      s.Ammo,

		ModernizedFirepower: s.ModernizedFirepower,
		ModernizedTorpedo:   s.ModernizedTorpedo,
		ModernizedAA:        s.ModernizedAA,
		ModernizedArmor:     s.ModernizedArmor,

		Slot1: s.Slots[0],
		Slot2: s.Slots[1],
		Slot3: s.Slots[2],
		Slot4: s.Slots[3],
		Slot5: s.Slots[4],

		IsLocked:    s.IsLocked,
		RepairUntil: s.RepairUntil,
	}
}
