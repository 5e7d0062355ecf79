package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
)

// GormEquipmentRepository implements ship.EquipmentRepository using GORM
type GormEquipmentRepository struct {
	db *gorm.DB
}

// NewGormEquipmentRepository creates a new GORM equipment repository
func NewGormEquipmentRepository(db *gorm.DB) *GormEquipmentRepository {
	return &GormEquipmentRepository{db: db}
}

// FindEquipped resolves owned equipment instances and their master data for
// the given player_equipment ids. Unknown ids are dropped silently: a stale
// slot reference should not break the whole ship read.
func (r *GormEquipmentRepository) FindEquipped(ctx context.Context, equipmentIDs []int) ([]ship.EquippedItem, error) {
	if len(equipmentIDs) == 0 {
		return nil, nil
	}

	var instances []PlayerEquipmentModel
	result := r.db.WithContext(ctx).Where("id IN ?", equipmentIDs).Find(&instances)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find player equipment: %w", result.Error)
	}
	if len(instances) == 0 {
		return nil, nil
	}

	masterIDs := make([]int, 0, len(instances))
	for _, inst := range instances {
		masterIDs = append(masterIDs, inst.EquipmentMasterID)
	}

	var masters []EquipmentMasterModel
	result = r.db.WithContext(ctx).Where("id IN ?", masterIDs).Find(&masters)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find equipment masters: %w", result.Error)
	}
	mastersByID := make(map[int]EquipmentMasterModel, len(masters))
	for _, m := range masters {
		mastersByID[m.ID] = m
	}

	items := make([]ship.EquippedItem, 0, len(instances))
	for _, inst := range instances {
		master, ok := mastersByID[inst.EquipmentMasterID]
		if !ok {
			continue
		}
		items = append(items, ship.EquippedItem{
			Instance: ship.PlayerEquipment{
				ID:       inst.ID,
				PlayerID: shared.MustNewPlayerID(inst.PlayerID),
				MasterID: inst.EquipmentMasterID,
			},
			Master: ship.EquipmentMaster{
				ID:        master.ID,
				Name:      master.Name,
				Firepower: master.Firepower,
				Torpedo:   master.Torpedo,
				AA:        master.AA,
				Armor:     master.Armor,
			},
		})
	}
	return items, nil
}
