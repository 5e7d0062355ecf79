package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/domain/sortie"
)

// GormSortieLogRepository implements sortie.LogRepository using GORM
type GormSortieLogRepository struct {
	db *gorm.DB
}

// NewGormSortieLogRepository creates a new GORM sortie log repository
func NewGormSortieLogRepository(db *gorm.DB) *GormSortieLogRepository {
	return &GormSortieLogRepository{db: db}
}

// Add persists a sortie launch record
func (r *GormSortieLogRepository) Add(ctx context.Context, l *sortie.Log) error {
	model := &SortieLogModel{
		ID:        l.ID,
		PlayerID:  l.PlayerID.Value(),
		FleetNo:   l.FleetNo,
		MapID:     l.MapID,
		StartedAt: l.StartedAt,
	}
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return fmt.Errorf("failed to add sortie log: %w", result.Error)
	}
	return nil
}
