package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
)

// GormTemplateRepository implements ship.TemplateRepository using GORM
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GORM template repository
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// ListAll retrieves the full ship_master catalog in id order
func (r *GormTemplateRepository) ListAll(ctx context.Context) ([]ship.Template, error) {
	var models []ShipMasterModel
	result := r.db.WithContext(ctx).Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list ship templates: %w", result.Error)
	}

	templates := make([]ship.Template, 0, len(models))
	for i := range models {
		templates = append(templates, modelToTemplate(&models[i]))
	}
	return templates, nil
}

// FindByID retrieves one template. A missing id means a dock or ship row
// references reference data that was never seeded, which is a server-side
// integrity problem, not a client error.
func (r *GormTemplateRepository) FindByID(ctx context.Context, templateID int) (*ship.Template, error) {
	var model ShipMasterModel
	result := r.db.WithContext(ctx).Where("id = ?", templateID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ship master data not found for id %d", templateID)
		}
		return nil, fmt.Errorf("failed to find ship template: %w", result.Error)
	}
	tpl := modelToTemplate(&model)
	return &tpl, nil
}

func modelToTemplate(model *ShipMasterModel) ship.Template {
	return ship.Template{
		ID:               model.ID,
		Name:             model.ShipName,
		ShipType:         model.ShipType,
		HPBase:           model.HPBase,
		HPMax:            model.HPMax,
		FirepowerBase:    model.FirepowerBase,
		FirepowerMax:     model.FirepowerMax,
		TorpedoBase:      model.TorpedoBase,
		TorpedoMax:       model.TorpedoMax,
		AABase:           model.AABase,
		AAMax:            model.AAMax,
		ArmorBase:        model.ArmorBase,
		ArmorMax:         model.ArmorMax,
		FuelMax:          model.FuelMax,
		AmmoMax:          model.AmmoMax,
		BuildTimeMinutes: model.BuildTimeMinutes,
	}
}
