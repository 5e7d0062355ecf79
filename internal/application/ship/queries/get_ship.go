package queries

import (
	"context"
	"fmt"

	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
)

// GetShipQuery fetches one owned ship with fully computed stats
type GetShipQuery struct {
	PlayerID shared.PlayerID
	ShipID   int
}

// GetShipResult combines the instance, its master data, equipped items and
// the derived final stats.
type GetShipResult struct {
	Instance   *ship.Ship
	Master     *ship.Template
	Equipped   []ship.EquippedItem
	FinalStats ship.FinalStats
}

// GetShipHandler serves the ship detail read
type GetShipHandler struct {
	ships     ship.Repository
	templates ship.TemplateRepository
	equipment ship.EquipmentRepository
}

// NewGetShipHandler creates a get ship handler
func NewGetShipHandler(ships ship.Repository, templates ship.TemplateRepository, equipment ship.EquipmentRepository) *GetShipHandler {
	return &GetShipHandler{ships: ships, templates: templates, equipment: equipment}
}

// Handle executes the get ship query
func (h *GetShipHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetShipQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	instance, err := h.ships.FindByIDAndPlayer(ctx, query.ShipID, query.PlayerID)
	if err != nil {
		return nil, err
	}

	master, err := h.templates.FindByID(ctx, instance.TemplateID)
	if err != nil {
		return nil, err
	}

	var equipped []ship.EquippedItem
	if ids := instance.EquippedSlotIDs(); len(ids) > 0 {
		equipped, err = h.equipment.FindEquipped(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	return &GetShipResult{
		Instance:   instance,
		Master:     master,
		Equipped:   equipped,
		FinalStats: ship.ComputeFinalStats(*master, instance, equipped),
	}, nil
}
