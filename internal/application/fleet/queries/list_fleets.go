package queries

import (
	"context"
	"fmt"

	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/fleet"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
)

// ListFleetsQuery returns the player's four fleets with ship summaries
type ListFleetsQuery struct {
	PlayerID shared.PlayerID
}

// FleetShipView is the per-slot ship summary
type FleetShipView struct {
	ShipID     int
	TemplateID int
	Name       string
	Level      int
	CurrentHP  int
}

// FleetView is one fleet with resolved slots; empty slots are nil
type FleetView struct {
	FleetNo int
	Name    string
	Slots   [fleet.SlotCount]*FleetShipView
}

// ListFleetsResult holds the fleets in fleet order
type ListFleetsResult struct {
	Fleets []FleetView
}

// ListFleetsHandler resolves fleet slots against owned ships and templates
type ListFleetsHandler struct {
	fleets    fleet.Repository
	ships     ship.Repository
	templates ship.TemplateRepository
}

// NewListFleetsHandler creates a list fleets handler
func NewListFleetsHandler(fleets fleet.Repository, ships ship.Repository, templates ship.TemplateRepository) *ListFleetsHandler {
	return &ListFleetsHandler{fleets: fleets, ships: ships, templates: templates}
}

// Handle executes the list fleets query
func (h *ListFleetsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListFleetsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	fleets, err := h.fleets.ListByPlayer(ctx, query.PlayerID)
	if err != nil {
		return nil, err
	}

	templates, err := h.templates.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	templatesByID := make(map[int]ship.Template, len(templates))
	for _, tpl := range templates {
		templatesByID[tpl.ID] = tpl
	}

	views := make([]FleetView, 0, len(fleets))
	for _, f := range fleets {
		view := FleetView{FleetNo: f.FleetNo, Name: f.Name}

		assigned := f.AssignedShipIDs()
		if len(assigned) > 0 {
			ships, err := h.ships.ListByIDs(ctx, query.PlayerID, assigned)
			if err != nil {
				return nil, err
			}
			shipsByID := make(map[int]*ship.Ship, len(ships))
			for _, s := range ships {
				shipsByID[s.ID] = s
			}

			for slot, id := range f.ShipIDs {
				if id == nil {
					continue
				}
				s, ok := shipsByID[*id]
				if !ok {
					continue
				}
				shipView := &FleetShipView{
					ShipID:     s.ID,
					TemplateID: s.TemplateID,
					Level:      s.Level,
					CurrentHP:  s.CurrentHP,
				}
				if tpl, ok := templatesByID[s.TemplateID]; ok {
					shipView.Name = tpl.Name
				}
				view.Slots[slot] = shipView
			}
		}

		views = append(views, view)
	}

	return &ListFleetsResult{Fleets: views}, nil
}
