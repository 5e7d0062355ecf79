package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
)

// ListDocksQuery returns all four docks with their derived status
type ListDocksQuery struct {
	PlayerID shared.PlayerID
}

// DockView is one dock projected for display
type DockView struct {
	DockNumber      int
	Status          factory.DockStatus
	TemplateID      *int
	ShipName        string
	CompletionTime  *time.Time
	RemainingMillis int64
	UnlockLevel     int
}

// ListDocksResult holds the projected docks in dock order
type ListDocksResult struct {
	Docks []DockView
}

// ListDocksHandler reads dock state outside any transaction; maturity is
// computed against the injected clock at read time.
type ListDocksHandler struct {
	docks     factory.DockRepository
	templates ship.TemplateRepository
	clock     shared.Clock
}

// NewListDocksHandler creates a list docks handler
func NewListDocksHandler(docks factory.DockRepository, templates ship.TemplateRepository, clock shared.Clock) *ListDocksHandler {
	return &ListDocksHandler{docks: docks, templates: templates, clock: clock}
}

// Handle executes the list docks query
func (h *ListDocksHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListDocksQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	docks, err := h.docks.ListByPlayer(ctx, query.PlayerID)
	if err != nil {
		return nil, err
	}
	if len(docks) == 0 {
		return nil, shared.NewPlayerNotFoundError(query.PlayerID.Value())
	}

	now := h.clock.Now()
	views := make([]DockView, 0, len(docks))
	for _, d := range docks {
		view := DockView{
			DockNumber:     d.Number,
			Status:         d.Status(now),
			TemplateID:     d.TemplateID,
			CompletionTime: d.CompletionTime,
			UnlockLevel:    factory.UnlockLevel(d.Number),
		}
		if !d.IsEmpty() {
			view.RemainingMillis = d.Remaining(now).Milliseconds()
			if tpl, err := h.templates.FindByID(ctx, *d.TemplateID); err == nil {
				view.ShipName = tpl.Name
			}
		}
		views = append(views, view)
	}

	return &ListDocksResult{Docks: views}, nil
}
