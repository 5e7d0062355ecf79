package commands

import (
	"context"
	"fmt"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/metrics"
	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
)

// CompleteBuildCommand collects a matured construction, issuing the ship
type CompleteBuildCommand struct {
	PlayerID   shared.PlayerID
	DockNumber int
}

// CompleteBuildResult describes the newly issued ship
type CompleteBuildResult struct {
	ShipID     int
	TemplateID int
	ShipName   string
}

// CompleteBuildHandler validates maturity, creates the ship record and
// resets the dock atomically. If ship creation fails the transaction rolls
// back and the dock stays matured so the player can retry.
type CompleteBuildHandler struct {
	uow   common.UnitOfWork
	clock shared.Clock
}

// NewCompleteBuildHandler creates a complete build handler
func NewCompleteBuildHandler(uow common.UnitOfWork, clock shared.Clock) *CompleteBuildHandler {
	return &CompleteBuildHandler{uow: uow, clock: clock}
}

// Handle executes the complete build command
func (h *CompleteBuildHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CompleteBuildCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !factory.ValidDockNumber(cmd.DockNumber) {
		return nil, shared.NewInvalidDockNumberError(cmd.DockNumber)
	}

	var result *CompleteBuildResult
	err := h.uow.WithinPlayer(ctx, cmd.PlayerID, func(ctx context.Context, repos common.TxRepos) error {
		dock, err := repos.Docks().FindByPlayerAndNumber(ctx, cmd.PlayerID, cmd.DockNumber)
		if err != nil {
			return err
		}

		templateID, err := dock.Collect(h.clock.Now())
		if err != nil {
			return err
		}

		tpl, err := repos.Templates().FindByID(ctx, templateID)
		if err != nil {
			return err
		}

		newShip := ship.NewFromTemplate(cmd.PlayerID, *tpl)
		if err := repos.Ships().Add(ctx, newShip); err != nil {
			return err
		}
		if err := repos.Docks().Save(ctx, dock); err != nil {
			return err
		}

		result = &CompleteBuildResult{
			ShipID:     newShip.ID,
			TemplateID: tpl.ID,
			ShipName:   tpl.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("INFO", "construction collected", map[string]interface{}{
		"player_id":   cmd.PlayerID.Value(),
		"dock_number": cmd.DockNumber,
		"ship_name":   result.ShipName,
	})
	metrics.RecordBuildCompleted(cmd.PlayerID.Value(), result.TemplateID)

	return result, nil
}
