package commands

import (
	"context"
	"fmt"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/metrics"
	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// SkipBuildCommand forces a build into immediate maturity, either for free
// (only inside the final-minute window) or by spending one instant
// construction material.
type SkipBuildCommand struct {
	PlayerID   shared.PlayerID
	DockNumber int
	UseItem    bool
}

// SkipBuildResult reports the skip outcome
type SkipBuildResult struct {
	DockNumber   int
	ItemConsumed bool
}

// SkipBuildHandler applies the skip atomically with the consumable decrement
type SkipBuildHandler struct {
	uow   common.UnitOfWork
	clock shared.Clock
}

// NewSkipBuildHandler creates a skip build handler
func NewSkipBuildHandler(uow common.UnitOfWork, clock shared.Clock) *SkipBuildHandler {
	return &SkipBuildHandler{uow: uow, clock: clock}
}

// Handle executes the skip build command
func (h *SkipBuildHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SkipBuildCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !factory.ValidDockNumber(cmd.DockNumber) {
		return nil, shared.NewInvalidDockNumberError(cmd.DockNumber)
	}

	var result *SkipBuildResult
	err := h.uow.WithinPlayer(ctx, cmd.PlayerID, func(ctx context.Context, repos common.TxRepos) error {
		dock, err := repos.Docks().FindByPlayerAndNumber(ctx, cmd.PlayerID, cmd.DockNumber)
		if err != nil {
			return err
		}
		if dock.IsEmpty() {
			return shared.NewDockEmptyError(cmd.DockNumber)
		}

		now := h.clock.Now()

		// Maturity is a derived fact, so skipping an already-finished build
		// succeeds without touching anything (and never burns an item).
		if dock.Status(now) == factory.DockStatusComplete {
			result = &SkipBuildResult{DockNumber: cmd.DockNumber}
			return nil
		}

		if cmd.UseItem {
			p, err := repos.Players().FindByID(ctx, cmd.PlayerID)
			if err != nil {
				return err
			}
			if err := p.ConsumeInstantBuild(); err != nil {
				return err
			}
			if err := repos.Players().Save(ctx, p); err != nil {
				return err
			}
		}

		if err := dock.Skip(now, !cmd.UseItem); err != nil {
			return err
		}
		if err := repos.Docks().Save(ctx, dock); err != nil {
			return err
		}

		result = &SkipBuildResult{DockNumber: cmd.DockNumber, ItemConsumed: cmd.UseItem}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("INFO", "construction skipped", map[string]interface{}{
		"player_id":     cmd.PlayerID.Value(),
		"dock_number":   cmd.DockNumber,
		"item_consumed": result.ItemConsumed,
	})
	metrics.RecordBuildSkipped(cmd.PlayerID.Value(), result.ItemConsumed)

	return result, nil
}
