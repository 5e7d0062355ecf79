package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/metrics"
	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// BeginBuildCommand starts a construction on one of the player's docks
type BeginBuildCommand struct {
	PlayerID   shared.PlayerID
	DockNumber int
	Cost       player.Resources
}

// BeginBuildResult reports the scheduled build
type BeginBuildResult struct {
	DockNumber      int
	DurationMinutes int
	CompletionTime  time.Time
}

// BeginBuildHandler coordinates recipe resolution, resource debit and dock
// occupation in one player-serialized transaction.
type BeginBuildHandler struct {
	uow      common.UnitOfWork
	resolver *factory.Resolver
	clock    shared.Clock
}

// NewBeginBuildHandler creates a begin build handler
func NewBeginBuildHandler(uow common.UnitOfWork, resolver *factory.Resolver, clock shared.Clock) *BeginBuildHandler {
	return &BeginBuildHandler{uow: uow, resolver: resolver, clock: clock}
}

// Handle executes the begin build command
func (h *BeginBuildHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*BeginBuildCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !factory.ValidDockNumber(cmd.DockNumber) {
		return nil, shared.NewInvalidDockNumberError(cmd.DockNumber)
	}

	var result *BeginBuildResult
	err := h.uow.WithinPlayer(ctx, cmd.PlayerID, func(ctx context.Context, repos common.TxRepos) error {
		p, err := repos.Players().FindByID(ctx, cmd.PlayerID)
		if err != nil {
			return err
		}

		shipCount, err := repos.Ships().CountByPlayer(ctx, cmd.PlayerID)
		if err != nil {
			return err
		}

		// The tutorial allows a single concurrent build across all docks
		if shipCount < factory.TutorialBuildCount {
			occupied, err := repos.Docks().CountOccupied(ctx, cmd.PlayerID)
			if err != nil {
				return err
			}
			if occupied > 0 {
				return shared.NewDockBusyError()
			}
		}

		templates, err := repos.Templates().ListAll(ctx)
		if err != nil {
			return err
		}

		selection, err := h.resolver.Resolve(shipCount, cmd.Cost, templates)
		if err != nil {
			return err
		}

		dock, err := repos.Docks().FindByPlayerAndNumber(ctx, cmd.PlayerID, cmd.DockNumber)
		if err != nil {
			return err
		}
		if !dock.IsEmpty() {
			return shared.NewDockOccupiedError(cmd.DockNumber)
		}

		if err := p.Debit(cmd.Cost); err != nil {
			return err
		}

		completes := h.clock.Now().Add(time.Duration(selection.DurationMinutes) * time.Minute)
		if err := dock.StartBuild(selection.Template.ID, completes); err != nil {
			return err
		}

		if err := repos.Players().Save(ctx, p); err != nil {
			return err
		}
		if err := repos.Docks().Save(ctx, dock); err != nil {
			return err
		}

		result = &BeginBuildResult{
			DockNumber:      cmd.DockNumber,
			DurationMinutes: selection.DurationMinutes,
			CompletionTime:  completes,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("INFO", "construction started", map[string]interface{}{
		"player_id":        cmd.PlayerID.Value(),
		"dock_number":      cmd.DockNumber,
		"duration_minutes": result.DurationMinutes,
	})
	metrics.RecordBuildStarted(cmd.PlayerID.Value(), result.DurationMinutes)

	return result, nil
}
