package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/fleet"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
	"github.com/daehan-dev/fleetworks-go/internal/domain/sortie"
)

// StartSortieCommand launches a fleet against a map node after eligibility
// checks. Combat resolution happens elsewhere; this only validates and logs
// the launch.
type StartSortieCommand struct {
	PlayerID shared.PlayerID
	FleetNo  int
	MapID    int
}

// StartSortieResult carries the generated sortie run id
type StartSortieResult struct {
	SortieID string
}

// StartSortieHandler validates fleet readiness and records the sortie log
type StartSortieHandler struct {
	uow   common.UnitOfWork
	clock shared.Clock
}

// NewStartSortieHandler creates a start sortie handler
func NewStartSortieHandler(uow common.UnitOfWork, clock shared.Clock) *StartSortieHandler {
	return &StartSortieHandler{uow: uow, clock: clock}
}

// Handle executes the start sortie command
func (h *StartSortieHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StartSortieCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !fleet.ValidFleetNo(cmd.FleetNo) {
		return nil, shared.NewValidationError("fleet_no", "fleet number must be between 1 and 4")
	}
	if cmd.MapID <= 0 {
		return nil, shared.NewValidationError("map_id", "map id is required")
	}

	var result *StartSortieResult
	err := h.uow.WithinPlayer(ctx, cmd.PlayerID, func(ctx context.Context, repos common.TxRepos) error {
		f, err := repos.Fleets().FindByPlayerAndNo(ctx, cmd.PlayerID, cmd.FleetNo)
		if err != nil {
			return err
		}

		assigned := f.AssignedShipIDs()
		if len(assigned) == 0 {
			return shared.NewSortieNotReadyError("fleet has no ships assigned")
		}

		ships, err := repos.Ships().ListByIDs(ctx, cmd.PlayerID, assigned)
		if err != nil {
			return err
		}

		now := h.clock.Now()
		checks := make([]sortie.ReadyCheck, 0, len(ships))
		for _, s := range ships {
			tpl, err := repos.Templates().FindByID(ctx, s.TemplateID)
			if err != nil {
				return err
			}
			checks = append(checks, sortie.ReadyCheck{
				ShipID:      s.ID,
				CurrentHP:   s.CurrentHP,
				HPMax:       ship.StatForLevel(tpl.HPBase, tpl.HPMax, s.Level),
				Fuel:        s.Fuel,
				FuelMax:     tpl.FuelMax,
				Ammo:        s.Ammo,
				AmmoMax:     tpl.AmmoMax,
				UnderRepair: s.UnderRepair(now),
			})
		}

		if err := sortie.CheckEligibility(checks); err != nil {
			return err
		}

		log := &sortie.Log{
			ID:        uuid.NewString(),
			PlayerID:  cmd.PlayerID,
			FleetNo:   cmd.FleetNo,
			MapID:     cmd.MapID,
			StartedAt: now,
		}
		if err := repos.SortieLogs().Add(ctx, log); err != nil {
			return err
		}

		result = &StartSortieResult{SortieID: log.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("INFO", "sortie started", map[string]interface{}{
		"player_id": cmd.PlayerID.Value(),
		"fleet_no":  cmd.FleetNo,
		"map_id":    cmd.MapID,
		"sortie_id": result.SortieID,
	})

	return result, nil
}
