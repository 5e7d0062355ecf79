package commands

import (
	"context"
	"fmt"

	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/fleet"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// UpdateFleetCommand replaces the six slots of one fleet. Every non-nil ship
// id must reference a ship owned by the player.
type UpdateFleetCommand struct {
	PlayerID shared.PlayerID
	FleetNo  int
	ShipIDs  [fleet.SlotCount]*int
}

// UpdateFleetResult returns the updated fleet
type UpdateFleetResult struct {
	Fleet *fleet.Fleet
}

// UpdateFleetHandler validates ship ownership and writes the assignment in
// one player-serialized transaction.
type UpdateFleetHandler struct {
	uow common.UnitOfWork
}

// NewUpdateFleetHandler creates an update fleet handler
func NewUpdateFleetHandler(uow common.UnitOfWork) *UpdateFleetHandler {
	return &UpdateFleetHandler{uow: uow}
}

// Handle executes the update fleet command
func (h *UpdateFleetHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdateFleetCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if !fleet.ValidFleetNo(cmd.FleetNo) {
		return nil, shared.NewValidationError("fleet_no", "fleet number must be between 1 and 4")
	}

	var result *UpdateFleetResult
	err := h.uow.WithinPlayer(ctx, cmd.PlayerID, func(ctx context.Context, repos common.TxRepos) error {
		requested := make([]int, 0, fleet.SlotCount)
		seen := make(map[int]bool, fleet.SlotCount)
		for _, id := range cmd.ShipIDs {
			if id == nil {
				continue
			}
			if seen[*id] {
				return shared.NewValidationError("ships", "a ship cannot occupy two fleet slots")
			}
			seen[*id] = true
			requested = append(requested, *id)
		}

		if len(requested) > 0 {
			owned, err := repos.Ships().ListByIDs(ctx, cmd.PlayerID, requested)
			if err != nil {
				return err
			}
			if len(owned) != len(requested) {
				return shared.NewValidationError("ships", "fleet contains a ship not owned by the player")
			}
		}

		f, err := repos.Fleets().FindByPlayerAndNo(ctx, cmd.PlayerID, cmd.FleetNo)
		if err != nil {
			return err
		}
		f.ShipIDs = cmd.ShipIDs
		if err := repos.Fleets().Save(ctx, f); err != nil {
			return err
		}

		result = &UpdateFleetResult{Fleet: f}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
