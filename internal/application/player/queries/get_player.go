package queries

import (
	"context"
	"fmt"

	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

// GetPlayerQuery fetches the caller's profile and resource counters
type GetPlayerQuery struct {
	PlayerID shared.PlayerID
}

// GetPlayerResult is the player profile projection
type GetPlayerResult struct {
	PlayerID       int
	Nickname       string
	CommanderLevel int
	Resources      player.Resources
	InstantBuild   int
}

// GetPlayerHandler serves the profile read
type GetPlayerHandler struct {
	players player.Repository
}

// NewGetPlayerHandler creates a get player handler
func NewGetPlayerHandler(players player.Repository) *GetPlayerHandler {
	return &GetPlayerHandler{players: players}
}

// Handle executes the get player query
func (h *GetPlayerHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetPlayerQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	p, err := h.players.FindByID(ctx, query.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetPlayerResult{
		PlayerID:       p.ID.Value(),
		Nickname:       p.Nickname,
		CommanderLevel: p.CommanderLevel,
		Resources:      p.Resources,
		InstantBuild:   p.InstantBuild,
	}, nil
}
