package common

import (
	"context"

	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/internal/domain/fleet"
	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
	"github.com/daehan-dev/fleetworks-go/internal/domain/sortie"
)

// TxRepos is the set of transaction-scoped repositories available inside a
// unit of work. Everything read or written through it participates in the
// same database transaction.
type TxRepos interface {
	Players() player.Repository
	Docks() factory.DockRepository
	Ships() ship.Repository
	Templates() ship.TemplateRepository
	Fleets() fleet.Repository
	SortieLogs() sortie.LogRepository
}

// UnitOfWork serializes mutating operations per player. WithinPlayer runs fn
// inside a single transaction that holds an exclusive lock on the player row
// for its whole duration, so concurrent requests for the same player cannot
// interleave their read-check-write sequences. Any error from fn rolls the
// transaction back in full. A missing player surfaces as PlayerNotFoundError
// before fn runs.
type UnitOfWork interface {
	WithinPlayer(ctx context.Context, playerID shared.PlayerID, fn func(ctx context.Context, repos TxRepos) error) error
}
