package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/internal/domain/fleet"
	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
	"github.com/daehan-dev/fleetworks-go/internal/domain/sortie"
)

// GormUnitOfWork serializes mutating operations per player: each WithinPlayer
// call is one database transaction that first takes a SELECT ... FOR UPDATE
// lock on the player row. Two concurrent operations for the same player
// queue on that lock; operations for different players never contend.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a unit of work over the given connection
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// WithinPlayer runs fn inside a player-locked transaction. Any error from fn
// rolls back every write made through the transaction-scoped repositories.
func (u *GormUnitOfWork) WithinPlayer(ctx context.Context, playerID shared.PlayerID, fn func(ctx context.Context, repos common.TxRepos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked := tx
		// SQLite has no FOR UPDATE; it serializes writers on its own.
		if tx.Dialector.Name() != "sqlite" {
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var model PlayerModel
		if err := locked.Where("id = ?", playerID.Value()).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NewPlayerNotFoundError(playerID.Value())
			}
			return fmt.Errorf("failed to lock player row: %w", err)
		}

		return fn(ctx, &txRepos{tx: tx})
	})
}

// txRepos hands out repositories bound to the enclosing transaction
type txRepos struct {
	tx *gorm.DB
}

func (r *txRepos) Players() player.Repository         { return NewGormPlayerRepository(r.tx) }
func (r *txRepos) Docks() factory.DockRepository      { return NewGormDockRepository(r.tx) }
func (r *txRepos) Ships() ship.Repository             { return NewGormShipRepository(r.tx) }
func (r *txRepos) Templates() ship.TemplateRepository { return NewGormTemplateRepository(r.tx) }
func (r *txRepos) Fleets() fleet.Repository           { return NewGormFleetRepository(r.tx) }
func (r *txRepos) SortieLogs() sortie.LogRepository   { return NewGormSortieLogRepository(r.tx) }
