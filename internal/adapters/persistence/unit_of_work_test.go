package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/persistence"
	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/test/helpers"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := helpers.NewTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "tester")
	uow := persistence.NewGormUnitOfWork(db)

	err := uow.WithinPlayer(context.Background(), p.ID, func(ctx context.Context, repos common.TxRepos) error {
		loaded, err := repos.Players().FindByID(ctx, p.ID)
		if err != nil {
			return err
		}
		if err := loaded.Debit(player.Resources{Fuel: 100}); err != nil {
			return err
		}
		return repos.Players().Save(ctx, loaded)
	})
	require.NoError(t, err)

	found, err := persistence.NewGormPlayerRepository(db).FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 400, found.Resources.Fuel)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := helpers.NewTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "tester")
	uow := persistence.NewGormUnitOfWork(db)

	boom := errors.New("boom")
	err := uow.WithinPlayer(context.Background(), p.ID, func(ctx context.Context, repos common.TxRepos) error {
		loaded, err := repos.Players().FindByID(ctx, p.ID)
		if err != nil {
			return err
		}
		if err := loaded.Debit(player.Resources{Fuel: 100}); err != nil {
			return err
		}
		if err := repos.Players().Save(ctx, loaded); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The saved debit never committed
	found, err := persistence.NewGormPlayerRepository(db).FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 500, found.Resources.Fuel)
}

func TestUnitOfWork_UnknownPlayer(t *testing.T) {
	db := helpers.NewTestDB(t)
	uow := persistence.NewGormUnitOfWork(db)

	err := uow.WithinPlayer(context.Background(), shared.MustNewPlayerID(42), func(ctx context.Context, repos common.TxRepos) error {
		t.Fatal("callback must not run for an unknown player")
		return nil
	})

	var notFound *shared.PlayerNotFoundError
	require.ErrorAs(t, err, &notFound)
}
