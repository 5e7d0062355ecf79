package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/persistence"
	"github.com/daehan-dev/fleetworks-go/internal/application/factory/queries"
	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/test/helpers"
)

func TestListDocks_FreshPlayer(t *testing.T) {
	db := helpers.NewSeededTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "tester")
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	handler := queries.NewListDocksHandler(
		persistence.NewGormDockRepository(db),
		persistence.NewGormTemplateRepository(db),
		clock,
	)

	res, err := handler.Handle(context.Background(), &queries.ListDocksQuery{PlayerID: p.ID})

	require.NoError(t, err)
	result := res.(*queries.ListDocksResult)
	require.Len(t, result.Docks, factory.DockCount)
	for i, d := range result.Docks {
		assert.Equal(t, i+1, d.DockNumber)
		assert.Equal(t, factory.DockStatusEmpty, d.Status)
		assert.Nil(t, d.TemplateID)
		assert.Equal(t, int64(0), d.RemainingMillis)
	}
	assert.Equal(t, 5, result.Docks[2].UnlockLevel)
	assert.Equal(t, 20, result.Docks[3].UnlockLevel)
}

func TestListDocks_BuildingAndCompleteProjection(t *testing.T) {
	db := helpers.NewSeededTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "tester")
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	dockRepo := persistence.NewGormDockRepository(db)
	dock, err := dockRepo.FindByPlayerAndNumber(context.Background(), p.ID, 2)
	require.NoError(t, err)
	require.NoError(t, dock.StartBuild(1, clock.Now().Add(20*time.Minute)))
	require.NoError(t, dockRepo.Save(context.Background(), dock))

	handler := queries.NewListDocksHandler(dockRepo, persistence.NewGormTemplateRepository(db), clock)

	res, err := handler.Handle(context.Background(), &queries.ListDocksQuery{PlayerID: p.ID})
	require.NoError(t, err)
	view := res.(*queries.ListDocksResult).Docks[1]

	assert.Equal(t, factory.DockStatusBuilding, view.Status)
	assert.Equal(t, "Haemil", view.ShipName)
	assert.Equal(t, (20 * time.Minute).Milliseconds(), view.RemainingMillis)

	// The same stored row reads as complete once the clock passes maturity
	clock.Advance(21 * time.Minute)
	res, err = handler.Handle(context.Background(), &queries.ListDocksQuery{PlayerID: p.ID})
	require.NoError(t, err)
	view = res.(*queries.ListDocksResult).Docks[1]

	assert.Equal(t, factory.DockStatusComplete, view.Status)
	assert.Equal(t, int64(0), view.RemainingMillis)
}

func TestListDocks_UnknownPlayer(t *testing.T) {
	db := helpers.NewSeededTestDB(t)
	clock := shared.NewMockClock(time.Time{})

	handler := queries.NewListDocksHandler(
		persistence.NewGormDockRepository(db),
		persistence.NewGormTemplateRepository(db),
		clock,
	)

	_, err := handler.Handle(context.Background(), &queries.ListDocksQuery{PlayerID: shared.MustNewPlayerID(999)})

	var notFound *shared.PlayerNotFoundError
	require.ErrorAs(t, err, &notFound)
}
