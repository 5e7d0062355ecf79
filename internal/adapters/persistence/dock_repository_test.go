package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/persistence"
	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/test/helpers"
)

func TestDockRepository_CreateForPlayer(t *testing.T) {
	db := helpers.NewTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "tester")
	repo := persistence.NewGormDockRepository(db)

	docks, err := repo.ListByPlayer(context.Background(), p.ID)

	require.NoError(t, err)
	require.Len(t, docks, factory.DockCount)
	for i, d := range docks {
		assert.Equal(t, i+1, d.Number)
		assert.True(t, d.IsEmpty())
	}
}

func TestDockRepository_SaveRoundTrip(t *testing.T) {
	db := helpers.NewTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "tester")
	repo := persistence.NewGormDockRepository(db)

	dock, err := repo.FindByPlayerAndNumber(context.Background(), p.ID, 3)
	require.NoError(t, err)

	completes := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, dock.StartBuild(5, completes))
	require.NoError(t, repo.Save(context.Background(), dock))

	found, err := repo.FindByPlayerAndNumber(context.Background(), p.ID, 3)
	require.NoError(t, err)
	require.NotNil(t, found.TemplateID)
	assert.Equal(t, 5, *found.TemplateID)
	require.NotNil(t, found.CompletionTime)
	assert.True(t, found.CompletionTime.Equal(completes))

	// Clearing the build persists the nils
	_, err = found.Collect(completes.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), found))

	cleared, err := repo.FindByPlayerAndNumber(context.Background(), p.ID, 3)
	require.NoError(t, err)
	assert.True(t, cleared.IsEmpty())
}

func TestDockRepository_CountOccupied(t *testing.T) {
	db := helpers.NewTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "tester")
	repo := persistence.NewGormDockRepository(db)

	count, err := repo.CountOccupied(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	dock, err := repo.FindByPlayerAndNumber(context.Background(), p.ID, 1)
	require.NoError(t, err)
	require.NoError(t, dock.StartBuild(1, time.Now().UTC().Add(time.Minute)))
	require.NoError(t, repo.Save(context.Background(), dock))

	count, err = repo.CountOccupied(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDockRepository_IsolatedPerPlayer(t *testing.T) {
	db := helpers.NewTestDB(t)
	a := helpers.ProvisionTestPlayer(t, db, "alpha")
	b := helpers.ProvisionTestPlayer(t, db, "bravo")
	repo := persistence.NewGormDockRepository(db)

	dock, err := repo.FindByPlayerAndNumber(context.Background(), a.ID, 1)
	require.NoError(t, err)
	require.NoError(t, dock.StartBuild(1, time.Now().UTC().Add(time.Minute)))
	require.NoError(t, repo.Save(context.Background(), dock))

	count, err := repo.CountOccupied(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
