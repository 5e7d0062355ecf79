package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/persistence"
	fleetcommands "github.com/daehan-dev/fleetworks-go/internal/application/fleet/commands"
	"github.com/daehan-dev/fleetworks-go/internal/application/sortie/commands"
	"github.com/daehan-dev/fleetworks-go/internal/domain/fleet"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
	"github.com/daehan-dev/fleetworks-go/test/helpers"
)

type sortieFixture struct {
	db       *gorm.DB
	playerID shared.PlayerID
	clock    *shared.MockClock
	start    *commands.StartSortieHandler
}

func newSortieFixture(t *testing.T) *sortieFixture {
	db := helpers.NewSeededTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "admiral")
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return &sortieFixture{
		db:       db,
		playerID: p.ID,
		clock:    clock,
		start:    commands.NewStartSortieHandler(persistence.NewGormUnitOfWork(db), clock),
	}
}

// addShip inserts a fully supplied, healthy destroyer (template 1:
// HP base 16, fuel max 15, ammo max 20) mutated by mutate before insert.
func (f *sortieFixture) addShip(t *testing.T, mutate func(*ship.Ship)) *ship.Ship {
	s := &ship.Ship{
		PlayerID:   f.playerID,
		TemplateID: 1,
		Level:      1,
		CurrentHP:  16,
		Fuel:       15,
		Ammo:       20,
	}
	if mutate != nil {
		mutate(s)
	}
	require.NoError(t, persistence.NewGormShipRepository(f.db).Add(context.Background(), s))
	return s
}

func (f *sortieFixture) assignFleet(t *testing.T, fleetNo int, ships ...*ship.Ship) {
	handler := fleetcommands.NewUpdateFleetHandler(persistence.NewGormUnitOfWork(f.db))
	var shipIDs [fleet.SlotCount]*int
	for i, s := range ships {
		shipIDs[i] = &s.ID
	}
	_, err := handler.Handle(context.Background(), &fleetcommands.UpdateFleetCommand{
		PlayerID: f.playerID, FleetNo: fleetNo, ShipIDs: shipIDs,
	})
	require.NoError(t, err)
}

func TestStartSortie_ReadyFleet(t *testing.T) {
	f := newSortieFixture(t)
	f.assignFleet(t, 1, f.addShip(t, nil), f.addShip(t, nil))

	res, err := f.start.Handle(context.Background(), &commands.StartSortieCommand{
		PlayerID: f.playerID, FleetNo: 1, MapID: 1,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.(*commands.StartSortieResult).SortieID)
}

func TestStartSortie_EmptyFleet(t *testing.T) {
	f := newSortieFixture(t)

	_, err := f.start.Handle(context.Background(), &commands.StartSortieCommand{
		PlayerID: f.playerID, FleetNo: 1, MapID: 1,
	})

	var notReady *shared.SortieNotReadyError
	require.ErrorAs(t, err, &notReady)
}

func TestStartSortie_HeavilyDamagedShipBlocks(t *testing.T) {
	f := newSortieFixture(t)
	damaged := f.addShip(t, func(s *ship.Ship) { s.CurrentHP = 4 })
	f.assignFleet(t, 1, f.addShip(t, nil), damaged)

	_, err := f.start.Handle(context.Background(), &commands.StartSortieCommand{
		PlayerID: f.playerID, FleetNo: 1, MapID: 1,
	})

	var notReady *shared.SortieNotReadyError
	require.ErrorAs(t, err, &notReady)
}

func TestStartSortie_ShipUnderRepairBlocks(t *testing.T) {
	f := newSortieFixture(t)
	until := f.clock.Now().Add(time.Hour)
	repairing := f.addShip(t, func(s *ship.Ship) { s.RepairUntil = &until })
	f.assignFleet(t, 1, repairing)

	_, err := f.start.Handle(context.Background(), &commands.StartSortieCommand{
		PlayerID: f.playerID, FleetNo: 1, MapID: 1,
	})

	var notReady *shared.SortieNotReadyError
	require.ErrorAs(t, err, &notReady)
}

func TestStartSortie_RepairFinishedNoLongerBlocks(t *testing.T) {
	f := newSortieFixture(t)
	until := f.clock.Now().Add(-time.Minute)
	repaired := f.addShip(t, func(s *ship.Ship) { s.RepairUntil = &until })
	f.assignFleet(t, 1, repaired)

	_, err := f.start.Handle(context.Background(), &commands.StartSortieCommand{
		PlayerID: f.playerID, FleetNo: 1, MapID: 1,
	})

	require.NoError(t, err)
}

func TestStartSortie_UnsuppliedShipBlocks(t *testing.T) {
	f := newSortieFixture(t)
	thirsty := f.addShip(t, func(s *ship.Ship) { s.Fuel = 10 })
	f.assignFleet(t, 1, thirsty)

	_, err := f.start.Handle(context.Background(), &commands.StartSortieCommand{
		PlayerID: f.playerID, FleetNo: 1, MapID: 1,
	})

	var notReady *shared.SortieNotReadyError
	require.ErrorAs(t, err, &notReady)
}

func TestStartSortie_InvalidMap(t *testing.T) {
	f := newSortieFixture(t)

	_, err := f.start.Handle(context.Background(), &commands.StartSortieCommand{
		PlayerID: f.playerID, FleetNo: 1, MapID: 0,
	})

	var validation *shared.ValidationError
	require.ErrorAs(t, err, &validation)
}
