package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/persistence"
	"github.com/daehan-dev/fleetworks-go/internal/application/fleet/commands"
	"github.com/daehan-dev/fleetworks-go/internal/domain/fleet"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
	"github.com/daehan-dev/fleetworks-go/test/helpers"
)

func addTestShip(t *testing.T, db *gorm.DB, playerID shared.PlayerID, templateID int) *ship.Ship {
	s := &ship.Ship{
		PlayerID:   playerID,
		TemplateID: templateID,
		Level:      1,
		CurrentHP:  16,
		Fuel:       ship.InitialFuel,
		Ammo:       ship.InitialAmmo,
	}
	require.NoError(t, persistence.NewGormShipRepository(db).Add(context.Background(), s))
	return s
}

func TestUpdateFleet_AssignsShips(t *testing.T) {
	db := helpers.NewSeededTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "admiral")
	s1 := addTestShip(t, db, p.ID, 1)
	s2 := addTestShip(t, db, p.ID, 2)

	handler := commands.NewUpdateFleetHandler(persistence.NewGormUnitOfWork(db))

	var shipIDs [fleet.SlotCount]*int
	shipIDs[0] = &s1.ID
	shipIDs[1] = &s2.ID

	res, err := handler.Handle(context.Background(), &commands.UpdateFleetCommand{
		PlayerID: p.ID, FleetNo: 1, ShipIDs: shipIDs,
	})

	require.NoError(t, err)
	result := res.(*commands.UpdateFleetResult)
	assert.Equal(t, []int{s1.ID, s2.ID}, result.Fleet.AssignedShipIDs())

	stored, err := persistence.NewGormFleetRepository(db).FindByPlayerAndNo(context.Background(), p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{s1.ID, s2.ID}, stored.AssignedShipIDs())
}

func TestUpdateFleet_ClearsSlots(t *testing.T) {
	db := helpers.NewSeededTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "admiral")
	s1 := addTestShip(t, db, p.ID, 1)

	handler := commands.NewUpdateFleetHandler(persistence.NewGormUnitOfWork(db))

	var shipIDs [fleet.SlotCount]*int
	shipIDs[0] = &s1.ID
	_, err := handler.Handle(context.Background(), &commands.UpdateFleetCommand{
		PlayerID: p.ID, FleetNo: 1, ShipIDs: shipIDs,
	})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), &commands.UpdateFleetCommand{
		PlayerID: p.ID, FleetNo: 1,
	})
	require.NoError(t, err)

	stored, err := persistence.NewGormFleetRepository(db).FindByPlayerAndNo(context.Background(), p.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, stored.AssignedShipIDs())
}

func TestUpdateFleet_RejectsForeignShip(t *testing.T) {
	db := helpers.NewSeededTestDB(t)
	owner := helpers.ProvisionTestPlayer(t, db, "owner")
	intruder := helpers.ProvisionTestPlayer(t, db, "intruder")
	foreign := addTestShip(t, db, owner.ID, 1)

	handler := commands.NewUpdateFleetHandler(persistence.NewGormUnitOfWork(db))

	var shipIDs [fleet.SlotCount]*int
	shipIDs[0] = &foreign.ID
	_, err := handler.Handle(context.Background(), &commands.UpdateFleetCommand{
		PlayerID: intruder.ID, FleetNo: 1, ShipIDs: shipIDs,
	})

	var validation *shared.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestUpdateFleet_RejectsDuplicateShip(t *testing.T) {
	db := helpers.NewSeededTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "admiral")
	s1 := addTestShip(t, db, p.ID, 1)

	handler := commands.NewUpdateFleetHandler(persistence.NewGormUnitOfWork(db))

	var shipIDs [fleet.SlotCount]*int
	shipIDs[0] = &s1.ID
	shipIDs[3] = &s1.ID
	_, err := handler.Handle(context.Background(), &commands.UpdateFleetCommand{
		PlayerID: p.ID, FleetNo: 1, ShipIDs: shipIDs,
	})

	var validation *shared.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestUpdateFleet_InvalidFleetNo(t *testing.T) {
	db := helpers.NewSeededTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "admiral")

	handler := commands.NewUpdateFleetHandler(persistence.NewGormUnitOfWork(db))

	_, err := handler.Handle(context.Background(), &commands.UpdateFleetCommand{
		PlayerID: p.ID, FleetNo: 5,
	})

	var validation *shared.ValidationError
	require.ErrorAs(t, err, &validation)
}
