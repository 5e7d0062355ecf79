package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/persistence"
	"github.com/daehan-dev/fleetworks-go/internal/application/ship/queries"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
	"github.com/daehan-dev/fleetworks-go/test/helpers"
)

func TestGetShip_WithEquipment(t *testing.T) {
	db := helpers.NewSeededTestDB(t)
	p := helpers.ProvisionTestPlayer(t, db, "tester")

	// One owned 12.7cm twin gun (equipment master 1: +2 firepower, +2 AA)
	owned := persistence.PlayerEquipmentModel{PlayerID: p.ID.Value(), EquipmentMasterID: 1}
	require.NoError(t, db.Create(&owned).Error)

	s := &ship.Ship{
		PlayerID:   p.ID,
		TemplateID: 1,
		Level:      1,
		CurrentHP:  16,
		Fuel:       ship.InitialFuel,
		Ammo:       ship.InitialAmmo,
	}
	s.Slots[0] = &owned.ID
	require.NoError(t, persistence.NewGormShipRepository(db).Add(context.Background(), s))

	handler := queries.NewGetShipHandler(
		persistence.NewGormShipRepository(db),
		persistence.NewGormTemplateRepository(db),
		persistence.NewGormEquipmentRepository(db),
	)

	res, err := handler.Handle(context.Background(), &queries.GetShipQuery{PlayerID: p.ID, ShipID: s.ID})

	require.NoError(t, err)
	result := res.(*queries.GetShipResult)
	assert.Equal(t, "Haemil", result.Master.Name)
	require.Len(t, result.Equipped, 1)
	assert.Equal(t, "12.7cm Twin Gun", result.Equipped[0].Master.Name)

	// Template 1 base firepower 10 plus the gun's +2
	assert.Equal(t, 12, result.FinalStats.Firepower)
	assert.Equal(t, 9+2, result.FinalStats.AA)
}

func TestGetShip_NotOwned(t *testing.T) {
	db := helpers.NewSeededTestDB(t)
	owner := helpers.ProvisionTestPlayer(t, db, "owner")
	other := helpers.ProvisionTestPlayer(t, db, "other")

	s := &ship.Ship{PlayerID: owner.ID, TemplateID: 1, Level: 1, CurrentHP: 16}
	require.NoError(t, persistence.NewGormShipRepository(db).Add(context.Background(), s))

	handler := queries.NewGetShipHandler(
		persistence.NewGormShipRepository(db),
		persistence.NewGormTemplateRepository(db),
		persistence.NewGormEquipmentRepository(db),
	)

	_, err := handler.Handle(context.Background(), &queries.GetShipQuery{PlayerID: other.ID, ShipID: s.ID})

	var notFound *shared.ShipNotFoundError
	require.ErrorAs(t, err, &notFound)
}
