package sortie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/domain/sortie"
)

func readyShip(id int) sortie.ReadyCheck {
	return sortie.ReadyCheck{
		ShipID:    id,
		CurrentHP: 16, HPMax: 16,
		Fuel: 15, FuelMax: 15,
		Ammo: 20, AmmoMax: 20,
	}
}

func TestCheckEligibility_ReadyFleet(t *testing.T) {
	assert.NoError(t, sortie.CheckEligibility([]sortie.ReadyCheck{readyShip(1), readyShip(2)}))
}

func TestCheckEligibility_EmptyFleet(t *testing.T) {
	err := sortie.CheckEligibility(nil)

	var notReady *shared.SortieNotReadyError
	require.ErrorAs(t, err, &notReady)
}

func TestCheckEligibility_HeavyDamage(t *testing.T) {
	// 4/16 = exactly the heavy damage threshold, which blocks
	damaged := readyShip(1)
	damaged.CurrentHP = 4
	err := sortie.CheckEligibility([]sortie.ReadyCheck{damaged})
	var notReady *shared.SortieNotReadyError
	require.ErrorAs(t, err, &notReady)

	// 5/16 is above the threshold and passes
	damaged.CurrentHP = 5
	assert.NoError(t, sortie.CheckEligibility([]sortie.ReadyCheck{damaged}))
}

func TestCheckEligibility_UnderRepair(t *testing.T) {
	repairing := readyShip(1)
	repairing.UnderRepair = true

	err := sortie.CheckEligibility([]sortie.ReadyCheck{readyShip(2), repairing})

	var notReady *shared.SortieNotReadyError
	require.ErrorAs(t, err, &notReady)
}

func TestCheckEligibility_NeedsResupply(t *testing.T) {
	thirsty := readyShip(1)
	thirsty.Fuel = 14

	err := sortie.CheckEligibility([]sortie.ReadyCheck{thirsty})
	var notReady *shared.SortieNotReadyError
	require.ErrorAs(t, err, &notReady)

	hungry := readyShip(2)
	hungry.Ammo = 0
	err = sortie.CheckEligibility([]sortie.ReadyCheck{hungry})
	require.ErrorAs(t, err, &notReady)
}
