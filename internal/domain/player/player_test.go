package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehan-dev/fleetworks-go/internal/domain/player"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

func newTestPlayer(resources player.Resources) *player.Player {
	return &player.Player{
		ID:             shared.MustNewPlayerID(1),
		Nickname:       "tester",
		CommanderLevel: 1,
		Resources:      resources,
		InstantBuild:   2,
	}
}

func TestPlayer_Debit(t *testing.T) {
	p := newTestPlayer(player.Resources{Fuel: 100, Ammo: 100, Steel: 100, Bauxite: 100})

	err := p.Debit(player.Resources{Fuel: 30, Ammo: 30, Steel: 30, Bauxite: 30})

	require.NoError(t, err)
	assert.Equal(t, player.Resources{Fuel: 70, Ammo: 70, Steel: 70, Bauxite: 70}, p.Resources)
}

func TestPlayer_Debit_OneCounterShortLeavesAllUntouched(t *testing.T) {
	start := player.Resources{Fuel: 500, Ammo: 500, Steel: 500, Bauxite: 20}
	p := newTestPlayer(start)

	err := p.Debit(player.Resources{Fuel: 30, Ammo: 30, Steel: 30, Bauxite: 30})

	var insufficient *shared.InsufficientResourcesError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, start, p.Resources)
}

func TestPlayer_Debit_RejectsNegativeCost(t *testing.T) {
	p := newTestPlayer(player.Resources{Fuel: 100, Ammo: 100, Steel: 100, Bauxite: 100})

	err := p.Debit(player.Resources{Fuel: -10})

	var validation *shared.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestPlayer_ConsumeInstantBuild(t *testing.T) {
	p := newTestPlayer(player.Resources{})
	p.InstantBuild = 1

	require.NoError(t, p.ConsumeInstantBuild())
	assert.Equal(t, 0, p.InstantBuild)

	err := p.ConsumeInstantBuild()
	var insufficient *shared.InsufficientItemsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, p.InstantBuild)
}

func TestResources_CanAfford(t *testing.T) {
	have := player.Resources{Fuel: 100, Ammo: 100, Steel: 100, Bauxite: 100}

	assert.True(t, have.CanAfford(player.Resources{Fuel: 100, Ammo: 100, Steel: 100, Bauxite: 100}))
	assert.False(t, have.CanAfford(player.Resources{Fuel: 101, Ammo: 0, Steel: 0, Bauxite: 0}))
	assert.True(t, have.CanAfford(player.Resources{}))
}
