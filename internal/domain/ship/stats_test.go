package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daehan-dev/fleetworks-go/internal/domain/ship"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
)

func TestStatForLevel(t *testing.T) {
	// Level 1 is the base, level 99 the max
	assert.Equal(t, 10, ship.StatForLevel(10, 29, 1))
	assert.Equal(t, 29, ship.StatForLevel(10, 29, 99))

	// Interpolation truncates toward zero
	// growth = 19/98 per level; level 50 -> 10 + 19*49/98 = 19.5 -> 19
	assert.Equal(t, 19, ship.StatForLevel(10, 29, 50))

	// Out-of-range levels clamp
	assert.Equal(t, 10, ship.StatForLevel(10, 29, 0))
	assert.Equal(t, 29, ship.StatForLevel(10, 29, 150))

	// Flat stats stay flat
	assert.Equal(t, 0, ship.StatForLevel(0, 0, 57))
}

func TestNewFromTemplate(t *testing.T) {
	tpl := ship.Template{ID: 1, Name: "Haemil", HPBase: 16, HPMax: 30, FuelMax: 15, AmmoMax: 20}

	s := ship.NewFromTemplate(shared.MustNewPlayerID(7), tpl)

	assert.Equal(t, 1, s.TemplateID)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.Exp)
	assert.Equal(t, tpl.HPBase, s.CurrentHP)
	assert.Equal(t, ship.InitialFuel, s.Fuel)
	assert.Equal(t, ship.InitialAmmo, s.Ammo)
	for _, slot := range s.Slots {
		assert.Nil(t, slot)
	}
}

func TestComputeFinalStats(t *testing.T) {
	tpl := ship.Template{
		ID: 1, Name: "Haemil",
		HPBase: 16, HPMax: 30,
		FirepowerBase: 10, FirepowerMax: 29,
		TorpedoBase: 24, TorpedoMax: 59,
		AABase: 9, AAMax: 29,
		ArmorBase: 5, ArmorMax: 19,
	}
	s := &ship.Ship{
		Level:               1,
		CurrentHP:           16,
		ModernizedFirepower: 3,
		ModernizedArmor:     2,
	}
	equipped := []ship.EquippedItem{
		{Master: ship.EquipmentMaster{ID: 1, Firepower: 2, AA: 2}},
		{Master: ship.EquipmentMaster{ID: 2, Torpedo: 7}},
	}

	stats := ship.ComputeFinalStats(tpl, s, equipped)

	assert.Equal(t, 16, stats.HP)
	assert.Equal(t, 16, stats.CurrentHP)
	assert.Equal(t, 10+3+2, stats.Firepower)
	assert.Equal(t, 24+7, stats.Torpedo)
	assert.Equal(t, 9+2, stats.AA)
	assert.Equal(t, 5+2, stats.Armor)
	assert.Equal(t, "Haemil", stats.Name)
}
