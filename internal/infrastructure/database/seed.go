package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/persistence"
)

// defaultShipMasters is the built-in ship_master catalog. Templates 1-3 are
// the tutorial destroyers and template 5 is the tutorial step-4 battleship;
// their ids are referenced by the fixed tutorial recipes.
var defaultShipMasters = []persistence.ShipMasterModel{
	{ID: 1, ShipName: "Haemil", ShipType: "destroyer", HPBase: 16, HPMax: 30, FirepowerBase: 10, FirepowerMax: 29, TorpedoBase: 24, TorpedoMax: 59, AABase: 9, AAMax: 29, ArmorBase: 5, ArmorMax: 19, FuelMax: 15, AmmoMax: 20, BuildTimeMinutes: 20},
	{ID: 2, ShipName: "Saebyeok", ShipType: "destroyer", HPBase: 15, HPMax: 29, FirepowerBase: 10, FirepowerMax: 29, TorpedoBase: 27, TorpedoMax: 69, AABase: 10, AAMax: 29, ArmorBase: 6, ArmorMax: 19, FuelMax: 15, AmmoMax: 20, BuildTimeMinutes: 20},
	{ID: 3, ShipName: "Noeul", ShipType: "destroyer", HPBase: 16, HPMax: 31, FirepowerBase: 11, FirepowerMax: 29, TorpedoBase: 24, TorpedoMax: 59, AABase: 12, AAMax: 39, ArmorBase: 6, ArmorMax: 19, FuelMax: 15, AmmoMax: 20, BuildTimeMinutes: 22},
	{ID: 4, ShipName: "Mugunghwa", ShipType: "light_cruiser", HPBase: 26, HPMax: 46, FirepowerBase: 14, FirepowerMax: 39, TorpedoBase: 24, TorpedoMax: 79, AABase: 13, AAMax: 39, ArmorBase: 11, ArmorMax: 29, FuelMax: 25, AmmoMax: 55, BuildTimeMinutes: 60},
	{ID: 5, ShipName: "Baekdu", ShipType: "battleship", HPBase: 67, HPMax: 92, FirepowerBase: 74, FirepowerMax: 94, TorpedoBase: 0, TorpedoMax: 0, AABase: 28, AAMax: 79, ArmorBase: 67, ArmorMax: 89, FuelMax: 100, AmmoMax: 130, BuildTimeMinutes: 240},
	{ID: 6, ShipName: "Halla", ShipType: "heavy_cruiser", HPBase: 40, HPMax: 62, FirepowerBase: 30, FirepowerMax: 59, TorpedoBase: 24, TorpedoMax: 79, AABase: 16, AAMax: 59, ArmorBase: 30, ArmorMax: 49, FuelMax: 35, AmmoMax: 65, BuildTimeMinutes: 90},
	{ID: 7, ShipName: "Dasom", ShipType: "light_carrier", HPBase: 32, HPMax: 47, FirepowerBase: 9, FirepowerMax: 29, TorpedoBase: 0, TorpedoMax: 0, AABase: 14, AAMax: 49, ArmorBase: 17, ArmorMax: 39, FuelMax: 35, AmmoMax: 40, BuildTimeMinutes: 150},
	{ID: 8, ShipName: "Byeolbit", ShipType: "carrier", HPBase: 62, HPMax: 84, FirepowerBase: 20, FirepowerMax: 49, TorpedoBase: 0, TorpedoMax: 0, AABase: 30, AAMax: 79, ArmorBase: 33, ArmorMax: 59, FuelMax: 110, AmmoMax: 120, BuildTimeMinutes: 300},
}

// defaultEquipmentMasters is the built-in equipment catalog
var defaultEquipmentMasters = []persistence.EquipmentMasterModel{
	{ID: 1, Name: "12.7cm Twin Gun", Firepower: 2, Torpedo: 0, AA: 2, Armor: 0},
	{ID: 2, Name: "61cm Quad Torpedo", Firepower: 0, Torpedo: 7, AA: 0, Armor: 0},
	{ID: 3, Name: "25mm AA Autocannon", Firepower: 0, Torpedo: 0, AA: 6, Armor: 0},
	{ID: 4, Name: "41cm Twin Gun", Firepower: 20, Torpedo: 0, AA: 4, Armor: 0},
	{ID: 5, Name: "Extra Armor Plating", Firepower: 0, Torpedo: 0, AA: 0, Armor: 7},
}

// Seed inserts the reference catalogs, leaving already-present rows alone
func Seed(db *gorm.DB) error {
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaultShipMasters).Error; err != nil {
		return fmt.Errorf("failed to seed ship_master: %w", err)
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaultEquipmentMasters).Error; err != nil {
		return fmt.Errorf("failed to seed equipment_master: %w", err)
	}
	return nil
}
