package persistence

import (
	"time"
)

// PlayerModel represents the players table. The four resource counters and
// the instant_build count are only ever mutated inside a unit of work that
// holds the row lock.
type PlayerModel struct {
	ID             int       `gorm:"column:id;primaryKey;autoIncrement"`
	Nickname       string    `gorm:"column:nickname;not null"`
	CommanderLevel int       `gorm:"column:commander_level;not null;default:1"`
	Fuel           int       `gorm:"column:fuel;not null;default:0"`
	Ammo           int       `gorm:"column:ammo;not null;default:0"`
	Steel          int       `gorm:"column:steel;not null;default:0"`
	Bauxite        int       `gorm:"column:bauxite;not null;default:0"`
	InstantBuild   int       `gorm:"column:instant_build;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (PlayerModel) TableName() string {
	return "players"
}

// ShipMasterModel represents the ship_master reference table
type ShipMasterModel struct {
	ID               int    `gorm:"column:id;primaryKey"`
	ShipName         string `gorm:"column:ship_name;not null"`
	ShipType         string `gorm:"column:ship_type;not null"`
	HPBase           int    `gorm:"column:hp_base;not null"`
	HPMax            int    `gorm:"column:hp_max;not null"`
	FirepowerBase    int    `gorm:"column:firepower_base;not null"`
	FirepowerMax     int    `gorm:"column:firepower_max;not null"`
	TorpedoBase      int    `gorm:"column:torpedo_base;not null"`
	TorpedoMax       int    `gorm:"column:torpedo_max;not null"`
	AABase           int    `gorm:"column:aa_base;not null"`
	AAMax            int    `gorm:"column:aa_max;not null"`
	ArmorBase        int    `gorm:"column:armor_base;not null"`
	ArmorMax         int    `gorm:"column:armor_max;not null"`
	FuelMax          int    `gorm:"column:fuel_max;not null"`
	AmmoMax          int    `gorm:"column:ammo_max;not null"`
	BuildTimeMinutes int    `gorm:"column:build_time_minutes;not null"`
}

func (ShipMasterModel) TableName() string {
	return "ship_master"
}

// ShipModel represents the ships table
type ShipModel struct {
	ID        int          `gorm:"column:id;primaryKey;autoIncrement"`
	PlayerID  int          `gorm:"column:player_id;index;not null"`
	Player    *PlayerModel `gorm:"foreignKey:PlayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	MasterID  int          `gorm:"column:master_id;not null"`
	Level     int          `gorm:"column:level;not null;default:1"`
	Exp       int          `gorm:"column:exp;not null;default:0"`
	CurrentHP int          `gorm:"column:current_hp;not null"`
	Fuel      int          `gorm:"column:fuel;not null"`
	Ammo      int          `gorm:"column:ammo;not null"`

	ModernizedFirepower int `gorm:"column:modernized_firepower;not null;default:0"`
	ModernizedTorpedo   int `gorm:"column:modernized_torpedo;not null;default:0"`
	ModernizedAA        int `gorm:"column:modernized_aa;not null;default:0"`
	ModernizedArmor     int `gorm:"column:modernized_armor;not null;default:0"`

	Slot1 *int `gorm:"column:slot_1"`
	Slot2 *int `gorm:"column:slot_2"`
	Slot3 *int `gorm:"column:slot_3"`
	Slot4 *int `gorm:"column:slot_4"`
	Slot5 *int `gorm:"column:slot_5"`

	IsLocked    bool       `gorm:"column:is_locked;not null;default:false"`
	RepairUntil *time.Time `gorm:"column:repair_until"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;autoCreateTime"`
}

func (ShipModel) TableName() string {
	return "ships"
}

// ConstructionDockModel represents the construction_docks table.
// ship_master_id and completion_time are both null exactly when the dock is
// empty; there is no stored "complete" state.
type ConstructionDockModel struct {
	ID             int          `gorm:"column:id;primaryKey;autoIncrement"`
	PlayerID       int          `gorm:"column:player_id;not null;uniqueIndex:idx_docks_player_number"`
	Player         *PlayerModel `gorm:"foreignKey:PlayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	DockNumber     int          `gorm:"column:dock_number;not null;uniqueIndex:idx_docks_player_number"`
	ShipMasterID   *int         `gorm:"column:ship_master_id"`
	CompletionTime *time.Time   `gorm:"column:completion_time"`
}

func (ConstructionDockModel) TableName() string {
	return "construction_docks"
}

// PlayerFleetModel represents the player_fleets table
type PlayerFleetModel struct {
	PlayerID  int          `gorm:"column:player_id;primaryKey"`
	Player    *PlayerModel `gorm:"foreignKey:PlayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FleetNo   int          `gorm:"column:fleet_no;primaryKey"`
	Name      string       `gorm:"column:name;not null"`
	Ship1     *int         `gorm:"column:ship_1"`
	Ship2     *int         `gorm:"column:ship_2"`
	Ship3     *int         `gorm:"column:ship_3"`
	Ship4     *int         `gorm:"column:ship_4"`
	Ship5     *int         `gorm:"column:ship_5"`
	Ship6     *int         `gorm:"column:ship_6"`
	UpdatedAt time.Time    `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (PlayerFleetModel) TableName() string {
	return "player_fleets"
}

// EquipmentMasterModel represents the equipment_master reference table
type EquipmentMasterModel struct {
	ID        int    `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name;not null"`
	Firepower int    `gorm:"column:firepower;not null;default:0"`
	Torpedo   int    `gorm:"column:torpedo;not null;default:0"`
	AA        int    `gorm:"column:aa;not null;default:0"`
	Armor     int    `gorm:"column:armor;not null;default:0"`
}

func (EquipmentMasterModel) TableName() string {
	return "equipment_master"
}

// PlayerEquipmentModel represents the player_equipment table
type PlayerEquipmentModel struct {
	ID                int          `gorm:"column:id;primaryKey;autoIncrement"`
	PlayerID          int          `gorm:"column:player_id;index;not null"`
	Player            *PlayerModel `gorm:"foreignKey:PlayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	EquipmentMasterID int          `gorm:"column:equipment_master_id;not null"`
}

func (PlayerEquipmentModel) TableName() string {
	return "player_equipment"
}

// SortieLogModel represents the sortie_logs table
type SortieLogModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	PlayerID  int       `gorm:"column:player_id;index;not null"`
	FleetNo   int       `gorm:"column:fleet_no;not null"`
	MapID     int       `gorm:"column:map_id;not null"`
	StartedAt time.Time `gorm:"column:started_at;not null"`
}

func (SortieLogModel) TableName() string {
	return "sortie_logs"
}
