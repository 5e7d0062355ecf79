package ship

// MaxLevel is the level at which a stat reaches its template maximum
const MaxLevel = 99

// StatForLevel linearly interpolates a stat between its base (level 1) and
// max (level 99) values, truncating toward zero.
func StatForLevel(base, max, level int) int {
	if level <= 1 {
		return base
	}
	if level >= MaxLevel {
		return max
	}
	growth := float64(max-base) / float64(MaxLevel-1)
	return int(float64(base) + growth*float64(level-1))
}

// FinalStats holds the fully computed combat stats of a ship instance:
// level growth plus modernization plus equipment bonuses.
type FinalStats struct {
	HP        int
	Firepower int
	Torpedo   int
	AA        int
	Armor     int
	CurrentHP int
	Level     int
	Exp       int
	Name      string
}

// ComputeFinalStats derives the effective stats for a ship
func ComputeFinalStats(tpl Template, s *Ship, equipped []EquippedItem) FinalStats {
	stats := FinalStats{
		HP:        StatForLevel(tpl.HPBase, tpl.HPMax, s.Level),
		Firepower: StatForLevel(tpl.FirepowerBase, tpl.FirepowerMax, s.Level),
		Torpedo:   StatForLevel(tpl.TorpedoBase, tpl.TorpedoMax, s.Level),
		AA:        StatForLevel(tpl.AABase, tpl.AAMax, s.Level),
		Armor:     StatForLevel(tpl.ArmorBase, tpl.ArmorMax, s.Level),
		CurrentHP: s.CurrentHP,
		Level:     s.Level,
		Exp:       s.Exp,
		Name:      tpl.Name,
	}

	stats.Firepower += s.ModernizedFirepower
	stats.Torpedo += s.ModernizedTorpedo
	stats.AA += s.ModernizedAA
	stats.Armor += s.ModernizedArmor

	for _, item := range equipped {
		stats.Firepower += item.Master.Firepower
		stats.Torpedo += item.Master.Torpedo
		stats.AA += item.Master.AA
		stats.Armor += item.Master.Armor
	}

	return stats
}
