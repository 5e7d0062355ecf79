package ship

// Template is the immutable ship_master reference data: per-stat base/max
// pairs, supply capacities, and the configured build duration.
type Template struct {
	ID               int
	Name             string
	ShipType         string
	HPBase           int
	HPMax            int
	FirepowerBase    int
	FirepowerMax     int
	TorpedoBase      int
	TorpedoMax       int
	AABase           int
	AAMax            int
	ArmorBase        int
	ArmorMax         int
	FuelMax          int
	AmmoMax          int
	BuildTimeMinutes int
}
