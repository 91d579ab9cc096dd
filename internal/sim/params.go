package sim

// Params holds the tunable simulation constants. Lengths and speeds are
// in world units; the TUI maps one unit to one terminal cell.
type Params struct {
	Gravity       float64 // added to vy each step, scaled by dt
	Friction      float64 // velocity multiplier per step, not dt-scaled
	BounceDamping float64 // velocity multiplier on wall contact
	FlickFactor   float64 // throw velocity per unit of cursor offset

	DefaultRadius float64 // used by Spawn when no radius is given
	MinRadius     float64 // SpawnRandom radius range
	MaxRadius     float64

	SpawnSpeed float64 // per-axis velocity bound for new balls
	EjectSpeed float64 // per-axis velocity bound for ejected balls

	MinColorValue int     // channel range for random colors
	MaxColorValue int
	MinBrightness float64 // brightness window for spawned colors
	MaxBrightness float64

	DeleteZoneHeight float64 // band height at the arena bottom
	InventoryOffsetX float64 // target center, measured from the right edge
	InventoryOffsetY float64 // target center, measured from the top
	InventoryRadius  float64

	SpawnMarginX    float64 // SpawnRandom band: x in [margin, width-margin]
	SpawnBandTop    float64
	SpawnBandBottom float64
	EjectMarginX    float64 // Eject respawn band, same shape
	EjectBandTop    float64
	EjectBandBottom float64
}

// DefaultParams returns constants tuned for a terminal-sized arena,
// roughly 80x20 cells at 60 steps per second.
func DefaultParams() Params {
	return Params{
		Gravity:       0.006,
		Friction:      0.985,
		BounceDamping: 0.8,
		FlickFactor:   0.1,

		DefaultRadius: 2.0,
		MinRadius:     1.6,
		MaxRadius:     2.6,

		SpawnSpeed: 0.4,
		EjectSpeed: 0.25,

		MinColorValue: 50,
		MaxColorValue: 255,
		MinBrightness: 0.4,
		MaxBrightness: 0.9,

		DeleteZoneHeight: 2,
		InventoryOffsetX: 9,
		InventoryOffsetY: 3,
		InventoryRadius:  3.5,

		SpawnMarginX:    10,
		SpawnBandTop:    2,
		SpawnBandBottom: 6,
		EjectMarginX:    5,
		EjectBandTop:    1,
		EjectBandBottom: 5,
	}
}
