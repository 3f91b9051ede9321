package world

import "github.com/1siamBot/tribal-sim/engine/worldtypes"

// VictoryCondition selects how an episode is won, per spec.md §4.11.
type VictoryCondition uint8

const (
	VictoryNone VictoryCondition = iota
	VictoryRegicide
	VictoryWonder
	VictoryRelic
	VictoryHill
	VictoryTerritory
)

// EnvironmentConfig is the record spec.md §6 enumerates: everything
// newEnvironment/reset needs to build a deterministic episode. Map and
// biome generation itself is an external collaborator (spec.md §1); a
// MapGenerator may be injected to drive Reset, and a minimal
// deterministic default is supplied for standalone use and tests.
type EnvironmentConfig struct {
	MaxSteps         int
	VictoryCondition VictoryCondition
	TeamCount        int
	InitialStockpiles map[worldtypes.StockpileResource]int
	StartingCivBonuses map[int]worldtypes.CivBonus
	ResourceNodeCounts map[worldtypes.ThingKind]int
	Seed             uint64

	// VictoryHoldTicks is the interval a team must hold a
	// wonder/relic/hill/territory condition to win.
	VictoryHoldTicks int

	// HillPosition and HillRadius define the King-of-the-Hill zone for
	// VictoryHill: a team holds the hill while it has at least one
	// living agent within HillRadius of HillPosition and the opposing
	// teams have none.
	HillPosition Position
	HillRadius   int

	// Generator builds the map and initial entities during Reset. If
	// nil, DefaultMapGenerator is used.
	Generator MapGenerator
}

// MapGenerator populates a freshly-sized World: terrain, elevation,
// resource nodes, starting buildings, and agent home altars. It is the
// seam the out-of-scope map/biome generator collaborator plugs into;
// see DefaultMapGenerator for the in-tree stand-in used by tests and by
// NewEnvironment when no generator is configured.
type MapGenerator interface {
	Generate(w *World)
}

// DefaultConfig returns a small, fully-specified EnvironmentConfig
// suitable for tests and as a baseline for newEnvironment.
func DefaultConfig() EnvironmentConfig {
	return EnvironmentConfig{
		MaxSteps:         4000,
		VictoryCondition: VictoryNone,
		TeamCount:        2,
		InitialStockpiles: map[worldtypes.StockpileResource]int{
			worldtypes.ResFood:  200,
			worldtypes.ResWood:  200,
			worldtypes.ResGold:  100,
			worldtypes.ResStone: 100,
		},
		ResourceNodeCounts: map[worldtypes.ThingKind]int{
			worldtypes.KindTree:  40,
			worldtypes.KindWheat: 20,
			worldtypes.KindStone: 10,
			worldtypes.KindGold:  10,
		},
		VictoryHoldTicks: 500,
		HillPosition:     Position{X: worldtypes.MapWidth / 2, Y: worldtypes.MapHeight / 2},
		HillRadius:       5,
		Seed:             1,
	}
}
