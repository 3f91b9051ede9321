package world

import (
	"math/rand/v2"

	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Reset restarts the episode: zeroes transient state, regenerates the
// map via the configured (or default) generator, and re-initializes
// entities, per spec.md §5's episode-end contract. It is
// seed-deterministic: calling Reset twice with the same Config.Seed
// produces bit-identical grid/terrain/stockpile state.
func (w *World) Reset() {
	seed := w.Config.Seed
	w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range w.foreground {
		w.foreground[i] = nil
	}
	for i := range w.background {
		w.background[i] = nil
	}
	for i := range w.terrain {
		w.terrain[i] = worldtypes.TerrainGrass
	}
	for i := range w.elevation {
		w.elevation[i] = 0
	}
	for i := range w.biome {
		w.biome[i] = 0
	}

	w.things = make(map[ThingID]*Thing)
	w.thingsByKind = make(map[worldtypes.ThingKind][]*Thing)
	w.Projectiles = nil
	w.CurrentStep = 0
	w.ShouldReset = false
	w.VictoryWinner = -1
	w.VictoryStates = make(map[int]VictoryState)
	w.nextCreationOrder = 0
	w.builderActions = make(map[ThingID]int)

	for i := 0; i < worldtypes.MapAgents; i++ {
		t := NewThing(worldtypes.KindAgent)
		t.IsAgent = true
		t.AgentID = i
		t.TeamID = TeamOf(i)
		t.UnitClass = worldtypes.ClassVillager
		w.agents[i] = t
		w.things[t.ID] = t
		w.Terminated[i] = 1.0
		w.Truncated[i] = 0.0
	}

	for team := 0; team < worldtypes.MapRoomObjectsTeams; team++ {
		stock := make(map[worldtypes.StockpileResource]int)
		for res, amount := range w.Config.InitialStockpiles {
			stock[res] = amount
		}
		w.TeamStockpiles[team] = stock

		bonus := worldtypes.DefaultCivBonus
		if b, ok := w.Config.StartingCivBonuses[team]; ok {
			bonus = b
		}
		w.TeamCivBonuses[team] = bonus

		w.TeamUniversityTechs[team] = make(map[string]bool)

		prices := make(map[worldtypes.StockpileResource]int)
		for _, r := range worldtypes.TradableResources {
			prices[r] = worldtypes.MarketBasePrice
		}
		w.TeamMarketPrices[team] = prices
	}

	gen := w.Config.Generator
	if gen == nil {
		gen = DefaultMapGenerator{}
	}
	gen.Generate(w)
	w.MakeConnected()
}
