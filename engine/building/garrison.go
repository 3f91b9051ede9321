package building

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Garrison executes a USE action on an adjacent owned container-class
// building: if its garrison has room, the agent moves off-grid into
// GarrisonedUnits; otherwise it fails silently, per spec.md §4.9.
func Garrison(w *world.World, agent, target *world.Thing) bool {
	if !worldtypes.IsContainerBuilding(target.Kind) || target.TeamID != agent.TeamID {
		return false
	}
	if len(target.GarrisonedUnits) >= worldtypes.GarrisonCapacity(target.Kind) {
		return false
	}
	target.GarrisonedUnits = append(target.GarrisonedUnits, agent.ID)
	w.Remove(agent)
	agent.Pos = world.OffGrid
	return true
}

// GarrisonRelic deposits one of agent's carried relics into a friendly
// Monastery's GarrisonedRelics, per spec.md §4.9's "relics are
// garrisoned by dedicated rules (Monastery)". It fails silently if the
// target is not an owned Monastery or the agent carries no relic.
func GarrisonRelic(agent, target *world.Thing) bool {
	if target.Kind != worldtypes.KindMonastery || target.TeamID != agent.TeamID {
		return false
	}
	if agent.RelicCount <= 0 {
		return false
	}
	agent.RelicCount--
	target.GarrisonedRelics++
	return true
}

// Eject empties building's garrison, scanning 8-neighbour empty cells
// for each unit in turn; surplus units remain garrisoned if no exit
// tile is free, per spec.md §4.9.
func Eject(w *world.World, building *world.Thing) {
	var remaining []world.ThingID
	for _, id := range building.GarrisonedUnits {
		unit := w.AllThings()[id]
		if unit == nil {
			continue
		}
		cell, ok := freeNeighbour(w, building.Pos)
		if !ok {
			remaining = append(remaining, id)
			continue
		}
		w.MoveThing(unit, cell)
		w.Add(unit)
	}
	building.GarrisonedUnits = remaining
}

func freeNeighbour(w *world.World, center world.Position) (world.Position, bool) {
	deltas := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for _, d := range deltas {
		n := center.Add(d[0], d[1])
		if w.InBounds(n) && w.GetThing(n) == nil && worldtypes.IsBuildableTerrain(w.TerrainAt(n)) {
			return n, true
		}
	}
	return world.Position{}, false
}
