package world

import "github.com/1siamBot/tribal-sim/engine/worldtypes"

// PopulationCap computes a team's population cap, per spec.md §4.7:
// min(MapAgentsPerTeam, sum of popContribution(building) over the
// team's completed buildings).
func (w *World) PopulationCap(team int) int {
	total := 0
	for kind, list := range w.thingsByKind {
		contribution := worldtypes.PopulationContribution(kind)
		if contribution == 0 {
			continue
		}
		for _, t := range list {
			if t.TeamID == team && t.Constructed {
				total += contribution
			}
		}
	}
	if total > worldtypes.MapAgentsPerTeam {
		total = worldtypes.MapAgentsPerTeam
	}
	return total
}

// AlivePopulation counts a team's currently-alive agents.
func (w *World) AlivePopulation(team int) int {
	count := 0
	for _, a := range w.agents {
		if a.TeamID == team && a.IsAlive() {
			count++
		}
	}
	return count
}
