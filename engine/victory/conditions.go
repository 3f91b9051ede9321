package victory

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// hasStandingWonder reports whether team owns a completed Wonder.
func hasStandingWonder(w *world.World, team int) bool {
	for _, t := range w.ThingsByKind(worldtypes.KindWonder) {
		if t.TeamID == team && t.Constructed {
			return true
		}
	}
	return false
}

// hasAllRelics reports whether team's monasteries garrison every relic
// currently in play.
func hasAllRelics(w *world.World, team int) bool {
	total := len(w.ThingsByKind(worldtypes.KindRelic))
	held := 0
	for _, t := range w.ThingsByKind(worldtypes.KindMonastery) {
		if t.TeamID == team {
			held += t.GarrisonedRelics
		}
	}
	return total > 0 && held >= total
}

// holdsHill reports whether team alone occupies the configured hill
// zone: at least one living agent of team within HillRadius of
// HillPosition, and none from any other team.
func holdsHill(w *world.World, team int) bool {
	mine := false
	for _, a := range w.Agents() {
		if !a.IsAlive() {
			continue
		}
		if world.ChebyshevDistance(a.Pos, w.Config.HillPosition) > w.Config.HillRadius {
			continue
		}
		if a.TeamID == team {
			mine = true
		} else {
			return false
		}
	}
	return mine
}

// evaluateTerritory breaks a maxSteps tie by flood-fill ownership of
// cells closest to each team's owned buildings, per spec.md §4.11. The
// team owning the most cells wins; a tie leaves VictoryWinner unset.
func evaluateTerritory(w *world.World) {
	owners := make([]int, w.Width()*w.Height())
	for i := range owners {
		owners[i] = -1
	}
	dist := make([]int, w.Width()*w.Height())
	for i := range dist {
		dist[i] = 1 << 30
	}

	for _, t := range w.AllThings() {
		if t.IsAgent || !worldtypes.IsBuildingOrWall(t.Kind) || t.Pos.IsOffGrid() {
			continue
		}
		idx := t.Pos.Y*w.Width() + t.Pos.X
		if 0 < dist[idx] {
			dist[idx] = 0
			owners[idx] = t.TeamID
		}
	}

	for changed := true; changed; {
		changed = false
		for y := 0; y < w.Height(); y++ {
			for x := 0; x < w.Width(); x++ {
				idx := y*w.Width() + x
				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := x+d[0], y+d[1]
					if nx < 0 || ny < 0 || nx >= w.Width() || ny >= w.Height() {
						continue
					}
					nidx := ny*w.Width() + nx
					if dist[nidx]+1 < dist[idx] {
						dist[idx] = dist[nidx] + 1
						owners[idx] = owners[nidx]
						changed = true
					}
				}
			}
		}
	}

	counts := make(map[int]int)
	for _, team := range owners {
		if team >= 0 {
			counts[team]++
		}
	}

	best, bestCount, tie := -1, -1, false
	for team, c := range counts {
		switch {
		case c > bestCount:
			best, bestCount, tie = team, c, false
		case c == bestCount:
			tie = true
		}
	}
	if best >= 0 && !tie {
		declareWinner(w, best)
	}
}
