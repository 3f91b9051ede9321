package world

import "github.com/1siamBot/tribal-sim/engine/worldtypes"

// VisionRadius is the fixed Chebyshev sight radius every living agent
// and completed building projects, per spec.md §6's isRevealed accessor.
const VisionRadius = 6

// RecomputeVisibility rebuilds the per-team revealed-cell set from
// every living agent's and completed building's position. It is called
// once per tick during observation publication (spec.md §5 phase 10).
func (w *World) RecomputeVisibility() {
	if w.revealed == nil {
		w.revealed = make(map[int][]bool)
	}
	cells := w.width * w.height
	for team := 0; team < worldtypes.MapRoomObjectsTeams; team++ {
		grid := w.revealed[team]
		if len(grid) != cells {
			grid = make([]bool, cells)
		} else {
			for i := range grid {
				grid[i] = false
			}
		}
		w.revealed[team] = grid
	}

	reveal := func(team int, center Position, radius int) {
		grid := w.revealed[team]
		if grid == nil {
			return // neutral or out-of-range team: nothing to reveal
		}
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				p := center.Add(dx, dy)
				if w.InBounds(p) {
					grid[w.index(p)] = true
				}
			}
		}
	}

	for _, a := range w.agents {
		if a.IsAlive() {
			reveal(a.TeamID, a.Pos, VisionRadius)
		}
	}
	for _, t := range w.things {
		if !t.IsAgent && t.Constructed && !t.Pos.IsOffGrid() {
			reveal(t.TeamID, t.Pos, VisionRadius)
		}
	}
}

// IsRevealed reports whether p has been revealed to team as of the most
// recent RecomputeVisibility call.
func (w *World) IsRevealed(team int, p Position) bool {
	if !w.InBounds(p) {
		return false
	}
	grid := w.revealed[team]
	if grid == nil {
		return false
	}
	return grid[w.index(p)]
}
