package world

import "github.com/1siamBot/tribal-sim/engine/worldtypes"

// TerrainAt returns the terrain kind at p, or TerrainWater (the blocked
// default) for out-of-bounds positions so traversal checks fail closed.
func (w *World) TerrainAt(p Position) worldtypes.TerrainKind {
	if !w.InBounds(p) {
		return worldtypes.TerrainWater
	}
	return w.terrain[w.index(p)]
}

// SetTerrain writes the terrain kind at p. Out-of-bounds writes are
// silently ignored.
func (w *World) SetTerrain(p Position, t worldtypes.TerrainKind) {
	if !w.InBounds(p) {
		return
	}
	w.terrain[w.index(p)] = t
}

// ElevationAt returns the elevation at p, or 0 for out-of-bounds.
func (w *World) ElevationAt(p Position) int {
	if !w.InBounds(p) {
		return 0
	}
	return int(w.elevation[w.index(p)])
}

// SetElevation writes the elevation at p.
func (w *World) SetElevation(p Position, e int) {
	if !w.InBounds(p) {
		return
	}
	w.elevation[w.index(p)] = int8(e)
}

// BiomeAt returns the biome tag at p.
func (w *World) BiomeAt(p Position) int {
	if !w.InBounds(p) {
		return 0
	}
	return int(w.biome[w.index(p)])
}

// SetBiome writes the biome tag at p.
func (w *World) SetBiome(p Position, b int) {
	if !w.InBounds(p) {
		return
	}
	w.biome[w.index(p)] = uint8(b)
}

// ElevationTraversal is the result of checking a single cardinal step
// a->b against the elevation rule in spec.md §4.2.
type ElevationTraversal struct {
	Allowed    bool
	CliffFall  bool // descent without a matching ramp-down/road
}

// CheckElevationTraversal evaluates one cardinal hop from a to b for a
// land unit, per spec.md §4.2. dir is the orientation of travel (a->b);
// it must be cardinal — diagonal moves are treated as blocked for
// elevation purposes by the movement package, which never calls this
// with a diagonal orientation.
func (w *World) CheckElevationTraversal(a, b Position, dir worldtypes.Orientation) ElevationTraversal {
	ea, eb := w.ElevationAt(a), w.ElevationAt(b)
	diff := eb - ea
	if diff > 1 || diff < -1 {
		return ElevationTraversal{Allowed: false}
	}
	switch {
	case diff > 0:
		ta := w.TerrainAt(a)
		if rampDir, ok := worldtypes.RampUpDirection(ta); ok && rampDir == dir {
			return ElevationTraversal{Allowed: true}
		}
		if ta == worldtypes.TerrainRoad {
			return ElevationTraversal{Allowed: true}
		}
		return ElevationTraversal{Allowed: false}
	case diff < 0:
		ta := w.TerrainAt(a)
		tb := w.TerrainAt(b)
		if rampDir, ok := worldtypes.RampDownDirection(ta); ok && rampDir == dir {
			return ElevationTraversal{Allowed: true}
		}
		if ta == worldtypes.TerrainRoad || tb == worldtypes.TerrainRoad {
			return ElevationTraversal{Allowed: true}
		}
		return ElevationTraversal{Allowed: true, CliffFall: true}
	default:
		return ElevationTraversal{Allowed: true}
	}
}

// MakeConnected joins the map's regions via 8-neighbour adjacency,
// per spec.md §4.1. It labels connected components over
// traversable-or-diggable cells, then repeatedly carves a straight
// Manhattan corridor from the smallest component into the largest and
// merges the two labels, until one label remains. The corridor is not a
// cheapest path, and it never carves through a building or the map
// border: a corridor that meets a building leaves that cell blocked, so
// the two components are not connected along that corridor.
func (w *World) MakeConnected() {
	n := w.width * w.height
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}

	passable := func(p Position) bool {
		if !w.InBounds(p) {
			return false
		}
		if w.GetThing(p) != nil {
			return false // buildings and other foreground occupants block
		}
		t := w.TerrainAt(p)
		return worldtypes.IsBuildableTerrain(t) || t == worldtypes.TerrainWater
	}

	diggableOrOpen := func(p Position) bool {
		if !w.InBounds(p) {
			return false
		}
		if occ := w.GetThing(p); occ != nil {
			return worldtypes.IsDiggable(occ.Kind)
		}
		t := w.TerrainAt(p)
		return worldtypes.IsBuildableTerrain(t) || t == worldtypes.TerrainWater
	}

	var components [][]Position
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			p := Position{X: x, Y: y}
			idx := w.index(p)
			if label[idx] != -1 || !diggableOrOpen(p) {
				continue
			}
			compID := len(components)
			var members []Position
			queue := []Position{p}
			label[idx] = compID
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				members = append(members, cur)
				for _, n := range neighbours8(cur) {
					if !w.InBounds(n) {
						continue
					}
					ni := w.index(n)
					if label[ni] != -1 || !diggableOrOpen(n) {
						continue
					}
					label[ni] = compID
					queue = append(queue, n)
				}
			}
			components = append(components, members)
		}
	}

	for len(components) > 1 {
		smallestIdx, largestIdx := 0, 0
		for i, c := range components {
			if len(c) < len(components[smallestIdx]) {
				smallestIdx = i
			}
			if len(c) > len(components[largestIdx]) {
				largestIdx = i
			}
		}
		if smallestIdx == largestIdx {
			break
		}
		w.carvePath(components[smallestIdx][0], components[largestIdx][0], passable)

		merged := append(components[smallestIdx], components[largestIdx]...)
		var rest [][]Position
		for i, c := range components {
			if i != smallestIdx && i != largestIdx {
				rest = append(rest, c)
			}
		}
		components = append(rest, merged)
	}
}

// carvePath carves a straight Manhattan corridor from a to b, clearing
// diggable obstacles and converting water to Empty terrain as it goes.
// It never touches a non-diggable occupant (buildings) or steps outside
// the map.
func (w *World) carvePath(a, b Position, passable func(Position) bool) {
	cur := a
	for cur.X != b.X {
		step := 1
		if b.X < cur.X {
			step = -1
		}
		cur = cur.Add(step, 0)
		w.clearForCorridor(cur)
	}
	for cur.Y != b.Y {
		step := 1
		if b.Y < cur.Y {
			step = -1
		}
		cur = cur.Add(0, step)
		w.clearForCorridor(cur)
	}
}

func (w *World) clearForCorridor(p Position) {
	if !w.InBounds(p) {
		return
	}
	if occ := w.GetThing(p); occ != nil {
		if worldtypes.IsDiggable(occ.Kind) {
			w.Remove(occ)
		}
		return // never clear a non-diggable occupant (building)
	}
	if w.TerrainAt(p) == worldtypes.TerrainWater {
		w.SetTerrain(p, worldtypes.TerrainEmpty)
	}
}

func neighbours8(p Position) []Position {
	return []Position{
		p.Add(1, 0), p.Add(-1, 0), p.Add(0, 1), p.Add(0, -1),
		p.Add(1, 1), p.Add(1, -1), p.Add(-1, 1), p.Add(-1, -1),
	}
}
