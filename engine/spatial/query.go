package spatial

// chebyshev returns the Chebyshev distance between two points, the
// metric every range query in spec.md §4.3 uses.
func chebyshev(ax, ay, bx, by int) int {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// bucketsInRadius visits every bucket key that could contain a point
// within radius of (x, y), clamping to the grid so corner queries with
// very large radii never allocate an unbounded bucket range.
func (idx *Index) bucketsInRadius(x, y, radius int, visit func(bucketKey)) {
	if !idx.inBounds(x, y) {
		return
	}
	if radius < 0 {
		radius = 0
	}
	if radius > idx.mapWidth+idx.mapHeight {
		radius = idx.mapWidth + idx.mapHeight
	}
	minBX := max(x-radius, 0) / idx.bucketSize
	maxBX := min(x+radius, idx.mapWidth-1) / idx.bucketSize
	minBY := max(y-radius, 0) / idx.bucketSize
	maxBY := min(y+radius, idx.mapHeight-1) / idx.bucketSize

	for bx := minBX; bx <= maxBX; bx++ {
		for by := minBY; by <= maxBY; by++ {
			visit(bucketKey{bx: bx, by: by})
		}
	}
}

// FindNearest returns the nearest entry matching filter within
// Chebyshev distance <= radius of (ox, oy), or false if none match.
// Entries at invalid positions are never indexed in the first place, so
// they are automatically excluded here.
func (idx *Index) FindNearest(ox, oy, radius int, filter func(Entry) bool) (Entry, bool) {
	if !idx.inBounds(ox, oy) {
		return Entry{}, false
	}
	var best Entry
	bestDist := radius + 1
	found := false
	idx.bucketsInRadius(ox, oy, radius, func(k bucketKey) {
		for _, e := range idx.buckets[k] {
			if filter != nil && !filter(e) {
				continue
			}
			d := chebyshev(ox, oy, e.X, e.Y)
			if d > radius {
				continue
			}
			if d < bestDist || (d == bestDist && found && e.ID < best.ID) {
				bestDist = d
				best = e
				found = true
			}
		}
	})
	return best, found
}

// CollectInRange returns every entry matching filter within Chebyshev
// distance <= radius of (ox, oy).
func (idx *Index) CollectInRange(ox, oy, radius int, filter func(Entry) bool) []Entry {
	if !idx.inBounds(ox, oy) {
		return nil
	}
	var out []Entry
	idx.bucketsInRadius(ox, oy, radius, func(k bucketKey) {
		for _, e := range idx.buckets[k] {
			if filter != nil && !filter(e) {
				continue
			}
			if chebyshev(ox, oy, e.X, e.Y) <= radius {
				out = append(out, e)
			}
		}
	})
	return out
}
