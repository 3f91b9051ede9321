// Package spatial implements the dynamic uniform-grid spatial index
// described in spec.md §4.3: lazily bucketized, auto-tuned by observed
// density, and defensive against corrupted (out-of-bounds or negative)
// positions — a query against one never raises or overflows.
//
// The index is deliberately decoupled from engine/world's Thing type
// (mirroring the teacher's engine/pathfind package, which never imports
// engine/core): it operates on the minimal Entry projection below, and
// engine/world wraps it with typed convenience queries.
package spatial

// Entry is the minimal projection of a positioned thing the index
// needs: an opaque ID, its position, and the two fields range queries
// filter on (kind and team).
type Entry struct {
	ID     uint64
	X, Y   int
	Kind   int
	TeamID int
}

type bucketKey struct{ bx, by int }

// Index is a uniform grid over Entry positions.
type Index struct {
	mapWidth, mapHeight int
	bucketSize          int

	buckets map[bucketKey][]Entry
	where   map[uint64]bucketKey

	ticksSinceRetune int
	lowWatermarkHits int
}

// NewIndex creates a spatial index over a mapWidth x mapHeight grid with
// an initial bucket edge length.
func NewIndex(mapWidth, mapHeight, initialBucketSize int) *Index {
	if initialBucketSize < 1 {
		initialBucketSize = 1
	}
	return &Index{
		mapWidth:   mapWidth,
		mapHeight:  mapHeight,
		bucketSize: initialBucketSize,
		buckets:    make(map[bucketKey][]Entry),
		where:      make(map[uint64]bucketKey),
	}
}

// inBounds reports whether (x, y) is a valid, indexable position. This
// is the "first-class not-in-index state" spec.md §9 requires for
// corrupted/negative positions — entries failing this are simply never
// inserted and never matched.
func (idx *Index) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < idx.mapWidth && y < idx.mapHeight
}

func (idx *Index) keyFor(x, y int) bucketKey {
	return bucketKey{bx: x / idx.bucketSize, by: y / idx.bucketSize}
}

// Rebuild clears and repopulates the index from a fresh entry snapshot.
// Entries with out-of-bounds or negative positions are silently
// skipped — they are "not on grid" per spec.md §3 and must never be
// queryable.
func (idx *Index) Rebuild(entries []Entry) {
	for k := range idx.buckets {
		delete(idx.buckets, k)
	}
	for k := range idx.where {
		delete(idx.where, k)
	}
	for _, e := range entries {
		if !idx.inBounds(e.X, e.Y) {
			continue
		}
		key := idx.keyFor(e.X, e.Y)
		idx.buckets[key] = append(idx.buckets[key], e)
		idx.where[e.ID] = key
	}
}

// Upsert inserts or relocates a single entry, per spec.md §9's
// "incrementally maintained after any position change" option: callers
// that mutate a thing's position between full-tick Rebuild calls (e.g.
// action dispatch, which resolves attacks against positions moved
// earlier in the same phase) use this to keep queries live instead of
// waiting for the next Rebuild. An out-of-bounds position removes any
// existing entry without inserting a new one.
func (idx *Index) Upsert(e Entry) {
	idx.removeID(e.ID)
	if !idx.inBounds(e.X, e.Y) {
		return
	}
	key := idx.keyFor(e.X, e.Y)
	idx.buckets[key] = append(idx.buckets[key], e)
	idx.where[e.ID] = key
}

// Remove deletes the entry with the given id, if present.
func (idx *Index) Remove(id uint64) {
	idx.removeID(id)
}

func (idx *Index) removeID(id uint64) {
	key, ok := idx.where[id]
	if !ok {
		return
	}
	list := idx.buckets[key]
	for i, e := range list {
		if e.ID == id {
			idx.buckets[key] = append(list[:i], list[i+1:]...)
			if len(idx.buckets[key]) == 0 {
				delete(idx.buckets, key)
			}
			break
		}
	}
	delete(idx.where, id)
}

// BucketCount returns the number of non-empty buckets, used by Retune.
func (idx *Index) BucketCount() int { return len(idx.buckets) }

// BucketSize returns the current bucket edge length in tiles.
func (idx *Index) BucketSize() int { return idx.bucketSize }
