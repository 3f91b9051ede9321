package world

import (
	"github.com/1siamBot/tribal-sim/engine/spatial"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// spatialIndex is lazily initialized on first use so a World that never
// issues a spatial query (e.g. a unit test exercising only inventory
// logic) pays nothing for it. It is populated from the world's current
// entities immediately on creation — a caller that places things before
// ever querying (or rebuilding) must still see them on its first query,
// not an empty index that only catches up on the next RebuildSpatialIndex.
func (w *World) ensureSpatialIndex() *spatial.Index {
	if w.spatialIndex == nil {
		idx := spatial.NewIndex(w.width, w.height, worldtypes.SpatialDefaultBucket)
		idx.Rebuild(w.spatialSnapshot())
		w.spatialIndex = idx
	}
	return w.spatialIndex
}

// spatialSnapshot captures every on-grid thing's position, kind, and
// team as spatial.Entry values.
func (w *World) spatialSnapshot() []spatial.Entry {
	entries := make([]spatial.Entry, 0, len(w.things))
	for _, t := range w.things {
		if t.Pos.IsOffGrid() {
			continue
		}
		entries = append(entries, spatial.Entry{
			ID: uint64(t.ID), X: t.Pos.X, Y: t.Pos.Y,
			Kind: int(t.Kind), TeamID: t.TeamID,
		})
	}
	return entries
}

// RebuildSpatialIndex retunes the spatial index's bucket size and then
// snapshots every on-grid thing's position into it, so a resize is
// always followed by a full re-bucketing. The tick orchestrator calls
// this once after action dispatch (phase 2) so later phases — projectile
// resolution, structure auto-fire — see this tick's moves, per spec.md
// §5's ordering guarantee.
func (w *World) RebuildSpatialIndex() {
	idx := w.ensureSpatialIndex()
	idx.Retune(
		worldtypes.SpatialRetuneInterval,
		worldtypes.BucketHighWatermark,
		worldtypes.BucketLowWatermark,
		worldtypes.SpatialMinBucketSize,
	)
	idx.Rebuild(w.spatialSnapshot())
}

func (w *World) thingForEntry(e spatial.Entry) *Thing {
	t := w.things[ThingID(e.ID)]
	return t
}

// FindNearestThingSpatial returns the nearest thing of kind within
// Chebyshev distance <= radius of origin, or nil.
func (w *World) FindNearestThingSpatial(origin Position, kind worldtypes.ThingKind, radius int) *Thing {
	idx := w.ensureSpatialIndex()
	e, ok := idx.FindNearest(origin.X, origin.Y, radius, func(e spatial.Entry) bool {
		return worldtypes.ThingKind(e.Kind) == kind
	})
	if !ok {
		return nil
	}
	return w.thingForEntry(e)
}

// FindNearestEnemyAgentSpatial returns the nearest live agent not on
// team within radius of origin, or nil.
func (w *World) FindNearestEnemyAgentSpatial(origin Position, team, radius int) *Thing {
	idx := w.ensureSpatialIndex()
	e, ok := idx.FindNearest(origin.X, origin.Y, radius, func(e spatial.Entry) bool {
		if worldtypes.ThingKind(e.Kind) != worldtypes.KindAgent || e.TeamID == team || e.TeamID == NeutralTeam {
			return false
		}
		t := w.thingForEntry(e)
		return t != nil && t.HP > 0
	})
	if !ok {
		return nil
	}
	return w.thingForEntry(e)
}

// FindNearestFriendlyThingSpatial returns the nearest thing of kind
// owned by team within radius of origin, or nil.
func (w *World) FindNearestFriendlyThingSpatial(origin Position, team int, kind worldtypes.ThingKind, radius int) *Thing {
	idx := w.ensureSpatialIndex()
	e, ok := idx.FindNearest(origin.X, origin.Y, radius, func(e spatial.Entry) bool {
		return worldtypes.ThingKind(e.Kind) == kind && e.TeamID == team
	})
	if !ok {
		return nil
	}
	return w.thingForEntry(e)
}

// NearestEnemyAgentInRing returns the nearest live agent not on team and
// not neutral within Chebyshev distance [minRange, maxRange] of origin,
// tie-breaking on the lower AgentID, per spec.md §4.5's structure
// auto-fire targeting rule. It scans the spatial index's maxRange
// bucket window rather than every agent in the world.
func (w *World) NearestEnemyAgentInRing(origin Position, team, minRange, maxRange int) *Thing {
	idx := w.ensureSpatialIndex()
	entries := idx.CollectInRange(origin.X, origin.Y, maxRange, func(e spatial.Entry) bool {
		return worldtypes.ThingKind(e.Kind) == worldtypes.KindAgent && e.TeamID != team && e.TeamID != NeutralTeam
	})

	var best *Thing
	bestDist := maxRange + 1
	for _, e := range entries {
		d := ChebyshevDistance(origin, Position{X: e.X, Y: e.Y})
		if d < minRange || d > maxRange {
			continue
		}
		t := w.thingForEntry(e)
		if t == nil || t.HP <= 0 {
			continue
		}
		if d < bestDist || (d == bestDist && best != nil && t.AgentID < best.AgentID) {
			bestDist = d
			best = t
		}
	}
	return best
}

// CollectEnemiesInRangeSpatial returns every live enemy agent within
// radius of origin.
func (w *World) CollectEnemiesInRangeSpatial(origin Position, team, radius int) []*Thing {
	idx := w.ensureSpatialIndex()
	entries := idx.CollectInRange(origin.X, origin.Y, radius, func(e spatial.Entry) bool {
		return worldtypes.ThingKind(e.Kind) == worldtypes.KindAgent && e.TeamID != team && e.TeamID != NeutralTeam
	})
	return w.thingsForEntries(entries)
}

// CollectAlliesInRangeSpatial returns every live friendly agent within
// radius of origin (aura and garrison-capacity style queries).
func (w *World) CollectAlliesInRangeSpatial(origin Position, team, radius int) []*Thing {
	idx := w.ensureSpatialIndex()
	entries := idx.CollectInRange(origin.X, origin.Y, radius, func(e spatial.Entry) bool {
		return worldtypes.ThingKind(e.Kind) == worldtypes.KindAgent && e.TeamID == team
	})
	return w.thingsForEntries(entries)
}

// thingsForEntries resolves entries to their live Things, dropping any
// whose HP has reached 0 but is not yet cleaned up by this tick's death
// phase — callers document "live"/"alive" agent results and the index
// itself carries no HP field to filter on.
func (w *World) thingsForEntries(entries []spatial.Entry) []*Thing {
	out := make([]*Thing, 0, len(entries))
	for _, e := range entries {
		if t := w.thingForEntry(e); t != nil && t.HP > 0 {
			out = append(out, t)
		}
	}
	return out
}
