package combat

import (
	"sort"

	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// autoFireRange is the base scan radius for structure auto-fire before
// tech modifiers. MurderHoles only lowers the *minimum* range (to 0);
// the outer radius is fixed.
const (
	autoFireRange    = 6
	autoFireMinRange = 1
)

// ResolveAutoFire runs the tick's structure auto-fire phase (spec.md §5
// phase 4): every friendly auto-fire structure scans for the nearest
// enemy in range and fires, ordered by the structure's creation order,
// and within one structure's fire by target agentId, per spec.md §4.5.
func ResolveAutoFire(w *world.World) {
	var structures []*world.Thing
	for _, t := range w.AllThings() {
		if worldtypes.IsAutoFireStructure(t.Kind) && t.Constructed && t.IsAlive() {
			structures = append(structures, t)
		}
	}
	sort.Slice(structures, func(i, j int) bool {
		return structures[i].CreationOrder < structures[j].CreationOrder
	})

	for _, s := range structures {
		fireFrom(w, s)
	}
}

func fireFrom(w *world.World, s *world.Thing) {
	techs := w.TeamUniversityTechs[s.TeamID]
	minRange := autoFireMinRange
	if techs["MurderHoles"] {
		minRange = 0
	}

	target := nearestEnemyInRange(w, s, minRange, autoFireRange)
	if target == nil {
		return
	}

	damage := s.AttackDamage
	if techs["Arrowslits"] {
		damage += worldtypes.ArrowslitsBonusDamage
	}
	// Ballistics reads "archer-class" off the target, not the firing
	// structure: towers never carry a unit class, so a firer-side check
	// would make this tech permanently dead. Read as "extra damage
	// against archer-class targets."
	if techs["Ballistics"] && target.UnitClass == worldtypes.ClassArcher {
		damage += worldtypes.BallisticsBonusDamage
	}

	ApplyDamage(w, s.TeamID, false, target, damage)

	// Each garrisoned agent fires one bonus arrow at the same target.
	for range s.GarrisonedUnits {
		ApplyDamage(w, s.TeamID, false, target, damage)
	}
}

// nearestEnemyInRange routes the structure's target scan through the
// spatial index (spec.md §4.3), tie-breaking on lower agentId per
// spec.md §4.5, instead of scanning every agent in the world.
func nearestEnemyInRange(w *world.World, s *world.Thing, minRange, maxRange int) *world.Thing {
	return w.NearestEnemyAgentInRing(s.Pos, s.TeamID, minRange, maxRange)
}
