// Package combat resolves Attack actions, structure auto-fire, and
// scheduled projectile impacts, per spec.md §4.5. It changes HP (damage,
// and a Monk's heal) but never kills; the tick orchestrator's
// death-enforcement phase is solely
// responsible for turning hp<=0 into a kill, matching spec.md §5's
// phase split between action dispatch and death cleanup.
package combat

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// auraMitigate halves incoming damage for each friendly tank aura within
// range of target, per spec.md §4.5. Auras do not stack multiplicatively:
// at most one halving is applied regardless of how many auras overlap.
func auraMitigate(w *world.World, target *world.Thing, damage int) int {
	if !underAura(w, target) {
		return damage
	}
	return (damage + 1) / 2
}

// maxAuraRadius bounds the spatial-index query in underAura; it must
// cover the largest radius any IsTankAura class projects (Knight, 2).
const maxAuraRadius = 2

// underAura reports whether any friendly (same-team) tank aura covers
// target's position. It collects candidate allies from the spatial
// index's maxAuraRadius window (spec.md §4.3) rather than scanning
// every agent in the world.
func underAura(w *world.World, target *world.Thing) bool {
	for _, ally := range w.CollectAlliesInRangeSpatial(target.Pos, target.TeamID, maxAuraRadius) {
		if ally == target {
			continue
		}
		radius, ok := worldtypes.IsTankAura(ally.UnitClass)
		if !ok {
			continue
		}
		if world.ChebyshevDistance(ally.Pos, target.Pos) <= radius {
			return true
		}
	}
	return false
}

// ApplyDamage applies baseDamage to target, after siege multiplier (the
// caller determines whether it applies) and aura mitigation. It never
// kills the target directly — it only reduces HP, clamped at 0, leaving
// death enforcement to the tick orchestrator's later phase.
func ApplyDamage(w *world.World, attackerTeam int, siege bool, target *world.Thing, baseDamage int) {
	damage := baseDamage
	if siege && worldtypes.IsBuildingOrWall(target.Kind) {
		damage *= worldtypes.SiegeDamageMultiplier
	}
	damage = auraMitigate(w, target, damage)
	target.HP -= damage
	if target.HP < 0 {
		target.HP = 0
	}
}
