package combat

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Resolve executes one Attack action (verb=2, arg=direction) for agent.
func Resolve(w *world.World, agent *world.Thing, dir worldtypes.Orientation) {
	agent.Orientation = dir
	if !dir.IsCardinal() {
		return
	}
	if worldtypes.IsSiegeClass(agent.UnitClass) && agent.Packed {
		return
	}

	profile := worldtypes.ProfileFor(agent.UnitClass)
	rng := profile.Range
	if profile.Melee && agent.SpearCount > 0 {
		rng += worldtypes.SpearRangeBonus
	}

	if agent.UnitClass == worldtypes.ClassMonk {
		target, _ := scanLine(w, agent, dir, profile.MinRange, rng, anyAgent)
		if target != nil {
			resolveMonkAttack(w, agent, target)
		}
		return
	}

	target, dist := scanLine(w, agent, dir, profile.MinRange, rng, isHostileTo)
	if target == nil {
		return
	}

	consumedSpear := profile.Melee && dist > 1 && agent.SpearCount > 0
	if consumedSpear {
		agent.SpearCount--
	}

	bonus := civAttackMultiplier(w, agent)
	damage := int(float64(agent.AttackDamage) * bonus)
	siege := worldtypes.IsSiegeClass(agent.UnitClass)

	if profile.Melee {
		ApplyDamage(w, agent.TeamID, siege, target, damage)
		return
	}

	// Ranged: schedule a projectile so travel time is observable to
	// later ticks' observation windows, per spec.md §5's phase split.
	travel := dist
	if travel < 1 {
		travel = 1
	}
	w.Projectiles = append(w.Projectiles, world.Projectile{
		ID:             world.NewThingID(),
		SourceID:       agent.ID,
		TargetPos:      target.Pos,
		TicksRemaining: travel,
		Damage:         damage,
		AoERadius:      profile.AoERadius,
		SiegeAttacker:  siege,
		AttackerTeam:   agent.TeamID,
	})
}

// HasTarget reports whether an Attack action in dir would find a valid
// target for agent, without applying any damage. AttackMove uses this
// to decide between attacking and moving.
func HasTarget(w *world.World, agent *world.Thing, dir worldtypes.Orientation) bool {
	if !dir.IsCardinal() {
		return false
	}
	if worldtypes.IsSiegeClass(agent.UnitClass) && agent.Packed {
		return false
	}
	profile := worldtypes.ProfileFor(agent.UnitClass)
	rng := profile.Range
	if profile.Melee && agent.SpearCount > 0 {
		rng += worldtypes.SpearRangeBonus
	}
	filter := isHostileTo
	if agent.UnitClass == worldtypes.ClassMonk {
		filter = anyAgent
	}
	target, _ := scanLine(w, agent, dir, profile.MinRange, rng, filter)
	return target != nil
}

// scanLine walks from agent.Pos outward along dir from minRange to
// maxRange and returns the first occupant matching filter, and its
// distance from agent.
func scanLine(w *world.World, agent *world.Thing, dir worldtypes.Orientation, minRange, maxRange int, filter func(attacker, occ *world.Thing) bool) (*world.Thing, int) {
	dx, dy := dir.Unit()
	for d := minRange; d <= maxRange; d++ {
		p := agent.Pos.Add(dx*d, dy*d)
		if !w.InBounds(p) {
			break
		}
		occ := w.GetThing(p)
		if occ == nil {
			continue
		}
		if filter(agent, occ) {
			return occ, d
		}
	}
	return nil, 0
}

// isHostileTo reports whether occ is a valid hostile target for
// attacker: not same team, and not unowned terrain scenery. A door or
// wall is hostile to any non-owner.
func isHostileTo(attacker, occ *world.Thing) bool {
	if occ.TeamID == attacker.TeamID {
		return false
	}
	if occ.Kind == worldtypes.KindWall || occ.Kind == worldtypes.KindDoor {
		return true
	}
	return occ.TeamID != world.NeutralTeam
}

// anyAgent matches any live agent regardless of team, for monk targeting.
func anyAgent(attacker, occ *world.Thing) bool {
	return occ.IsAgent
}

func civAttackMultiplier(w *world.World, agent *world.Thing) float64 {
	if bonus, ok := w.TeamCivBonuses[agent.TeamID]; ok {
		return bonus.AttackMultiplier
	}
	return 1.0
}

// resolveMonkAttack implements the conversion/heal behavior of spec.md
// §4.5: converting hostiles costs faith, healing allies is free.
func resolveMonkAttack(w *world.World, monk *world.Thing, target *world.Thing) {
	if target.TeamID == monk.TeamID {
		target.HP += worldtypes.MonkHealAmount
		if target.HP > target.MaxHP {
			target.HP = target.MaxHP
		}
		return
	}
	if monk.Faith < worldtypes.MonkConversionFaithCost {
		return
	}
	monk.Faith -= worldtypes.MonkConversionFaithCost
	target.TeamID = monk.TeamID
	w.RefreshSpatialEntry(target)
}
