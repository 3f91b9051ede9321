package building

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Repair executes a Villager USE against an adjacent owned building at
// hp < maxHp, per spec.md §4.9. Enemy buildings and non-Villagers cannot
// repair; it records the builder's action against the tick's
// multi-builder tally before computing the bonus, so each builder's k is
// its own arrival count on this target this tick (the first builder
// gets k=1, the second k=2, ...). Gains already applied for earlier
// builders in the same tick are not revised when later builders arrive.
func Repair(w *world.World, agent, target *world.Thing) bool {
	if agent.UnitClass != worldtypes.ClassVillager {
		return false
	}
	if target.TeamID != agent.TeamID {
		return false
	}
	if target.HP >= target.MaxHP {
		return false
	}

	k := w.RecordBuilderAction(target.ID)
	bonus := worldtypes.BuilderBonus(k)

	var gain int
	if !target.Constructed {
		gain = worldtypes.RoundHalfUp(float64(worldtypes.ConstructionHpPerAction) * bonus)
	} else {
		gain = worldtypes.RoundHalfUp(float64(worldtypes.RepairHpPerAction) * bonus)
	}

	target.HP += gain
	if target.HP >= target.MaxHP {
		target.HP = target.MaxHP
		target.Constructed = true
	}
	return true
}
