package building

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Build executes one Build action (verb=8, arg=buildIndex) for agent.
// It places the building at the cell the agent faces, after consuming
// team resources per the civ's cost multipliers; insufficient resources
// leave state unchanged.
func Build(w *world.World, agent *world.Thing, buildIndex int) {
	if buildIndex < 0 || buildIndex >= len(Catalog) {
		return
	}
	entry := Catalog[buildIndex]

	dx, dy := agent.Orientation.Unit()
	target := agent.Pos.Add(dx, dy)
	if !w.InBounds(target) || w.GetThing(target) != nil {
		return
	}

	bonus := w.TeamCivBonuses[agent.TeamID]
	woodCost := worldtypes.RoundHalfUp(float64(entry.WoodCost) * bonus.WoodCostMultiplier)
	foodCost := worldtypes.RoundHalfUp(float64(entry.FoodCost) * bonus.FoodCostMultiplier)
	stoneCost := entry.StoneCost

	stock := w.TeamStockpiles[agent.TeamID]
	if stock[worldtypes.ResWood] < woodCost || stock[worldtypes.ResStone] < stoneCost || stock[worldtypes.ResFood] < foodCost {
		return
	}
	stock[worldtypes.ResWood] -= woodCost
	stock[worldtypes.ResStone] -= stoneCost
	stock[worldtypes.ResFood] -= foodCost

	b := world.NewThing(entry.Kind)
	b.TeamID = agent.TeamID
	b.HP = 1
	b.MaxHP = worldtypes.RoundHalfUp(float64(entry.BaseMaxHP) * bonus.BuildingHPMultiplier)
	b.AttackDamage = entry.BaseAttack
	b.Constructed = false
	b.RallyTarget = world.OffGrid
	w.MoveThing(b, target)
	w.Add(b)
}
