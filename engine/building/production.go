package building

import "github.com/1siamBot/tribal-sim/engine/world"
import "github.com/1siamBot/tribal-sim/engine/worldtypes"

// QueueMax is the fixed maximum queue depth per building, per spec.md
// §4.9's "embedded queue of fixed max size".
const QueueMax = worldtypes.QueueMax

// Queue attempts to enqueue unitClass in building's production queue,
// subtracting its cost immediately; fails (leaving state unchanged) if
// the queue is full or resources are insufficient, per spec.md §4.9.
func Queue(w *world.World, building *world.Thing, unitClass worldtypes.UnitClass) bool {
	if len(building.ProductionQueue) >= QueueMax {
		return false
	}
	entry, ok := UnitCatalog[unitClass]
	if !ok {
		return false
	}

	bonus := w.TeamCivBonuses[building.TeamID]
	woodCost := worldtypes.RoundHalfUp(float64(entry.WoodCost) * bonus.WoodCostMultiplier)
	foodCost := worldtypes.RoundHalfUp(float64(entry.FoodCost) * bonus.FoodCostMultiplier)
	goldCost := entry.GoldCost

	stock := w.TeamStockpiles[building.TeamID]
	if stock[worldtypes.ResWood] < woodCost || stock[worldtypes.ResFood] < foodCost || stock[worldtypes.ResGold] < goldCost {
		return false
	}
	stock[worldtypes.ResWood] -= woodCost
	stock[worldtypes.ResFood] -= foodCost
	stock[worldtypes.ResGold] -= goldCost

	building.ProductionQueue = append(building.ProductionQueue, world.ProductionEntry{
		UnitClass:      unitClass,
		RemainingSteps: entry.TrainTime,
		TrainTime:      entry.TrainTime,
		CostPaid: map[worldtypes.StockpileResource]int{
			worldtypes.ResWood: woodCost,
			worldtypes.ResFood: foodCost,
			worldtypes.ResGold: goldCost,
		},
	})
	return true
}

// TickProduction runs the tick's production phase (spec.md §5 phase 5):
// every building's front queue entry decrements by 1, floored at 0
// ("ready").
func TickProduction(w *world.World) {
	for _, t := range w.AllThings() {
		if len(t.ProductionQueue) == 0 {
			continue
		}
		front := &t.ProductionQueue[0]
		if front.RemainingSteps > 0 {
			front.RemainingSteps--
		}
	}
}

// ConvertVillager executes a Villager USE against a friendly building
// whose front production entry is ready: the villager is converted into
// the queued unit class, stats re-applied via civ multipliers, position
// preserved, and the entry removed. If the building has a rally point,
// the new unit's rallyTarget is set to it. Population is unaffected by
// conversion, per spec.md §4.9.
func ConvertVillager(w *world.World, agent, building *world.Thing) bool {
	if agent.UnitClass != worldtypes.ClassVillager || building.TeamID != agent.TeamID {
		return false
	}
	if len(building.ProductionQueue) == 0 || building.ProductionQueue[0].RemainingSteps > 0 {
		return false
	}

	front := building.ProductionQueue[0]
	entry := UnitCatalog[front.UnitClass]
	bonus := w.TeamCivBonuses[agent.TeamID]

	agent.UnitClass = front.UnitClass
	agent.MaxHP = worldtypes.RoundHalfUp(float64(entry.BaseMaxHP) * bonus.HPMultiplier)
	agent.HP = agent.MaxHP
	agent.AttackDamage = worldtypes.RoundHalfUp(float64(entry.BaseAttack) * bonus.AttackMultiplier)

	if building.Rallied {
		agent.RallyTarget = building.RallyTarget
	}

	building.ProductionQueue = building.ProductionQueue[1:]
	return true
}
