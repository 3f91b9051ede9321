// Package inventory implements the stockpile accounting rules of
// spec.md §4.8: the sole gather-gain entry point and TownCenter/Altar
// deposit conversion.
package inventory

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// AddToStockpile is the sole entry point for gather gains: it scales
// amount by the team's gatherRateMultiplier and rounds half-up before
// crediting the team stockpile, per spec.md §4.8.
func AddToStockpile(w *world.World, team int, resource worldtypes.StockpileResource, amount int) {
	bonus := w.TeamCivBonuses[team].GatherRateMultiplier
	scaled := worldtypes.RoundHalfUp(float64(amount) * bonus)
	stock := w.TeamStockpiles[team]
	if stock == nil {
		stock = make(map[worldtypes.StockpileResource]int)
		w.TeamStockpiles[team] = stock
	}
	stock[resource] += scaled
}

// itemToResource maps a carried ItemKind to the stockpile resource it
// converts into on deposit.
func itemToResource(item worldtypes.ItemKind) (worldtypes.StockpileResource, bool) {
	switch item {
	case worldtypes.ItemWood:
		return worldtypes.ResWood, true
	case worldtypes.ItemStone:
		return worldtypes.ResStone, true
	case worldtypes.ItemGold:
		return worldtypes.ResGold, true
	case worldtypes.ItemWheat, worldtypes.ItemFish, worldtypes.ItemBerries, worldtypes.ItemMeat:
		return worldtypes.ResFood, true
	default:
		return 0, false
	}
}

// Deposit converts every carried wood/stone/gold/food item agent holds
// into team stockpile units at the owned building's cell, through
// AddToStockpile, per spec.md §4.8's Deposit law: stockpile +=
// carried x gatherRateMultiplier.
func Deposit(w *world.World, agent, building *world.Thing) {
	if building.TeamID != agent.TeamID {
		return
	}
	for item, count := range agent.Inventory {
		resource, ok := itemToResource(item)
		if !ok || count == 0 {
			continue
		}
		AddToStockpile(w, agent.TeamID, resource, count)
		agent.SetInv(item, 0)
	}
}
