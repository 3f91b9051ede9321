// Package market implements the per-team dynamic pricing rules of
// spec.md §4.10.
package market

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Sell executes a USE against an owned Market by an agent carrying
// resource: it converts every carried unit of resource into gold at the
// current price, lowers the price, and sets a cooldown.
func Sell(w *world.World, agent, marketBuilding *world.Thing, resource worldtypes.StockpileResource) bool {
	if marketBuilding.TeamID != agent.TeamID || marketBuilding.Cooldown > 0 {
		return false
	}
	carried := carriedAmount(agent, resource)
	if carried <= 0 {
		return false
	}

	prices := w.TeamMarketPrices[agent.TeamID]
	price := prices[resource]
	stock := w.TeamStockpiles[agent.TeamID]
	stock[worldtypes.ResGold] += carried * price / 100
	clearCarried(agent, resource)

	newPrice := price - worldtypes.MarketSellPriceDecrease
	prices[resource] = worldtypes.Clamp(newPrice, worldtypes.MarketMinPrice, worldtypes.MarketMaxPrice)
	marketBuilding.Cooldown = worldtypes.MarketCooldownTicks
	return true
}

// Buy executes a USE against an owned Market by an agent carrying gold:
// it converts all carried gold into resource at the current price,
// raises the price, and sets a cooldown.
func Buy(w *world.World, agent, marketBuilding *world.Thing, resource worldtypes.StockpileResource) bool {
	if marketBuilding.TeamID != agent.TeamID || marketBuilding.Cooldown > 0 {
		return false
	}
	gold := agent.GetInv(worldtypes.ItemGold)
	if gold <= 0 {
		return false
	}

	prices := w.TeamMarketPrices[agent.TeamID]
	price := prices[resource]
	if price <= 0 {
		return false
	}
	bought := gold * 100 / price
	agent.SetInv(worldtypes.ItemGold, 0)
	creditPurchase(agent, resource, bought)

	newPrice := price + worldtypes.MarketBuyPriceIncrease
	prices[resource] = worldtypes.Clamp(newPrice, worldtypes.MarketMinPrice, worldtypes.MarketMaxPrice)
	marketBuilding.Cooldown = worldtypes.MarketCooldownTicks
	return true
}

// foodItems lists every ItemKind that aggregates into the ResFood
// stockpile resource, per spec.md §4.8's food-item classification.
var foodItems = [...]worldtypes.ItemKind{
	worldtypes.ItemWheat, worldtypes.ItemFish, worldtypes.ItemBerries, worldtypes.ItemMeat,
}

// carriedAmount sums an agent's carried units of a tradable resource.
// ResFood aggregates across every food item kind; ResWood/ResStone map
// to their single matching item kind directly.
func carriedAmount(agent *world.Thing, resource worldtypes.StockpileResource) int {
	switch resource {
	case worldtypes.ResWood:
		return agent.GetInv(worldtypes.ItemWood)
	case worldtypes.ResStone:
		return agent.GetInv(worldtypes.ItemStone)
	case worldtypes.ResFood:
		total := 0
		for _, item := range foodItems {
			total += agent.GetInv(item)
		}
		return total
	default:
		return 0
	}
}

// clearCarried zeroes an agent's carried units of resource after a sale.
func clearCarried(agent *world.Thing, resource worldtypes.StockpileResource) {
	switch resource {
	case worldtypes.ResWood:
		agent.SetInv(worldtypes.ItemWood, 0)
	case worldtypes.ResStone:
		agent.SetInv(worldtypes.ItemStone, 0)
	case worldtypes.ResFood:
		for _, item := range foodItems {
			agent.SetInv(item, 0)
		}
	}
}

// creditPurchase credits a bought amount of resource to the agent's
// inventory. Bought food is credited as generic Wheat, the canonical
// food item for a market purchase.
func creditPurchase(agent *world.Thing, resource worldtypes.StockpileResource, amount int) {
	switch resource {
	case worldtypes.ResWood:
		agent.AddToInv(worldtypes.ItemWood, amount)
	case worldtypes.ResStone:
		agent.AddToInv(worldtypes.ItemStone, amount)
	case worldtypes.ResFood:
		agent.AddToInv(worldtypes.ItemWheat, amount)
	}
}

// TickDecay runs the tick's market-decay step (spec.md §5 phase 6):
// every price drifts one step toward MarketBasePrice, and every
// building's market cooldown counts down.
func TickDecay(w *world.World) {
	for team, prices := range w.TeamMarketPrices {
		for _, r := range worldtypes.TradableResources {
			price := prices[r]
			switch {
			case price > worldtypes.MarketBasePrice:
				price -= worldtypes.MarketPriceDecayRate
				if price < worldtypes.MarketBasePrice {
					price = worldtypes.MarketBasePrice
				}
			case price < worldtypes.MarketBasePrice:
				price += worldtypes.MarketPriceDecayRate
				if price > worldtypes.MarketBasePrice {
					price = worldtypes.MarketBasePrice
				}
			}
			prices[r] = price
		}
		w.TeamMarketPrices[team] = prices
	}
	for _, t := range w.AllThings() {
		if t.Kind == worldtypes.KindMarket && t.Cooldown > 0 {
			t.Cooldown--
		}
	}
}
