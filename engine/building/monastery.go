package building

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// TickMonasteryGold runs the tick's monastery-income step (part of
// spec.md §5 phase 6): every MonasteryRelicGoldInterval ticks, each
// owned Monastery adds garrisonedRelics gold to its team's stockpile.
func TickMonasteryGold(w *world.World, step int) {
	if step%worldtypes.MonasteryRelicGoldInterval != 0 {
		return
	}
	for _, t := range w.ThingsByKind(worldtypes.KindMonastery) {
		if !t.Constructed || t.GarrisonedRelics <= 0 {
			continue
		}
		stock := w.TeamStockpiles[t.TeamID]
		if stock == nil {
			stock = make(map[worldtypes.StockpileResource]int)
			w.TeamStockpiles[t.TeamID] = stock
		}
		stock[worldtypes.ResGold] += t.GarrisonedRelics
	}
}
