package combat

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// RechargeFaith runs the tick's monk faith recharge step (spec.md §5
// phase 6): every living Monk's faith rises by MonkFaithRechargeRate,
// capped at MonkMaxFaith.
func RechargeFaith(w *world.World) {
	for _, a := range w.Agents() {
		if !a.IsAlive() || a.UnitClass != worldtypes.ClassMonk {
			continue
		}
		a.Faith += worldtypes.MonkFaithRechargeRate
		if a.Faith > worldtypes.MonkMaxFaith {
			a.Faith = worldtypes.MonkMaxFaith
		}
	}
}
