package tick

import (
	"github.com/1siamBot/tribal-sim/engine/building"
	"github.com/1siamBot/tribal-sim/engine/combat"
	"github.com/1siamBot/tribal-sim/engine/inventory"
	"github.com/1siamBot/tribal-sim/engine/market"
	"github.com/1siamBot/tribal-sim/engine/movement"
	"github.com/1siamBot/tribal-sim/engine/victory"
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Verb is the decoded action class, the high digit of the single-byte
// encoding spec.md §6 describes.
const (
	VerbNoop = iota
	VerbMove
	VerbAttack
	VerbUse
	VerbRotate
	VerbUnpackPack
	VerbPlaceLantern
	VerbControlGroup
	VerbBuild
	VerbAttackMove
	VerbSetRally
	// VerbQueueUnit is an engine-defined extra (spec.md §6): arg indexes
	// into the faced building's building.ProducibleUnits list rather than
	// a direction, since queueing acts on whatever the agent already
	// faces.
	VerbQueueUnit
)

// decodeAction splits a single action byte into (verb, arg) per spec.md
// §6: verb = a / ActionArgumentCount, arg = a mod ActionArgumentCount.
func decodeAction(a byte) (verb, arg int) {
	v := int(a) / worldtypes.ActionArgumentCount
	r := int(a) % worldtypes.ActionArgumentCount
	return v, r
}

// orientationArg maps an arg in [0,7] to its Orientation, or false for
// an out-of-range arg (§7's invalid-action-becomes-noop rule).
func orientationArg(arg int) (worldtypes.Orientation, bool) {
	if arg < 0 || arg > int(worldtypes.OrientSW) {
		return 0, false
	}
	return worldtypes.Orientation(arg), true
}

// dispatchAction decodes and executes one agent's action for this tick,
// per spec.md §5 phase 2. An unrecognized verb or out-of-range arg is a
// silent Noop.
func dispatchAction(w *world.World, agent *world.Thing, a byte) {
	verb, arg := decodeAction(a)
	switch verb {
	case VerbNoop:
	case VerbMove:
		if dir, ok := orientationArg(arg); ok {
			movement.Resolve(w, agent, dir)
		}
	case VerbAttack:
		if dir, ok := orientationArg(arg); ok {
			combat.Resolve(w, agent, dir)
		}
	case VerbUse:
		if dir, ok := orientationArg(arg); ok {
			dispatchUse(w, agent, dir)
		}
	case VerbRotate:
		if dir, ok := orientationArg(arg); ok {
			agent.Orientation = dir
		}
	case VerbUnpackPack:
		if worldtypes.IsSiegeClass(agent.UnitClass) {
			agent.Packed = !agent.Packed
		}
	case VerbPlaceLantern:
		if dir, ok := orientationArg(arg); ok {
			dispatchPlaceLantern(w, agent, dir)
		}
	case VerbControlGroup:
		victory.RegisterKing(w, agent)
	case VerbBuild:
		building.Build(w, agent, arg)
	case VerbAttackMove:
		if dir, ok := orientationArg(arg); ok {
			dispatchAttackMove(w, agent, dir)
		}
	case VerbSetRally:
		if dir, ok := orientationArg(arg); ok {
			dispatchSetRally(w, agent, dir)
		}
	case VerbQueueUnit:
		dispatchQueueUnit(w, agent, arg)
	}
}

// facedCell returns the cell agent faces, and whether dir was a cardinal
// orientation landing in bounds.
func facedCell(w *world.World, agent *world.Thing, dir worldtypes.Orientation) (world.Position, bool) {
	agent.Orientation = dir
	if !dir.IsCardinal() {
		return world.Position{}, false
	}
	dx, dy := dir.Unit()
	target := agent.Pos.Add(dx, dy)
	if !w.InBounds(target) {
		return world.Position{}, false
	}
	return target, true
}

// facedCellCurrent returns the cell agent already faces, without
// changing its orientation. QueueUnit's arg selects a unit class rather
// than a direction, so it acts on whatever the agent last faced.
func facedCellCurrent(w *world.World, agent *world.Thing) (world.Position, bool) {
	if !agent.Orientation.IsCardinal() {
		return world.Position{}, false
	}
	dx, dy := agent.Orientation.Unit()
	target := agent.Pos.Add(dx, dy)
	if !w.InBounds(target) {
		return world.Position{}, false
	}
	return target, true
}

// dispatchQueueUnit implements the engine-defined QueueUnit verb
// (spec.md §6, §4.9): arg selects a unit class from the faced, owned
// production building's building.ProducibleUnits list and enqueues it.
func dispatchQueueUnit(w *world.World, agent *world.Thing, arg int) {
	target, ok := facedCellCurrent(w, agent)
	if !ok {
		return
	}
	occ := w.GetThing(target)
	if occ == nil || occ.TeamID != agent.TeamID {
		return
	}
	unitClass, ok := building.UnitClassForQueueArg(occ.Kind, arg)
	if !ok {
		return
	}
	building.Queue(w, occ, unitClass)
}

// dispatchUse implements the heavily overloaded USE verb of spec.md
// §4.9/§4.10: it dispatches on the faced cell's occupant kind and
// ownership rather than an explicit sub-verb, since the action byte
// carries no further argument space.
func dispatchUse(w *world.World, agent *world.Thing, dir worldtypes.Orientation) {
	target, ok := facedCell(w, agent, dir)
	if !ok {
		return
	}

	if occ := w.GetThing(target); occ != nil {
		if worldtypes.IsBuildingOrWall(occ.Kind) && occ.TeamID == agent.TeamID {
			useOnFriendlyBuilding(w, agent, occ)
			return
		}
		inventory.Harvest(w, agent, occ)
		return
	}
	if bg := w.GetBackgroundThing(target); bg != nil {
		useOnBackground(w, agent, bg)
	}
}

// useOnFriendlyBuilding tries, in priority order: market trade (Market),
// deposit (TownCenter/Altar), repair/construction progress, production
// conversion, garrison.
func useOnFriendlyBuilding(w *world.World, agent, occ *world.Thing) {
	switch occ.Kind {
	case worldtypes.KindMarket:
		useMarket(w, agent, occ)
		return
	case worldtypes.KindTownCenter, worldtypes.KindAltar:
		if hasDepositable(agent) {
			inventory.Deposit(w, agent, occ)
			return
		}
	case worldtypes.KindMonastery:
		if agent.RelicCount > 0 {
			building.GarrisonRelic(agent, occ)
			return
		}
	}
	if building.Repair(w, agent, occ) {
		return
	}
	if building.ConvertVillager(w, agent, occ) {
		return
	}
	building.Garrison(w, agent, occ)
}

func hasDepositable(agent *world.Thing) bool {
	for _, item := range [...]worldtypes.ItemKind{
		worldtypes.ItemWood, worldtypes.ItemStone, worldtypes.ItemGold,
		worldtypes.ItemWheat, worldtypes.ItemFish, worldtypes.ItemBerries, worldtypes.ItemMeat,
	} {
		if agent.GetInv(item) > 0 {
			return true
		}
	}
	return false
}

// useMarket picks Buy vs. Sell from what the agent is carrying: gold
// buys, any other tradable resource sells. Ties (carrying both) favor
// selling off the non-gold goods first.
func useMarket(w *world.World, agent, marketBuilding *world.Thing) {
	if res, ok := sellableResource(agent); ok {
		market.Sell(w, agent, marketBuilding, res)
		return
	}
	if agent.GetInv(worldtypes.ItemGold) > 0 {
		market.Buy(w, agent, marketBuilding, worldtypes.ResWood)
	}
}

func sellableResource(agent *world.Thing) (worldtypes.StockpileResource, bool) {
	if agent.GetInv(worldtypes.ItemWood) > 0 {
		return worldtypes.ResWood, true
	}
	if agent.GetInv(worldtypes.ItemStone) > 0 {
		return worldtypes.ResStone, true
	}
	if agent.GetInv(worldtypes.ItemWheat) > 0 || agent.GetInv(worldtypes.ItemFish) > 0 ||
		agent.GetInv(worldtypes.ItemBerries) > 0 || agent.GetInv(worldtypes.ItemMeat) > 0 {
		return worldtypes.ResFood, true
	}
	return 0, false
}

// useOnBackground handles USE against a background-layer occupant:
// harvesting a Corpse, or picking up a dropped Lantern/Relic.
func useOnBackground(w *world.World, agent, bg *world.Thing) {
	switch bg.Kind {
	case worldtypes.KindCorpse:
		inventory.Harvest(w, agent, bg)
	case worldtypes.KindLantern:
		agent.LanternCount++
		w.Remove(bg)
	case worldtypes.KindRelic:
		agent.RelicCount++
		w.Remove(bg)
	}
}

// dispatchPlaceLantern spends one carried lantern to place a standalone
// Lantern at the faced cell, per the engine-defined PlaceLantern verb.
func dispatchPlaceLantern(w *world.World, agent *world.Thing, dir worldtypes.Orientation) {
	if agent.LanternCount <= 0 {
		return
	}
	target, ok := facedCell(w, agent, dir)
	if !ok || w.GetBackgroundThing(target) != nil {
		return
	}
	lantern := world.NewThing(worldtypes.KindLantern)
	lantern.TeamID = agent.TeamID
	w.MoveThing(lantern, target)
	w.Add(lantern)
	agent.LanternCount--
}

// dispatchAttackMove implements the engine-defined AttackMove verb:
// attack if a valid target is in range along dir, otherwise move.
func dispatchAttackMove(w *world.World, agent *world.Thing, dir worldtypes.Orientation) {
	if combat.HasTarget(w, agent, dir) {
		combat.Resolve(w, agent, dir)
		return
	}
	movement.Resolve(w, agent, dir)
}

// dispatchSetRally implements SetRally (verb=10) against the faced
// adjacent owned building.
func dispatchSetRally(w *world.World, agent *world.Thing, dir worldtypes.Orientation) {
	target, ok := facedCell(w, agent, dir)
	if !ok {
		return
	}
	occ := w.GetThing(target)
	if occ == nil {
		return
	}
	building.SetRally(agent, occ)
}
