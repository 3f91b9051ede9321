// Package movement resolves Move actions: orientation update, terrain
// and elevation traversal, movement-debt accrual, the road double-step
// bonus, and cliff-fall damage, per spec.md §4.4.
package movement

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Result reports what happened to a single Move action, for callers that
// want to log or meter step outcomes.
type Result struct {
	Moved     bool
	DoubleStep bool
	CliffFall bool
}

// Resolve executes one Move action (verb=1, arg=direction) for agent.
func Resolve(w *world.World, agent *world.Thing, dir worldtypes.Orientation) Result {
	agent.Orientation = dir

	if !dir.IsCardinal() {
		return Result{}
	}

	if agent.MovementDebt >= 1.0 {
		agent.MovementDebt -= 1.0
		return Result{}
	}

	res := step(w, agent, dir)
	if !res.Moved {
		return res
	}

	origin := prevPosition(agent, dir)
	if w.TerrainAt(origin) == worldtypes.TerrainRoad && w.TerrainAt(agent.Pos) == worldtypes.TerrainRoad {
		second := step(w, agent, dir)
		res.DoubleStep = second.Moved
		res.CliffFall = res.CliffFall || second.CliffFall
	}
	return res
}

// prevPosition reconstructs the position the agent moved from, given its
// current (post-move) position and the direction it moved in.
func prevPosition(agent *world.Thing, dir worldtypes.Orientation) world.Position {
	dx, dy := dir.Unit()
	return agent.Pos.Add(-dx, -dy)
}

// step attempts a single cardinal hop in dir, applying debt accrual and
// cliff-fall damage. It never accrues debt on a failed move.
func step(w *world.World, agent *world.Thing, dir worldtypes.Orientation) Result {
	origin := agent.Pos
	dx, dy := dir.Unit()
	target := origin.Add(dx, dy)

	if !canEnter(w, agent, origin, target, dir) {
		return Result{}
	}

	originTerrain := w.TerrainAt(origin)
	traversal := w.CheckElevationTraversal(origin, target, dir)

	w.MoveThing(agent, target)

	if worldtypes.IsWaterUnit(agent.UnitClass) {
		// Water units are immune to terrain debt, per spec.md §4.4.
	} else {
		agent.MovementDebt += 1.0 - worldtypes.SpeedModifier(originTerrain)
	}

	res := Result{Moved: true}
	if traversal.CliffFall {
		agent.HP -= worldtypes.CliffFallDamage
		res.CliffFall = true
	}
	return res
}

// canEnter reports whether agent may move from origin to target: in
// bounds, unoccupied by a non-background entity, terrain-legal for the
// unit's kind, and elevation-legal.
func canEnter(w *world.World, agent *world.Thing, origin, target world.Position, dir worldtypes.Orientation) bool {
	if !w.InBounds(target) {
		return false
	}
	if occ := w.GetThing(target); occ != nil && occ != agent {
		return false
	}

	terrain := w.TerrainAt(target)
	if worldtypes.IsWaterUnit(agent.UnitClass) {
		if !worldtypes.IsWaterTerrain(terrain) {
			return false
		}
	} else if worldtypes.IsBlockedTerrain(terrain) {
		return false
	}

	if !w.CheckElevationTraversal(origin, target, dir).Allowed {
		return false
	}
	return true
}
