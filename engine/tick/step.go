package tick

import (
	"github.com/1siamBot/tribal-sim/engine/building"
	"github.com/1siamBot/tribal-sim/engine/combat"
	"github.com/1siamBot/tribal-sim/engine/death"
	"github.com/1siamBot/tribal-sim/engine/market"
	"github.com/1siamBot/tribal-sim/engine/observation"
	"github.com/1siamBot/tribal-sim/engine/victory"
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Step advances the world by exactly one tick, per the fixed phase
// order of spec.md §5. actions[i] is agent i's encoded action byte;
// terminated agents' actions are ignored.
func (e *Env) Step(actions [worldtypes.MapAgents]byte) {
	w := e.world
	if w.ShouldReset {
		return
	}

	// Phase 1: pre-step hook. No telemetry collaborator in this core.

	// Phase 2: action dispatch, ascending agentId.
	w.ResetBuilderActions()
	for _, agent := range w.Agents() {
		if !agent.IsAlive() {
			continue
		}
		dispatchAction(w, agent, actions[agent.AgentID])
	}
	w.RebuildSpatialIndex()

	// Phase 3: projectile resolution.
	combat.ResolveProjectiles(w)

	// Phase 4: structure auto-fire.
	combat.ResolveAutoFire(w)

	// Phase 5: production tick.
	building.TickProduction(w)

	// Phase 6: monk faith recharge, market price decay, monastery relic gold.
	combat.RechargeFaith(w)
	market.TickDecay(w)
	building.TickMonasteryGold(w, w.CurrentStep)

	// Phase 7: enforce zero-HP deaths.
	enforceDeaths(w)

	// Phase 8: respawn.
	respawn(w)

	// Phase 9: victory check.
	victory.Evaluate(w)

	// Phase 10: observation publication.
	e.lastObservations = observation.Build(w)

	// Phase 11: step counter increment, post-step hook.
	w.CurrentStep++
}

// enforceDeaths processes every agent whose hp reached 0 this tick
// through death & drops, then removes any non-agent thing (a building)
// whose hp also reached 0, ejecting its garrison first. Spec.md §4.6
// only names agent death explicitly; a destroyed building is handled
// analogously since nothing else in the phase order retires it.
func enforceDeaths(w *world.World) {
	for _, agent := range w.Agents() {
		if agent.HP <= 0 && w.Terminated[agent.AgentID] == 0.0 {
			death.KillAgent(w, agent)
		}
	}

	var destroyed []*world.Thing
	for _, t := range w.AllThings() {
		if !t.IsAgent && t.MaxHP > 0 && t.HP <= 0 {
			destroyed = append(destroyed, t)
		}
	}
	for _, t := range destroyed {
		if len(t.GarrisonedUnits) > 0 {
			building.Eject(w, t)
		}
		w.Remove(t)
	}
}

// respawn fills vacant terminated agent slots up to population cap, per
// spec.md §4.7.
func respawn(w *world.World) {
	for _, agent := range w.Agents() {
		if w.Terminated[agent.AgentID] == 0.0 {
			continue
		}
		if agent.HomeAltar.IsOffGrid() {
			continue
		}
		altar := w.GetThing(agent.HomeAltar)
		if altar == nil || altar.Kind != worldtypes.KindAltar || altar.Hearts <= 0 {
			continue
		}

		team := agent.TeamID
		if w.AlivePopulation(team) >= w.PopulationCap(team) {
			continue
		}

		spawnAt, ok := freeAdjacent(w, agent.HomeAltar)
		if !ok {
			continue
		}

		altar.Hearts--

		bonus := w.TeamCivBonuses[team]
		agent.UnitClass = worldtypes.ClassVillager
		agent.MaxHP = worldtypes.RoundHalfUp(float64(worldtypes.InitialAgentHP) * bonus.HPMultiplier)
		agent.HP = agent.MaxHP
		agent.AttackDamage = worldtypes.RoundHalfUp(float64(worldtypes.InitialAgentAttack) * bonus.AttackMultiplier)
		agent.Inventory = make(map[worldtypes.ItemKind]int)
		agent.LanternCount = 0
		agent.RelicCount = 0
		agent.SpearCount = 0
		agent.Packed = false
		agent.MovementDebt = 0
		agent.RallyTarget = world.OffGrid

		w.MoveThing(agent, spawnAt)
		w.Add(agent)
		w.Terminated[agent.AgentID] = 0.0
	}
}

func freeAdjacent(w *world.World, center world.Position) (world.Position, bool) {
	deltas := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for _, d := range deltas {
		n := center.Add(d[0], d[1])
		if w.InBounds(n) && w.GetThing(n) == nil && worldtypes.IsBuildableTerrain(w.TerrainAt(n)) {
			return n, true
		}
	}
	return world.Position{}, false
}
