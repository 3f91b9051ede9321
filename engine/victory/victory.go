// Package victory evaluates the configurable victory conditions of
// spec.md §4.11 once per tick, after death cleanup.
package victory

import "github.com/1siamBot/tribal-sim/engine/world"

// RegisterKing records agent as its team's Regicide king candidate, the
// ControlGroup-verb action spec.md §4.11 calls "each team may register a
// kingAgentId via victoryStates".
func RegisterKing(w *world.World, agent *world.Thing) {
	state := w.VictoryStates[agent.TeamID]
	state.KingAgentID = agent.AgentID
	state.KingRegistered = true
	w.VictoryStates[agent.TeamID] = state
}

// Evaluate runs the tick's victory-check phase (spec.md §5 phase 9). If
// a winner is determined, it sets w.VictoryWinner, assigns rewards, and
// sets w.ShouldReset.
func Evaluate(w *world.World) {
	if w.VictoryWinner != -1 {
		return
	}
	switch w.Config.VictoryCondition {
	case world.VictoryRegicide:
		evaluateRegicide(w)
	case world.VictoryWonder:
		evaluateHoldCondition(w, hasStandingWonder)
	case world.VictoryRelic:
		evaluateHoldCondition(w, hasAllRelics)
	case world.VictoryHill:
		evaluateHoldCondition(w, holdsHill)
	case world.VictoryTerritory:
		if w.CurrentStep >= w.Config.MaxSteps {
			evaluateTerritory(w)
		}
	}
	if w.CurrentStep >= w.Config.MaxSteps && w.VictoryWinner == -1 {
		w.ShouldReset = true
	}
}

func evaluateRegicide(w *world.World) {
	registered := 0
	aliveKingTeam := -1
	aliveKings := 0
	for team, state := range w.VictoryStates {
		if !state.KingRegistered {
			continue
		}
		registered++
		king := w.Agent(state.KingAgentID)
		if king != nil && king.TeamID == team && king.IsAlive() {
			aliveKingTeam = team
			aliveKings++
		}
	}
	if registered < 2 || aliveKings != 1 {
		return
	}
	declareWinner(w, aliveKingTeam)
}

// evaluateHoldCondition increments (or resets) each team's HoldTicks
// counter depending on whether the team currently satisfies holds, and
// declares a winner the first team to reach VictoryHoldTicks.
func evaluateHoldCondition(w *world.World, holds func(w *world.World, team int) bool) {
	for team := 0; team < w.Config.TeamCount; team++ {
		state := w.VictoryStates[team]
		if holds(w, team) {
			state.HoldTicks++
		} else {
			state.HoldTicks = 0
		}
		w.VictoryStates[team] = state
		if state.HoldTicks >= w.Config.VictoryHoldTicks {
			declareWinner(w, team)
			return
		}
	}
}

func declareWinner(w *world.World, team int) {
	w.VictoryWinner = team
	for _, a := range w.Agents() {
		if a.TeamID == team {
			a.Reward += 1.0
			w.Truncated[a.AgentID] = 1.0
		} else {
			w.Terminated[a.AgentID] = 1.0
		}
	}
	w.ShouldReset = true
}
