package building

import "github.com/1siamBot/tribal-sim/engine/world"

// SetRally executes a SetRally action (verb=10, arg=direction) for
// agent against an owned adjacent building, per spec.md §4.9.
func SetRally(agent, target *world.Thing) bool {
	if target.TeamID != agent.TeamID {
		return false
	}
	target.RallyTarget = agent.Pos
	target.Rallied = true
	return true
}
