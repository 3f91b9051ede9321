// Package death implements the death-and-drops rules of spec.md §4.6:
// corpse/skeleton emission, lantern/relic drop-to-adjacent-cell, and
// resource-node depletion.
package death

import (
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// KillAgent processes an agent whose hp has reached 0: it terminates the
// agent slot, drops a Corpse or Skeleton at the death position, spills
// any carried lanterns/relics onto adjacent empty cells, and clears the
// agent's inventory and special-item counters.
func KillAgent(w *world.World, agent *world.Thing) {
	pos := agent.Pos
	hadRegularInventory := len(agent.Inventory) > 0

	if hadRegularInventory {
		corpse := world.NewThing(worldtypes.KindCorpse)
		corpse.TeamID = world.NeutralTeam
		for item, count := range agent.Inventory {
			corpse.SetInv(item, count)
		}
		w.MoveThing(corpse, pos)
		w.Add(corpse)
	} else {
		skeleton := world.NewThing(worldtypes.KindSkeleton)
		skeleton.TeamID = world.NeutralTeam
		w.MoveThing(skeleton, pos)
		w.Add(skeleton)
	}

	dropToAdjacent(w, pos, worldtypes.KindLantern, agent.LanternCount)
	dropToAdjacent(w, pos, worldtypes.KindRelic, agent.RelicCount)

	agent.Inventory = make(map[worldtypes.ItemKind]int)
	agent.LanternCount = 0
	agent.RelicCount = 0
	agent.SpearCount = 0

	w.Terminated[agent.AgentID] = 1.0
	w.Remove(agent)
	agent.Pos = world.OffGrid
}

// dropToAdjacent emits count standalone things of kind onto empty cells
// adjacent to (but not equal to) pos, one per unit of count. Lanterns
// and relics are background-layer things, so they may coexist with a
// foreground occupant; dropToAdjacent still prefers an empty cell and
// falls back to the first adjacent cell if all are occupied.
func dropToAdjacent(w *world.World, pos world.Position, kind worldtypes.ThingKind, count int) {
	for i := 0; i < count; i++ {
		cell := firstFreeAdjacentExcluding(w, pos)
		item := world.NewThing(kind)
		item.TeamID = world.NeutralTeam
		w.MoveThing(item, cell)
		w.Add(item)
	}
}

func firstFreeAdjacentExcluding(w *world.World, center world.Position) world.Position {
	neighbours := []world.Position{
		center.Add(1, 0), center.Add(-1, 0), center.Add(0, 1), center.Add(0, -1),
		center.Add(1, 1), center.Add(1, -1), center.Add(-1, 1), center.Add(-1, -1),
	}
	var fallback world.Position
	haveFallback := false
	for _, n := range neighbours {
		if !w.InBounds(n) {
			continue
		}
		if !haveFallback {
			fallback = n
			haveFallback = true
		}
		if w.GetBackgroundThing(n) == nil {
			return n
		}
	}
	if haveFallback {
		return fallback
	}
	return center
}

// FellTree converts a standing Tree or Pine into a Stump the moment it
// is first harvested, per spec.md §4.6 and §8 scenario 1 ("Tree to
// stump"): the Stump keeps whatever wood the felling harvest left
// behind and depletes like any other resource node from there.
func FellTree(w *world.World, node *world.Thing) {
	w.ReclassifyKind(node, worldtypes.KindStump)
}

// DepleteResourceNode removes a resource node whose primary item has
// reached 0, per spec.md §4.6.
func DepleteResourceNode(w *world.World, node *world.Thing) {
	w.Remove(node)
}

// DegradeCorpse turns a Corpse into a Skeleton once its inventory is
// fully harvested; a Corpse still holding any item, food included, stays
// a Corpse, per spec.md §4.6.
func DegradeCorpse(w *world.World, node *world.Thing) {
	if node.Kind == worldtypes.KindCorpse && node.TotalInventory() == 0 {
		w.ReclassifyKind(node, worldtypes.KindSkeleton)
	}
}
