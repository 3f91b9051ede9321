package inventory

import (
	"github.com/1siamBot/tribal-sim/engine/death"
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// canonicalItemOrder fixes a deterministic scan order over item kinds
// for harvesting an arbitrary container (a Corpse may hold any item the
// dead agent was carrying, unlike a resource node's single primary
// item).
var canonicalItemOrder = [...]worldtypes.ItemKind{
	worldtypes.ItemWood, worldtypes.ItemStone, worldtypes.ItemGold,
	worldtypes.ItemWheat, worldtypes.ItemFish, worldtypes.ItemBerries, worldtypes.ItemMeat,
}

// Harvest executes a USE action against a resource node or a Corpse (the
// Corpse law): it transfers GatherAmountPerAction units of an item from
// node into agent's carried inventory, then depletes or degrades node
// per spec.md §4.6. For a resource node the item is its fixed primary
// item; for a Corpse it is the first nonzero item in canonical order.
func Harvest(w *world.World, agent, node *world.Thing) bool {
	var item worldtypes.ItemKind
	switch {
	case worldtypes.IsResourceNode(node.Kind):
		i, ok := worldtypes.PrimaryItemFor(node.Kind)
		if !ok {
			return false
		}
		item = i
	case node.Kind == worldtypes.KindCorpse:
		found := false
		for _, i := range canonicalItemOrder {
			if node.GetInv(i) > 0 {
				item, found = i, true
				break
			}
		}
		if !found {
			return false
		}
	default:
		return false
	}

	available := node.GetInv(item)
	if available <= 0 {
		return false
	}

	amount := worldtypes.GatherAmountPerAction
	if amount > available {
		amount = available
	}
	node.AddToInv(item, -amount)
	agent.AddToInv(item, amount)

	switch {
	case worldtypes.IsTreeKind(node.Kind):
		// A standing Tree/Pine fells to a Stump on the harvest that
		// first touches it, per spec.md §8 scenario 1 — not when its
		// wood is exhausted. A felling harvest that also exhausts the
		// node's wood in one action (a low initial yield) removes it
		// immediately rather than leaving an unharvestable 0-wood Stump.
		death.FellTree(w, node)
		if node.GetInv(item) <= 0 {
			death.DepleteResourceNode(w, node)
		}
	case worldtypes.IsResourceNode(node.Kind) && node.GetInv(item) <= 0:
		death.DepleteResourceNode(w, node)
	case node.Kind == worldtypes.KindCorpse:
		death.DegradeCorpse(w, node)
	}
	return true
}
