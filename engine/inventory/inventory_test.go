package inventory

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

type blankGenerator struct{}

func (blankGenerator) Generate(*world.World) {}

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	cfg := world.DefaultConfig()
	cfg.Generator = blankGenerator{}
	w := world.NewWorld(cfg, zerolog.Nop())
	w.Reset()
	return w
}

func spawnAgent(t *testing.T, w *world.World, agentID, team int, p world.Position) *world.Thing {
	t.Helper()
	a := w.Agent(agentID)
	require.NotNil(t, a)
	a.TeamID = team
	a.UnitClass = worldtypes.ClassVillager
	a.HP = worldtypes.InitialAgentHP
	w.MoveThing(a, p)
	w.Add(a)
	w.Terminated[agentID] = 0.0
	return a
}

func TestHarvestTransfersOneUnitPerAction(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	tree := world.NewThing(worldtypes.KindTree)
	tree.SetInv(worldtypes.ItemWood, worldtypes.ResourceNodeInitial)
	w.MoveThing(tree, world.Position{X: 11, Y: 10})
	w.Add(tree)

	ok := Harvest(w, agent, tree)
	assert.True(t, ok)
	assert.Equal(t, worldtypes.GatherAmountPerAction, agent.GetInv(worldtypes.ItemWood))
	assert.Equal(t, worldtypes.ResourceNodeInitial-worldtypes.GatherAmountPerAction, tree.GetInv(worldtypes.ItemWood))
}

func TestHarvestFellsTreeToStumpOnFirstHarvest(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	tree := world.NewThing(worldtypes.KindPine)
	tree.SetInv(worldtypes.ItemWood, worldtypes.ResourceNodeInitial)
	w.MoveThing(tree, world.Position{X: 11, Y: 10})
	w.Add(tree)

	ok := Harvest(w, agent, tree)
	assert.True(t, ok)
	assert.Equal(t, worldtypes.KindStump, tree.Kind, "a tree-kind node fells to a Stump on its first harvest, not when wood hits 0")
	assert.Equal(t, worldtypes.ResourceNodeInitial-1, tree.GetInv(worldtypes.ItemWood))
	assert.Equal(t, worldtypes.GatherAmountPerAction, agent.GetInv(worldtypes.ItemWood))
}

func TestHarvestFellsLowYieldTreeAndRemovesImmediately(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	tree := world.NewThing(worldtypes.KindTree)
	tree.SetInv(worldtypes.ItemWood, worldtypes.GatherAmountPerAction)
	w.MoveThing(tree, world.Position{X: 11, Y: 10})
	w.Add(tree)

	ok := Harvest(w, agent, tree)
	assert.True(t, ok)
	assert.Nil(t, w.GetThing(world.Position{X: 11, Y: 10}), "felling a tree whose wood is exhausted by the same harvest leaves no unharvestable 0-wood stump")
}

func TestHarvestDepletesWheatRemovesNodeEntirely(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	wheat := world.NewThing(worldtypes.KindWheat)
	wheat.SetInv(worldtypes.ItemWheat, worldtypes.GatherAmountPerAction)
	w.MoveThing(wheat, world.Position{X: 11, Y: 10})
	w.Add(wheat)

	ok := Harvest(w, agent, wheat)
	assert.True(t, ok)
	assert.Nil(t, w.GetThing(world.Position{X: 11, Y: 10}))
	_, exists := w.AllThings()[wheat.ID]
	assert.False(t, exists)
}

func TestHarvestFailsOnEmptyNode(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	stump := world.NewThing(worldtypes.KindStump)
	w.MoveThing(stump, world.Position{X: 11, Y: 10})
	w.Add(stump)

	ok := Harvest(w, agent, stump)
	assert.False(t, ok)
}

func TestHarvestCorpseTakesFirstNonzeroItemInCanonicalOrder(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	corpse := world.NewThing(worldtypes.KindCorpse)
	corpse.SetInv(worldtypes.ItemGold, 2)
	corpse.SetInv(worldtypes.ItemWheat, 2)
	w.MoveThing(corpse, world.Position{X: 10, Y: 10})
	w.Add(corpse)

	ok := Harvest(w, agent, corpse)
	assert.True(t, ok)
	assert.Equal(t, 1, agent.GetInv(worldtypes.ItemGold), "gold precedes wheat in canonical scan order")
	assert.Equal(t, 0, agent.GetInv(worldtypes.ItemWheat))
}

func TestHarvestCorpseDegradesToSkeletonWhenEmptied(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	corpse := world.NewThing(worldtypes.KindCorpse)
	corpse.SetInv(worldtypes.ItemWheat, 1)
	w.MoveThing(corpse, world.Position{X: 10, Y: 10})
	w.Add(corpse)

	Harvest(w, agent, corpse)
	assert.Equal(t, worldtypes.KindSkeleton, corpse.Kind)
}

func TestAddToStockpileAppliesGatherRateMultiplierRoundedHalfUp(t *testing.T) {
	w := newTestWorld(t)
	bonus := w.TeamCivBonuses[0]
	bonus.GatherRateMultiplier = 1.5
	w.TeamCivBonuses[0] = bonus
	before := w.TeamStockpiles[0][worldtypes.ResWood]

	AddToStockpile(w, 0, worldtypes.ResWood, 3)
	assert.Equal(t, before+5, w.TeamStockpiles[0][worldtypes.ResWood], "3*1.5=4.5, rounds half up to 5")
}

func TestDepositConvertsCarriedItemsAndClearsInventory(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	agent.AddToInv(worldtypes.ItemWood, 4)
	agent.AddToInv(worldtypes.ItemWheat, 2)

	tc := world.NewThing(worldtypes.KindTownCenter)
	tc.TeamID = 0
	tc.Constructed = true
	w.MoveThing(tc, world.Position{X: 11, Y: 10})
	w.Add(tc)

	woodBefore := w.TeamStockpiles[0][worldtypes.ResWood]
	foodBefore := w.TeamStockpiles[0][worldtypes.ResFood]

	Deposit(w, agent, tc)

	assert.Equal(t, woodBefore+4, w.TeamStockpiles[0][worldtypes.ResWood])
	assert.Equal(t, foodBefore+2, w.TeamStockpiles[0][worldtypes.ResFood])
	assert.Equal(t, 0, agent.TotalInventory())
}

func TestDepositFailsOnEnemyBuilding(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	agent.AddToInv(worldtypes.ItemWood, 4)

	tc := world.NewThing(worldtypes.KindTownCenter)
	tc.TeamID = 1
	tc.Constructed = true
	w.MoveThing(tc, world.Position{X: 11, Y: 10})
	w.Add(tc)

	Deposit(w, agent, tc)
	assert.Equal(t, 4, agent.GetInv(worldtypes.ItemWood), "deposit into an enemy building must be a no-op")
}
