package market

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
	w.MoveThing(a, p)
	w.Add(a)
	w.Terminated[agentID] = 0.0
	return a
}

func spawnMarket(t *testing.T, w *world.World, team int, p world.Position) *world.Thing {
	t.Helper()
	m := world.NewThing(worldtypes.KindMarket)
	m.TeamID = team
	m.Constructed = true
	w.MoveThing(m, p)
	w.Add(m)
	return m
}

func TestSellConvertsCarriedResourceToGoldAtCurrentPrice(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	agent.AddToInv(worldtypes.ItemWood, 10)
	m := spawnMarket(t, w, 0, world.Position{X: 11, Y: 10})
	goldBefore := w.TeamStockpiles[0][worldtypes.ResGold]

	ok := Sell(w, agent, m, worldtypes.ResWood)
	assert.True(t, ok)
	assert.Equal(t, 0, agent.GetInv(worldtypes.ItemWood))
	assert.Equal(t, goldBefore+10*worldtypes.MarketBasePrice/100, w.TeamStockpiles[0][worldtypes.ResGold])
	assert.Equal(t, worldtypes.MarketCooldownTicks, m.Cooldown)
}

func TestSellLowersPriceAndBuyRaisesIt(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	agent.AddToInv(worldtypes.ItemWood, 1)
	m := spawnMarket(t, w, 0, world.Position{X: 11, Y: 10})

	Sell(w, agent, m, worldtypes.ResWood)
	assert.Equal(t, worldtypes.MarketBasePrice-worldtypes.MarketSellPriceDecrease, w.TeamMarketPrices[0][worldtypes.ResWood])

	m.Cooldown = 0
	agent.AddToInv(worldtypes.ItemGold, 100)
	Buy(w, agent, m, worldtypes.ResStone)
	assert.Equal(t, worldtypes.MarketBasePrice+worldtypes.MarketBuyPriceIncrease, w.TeamMarketPrices[0][worldtypes.ResStone])
}

func TestSplittingASaleAcrossTwoTradesYieldsLessThanOneBigSale(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	m := spawnMarket(t, w, 0, world.Position{X: 11, Y: 10})

	agent.AddToInv(worldtypes.ItemWood, 10)
	require.True(t, Sell(w, agent, m, worldtypes.ResWood))
	bulkGold := w.TeamStockpiles[0][worldtypes.ResGold]

	w.TeamStockpiles[0][worldtypes.ResGold] = 0
	w.TeamMarketPrices[0][worldtypes.ResWood] = worldtypes.MarketBasePrice
	m.Cooldown = 0
	agent.AddToInv(worldtypes.ItemWood, 5)
	require.True(t, Sell(w, agent, m, worldtypes.ResWood))
	m.Cooldown = 0
	agent.AddToInv(worldtypes.ItemWood, 5)
	require.True(t, Sell(w, agent, m, worldtypes.ResWood))
	splitGold := w.TeamStockpiles[0][worldtypes.ResGold]

	assert.Less(t, splitGold, bulkGold, "the price drop between trades makes the second half-sale worth less")
}

func TestSellFailsWithNothingCarried(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	m := spawnMarket(t, w, 0, world.Position{X: 11, Y: 10})

	assert.False(t, Sell(w, agent, m, worldtypes.ResWood))
}

func TestSellFailsOnEnemyMarket(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	agent.AddToInv(worldtypes.ItemWood, 5)
	m := spawnMarket(t, w, 1, world.Position{X: 11, Y: 10})

	assert.False(t, Sell(w, agent, m, worldtypes.ResWood))
	assert.Equal(t, 5, agent.GetInv(worldtypes.ItemWood))
}

func TestSellRespectsCooldown(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	agent.AddToInv(worldtypes.ItemWood, 5)
	m := spawnMarket(t, w, 0, world.Position{X: 11, Y: 10})

	require.True(t, Sell(w, agent, m, worldtypes.ResWood))
	agent.AddToInv(worldtypes.ItemWood, 5)
	assert.False(t, Sell(w, agent, m, worldtypes.ResWood), "market is on cooldown")
}

func TestFoodAggregatesAcrossAllFoodItemKinds(t *testing.T) {
	w := newTestWorld(t)
	agent := spawnAgent(t, w, 0, 0, world.Position{X: 10, Y: 10})
	agent.AddToInv(worldtypes.ItemWheat, 2)
	agent.AddToInv(worldtypes.ItemFish, 3)
	m := spawnMarket(t, w, 0, world.Position{X: 11, Y: 10})

	ok := Sell(w, agent, m, worldtypes.ResFood)
	assert.True(t, ok)
	assert.Equal(t, 0, agent.GetInv(worldtypes.ItemWheat))
	assert.Equal(t, 0, agent.GetInv(worldtypes.ItemFish))
}

func TestTickDecayMovesPriceTowardBase(t *testing.T) {
	w := newTestWorld(t)
	w.TeamMarketPrices[0][worldtypes.ResWood] = worldtypes.MarketBasePrice + 10

	TickDecay(w)
	assert.Equal(t, worldtypes.MarketBasePrice+10-worldtypes.MarketPriceDecayRate, w.TeamMarketPrices[0][worldtypes.ResWood])
}

func TestTickDecayNeverOvershootsBase(t *testing.T) {
	w := newTestWorld(t)
	w.TeamMarketPrices[0][worldtypes.ResWood] = worldtypes.MarketBasePrice + 1

	TickDecay(w)
	TickDecay(w)
	assert.Equal(t, worldtypes.MarketBasePrice, w.TeamMarketPrices[0][worldtypes.ResWood])
}

func TestTickDecayCountsDownCooldowns(t *testing.T) {
	w := newTestWorld(t)
	m := spawnMarket(t, w, 0, world.Position{X: 20, Y: 20})
	m.Cooldown = 2

	TickDecay(w)
	assert.Equal(t, 1, m.Cooldown)
}
