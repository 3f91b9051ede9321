package combat

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

func spawnAgent(t *testing.T, w *world.World, agentID, team int, class worldtypes.UnitClass, p world.Position) *world.Thing {
	t.Helper()
	a := w.Agent(agentID)
	require.NotNil(t, a)
	a.TeamID = team
	a.UnitClass = class
	a.HP = worldtypes.InitialAgentHP
	a.MaxHP = worldtypes.InitialAgentHP
	a.AttackDamage = worldtypes.InitialAgentAttack
	w.MoveThing(a, p)
	w.Add(a)
	w.Terminated[agentID] = 0.0
	return a
}

func TestResolveMeleeAttackAppliesDamageImmediately(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnAgent(t, w, 0, 0, worldtypes.ClassVillager, world.Position{X: 10, Y: 10})
	target := spawnAgent(t, w, worldtypes.MapAgentsPerTeam, 1, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})

	startHP := target.HP
	Resolve(w, attacker, worldtypes.OrientE)
	assert.Equal(t, startHP-attacker.AttackDamage, target.HP)
	assert.Empty(t, w.Projectiles, "melee never schedules a projectile")
}

func TestResolveAttackIgnoresSameTeam(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnAgent(t, w, 0, 0, worldtypes.ClassVillager, world.Position{X: 10, Y: 10})
	ally := spawnAgent(t, w, 1, 0, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})

	startHP := ally.HP
	Resolve(w, attacker, worldtypes.OrientE)
	assert.Equal(t, startHP, ally.HP)
}

func TestArcherAttackOutOfRangeFails(t *testing.T) {
	w := newTestWorld(t)
	archer := spawnAgent(t, w, 0, 0, worldtypes.ClassArcher, world.Position{X: 10, Y: 10})
	target := spawnAgent(t, w, worldtypes.MapAgentsPerTeam, 1, worldtypes.ClassVillager, world.Position{X: 14, Y: 10})

	assert.False(t, HasTarget(w, archer, worldtypes.OrientE), "distance 4 exceeds archer range 3")
	Resolve(w, archer, worldtypes.OrientE)
	assert.Empty(t, w.Projectiles)
	_ = target
}

func TestArcherAttackInRangeSchedulesProjectile(t *testing.T) {
	w := newTestWorld(t)
	archer := spawnAgent(t, w, 0, 0, worldtypes.ClassArcher, world.Position{X: 10, Y: 10})
	spawnAgent(t, w, worldtypes.MapAgentsPerTeam, 1, worldtypes.ClassVillager, world.Position{X: 13, Y: 10})

	assert.True(t, HasTarget(w, archer, worldtypes.OrientE))
	Resolve(w, archer, worldtypes.OrientE)
	require.Len(t, w.Projectiles, 1)
	assert.Equal(t, 3, w.Projectiles[0].TicksRemaining)
}

func TestTrebuchetMinRangeBlocksAdjacentTarget(t *testing.T) {
	w := newTestWorld(t)
	trebuchet := spawnAgent(t, w, 0, 0, worldtypes.ClassTrebuchet, world.Position{X: 10, Y: 10})
	spawnAgent(t, w, worldtypes.MapAgentsPerTeam, 1, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})

	assert.False(t, HasTarget(w, trebuchet, worldtypes.OrientE), "trebuchet min range is 2, distance 1 must be blocked")
}

func TestSiegeDamageTripledAgainstBuildings(t *testing.T) {
	w := newTestWorld(t)
	target := world.NewThing(worldtypes.KindWall)
	target.TeamID = 1
	target.HP, target.MaxHP = 100, 100
	target.Constructed = true
	w.MoveThing(target, world.Position{X: 10, Y: 10})
	w.Add(target)

	ApplyDamage(w, 0, true, target, 5)
	assert.Equal(t, 85, target.HP, "siege multiplier x3 against a building")
}

func TestSiegeMultiplierDoesNotApplyToAgents(t *testing.T) {
	w := newTestWorld(t)
	target := spawnAgent(t, w, 0, 1, worldtypes.ClassVillager, world.Position{X: 10, Y: 10})
	startHP := target.HP

	ApplyDamage(w, 0, true, target, 5)
	assert.Equal(t, startHP-5, target.HP)
}

func TestAuraMitigationHalvesDamageNonStacking(t *testing.T) {
	w := newTestWorld(t)
	target := spawnAgent(t, w, 0, 0, worldtypes.ClassVillager, world.Position{X: 10, Y: 10})
	mAndA := spawnAgent(t, w, 1, 0, worldtypes.ClassManAtArms, world.Position{X: 10, Y: 11})
	knight := spawnAgent(t, w, 2, 0, worldtypes.ClassKnight, world.Position{X: 11, Y: 11})
	_ = knight

	startHP := target.HP
	ApplyDamage(w, 1, false, target, 7)
	assert.Equal(t, startHP-4, target.HP, "(7+1)/2 = 4, only one halving regardless of overlapping auras")
	_ = mAndA
}

func TestApplyDamageNeverDropsBelowZero(t *testing.T) {
	w := newTestWorld(t)
	target := spawnAgent(t, w, 0, 1, worldtypes.ClassVillager, world.Position{X: 10, Y: 10})
	target.HP = 2
	ApplyDamage(w, 0, false, target, 50)
	assert.Equal(t, 0, target.HP)
}

func TestSpearConsumedOnRangedMeleeHit(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnAgent(t, w, 0, 0, worldtypes.ClassVillager, world.Position{X: 10, Y: 10})
	attacker.SpearCount = 1
	spawnAgent(t, w, worldtypes.MapAgentsPerTeam, 1, worldtypes.ClassVillager, world.Position{X: 12, Y: 10})

	assert.True(t, HasTarget(w, attacker, worldtypes.OrientE), "spear extends melee range by 1")
	Resolve(w, attacker, worldtypes.OrientE)
	assert.Equal(t, 0, attacker.SpearCount)
}

func TestSpearNotConsumedOnAdjacentHit(t *testing.T) {
	w := newTestWorld(t)
	attacker := spawnAgent(t, w, 0, 0, worldtypes.ClassVillager, world.Position{X: 10, Y: 10})
	attacker.SpearCount = 1
	spawnAgent(t, w, worldtypes.MapAgentsPerTeam, 1, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})

	Resolve(w, attacker, worldtypes.OrientE)
	assert.Equal(t, 1, attacker.SpearCount)
}

func TestMonkConvertsHostileAndSpendsFaith(t *testing.T) {
	w := newTestWorld(t)
	monk := spawnAgent(t, w, 0, 0, worldtypes.ClassMonk, world.Position{X: 10, Y: 10})
	monk.Faith = worldtypes.MonkMaxFaith
	hostile := spawnAgent(t, w, worldtypes.MapAgentsPerTeam, 1, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})

	Resolve(w, monk, worldtypes.OrientE)
	assert.Equal(t, 0, hostile.TeamID)
	assert.Equal(t, worldtypes.MonkMaxFaith-worldtypes.MonkConversionFaithCost, monk.Faith)
}

func TestMonkConversionFailsWithoutEnoughFaith(t *testing.T) {
	w := newTestWorld(t)
	monk := spawnAgent(t, w, 0, 0, worldtypes.ClassMonk, world.Position{X: 10, Y: 10})
	monk.Faith = 0
	hostile := spawnAgent(t, w, worldtypes.MapAgentsPerTeam, 1, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})

	Resolve(w, monk, worldtypes.OrientE)
	assert.Equal(t, 1, hostile.TeamID, "conversion is a no-op without enough faith")
}

func TestMonkHealsAllyWithoutSpendingFaith(t *testing.T) {
	w := newTestWorld(t)
	monk := spawnAgent(t, w, 0, 0, worldtypes.ClassMonk, world.Position{X: 10, Y: 10})
	monk.Faith = worldtypes.MonkMaxFaith
	ally := spawnAgent(t, w, 1, 0, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})
	ally.HP = ally.MaxHP - 10

	Resolve(w, monk, worldtypes.OrientE)
	assert.Equal(t, ally.MaxHP-10+worldtypes.MonkHealAmount, ally.HP)
	assert.Equal(t, worldtypes.MonkMaxFaith, monk.Faith)
}

func TestMonkHealClampsAtMaxHP(t *testing.T) {
	w := newTestWorld(t)
	monk := spawnAgent(t, w, 0, 0, worldtypes.ClassMonk, world.Position{X: 10, Y: 10})
	ally := spawnAgent(t, w, 1, 0, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})
	ally.HP = ally.MaxHP

	Resolve(w, monk, worldtypes.OrientE)
	assert.Equal(t, ally.MaxHP, ally.HP)
}

func TestResolveProjectileImpactsOnExpiryAndIsSingleTarget(t *testing.T) {
	w := newTestWorld(t)
	target := spawnAgent(t, w, 0, 1, worldtypes.ClassVillager, world.Position{X: 10, Y: 10})
	startHP := target.HP
	w.Projectiles = []world.Projectile{{
		ID: world.NewThingID(), TargetPos: world.Position{X: 10, Y: 10},
		TicksRemaining: 1, Damage: 6, AttackerTeam: 0,
	}}

	ResolveProjectiles(w)
	assert.Empty(t, w.Projectiles)
	assert.Equal(t, startHP-6, target.HP)
}

func TestResolveProjectileAoEHitsMultipleTargets(t *testing.T) {
	w := newTestWorld(t)
	a := spawnAgent(t, w, 0, 1, worldtypes.ClassVillager, world.Position{X: 10, Y: 10})
	b := spawnAgent(t, w, 1, 1, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})
	aHP, bHP := a.HP, b.HP

	w.Projectiles = []world.Projectile{{
		ID: world.NewThingID(), TargetPos: world.Position{X: 10, Y: 10},
		TicksRemaining: 1, Damage: 4, AoERadius: 1, AttackerTeam: 0,
	}}
	ResolveProjectiles(w)
	assert.Equal(t, aHP-4, a.HP)
	assert.Equal(t, bHP-4, b.HP)
}

func TestProjectileCountsDownWithoutImpactingEarly(t *testing.T) {
	w := newTestWorld(t)
	target := spawnAgent(t, w, 0, 1, worldtypes.ClassVillager, world.Position{X: 10, Y: 10})
	startHP := target.HP
	w.Projectiles = []world.Projectile{{
		ID: world.NewThingID(), TargetPos: world.Position{X: 10, Y: 10},
		TicksRemaining: 2, Damage: 9, AttackerTeam: 0,
	}}

	ResolveProjectiles(w)
	assert.Len(t, w.Projectiles, 1)
	assert.Equal(t, startHP, target.HP)
}

func TestRechargeFaithCapsAtMax(t *testing.T) {
	w := newTestWorld(t)
	monk := spawnAgent(t, w, 0, 0, worldtypes.ClassMonk, world.Position{X: 10, Y: 10})
	monk.Faith = worldtypes.MonkMaxFaith - 1

	RechargeFaith(w)
	assert.Equal(t, worldtypes.MonkMaxFaith, monk.Faith)
}

func TestAutoFireTargetsNearestEnemyTieBreaksOnAgentID(t *testing.T) {
	w := newTestWorld(t)
	tower := world.NewThing(worldtypes.KindGuardTower)
	tower.TeamID = 0
	tower.Constructed = true
	tower.HP, tower.MaxHP = 200, 200
	tower.AttackDamage = 3
	w.MoveThing(tower, world.Position{X: 10, Y: 10})
	w.Add(tower)

	far := spawnAgent(t, w, worldtypes.MapAgentsPerTeam, 1, worldtypes.ClassVillager, world.Position{X: 13, Y: 10})
	near1 := spawnAgent(t, w, worldtypes.MapAgentsPerTeam+1, 1, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})
	near2 := spawnAgent(t, w, worldtypes.MapAgentsPerTeam+2, 1, worldtypes.ClassVillager, world.Position{X: 10, Y: 9})
	_ = far

	near1HP, near2HP := near1.HP, near2.HP
	ResolveAutoFire(w)
	assert.Less(t, near1.HP, near1HP, "lower AgentID wins the tie at equal distance")
	assert.Equal(t, near2HP, near2.HP)
}

func TestAutoFireDoesNothingWithNoEnemyInRange(t *testing.T) {
	w := newTestWorld(t)
	tower := world.NewThing(worldtypes.KindGuardTower)
	tower.TeamID = 0
	tower.Constructed = true
	tower.HP, tower.MaxHP = 200, 200
	tower.AttackDamage = 3
	w.MoveThing(tower, world.Position{X: 10, Y: 10})
	w.Add(tower)

	assert.NotPanics(t, func() { ResolveAutoFire(w) })
}

func TestAutoFireMurderHolesStillHitsNearbyTargets(t *testing.T) {
	w := newTestWorld(t)
	tower := world.NewThing(worldtypes.KindGuardTower)
	tower.TeamID = 0
	tower.Constructed = true
	tower.HP, tower.MaxHP = 200, 200
	tower.AttackDamage = 3
	w.MoveThing(tower, world.Position{X: 10, Y: 10})
	w.Add(tower)
	w.TeamUniversityTechs[0]["MurderHoles"] = true

	adjacent := spawnAgent(t, w, worldtypes.MapAgentsPerTeam, 1, worldtypes.ClassVillager, world.Position{X: 11, Y: 10})
	startHP := adjacent.HP
	ResolveAutoFire(w)
	assert.Less(t, adjacent.HP, startHP)
}
