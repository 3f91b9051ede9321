package world

import "github.com/1siamBot/tribal-sim/engine/worldtypes"

// DefaultMapGenerator is a minimal, deterministic stand-in for the
// out-of-scope map/biome generator collaborator (spec.md §1). It places
// one Altar + TownCenter per team in opposing corners, scatters resource
// nodes using the world's seeded RNG, and spawns each team's first
// agent as a live Villager beside its altar (the remaining agent slots
// start terminated and enter play through the normal respawn path).
// A real generator plugs in via EnvironmentConfig.Generator.
type DefaultMapGenerator struct{}

func (DefaultMapGenerator) Generate(w *World) {
	corners := []Position{
		{X: 4, Y: 4},
		{X: w.width - 5, Y: w.height - 5},
		{X: w.width - 5, Y: 4},
		{X: 4, Y: w.height - 5},
	}

	teamCount := w.Config.TeamCount
	if teamCount <= 0 || teamCount > len(corners) {
		teamCount = len(corners)
	}

	for team := 0; team < teamCount; team++ {
		home := corners[team]
		bonus := w.TeamCivBonuses[team]

		altar := NewThing(worldtypes.KindAltar)
		altar.TeamID = team
		altar.HP, altar.MaxHP = 500, 500
		altar.Constructed = true
		altar.Hearts = 10
		w.MoveThing(altar, home)
		w.Add(altar)

		tc := NewThing(worldtypes.KindTownCenter)
		tc.TeamID = team
		tc.HP = worldtypes.RoundHalfUp(2000 * bonus.BuildingHPMultiplier)
		tc.MaxHP = tc.HP
		tc.AttackDamage = worldtypes.TownCenterAttackDamage
		tc.Constructed = true
		w.MoveThing(tc, home.Add(2, 0))
		w.Add(tc)

		firstAgentID := team * worldtypes.MapAgentsPerTeam
		agent := w.Agent(firstAgentID)
		if agent != nil {
			agent.UnitClass = worldtypes.ClassVillager
			agent.HP = worldtypes.InitialAgentHP
			agent.MaxHP = worldtypes.InitialAgentHP
			agent.AttackDamage = worldtypes.InitialAgentAttack
			agent.HomeAltar = home
			spawnAt := firstFreeAdjacent(w, home)
			w.MoveThing(agent, spawnAt)
			w.Add(agent)
			w.Terminated[firstAgentID] = 0.0
		}
		for id := firstAgentID + 1; id < firstAgentID+worldtypes.MapAgentsPerTeam; id++ {
			if slot := w.Agent(id); slot != nil {
				slot.HomeAltar = home
			}
		}
	}

	placeResourceRing(w, worldtypes.KindTree, w.Config.ResourceNodeCounts[worldtypes.KindTree])
	placeResourceRing(w, worldtypes.KindWheat, w.Config.ResourceNodeCounts[worldtypes.KindWheat])
	placeResourceRing(w, worldtypes.KindStone, w.Config.ResourceNodeCounts[worldtypes.KindStone])
	placeResourceRing(w, worldtypes.KindGold, w.Config.ResourceNodeCounts[worldtypes.KindGold])
}

func placeResourceRing(w *World, kind worldtypes.ThingKind, count int) {
	for i := 0; i < count; i++ {
		x := w.Rng().IntN(w.width)
		y := w.Rng().IntN(w.height)
		p := Position{X: x, Y: y}
		if w.GetThing(p) != nil || w.TerrainAt(p) == worldtypes.TerrainWater {
			continue
		}
		node := NewThing(kind)
		node.TeamID = NeutralTeam
		switch kind {
		case worldtypes.KindTree:
			node.SetInv(worldtypes.ItemWood, worldtypes.ResourceNodeInitial)
		case worldtypes.KindWheat:
			node.SetInv(worldtypes.ItemWheat, worldtypes.ResourceNodeInitial)
		case worldtypes.KindStone:
			node.SetInv(worldtypes.ItemStone, worldtypes.ResourceNodeInitial)
		case worldtypes.KindGold:
			node.SetInv(worldtypes.ItemGold, worldtypes.ResourceNodeInitial)
		}
		w.MoveThing(node, p)
		w.Add(node)
	}
}

// firstFreeAdjacent scans the 8-neighbourhood of center for a free,
// buildable, in-bounds cell, defaulting to center itself if none are
// free (a degenerate but safe fallback for dense starting corners).
func firstFreeAdjacent(w *World, center Position) Position {
	for _, n := range neighbours8(center) {
		if w.InBounds(n) && w.GetThing(n) == nil && worldtypes.IsBuildableTerrain(w.TerrainAt(n)) {
			return n
		}
	}
	return center
}
