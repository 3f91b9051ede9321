// Package building implements construction, repair, rally points, the
// production queue, garrisoning, and monastery relic income, per
// spec.md §4.9.
package building

import "github.com/1siamBot/tribal-sim/engine/worldtypes"

// Entry describes one buildable structure: its base resource cost and
// base max HP before civ multipliers.
type Entry struct {
	Kind       worldtypes.ThingKind
	WoodCost   int
	StoneCost  int
	FoodCost   int
	BaseMaxHP  int
	BaseAttack int // auto-fire base projectile damage; 0 for non-auto-fire structures
}

// Catalog is the canonical build table spec.md §4.9 calls buildIndexFor;
// its slice position is the buildIndex a Build action's arg selects.
var Catalog = []Entry{
	{Kind: worldtypes.KindHouse, WoodCost: 30, BaseMaxHP: 300},
	{Kind: worldtypes.KindBarracks, WoodCost: 125, BaseMaxHP: 600},
	{Kind: worldtypes.KindArcheryRange, WoodCost: 125, BaseMaxHP: 600},
	{Kind: worldtypes.KindStable, WoodCost: 125, BaseMaxHP: 600},
	{Kind: worldtypes.KindBlacksmith, WoodCost: 150, BaseMaxHP: 600},
	{Kind: worldtypes.KindMarket, WoodCost: 175, BaseMaxHP: 600},
	{Kind: worldtypes.KindMonastery, WoodCost: 175, StoneCost: 0, BaseMaxHP: 600},
	{Kind: worldtypes.KindUniversity, WoodCost: 200, BaseMaxHP: 600},
	{Kind: worldtypes.KindSiegeWorkshop, WoodCost: 200, BaseMaxHP: 600},
	{Kind: worldtypes.KindDock, WoodCost: 150, BaseMaxHP: 600},
	{Kind: worldtypes.KindOutpost, WoodCost: 25, StoneCost: 5, BaseMaxHP: 500, BaseAttack: 3},
	{Kind: worldtypes.KindMill, WoodCost: 100, BaseMaxHP: 600},
	{Kind: worldtypes.KindGranary, WoodCost: 100, BaseMaxHP: 600},
	{Kind: worldtypes.KindLumberCamp, WoodCost: 100, BaseMaxHP: 600},
	{Kind: worldtypes.KindQuarry, WoodCost: 100, BaseMaxHP: 600},
	{Kind: worldtypes.KindMiningCamp, WoodCost: 100, BaseMaxHP: 600},
	{Kind: worldtypes.KindWall, StoneCost: 5, BaseMaxHP: 200},
	{Kind: worldtypes.KindDoor, StoneCost: 5, BaseMaxHP: 200},
	{Kind: worldtypes.KindGuardTower, WoodCost: 25, StoneCost: 25, BaseMaxHP: 1020, BaseAttack: 3},
	{Kind: worldtypes.KindCastle, StoneCost: 600, BaseMaxHP: 4800, BaseAttack: 11},
}

// BuildIndexFor returns the canonical build table index for a building
// kind, and false if the kind is not buildable directly (e.g. TownCenter
// and Altar are only placed by the map generator).
func BuildIndexFor(kind worldtypes.ThingKind) (int, bool) {
	for i, e := range Catalog {
		if e.Kind == kind {
			return i, true
		}
	}
	return 0, false
}
