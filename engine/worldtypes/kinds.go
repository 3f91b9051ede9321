// Package worldtypes holds the enumerations and scalar constant tables
// shared by every other engine package: thing/unit/terrain/item kinds,
// stockpile resources, orientation and stance, and the tunable numbers
// that drive movement, combat, construction and the market.
package worldtypes

// ThingKind identifies the sum-type variant of a Thing.
type ThingKind uint16

const (
	KindAgent ThingKind = iota
	KindTownCenter
	KindHouse
	KindAltar
	KindGuardTower
	KindCastle
	KindWall
	KindDoor
	KindBarracks
	KindArcheryRange
	KindStable
	KindBlacksmith
	KindMarket
	KindMonastery
	KindUniversity
	KindWonder
	KindSiegeWorkshop
	KindMangonelWorkshop
	KindTrebuchetWorkshop
	KindDock
	KindOutpost
	KindMill
	KindGranary
	KindLumberCamp
	KindQuarry
	KindMiningCamp
	KindWeavingLoom
	KindClayOven
	KindLantern
	KindTemple
	KindBarrel
	KindTree
	KindPine
	KindBush
	KindCactus
	KindWheat
	KindStone
	KindGold
	KindFish
	KindStump
	KindCorpse
	KindSkeleton
	KindRelic
	kindCount
)

// String returns a readable name, primarily for logging and tests.
func (k ThingKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

var kindNames = [...]string{
	"Agent", "TownCenter", "House", "Altar", "GuardTower", "Castle", "Wall",
	"Door", "Barracks", "ArcheryRange", "Stable", "Blacksmith", "Market",
	"Monastery", "University", "Wonder", "SiegeWorkshop", "MangonelWorkshop",
	"TrebuchetWorkshop", "Dock", "Outpost", "Mill", "Granary", "LumberCamp",
	"Quarry", "MiningCamp", "WeavingLoom", "ClayOven", "Lantern", "Temple",
	"Barrel", "Tree", "Pine", "Bush", "Cactus", "Wheat", "Stone", "Gold",
	"Fish", "Stump", "Corpse", "Skeleton", "Relic",
}

// IsBackgroundKind reports whether a thing of this kind lives on the
// background overlay layer rather than the blocking foreground layer.
func IsBackgroundKind(k ThingKind) bool {
	switch k {
	case KindCorpse, KindSkeleton, KindRelic, KindLantern:
		return true
	default:
		return false
	}
}

// IsTreeKind reports whether a thing is a standing tree that fells to a
// Stump on its first harvest, per spec.md §4.6.
func IsTreeKind(k ThingKind) bool {
	switch k {
	case KindTree, KindPine:
		return true
	default:
		return false
	}
}

// IsResourceNode reports whether a thing is a harvestable/diggable
// resource that can be depleted.
func IsResourceNode(k ThingKind) bool {
	switch k {
	case KindTree, KindPine, KindBush, KindCactus, KindWheat, KindStone, KindGold, KindFish, KindStump:
		return true
	default:
		return false
	}
}

// IsDiggable reports whether connectivity repair may carve through a
// thing of this kind. Buildings and the map border are never diggable.
func IsDiggable(k ThingKind) bool {
	switch k {
	case KindTree, KindPine, KindBush, KindCactus, KindStone, KindGold, KindWall:
		return true
	default:
		return false
	}
}

// IsContainerBuilding reports whether a building kind can garrison units.
func IsContainerBuilding(k ThingKind) bool {
	switch k {
	case KindTownCenter, KindHouse, KindCastle, KindGuardTower, KindMonastery:
		return true
	default:
		return false
	}
}

// IsAutoFireStructure reports whether a building kind auto-fires at
// enemies during the structure phase.
func IsAutoFireStructure(k ThingKind) bool {
	switch k {
	case KindGuardTower, KindTownCenter, KindCastle, KindOutpost:
		return true
	default:
		return false
	}
}

// PrimaryItemFor returns the carried item kind a resource node yields
// when harvested, per spec.md §4.6's depletion rule.
func PrimaryItemFor(k ThingKind) (ItemKind, bool) {
	switch k {
	case KindTree, KindPine, KindStump:
		return ItemWood, true
	case KindBush, KindCactus:
		return ItemBerries, true
	case KindWheat:
		return ItemWheat, true
	case KindStone:
		return ItemStone, true
	case KindGold:
		return ItemGold, true
	case KindFish:
		return ItemFish, true
	default:
		return 0, false
	}
}

// IsBuildingOrWall reports whether a thing kind is a building or a wall
// or door, the target class the siege damage multiplier applies against.
func IsBuildingOrWall(k ThingKind) bool {
	switch k {
	case KindAgent, KindLantern, KindBarrel, KindTree, KindPine, KindBush,
		KindCactus, KindWheat, KindStone, KindGold, KindFish, KindStump,
		KindCorpse, KindSkeleton, KindRelic:
		return false
	default:
		return true
	}
}

// GarrisonCapacity returns the garrison slot count for a container
// building kind.
func GarrisonCapacity(k ThingKind) int {
	switch k {
	case KindTownCenter:
		return 15
	case KindHouse:
		return 5
	case KindCastle:
		return 20
	case KindGuardTower:
		return 5
	case KindMonastery:
		return 4
	default:
		return 0
	}
}

// PopulationContribution returns how much population cap a completed
// building of this kind contributes, per spec.md §4.7.
func PopulationContribution(k ThingKind) int {
	switch k {
	case KindHouse:
		return HousePopCap
	case KindTownCenter:
		return 0
	case KindCastle:
		return 5
	default:
		return 0
	}
}
