package worldtypes

// TerrainKind identifies the terrain of a single grid cell.
type TerrainKind uint8

const (
	TerrainEmpty TerrainKind = iota
	TerrainGrass
	TerrainRoad
	TerrainBridge
	TerrainSand
	TerrainDune
	TerrainSnow
	TerrainMud
	TerrainFertile
	TerrainShallowWater
	TerrainWater
	TerrainRampUpN
	TerrainRampUpS
	TerrainRampUpE
	TerrainRampUpW
	TerrainRampDownN
	TerrainRampDownS
	TerrainRampDownE
	TerrainRampDownW
)

// speedModifier is the fixed table from spec.md §4.2.
var speedModifier = map[TerrainKind]float64{
	TerrainEmpty:        1.0,
	TerrainGrass:        1.0,
	TerrainRoad:         1.0,
	TerrainBridge:       1.0,
	TerrainFertile:      1.0,
	TerrainSand:         0.9,
	TerrainDune:         0.85,
	TerrainSnow:         0.8,
	TerrainMud:          0.7,
	TerrainShallowWater: 0.5,
	TerrainWater:        1.0,
}

// SpeedModifier returns the fixed terrain speed modifier, defaulting to
// 1.0 for ramp terrains (ramps are transitional — the speed of a ramp's
// own tile is not otherwise specified and the flat default keeps the
// movement-debt law honest at elevation boundaries).
func SpeedModifier(t TerrainKind) float64 {
	if v, ok := speedModifier[t]; ok {
		return v
	}
	return 1.0
}

// IsBlockedTerrain reports terrain land units can never enter.
func IsBlockedTerrain(t TerrainKind) bool {
	return t == TerrainWater
}

// IsWaterTerrain reports terrain that counts as "water" for classifying
// water-only vs. land-only traversal.
func IsWaterTerrain(t TerrainKind) bool {
	return t == TerrainWater || t == TerrainShallowWater
}

// IsRampTerrain reports any of the eight ramp orientations.
func IsRampTerrain(t TerrainKind) bool {
	switch t {
	case TerrainRampUpN, TerrainRampUpS, TerrainRampUpE, TerrainRampUpW,
		TerrainRampDownN, TerrainRampDownS, TerrainRampDownE, TerrainRampDownW:
		return true
	default:
		return false
	}
}

// IsBuildableTerrain reports non-water terrain.
func IsBuildableTerrain(t TerrainKind) bool {
	return !IsWaterTerrain(t)
}

// RampUpDirection returns the orientation a Ramp-up terrain rises
// toward, i.e. the direction of travel it permits an elevation gain for.
func RampUpDirection(t TerrainKind) (Orientation, bool) {
	switch t {
	case TerrainRampUpN:
		return OrientN, true
	case TerrainRampUpS:
		return OrientS, true
	case TerrainRampUpE:
		return OrientE, true
	case TerrainRampUpW:
		return OrientW, true
	default:
		return 0, false
	}
}

// RampDownDirection returns the orientation a Ramp-down terrain
// descends toward.
func RampDownDirection(t TerrainKind) (Orientation, bool) {
	switch t {
	case TerrainRampDownN:
		return OrientN, true
	case TerrainRampDownS:
		return OrientS, true
	case TerrainRampDownE:
		return OrientE, true
	case TerrainRampDownW:
		return OrientW, true
	default:
		return 0, false
	}
}

// ItemKind identifies a countable item in an inventory.
type ItemKind uint8

const (
	ItemWood ItemKind = iota
	ItemStone
	ItemGold
	ItemWheat
	ItemFish
	ItemBerries
	ItemMeat
)

// IsFoodItem reports whether an item kind counts toward the "food"
// category for corpse persistence and deposit conversion.
func IsFoodItem(i ItemKind) bool {
	switch i {
	case ItemWheat, ItemFish, ItemBerries, ItemMeat:
		return true
	default:
		return false
	}
}

// InventoryCap is the per-item carry cap for a single Thing's
// inventory map.
const InventoryCap = 20

// StockpileResource identifies a team-aggregated resource.
type StockpileResource uint8

const (
	ResFood StockpileResource = iota
	ResWood
	ResGold
	ResStone
	ResWater
)

// TradableResources lists the resources the market trades. Water is
// aggregated but never priced.
var TradableResources = [...]StockpileResource{ResFood, ResWood, ResGold, ResStone}
