// Package world owns the Thing entity store, the foreground/background
// grid, terrain and elevation, and the per-team stockpile bookkeeping —
// the "world model" subsystem of spec.md §1.
package world

import (
	"sync/atomic"

	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// ThingID is a stable, never-reused identity for a world entity.
type ThingID uint64

var thingCounter uint64

// NewThingID mints a process-wide unique identity, mirroring the
// teacher's atomic entity-counter discipline so no package needs a
// shared mutable registry to hand out IDs.
func NewThingID() ThingID {
	return ThingID(atomic.AddUint64(&thingCounter, 1))
}

// Position is an integer grid coordinate. (-1, -1) is the sentinel for
// "not on the grid" (dead or garrisoned), per spec.md §3.
type Position struct {
	X, Y int
}

// OffGrid is the sentinel position for dead or garrisoned things.
var OffGrid = Position{X: -1, Y: -1}

// IsOffGrid reports whether p is the off-grid sentinel.
func (p Position) IsOffGrid() bool {
	return p.X == -1 && p.Y == -1
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ChebyshevDistance returns the Chebyshev (king-move) distance between
// two positions, the metric spatial range queries use.
func ChebyshevDistance(a, b Position) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// ProductionEntry is one slot in a building's production queue.
type ProductionEntry struct {
	UnitClass      worldtypes.UnitClass
	RemainingSteps int
	TrainTime      int
	CostPaid       map[worldtypes.StockpileResource]int
}

// Thing is every positioned object in the world: agents, buildings,
// resource nodes, and background overlays. Spec.md §9 asks for a tagged
// variant with a shared header and kind-specific payload rather than an
// ECS component split — this struct is that header-plus-payload shape;
// per-kind behavior is dispatched through the worldtypes classification
// helpers and the kindOps-style functions in the combat/movement/death
// packages rather than through type switches scattered across the tree.
type Thing struct {
	ID           ThingID
	Kind         worldtypes.ThingKind
	Pos          Position
	HP           int
	MaxHP        int
	AttackDamage int

	Inventory map[worldtypes.ItemKind]int

	TeamID      int
	Orientation worldtypes.Orientation

	// Agent-only fields. AgentID is 0..MapAgents-1; team is AgentID /
	// MapAgentsPerTeam.
	AgentID   int
	IsAgent   bool
	UnitClass worldtypes.UnitClass
	Stance    worldtypes.Stance

	HomeAltar    Position
	RallyTarget  Position
	MovementDebt float64

	Hearts int // altars
	Faith  int // monks
	Cooldown int

	Packed      bool // trebuchet
	Constructed bool // buildings

	GarrisonedUnits  []ThingID
	GarrisonedRelics int
	ProductionQueue  []ProductionEntry
	Rallied          bool

	Reward float64

	LanternCount int
	RelicCount   int
	SpearCount   int

	// CreationOrder breaks auto-fire targeting ties between structures
	// by construction order, per spec.md §4.5's ordering note.
	CreationOrder uint64
}

// NeutralTeam is the sentinel team ID for unowned things (resource
// nodes, corpses, skeletons).
const NeutralTeam = -1

// NewThing allocates a Thing with sane zero-state defaults: off-grid
// position and neutral team. Callers place it on the grid via
// World.Add.
func NewThing(kind worldtypes.ThingKind) *Thing {
	return &Thing{
		ID:          NewThingID(),
		Kind:        kind,
		Pos:         OffGrid,
		TeamID:      NeutralTeam,
		HomeAltar:   OffGrid,
		RallyTarget: OffGrid,
		Inventory:   make(map[worldtypes.ItemKind]int),
	}
}

// GetInv returns the carried count of an item kind.
func (t *Thing) GetInv(item worldtypes.ItemKind) int {
	return t.Inventory[item]
}

// SetInv sets the carried count of an item kind, clamped to
// [0, InventoryCap].
func (t *Thing) SetInv(item worldtypes.ItemKind, count int) {
	count = worldtypes.Clamp(count, 0, worldtypes.InventoryCap)
	if count == 0 {
		delete(t.Inventory, item)
		return
	}
	t.Inventory[item] = count
}

// AddToInv adds delta to an item's carried count, clamping at the cap
// in either direction.
func (t *Thing) AddToInv(item worldtypes.ItemKind, delta int) {
	t.SetInv(item, t.GetInv(item)+delta)
}

// TotalInventory sums every carried item, used to decide when a Corpse
// degrades to a Skeleton.
func (t *Thing) TotalInventory() int {
	total := 0
	for _, v := range t.Inventory {
		total += v
	}
	return total
}

// HasNonFoodInventory reports whether any carried item is not a food
// item, per spec.md §4.6's corpse-to-skeleton degrade rule.
func (t *Thing) HasNonFoodInventory() bool {
	for item, v := range t.Inventory {
		if v > 0 && !worldtypes.IsFoodItem(item) {
			return true
		}
	}
	return false
}

// IsAlive reports whether the thing currently occupies a valid grid
// position with positive HP.
func (t *Thing) IsAlive() bool {
	return !t.Pos.IsOffGrid() && t.HP > 0
}
