// Package observation builds the per-agent windowed feature-layer
// stacks spec.md §2 and §6 describe: an ObservationWidth x
// ObservationHeight x ObservationLayers view centered on each living
// agent, with a stable feature name -> layer index mapping.
package observation

import (
	"golang.org/x/sync/errgroup"

	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Layer indices, stable for the lifetime of an episode per spec.md §6.
const (
	LayerTerrain = iota
	LayerElevation
	LayerForegroundPresence
	LayerBackgroundPresence
	LayerIsSelf
	LayerIsAllyAgent
	LayerIsEnemyAgent
	LayerIsResourceNode
	LayerHPRatio
	LayerInventoryWood
	LayerInventoryStone
	LayerInventoryGold
	LayerInventoryFood
	LayerUnitClass
	LayerIsBuilding
	LayerIsWallOrDoor
	LayerConstructed
	LayerGarrisonRatio
	LayerIsRevealed
	LayerOrientation
	LayerStance
	LayerProductionReady
	LayerMovementDebt
	LayerTeamID
)

// FeatureNames gives the name of each layer index, in order. Its length
// must equal worldtypes.ObservationLayers.
var FeatureNames = [worldtypes.ObservationLayers]string{
	"terrain", "elevation", "foreground_presence", "background_presence",
	"is_self", "is_ally_agent", "is_enemy_agent", "is_resource_node",
	"hp_ratio", "inventory_wood", "inventory_stone", "inventory_gold",
	"inventory_food", "unit_class", "is_building", "is_wall_or_door",
	"constructed", "garrison_ratio", "is_revealed", "orientation",
	"stance", "production_ready", "movement_debt", "team_id",
}

// Window is one agent's ObservationWidth x ObservationHeight x
// ObservationLayers feature stack, flattened row-major within each
// layer: Window[layer][y*ObservationWidth+x].
type Window [worldtypes.ObservationLayers][]float32

// Build runs the tick's observation-publication phase (spec.md §5 phase
// 10): it recomputes visibility and then builds one window per living
// agent, fanned out across goroutines via errgroup since every prior
// phase has already committed its writes and no window build mutates
// shared state.
func Build(w *world.World) map[int]Window {
	w.RecomputeVisibility()

	windows := make(map[int]Window, len(w.Agents()))
	var g errgroup.Group
	var mu orderedSlots
	mu.init(len(w.Agents()))

	for i, a := range w.Agents() {
		i, a := i, a
		if !a.IsAlive() {
			continue
		}
		g.Go(func() error {
			mu.set(i, buildWindow(w, a))
			return nil
		})
	}
	_ = g.Wait()

	for i, win := range mu.slots {
		if win != nil {
			windows[i] = *win
		}
	}
	return windows
}

// orderedSlots collects per-agent results without requiring a shared
// mutex on a map: each goroutine owns a distinct index.
type orderedSlots struct {
	slots []*Window
}

func (o *orderedSlots) init(n int) { o.slots = make([]*Window, n) }
func (o *orderedSlots) set(i int, w Window) { o.slots[i] = &w }

func buildWindow(w *world.World, agent *world.Thing) Window {
	var win Window
	for l := range win {
		win[l] = make([]float32, worldtypes.ObservationWidth*worldtypes.ObservationHeight)
	}

	halfW := worldtypes.ObservationWidth / 2
	halfH := worldtypes.ObservationHeight / 2

	for oy := 0; oy < worldtypes.ObservationHeight; oy++ {
		for ox := 0; ox < worldtypes.ObservationWidth; ox++ {
			p := world.Position{X: agent.Pos.X + ox - halfW, Y: agent.Pos.Y + oy - halfH}
			idx := oy*worldtypes.ObservationWidth + ox

			if !w.InBounds(p) {
				continue
			}
			fillCell(w, agent, p, &win, idx)
		}
	}
	return win
}

func fillCell(w *world.World, agent *world.Thing, p world.Position, win *Window, idx int) {
	win[LayerTerrain][idx] = float32(w.TerrainAt(p))
	win[LayerElevation][idx] = float32(w.ElevationAt(p))
	if w.IsRevealed(agent.TeamID, p) {
		win[LayerIsRevealed][idx] = 1
	}

	if occ := w.GetThing(p); occ != nil {
		win[LayerForegroundPresence][idx] = 1
		fillOccupant(win, idx, agent, occ)
	}
	if bg := w.GetBackgroundThing(p); bg != nil {
		win[LayerBackgroundPresence][idx] = 1
	}
}

func fillOccupant(win *Window, idx int, agent, occ *world.Thing) {
	if occ == agent {
		win[LayerIsSelf][idx] = 1
	} else if occ.IsAgent {
		if occ.TeamID == agent.TeamID {
			win[LayerIsAllyAgent][idx] = 1
		} else {
			win[LayerIsEnemyAgent][idx] = 1
		}
	}
	if worldtypes.IsResourceNode(occ.Kind) {
		win[LayerIsResourceNode][idx] = 1
	}
	if worldtypes.IsBuildingOrWall(occ.Kind) {
		win[LayerIsBuilding][idx] = 1
	}
	if occ.Kind == worldtypes.KindWall || occ.Kind == worldtypes.KindDoor {
		win[LayerIsWallOrDoor][idx] = 1
	}
	if occ.Constructed {
		win[LayerConstructed][idx] = 1
	}
	if occ.MaxHP > 0 {
		win[LayerHPRatio][idx] = float32(occ.HP) / float32(occ.MaxHP)
	}
	win[LayerInventoryWood][idx] = float32(occ.GetInv(worldtypes.ItemWood))
	win[LayerInventoryStone][idx] = float32(occ.GetInv(worldtypes.ItemStone))
	win[LayerInventoryGold][idx] = float32(occ.GetInv(worldtypes.ItemGold))
	win[LayerInventoryFood][idx] = float32(occ.GetInv(worldtypes.ItemWheat) + occ.GetInv(worldtypes.ItemFish) +
		occ.GetInv(worldtypes.ItemBerries) + occ.GetInv(worldtypes.ItemMeat))
	win[LayerUnitClass][idx] = float32(occ.UnitClass)
	win[LayerOrientation][idx] = float32(occ.Orientation)
	win[LayerStance][idx] = float32(occ.Stance)
	win[LayerMovementDebt][idx] = float32(occ.MovementDebt)
	win[LayerTeamID][idx] = float32(occ.TeamID)

	if capacity := worldtypes.GarrisonCapacity(occ.Kind); capacity > 0 {
		win[LayerGarrisonRatio][idx] = float32(len(occ.GarrisonedUnits)) / float32(capacity)
	}
	if len(occ.ProductionQueue) > 0 && occ.ProductionQueue[0].RemainingSteps == 0 {
		win[LayerProductionReady][idx] = 1
	}
}
