package world

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/1siamBot/tribal-sim/engine/spatial"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Projectile is a scheduled future effect (spec.md §3's "projectiles").
// Combat spawns these for ranged attacks with travel time; the tick
// orchestrator's projectile-resolution phase counts them down.
type Projectile struct {
	ID              ThingID
	SourceID        ThingID
	TargetPos       Position
	TicksRemaining  int
	Damage          int
	AoERadius       int
	SiegeAttacker   bool
	AttackerTeam    int
}

// World is the process-wide per-episode state: the grid, every Thing,
// per-team bookkeeping, and the transient per-agent flags the tick
// orchestrator publishes. It is never accessed from more than one
// goroutine at a time except for the read-only observation fan-out in
// the tick package (see SPEC_FULL.md §5).
type World struct {
	Config EnvironmentConfig
	Logger zerolog.Logger

	width, height int

	foreground []*Thing // len width*height, blocking occupancy
	background []*Thing // len width*height, overlay occupancy
	terrain    []worldtypes.TerrainKind
	elevation  []int8
	biome      []uint8

	things       map[ThingID]*Thing
	thingsByKind map[worldtypes.ThingKind][]*Thing
	agents       []*Thing // len MapAgents, indexed by AgentID, always non-nil

	TeamStockpiles      map[int]map[worldtypes.StockpileResource]int
	TeamCivBonuses      map[int]worldtypes.CivBonus
	TeamUniversityTechs map[int]map[string]bool
	TeamMarketPrices    map[int]map[worldtypes.StockpileResource]int
	TeamTributesSent    map[int]int
	TeamTributesReceived map[int]int

	Terminated []float64 // len MapAgents
	Truncated  []float64 // len MapAgents

	CurrentStep  int
	ShouldReset  bool
	VictoryWinner int // -1 = none
	VictoryStates map[int]VictoryState

	Projectiles []Projectile

	RunID string

	rng              *rand.Rand
	nextCreationOrder uint64
	builderActions    map[ThingID]int // reset each tick: target -> builder count this tick

	spatialIndex *spatial.Index
	revealed     map[int][]bool
}

// VictoryState tracks a registered per-team victory precondition (e.g.
// a regicide king registration, or how long a team has held a
// wonder/relic/hill/territory condition).
type VictoryState struct {
	KingAgentID   int
	KingRegistered bool
	HoldTicks     int
}

// NewWorld constructs an empty World sized per config, with a seeded
// deterministic RNG and a zero-value grid (all Empty terrain, elevation
// 0). Callers populate the grid via Reset or direct entity placement.
func NewWorld(cfg EnvironmentConfig, logger zerolog.Logger) *World {
	w := &World{
		Config:              cfg,
		Logger:              logger,
		width:               worldtypes.MapWidth,
		height:              worldtypes.MapHeight,
		things:              make(map[ThingID]*Thing),
		thingsByKind:        make(map[worldtypes.ThingKind][]*Thing),
		agents:              make([]*Thing, worldtypes.MapAgents),
		TeamStockpiles:      make(map[int]map[worldtypes.StockpileResource]int),
		TeamCivBonuses:      make(map[int]worldtypes.CivBonus),
		TeamUniversityTechs: make(map[int]map[string]bool),
		TeamMarketPrices:    make(map[int]map[worldtypes.StockpileResource]int),
		TeamTributesSent:    make(map[int]int),
		TeamTributesReceived: make(map[int]int),
		Terminated:          make([]float64, worldtypes.MapAgents),
		Truncated:           make([]float64, worldtypes.MapAgents),
		VictoryWinner:       -1,
		VictoryStates:       make(map[int]VictoryState),
		builderActions:      make(map[ThingID]int),
	}
	w.foreground = make([]*Thing, w.width*w.height)
	w.background = make([]*Thing, w.width*w.height)
	w.terrain = make([]worldtypes.TerrainKind, w.width*w.height)
	w.elevation = make([]int8, w.width*w.height)
	w.biome = make([]uint8, w.width*w.height)

	seed := cfg.Seed
	w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	w.RunID = uuid.NewSHA1(uuid.NameSpaceOID, []byte{
		byte(seed), byte(seed >> 8), byte(seed >> 16), byte(seed >> 24),
	}).String()

	for i := 0; i < worldtypes.MapAgents; i++ {
		t := NewThing(worldtypes.KindAgent)
		t.IsAgent = true
		t.AgentID = i
		t.TeamID = i / worldtypes.MapAgentsPerTeam
		w.agents[i] = t
		w.things[t.ID] = t
		w.Terminated[i] = 1.0
	}

	for team := 0; team < worldtypes.MapRoomObjectsTeams; team++ {
		w.TeamStockpiles[team] = make(map[worldtypes.StockpileResource]int)
		w.TeamCivBonuses[team] = worldtypes.DefaultCivBonus
		w.TeamUniversityTechs[team] = make(map[string]bool)
		prices := make(map[worldtypes.StockpileResource]int)
		for _, r := range worldtypes.TradableResources {
			prices[r] = worldtypes.MarketBasePrice
		}
		w.TeamMarketPrices[team] = prices
	}

	return w
}

// Width and Height report the grid dimensions.
func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

// InBounds reports whether p lies within [0,Width) x [0,Height).
func (w *World) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w.width && p.Y < w.height
}

func (w *World) index(p Position) int {
	return p.Y*w.width + p.X
}

// Rng returns the world's deterministic random source. No package may
// use math/rand's global source or time-seeded randomness — every
// stochastic choice (map generation, connectivity-repair tie-breaks)
// must flow through here to preserve spec.md §7's determinism property.
func (w *World) Rng() *rand.Rand { return w.rng }

// NextCreationOrder returns a monotonically increasing counter used to
// break auto-fire targeting ties by structure construction order.
func (w *World) NextCreationOrder() uint64 {
	w.nextCreationOrder++
	return w.nextCreationOrder
}

// --- Entity store (spec.md §4.1) ---

// Add places a thing into owning storage, appends it to the per-kind
// index, and — if Pos is valid and the kind is not a background kind —
// writes it into the foreground grid. Background kinds are written to
// the overlay instead.
func (w *World) Add(t *Thing) {
	if _, exists := w.things[t.ID]; !exists {
		w.things[t.ID] = t
		w.thingsByKind[t.Kind] = append(w.thingsByKind[t.Kind], t)
	}
	if t.CreationOrder == 0 {
		t.CreationOrder = w.NextCreationOrder()
	}
	if !t.Pos.IsOffGrid() && w.InBounds(t.Pos) {
		if worldtypes.IsBackgroundKind(t.Kind) {
			w.background[w.index(t.Pos)] = t
		} else {
			w.foreground[w.index(t.Pos)] = t
		}
	}
	w.upsertSpatialEntry(t)
}

// Remove takes a thing off the grid (both layers, defensively) and out
// of the per-kind index, but keeps its entry in the owning map only if
// it is still a live agent slot (agent slots are reused across
// respawns, never reallocated, per spec.md §3's lifecycle rule).
func (w *World) Remove(t *Thing) {
	if !t.Pos.IsOffGrid() && w.InBounds(t.Pos) {
		idx := w.index(t.Pos)
		if w.foreground[idx] == t {
			w.foreground[idx] = nil
		}
		if w.background[idx] == t {
			w.background[idx] = nil
		}
	}
	if w.spatialIndex != nil {
		w.spatialIndex.Remove(uint64(t.ID))
	}
	if t.IsAgent {
		// Agent slots persist in the store across death/respawn.
		return
	}
	delete(w.things, t.ID)
	w.removeFromKindIndex(t)
}

func (w *World) removeFromKindIndex(t *Thing) {
	list := w.thingsByKind[t.Kind]
	for i, other := range list {
		if other == t {
			w.thingsByKind[t.Kind] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// MoveThing relocates t to a new on-grid position, updating both grid
// layers. Callers are responsible for validating the move is legal;
// MoveThing only maintains the occupancy invariant.
func (w *World) MoveThing(t *Thing, to Position) {
	if !t.Pos.IsOffGrid() && w.InBounds(t.Pos) {
		idx := w.index(t.Pos)
		if worldtypes.IsBackgroundKind(t.Kind) {
			if w.background[idx] == t {
				w.background[idx] = nil
			}
		} else if w.foreground[idx] == t {
			w.foreground[idx] = nil
		}
	}
	t.Pos = to
	if !to.IsOffGrid() && w.InBounds(to) {
		idx := w.index(to)
		if worldtypes.IsBackgroundKind(t.Kind) {
			w.background[idx] = t
		} else {
			w.foreground[idx] = t
		}
	}
	w.upsertSpatialEntry(t)
}

// RefreshSpatialEntry re-indexes t at its current position and team
// without moving it, for callers that change a team-filterable field
// (monk conversion reassigns TeamID in place) and need the spatial
// index's team filter to reflect it within the same tick.
func (w *World) RefreshSpatialEntry(t *Thing) {
	w.upsertSpatialEntry(t)
}

// upsertSpatialEntry keeps an already-initialized spatial index current
// after a single thing's position or team changes, per spec.md §9's
// incremental-maintenance option — it is a no-op until the index has
// been lazily created by a first query or RebuildSpatialIndex call.
func (w *World) upsertSpatialEntry(t *Thing) {
	if w.spatialIndex == nil {
		return
	}
	if t.Pos.IsOffGrid() {
		w.spatialIndex.Remove(uint64(t.ID))
		return
	}
	w.spatialIndex.Upsert(spatial.Entry{
		ID: uint64(t.ID), X: t.Pos.X, Y: t.Pos.Y,
		Kind: int(t.Kind), TeamID: t.TeamID,
	})
}

// GetThing returns the foreground occupant at p, or nil. Out-of-bounds
// positions always return nil, never panic.
func (w *World) GetThing(p Position) *Thing {
	if !w.InBounds(p) {
		return nil
	}
	return w.foreground[w.index(p)]
}

// GetBackgroundThing returns the background overlay occupant at p, or
// nil.
func (w *World) GetBackgroundThing(p Position) *Thing {
	if !w.InBounds(p) {
		return nil
	}
	return w.background[w.index(p)]
}

// ReclassifyKind moves t from its current per-kind index bucket to
// newKind's, for in-place kind transitions (Tree -> Stump, Corpse ->
// Skeleton) that must not disturb the thing's identity or position.
func (w *World) ReclassifyKind(t *Thing, newKind worldtypes.ThingKind) {
	w.removeFromKindIndex(t)
	t.Kind = newKind
	w.thingsByKind[newKind] = append(w.thingsByKind[newKind], t)
}

// ThingsByKind returns the live things of a given kind. The returned
// slice is owned by the world and must not be mutated by callers.
func (w *World) ThingsByKind(k worldtypes.ThingKind) []*Thing {
	return w.thingsByKind[k]
}

// AllThings returns every thing in the store, in no particular order.
func (w *World) AllThings() map[ThingID]*Thing {
	return w.things
}

// Agent returns the agent Thing for an agent ID, or nil if out of
// range (a defensive guard per spec.md §7's precondition-violation
// policy).
func (w *World) Agent(agentID int) *Thing {
	if agentID < 0 || agentID >= len(w.agents) {
		return nil
	}
	return w.agents[agentID]
}

// Agents returns the full, stable agent slice indexed by AgentID.
func (w *World) Agents() []*Thing { return w.agents }

// TeamOf returns the team ID owning an agent ID, or -1 if out of range.
func TeamOf(agentID int) int {
	if agentID < 0 {
		return -1
	}
	return agentID / worldtypes.MapAgentsPerTeam
}

// RecordBuilderAction tallies a builder acting on a construction target
// this tick, for the multi-builder bonus. Reset at the start of each
// tick by the tick orchestrator via ResetBuilderActions.
func (w *World) RecordBuilderAction(target ThingID) int {
	w.builderActions[target]++
	return w.builderActions[target]
}

// ResetBuilderActions clears the per-tick builder tally.
func (w *World) ResetBuilderActions() {
	for k := range w.builderActions {
		delete(w.builderActions, k)
	}
}
