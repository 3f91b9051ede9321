// Package tick is the orchestrator: it owns the fixed per-step phase
// sequence of spec.md §5 and exposes the external-interface surface of
// spec.md §6 to the (out-of-scope) decision controller.
package tick

import (
	"github.com/rs/zerolog"

	"github.com/1siamBot/tribal-sim/engine/observation"
	"github.com/1siamBot/tribal-sim/engine/world"
	"github.com/1siamBot/tribal-sim/engine/worldtypes"
)

// Env is the deterministic, single-threaded simulation core: a World
// plus the bookkeeping needed to run one step and answer the external
// interface's read-only queries.
type Env struct {
	world *world.World

	lastObservations map[int]observation.Window
}

// NewEnvironment builds a fresh episode from cfg and immediately resets
// it, matching the teacher's constructor-initializes-ready-to-play
// convention.
func NewEnvironment(cfg world.EnvironmentConfig, logger zerolog.Logger) *Env {
	env := &Env{world: world.NewWorld(cfg, logger)}
	env.Reset()
	return env
}

// Reset restarts the episode: delegates to World.Reset, then republishes
// the initial observation window so a caller may inspect state before
// submitting the first action batch.
func (e *Env) Reset() {
	e.world.Reset()
	e.world.RebuildSpatialIndex()
	e.lastObservations = observation.Build(e.world)
}

// World exposes the underlying world model for packages (tests,
// tooling) that need direct access beyond the external-interface
// surface below.
func (e *Env) World() *world.World { return e.world }

// --- External interface (spec.md §6) ---

// GetThing returns the foreground occupant at p, or nil.
func (e *Env) GetThing(p world.Position) *world.Thing { return e.world.GetThing(p) }

// Agent returns the agent Thing for an agent ID, or nil if out of range.
func (e *Env) Agent(agentID int) *world.Thing { return e.world.Agent(agentID) }

// Agents returns the stable agent slice indexed by AgentID.
func (e *Env) Agents() []*world.Thing { return e.world.Agents() }

// StockpileCount returns a team's stockpile count for a resource.
func (e *Env) StockpileCount(team int, res worldtypes.StockpileResource) int {
	return e.world.TeamStockpiles[team][res]
}

// IsRevealed reports whether p is within team's fog-of-war reveal set.
func (e *Env) IsRevealed(team int, p world.Position) bool {
	return e.world.IsRevealed(team, p)
}

// ThingsByKind returns the live things of a given kind.
func (e *Env) ThingsByKind(k worldtypes.ThingKind) []*world.Thing {
	return e.world.ThingsByKind(k)
}

// Terminated reports whether agentID's episode-termination flag is set.
func (e *Env) Terminated(agentID int) float64 { return e.world.Terminated[agentID] }

// Truncated reports whether agentID's episode-truncation flag is set.
func (e *Env) Truncated(agentID int) float64 { return e.world.Truncated[agentID] }

// VictoryWinner returns the winning team, or -1 if undecided.
func (e *Env) VictoryWinner() int { return e.world.VictoryWinner }

// Observations returns the most recently published per-agent windows.
func (e *Env) Observations() map[int]observation.Window { return e.lastObservations }

// CurrentStep returns the episode's elapsed tick count.
func (e *Env) CurrentStep() int { return e.world.CurrentStep }

// ShouldReset reports whether the episode has ended (victory or
// maxSteps) and is awaiting a Reset call.
func (e *Env) ShouldReset() bool { return e.world.ShouldReset }
