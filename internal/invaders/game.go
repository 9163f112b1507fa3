// Package invaders implements the Alien Invasion game logic.
// The player's ship fires upward at a randomly populated alien fleet that
// sweeps sideways, drops at the screen edges and descends toward the ship.
//
// The package is pure logic: no terminal, window, audio or file access.
// Frontends feed a core.InputFrame into Step once per frame and draw
// either through Render or from the entity accessors.
package invaders

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// GameID identifies Alien Invasion in the score history.
const GameID = "invaders"

// Phase is the session state machine.
type Phase int

const (
	PhaseIdle       Phase = iota // Waiting for the first Start Battle
	PhasePlaying                 // Simulation running
	PhaseRespawning              // Frozen after a lost life
	PhasePaused                  // Frozen by the player
	PhaseGameOver                // No lives left; only restart is processed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseRespawning:
		return "respawning"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is one Alien Invasion session.
type Game struct {
	settings config.Settings
	dyn      config.Dynamic
	cfg      core.RuntimeConfig

	fieldW float64
	fieldH float64

	rng   *rand.Rand
	ship  *Ship
	fleet *Fleet
	stats Stats

	phase       Phase
	respawnLeft int    // Ticks until PhaseRespawning ends
	tick        uint64 // Ticks since Reset
}

// New validates the settings against the field in cfg and builds an idle
// game. hiScore is the persisted best score.
func New(settings config.Settings, cfg core.RuntimeConfig, hiScore int) (*Game, error) {
	if err := config.Validate(settings, cfg.ScreenW, cfg.ScreenH); err != nil {
		return nil, err
	}

	g := &Game{
		settings: settings,
		stats:    NewStats(settings.Gameplay.Lives, hiScore),
	}
	g.Reset(cfg)
	return g, nil
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// Reset rebuilds the playfield for cfg and returns to the idle phase.
// MaxScore and HiScore survive; everything else starts over.
// The settings must already have been validated against cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g.cfg = cfg
	g.fieldW = float64(cfg.ScreenW)
	g.fieldH = float64(cfg.ScreenH)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	s := g.settings
	arsenal := NewArsenal(s.Bullet.Max, s.Bullet.Width, s.Bullet.Height)
	g.ship = NewShip(s.Ship.Width, s.Ship.Height, g.fieldW, g.fieldH, arsenal)
	g.fleet = NewFleet(FleetOptions{
		AlienW:      s.Alien.Width,
		AlienH:      s.Alien.Height,
		FieldW:      cfg.ScreenW,
		FieldH:      cfg.ScreenH,
		Drop:        s.Fleet.Drop,
		Direction:   s.Fleet.Direction,
		SpawnChance: s.Gameplay.SpawnChance,
	}, g.rng)

	g.dyn = s.InitialDynamic()
	g.stats.Reset(g.dyn.Lives)
	g.applyDynamic()

	// The idle screen shows a fleet behind the start overlay
	g.fleet.Spawn()
	g.phase = PhaseIdle
	g.respawnLeft = 0
}

// Step advances the game by one frame.
// Actions are applied in order, then the world is updated:
// ship, fleet, collisions and finally session bookkeeping.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	for _, a := range in.Actions {
		events = g.handleAction(a, events)
	}

	switch g.phase {
	case PhaseRespawning:
		g.respawnLeft--
		if g.respawnLeft <= 0 {
			g.phase = PhasePlaying
		}
	case PhasePlaying:
		g.ship.Update()
		g.fleet.Update(g.fieldW)
		events = g.resolveCollisions(events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// handleAction applies a single input action.
func (g *Game) handleAction(a core.Action, events []core.Event) []core.Event {
	switch a {
	case core.ActionLeftStart:
		g.ship.SetMovingLeft(true)
	case core.ActionLeftStop:
		g.ship.SetMovingLeft(false)
	case core.ActionRightStart:
		g.ship.SetMovingRight(true)
	case core.ActionRightStop:
		g.ship.SetMovingRight(false)
	case core.ActionFire:
		if g.phase == PhasePlaying && g.ship.Fire() {
			events = append(events, core.EventFired)
		}
	case core.ActionPause:
		switch g.phase {
		case PhasePlaying:
			g.phase = PhasePaused
		case PhasePaused:
			g.phase = PhasePlaying
		}
	case core.ActionRestart:
		if !g.Active() {
			g.start()
			events = append(events, core.EventStarted)
		}
	}
	return events
}

// start begins a new game from the idle or game-over phase.
func (g *Game) start() {
	g.dyn = g.settings.InitialDynamic()
	g.stats.Reset(g.dyn.Lives)
	g.applyDynamic()
	g.fleet.SetDirection(g.settings.Fleet.Direction)
	g.ship.StopMoving()
	g.resetLevel()
	g.phase = PhasePlaying
}

// resolveCollisions handles ship hits, the fleet landing and bullet impacts.
// At most one life is lost per frame: a life-loss ends the frame.
func (g *Game) resolveCollisions(events []core.Event) []core.Event {
	if g.ship.HitBy(g.fleet) {
		return g.loseLife(events)
	}
	if g.fleet.ReachedBottom(g.fieldH) {
		return g.loseLife(events)
	}

	destroyed := g.fleet.ResolveHits(g.ship.Arsenal())
	if len(destroyed) > 0 {
		events = append(events, core.EventImpact)
		if g.stats.AddKills(len(destroyed), g.dyn.AlienPoints) {
			events = append(events, core.EventHiScore)
		}
	}

	if g.fleet.Empty() {
		g.stats.NextLevel()
		g.dyn = g.dyn.Advance(g.settings.Scale)
		g.applyDynamic()
		g.ship.Arsenal().Clear()
		g.fleet.Spawn()
		events = append(events, core.EventLevelCleared)
	}
	return events
}

// loseLife removes a life and either resets the level behind a short
// freeze or ends the game.
func (g *Game) loseLife(events []core.Event) []core.Event {
	events = append(events, core.EventLifeLost)

	if !g.stats.LoseLife() {
		g.phase = PhaseGameOver
		return append(events, core.EventGameOver)
	}

	g.resetLevel()
	g.respawnLeft = g.respawnTicks()
	if g.respawnLeft > 0 {
		g.phase = PhaseRespawning
	}
	return events
}

// resetLevel clears bullets and aliens, spawns a fresh fleet and recenters the ship.
func (g *Game) resetLevel() {
	g.ship.Arsenal().Clear()
	g.fleet.Spawn()
	g.ship.Center()
}

// respawnTicks converts the configured pause to frames.
func (g *Game) respawnTicks() int {
	return int(math.Round(g.settings.Gameplay.RespawnPause * float64(g.settings.FPS)))
}

// applyDynamic pushes the current difficulty values into the entities.
func (g *Game) applyDynamic() {
	g.ship.SetSpeeds(g.dyn.ShipSpeed, g.dyn.BulletSpeed)
	g.ship.Arsenal().SetMax(g.dyn.MaxBullets)
	g.fleet.SetSpeed(g.dyn.FleetSpeed)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		HiScore:  g.stats.HiScore,
		Level:    g.stats.Level,
		Lives:    g.stats.Lives,
		Active:   g.Active(),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Active reports whether a game is in progress. It is false before the
// first start and after game over.
func (g *Game) Active() bool {
	return g.phase != PhaseIdle && g.phase != PhaseGameOver
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Stats returns a copy of the session counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// Dynamic returns the current difficulty values.
func (g *Game) Dynamic() config.Dynamic {
	return g.dyn
}

// Ship returns the player's ship.
func (g *Game) Ship() *Ship {
	return g.ship
}

// Fleet returns the alien fleet.
func (g *Game) Fleet() *Fleet {
	return g.fleet
}

// Field returns the playfield size.
func (g *Game) Field() (float64, float64) {
	return g.fieldW, g.fieldH
}

// Tick returns the number of frames stepped since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}
