package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells or pixels
	ScreenH  int   // Screen height in cells or pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	HiScore  int  // Best score across sessions
	Level    int  // Current level, starting at 1
	Lives    int  // Lives remaining
	Active   bool // False before the first start and after game over
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is a notable thing that happened during one tick.
// Frontends use events for sound and logging.
type Event int

const (
	EventFired        Event = iota // A projectile was spawned
	EventImpact                    // At least one alien was destroyed
	EventLifeLost                  // Ship hit or fleet reached the bottom
	EventLevelCleared              // Fleet emptied, next level started
	EventGameOver                  // No lives left
	EventHiScore                   // Hi-score raised; persist it
	EventStarted                   // A new game was started
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFired:
		return "fired"
	case EventImpact:
		return "impact"
	case EventLifeLost:
		return "life_lost"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	case EventHiScore:
		return "hi_score"
	case EventStarted:
		return "started"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event happened during the tick.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
