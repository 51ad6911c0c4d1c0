package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventType identifies a notification emitted by a game during a tick.
type EventType int

const (
	// EventCleared is emitted when a selection matched the target and its
	// tiles were removed from the board.
	EventCleared EventType = iota
	// EventGameOver is emitted once when the session reaches its terminal
	// state.
	EventGameOver
)

// Event is a notification for the platform layer (celebration effects,
// score persistence). Events carry no required response.
type Event struct {
	Type       EventType
	Count      int // Tiles cleared (EventCleared only)
	ScoreDelta int // Points awarded (EventCleared only)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
