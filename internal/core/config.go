package core

// WorldWidth and WorldHeight are the virtual-pixel dimensions the simulation
// runs in. The platform layer scales this space onto the terminal.
const (
	WorldWidth  = 600
	WorldHeight = 600
)

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Host frame delivery rate; logical updates stay at 60 Hz
	Seed      int64 // RNG seed for deterministic segment generation
	Mute      bool  // Skip audio device initialization
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState reports session status to the platform layer.
type GameState struct {
	Score    int  // Distance survived in ticks
	Ready    bool // Waiting for the first move input
	GameOver bool // Whether the current run has ended
}
