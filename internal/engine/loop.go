// Package engine provides the simulation-facing runtime: the fixed-timestep
// loop, keyboard state sampling, and the rendering abstractions games draw
// through. It knows nothing about terminals or Bubble Tea.
package engine

// FrameDuration is the length of one logical update in milliseconds.
// The simulation always advances at 60 Hz regardless of how fast the host
// delivers frame callbacks.
const FrameDuration = 1000.0 / 60.0

// Game is the simulation driven by the loop: zero or more Update calls per
// frame callback, then exactly one Draw.
type Game interface {
	Update(keys *KeyState)
	Draw(r Renderer)
}

// Loop accumulates wall-clock time between host frame callbacks and converts
// it into fixed-duration logical updates. A long gap between callbacks
// produces a burst of catch-up updates, never skipped time.
type Loop struct {
	game        Game
	queue       *InputQueue
	keys        *KeyState
	accumulated float64
	lastFrame   float64
}

// NewLoop creates a loop starting at the given wall-clock time (ms).
func NewLoop(game Game, queue *InputQueue, startMs float64) *Loop {
	return &Loop{
		game:      game,
		queue:     queue,
		keys:      NewKeyState(),
		lastFrame: startMs,
	}
}

// Frame processes one host frame callback: drain queued input, run the
// logical updates covered by the elapsed time, then issue a single draw.
// Returns the number of logical updates performed, which may be zero.
func (l *Loop) Frame(nowMs float64, r Renderer) int {
	l.queue.Drain(l.keys)

	l.accumulated += nowMs - l.lastFrame
	updates := 0
	for l.accumulated > FrameDuration {
		l.game.Update(l.keys)
		l.accumulated -= FrameDuration
		updates++
	}
	l.lastFrame = nowMs

	l.game.Draw(r)
	return updates
}

// Accumulated returns the unconsumed elapsed time in milliseconds.
func (l *Loop) Accumulated() float64 {
	return l.accumulated
}
