package engine

import "sync"

// KeyPress is a single key transition produced by the host input listener.
type KeyPress struct {
	Code string
	Down bool
}

// InputQueue is the unbounded single-producer/single-consumer handoff between
// the host input listener and the game loop. The listener pushes transitions
// as they arrive; the loop drains the queue at the start of every frame
// callback, so games see level-sampled key state.
type InputQueue struct {
	mu     sync.Mutex
	events []KeyPress
}

// NewInputQueue creates an empty input queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push appends a key transition. Never blocks.
func (q *InputQueue) Push(ev KeyPress) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain applies all pending transitions to the key state, in arrival order.
func (q *InputQueue) Drain(keys *KeyState) {
	q.mu.Lock()
	pending := q.events
	q.events = nil
	q.mu.Unlock()

	for _, ev := range pending {
		if ev.Down {
			keys.setPressed(ev.Code)
		} else {
			keys.setReleased(ev.Code)
		}
	}
}

// KeyState holds the current "is this key down" view of the keyboard.
// Games only read it; the loop updates it from the input queue.
type KeyState struct {
	pressed map[string]bool
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{pressed: make(map[string]bool)}
}

// IsPressed reports whether the given key code is currently held down.
func (k *KeyState) IsPressed(code string) bool {
	return k.pressed[code]
}

func (k *KeyState) setPressed(code string) {
	k.pressed[code] = true
}

func (k *KeyState) setReleased(code string) {
	delete(k.pressed, code)
}
