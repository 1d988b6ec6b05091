package engine

import "testing"

func TestInputQueueDrainOrder(t *testing.T) {
	q := NewInputQueue()
	keys := NewKeyState()

	q.Push(KeyPress{Code: "Space", Down: true})
	q.Push(KeyPress{Code: "ArrowRight", Down: true})
	q.Push(KeyPress{Code: "Space", Down: false})

	q.Drain(keys)

	if keys.IsPressed("Space") {
		t.Error("Space was released last, should be up")
	}
	if !keys.IsPressed("ArrowRight") {
		t.Error("ArrowRight should be down")
	}
}

func TestInputQueueDrainEmpties(t *testing.T) {
	q := NewInputQueue()
	keys := NewKeyState()

	q.Push(KeyPress{Code: "Space", Down: true})
	q.Drain(keys)

	// Release after the first drain; the press must not reappear.
	q.Push(KeyPress{Code: "Space", Down: false})
	q.Drain(keys)

	if keys.IsPressed("Space") {
		t.Error("Space should be up after release drained")
	}
}

func TestKeyStateLevelSampling(t *testing.T) {
	q := NewInputQueue()
	keys := NewKeyState()

	q.Push(KeyPress{Code: "ArrowDown", Down: true})
	q.Drain(keys)

	// No new events: state persists across drains until a release arrives.
	q.Drain(keys)
	if !keys.IsPressed("ArrowDown") {
		t.Error("held key should stay pressed across empty drains")
	}

	q.Push(KeyPress{Code: "ArrowDown", Down: false})
	q.Drain(keys)
	if keys.IsPressed("ArrowDown") {
		t.Error("key should be released")
	}
}

func TestKeyStateUnknownKey(t *testing.T) {
	keys := NewKeyState()
	if keys.IsPressed("NoSuchKey") {
		t.Error("unknown keys are up by default")
	}
}
