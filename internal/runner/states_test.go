package runner

import (
	"testing"

	"github.com/vovakirdan/rooftop-runner/internal/audio"
)

func newTestMachine(t *testing.T) StateMachine {
	t.Helper()
	player := audio.NewPlayer()
	jump, err := player.LoadSound(audio.SoundJump)
	if err != nil {
		t.Fatalf("LoadSound() failed: %v", err)
	}
	return NewStateMachine(player, jump)
}

func TestStateMachineStartsIdle(t *testing.T) {
	m := newTestMachine(t)

	if m.Kind != StateIdle {
		t.Errorf("initial state = %v, want Idle", m.Kind)
	}
	ctx := m.Context()
	if ctx.Position.X != startingPoint || ctx.Position.Y != floor {
		t.Errorf("initial position = %+v, want (%d, %d)", ctx.Position, startingPoint, floor)
	}
	if m.FrameName() != "Idle" {
		t.Errorf("FrameName() = %q, want Idle", m.FrameName())
	}
}

func TestTransitionIsTotal(t *testing.T) {
	base := newTestMachine(t)

	// The handled pairs of the transition table; every other pair must be
	// an exact self-loop, returning the machine unchanged.
	handled := map[StateKind]map[EventKind]bool{
		StateIdle:       {EventRun: true, EventUpdate: true},
		StateRunning:    {EventJump: true, EventSlide: true, EventKnockOut: true, EventLand: true, EventUpdate: true},
		StateJumping:    {EventKnockOut: true, EventLand: true, EventUpdate: true},
		StateSliding:    {EventKnockOut: true, EventLand: true, EventUpdate: true},
		StateFalling:    {EventUpdate: true},
		StateKnockedOut: {EventUpdate: true},
	}

	kinds := []StateKind{StateIdle, StateRunning, StateJumping, StateSliding, StateFalling, StateKnockedOut}
	events := []Event{
		{Kind: EventRun},
		{Kind: EventJump},
		{Kind: EventSlide},
		Land(lowPlatform),
		{Kind: EventKnockOut},
		{Kind: EventUpdate},
	}

	for _, kind := range kinds {
		for _, ev := range events {
			m := StateMachine{Kind: kind, ctx: base.ctx}
			next := m.Transition(ev)
			if next.Kind < StateIdle || next.Kind > StateKnockedOut {
				t.Errorf("Transition(%v, %v) produced invalid state %v", kind, ev.Kind, next.Kind)
			}
			if !handled[kind][ev.Kind] && next != m {
				t.Errorf("Transition(%v, %v) = %+v, want unchanged machine", kind, ev.Kind, next)
			}
		}
	}
}

func TestIdleRunStartsRunning(t *testing.T) {
	m := newTestMachine(t)

	m = m.Transition(Event{Kind: EventRun})
	if m.Kind != StateRunning {
		t.Fatalf("state = %v, want Running", m.Kind)
	}
	if m.Context().Velocity.X != runningSpeed {
		t.Errorf("Velocity.X = %d, want %d", m.Context().Velocity.X, runningSpeed)
	}
	if m.Context().Frame != 0 {
		t.Errorf("Frame = %d, want 0 after transition", m.Context().Frame)
	}

	// A second run event is an ignored self-loop, not a speed doubling.
	m = m.Transition(Event{Kind: EventRun})
	if m.Context().Velocity.X != runningSpeed {
		t.Errorf("Velocity.X after repeat run = %d, want %d", m.Context().Velocity.X, runningSpeed)
	}
}

func TestRunningKeepsScreenXFixed(t *testing.T) {
	m := newTestMachine(t).Transition(Event{Kind: EventRun})

	for i := 0; i < 50; i++ {
		m = m.Update()
	}

	// The world scrolls; the character's x never moves.
	if m.Context().Position.X != startingPoint {
		t.Errorf("Position.X = %d, want %d", m.Context().Position.X, startingPoint)
	}
	if m.Context().Position.Y != floor {
		t.Errorf("Position.Y = %d, want floor %d", m.Context().Position.Y, floor)
	}
}

func TestJumpArcAutoLands(t *testing.T) {
	m := newTestMachine(t).Transition(Event{Kind: EventRun})
	m = m.Transition(Event{Kind: EventJump})

	if m.Kind != StateJumping {
		t.Fatalf("state = %v, want Jumping", m.Kind)
	}
	if m.Context().Velocity.Y != jumpSpeed {
		t.Errorf("Velocity.Y = %d, want %d", m.Context().Velocity.Y, jumpSpeed)
	}

	rose := false
	steps := 0
	for m.Kind == StateJumping {
		m = m.Update()
		if m.Context().Position.Y < floor {
			rose = true
		}
		steps++
		if steps > 200 {
			t.Fatal("jump never landed")
		}
	}

	if !rose {
		t.Error("jump never left the floor")
	}
	if m.Kind != StateRunning {
		t.Errorf("state after landing = %v, want Running", m.Kind)
	}
	if m.Context().Position.Y != floor {
		t.Errorf("Position.Y after landing = %d, want floor %d", m.Context().Position.Y, floor)
	}
}

func TestSlideStandsUpAfterAnimation(t *testing.T) {
	m := newTestMachine(t).Transition(Event{Kind: EventRun})
	m = m.Transition(Event{Kind: EventSlide})

	if m.Kind != StateSliding {
		t.Fatalf("state = %v, want Sliding", m.Kind)
	}

	for i := 0; i < slidingFrames-1; i++ {
		m = m.Update()
		if m.Kind != StateSliding {
			t.Fatalf("stood up after %d updates, want %d", i+1, slidingFrames)
		}
	}

	m = m.Update()
	if m.Kind != StateRunning {
		t.Errorf("state after full slide = %v, want Running", m.Kind)
	}
	if m.Context().Frame != 0 {
		t.Errorf("Frame after standing = %d, want 0", m.Context().Frame)
	}
}

func TestKnockOutFallsThenParks(t *testing.T) {
	m := newTestMachine(t).Transition(Event{Kind: EventRun})
	m = m.Transition(Event{Kind: EventKnockOut})

	if m.Kind != StateFalling {
		t.Fatalf("state = %v, want Falling", m.Kind)
	}
	if m.Context().Velocity.X != 0 {
		t.Errorf("Velocity.X = %d, want 0 after knockout", m.Context().Velocity.X)
	}
	if m.FrameName() != "Dead" {
		t.Errorf("FrameName() = %q, want Dead", m.FrameName())
	}

	for i := 0; i < fallingFrames; i++ {
		if m.Kind != StateFalling {
			t.Fatalf("parked after %d updates, want %d", i, fallingFrames)
		}
		m = m.Update()
	}

	if m.Kind != StateKnockedOut {
		t.Errorf("state after death animation = %v, want KnockedOut", m.Kind)
	}
	if !m.KnockedOut() {
		t.Error("KnockedOut() = false in terminal state")
	}

	// The terminal state holds the last death cell forever.
	for i := 0; i < 10; i++ {
		m = m.Update()
		if m.Kind != StateKnockedOut {
			t.Fatal("left terminal state")
		}
		if got := m.Context().Frame/3 + 1; got != 10 {
			t.Errorf("death cell = %d, want 10", got)
		}
	}
}

func TestGravityCapsAtTerminalVelocity(t *testing.T) {
	m := newTestMachine(t).Transition(Event{Kind: EventRun})
	m = m.Transition(Event{Kind: EventKnockOut})

	for i := 0; i < terminalVelocity+20; i++ {
		m = m.Update()
		if m.Context().Velocity.Y > terminalVelocity {
			t.Fatalf("Velocity.Y = %d exceeds terminal velocity %d", m.Context().Velocity.Y, terminalVelocity)
		}
	}
	if m.Context().Velocity.Y != terminalVelocity {
		t.Errorf("Velocity.Y = %d, want capped at %d", m.Context().Velocity.Y, terminalVelocity)
	}
}

func TestLandWhileJumpingSetsOnSurface(t *testing.T) {
	m := newTestMachine(t).Transition(Event{Kind: EventRun})
	m = m.Transition(Event{Kind: EventJump})

	m = m.Transition(Land(lowPlatform))

	if m.Kind != StateRunning {
		t.Errorf("state = %v, want Running after landing", m.Kind)
	}
	want := lowPlatform - playerHeight
	if m.Context().Position.Y != want {
		t.Errorf("Position.Y = %d, want %d", m.Context().Position.Y, want)
	}
}

func TestLandWhileSlidingKeepsSliding(t *testing.T) {
	m := newTestMachine(t).Transition(Event{Kind: EventRun})
	m = m.Transition(Event{Kind: EventSlide})

	m = m.Transition(Land(lowPlatform))

	if m.Kind != StateSliding {
		t.Errorf("state = %v, want Sliding preserved across landing", m.Kind)
	}
	want := lowPlatform - playerHeight
	if m.Context().Position.Y != want {
		t.Errorf("Position.Y = %d, want %d", m.Context().Position.Y, want)
	}
}

func TestIdleIgnoresJumpAndSlide(t *testing.T) {
	m := newTestMachine(t)

	if next := m.Transition(Event{Kind: EventJump}); next.Kind != StateIdle {
		t.Errorf("jump from idle = %v, want Idle", next.Kind)
	}
	if next := m.Transition(Event{Kind: EventSlide}); next.Kind != StateIdle {
		t.Errorf("slide from idle = %v, want Idle", next.Kind)
	}
}
