package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rooftop-runner/internal/audio"
	"github.com/vovakirdan/rooftop-runner/internal/core"
)

// Character physics and animation tuning. These are fixed gameplay constants,
// not configuration.
const (
	floor            = 479
	playerHeight     = worldHeight - floor
	gravity          = 1
	terminalVelocity = 20
	startingPoint    = -20
	runningSpeed     = 4
	jumpSpeed        = -25

	idleFrames    = 29
	runningFrames = 23
	slidingFrames = 14
	jumpingFrames = 35
	fallingFrames = 29

	idleFrameName    = "Idle"
	runFrameName     = "Run"
	jumpFrameName    = "Jump"
	slidingFrameName = "Slide"
	fallingFrameName = "Dead"
)

// StateKind identifies the active character state.
type StateKind int

const (
	StateIdle StateKind = iota
	StateRunning
	StateJumping
	StateSliding
	StateFalling
	StateKnockedOut
)

// String returns the state's name as used in HUD and logs.
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateJumping:
		return "Jumping"
	case StateSliding:
		return "Sliding"
	case StateFalling:
		return "Falling"
	case StateKnockedOut:
		return "KnockedOut"
	default:
		return "Unknown"
	}
}

// EventKind identifies an event pushed through the state machine.
type EventKind int

const (
	EventRun EventKind = iota
	EventJump
	EventSlide
	EventLand
	EventKnockOut
	EventUpdate
)

// Event is a state machine input. LandingY is only meaningful for EventLand.
type Event struct {
	Kind     EventKind
	LandingY int
}

// Land builds a landing event at the given surface height.
func Land(y int) Event {
	return Event{Kind: EventLand, LandingY: y}
}

// Context is the character data shared by every state: position, velocity,
// the animation frame counter, and the audio handles. It is passed by value
// through transitions so exactly one state owns it at any instant.
type Context struct {
	Position core.Point
	Velocity core.Point
	Frame    int

	player    *audio.Player
	jumpSound *audio.Sound
}

// update integrates one tick of physics and advances the animation counter.
// Gravity is capped at terminal velocity and the vertical position is clamped
// to the floor.
func (c Context) update(frameCount int) Context {
	if c.Velocity.Y < terminalVelocity {
		c.Velocity.Y += gravity
	}
	if c.Frame < frameCount {
		c.Frame++
	} else {
		c.Frame = 0
	}
	// Horizontal velocity scrolls the world, not the character; screen x
	// stays fixed while running.
	c.Position.Y += c.Velocity.Y
	if c.Position.Y > floor {
		c.Position.Y = floor
	}
	return c
}

func (c Context) resetFrame() Context {
	c.Frame = 0
	return c
}

func (c Context) runRight() Context {
	c.Velocity.X += runningSpeed
	return c
}

// setOn rests the character's feet on the given surface height.
func (c Context) setOn(position int) Context {
	c.Position.Y = position - playerHeight
	return c
}

func (c Context) setVerticalVelocity(y int) Context {
	c.Velocity.Y = y
	return c
}

func (c Context) stop() Context {
	c.Velocity.X = 0
	return c
}

func (c Context) playJumpSound() Context {
	if err := c.player.Play(c.jumpSound); err != nil {
		log.Warn("could not play jump sound", "error", err)
	}
	return c
}

// StateMachine is the character's closed set of states. Transition is total:
// any (state, event) pair not in the table below is an implicit self-loop.
// Transitions are pure; they return a new value rather than mutating.
type StateMachine struct {
	Kind StateKind
	ctx  Context
}

// NewStateMachine creates the machine in Idle at the starting position.
func NewStateMachine(player *audio.Player, jumpSound *audio.Sound) StateMachine {
	return StateMachine{
		Kind: StateIdle,
		ctx: Context{
			Position:  core.Point{X: startingPoint, Y: floor},
			player:    player,
			jumpSound: jumpSound,
		},
	}
}

// Context returns the shared character data.
func (m StateMachine) Context() Context {
	return m.ctx
}

// FrameName returns the animation name for the active state.
func (m StateMachine) FrameName() string {
	switch m.Kind {
	case StateIdle:
		return idleFrameName
	case StateRunning:
		return runFrameName
	case StateJumping:
		return jumpFrameName
	case StateSliding:
		return slidingFrameName
	default: // Falling and KnockedOut share the death animation.
		return fallingFrameName
	}
}

// KnockedOut reports whether the machine has reached its terminal state.
func (m StateMachine) KnockedOut() bool {
	return m.Kind == StateKnockedOut
}

// Update pushes an update event through the machine.
func (m StateMachine) Update() StateMachine {
	return m.Transition(Event{Kind: EventUpdate})
}

// Transition is the complete event table. Unhandled pairs return the machine
// unchanged.
func (m StateMachine) Transition(ev Event) StateMachine {
	switch m.Kind {
	case StateIdle:
		switch ev.Kind {
		case EventRun:
			return m.run()
		case EventUpdate:
			return m.idleUpdate()
		}
	case StateRunning:
		switch ev.Kind {
		case EventJump:
			return m.jump()
		case EventSlide:
			return m.slide()
		case EventKnockOut:
			return m.knockOut()
		case EventLand:
			return m.landOn(ev.LandingY, StateRunning)
		case EventUpdate:
			return m.runningUpdate()
		}
	case StateJumping:
		switch ev.Kind {
		case EventKnockOut:
			return m.knockOut()
		case EventLand:
			return m.landAfterJump(ev.LandingY)
		case EventUpdate:
			return m.jumpingUpdate()
		}
	case StateSliding:
		switch ev.Kind {
		case EventKnockOut:
			return m.knockOut()
		case EventLand:
			return m.landOn(ev.LandingY, StateSliding)
		case EventUpdate:
			return m.slidingUpdate()
		}
	case StateFalling:
		if ev.Kind == EventUpdate {
			return m.fallingUpdate()
		}
	case StateKnockedOut:
		if ev.Kind == EventUpdate {
			return m.knockedOutUpdate()
		}
	}
	return m
}

func (m StateMachine) run() StateMachine {
	return StateMachine{Kind: StateRunning, ctx: m.ctx.resetFrame().runRight()}
}

func (m StateMachine) jump() StateMachine {
	return StateMachine{
		Kind: StateJumping,
		ctx:  m.ctx.resetFrame().setVerticalVelocity(jumpSpeed).playJumpSound(),
	}
}

func (m StateMachine) slide() StateMachine {
	return StateMachine{Kind: StateSliding, ctx: m.ctx.resetFrame()}
}

func (m StateMachine) knockOut() StateMachine {
	return StateMachine{Kind: StateFalling, ctx: m.ctx.resetFrame().stop()}
}

// landOn repositions onto a surface without changing state; used when Running
// steps between adjacent platforms and when Sliding crosses onto one.
func (m StateMachine) landOn(position int, kind StateKind) StateMachine {
	return StateMachine{Kind: kind, ctx: m.ctx.setOn(position)}
}

// landAfterJump ends a jump on the given surface.
func (m StateMachine) landAfterJump(position int) StateMachine {
	return StateMachine{Kind: StateRunning, ctx: m.ctx.resetFrame().setOn(position)}
}

func (m StateMachine) idleUpdate() StateMachine {
	return StateMachine{Kind: StateIdle, ctx: m.ctx.update(idleFrames)}
}

func (m StateMachine) runningUpdate() StateMachine {
	return StateMachine{Kind: StateRunning, ctx: m.ctx.update(runningFrames)}
}

// jumpingUpdate integrates the ballistic arc. Reaching the floor synthesizes
// the landing internally; this is the one transition not triggered by the
// outer caller. The landing surface is the world height, which set_on turns
// back into the floor position.
func (m StateMachine) jumpingUpdate() StateMachine {
	next := StateMachine{Kind: StateJumping, ctx: m.ctx.update(jumpingFrames)}
	if next.ctx.Position.Y >= floor {
		return next.landAfterJump(worldHeight)
	}
	return next
}

// slidingUpdate stands the character back up once the slide animation has
// played through.
func (m StateMachine) slidingUpdate() StateMachine {
	next := StateMachine{Kind: StateSliding, ctx: m.ctx.update(slidingFrames)}
	if next.ctx.Frame >= slidingFrames {
		return StateMachine{Kind: StateRunning, ctx: next.ctx.resetFrame()}
	}
	return next
}

// fallingUpdate plays the death animation, then parks in KnockedOut.
func (m StateMachine) fallingUpdate() StateMachine {
	next := StateMachine{Kind: StateFalling, ctx: m.ctx.update(fallingFrames)}
	if next.ctx.Frame >= fallingFrames {
		return StateMachine{Kind: StateKnockedOut, ctx: next.ctx}
	}
	return next
}

// knockedOutUpdate keeps integrating physics but freezes the animation on the
// final death frame.
func (m StateMachine) knockedOutUpdate() StateMachine {
	ctx := m.ctx
	ctx.Frame = fallingFrames - 1
	return StateMachine{Kind: StateKnockedOut, ctx: ctx.update(fallingFrames)}
}
