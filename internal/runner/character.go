package runner

import (
	"fmt"

	"github.com/vovakirdan/rooftop-runner/internal/assets"
	"github.com/vovakirdan/rooftop-runner/internal/audio"
	"github.com/vovakirdan/rooftop-runner/internal/core"
	"github.com/vovakirdan/rooftop-runner/internal/engine"
)

// Collision box insets relative to the drawn sprite. The art has generous
// margins; the hit box is tighter than the destination box.
const (
	hitBoxXOffset    = 18
	hitBoxYOffset    = 14
	hitBoxWidthInset = 28
)

// Character is the player-controlled runner: the state machine plus the
// sprite sheet it animates from.
type Character struct {
	machine StateMachine
	sheet   assets.Sheet
	pix     *assets.Pixmap
}

// NewCharacter creates an idle character at the starting position.
func NewCharacter(player *audio.Player, pix *assets.Pixmap, jumpSound *audio.Sound, sheet assets.Sheet) *Character {
	return &Character{
		machine: NewStateMachine(player, jumpSound),
		sheet:   sheet,
		pix:     pix,
	}
}

// reset builds a fresh idle character reusing the already-loaded assets and
// audio handles.
func (c *Character) reset() *Character {
	ctx := c.machine.Context()
	return NewCharacter(ctx.player, c.pix, ctx.jumpSound, c.sheet)
}

// frameName derives the sprite-sheet key for the current animation cell.
// Each cell is held for 3 logical updates.
func (c *Character) frameName() string {
	return fmt.Sprintf("%s (%d).png", c.machine.FrameName(), c.machine.Context().Frame/3+1)
}

// currentCell resolves the active sprite. A missing cell means the sheet and
// the state machine disagree, which is a bug, not a runtime condition.
func (c *Character) currentCell() assets.Cell {
	name := c.frameName()
	cell, ok := c.sheet.Frames[name]
	if !ok {
		panic(fmt.Sprintf("runner: sprite %q not found in sheet", name))
	}
	return cell
}

// destinationBox is the world-space region the sprite is drawn into.
func (c *Character) destinationBox() core.Rect {
	cell := c.currentCell()
	ctx := c.machine.Context()
	return core.NewRect(
		ctx.Position.X+cell.SpriteSourceSize.X,
		ctx.Position.Y+cell.SpriteSourceSize.Y,
		cell.Frame.W,
		cell.Frame.H,
	)
}

// BoundingBox is the collision rectangle, inset from the drawn sprite.
func (c *Character) BoundingBox() core.Rect {
	box := c.destinationBox()
	box.Position.X += hitBoxXOffset
	box.W -= hitBoxWidthInset
	box.Position.Y += hitBoxYOffset
	box.H -= hitBoxYOffset
	return box
}

// Draw paints the current animation cell.
func (c *Character) Draw(r engine.Renderer) {
	cell := c.currentCell()
	r.DrawImage(
		c.pix,
		core.NewRect(cell.Frame.X, cell.Frame.Y, cell.Frame.W, cell.Frame.H),
		c.destinationBox(),
	)
}

// RunRight starts the character running.
func (c *Character) RunRight() {
	c.machine = c.machine.Transition(Event{Kind: EventRun})
}

// Jump launches the character if it is running.
func (c *Character) Jump() {
	c.machine = c.machine.Transition(Event{Kind: EventJump})
}

// Slide ducks the character if it is running.
func (c *Character) Slide() {
	c.machine = c.machine.Transition(Event{Kind: EventSlide})
}

// KnockOut starts the fatal fall.
func (c *Character) KnockOut() {
	c.machine = c.machine.Transition(Event{Kind: EventKnockOut})
}

// LandOn rests the character on a surface at the given height.
func (c *Character) LandOn(position int) {
	c.machine = c.machine.Transition(Land(position))
}

// Update advances one logical tick.
func (c *Character) Update() {
	c.machine = c.machine.Update()
}

// KnockedOut reports whether the run has ended.
func (c *Character) KnockedOut() bool {
	return c.machine.KnockedOut()
}

// PosY returns the character's vertical position.
func (c *Character) PosY() int {
	return c.machine.Context().Position.Y
}

// VelocityY returns the vertical velocity; positive is downward.
func (c *Character) VelocityY() int {
	return c.machine.Context().Velocity.Y
}

// WalkingSpeed is the character's nominal horizontal speed. The world
// scrolls at its negation because the character's screen x stays fixed.
func (c *Character) WalkingSpeed() int {
	return c.machine.Context().Velocity.X
}
