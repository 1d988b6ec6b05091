package runner

import (
	"github.com/vovakirdan/rooftop-runner/internal/assets"
	"github.com/vovakirdan/rooftop-runner/internal/core"
	"github.com/vovakirdan/rooftop-runner/internal/engine"
)

// Obstacle is a collidable world object scrolled with the course.
// CheckIntersection is called once per obstacle per logical update, after
// the obstacle has been moved for that tick.
type Obstacle interface {
	CheckIntersection(c *Character)
	Draw(r engine.Renderer)
	MoveHorizontally(x int)
	Right() int
}

// Barrier is a solid obstacle; any overlap with the character is fatal.
type Barrier struct {
	image engine.Image
}

// NewBarrier wraps an image as a fatal obstacle.
func NewBarrier(image engine.Image) *Barrier {
	return &Barrier{image: image}
}

// CheckIntersection knocks the character out on any overlap.
func (b *Barrier) CheckIntersection(c *Character) {
	if c.BoundingBox().Intersects(b.image.BoundingBox()) {
		c.KnockOut()
	}
}

// Draw paints the barrier image.
func (b *Barrier) Draw(r engine.Renderer) {
	b.image.Draw(r)
}

// MoveHorizontally scrolls the barrier.
func (b *Barrier) MoveHorizontally(x int) {
	b.image.MoveHorizontally(x)
}

// Right returns the barrier's right edge.
func (b *Barrier) Right() int {
	return b.image.Right()
}

// Platform is a floating surface drawn as a strip of sheet sprites and backed
// by one or more disjoint bounding boxes. Gaps between boxes let the
// character fall through. Landing is only safe from above.
type Platform struct {
	boundingBoxes []core.Rect
	position      core.Point
	sheet         *engine.SpriteSheet
	sprites       []assets.Cell
}

// NewPlatform builds a platform at position. Bounding boxes are given
// relative to the position and stored in world coordinates. Sprite names
// missing from the sheet are skipped.
func NewPlatform(boundingBoxes []core.Rect, position core.Point, sheet *engine.SpriteSheet, spriteNames []string) *Platform {
	sprites := make([]assets.Cell, 0, len(spriteNames))
	for _, name := range spriteNames {
		if cell, ok := sheet.Cell(name); ok {
			sprites = append(sprites, cell)
		}
	}

	boxes := make([]core.Rect, len(boundingBoxes))
	for i, box := range boundingBoxes {
		boxes[i] = core.NewRect(box.X()+position.X, box.Y()+position.Y, box.W, box.H)
	}

	return &Platform{
		boundingBoxes: boxes,
		position:      position,
		sheet:         sheet,
		sprites:       sprites,
	}
}

// CheckIntersection lands or knocks out the character. Only the first
// intersecting bounding box in list order is considered. Landing requires
// descending (positive y-velocity) from above the platform's top; any other
// approach is fatal.
func (p *Platform) CheckIntersection(c *Character) {
	for _, box := range p.boundingBoxes {
		if !c.BoundingBox().Intersects(box) {
			continue
		}
		if c.VelocityY() > 0 && c.PosY() < p.position.Y {
			c.LandOn(box.Y())
		} else {
			c.KnockOut()
		}
		return
	}
}

// Draw paints the sprite strip left to right from the platform position.
func (p *Platform) Draw(r engine.Renderer) {
	x := 0
	for _, sprite := range p.sprites {
		p.sheet.Draw(
			r,
			core.NewRect(sprite.Frame.X, sprite.Frame.Y, sprite.Frame.W, sprite.Frame.H),
			core.NewRect(p.position.X+x, p.position.Y, sprite.Frame.W, sprite.Frame.H),
		)
		x += sprite.Frame.W
	}
}

// MoveHorizontally scrolls the platform and all of its bounding boxes.
func (p *Platform) MoveHorizontally(x int) {
	p.position.X += x
	for i := range p.boundingBoxes {
		p.boundingBoxes[i].SetX(p.boundingBoxes[i].X() + x)
	}
}

// Right returns the right edge of the last bounding box.
func (p *Platform) Right() int {
	if len(p.boundingBoxes) == 0 {
		return 0
	}
	return p.boundingBoxes[len(p.boundingBoxes)-1].Right()
}
