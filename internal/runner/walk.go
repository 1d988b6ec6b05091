package runner

import (
	"math/rand"

	"github.com/vovakirdan/rooftop-runner/internal/assets"
	"github.com/vovakirdan/rooftop-runner/internal/engine"
)

// Walk is the scrolling world: two wrapping background tiles, the character,
// the live obstacle list, and the generator state. timeline tracks the
// rightmost x already populated with obstacles.
type Walk struct {
	backgrounds   [2]engine.Image
	character     *Character
	obstacleSheet *engine.SpriteSheet
	obstacles     []Obstacle
	stone         *assets.Pixmap
	timeline      int
	rng           *rand.Rand
}

// draw paints backgrounds, character, then obstacles.
func (w *Walk) draw(r engine.Renderer) {
	for i := range w.backgrounds {
		w.backgrounds[i].Draw(r)
	}
	w.character.Draw(r)
	for _, obstacle := range w.obstacles {
		obstacle.Draw(r)
	}
}

func (w *Walk) knockedOut() bool {
	return w.character.KnockedOut()
}

// velocity is the world scroll speed: the negation of the character's
// walking speed, since the character's screen x stays fixed.
func (w *Walk) velocity() int {
	return -w.character.WalkingSpeed()
}

// generateNextSegment appends a randomly chosen segment template past the
// current timeline and advances the timeline to its rightmost edge.
func (w *Walk) generateNextSegment() {
	var next []Obstacle
	if w.rng.Intn(2) == 0 {
		next = stoneAndPlatform(w.timeline+obstacleBuffer, w.obstacleSheet, w.stone)
	} else {
		next = platformAndStone(w.timeline+obstacleBuffer, w.obstacleSheet, w.stone)
	}
	w.timeline = rightmost(next)
	w.obstacles = append(w.obstacles, next...)
}

// resetWalk builds the starting world for a new run, reusing loaded assets.
// The old world is discarded, not mutated.
func resetWalk(w Walk) Walk {
	starting := stoneAndPlatform(0, w.obstacleSheet, w.stone)
	return Walk{
		backgrounds:   w.backgrounds,
		character:     w.character.reset(),
		obstacleSheet: w.obstacleSheet,
		obstacles:     starting,
		stone:         w.stone,
		timeline:      rightmost(starting),
		rng:           w.rng,
	}
}
