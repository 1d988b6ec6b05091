package runner

import (
	"github.com/vovakirdan/rooftop-runner/internal/assets"
	"github.com/vovakirdan/rooftop-runner/internal/core"
	"github.com/vovakirdan/rooftop-runner/internal/engine"
)

// Segment placement constants. A segment is one fatal stone plus one floating
// platform at fixed relative offsets; the two templates differ only in the
// platform height.
const (
	initialStoneOffset = 150
	firstPlatform      = 400
	lowPlatform        = 420
	highPlatform       = 375
	stoneOnGround      = 546
)

// floatingPlatformBoundingBoxes are the platform's collision boxes relative
// to its position. The narrow end caps sit higher than the slab between
// them, and the gaps in coverage permit falling between boxes.
var floatingPlatformBoundingBoxes = []core.Rect{
	core.NewRect(0, 0, 60, 54),
	core.NewRect(60, 0, 384-60*2, 93),
	core.NewRect(384-60, 0, 60, 54),
}

var floatingPlatformSprites = []string{"13.png", "14.png", "15.png"}

// stoneAndPlatform places a ground stone followed by a low platform.
func stoneAndPlatform(offsetX int, sheet *engine.SpriteSheet, stone *assets.Pixmap) []Obstacle {
	return []Obstacle{
		NewBarrier(engine.NewImage(stone, core.Point{
			X: offsetX + initialStoneOffset,
			Y: stoneOnGround,
		})),
		newFloatingPlatform(core.Point{
			X: offsetX + firstPlatform,
			Y: lowPlatform,
		}, sheet),
	}
}

// platformAndStone places a high platform over a ground stone.
func platformAndStone(offsetX int, sheet *engine.SpriteSheet, stone *assets.Pixmap) []Obstacle {
	return []Obstacle{
		NewBarrier(engine.NewImage(stone, core.Point{
			X: offsetX + initialStoneOffset,
			Y: stoneOnGround,
		})),
		newFloatingPlatform(core.Point{
			X: offsetX + firstPlatform,
			Y: highPlatform,
		}, sheet),
	}
}

func newFloatingPlatform(position core.Point, sheet *engine.SpriteSheet) *Platform {
	return NewPlatform(floatingPlatformBoundingBoxes, position, sheet, floatingPlatformSprites)
}

// rightmost returns the right edge of the furthest obstacle, or 0 for an
// empty list.
func rightmost(obstacles []Obstacle) int {
	right := 0
	for _, obstacle := range obstacles {
		right = core.Max(right, obstacle.Right())
	}
	return right
}
