package runner

import (
	"math/rand"
	"testing"
)

func TestSegmentTemplatesPlacement(t *testing.T) {
	sheet := newTestObstacleSheet(t)
	stone := loadStone(t)

	low := stoneAndPlatform(0, sheet, stone)
	if len(low) != 2 {
		t.Fatalf("stoneAndPlatform produced %d obstacles, want 2", len(low))
	}
	high := platformAndStone(0, sheet, stone)
	if len(high) != 2 {
		t.Fatalf("platformAndStone produced %d obstacles, want 2", len(high))
	}

	// The stone's right edge is its offset plus the pixmap width.
	wantStoneRight := initialStoneOffset + stone.Width()
	if low[0].Right() != wantStoneRight {
		t.Errorf("stone Right() = %d, want %d", low[0].Right(), wantStoneRight)
	}

	// The platform's right edge is the end of its last bounding box.
	wantPlatformRight := firstPlatform + 384
	if low[1].Right() != wantPlatformRight {
		t.Errorf("platform Right() = %d, want %d", low[1].Right(), wantPlatformRight)
	}

	// Offsets shift the whole segment.
	shifted := stoneAndPlatform(1000, sheet, stone)
	if shifted[0].Right() != wantStoneRight+1000 {
		t.Errorf("shifted stone Right() = %d, want %d", shifted[0].Right(), wantStoneRight+1000)
	}
}

func TestRightmost(t *testing.T) {
	sheet := newTestObstacleSheet(t)
	stone := loadStone(t)

	segment := stoneAndPlatform(0, sheet, stone)
	want := firstPlatform + 384
	if got := rightmost(segment); got != want {
		t.Errorf("rightmost() = %d, want %d", got, want)
	}

	if got := rightmost(nil); got != 0 {
		t.Errorf("rightmost(nil) = %d, want 0", got)
	}
}

func newTestWalk(t *testing.T, seed int64) *Walk {
	t.Helper()
	sheet := newTestObstacleSheet(t)
	stone := loadStone(t)
	starting := stoneAndPlatform(0, sheet, stone)

	return &Walk{
		character:     newTestCharacter(t),
		obstacleSheet: sheet,
		obstacles:     starting,
		stone:         stone,
		timeline:      rightmost(starting),
		rng:           rand.New(rand.NewSource(seed)),
	}
}

func TestGenerateNextSegmentAdvancesTimeline(t *testing.T) {
	w := newTestWalk(t, 1)

	for i := 0; i < 10; i++ {
		before := w.timeline
		countBefore := len(w.obstacles)

		w.generateNextSegment()

		if w.timeline <= before+obstacleBuffer {
			t.Fatalf("timeline = %d after generation, want > %d", w.timeline, before+obstacleBuffer)
		}
		if len(w.obstacles) != countBefore+2 {
			t.Fatalf("obstacle count = %d, want %d", len(w.obstacles), countBefore+2)
		}
		// New obstacles start past the old timeline plus the buffer.
		for _, obstacle := range w.obstacles[countBefore:] {
			if obstacle.Right() <= before+obstacleBuffer {
				t.Errorf("new obstacle right edge %d is before the buffered timeline %d", obstacle.Right(), before+obstacleBuffer)
			}
		}
	}
}

func TestGenerationIsDeterministicPerSeed(t *testing.T) {
	a := newTestWalk(t, 42)
	b := newTestWalk(t, 42)

	for i := 0; i < 20; i++ {
		a.generateNextSegment()
		b.generateNextSegment()
		if a.timeline != b.timeline {
			t.Fatalf("seeded runs diverged at segment %d: %d vs %d", i, a.timeline, b.timeline)
		}
	}
}

func TestResetWalkRebuildsStartingCourse(t *testing.T) {
	w := newTestWalk(t, 7)
	for i := 0; i < 5; i++ {
		w.generateNextSegment()
	}
	w.character.RunRight()
	w.character.KnockOut()

	fresh := resetWalk(*w)

	if len(fresh.obstacles) != 2 {
		t.Errorf("fresh walk has %d obstacles, want the starting 2", len(fresh.obstacles))
	}
	if fresh.timeline != firstPlatform+384 {
		t.Errorf("fresh timeline = %d, want %d", fresh.timeline, firstPlatform+384)
	}
	if fresh.character.KnockedOut() {
		t.Error("fresh walk reused the knocked-out character")
	}
	if fresh.character.WalkingSpeed() != 0 {
		t.Error("fresh character should be idle")
	}
}

func TestWalkVelocityOpposesCharacter(t *testing.T) {
	w := newTestWalk(t, 1)
	if w.velocity() != 0 {
		t.Errorf("idle velocity = %d, want 0", w.velocity())
	}

	w.character.RunRight()
	if w.velocity() != -runningSpeed {
		t.Errorf("velocity = %d, want %d", w.velocity(), -runningSpeed)
	}
}
