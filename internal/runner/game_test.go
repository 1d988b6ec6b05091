package runner

import (
	"testing"

	"github.com/vovakirdan/rooftop-runner/internal/assets"
	"github.com/vovakirdan/rooftop-runner/internal/core"
	"github.com/vovakirdan/rooftop-runner/internal/engine"
)

// countingRenderer records draw calls.
type countingRenderer struct {
	clears int
	images int
}

func (r *countingRenderer) Clear(rect core.Rect) { r.clears++ }
func (r *countingRenderer) DrawImage(pix *assets.Pixmap, frame, destination core.Rect) {
	r.images++
}
func (r *countingRenderer) DrawEntireImage(pix *assets.Pixmap, position core.Point) {
	r.images++
}

func newInitializedGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.Mute = true
	if err := g.Initialize(cfg); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	return g
}

func keysDown(codes ...string) *engine.KeyState {
	q := engine.NewInputQueue()
	for _, code := range codes {
		q.Push(engine.KeyPress{Code: code, Down: true})
	}
	keys := engine.NewKeyState()
	q.Drain(keys)
	return keys
}

func TestGameStartsReady(t *testing.T) {
	g := newInitializedGame(t)

	state := g.State()
	if !state.Ready {
		t.Error("new game should be in the ready state")
	}
	if state.GameOver {
		t.Error("new game should not be over")
	}
	if state.Score != 0 {
		t.Errorf("Score = %d, want 0", state.Score)
	}
}

func TestGameInitializeTwiceFails(t *testing.T) {
	g := newInitializedGame(t)

	cfg := core.DefaultConfig()
	cfg.Mute = true
	if err := g.Initialize(cfg); err == nil {
		t.Error("second Initialize() should fail")
	}
}

func TestGameStaysReadyWithoutInput(t *testing.T) {
	g := newInitializedGame(t)
	idle := keysDown()

	for i := 0; i < 100; i++ {
		g.Update(idle)
	}

	state := g.State()
	if !state.Ready {
		t.Error("game left ready state without input")
	}
	if state.Score != 0 {
		t.Errorf("Score = %d, want 0 while ready", state.Score)
	}
}

func TestGameStartsWalkingOnRight(t *testing.T) {
	g := newInitializedGame(t)

	g.Update(keysDown(KeyRight))

	state := g.State()
	if state.Ready {
		t.Error("rightward input should leave the ready state")
	}
	if state.GameOver {
		t.Error("game should be walking, not over")
	}

	// Distance accrues while walking.
	idle := keysDown()
	g.Update(idle)
	g.Update(idle)
	if got := g.State().Score; got != 2 {
		t.Errorf("Score = %d after 2 walking updates, want 2", got)
	}
}

func TestGameEndsOnFirstStone(t *testing.T) {
	g := newInitializedGame(t)
	g.Update(keysDown(KeyRight))

	// Walking blindly into the course hits the first stone.
	idle := keysDown()
	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		g.Update(idle)
	}

	if !g.State().GameOver {
		t.Fatal("run never ended against the first stone")
	}
	if g.State().Score == 0 {
		t.Error("a run that reached an obstacle should have a score")
	}
}

func TestGameRestartRoundTrip(t *testing.T) {
	g := newInitializedGame(t)
	g.Update(keysDown(KeyRight))

	idle := keysDown()
	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		g.Update(idle)
	}
	if !g.State().GameOver {
		t.Fatal("run never ended")
	}

	// Without the restart signal the game stays over.
	g.Update(idle)
	if !g.State().GameOver {
		t.Error("game left the game-over state without a restart signal")
	}

	g.RequestRestart()
	g.Update(idle)

	state := g.State()
	if !state.Ready {
		t.Error("restart should return to the ready state")
	}
	if state.Score != 0 {
		t.Errorf("Score = %d after restart, want 0", state.Score)
	}

	// The new run plays from the beginning.
	g.Update(keysDown(KeyRight))
	if g.State().Ready || g.State().GameOver {
		t.Error("restarted game should walk again")
	}
}

func TestGameJumpClearsFirstStone(t *testing.T) {
	g := newInitializedGame(t)
	g.Update(keysDown(KeyRight))

	// The stone's leading edge reaches the hit box on the 21st walking
	// update. Jumping on the 16th puts the whole overlap window inside the
	// arc and lands after the stone has scrolled past.
	idle := keysDown()
	for i := 0; i < 15; i++ {
		g.Update(idle)
	}
	g.Update(keysDown(KeyJump))
	for i := 0; i < 54; i++ {
		g.Update(idle)
	}

	if g.State().GameOver {
		t.Error("a well-timed jump should clear the first stone")
	}
	if g.State().Score != 70 {
		t.Errorf("Score = %d, want 70", g.State().Score)
	}
}

func TestGameDrawPaintsWorld(t *testing.T) {
	g := newInitializedGame(t)
	r := &countingRenderer{}

	g.Draw(r)

	if r.clears != 1 {
		t.Errorf("Draw() issued %d clears, want 1", r.clears)
	}
	// Two backgrounds, the character, and the starting obstacles.
	if r.images < 4 {
		t.Errorf("Draw() issued %d image draws, want at least 4", r.images)
	}
}

func TestRequestRestartIsOneShot(t *testing.T) {
	g := newInitializedGame(t)

	// Signals while not in game over are buffered at most once and consumed
	// by the next game over, never stacked.
	g.RequestRestart()
	g.RequestRestart()
	g.RequestRestart()

	// The buffered signal must not kick a ready game anywhere.
	idle := keysDown()
	g.Update(idle)
	if !g.State().Ready {
		t.Error("restart signal should have no effect while ready")
	}
}
