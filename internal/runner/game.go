// Package runner implements the rooftop platformer: the character state
// machine, the obstacle course, and the session state machine that ties them
// to the fixed-timestep loop.
package runner

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rooftop-runner/internal/assets"
	"github.com/vovakirdan/rooftop-runner/internal/audio"
	"github.com/vovakirdan/rooftop-runner/internal/core"
	"github.com/vovakirdan/rooftop-runner/internal/engine"
	"github.com/vovakirdan/rooftop-runner/internal/registry"
)

// World dimensions and generator tuning, in virtual pixels.
const (
	worldWidth      = core.WorldWidth
	worldHeight     = core.WorldHeight
	obstacleBuffer  = 20
	timelineMinimum = 1000
)

// Key codes the session samples. The platform keymap translates terminal
// keys into these.
const (
	KeyRight = "ArrowRight"
	KeyDown  = "ArrowDown"
	KeyJump  = "Space"
)

type sessionKind int

const (
	sessionReady sessionKind = iota
	sessionWalking
	sessionGameOver
)

// Game is the playable session: Ready until the first rightward input,
// Walking while the simulation runs, GameOver until a restart signal.
// Exactly one session state is active; the World is rebuilt, never reused,
// across restarts.
type Game struct {
	kind        sessionKind
	walk        Walk
	distance    int
	restart     chan struct{}
	player      *audio.Player
	initialized bool
}

// New creates an uninitialized game.
func New() *Game {
	return &Game{
		player:  audio.NewPlayer(),
		restart: make(chan struct{}, 1),
	}
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return "rooftop"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Rooftop Runner"
}

// Initialize loads every asset and builds the starting world. It runs once,
// before the loop starts; any failure aborts startup.
func (g *Game) Initialize(cfg core.RuntimeConfig) error {
	if g.initialized {
		return fmt.Errorf("runner: game is already initialized")
	}

	var loader assets.Loader

	sheet, err := loader.LoadSheet("runner")
	if err != nil {
		return err
	}
	runnerPix, err := loader.LoadPixmap("runner")
	if err != nil {
		return err
	}
	background, err := loader.LoadPixmap("bg")
	if err != nil {
		return err
	}
	stone, err := loader.LoadPixmap("stone")
	if err != nil {
		return err
	}
	tiles, err := loader.LoadSheet("tiles")
	if err != nil {
		return err
	}
	tilesPix, err := loader.LoadPixmap("tiles")
	if err != nil {
		return err
	}

	// A silent machine is playable; only sound loading errors are fatal.
	if !cfg.Mute {
		if err := g.player.Initialize(); err != nil {
			log.Warn("audio disabled", "error", err)
		}
	}
	jumpSound, err := g.player.LoadSound(audio.SoundJump)
	if err != nil {
		return err
	}
	backgroundTrack, err := g.player.LoadSound(audio.SoundBackground)
	if err != nil {
		return err
	}
	if err := g.player.PlayLooping(backgroundTrack); err != nil {
		log.Warn("could not start background track", "error", err)
	}

	character := NewCharacter(g.player, runnerPix, jumpSound, sheet)
	obstacleSheet := engine.NewSpriteSheet(tilesPix, tiles)
	rng := rand.New(rand.NewSource(cfg.Seed))

	starting := stoneAndPlatform(0, obstacleSheet, stone)

	g.walk = Walk{
		backgrounds: [2]engine.Image{
			engine.NewImage(background, core.Point{X: 0, Y: 0}),
			engine.NewImage(background, core.Point{X: background.Width(), Y: 0}),
		},
		character:     character,
		obstacleSheet: obstacleSheet,
		obstacles:     starting,
		stone:         stone,
		timeline:      rightmost(starting),
		rng:           rng,
	}
	g.kind = sessionReady
	g.distance = 0
	g.initialized = true
	return nil
}

// Update advances one logical tick for the active session state.
func (g *Game) Update(keys *engine.KeyState) {
	switch g.kind {
	case sessionReady:
		g.updateReady(keys)
	case sessionWalking:
		g.updateWalking(keys)
	case sessionGameOver:
		g.updateGameOver()
	}
}

// updateReady idles the character until the first rightward input.
func (g *Game) updateReady(keys *engine.KeyState) {
	g.walk.character.Update()
	if keys.IsPressed(KeyRight) {
		g.walk.character.RunRight()
		g.kind = sessionWalking
	}
}

// updateWalking runs one full simulation step: input, character physics,
// scrolling, collision, and generation, in that order.
func (g *Game) updateWalking(keys *engine.KeyState) {
	if keys.IsPressed(KeyDown) {
		g.walk.character.Slide()
	}
	if keys.IsPressed(KeyJump) {
		g.walk.character.Jump()
	}
	g.walk.character.Update()

	speed := g.walk.velocity()

	// Scroll the two background tiles; whichever leaves the screen is
	// repositioned immediately after its sibling.
	first := &g.walk.backgrounds[0]
	second := &g.walk.backgrounds[1]
	first.MoveHorizontally(speed)
	second.MoveHorizontally(speed)
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}

	// Drop obstacles fully scrolled past the left edge, then scroll and
	// collide the remainder.
	retained := g.walk.obstacles[:0]
	for _, obstacle := range g.walk.obstacles {
		if obstacle.Right() > 0 {
			retained = append(retained, obstacle)
		}
	}
	g.walk.obstacles = retained
	for _, obstacle := range g.walk.obstacles {
		obstacle.MoveHorizontally(speed)
		obstacle.CheckIntersection(g.walk.character)
	}

	if g.walk.timeline < timelineMinimum {
		g.walk.generateNextSegment()
	} else {
		g.walk.timeline += speed
	}

	g.distance++

	if g.walk.knockedOut() {
		g.kind = sessionGameOver
	}
}

// updateGameOver freezes the world and waits for the one-shot restart
// signal, then rebuilds it.
func (g *Game) updateGameOver() {
	select {
	case <-g.restart:
		g.walk = resetWalk(g.walk)
		g.distance = 0
		g.kind = sessionReady
	default:
	}
}

// Draw clears the world and paints the current session.
func (g *Game) Draw(r engine.Renderer) {
	r.Clear(core.NewRect(0, 0, worldWidth, worldHeight))
	if g.initialized {
		g.walk.draw(r)
	}
}

// State reports session status for the HUD and score persistence.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.distance,
		Ready:    g.kind == sessionReady,
		GameOver: g.kind == sessionGameOver,
	}
}

// RequestRestart signals the game-over state to start a new run. The signal
// is buffered and consumed exactly once; extra requests while one is pending
// are dropped.
func (g *Game) RequestRestart() {
	select {
	case g.restart <- struct{}{}:
	default:
	}
}

func init() {
	registry.Register("rooftop", func() registry.Game {
		return New()
	})
}
