package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rooftop-runner/internal/config"
	"github.com/vovakirdan/rooftop-runner/internal/core"
	"github.com/vovakirdan/rooftop-runner/internal/engine"
	"github.com/vovakirdan/rooftop-runner/internal/registry"
	"github.com/vovakirdan/rooftop-runner/internal/storage"
)

// Model is the Bubble Tea model driving a single game session.
//
// Terminals only report key presses, never releases, so each bound key is
// pushed to the input queue as a press on arrival and released after the
// frame's logical updates have sampled it.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *CellRenderer
	store      *storage.Store
	config     core.RuntimeConfig
	keymap     *KeyMapper
	queue      *engine.InputQueue
	loop       *engine.Loop
	start      time.Time
	held       map[string]bool
	gameState  core.GameState
	quitting   bool
	scoreSaved bool
}

// NewModel creates a model for an already-initialized game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, controls config.ControlsConfig) Model {
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	queue := engine.NewInputQueue()

	return Model{
		game:      game,
		screen:    screen,
		renderer:  NewCellRenderer(screen),
		store:     store,
		config:    cfg,
		keymap:    NewKeyMapper(controls),
		queue:     queue,
		loop:      engine.NewLoop(game, queue, 0),
		start:     time.Now(),
		held:      make(map[string]bool),
		gameState: game.State(),
	}
}

// Init starts the frame tick.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keymap.IsQuit(msg):
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil

	case m.keymap.IsRestart(msg):
		if m.gameState.GameOver {
			m.game.RequestRestart()
		}
		return m, nil
	}

	if code, ok := m.keymap.MapKey(msg); ok {
		m.queue.Push(engine.KeyPress{Code: code, Down: true})
		m.held[code] = true
	}

	return m, nil
}

// handleResize processes window resize events. Only the display scales; the
// simulation keeps its virtual-pixel world.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame runs one host frame callback: catch-up updates, a draw, key
// releases, and the HUD overlay.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	nowMs := float64(time.Time(msg).Sub(m.start).Microseconds()) / 1000.0
	updates := m.loop.Frame(nowMs, m.renderer)

	// Synthesize the release half of each press so the next updates see the
	// key as up again. A frame can run zero updates when the tick rate
	// outpaces the logical 60 Hz; the press stays held until an update has
	// actually sampled it.
	if updates > 0 {
		for code := range m.held {
			m.queue.Push(engine.KeyPress{Code: code, Down: false})
			delete(m.held, code)
		}
	}

	state := m.game.State()
	if !state.GameOver {
		m.scoreSaved = false
	}
	if state.GameOver && !m.scoreSaved && state.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), state.Score)
		}
		m.scoreSaved = true
	}
	m.gameState = state

	m.drawHUD(state)

	return m, frameCmd(m.config.FrameRate)
}

// drawHUD paints score and session prompts over the rendered frame.
func (m Model) drawHUD(state core.GameState) {
	m.screen.DrawText(1, 0, fmt.Sprintf("Score: %d", state.Score), core.ColorBrightWhite)

	switch {
	case state.Ready:
		m.screen.DrawTextCentered(m.screen.Height()/3, "Press right to run", core.ColorBrightYellow)

	case state.GameOver:
		mid := m.screen.Height() / 3
		m.screen.DrawTextCentered(mid, "GAME OVER", core.ColorBrightRed)
		m.screen.DrawTextCentered(mid+1, fmt.Sprintf("Score: %d", state.Score), core.ColorBrightWhite)
		m.screen.DrawTextCentered(mid+2, "r to restart, q to quit", core.ColorGray)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".rooftop", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current frame buffer for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run initializes the game and starts the Bubble Tea program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, controls config.ControlsConfig) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := game.Initialize(cfg); err != nil {
		return err
	}

	model := NewModel(game, store, cfg, controls)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
