package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rooftop-runner/internal/config"
	"github.com/vovakirdan/rooftop-runner/internal/core"
	"github.com/vovakirdan/rooftop-runner/internal/registry"
	"github.com/vovakirdan/rooftop-runner/internal/runner"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game, err := registry.Create("rooftop")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 60, Seed: 1, Mute: true}
	if err := game.Initialize(cfg); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	return NewModel(game, nil, cfg, config.Default().Controls)
}

func frameAt(m Model, elapsed time.Duration) Model {
	next, _ := m.Update(FrameMsg(m.start.Add(elapsed)))
	return next.(Model)
}

// A press delivered between logical updates must stay held until an update
// has sampled it. Frame callbacks arriving faster than 60 Hz run zero
// updates, and a release synthesized on such a frame would eat the press.
func TestPressSurvivesZeroUpdateFrame(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)

	// Below one update's worth of time: the frame draws but does not update.
	m = frameAt(m, 10*time.Millisecond)
	if !m.gameState.Ready {
		t.Fatal("no logical update should have run after 10ms")
	}
	if !m.held[runner.KeyRight] {
		t.Error("press should still be held after a zero-update frame")
	}

	// The next frame crosses the update threshold and must see the press.
	m = frameAt(m, 20*time.Millisecond)
	if m.gameState.Ready {
		t.Error("press was lost before the first logical update sampled it")
	}
	if len(m.held) != 0 {
		t.Error("held keys should be released once an update has run")
	}
}

func TestFrameReleasesKeysAfterUpdate(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	m = frameAt(m, 20*time.Millisecond)

	// The release is queued; the following frame's updates see the key up,
	// so the walking character keeps running instead of re-firing Run.
	m = frameAt(m, 40*time.Millisecond)
	if m.gameState.Ready || m.gameState.GameOver {
		t.Errorf("game state = %+v, want walking", m.gameState)
	}
}

func TestRestartKeyOnlyActsOnGameOver(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)
	m = frameAt(m, 20*time.Millisecond)
	if !m.gameState.Ready {
		t.Error("restart key before game over should not start the game")
	}
}
