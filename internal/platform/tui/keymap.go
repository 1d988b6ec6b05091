package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rooftop-runner/internal/config"
	"github.com/vovakirdan/rooftop-runner/internal/runner"
)

// KeyMapper translates Bubble Tea key messages into the key codes the game
// samples. Bindings come from the controls section of the config file, so
// they stay testable and user-tunable.
type KeyMapper struct {
	bindings map[string]string
	restart  map[string]bool
}

// NewKeyMapper builds a mapper from the configured control bindings.
func NewKeyMapper(controls config.ControlsConfig) *KeyMapper {
	km := &KeyMapper{
		bindings: make(map[string]string),
		restart:  make(map[string]bool),
	}
	for _, k := range controls.Run {
		km.bindings[k] = runner.KeyRight
	}
	for _, k := range controls.Jump {
		km.bindings[k] = runner.KeyJump
	}
	for _, k := range controls.Slide {
		km.bindings[k] = runner.KeyDown
	}
	for _, k := range controls.Restart {
		km.restart[k] = true
	}
	return km
}

// MapKey translates a key message to a game key code.
// Returns the code and whether the key is bound at all.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (string, bool) {
	code, ok := km.bindings[msg.String()]
	return code, ok
}

// IsRestart reports whether the key is bound to the restart action.
func (km *KeyMapper) IsRestart(msg tea.KeyMsg) bool {
	return km.restart[msg.String()]
}

// IsQuit reports whether the key is a global quit request.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}
