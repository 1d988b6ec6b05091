// Package audio plays synthesized game sounds through the beep speaker.
// Sounds are generated rather than decoded from files, so the binary stays
// self-contained. A failed speaker initialization leaves the player muted;
// playback calls then become no-ops.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound is a loadable, replayable sound effect. Each playback gets a fresh
// streamer from the factory, so the same handle can be played repeatedly.
type Sound struct {
	name string
	gen  func() beep.Streamer
}

// Name returns the identifier the sound was loaded under.
func (s *Sound) Name() string {
	return s.name
}

// Player owns the speaker and mixes all game audio.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Initialize must be called before playback.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and attaches the mixer. Safe to call once;
// an error leaves the player muted but usable.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: speaker init failed: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether the speaker came up.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// LoadSound builds the named sound effect. Unknown names are a startup error.
func (p *Player) LoadSound(name string) (*Sound, error) {
	gen, ok := soundBank[name]
	if !ok {
		return nil, fmt.Errorf("audio: unknown sound %q", name)
	}
	return &Sound{name: name, gen: gen}, nil
}

// Play plays the sound once. Muted players return an error the caller is
// expected to log and ignore.
func (p *Player) Play(s *Sound) error {
	return p.play(s, false)
}

// PlayLooping plays the sound in an endless loop.
func (p *Player) PlayLooping(s *Sound) error {
	return p.play(s, true)
}

func (p *Player) play(s *Sound, looping bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return fmt.Errorf("audio: speaker not initialized, dropping %q", s.name)
	}

	streamer := s.gen()
	if looping {
		streamer = loop(streamer, s.gen)
	}
	p.mixer.Add(streamer)
	return nil
}

// Close silences the mixer. The speaker itself has no close operation.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// loop restarts a finite streamer from its factory whenever it ends.
type loopStreamer struct {
	current beep.Streamer
	gen     func() beep.Streamer
}

func loop(first beep.Streamer, gen func() beep.Streamer) beep.Streamer {
	return &loopStreamer{current: first, gen: gen}
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.current.Stream(samples[filled:])
		filled += n
		if !ok {
			l.current = l.gen()
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error { return nil }
