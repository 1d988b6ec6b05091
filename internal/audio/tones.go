package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Sound names the game loads at initialization.
const (
	SoundJump       = "jump"
	SoundBackground = "background"
)

var soundBank = map[string]func() beep.Streamer{
	SoundJump:       newJumpSweep,
	SoundBackground: newBackgroundTrack,
}

// oscillator generates a fixed-duration wave at a (possibly sweeping)
// frequency.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	volume    float64
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress

		// Short attack/release ramps avoid clicks.
		envelope := 1.0
		if progress < 0.05 {
			envelope = progress / 0.05
		} else if progress > 0.85 {
			envelope = (1.0 - progress) / 0.15
		}

		val := math.Sin(2*math.Pi*o.phase) * o.volume * envelope
		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// newJumpSweep is the rising whoosh played when the runner leaves the ground.
func newJumpSweep() beep.Streamer {
	return &oscillator{
		startFreq: 220,
		endFreq:   880,
		duration:  sampleRate.N(time.Millisecond * 250),
		volume:    0.35,
	}
}

// backgroundNotes is a slow four-bar arpeggio; looped it becomes the track.
var backgroundNotes = []float64{
	261.63, 329.63, 392.00, 329.63, // C E G E
	293.66, 349.23, 440.00, 349.23, // D F A F
	246.94, 311.13, 392.00, 311.13, // B D# G D#
	261.63, 329.63, 523.25, 392.00, // C E C' G
}

func newBackgroundTrack() beep.Streamer {
	streamers := make([]beep.Streamer, len(backgroundNotes))
	for i, freq := range backgroundNotes {
		streamers[i] = &oscillator{
			startFreq: freq,
			endFreq:   freq,
			duration:  sampleRate.N(time.Millisecond * 320),
			volume:    0.12,
		}
	}
	return beep.Seq(streamers...)
}
