package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/VictorJude046/A-Path-finding-project/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Cue is a short feedback sound
type Cue uint8

const (
	CueStep   Cue = iota // Agent advanced one cell
	CueReject            // Request refused
	CueArrive            // Agent reached the destination
)

func (c Cue) String() string {
	switch c {
	case CueStep:
		return "step"
	case CueReject:
		return "reject"
	case CueArrive:
		return "arrive"
	default:
		return "unknown"
	}
}

// Cues plays feedback tones through one mixer on the system speaker
// All methods are safe before Initialize and after Cleanup, they do nothing
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker, failure leaves Cues silent
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioSpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup drops queued cues and closes the speaker
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Play queues cue on the mixer
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s, err := streamer(cue)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// streamer builds a finite stream for cue
func streamer(cue Cue) (beep.Streamer, error) {
	var s beep.Streamer
	switch cue {
	case CueStep:
		tone, err := generators.SineTone(sampleRate, parameter.AudioStepFreq)
		if err != nil {
			return nil, err
		}
		s = beep.Take(sampleRate.N(parameter.AudioStepDuration), tone)

	case CueReject:
		s = beep.Take(sampleRate.N(parameter.AudioRejectDuration), newBuzz(sampleRate, parameter.AudioRejectFreq))

	case CueArrive:
		low, err := generators.SineTone(sampleRate, parameter.AudioArriveLowFreq)
		if err != nil {
			return nil, err
		}
		high, err := generators.SineTone(sampleRate, parameter.AudioArriveHighFreq)
		if err != nil {
			return nil, err
		}
		note := sampleRate.N(parameter.AudioArriveNote)
		s = beep.Seq(
			beep.Take(note, low),
			beep.Silence(sampleRate.N(parameter.AudioArriveGap)),
			beep.Take(note, high),
		)

	default:
		return nil, fmt.Errorf("unknown cue %d", cue)
	}

	return &effects.Volume{Streamer: s, Base: 2, Volume: parameter.AudioCueVolume}, nil
}

// buzz is a falling odd-harmonic tone that dies out exponentially
type buzz struct {
	sr    beep.SampleRate
	freq  float64
	phase float64
	pos   int
}

func newBuzz(sr beep.SampleRate, freq float64) *buzz {
	return &buzz{sr: sr, freq: freq}
}

func (g *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	dt := 1 / float64(g.sr)
	for i := range samples {
		t := float64(g.pos) * dt

		// Pitch sags to 75% of freq over the first 100ms
		f := g.freq * (0.75 + 0.25*math.Exp(-t/0.1))
		g.phase += 2 * math.Pi * f * dt

		var v float64
		for h := 1.0; h <= 5; h += 2 {
			v += math.Sin(h*g.phase) / h
		}

		attack := math.Min(t/0.005, 1)
		v *= 0.6 * attack * math.Exp(-t*12)

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error {
	return nil
}
