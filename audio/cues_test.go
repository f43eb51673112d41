package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VictorJude046/A-Path-finding-project/parameter"
)

func drain(t *testing.T, cue Cue) (total int, peak float64) {
	t.Helper()
	s, err := streamer(cue)
	require.NoError(t, err)

	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			}
			if -smp[0] > peak {
				peak = -smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestCueLengths(t *testing.T) {
	note := sampleRate.N(parameter.AudioArriveNote)
	cases := map[Cue]int{
		CueStep:   sampleRate.N(parameter.AudioStepDuration),
		CueReject: sampleRate.N(parameter.AudioRejectDuration),
		CueArrive: 2*note + sampleRate.N(parameter.AudioArriveGap),
	}
	for cue, want := range cases {
		t.Run(cue.String(), func(t *testing.T) {
			got, peak := drain(t, cue)
			assert.Equal(t, want, got)
			assert.Greater(t, peak, 0.0, "cue is audible")
			assert.LessOrEqual(t, peak, 1.0, "cue does not clip")
		})
	}
}

func TestUnknownCue(t *testing.T) {
	_, err := streamer(Cue(99))
	assert.Error(t, err)
	assert.Equal(t, "unknown", Cue(99).String())
}

// Playback without an audio device must be a silent no-op
func TestCues_GracefulDegradation(t *testing.T) {
	c := NewCues()
	assert.NotPanics(t, func() {
		c.Play(CueStep)
		c.Play(CueReject)
		c.Cleanup()
		c.Play(CueArrive)
	})
}

func TestRejectCueDecays(t *testing.T) {
	s, err := streamer(CueReject)
	require.NoError(t, err)

	total := sampleRate.N(parameter.AudioRejectDuration)
	buf := make([][2]float64, total)
	n, _ := s.Stream(buf)
	require.Equal(t, total, n)

	peak := func(from, to int) float64 {
		var m float64
		for _, smp := range buf[from:to] {
			if v := math.Abs(smp[0]); v > m {
				m = v
			}
		}
		return m
	}
	quarter := total / 4
	assert.Greater(t, peak(0, quarter), 2*peak(3*quarter, total), "tail is quieter than the head")
}
