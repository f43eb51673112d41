package parameter

import "time"

// Audio
const (
	AudioSampleRate     = 48000
	AudioSpeakerBuffer  = 100 * time.Millisecond
	AudioCueVolume      = -1.5 // Exponent, base 2
	AudioStepFreq       = 660.0
	AudioStepDuration   = 25 * time.Millisecond
	AudioRejectFreq     = 120.0
	AudioRejectDuration = 150 * time.Millisecond
	AudioArriveLowFreq  = 660.0
	AudioArriveHighFreq = 990.0
	AudioArriveNote     = 90 * time.Millisecond
	AudioArriveGap      = 20 * time.Millisecond
)
