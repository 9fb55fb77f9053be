package dsp

import (
	"fmt"
	"math"
	"math/rand"
)

// JamKind selects the interference profile.
type JamKind int

const (
	WhiteNoise JamKind = iota
	Pulse
	Sweep
)

func (k JamKind) String() string {
	switch k {
	case WhiteNoise:
		return "White Noise"
	case Pulse:
		return "Pulse"
	case Sweep:
		return "Sweep"
	default:
		return "Unknown"
	}
}

// Intensity bounds for all jamming profiles.
const (
	MinIntensity = 0.0
	MaxIntensity = 5.0
)

// Jamming waveform constants. These set the shape of each attack profile
// and are part of the output contract.
const (
	pulseStride     = 50  // one pulse every 50 samples, starting at 0
	pulseGain       = 3.0 // pulse height = intensity * pulseGain
	sweepStartHz    = 1.0
	sweepEndHz      = 50.0
	sweepPhaseDiv   = 10.0 // sweep phase argument is 2π·f·t / sweepPhaseDiv
	sweepNoiseScale = 0.3  // gaussian noise on the sweep = 0.3 * intensity
)

// Jam synthesizes one window of interference for the given attack kind.
//
// Zero intensity yields the silent waveform for every kind. A kind outside
// the enumeration also yields the silent waveform rather than an error; the
// enum is closed, so this only guards values forged through conversion.
// Intensity outside [0, 5] is rejected.
//
// WhiteNoise and Sweep draw from rng; the caller owns seeding, so equal
// seeds reproduce equal waveforms.
func Jam(s *Sampling, intensity float64, kind JamKind, rng *rand.Rand) ([]float64, error) {
	if intensity < MinIntensity || intensity > MaxIntensity {
		return nil, fmt.Errorf("jamming intensity %.2f outside [%g, %g]", intensity, MinIntensity, MaxIntensity)
	}

	out := make([]float64, s.Count())
	if intensity == 0 {
		return out, nil
	}

	switch kind {
	case WhiteNoise:
		if rng == nil {
			return nil, fmt.Errorf("white noise jamming requires a random source")
		}
		for i := range out {
			out[i] = rng.NormFloat64() * intensity
		}

	case Pulse:
		for i := 0; i < len(out); i += pulseStride {
			out[i] = intensity * pulseGain
		}

	case Sweep:
		if rng == nil {
			return nil, fmt.Errorf("sweep jamming requires a random source")
		}
		n := len(out)
		for i := range out {
			// Instantaneous frequency climbs linearly from 1 Hz to 50 Hz
			// across the window, endpoints inclusive. A single-sample
			// window collapses to the start frequency.
			fi := sweepStartHz
			if n > 1 {
				fi += (sweepEndHz - sweepStartHz) * float64(i) / float64(n-1)
			}
			tone := intensity * math.Sin(2*math.Pi*fi*s.t[i]/sweepPhaseDiv)
			out[i] = tone + rng.NormFloat64()*sweepNoiseScale*intensity
		}
	}

	return out, nil
}
