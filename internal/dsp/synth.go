package dsp

import (
	"fmt"
	"math"
)

// Engine parameter bounds. The dashboard sliders clamp to these, and the
// synthesis functions reject anything outside them.
const (
	MinCarrierHz = 1.0
	MaxCarrierHz = 20.0
	MinAmplitude = 0.5
	MaxAmplitude = 2.0
)

// Sine returns the legitimate carrier waveform amp·sin(2π·f·t) over the
// sampling window.
func Sine(s *Sampling, freqHz, amp float64) ([]float64, error) {
	if freqHz < MinCarrierHz || freqHz > MaxCarrierHz {
		return nil, fmt.Errorf("carrier frequency %.2f Hz outside [%g, %g]", freqHz, MinCarrierHz, MaxCarrierHz)
	}
	if amp < MinAmplitude || amp > MaxAmplitude {
		return nil, fmt.Errorf("amplitude %.2f outside [%g, %g]", amp, MinAmplitude, MaxAmplitude)
	}

	out := make([]float64, s.Count())
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freqHz*s.t[i])
	}
	return out, nil
}
