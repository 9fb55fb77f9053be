package dsp

import "fmt"

// Sampling fixes the time base shared by every waveform operation:
// a one-second window sampled at rate Hz, so the sample count equals
// the rate. Immutable after construction.
type Sampling struct {
	rate int
	t    []float64
}

// NewSampling creates a sampling basis for the given rate in Hz.
func NewSampling(rateHz int) (*Sampling, error) {
	if rateHz <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", rateHz)
	}
	t := make([]float64, rateHz)
	for i := range t {
		t[i] = float64(i) / float64(rateHz)
	}
	return &Sampling{rate: rateHz, t: t}, nil
}

// Rate returns the sample rate in Hz.
func (s *Sampling) Rate() int { return s.rate }

// Count returns the number of samples in the window.
func (s *Sampling) Count() int { return len(s.t) }

// At returns the time of sample i in seconds.
func (s *Sampling) At(i int) float64 { return s.t[i] }

// TimeAxis returns a copy of the time axis.
func (s *Sampling) TimeAxis() []float64 {
	out := make([]float64, len(s.t))
	copy(out, s.t)
	return out
}
