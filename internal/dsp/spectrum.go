package dsp

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Bin is one point of the half-spectrum magnitude profile.
type Bin struct {
	FreqHz      float64
	MagnitudeDB float64
}

// magnitudeFloor keeps the dB conversion finite for bins that are
// exactly zero.
const magnitudeFloor = 1e-10

// Spectrum computes the frequency-domain magnitude profile of a waveform
// in dB. Only the non-negative half is returned: bins 0..N/2-1, frequency
// ascending, where bin k sits at k·rate/N Hz. Magnitudes are scaled by 2/N
// so a pure sinusoid of amplitude A peaks near 20·log10(A).
func Spectrum(s *Sampling, wave []float64) ([]Bin, error) {
	if len(wave) != s.Count() {
		return nil, fmt.Errorf("waveform has %d samples, sampling basis expects %d", len(wave), s.Count())
	}

	fft := fourier.NewFFT(len(wave))
	coeffs := fft.Coefficients(nil, wave)

	n := float64(len(wave))
	half := len(wave) / 2
	bins := make([]Bin, half)
	for k := 0; k < half; k++ {
		mag := 2.0 / n * cmplx.Abs(coeffs[k])
		if mag < magnitudeFloor {
			mag = magnitudeFloor
		}
		bins[k] = Bin{
			FreqHz:      float64(k) * float64(s.rate) / n,
			MagnitudeDB: 20 * math.Log10(mag),
		}
	}
	return bins, nil
}
