package dsp

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// AnalyticIQ derives the in-phase and quadrature components of a waveform
// through the analytic-signal construction: forward transform, zero the
// strictly-negative-frequency bins, double the strictly-positive ones
// (DC and Nyquist untouched), inverse transform. I recovers the input up to
// numerical tolerance; Q is its 90°-phase-shifted counterpart.
func AnalyticIQ(wave []float64) (i, q []float64, err error) {
	n := len(wave)
	if n == 0 {
		return nil, nil, fmt.Errorf("empty waveform")
	}

	fft := fourier.NewCmplxFFT(n)
	buf := make([]complex128, n)
	for idx, v := range wave {
		buf[idx] = complex(v, 0)
	}
	coeffs := fft.Coefficients(nil, buf)

	for k := 1; k < n; k++ {
		switch {
		case 2*k < n: // strictly positive frequency
			coeffs[k] *= 2
		case 2*k == n: // Nyquist (even n only)
		default: // strictly negative frequency
			coeffs[k] = 0
		}
	}

	analytic := fft.Sequence(nil, coeffs)

	// gonum's inverse is unnormalized; divide by n to recover the signal.
	scale := complex(float64(n), 0)
	i = make([]float64, n)
	q = make([]float64, n)
	for idx, c := range analytic {
		c /= scale
		i[idx] = real(c)
		q[idx] = imag(c)
	}
	return i, q, nil
}
