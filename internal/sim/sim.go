// Package sim ties the synthesis and analysis stages into one engine that
// produces a full snapshot per parameter change.
package sim

import (
	"fmt"
	"math/rand"

	"ewscope.dev/internal/dsp"
	"ewscope.dev/internal/geo"
)

// Params is one complete set of dashboard inputs.
type Params struct {
	CarrierHz float64
	Amplitude float64
	Kind      dsp.JamKind
	Intensity float64
	LatPct    float64
	LonPct    float64
}

// Snapshot is everything the dashboard renders for one parameter set.
type Snapshot struct {
	Params       Params
	Baseline     []float64
	Interference []float64
	Composite    []float64
	Impact       dsp.Impact
	Spectrum     []dsp.Bin
	I            []float64
	Q            []float64
	Source       geo.Source
	Ranges       []geo.RangeEstimate
}

// Simulator owns the sampling basis and the only random source in the
// engine. All operations are synchronous; the caller debounces.
type Simulator struct {
	sampling *dsp.Sampling
	rng      *rand.Rand
	est      *geo.Estimator
}

// New builds a simulator at the given sample rate. The seed drives white
// noise, sweep noise and range error; equal seeds reproduce equal runs.
func New(rateHz int, seed int64, stations []geo.Station) (*Simulator, error) {
	sampling, err := dsp.NewSampling(rateHz)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	est, err := geo.NewEstimator(stations, rng)
	if err != nil {
		return nil, err
	}
	return &Simulator{sampling: sampling, rng: rng, est: est}, nil
}

// Sampling exposes the shared time base.
func (s *Simulator) Sampling() *dsp.Sampling { return s.sampling }

// Run executes one full simulation pass: baseline, interference, composite,
// impact score, spectrum, I/Q extraction and geolocation ranges.
func (s *Simulator) Run(p Params) (*Snapshot, error) {
	baseline, err := dsp.Sine(s.sampling, p.CarrierHz, p.Amplitude)
	if err != nil {
		return nil, fmt.Errorf("baseline synthesis: %w", err)
	}
	interference, err := dsp.Jam(s.sampling, p.Intensity, p.Kind, s.rng)
	if err != nil {
		return nil, fmt.Errorf("jamming synthesis: %w", err)
	}

	composite := make([]float64, len(baseline))
	for i := range composite {
		composite[i] = baseline[i] + interference[i]
	}

	impact, err := dsp.AnalyzeImpact(baseline, composite)
	if err != nil {
		return nil, fmt.Errorf("impact analysis: %w", err)
	}
	spectrum, err := dsp.Spectrum(s.sampling, composite)
	if err != nil {
		return nil, fmt.Errorf("spectral analysis: %w", err)
	}
	iVals, qVals, err := dsp.AnalyticIQ(composite)
	if err != nil {
		return nil, fmt.Errorf("iq extraction: %w", err)
	}
	source, ranges, err := s.est.Estimate(p.LatPct, p.LonPct)
	if err != nil {
		return nil, fmt.Errorf("geolocation: %w", err)
	}

	return &Snapshot{
		Params:       p,
		Baseline:     baseline,
		Interference: interference,
		Composite:    composite,
		Impact:       impact,
		Spectrum:     spectrum,
		I:            iVals,
		Q:            qVals,
		Source:       source,
		Ranges:       ranges,
	}, nil
}
