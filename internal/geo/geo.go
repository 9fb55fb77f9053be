// Package geo estimates per-station ranges to a simulated jamming source.
//
// Distances are planar Euclidean in coordinate degrees — a deliberate
// simulation-scale shortcut, not a geodesic. The estimator never solves for
// the source position from the ranges; it reports a noisy range from each
// known station to the already-known source.
package geo

import (
	"fmt"
	"math"
	"math/rand"
)

// Theatre bounds. The position sliders (0-100%) interpolate linearly
// across this box.
const (
	LatMin = 4.0
	LatMax = 12.0
	LonMin = -73.0
	LonMax = -60.0
)

// Measurement error applied to each true range.
const (
	rangeErrMin = 0.95
	rangeErrMax = 1.05
)

// Station is one fixed monitoring site. Loaded from configuration, never
// derived.
type Station struct {
	Name  string  `mapstructure:"name" yaml:"name"`
	Lat   float64 `mapstructure:"lat" yaml:"lat"`
	Lon   float64 `mapstructure:"lon" yaml:"lon"`
	Color string  `mapstructure:"color" yaml:"color"`
}

// Source is the interpolated jamming-source position.
type Source struct {
	Lat float64
	Lon float64
}

// RangeEstimate is a station's noisy range measurement to the source,
// in coordinate degrees.
type RangeEstimate struct {
	Station  Station
	RangeDeg float64
}

// SourcePosition maps slider percentages onto theatre coordinates.
func SourcePosition(latPct, lonPct float64) (Source, error) {
	if latPct < 0 || latPct > 100 {
		return Source{}, fmt.Errorf("latitude percent %.1f outside [0, 100]", latPct)
	}
	if lonPct < 0 || lonPct > 100 {
		return Source{}, fmt.Errorf("longitude percent %.1f outside [0, 100]", lonPct)
	}
	return Source{
		Lat: LatMin + latPct/100*(LatMax-LatMin),
		Lon: LonMin + lonPct/100*(LonMax-LonMin),
	}, nil
}

// Estimator produces range estimates against a fixed station topology.
type Estimator struct {
	stations []Station
	rng      *rand.Rand
}

// NewEstimator creates an estimator over the given stations. rng supplies
// the measurement error and must be seeded by the caller.
func NewEstimator(stations []Station, rng *rand.Rand) (*Estimator, error) {
	if len(stations) == 0 {
		return nil, fmt.Errorf("station table is empty")
	}
	if rng == nil {
		return nil, fmt.Errorf("estimator requires a random source")
	}
	return &Estimator{stations: stations, rng: rng}, nil
}

// Stations returns the configured topology in table order.
func (e *Estimator) Stations() []Station { return e.stations }

// Estimate interpolates the source position and measures a noisy range to
// it from every station. Each range is the true planar distance scaled by
// a uniform factor in [0.95, 1.05].
func (e *Estimator) Estimate(latPct, lonPct float64) (Source, []RangeEstimate, error) {
	src, err := SourcePosition(latPct, lonPct)
	if err != nil {
		return Source{}, nil, err
	}

	out := make([]RangeEstimate, len(e.stations))
	for i, st := range e.stations {
		dist := math.Hypot(st.Lat-src.Lat, st.Lon-src.Lon)
		factor := rangeErrMin + e.rng.Float64()*(rangeErrMax-rangeErrMin)
		out[i] = RangeEstimate{Station: st, RangeDeg: dist * factor}
	}
	return src, out, nil
}
