package dsp

import (
	"fmt"
	"math"
)

// State is the operational condition of the link under attack,
// ordered worst to best.
type State int

const (
	TotalCollapse State = iota
	DenialOfService
	SeverelyDegraded
	Degraded
	HighLatency
	Operational
)

func (st State) String() string {
	switch st {
	case TotalCollapse:
		return "TOTAL COLLAPSE"
	case DenialOfService:
		return "DENIAL OF SERVICE"
	case SeverelyDegraded:
		return "SEVERELY DEGRADED"
	case Degraded:
		return "DEGRADED"
	case HighLatency:
		return "HIGH LATENCY"
	default:
		return "OPERATIONAL"
	}
}

// CleanSNRdB is the saturated SNR reported when the attacked waveform is
// identical to the clean one (zero noise power).
const CleanSNRdB = 100.0

// snrBands maps each lower SNR bound (inclusive) to the state entered at
// that bound. Scanned in order; anything below the last bound is
// TotalCollapse.
var snrBands = []struct {
	lowerDB float64
	state   State
}{
	{20, Operational},
	{10, HighLatency},
	{5, Degraded},
	{0, SeverelyDegraded},
	{-5, DenialOfService},
}

// Classify maps an SNR in dB onto the operational state ladder.
func Classify(snrDB float64) State {
	for _, b := range snrBands {
		if snrDB >= b.lowerDB {
			return b.state
		}
	}
	return TotalCollapse
}

// Impact is the scored effect of interference on the link.
type Impact struct {
	SNRdB float64
	State State
}

// AnalyzeImpact scores the attacked waveform against the clean one.
// Signal power is the mean square of the clean waveform; noise power is the
// mean square of the difference. Zero noise power is reported as the
// saturated (CleanSNRdB, Operational) value, not an error.
func AnalyzeImpact(clean, attacked []float64) (Impact, error) {
	if len(clean) == 0 {
		return Impact{}, fmt.Errorf("empty waveform")
	}
	if len(clean) != len(attacked) {
		return Impact{}, fmt.Errorf("waveform length mismatch: %d vs %d", len(clean), len(attacked))
	}

	var signalPower, noisePower float64
	for i := range clean {
		signalPower += clean[i] * clean[i]
		d := attacked[i] - clean[i]
		noisePower += d * d
	}
	n := float64(len(clean))
	signalPower /= n
	noisePower /= n

	if noisePower == 0 {
		return Impact{SNRdB: CleanSNRdB, State: Operational}, nil
	}

	snr := 10 * math.Log10(signalPower/noisePower)
	return Impact{SNRdB: snr, State: Classify(snr)}, nil
}
