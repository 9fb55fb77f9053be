package dsp

import (
	"math"
	"testing"
)

func TestAnalyticIQ_RecoversInPhase(t *testing.T) {
	s := mustSampling(t, 1000)
	wave, err := Sine(s, 5, 1.2)
	if err != nil {
		t.Fatal(err)
	}

	i, q, err := AnalyticIQ(wave)
	if err != nil {
		t.Fatal(err)
	}
	if len(i) != len(wave) || len(q) != len(wave) {
		t.Fatalf("expected %d I/Q samples, got %d/%d", len(wave), len(i), len(q))
	}
	for idx := range wave {
		if math.Abs(i[idx]-wave[idx]) > 1e-9 {
			t.Fatalf("sample %d: in-phase %g does not match input %g", idx, i[idx], wave[idx])
		}
	}
}

func TestAnalyticIQ_QuadratureOfSine(t *testing.T) {
	s := mustSampling(t, 1000)
	const freq, amp = 5.0, 1.2
	wave, err := Sine(s, freq, amp)
	if err != nil {
		t.Fatal(err)
	}

	_, q, err := AnalyticIQ(wave)
	if err != nil {
		t.Fatal(err)
	}
	// The quadrature of A·sin is -A·cos.
	for idx := range q {
		want := -amp * math.Cos(2*math.Pi*freq*s.At(idx))
		if math.Abs(q[idx]-want) > 1e-9 {
			t.Fatalf("sample %d: expected quadrature %g, got %g", idx, want, q[idx])
		}
	}
}

func TestAnalyticIQ_ConstantEnvelope(t *testing.T) {
	s := mustSampling(t, 1000)
	const amp = 1.7
	wave, err := Sine(s, 7, amp)
	if err != nil {
		t.Fatal(err)
	}

	i, q, err := AnalyticIQ(wave)
	if err != nil {
		t.Fatal(err)
	}
	for idx := range i {
		env := math.Hypot(i[idx], q[idx])
		if math.Abs(env-amp) > 1e-9 {
			t.Fatalf("sample %d: expected envelope %g, got %g", idx, amp, env)
		}
	}
}

func TestAnalyticIQ_OddLength(t *testing.T) {
	// Odd n has no Nyquist bin; the in-phase branch must still round-trip.
	wave := []float64{0.3, -1.1, 0.8, 0.2, -0.6, 1.4, -0.9}
	i, _, err := AnalyticIQ(wave)
	if err != nil {
		t.Fatal(err)
	}
	for idx := range wave {
		if math.Abs(i[idx]-wave[idx]) > 1e-9 {
			t.Fatalf("sample %d: in-phase %g does not match input %g", idx, i[idx], wave[idx])
		}
	}
}

func TestAnalyticIQ_RejectsEmpty(t *testing.T) {
	if _, _, err := AnalyticIQ(nil); err == nil {
		t.Error("expected error for empty waveform")
	}
}
