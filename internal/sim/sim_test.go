package sim

import (
	"testing"

	"ewscope.dev/internal/dsp"
	"ewscope.dev/internal/geo"
)

func testStations() []geo.Station {
	return []geo.Station{
		{Name: "Caracas (HQ)", Lat: 10.4806, Lon: -66.9036, Color: "#00ff88"},
		{Name: "Maracaibo", Lat: 10.6549, Lon: -71.6364, Color: "#00d4ff"},
		{Name: "Puerto Ordaz", Lat: 8.2968, Lon: -62.7116, Color: "#ff00ff"},
	}
}

func defaultParams() Params {
	return Params{
		CarrierHz: 5,
		Amplitude: 1.0,
		Kind:      dsp.WhiteNoise,
		Intensity: 2.5,
		LatPct:    60,
		LonPct:    55,
	}
}

func TestRun_ZeroIntensityLeavesBaselineClean(t *testing.T) {
	s, err := New(1000, 42, testStations())
	if err != nil {
		t.Fatal(err)
	}

	p := defaultParams()
	p.Intensity = 0
	snap, err := s.Run(p)
	if err != nil {
		t.Fatal(err)
	}

	for i := range snap.Composite {
		if snap.Interference[i] != 0 {
			t.Fatalf("sample %d: expected zero interference, got %f", i, snap.Interference[i])
		}
		if snap.Composite[i] != snap.Baseline[i] {
			t.Fatalf("sample %d: composite %f diverges from baseline %f", i, snap.Composite[i], snap.Baseline[i])
		}
	}
	if snap.Impact.SNRdB != dsp.CleanSNRdB {
		t.Errorf("expected saturated SNR %g dB, got %g", dsp.CleanSNRdB, snap.Impact.SNRdB)
	}
	if snap.Impact.State != dsp.Operational {
		t.Errorf("expected Operational, got %v", snap.Impact.State)
	}
}

func TestRun_SnapshotShape(t *testing.T) {
	stations := testStations()
	s, err := New(1000, 42, stations)
	if err != nil {
		t.Fatal(err)
	}

	snap, err := s.Run(defaultParams())
	if err != nil {
		t.Fatal(err)
	}

	for name, got := range map[string]int{
		"baseline":     len(snap.Baseline),
		"interference": len(snap.Interference),
		"composite":    len(snap.Composite),
		"i":            len(snap.I),
		"q":            len(snap.Q),
	} {
		if got != 1000 {
			t.Errorf("%s: expected 1000 samples, got %d", name, got)
		}
	}
	if len(snap.Spectrum) != 500 {
		t.Errorf("spectrum: expected 500 bins, got %d", len(snap.Spectrum))
	}
	if len(snap.Ranges) != len(stations) {
		t.Errorf("ranges: expected %d entries, got %d", len(stations), len(snap.Ranges))
	}
	if snap.Params != defaultParams() {
		t.Errorf("snapshot should echo its parameters: got %+v", snap.Params)
	}
}

func TestRun_ReproducibleAcrossSeededEngines(t *testing.T) {
	a, err := New(1000, 7, testStations())
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(1000, 7, testStations())
	if err != nil {
		t.Fatal(err)
	}

	p := defaultParams()
	sa, err := a.Run(p)
	if err != nil {
		t.Fatal(err)
	}
	sb, err := b.Run(p)
	if err != nil {
		t.Fatal(err)
	}

	for i := range sa.Interference {
		if sa.Interference[i] != sb.Interference[i] {
			t.Fatalf("sample %d: equally-seeded engines diverge", i)
		}
	}
	for i := range sa.Ranges {
		if sa.Ranges[i].RangeDeg != sb.Ranges[i].RangeDeg {
			t.Fatalf("range %d: equally-seeded engines diverge", i)
		}
	}
	if sa.Impact != sb.Impact {
		t.Errorf("equally-seeded impact scores diverge: %+v vs %+v", sa.Impact, sb.Impact)
	}
}

func TestRun_ConsecutiveRunsDrawFreshNoise(t *testing.T) {
	s, err := New(1000, 7, testStations())
	if err != nil {
		t.Fatal(err)
	}

	p := defaultParams()
	first, err := s.Run(p)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Run(p)
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for i := range first.Interference {
		if first.Interference[i] != second.Interference[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected a re-run with the same parameters to draw new noise")
	}
}

func TestRun_RejectsBadParams(t *testing.T) {
	s, err := New(1000, 1, testStations())
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"carrier below range", func(p *Params) { p.CarrierHz = 0.5 }},
		{"amplitude above range", func(p *Params) { p.Amplitude = 3 }},
		{"intensity above range", func(p *Params) { p.Intensity = 6 }},
		{"latitude percent above range", func(p *Params) { p.LatPct = 150 }},
	}
	for _, tc := range cases {
		p := defaultParams()
		tc.mutate(&p)
		if _, err := s.Run(p); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(0, 1, testStations()); err == nil {
		t.Error("expected error for zero sample rate")
	}
	if _, err := New(1000, 1, nil); err == nil {
		t.Error("expected error for empty station table")
	}
}
