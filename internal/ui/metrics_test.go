package ui

import (
	"strings"
	"testing"

	"ewscope.dev/internal/dsp"
	"ewscope.dev/internal/sim"
)

func testSnapshot() *sim.Snapshot {
	return &sim.Snapshot{
		Params: sim.Params{
			CarrierHz: 5,
			Amplitude: 1.0,
			Kind:      dsp.WhiteNoise,
			Intensity: 2.5,
			LatPct:    60,
			LonPct:    55,
		},
		Impact: dsp.Impact{SNRdB: 12.3, State: dsp.HighLatency},
	}
}

func TestSparkline_Widths(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	if got := sparkline(values, 0); got != "" {
		t.Errorf("expected empty sparkline at zero width, got %q", got)
	}
	if got := sparkline(values, -3); got != "" {
		t.Errorf("expected empty sparkline at negative width, got %q", got)
	}
	if got := sparkline(values, 3); len([]rune(got)) != 3 {
		t.Errorf("expected 3 cells, got %q", got)
	}
	if got := sparkline(nil, 10); got != "" {
		t.Errorf("expected empty sparkline for no values, got %q", got)
	}
}

func TestRenderMetricsPanel_NarrowTerminal(t *testing.T) {
	history := []float64{10, 12, 8, 14, 9, 11, 13, 7, 10, 12}

	// Widths below the sparkline label must degrade, never panic.
	for _, width := range []int{0, 5, 10, 16, 17, 40} {
		out := RenderMetricsPanel(width, 12, testSnapshot(), history)
		if out == "" {
			t.Errorf("width %d: expected rendered panel", width)
		}
	}
}

func TestRenderMetricsPanel_ShowsReadings(t *testing.T) {
	out := RenderMetricsPanel(80, 12, testSnapshot(), []float64{10, 12})
	for _, want := range []string{"12.3 dB", "HIGH LATENCY", "White Noise"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected panel to contain %q", want)
		}
	}
}
