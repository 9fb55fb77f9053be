package ui

import (
	"strings"
	"testing"
)

func TestRenderHistogramPanel(t *testing.T) {
	// Bimodal wave: mass splits between -1 and +1.
	wave := make([]float64, 200)
	for i := range wave {
		if i%2 == 0 {
			wave[i] = -1
		} else {
			wave[i] = 1
		}
	}

	out := RenderHistogramPanel(40, 12, wave)
	if !strings.Contains(out, "AMPLITUDE DISTRIBUTION") {
		t.Error("expected histogram panel title")
	}
	if !strings.Contains(out, "█") {
		t.Error("expected at least one histogram bar")
	}
	if !strings.Contains(out, "200 samples") {
		t.Error("expected sample count in the legend")
	}
}

func TestRenderHistogramPanel_DegenerateInput(t *testing.T) {
	// No samples and zero-span samples both render an empty grid.
	if out := RenderHistogramPanel(40, 12, nil); out == "" {
		t.Error("expected rendered panel for empty waveform")
	}
	constant := []float64{1.5, 1.5, 1.5, 1.5}
	if out := RenderHistogramPanel(40, 12, constant); out == "" {
		t.Error("expected rendered panel for constant waveform")
	}
}
