package ui

import (
	"strings"
	"testing"

	"ewscope.dev/internal/dsp"
)

func flatSpectrum(levelDB float64) []dsp.Bin {
	bins := make([]dsp.Bin, 500)
	for k := range bins {
		bins[k] = dsp.Bin{FreqHz: float64(k), MagnitudeDB: levelDB}
	}
	return bins
}

func TestNoiseFloorElevated(t *testing.T) {
	if noiseFloorElevated(flatSpectrum(-60)) {
		t.Error("quiet floor flagged as elevated")
	}
	if !noiseFloorElevated(flatSpectrum(0)) {
		t.Error("raised floor not flagged")
	}
	// Energy below 10 Hz alone must not trip the check.
	bins := flatSpectrum(-60)
	for k := 0; k < 10; k++ {
		bins[k].MagnitudeDB = 5
	}
	if noiseFloorElevated(bins) {
		t.Error("narrowband energy below 10 Hz flagged as elevated floor")
	}
	if noiseFloorElevated(flatSpectrum(0)[:10]) {
		t.Error("spectrum with no bins above 10 Hz flagged")
	}
}

func TestRenderSpectrumPanel_NoiseFloorWarning(t *testing.T) {
	quiet := RenderSpectrumPanel(60, 14, flatSpectrum(-60))
	if !strings.Contains(quiet, "wideband interference check") {
		t.Error("expected quiet spectrum to carry the default subtitle")
	}
	if strings.Contains(quiet, "elevated noise floor") {
		t.Error("quiet spectrum should not warn")
	}

	loud := RenderSpectrumPanel(60, 14, flatSpectrum(0))
	if !strings.Contains(loud, "elevated noise floor") {
		t.Error("expected raised floor to trigger the warning subtitle")
	}
}
