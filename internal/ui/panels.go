package ui

import (
	"fmt"

	"ewscope.dev/internal/config"
	"ewscope.dev/internal/dsp"
)

// panel wraps content with the shared border, title and subtitle line.
func panel(width, height int, title, sub, content string) string {
	header := StylePanelTitle.Render(title)
	if sub != "" {
		header += " " + StylePanelSub.Render(sub)
	}
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(header + "\n" + content)
}

// chartSize returns the inner drawing area for a panel with a header line.
func chartSize(width, height int) (int, int) {
	w := width - 4
	h := height - 5
	if w < 5 {
		w = 5
	}
	if h < 3 {
		h = 3
	}
	return w, h
}

// RenderWaveformPanel shows the clean carrier against the attacked
// composite over the leading slice of the window.
func RenderWaveformPanel(width, height int, baseline, composite []float64, impact dsp.Impact) string {
	w, h := chartSize(width, height)

	window := config.WaveformWindow
	if window > len(baseline) {
		window = len(baseline)
	}
	clean := baseline[:window]
	attacked := composite[:window]

	lo, hi := minMax(clean, attacked)
	chart := RenderChart(w, h, lo, hi,
		Series{Values: attacked, Style: StyleSeriesAttack, Marker: '·'},
		Series{Values: clean, Style: StyleSeriesSignal, Marker: '•'},
	)
	legend := StyleSeriesSignal.Render("• legitimate") + "  " +
		StyleSeriesAttack.Render("· under attack")

	sub := fmt.Sprintf("%s | SNR %.1f dB", impact.State, impact.SNRdB)
	return panel(width, height, "TIME DOMAIN", sub, chart+"\n"+legend)
}

// RenderSpectrumPanel shows the composite's magnitude spectrum up to
// SpectrumMaxHz on a fixed dB scale.
func RenderSpectrumPanel(width, height int, spectrum []dsp.Bin) string {
	w, h := chartSize(width, height)

	var mags []float64
	for _, b := range spectrum {
		if b.FreqHz > config.SpectrumMaxHz {
			break
		}
		mags = append(mags, b.MagnitudeDB)
	}

	chart := RenderChart(w, h, config.SpectrumMinDB, config.SpectrumMaxDB,
		Series{Values: mags, Style: StyleSeriesSpectrum, Marker: '•'},
	)
	legend := StylePanelSub.Render(fmt.Sprintf("0-%.0f Hz, %.0f to %.0f dB",
		config.SpectrumMaxHz, config.SpectrumMinDB, config.SpectrumMaxDB))

	sub := "wideband interference check"
	if noiseFloorElevated(spectrum) {
		sub = "⚠ elevated noise floor: wideband attack"
	}
	return panel(width, height, "FREQUENCY SPECTRUM", sub, chart+"\n"+legend)
}

// noiseFloorElevated reports whether the mean magnitude of all bins from
// 10 Hz up exceeds -20 dB. A quiet floor sits far lower; only broadband
// jamming lifts the whole band.
func noiseFloorElevated(spectrum []dsp.Bin) bool {
	const fromBin, thresholdDB = 10, -20.0
	if len(spectrum) <= fromBin {
		return false
	}
	var sum float64
	for _, b := range spectrum[fromBin:] {
		sum += b.MagnitudeDB
	}
	return sum/float64(len(spectrum)-fromBin) > thresholdDB
}
