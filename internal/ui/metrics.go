package ui

import (
	"fmt"
	"strings"

	"ewscope.dev/internal/dsp"
	"ewscope.dev/internal/sim"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders values as unicode block characters scaled to the
// observed range. Zero or negative width yields the empty string.
func sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	var sb strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		sb.WriteRune(sparkBlocks[idx])
	}
	return sb.String()
}

// statusCards renders the three-light system indicator. The thresholds
// match the dashboard rule: ≥10 dB nominal, ≥0 dB degraded, below 0 critical.
func statusCards(snrDB float64) string {
	op, warn, danger := StyleCardIdle, StyleCardIdle, StyleCardIdle
	switch {
	case snrDB >= 10:
		op = StyleCardActive
	case snrDB >= 0:
		warn = StyleCardWarning
	default:
		danger = StyleCardDanger
	}
	return op.Render("[ OPERATIONAL ]") + " " +
		warn.Render("[ DEGRADED ]") + " " +
		danger.Render("[ CRITICAL ]")
}

func paramRow(name, value string) string {
	return StyleParamName.Render(name+": ") + StyleParamValue.Render(value)
}

// RenderMetricsPanel shows the SNR readout, system status cards, attack
// parameters and the SNR history sparkline.
func RenderMetricsPanel(width, height int, snap *sim.Snapshot, history []float64) string {
	w, _ := chartSize(width, height)

	stateStyle := StyleStateOK
	switch {
	case snap.Impact.SNRdB < 0:
		stateStyle = StyleStateAlert
	case snap.Impact.SNRdB < 10:
		stateStyle = StyleStateWarn
	}

	lines := []string{
		StyleMetricValue.Render(fmt.Sprintf("%.1f dB", snap.Impact.SNRdB)) + " " +
			StyleMetricLabel.Render("signal-to-noise ratio"),
		stateStyle.Render(snap.Impact.State.String()),
		statusCards(snap.Impact.SNRdB),
		"",
		paramRow("Attack", snap.Params.Kind.String()),
		paramRow("Intensity", fmt.Sprintf("%.1f / %.1f", snap.Params.Intensity, dsp.MaxIntensity)),
		paramRow("Carrier", fmt.Sprintf("%.0f Hz × %.1f", snap.Params.CarrierHz, snap.Params.Amplitude)),
		paramRow("Source", fmt.Sprintf("(%.0f%%, %.0f%%)", snap.Params.LatPct, snap.Params.LonPct)),
	}

	// The sparkline only fits once the panel clears the label width.
	if sparkW := w - 12; sparkW > 0 {
		lines = append(lines, "",
			StyleMetricLabel.Render("SNR history ")+StyleSeriesIQ.Render(sparkline(history, sparkW)))
	}

	return panel(width, height, "SYSTEM METRICS", "", strings.Join(lines, "\n"))
}
