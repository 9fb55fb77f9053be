package ui

import (
	"fmt"
	"math"
)

// RenderHistogramPanel draws the amplitude distribution of the composite
// waveform as a vertical bar chart, one bin per column, tallest bin
// filling the grid height. The distribution is the attack's fingerprint:
// a clean carrier is bimodal at ±amplitude, white noise is a gaussian
// bell, pulses pile mass at zero with a far outlier spike.
func RenderHistogramPanel(width, height int, wave []float64) string {
	w, h := chartSize(width, height)
	g := newChartGrid(w, h)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range wave {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if len(wave) == 0 || hi <= lo {
		return panel(width, height, "AMPLITUDE DISTRIBUTION", "attack fingerprint check", g.String())
	}

	counts := make([]int, w)
	span := hi - lo
	for _, v := range wave {
		bin := int((v - lo) / span * float64(w))
		if bin >= w { // v == hi lands past the last bin
			bin = w - 1
		}
		counts[bin]++
	}
	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	for col, c := range counts {
		if c == 0 {
			continue
		}
		bar := int(math.Round(float64(c) / float64(peak) * float64(h)))
		if bar < 1 {
			bar = 1
		}
		for row := h - bar; row < h; row++ {
			g.set(col, row, '█', &StyleSeriesSignal)
		}
	}

	legend := StylePanelSub.Render(fmt.Sprintf("amplitude %.2f to %.2f, %d samples", lo, hi, len(wave)))
	return panel(width, height, "AMPLITUDE DISTRIBUTION", "attack fingerprint check", g.String()+"\n"+legend)
}
