package ui

import (
	"math"

	"ewscope.dev/internal/config"
	"ewscope.dev/internal/dsp"
)

// Reference circles for constant-envelope checks.
var iqRefRadii = []float64{0.5, 1.0, 1.5}

// RenderConstellationPanel scatters the I/Q samples over reference circles.
// A clean carrier hugs a single ring; interference smears the cloud.
func RenderConstellationPanel(width, height int, iVals, qVals []float64, state dsp.State) string {
	w, h := chartSize(width, height)
	g := newChartGrid(w, h)

	span := config.IQSpan
	toCol := func(x float64) int {
		return int(math.Round((x + span) / (2 * span) * float64(w-1)))
	}
	toRow := func(y float64) int {
		return int(math.Round((span - y) / (2 * span) * float64(h-1)))
	}

	// Axes
	for col := 0; col < w; col++ {
		g.set(col, toRow(0), '·', &StyleGridLine)
	}
	for row := 0; row < h; row++ {
		g.set(toCol(0), row, '·', &StyleGridLine)
	}

	// Reference circles, sampled densely around each ring.
	for _, r := range iqRefRadii {
		steps := 8 * (w + h)
		for i := 0; i < steps; i++ {
			theta := float64(i) / float64(steps) * 2 * math.Pi
			g.set(toCol(r*math.Cos(theta)), toRow(r*math.Sin(theta)), '.', &StyleRefRing)
		}
	}

	// Sample cloud. Subsample so dense windows stay readable.
	stride := len(iVals) / (w * h)
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < len(iVals); i += stride {
		x, y := iVals[i], qVals[i]
		if x < -span || x > span || y < -span || y > span {
			continue
		}
		g.set(toCol(x), toRow(y), '•', &StyleSeriesIQ)
	}

	sub := "modulation integrity: "
	if state == dsp.Operational {
		sub += "clean"
	} else {
		sub += "distorted"
	}
	return panel(width, height, "I/Q CONSTELLATION", sub, g.String())
}
