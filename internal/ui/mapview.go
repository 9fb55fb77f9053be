package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ewscope.dev/internal/geo"
)

// RenderMapPanel draws the theatre of operations: station markers, the
// jamming source, and one range ring per station at its estimated range.
// The grid spans the geo theatre box; positions are planar in degrees.
func RenderMapPanel(width, height int, ranges []geo.RangeEstimate, src geo.Source) string {
	w, h := chartSize(width, height)
	gridH := h - 1 // last line holds the legend
	if gridH < 3 {
		gridH = 3
	}
	g := newChartGrid(w, gridH)

	latSpan := geo.LatMax - geo.LatMin
	lonSpan := geo.LonMax - geo.LonMin
	latAt := func(row int) float64 {
		return geo.LatMax - float64(row)/float64(gridH-1)*latSpan
	}
	lonAt := func(col int) float64 {
		return geo.LonMin + float64(col)/float64(w-1)*lonSpan
	}
	rowOf := func(lat float64) int {
		return int(math.Round((geo.LatMax - lat) / latSpan * float64(gridH-1)))
	}
	colOf := func(lon float64) int {
		return int(math.Round((lon - geo.LonMin) / lonSpan * float64(w-1)))
	}

	// Ring tolerance: about half a cell in degrees, whichever axis is coarser.
	tol := 0.6 * math.Max(latSpan/float64(gridH-1), lonSpan/float64(w-1))

	styles := make([]lipgloss.Style, len(ranges))
	for i, re := range ranges {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(re.Station.Color))
	}

	// Range rings
	for row := 0; row < gridH; row++ {
		for col := 0; col < w; col++ {
			cellLat, cellLon := latAt(row), lonAt(col)
			for i, re := range ranges {
				d := math.Hypot(cellLat-re.Station.Lat, cellLon-re.Station.Lon)
				if math.Abs(d-re.RangeDeg) < tol {
					g.set(col, row, '·', &styles[i])
					break
				}
			}
		}
	}

	// Markers overdraw rings.
	for i, re := range ranges {
		bold := styles[i].Bold(true)
		g.set(colOf(re.Station.Lon), rowOf(re.Station.Lat), '▲', &bold)
	}
	g.set(colOf(src.Lon), rowOf(src.Lat), 'X', &StyleSourceMarker)

	var legend []string
	for i, re := range ranges {
		legend = append(legend, styles[i].Render(fmt.Sprintf("▲ %s %.2f°", re.Station.Name, re.RangeDeg)))
	}
	legend = append(legend, StyleSourceMarker.Render(fmt.Sprintf("X %.2f°, %.2f°", src.Lat, src.Lon)))

	return panel(width, height, "THEATRE OF OPERATIONS", "station ranges to source",
		g.String()+"\n"+strings.Join(legend, "  "))
}
