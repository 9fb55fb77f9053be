package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Series is one line of data drawn into a chart grid. Later series
// overdraw earlier ones where they collide.
type Series struct {
	Values []float64
	Style  lipgloss.Style
	Marker rune
}

type cell struct {
	ch    rune
	style *lipgloss.Style
}

// chartGrid is a width×height field of styled characters.
type chartGrid struct {
	width  int
	height int
	cells  []cell
}

func newChartGrid(width, height int) *chartGrid {
	g := &chartGrid{width: width, height: height, cells: make([]cell, width*height)}
	for i := range g.cells {
		g.cells[i] = cell{ch: ' '}
	}
	return g
}

func (g *chartGrid) set(col, row int, ch rune, style *lipgloss.Style) {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return
	}
	g.cells[row*g.width+col] = cell{ch: ch, style: style}
}

func (g *chartGrid) String() string {
	var sb strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := g.cells[row*g.width+col]
			if c.style != nil {
				sb.WriteString(c.style.Render(string(c.ch)))
			} else {
				sb.WriteRune(c.ch)
			}
		}
		if row < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// valueRow maps a value onto a grid row; lo sits on the bottom row,
// hi on the top.
func valueRow(v, lo, hi float64, height int) int {
	if hi <= lo {
		return height / 2
	}
	frac := (v - lo) / (hi - lo)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return int(math.Round((1 - frac) * float64(height-1)))
}

// RenderChart draws the series into a character grid spanning [lo, hi]
// vertically. A dim baseline is drawn where the zero level falls inside
// the range. Each series is resampled across the full width and drawn as
// a connected line.
func RenderChart(width, height int, lo, hi float64, series ...Series) string {
	if width < 2 || height < 2 {
		return ""
	}
	g := newChartGrid(width, height)

	if lo < 0 && hi > 0 {
		zeroRow := valueRow(0, lo, hi, height)
		for col := 0; col < width; col++ {
			g.set(col, zeroRow, '·', &StyleGridLine)
		}
	}

	for si := range series {
		s := &series[si]
		n := len(s.Values)
		if n == 0 {
			continue
		}
		prevRow := -1
		for col := 0; col < width; col++ {
			idx := 0
			if width > 1 {
				idx = col * (n - 1) / (width - 1)
			}
			row := valueRow(s.Values[idx], lo, hi, height)
			g.set(col, row, s.Marker, &s.Style)

			// Fill vertical gaps so steep slopes stay connected.
			if prevRow >= 0 {
				step := 1
				if row < prevRow {
					step = -1
				}
				for r := prevRow + step; r != row; r += step {
					g.set(col, r, s.Marker, &s.Style)
				}
			}
			prevRow = row
		}
	}

	return g.String()
}

// minMax returns the extremes across all given slices, padded slightly so
// peaks do not sit on the panel edge.
func minMax(slices ...[]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range slices {
		for _, v := range s {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if math.IsInf(lo, 1) {
		return -1, 1
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 0.5
	}
	return lo - pad, hi + pad
}
