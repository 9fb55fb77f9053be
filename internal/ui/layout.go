package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the menu bar, three chart rows and the status bar.
// The bottom row pairs the amplitude histogram with the metrics panel.
func ComposeLayout(menuBar, waveform, spectrum, mapPanel, constellation, histogram, metrics, statusBar string) string {
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, waveform, spectrum)
	midRow := lipgloss.JoinHorizontal(lipgloss.Top, mapPanel, constellation)
	lowRow := lipgloss.JoinHorizontal(lipgloss.Top, histogram, metrics)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, topRow, midRow, lowRow, statusBar)
}
