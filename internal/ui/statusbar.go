package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"ewscope.dev/internal/dsp"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, impact dsp.Impact, sampleRate int, seed int64) string {
	state := StyleStateOK
	switch {
	case impact.SNRdB < 0:
		state = StyleStateAlert
	case impact.SNRdB < 10:
		state = StyleStateWarn
	}

	content := state.Render(fmt.Sprintf("[%s]", impact.State)) +
		StyleStatusBar.Foreground(ColorText).Render(
			fmt.Sprintf(" SNR: %.1f dB  Fs: %d Hz  Window: 1 s  Seed: %d",
				impact.SNRdB, sampleRate, seed))

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
