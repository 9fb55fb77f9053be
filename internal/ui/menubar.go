package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"ewscope.dev/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, attack string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"F/f", "freq"},
		{"A/a", "amp"},
		{"I/i", "intensity"},
		{"J", "attack"},
		{"arrows", "position"},
		{"R", "reroll"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	right := StyleMenuLabel.Render(fmt.Sprintf("Attack: %s", attack)) + " "
	left := StyleMenuKey.Render(title) + menu

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
