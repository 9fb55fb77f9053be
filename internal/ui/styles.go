package ui

import "github.com/charmbracelet/lipgloss"

// Ops-room color palette
var (
	ColorSignal    = lipgloss.Color("#00ff88") // legitimate carrier
	ColorAttack    = lipgloss.Color("#ff4757") // attacked signal / source marker
	ColorSpectrum  = lipgloss.Color("#7b2cbf")
	ColorIQ        = lipgloss.Color("#00d4ff")
	ColorAccent    = lipgloss.Color("#00d4ff")
	ColorWarning   = lipgloss.Color("#ffd93d")
	ColorDim       = lipgloss.Color("#4a5568")
	ColorText      = lipgloss.Color("#a0aec0")
	ColorBright    = lipgloss.Color("#e2e8f0")
	ColorBorder    = lipgloss.Color("#2d3748")
	ColorBarBg     = lipgloss.Color("#1a1f2e")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorSignal).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorSignal).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorText).
			Padding(0, 1)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StylePanelSub = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleSeriesSignal = lipgloss.NewStyle().
				Foreground(ColorSignal).
				Bold(true)

	StyleSeriesAttack = lipgloss.NewStyle().
				Foreground(ColorAttack)

	StyleSeriesSpectrum = lipgloss.NewStyle().
				Foreground(ColorSpectrum).
				Bold(true)

	StyleSeriesIQ = lipgloss.NewStyle().
			Foreground(ColorIQ)

	StyleGridLine = lipgloss.NewStyle().
			Foreground(ColorBorder)

	StyleRefRing = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleSourceMarker = lipgloss.NewStyle().
				Foreground(ColorAttack).
				Bold(true)

	StyleMetricValue = lipgloss.NewStyle().
				Foreground(ColorSignal).
				Bold(true)

	StyleMetricLabel = lipgloss.NewStyle().
				Foreground(ColorDim)

	StyleParamName = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleParamValue = lipgloss.NewStyle().
			Foreground(ColorBright)

	StyleCardActive = lipgloss.NewStyle().
			Foreground(ColorSignal).
			Bold(true)

	StyleCardWarning = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleCardDanger = lipgloss.NewStyle().
			Foreground(ColorAttack).
			Bold(true)

	StyleCardIdle = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleStateOK = lipgloss.NewStyle().
			Foreground(ColorSignal).
			Bold(true)

	StyleStateWarn = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleStateAlert = lipgloss.NewStyle().
			Foreground(ColorAttack).
			Bold(true)
)
