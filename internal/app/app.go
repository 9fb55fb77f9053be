package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ewscope.dev/internal/config"
	"ewscope.dev/internal/dsp"
	"ewscope.dev/internal/sim"
	"ewscope.dev/internal/ui"
)

// AppModel is the root Bubble Tea model for the dashboard. Every keypress
// that changes a parameter triggers one synchronous simulator run; the
// resulting snapshot is cached until the next change.
type AppModel struct {
	width  int
	height int

	params   sim.Params
	seed     int64
	sim      *sim.Simulator
	history  *SNRRing
	snapshot *sim.Snapshot
	err      error
}

// New creates the model and computes the initial snapshot.
func New(simulator *sim.Simulator, params sim.Params, seed int64) AppModel {
	m := AppModel{
		params:  params,
		seed:    seed,
		sim:     simulator,
		history: NewSNRRing(config.SNRHistoryLen),
	}
	return m.rerun()
}

// rerun executes the simulator with the current parameters.
func (m AppModel) rerun() AppModel {
	snap, err := m.sim.Run(m.params)
	if err != nil {
		m.err = err
		return m
	}
	m.snapshot = snap
	m.err = nil
	m.history.Push(snap.Impact.SNRdB)
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "f":
		m.params.CarrierHz = clamp(m.params.CarrierHz-config.CarrierStepHz, dsp.MinCarrierHz, dsp.MaxCarrierHz)
	case "F":
		m.params.CarrierHz = clamp(m.params.CarrierHz+config.CarrierStepHz, dsp.MinCarrierHz, dsp.MaxCarrierHz)

	case "a":
		m.params.Amplitude = clamp(m.params.Amplitude-config.AmplitudeStep, dsp.MinAmplitude, dsp.MaxAmplitude)
	case "A":
		m.params.Amplitude = clamp(m.params.Amplitude+config.AmplitudeStep, dsp.MinAmplitude, dsp.MaxAmplitude)

	case "i":
		m.params.Intensity = clamp(m.params.Intensity-config.IntensityStep, dsp.MinIntensity, dsp.MaxIntensity)
	case "I":
		m.params.Intensity = clamp(m.params.Intensity+config.IntensityStep, dsp.MinIntensity, dsp.MaxIntensity)

	case "j", "J":
		switch m.params.Kind {
		case dsp.WhiteNoise:
			m.params.Kind = dsp.Pulse
		case dsp.Pulse:
			m.params.Kind = dsp.Sweep
		default:
			m.params.Kind = dsp.WhiteNoise
		}

	case "up":
		m.params.LatPct = clamp(m.params.LatPct+config.PositionStep, 0, 100)
	case "down":
		m.params.LatPct = clamp(m.params.LatPct-config.PositionStep, 0, 100)
	case "right":
		m.params.LonPct = clamp(m.params.LonPct+config.PositionStep, 0, 100)
	case "left":
		m.params.LonPct = clamp(m.params.LonPct-config.PositionStep, 0, 100)

	case "r", "R":
		// Re-roll the stochastic components with unchanged parameters.

	default:
		return m, nil
	}

	return m.rerun(), nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing EW-SCOPE..."
	}
	if m.err != nil {
		return fmt.Sprintf("simulation error: %v\n\npress q to quit", m.err)
	}
	if m.snapshot == nil {
		return "no snapshot"
	}

	menuH := 1
	statusH := 1
	metricsH := 12
	body := m.height - menuH - statusH - metricsH
	if body < 12 {
		body = 12
	}
	rowH := body / 2
	leftW := m.width / 2
	rightW := m.width - leftW

	snap := m.snapshot

	menuBar := ui.RenderMenuBar(m.width, snap.Params.Kind.String())
	waveform := ui.RenderWaveformPanel(leftW, rowH, snap.Baseline, snap.Composite, snap.Impact)
	spectrum := ui.RenderSpectrumPanel(rightW, rowH, snap.Spectrum)
	mapPanel := ui.RenderMapPanel(leftW, body-rowH, snap.Ranges, snap.Source)
	constellation := ui.RenderConstellationPanel(rightW, body-rowH, snap.I, snap.Q, snap.Impact.State)
	histogram := ui.RenderHistogramPanel(leftW, metricsH, snap.Composite)
	metrics := ui.RenderMetricsPanel(rightW, metricsH, snap, m.history.Values())
	statusBar := ui.RenderStatusBar(m.width, snap.Impact, m.sim.Sampling().Rate(), m.seed)

	return ui.ComposeLayout(menuBar, waveform, spectrum, mapPanel, constellation, histogram, metrics, statusBar)
}
