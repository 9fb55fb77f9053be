// EW-SCOPE - electronic-warfare training simulator with a terminal dashboard.
// Synthesizes a legitimate carrier, applies a selectable jamming attack and
// renders impact metrics, spectrum, I/Q and geolocation panels live.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ewscope.dev/internal/app"
	"ewscope.dev/internal/config"
	"ewscope.dev/internal/dsp"
	"ewscope.dev/internal/sim"
)

// Command line flag variables
var (
	cfgFile    string  // Optional station topology yaml
	sampleRate int     // Engine sample rate in Hz
	seed       int64   // RNG seed; 0 derives one from the clock
	frequency  float64 // Initial carrier frequency in Hz
	amplitude  float64 // Initial carrier amplitude
	attack     string  // Initial attack kind
	intensity  float64 // Initial jamming intensity
	latPct     float64 // Initial source latitude slider (0-100)
	lonPct     float64 // Initial source longitude slider (0-100)
)

var rootCmd = &cobra.Command{
	Use:   "ewscope",
	Short: "Electronic-warfare jamming simulator with a live terminal dashboard",
	Long: `EW-SCOPE models the effect of jamming on a legitimate communications
waveform: baseline synthesis, three attack profiles, SNR impact scoring,
frequency spectrum, I/Q extraction and a multi-station range estimate,
all rendered as an interactive terminal dashboard.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "station topology yaml (default: built-in three-station table)")
	rootCmd.Flags().IntVar(&sampleRate, "sample-rate", config.DefaultSampleRate, "sample rate in Hz (window is always 1 s)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible runs (0 = time-derived)")
	rootCmd.Flags().Float64VarP(&frequency, "frequency", "f", config.DefaultCarrierHz, "initial carrier frequency (Hz)")
	rootCmd.Flags().Float64VarP(&amplitude, "amplitude", "a", config.DefaultAmplitude, "initial carrier amplitude")
	rootCmd.Flags().StringVar(&attack, "attack", "white-noise", "initial attack kind: white-noise, pulse or sweep")
	rootCmd.Flags().Float64VarP(&intensity, "intensity", "i", config.DefaultIntensity, "initial jamming intensity (0-5)")
	rootCmd.Flags().Float64Var(&latPct, "lat", config.DefaultLatPct, "initial source latitude slider (0-100)")
	rootCmd.Flags().Float64Var(&lonPct, "lon", config.DefaultLonPct, "initial source longitude slider (0-100)")

	// Bind command line flags to viper configuration keys
	viper.BindPFlag("engine.sample_rate", rootCmd.Flags().Lookup("sample-rate"))
	viper.BindPFlag("engine.seed", rootCmd.Flags().Lookup("seed"))
	viper.BindPFlag("signal.frequency", rootCmd.Flags().Lookup("frequency"))
	viper.BindPFlag("signal.amplitude", rootCmd.Flags().Lookup("amplitude"))
	viper.BindPFlag("jamming.attack", rootCmd.Flags().Lookup("attack"))
	viper.BindPFlag("jamming.intensity", rootCmd.Flags().Lookup("intensity"))
	viper.AutomaticEnv()
}

// parseAttack maps the flag spelling onto the engine enum.
func parseAttack(s string) (dsp.JamKind, error) {
	switch s {
	case "white-noise", "noise":
		return dsp.WhiteNoise, nil
	case "pulse":
		return dsp.Pulse, nil
	case "sweep":
		return dsp.Sweep, nil
	default:
		return 0, fmt.Errorf("invalid attack kind: %q (must be white-noise, pulse or sweep)", s)
	}
}

func run(cmd *cobra.Command, args []string) error {
	kind, err := parseAttack(viper.GetString("jamming.attack"))
	if err != nil {
		return err
	}

	stations := config.DefaultStations()
	if cfgFile != "" {
		stations, err = config.LoadStations(cfgFile)
		if err != nil {
			return err
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	simulator, err := sim.New(viper.GetInt("engine.sample_rate"), seed, stations)
	if err != nil {
		return err
	}

	params := sim.Params{
		CarrierHz: viper.GetFloat64("signal.frequency"),
		Amplitude: viper.GetFloat64("signal.amplitude"),
		Kind:      kind,
		Intensity: viper.GetFloat64("jamming.intensity"),
		LatPct:    latPct,
		LonPct:    lonPct,
	}
	// Fail on bad flag values before the alt screen takes over.
	if _, err := simulator.Run(params); err != nil {
		return err
	}

	model := app.New(simulator, params, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(30),
	)
	_, err = p.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
