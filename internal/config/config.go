package config

import (
	"fmt"

	"github.com/spf13/viper"

	"ewscope.dev/internal/geo"
)

const (
	// Engine
	DefaultSampleRate = 1000 // Hz; sample count per 1 s window equals this

	// Dashboard defaults (initial slider positions)
	DefaultCarrierHz = 5.0
	DefaultAmplitude = 1.0
	DefaultIntensity = 2.5
	DefaultLatPct    = 60.0
	DefaultLonPct    = 55.0

	// Keyboard step sizes
	CarrierStepHz = 1.0
	AmplitudeStep = 0.1
	IntensityStep = 0.1
	PositionStep  = 5.0 // percent per keypress

	// Display
	WaveformWindow = 200   // samples shown in the time-domain panel
	SpectrumMaxHz  = 100.0 // upper edge of the spectrum panel
	SpectrumMinDB  = -60.0 // lower edge of the spectrum panel
	SpectrumMaxDB  = 10.0
	IQSpan         = 2.5 // constellation axes run [-IQSpan, +IQSpan]
	SNRHistoryLen  = 48  // samples kept for the SNR sparkline

	// App
	AppName    = "EW-SCOPE"
	AppVersion = "1.0"
)

// DefaultStations is the reference three-station monitoring topology.
func DefaultStations() []geo.Station {
	return []geo.Station{
		{Name: "Caracas (HQ)", Lat: 10.4806, Lon: -66.9036, Color: "#00ff88"},
		{Name: "Maracaibo", Lat: 10.6549, Lon: -71.6364, Color: "#00d4ff"},
		{Name: "Puerto Ordaz", Lat: 8.2968, Lon: -62.7116, Color: "#ff00ff"},
	}
}

// LoadStations reads an alternate station topology from a yaml config file:
//
//	stations:
//	  - name: Alpha
//	    lat: 10.5
//	    lon: -66.9
//	    color: "#00ff88"
func LoadStations(path string) ([]geo.Station, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read station config: %w", err)
	}

	var cfg struct {
		Stations []geo.Station `mapstructure:"stations"`
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal station config: %w", err)
	}
	if len(cfg.Stations) == 0 {
		return nil, fmt.Errorf("station config %s defines no stations", path)
	}
	for i, st := range cfg.Stations {
		if st.Name == "" {
			return nil, fmt.Errorf("station %d has no name", i)
		}
	}
	return cfg.Stations, nil
}
