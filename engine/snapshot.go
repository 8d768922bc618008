// Package engine assembles the indicator packages into one evaluation call:
// bars + reference date + shares outstanding + config in, a single immutable
// snapshot out. Evaluate is a pure function, which is what makes the
// memoizing cache and concurrent per-instrument evaluation safe.
package engine

import (
	"time"

	"hkquant/indicator"
	"hkquant/signal"
)

// Config selects the rolling windows and feature toggles for one evaluation.
// Immutable per call.
type Config struct {
	// SMAWindows are the moving-average lengths.
	SMAWindows []int `json:"sma_windows" yaml:"sma_windows"`
	// Intervals are the aggregation lengths for turnover and amplitude.
	Intervals []int `json:"intervals" yaml:"intervals"`
	// BaseWindow divides the convergence spreads.
	BaseWindow int `json:"base_window" yaml:"base_window"`
	// PairWeights scale the adjacent spreads in order; nil for the defaults.
	PairWeights []float64 `json:"pair_weights,omitempty" yaml:"pair_weights"`

	EnableTurnover  bool `json:"enable_turnover" yaml:"enable_turnover"`
	EnableAmplitude bool `json:"enable_amplitude" yaml:"enable_amplitude"`
}

// DefaultConfig returns the house windows: SMAs over {7,14,28,57,106,212}
// with the 106 as the convergence base, the same lengths as aggregation
// intervals, everything enabled.
func DefaultConfig() Config {
	return Config{
		SMAWindows:      []int{7, 14, 28, 57, 106, 212},
		Intervals:       []int{7, 14, 28, 57, 106, 212},
		BaseWindow:      106,
		EnableTurnover:  true,
		EnableAmplitude: true,
	}
}

// SMAEntry is one window's readings at the as-of bar.
type SMAEntry struct {
	Value Value `json:"value"`
	// BandMax/BandMin bound the SMA's own trailing 14-point envelope.
	BandMax Value `json:"band_max"`
	BandMin Value `json:"band_min"`
	// Recent holds the last seven SMA points, oldest first, for the trend
	// strip on the matrix page.
	Recent []Value `json:"recent"`
}

// Value aliases the indicator value type so snapshot consumers only import
// this package.
type Value = indicator.Value

// Snapshot is the engine's sole output: every derived metric as it stood on
// the as-of date. Created fresh per evaluation, never mutated, safe to cache
// by (symbol, as-of date, config).
type Snapshot struct {
	Symbol string `json:"symbol"`
	// Reference is the date the caller asked for; AsOf the trading day it
	// snapped to.
	Reference time.Time `json:"reference"`
	AsOf      time.Time `json:"as_of"`
	Close     float64   `json:"close"`
	BarCount  int       `json:"bar_count"`

	SMA         map[int]SMAEntry      `json:"sma"`
	Convergence indicator.Convergence `json:"convergence"`
	Turnover    indicator.Turnover    `json:"turnover"`
	Amplitude   indicator.Amplitude   `json:"amplitude"`
	VolumeSplit indicator.VolumeSplit `json:"volume_split"`

	CDM signal.Result `json:"cdm"`
	FZM signal.Result `json:"fzm"`
}
