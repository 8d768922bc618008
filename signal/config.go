// Package signal implements the two watchlist trading signals: CDM, a
// baseline-target price derived from two historical averaging boxes, and
// FZM, a trend filter gated by an oversold Williams %R reading. Both are
// stateless functions over a point-in-time market view.
package signal

import "time"

// Box is a closed historical date window over which closes are averaged.
type Box struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether both ends are set and ordered.
func (b Box) Valid() bool {
	return !b.Start.IsZero() && !b.End.IsZero() && !b.End.Before(b.Start)
}

// CDM constants, the house convention.
const (
	CDMCoef1     = 0.7
	CDMCoef2     = 0.5
	CDMThreshold = 0.05
)

// FZM defaults.
const (
	FZMShortWindow  = 7
	FZMMidWindow    = 14
	FZMOscPeriod    = 35
	FZMOversold     = -80
	FZMStopLookback = 5
)

// Config is the per-instrument signal configuration, owned by whoever keeps
// the watchlist. The zero Config means "nothing configured", which is a
// legitimate state, not an error: CDM reports itself not configured and FZM
// runs on its defaults.
type Config struct {
	Box1 Box `json:"box1"`
	Box2 Box `json:"box2"`

	// FZM overrides; zero fields fall back to the defaults above.
	ShortWindow  int `json:"short_window,omitempty"`
	MidWindow    int `json:"mid_window,omitempty"`
	OscPeriod    int `json:"osc_period,omitempty"`
	StopLookback int `json:"stop_lookback,omitempty"`
}

func (c Config) shortWindow() int {
	if c.ShortWindow > 0 {
		return c.ShortWindow
	}
	return FZMShortWindow
}

func (c Config) midWindow() int {
	if c.MidWindow > 0 {
		return c.MidWindow
	}
	return FZMMidWindow
}

func (c Config) oscPeriod() int {
	if c.OscPeriod > 0 {
		return c.OscPeriod
	}
	return FZMOscPeriod
}

func (c Config) stopLookback() int {
	if c.StopLookback > 0 {
		return c.StopLookback
	}
	return FZMStopLookback
}

// Result is one evaluator's verdict plus whatever readings the alert layer
// wants to show alongside it.
type Result struct {
	Triggered   bool                   `json:"triggered"`
	Diagnostics map[string]interface{} `json:"diagnostics"`
}
