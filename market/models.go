package market

import (
	"errors"
	"fmt"
	"time"
)

// Bar is one daily OHLCV row. Bars are created once per trading session by
// whoever loads the data and are never mutated afterwards.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Validate checks the bar invariants.
func (b Bar) Validate() error {
	if b.Date.IsZero() {
		return errors.New("bar has no date")
	}
	day := b.Date.Format("2006-01-02")
	if b.Close <= 0 {
		return fmt.Errorf("bar %s: close must be positive, got %v", day, b.Close)
	}
	if b.Volume < 0 {
		return fmt.Errorf("bar %s: negative volume %d", day, b.Volume)
	}
	if b.High < b.Open || b.High < b.Close || b.High < b.Low {
		return fmt.Errorf("bar %s: high %v below open/close/low", day, b.High)
	}
	if b.Low > b.Open || b.Low > b.Close {
		return fmt.Errorf("bar %s: low %v above open/close", day, b.Low)
	}
	return nil
}

// Day truncates a time to its calendar date in UTC. Every series key goes
// through this so bars loaded with differing clock components compare equal.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
