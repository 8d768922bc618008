package market

import (
	"errors"
	"sort"
	"time"
)

// ErrNoDataBeforeReference is returned when the reference date precedes the
// instrument's first trading day, so no as-of prefix exists.
var ErrNoDataBeforeReference = errors.New("market: no bars on or before reference date")

// View is a read-only prefix of a BarSeries truncated at a reference date.
// Its last bar is the "as-of" bar: the latest trading day on or before the
// requested date. A view never contains a bar dated after the reference
// date, which is what keeps every indicator built on top of it free of
// look-ahead.
type View struct {
	symbol string
	ref    time.Time
	bars   []Bar // shares the series backing array; never written
}

// View returns the point-in-time prefix of the series at ref. The prefix is
// found by binary search over the date-sorted bars; the series itself is not
// touched.
func (s *BarSeries) View(ref time.Time) (*View, error) {
	day := Day(ref)
	n := sort.Search(len(s.bars), func(i int) bool {
		return s.bars[i].Date.After(day)
	})
	if n == 0 {
		return nil, ErrNoDataBeforeReference
	}
	return &View{symbol: s.symbol, ref: day, bars: s.bars[:n]}, nil
}

// Symbol returns the instrument code.
func (v *View) Symbol() string { return v.symbol }

// Reference returns the date the caller asked for.
func (v *View) Reference() time.Time { return v.ref }

// AsOf returns the actual snapped trading date, i.e. the last bar's date.
// It can be earlier than Reference when the reference falls on a non-trading
// day; UI layers show both.
func (v *View) AsOf() time.Time { return v.bars[len(v.bars)-1].Date }

// Len returns the number of bars visible in the view.
func (v *View) Len() int { return len(v.bars) }

// Bar returns the i-th visible bar, oldest first.
func (v *View) Bar(i int) Bar { return v.bars[i] }

// Last returns the as-of bar.
func (v *View) Last() Bar { return v.bars[len(v.bars)-1] }

// Closes returns the visible closing prices, oldest first.
func (v *View) Closes() []float64 {
	out := make([]float64, len(v.bars))
	for i, b := range v.bars {
		out[i] = b.Close
	}
	return out
}

// Highs returns the visible highs, oldest first.
func (v *View) Highs() []float64 {
	out := make([]float64, len(v.bars))
	for i, b := range v.bars {
		out[i] = b.High
	}
	return out
}

// Lows returns the visible lows, oldest first.
func (v *View) Lows() []float64 {
	out := make([]float64, len(v.bars))
	for i, b := range v.bars {
		out[i] = b.Low
	}
	return out
}

// Volumes returns the visible volumes, oldest first.
func (v *View) Volumes() []int64 {
	out := make([]int64, len(v.bars))
	for i, b := range v.bars {
		out[i] = b.Volume
	}
	return out
}

// CloseMeanBetween averages the closes of bars dated inside [from, to]
// (inclusive). Used by the baseline-target signal to resolve its boxes.
// The second return is false when no bar falls inside the window.
func (v *View) CloseMeanBetween(from, to time.Time) (float64, bool) {
	f, t := Day(from), Day(to)
	sum, n := 0.0, 0
	for _, b := range v.bars {
		if b.Date.Before(f) {
			continue
		}
		if b.Date.After(t) {
			break
		}
		sum += b.Close
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
