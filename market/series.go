package market

import (
	"sort"
)

// BarSeries is a date-sorted, de-duplicated run of daily bars for one
// instrument. It is built once from raw rows and read-only afterwards; the
// indicator engine only ever borrows views of it, so any number of
// evaluations may share one series without locking.
type BarSeries struct {
	symbol string
	bars   []Bar
}

// NewBarSeries cleans raw rows into a series: invalid bars are dropped, the
// rest are sorted by date and de-duplicated with the last row per date
// winning (re-downloads of the same session overwrite the earlier row).
func NewBarSeries(symbol string, raw []Bar) *BarSeries {
	byDate := make(map[int64]Bar, len(raw))
	order := make([]int64, 0, len(raw))
	for _, b := range raw {
		if err := b.Validate(); err != nil {
			continue
		}
		b.Date = Day(b.Date)
		key := b.Date.Unix()
		if _, seen := byDate[key]; !seen {
			order = append(order, key)
		}
		byDate[key] = b
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	bars := make([]Bar, 0, len(order))
	for _, key := range order {
		bars = append(bars, byDate[key])
	}
	return &BarSeries{symbol: symbol, bars: bars}
}

// Symbol returns the instrument code the series belongs to.
func (s *BarSeries) Symbol() string { return s.symbol }

// Len returns the number of trading days in the series.
func (s *BarSeries) Len() int { return len(s.bars) }

// Bars returns a copy of the underlying bars, oldest first.
func (s *BarSeries) Bars() []Bar {
	out := make([]Bar, len(s.bars))
	copy(out, s.bars)
	return out
}
