package indicator

import "sort"

// BandLookback is the fixed lookback over which each SMA's own rolling
// max/min envelope is taken, the house convention being the last 14 points.
const BandLookback = 14

// SMABand holds one window's simple moving average series together with the
// rolling max/min envelope of that series.
type SMABand struct {
	Window int
	Series []Value
	Max    []Value
	Min    []Value
}

// SMABank computes the configured set of simple moving averages over a run
// of closing prices. Windows are deduplicated and iterated in ascending
// order; the result maps window length to its band.
func SMABank(closes []float64, windows []int) map[int]SMABand {
	out := make(map[int]SMABand, len(windows))
	for _, w := range Windows(windows) {
		series := RollingMean(closes, w)
		out[w] = SMABand{
			Window: w,
			Series: series,
			Max:    RollingMax(series, BandLookback),
			Min:    RollingMin(series, BandLookback),
		}
	}
	return out
}

// Windows returns the window list sorted ascending with duplicates and
// non-positive entries removed.
func Windows(windows []int) []int {
	seen := make(map[int]bool, len(windows))
	out := make([]int, 0, len(windows))
	for _, w := range windows {
		if w <= 0 || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}
