package indicator

// WilliamsR computes the Williams %R oscillator at the final bar: the
// close's position inside the trailing n-bar high-low range, scaled to
// [-100, 0]. Undefined when fewer than n bars exist or the range is zero
// (a flat limit-locked run has no position to measure).
func WilliamsR(highs, lows, closes []float64, n int) Value {
	if n <= 0 || len(closes) < n || len(highs) != len(closes) || len(lows) != len(closes) {
		return Undefined()
	}
	hh, ll := highs[len(highs)-n], lows[len(lows)-n]
	for i := len(closes) - n + 1; i < len(closes); i++ {
		if highs[i] > hh {
			hh = highs[i]
		}
		if lows[i] < ll {
			ll = lows[i]
		}
	}
	if hh == ll {
		return Undefined()
	}
	return Defined(-100 * (hh - closes[len(closes)-1]) / (hh - ll))
}

// LowestLow returns the minimum low over the trailing n bars, undefined when
// fewer than n bars exist. Used as a suggested stop level.
func LowestLow(lows []float64, n int) Value {
	if n <= 0 || len(lows) < n {
		return Undefined()
	}
	ll := lows[len(lows)-n]
	for i := len(lows) - n + 1; i < len(lows); i++ {
		if lows[i] < ll {
			ll = lows[i]
		}
	}
	return Defined(ll)
}
