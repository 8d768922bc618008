package indicator

// RollingMean computes the trailing-window arithmetic mean of data at every
// position. Positions with fewer than window points behind them are
// undefined. window <= 0 yields an all-undefined series.
func RollingMean(data []float64, window int) []Value {
	out := make([]Value, len(data))
	if window <= 0 {
		return out
	}
	sum := 0.0
	for i, v := range data {
		sum += v
		if i >= window {
			sum -= data[i-window]
		}
		if i >= window-1 {
			out[i] = Defined(sum / float64(window))
		}
	}
	return out
}

// RollingSum computes the trailing-window sum of data at every position.
func RollingSum(data []float64, window int) []Value {
	out := make([]Value, len(data))
	if window <= 0 {
		return out
	}
	sum := 0.0
	for i, v := range data {
		sum += v
		if i >= window {
			sum -= data[i-window]
		}
		if i >= window-1 {
			out[i] = Defined(sum)
		}
	}
	return out
}

// RollingMax computes the trailing-window maximum of a Value series.
// A window containing any undefined point is undefined.
func RollingMax(data []Value, window int) []Value {
	return rollingExtreme(data, window, func(a, b float64) bool { return a > b })
}

// RollingMin computes the trailing-window minimum of a Value series.
func RollingMin(data []Value, window int) []Value {
	return rollingExtreme(data, window, func(a, b float64) bool { return a < b })
}

func rollingExtreme(data []Value, window int, better func(a, b float64) bool) []Value {
	out := make([]Value, len(data))
	if window <= 0 {
		return out
	}
	for i := range data {
		if i < window-1 {
			continue
		}
		best, ok := 0.0, true
		for j := i - window + 1; j <= i; j++ {
			if !data[j].OK {
				ok = false
				break
			}
			if j == i-window+1 || better(data[j].V, best) {
				best = data[j].V
			}
		}
		if ok {
			out[i] = Defined(best)
		}
	}
	return out
}

// Last returns the final value of a series, undefined for an empty one.
func Last(series []Value) Value {
	if len(series) == 0 {
		return Undefined()
	}
	return series[len(series)-1]
}

// Tail returns the last n values of a series, newest last. Shorter series
// are returned whole.
func Tail(series []Value, n int) []Value {
	if n >= len(series) {
		out := make([]Value, len(series))
		copy(out, series)
		return out
	}
	out := make([]Value, n)
	copy(out, series[len(series)-n:])
	return out
}
