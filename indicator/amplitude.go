package indicator

// Amplitude is the analyzer output for the intraday high-low range.
type Amplitude struct {
	// Value is the as-of bar's amplitude percentage (high-low)/close*100.
	Value Value `json:"value"`
	// Means maps interval -> trailing mean of the amplitude series.
	Means map[int]Value `json:"means"`
	// MeanReversion is Value/avg - 1, where avg averages the defined
	// interval means. Positive readings say today's range is wider than the
	// instrument's recent norm.
	MeanReversion Value `json:"mean_reversion"`
}

// AmplitudeAnalyze computes per-bar amplitude and its rolling means. The
// close>0 bar invariant guarantees the per-bar division; the mean-reversion
// average deliberately excludes the instantaneous value, averaging only the
// rolling means, so the newest bar is not double counted.
func AmplitudeAnalyze(highs, lows, closes []float64, intervals []int) Amplitude {
	n := len(closes)
	amps := make([]float64, n)
	for i := 0; i < n; i++ {
		amps[i] = (highs[i] - lows[i]) / closes[i] * 100
	}

	a := Amplitude{Means: make(map[int]Value)}
	if n > 0 {
		a.Value = Defined(amps[n-1])
	}

	sum, defined := 0.0, 0
	for _, p := range Windows(intervals) {
		m := Last(RollingMean(amps, p))
		a.Means[p] = m
		if m.OK {
			sum += m.V
			defined++
		}
	}
	if defined > 0 {
		avg := sum / float64(defined)
		a.MeanReversion = Div(a.Value, Defined(avg))
		if a.MeanReversion.OK {
			a.MeanReversion = Defined(a.MeanReversion.V - 1)
		}
	}
	return a
}
