package indicator

// PairSpread is the normalized gap between two adjacent SMAs:
// (SMA_long - SMA_short) / SMA_base. It expresses how much of the base
// window's level is consumed by the gap between the two shorter windows,
// a proxy for how mature the current trend is.
type PairSpread struct {
	Short    int     `json:"short"`
	Long     int     `json:"long"`
	Spread   Value   `json:"spread"`
	Weight   float64 `json:"weight"`
	Weighted Value   `json:"weighted"`
}

// Convergence is the calculator output for one evaluation point.
type Convergence struct {
	// Deviation maps window -> (close-SMA)/SMA*100, the price's percent
	// distance from each average.
	Deviation map[int]Value `json:"deviation"`
	// Level is SMA_shortest / SMA_base.
	Level Value `json:"level"`
	// Spreads are the adjacent-pair gaps, shortest pair first.
	Spreads []PairSpread `json:"spreads"`
}

// DefaultPairWeights are the weighted-matrix coefficients applied to the
// adjacent spreads in ascending pair order.
var DefaultPairWeights = []float64{1, 1.0 / 2, 7.0 / 29, 1.0 / 7}

// ConvergenceAt derives the convergence ratios from an SMA bank at the final
// position of the series. base designates the reference window dividing the
// spreads; a base whose SMA is undefined (or absent from the bank) leaves
// every spread undefined. weights may be nil for DefaultPairWeights; pairs
// beyond the weight list get weight 1.
func ConvergenceAt(bank map[int]SMABand, windows []int, base int, closePx float64, weights []float64) Convergence {
	ws := Windows(windows)
	if weights == nil {
		weights = DefaultPairWeights
	}

	conv := Convergence{Deviation: make(map[int]Value, len(ws))}

	latest := func(w int) Value {
		band, ok := bank[w]
		if !ok {
			return Undefined()
		}
		return Last(band.Series)
	}

	for _, w := range ws {
		sma := latest(w)
		conv.Deviation[w] = Div(Sub(Defined(closePx), sma), sma).Scale(100)
	}

	baseSMA := latest(base)
	if len(ws) > 0 {
		conv.Level = Div(latest(ws[0]), baseSMA)
	}

	for i := 0; i+1 < len(ws); i++ {
		short, long := ws[i], ws[i+1]
		weight := 1.0
		if i < len(weights) {
			weight = weights[i]
		}
		spread := Div(Sub(latest(long), latest(short)), baseSMA)
		conv.Spreads = append(conv.Spreads, PairSpread{
			Short:    short,
			Long:     long,
			Spread:   spread,
			Weight:   weight,
			Weighted: spread.Scale(weight),
		})
	}
	return conv
}
