package indicator

// TurnoverStats are the trailing-interval aggregates of the turnover-rate
// series.
type TurnoverStats struct {
	Sum  Value `json:"sum"`
	Max  Value `json:"max"`
	Min  Value `json:"min"`
	Mean Value `json:"mean"`
}

// SpanRate is the extra turnover accumulated between two adjacent intervals:
// (VolumeSum_long - VolumeSum_short) / shares * 100.
type SpanRate struct {
	Short int   `json:"short"`
	Long  int   `json:"long"`
	Rate  Value `json:"rate"`
}

// SumRatio compares two trailing volume sums. Unlike the rate metrics it
// needs no shares-outstanding figure, so it stays available when the rate
// block does not.
type SumRatio struct {
	Num   int   `json:"num"`
	Den   int   `json:"den"`
	Ratio Value `json:"ratio"`
}

// DefaultSumRatioPairs are the volume-sum comparisons published on the ratio
// curves, shortest first.
var DefaultSumRatioPairs = [][2]int{{7, 14}, {7, 28}, {14, 28}, {14, 57}, {28, 57}, {28, 106}}

// Turnover is the analyzer output. When no shares-outstanding figure was
// supplied, Available is false and every rate field is undefined — never
// zero, since a genuine 0% turnover means "no trade", not "unknown float".
// The volume-sum fields are populated either way.
type Turnover struct {
	Available bool `json:"available"`

	// Rate is the as-of bar's turnover percentage; Recent holds the last
	// seven rates, oldest first.
	Rate   Value   `json:"rate"`
	Recent []Value `json:"recent"`

	// Stats maps interval length -> trailing aggregates of the rate series.
	Stats map[int]TurnoverStats `json:"stats"`

	// Spans are the adjacent-interval sum differences as rates.
	Spans []SpanRate `json:"spans"`

	// VolumeSums maps interval -> trailing raw volume sum; SumRatios are the
	// published comparisons between them.
	VolumeSums map[int]Value `json:"volume_sums"`
	SumRatios  []SumRatio    `json:"sum_ratios"`
}

// TurnoverAnalyze computes the turnover block from raw volumes. shares <= 0
// means the figure is unavailable; intervals are deduplicated and sorted.
func TurnoverAnalyze(volumes []int64, shares float64, intervals []int) Turnover {
	ps := Windows(intervals)
	vols := make([]float64, len(volumes))
	for i, v := range volumes {
		vols[i] = float64(v)
	}

	t := Turnover{
		Stats:      make(map[int]TurnoverStats, len(ps)),
		VolumeSums: make(map[int]Value, len(ps)),
	}

	sums := make(map[int][]Value, len(ps))
	for _, p := range ps {
		sums[p] = RollingSum(vols, p)
		t.VolumeSums[p] = Last(sums[p])
	}
	for _, pair := range DefaultSumRatioPairs {
		num, den := pair[0], pair[1]
		ns, nok := sums[num]
		ds, dok := sums[den]
		if !nok || !dok {
			continue
		}
		t.SumRatios = append(t.SumRatios, SumRatio{
			Num:   num,
			Den:   den,
			Ratio: Div(Last(ns), Last(ds)),
		})
	}

	if shares <= 0 {
		return t
	}
	t.Available = true

	rates := make([]float64, len(vols))
	for i, v := range vols {
		rates[i] = v / shares * 100
	}
	rateSeries := make([]Value, len(rates))
	for i, r := range rates {
		rateSeries[i] = Defined(r)
	}
	t.Rate = Last(rateSeries)
	t.Recent = Tail(rateSeries, 7)

	for _, p := range ps {
		t.Stats[p] = TurnoverStats{
			Sum:  Last(RollingSum(rates, p)),
			Max:  Last(RollingMax(rateSeries, p)),
			Min:  Last(RollingMin(rateSeries, p)),
			Mean: Last(RollingMean(rates, p)),
		}
	}

	for i := 0; i+1 < len(ps); i++ {
		short, long := ps[i], ps[i+1]
		diff := Sub(Last(sums[long]), Last(sums[short]))
		t.Spans = append(t.Spans, SpanRate{
			Short: short,
			Long:  long,
			Rate:  diff.Scale(100 / shares),
		})
	}
	return t
}
