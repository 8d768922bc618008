package indicator

import (
	"math"
	"testing"
)

func TestAmplitudeValue(t *testing.T) {
	highs := []float64{11}
	lows := []float64{9}
	closes := []float64{10}
	got := AmplitudeAnalyze(highs, lows, closes, []int{1})

	// (11-9)/10*100 = 20
	if !got.Value.OK || got.Value.V != 20 {
		t.Errorf("amplitude: want 20, got %+v", got.Value)
	}
}

func TestAmplitudeMeansAndMR(t *testing.T) {
	n := 10
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		closes[i] = 100
		highs[i] = 102
		lows[i] = 98
	}
	// widen the last bar's range: amp 8 vs steady 4
	highs[n-1] = 104
	lows[n-1] = 96

	got := AmplitudeAnalyze(highs, lows, closes, []int{2, 5})

	m5 := got.Means[5]
	want5 := (4*4.0 + 8) / 5
	if !m5.OK || math.Abs(m5.V-want5) > 1e-9 {
		t.Errorf("mean over 5: want %v, got %+v", want5, m5)
	}

	m2 := got.Means[2]
	want2 := (4.0 + 8) / 2
	avg := (want2 + want5) / 2
	wantMR := 8/avg - 1
	if !got.MeanReversion.OK || math.Abs(got.MeanReversion.V-wantMR) > 1e-9 {
		t.Errorf("MR: want %v, got %+v (m2=%+v)", wantMR, got.MeanReversion, m2)
	}
}

func TestAmplitudeMRUndefinedWithoutMeans(t *testing.T) {
	got := AmplitudeAnalyze([]float64{11}, []float64{9}, []float64{10}, []int{5})
	if got.MeanReversion.OK {
		t.Error("MR must be undefined when no interval mean is defined")
	}
}
