package indicator

import (
	"math"
	"testing"
)

func TestWilliamsR(t *testing.T) {
	// range 100..200 over the window, close at 105
	n := 35
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		highs[i] = 200
		lows[i] = 100
		closes[i] = 150
	}
	closes[n-1] = 105

	got := WilliamsR(highs, lows, closes, 35)
	want := -100 * (200.0 - 105) / 100
	if !got.OK || math.Abs(got.V-want) > 1e-9 {
		t.Errorf("want %v, got %+v", want, got)
	}
}

func TestWilliamsRInsufficientBars(t *testing.T) {
	if WilliamsR([]float64{1, 2}, []float64{1, 2}, []float64{1, 2}, 5).OK {
		t.Error("fewer bars than the period must be undefined")
	}
}

func TestWilliamsRZeroRange(t *testing.T) {
	flat := []float64{100, 100, 100}
	if WilliamsR(flat, flat, flat, 3).OK {
		t.Error("zero high-low range must be undefined, not a division result")
	}
}

func TestLowestLow(t *testing.T) {
	lows := []float64{5, 3, 4, 2, 6}
	got := LowestLow(lows, 3)
	if !got.OK || got.V != 2 {
		t.Errorf("want 2, got %+v", got)
	}
	if LowestLow(lows, 6).OK {
		t.Error("lookback beyond the series must be undefined")
	}
}
