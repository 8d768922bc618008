package indicator

import (
	"math"
	"testing"
)

func TestConvergenceDeviation(t *testing.T) {
	closes := make([]float64, 10)
	for i := range closes {
		closes[i] = 100
	}
	closes[9] = 110

	windows := []int{7}
	bank := SMABank(closes, windows)
	conv := ConvergenceAt(bank, windows, 7, 110, nil)

	// SMA7 = (6*100+110)/7; deviation = (110-sma)/sma*100
	sma := (600.0 + 110) / 7
	want := (110 - sma) / sma * 100
	got := conv.Deviation[7]
	if !got.OK || math.Abs(got.V-want) > 1e-9 {
		t.Errorf("deviation: want %v, got %+v", want, got)
	}
}

func TestConvergenceSpreads(t *testing.T) {
	closes := ramp(120)
	windows := []int{7, 14, 28, 57, 106}
	bank := SMABank(closes, windows)
	conv := ConvergenceAt(bank, windows, 106, closes[len(closes)-1], nil)

	if len(conv.Spreads) != 4 {
		t.Fatalf("expected 4 adjacent spreads, got %d", len(conv.Spreads))
	}

	s7 := Last(bank[7].Series).V
	s14 := Last(bank[14].Series).V
	s106 := Last(bank[106].Series).V

	first := conv.Spreads[0]
	if first.Short != 7 || first.Long != 14 {
		t.Fatalf("first spread should pair (7,14), got (%d,%d)", first.Short, first.Long)
	}
	want := (s14 - s7) / s106
	if !first.Spread.OK || math.Abs(first.Spread.V-want) > 1e-12 {
		t.Errorf("spread(7,14): want %v, got %+v", want, first.Spread)
	}

	if !conv.Level.OK || math.Abs(conv.Level.V-s7/s106) > 1e-12 {
		t.Errorf("level: want %v, got %+v", s7/s106, conv.Level)
	}
}

func TestConvergenceWeights(t *testing.T) {
	closes := ramp(120)
	windows := []int{7, 14, 28, 57, 106}
	bank := SMABank(closes, windows)
	conv := ConvergenceAt(bank, windows, 106, closes[len(closes)-1], nil)

	wantWeights := []float64{1, 0.5, 7.0 / 29, 1.0 / 7}
	for i, spread := range conv.Spreads {
		if spread.Weight != wantWeights[i] {
			t.Errorf("spread %d: want weight %v, got %v", i, wantWeights[i], spread.Weight)
		}
		want := spread.Spread.V * spread.Weight
		if math.Abs(spread.Weighted.V-want) > 1e-12 {
			t.Errorf("spread %d: weighted value off: want %v got %v", i, want, spread.Weighted.V)
		}
	}
}

func TestConvergenceUndefinedPropagation(t *testing.T) {
	// 60 bars: SMA57 defined, SMA106 (the base) undefined, so every spread
	// and the level are undefined while short deviations stay defined.
	closes := ramp(60)
	windows := []int{7, 14, 28, 57, 106}
	bank := SMABank(closes, windows)
	conv := ConvergenceAt(bank, windows, 106, closes[len(closes)-1], nil)

	if !conv.Deviation[7].OK {
		t.Error("short-window deviation should survive an undefined base")
	}
	if conv.Deviation[106].OK {
		t.Error("deviation on an undefined SMA must be undefined")
	}
	if conv.Level.OK {
		t.Error("level over an undefined base must be undefined")
	}
	for _, spread := range conv.Spreads {
		if spread.Spread.OK || spread.Weighted.OK {
			t.Errorf("spread (%d,%d) must be undefined with an undefined base", spread.Short, spread.Long)
		}
	}
}
