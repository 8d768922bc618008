package indicator

import (
	"math"
	"testing"
)

func TestRollingMeanExactness(t *testing.T) {
	data := []float64{10, 20, 30, 40, 50}
	out := RollingMean(data, 3)

	for i := 0; i < 2; i++ {
		if out[i].OK {
			t.Errorf("position %d should be undefined during warm-up", i)
		}
	}
	want := []float64{20, 30, 40}
	for i, w := range want {
		got := out[i+2]
		if !got.OK || math.Abs(got.V-w) > 1e-9 {
			t.Errorf("position %d: want %v, got %+v", i+2, w, got)
		}
	}
}

func TestRollingMeanMatchesNaive(t *testing.T) {
	data := make([]float64, 300)
	for i := range data {
		data[i] = 100 + math.Sin(float64(i))*float64(i%17)
	}
	out := RollingMean(data, 57)
	for i := 56; i < len(data); i += 31 {
		sum := 0.0
		for j := i - 56; j <= i; j++ {
			sum += data[j]
		}
		want := sum / 57
		if math.Abs(out[i].V-want) > 1e-6 {
			t.Fatalf("position %d: sliding sum drifted: want %v got %v", i, want, out[i].V)
		}
	}
}

func TestRollingSum(t *testing.T) {
	out := RollingSum([]float64{1, 2, 3, 4}, 2)
	if out[0].OK {
		t.Error("warm-up position should be undefined")
	}
	for i, want := range []float64{3, 5, 7} {
		if out[i+1].V != want {
			t.Errorf("position %d: want %v got %v", i+1, want, out[i+1].V)
		}
	}
}

func TestRollingExtremes(t *testing.T) {
	series := []Value{Defined(3), Defined(1), Defined(4), Defined(1), Defined(5)}
	max := RollingMax(series, 3)
	min := RollingMin(series, 3)

	if max[4].V != 5 || min[4].V != 1 {
		t.Errorf("window [4,1,5]: want max 5 min 1, got %v %v", max[4].V, min[4].V)
	}
	if max[1].OK {
		t.Error("warm-up max should be undefined")
	}
}

func TestRollingExtremesPropagateUndefined(t *testing.T) {
	series := []Value{Defined(1), Undefined(), Defined(3)}
	max := RollingMax(series, 3)
	if max[2].OK {
		t.Error("window containing an undefined point must be undefined")
	}
}

func TestDivGuards(t *testing.T) {
	if Div(Defined(1), Defined(0)).OK {
		t.Error("division by zero must be undefined")
	}
	if Div(Undefined(), Defined(2)).OK {
		t.Error("undefined numerator must propagate")
	}
	if got := Div(Defined(6), Defined(3)); !got.OK || got.V != 2 {
		t.Errorf("want 2, got %+v", got)
	}
}

func TestTail(t *testing.T) {
	series := []Value{Defined(1), Defined(2), Defined(3)}
	if got := Tail(series, 2); len(got) != 2 || got[1].V != 3 {
		t.Errorf("unexpected tail: %+v", got)
	}
	if got := Tail(series, 10); len(got) != 3 {
		t.Errorf("over-long tail should return the whole series, got %d", len(got))
	}
}
