package signal

import (
	"testing"

	"hkquant/indicator"
	"hkquant/market"
)

// fzmFixture builds 40 bars ranging 100..200 with closes near 100, then a
// final bar whose close the caller chooses. With lastClose=105 the close
// holds above SMA7/SMA14 (both ~100) while WilliamsR(35) reads
// -100*(200-105)/100 = -95: deep oversold, signal on. With lastClose=150
// the oscillator reads -50 and the signal must stay off.
func fzmFixture(t *testing.T, lastClose float64) *market.View {
	t.Helper()
	var bars []market.Bar
	for d := 0; d < 39; d++ {
		bars = append(bars, market.Bar{
			Date: day(d), Open: 100, High: 200, Low: 100, Close: 100, Volume: 1000,
		})
	}
	bars = append(bars, market.Bar{
		Date: day(39), Open: 100, High: 200, Low: 100, Close: lastClose, Volume: 1000,
	})
	series := market.NewBarSeries("0700", bars)
	view, err := series.View(day(39))
	if err != nil {
		t.Fatal(err)
	}
	return view
}

func TestFZMTriggers(t *testing.T) {
	view := fzmFixture(t, 105)
	res := EvaluateFZM(view, Config{})
	if !res.Triggered {
		t.Fatalf("expected trigger: %+v", res.Diagnostics)
	}
}

func TestFZMOscillatorGate(t *testing.T) {
	// close over both SMAs but WilliamsR only -50: no trigger
	view := fzmFixture(t, 150)
	res := EvaluateFZM(view, Config{})
	if res.Triggered {
		t.Fatalf("oscillator at -50 must gate the signal: %+v", res.Diagnostics)
	}
}

func TestFZMTrendGate(t *testing.T) {
	// close below the short SMAs: no trigger however oversold
	view := fzmFixture(t, 100)
	res := EvaluateFZM(view, Config{})
	if res.Triggered {
		t.Fatal("close at the SMA must not trigger")
	}
}

func TestFZMInsufficientData(t *testing.T) {
	bars := []market.Bar{
		{Date: day(0), Open: 10, High: 11, Low: 9, Close: 10, Volume: 100},
	}
	series := market.NewBarSeries("0700", bars)
	view, err := series.View(day(0))
	if err != nil {
		t.Fatal(err)
	}
	res := EvaluateFZM(view, Config{})
	if res.Triggered {
		t.Fatal("one bar cannot trigger")
	}
	if res.Diagnostics["status"] != "insufficient data" {
		t.Errorf("unexpected status: %v", res.Diagnostics["status"])
	}
}

func TestFZMStopDiagnostic(t *testing.T) {
	view := fzmFixture(t, 105)
	res := EvaluateFZM(view, Config{})
	stop, ok := res.Diagnostics["stop"].(indicator.Value)
	if !ok {
		t.Fatalf("expected a stop diagnostic, got %T", res.Diagnostics["stop"])
	}
	if !stop.OK || stop.V != 100 {
		t.Errorf("stop should be the 5-bar low 100, got %+v", stop)
	}
}
