package engine

import (
	"time"

	"hkquant/indicator"
	"hkquant/market"
	"hkquant/signal"
)

// Input carries the out-of-band figures for one evaluation.
type Input struct {
	// Shares is the instrument's shares outstanding. Zero or negative means
	// unknown, which marks every turnover-dependent output unavailable.
	Shares float64
	// Config selects windows and toggles; the zero Config is replaced by
	// DefaultConfig.
	Config Config
	// Signals is the per-instrument signal configuration; the zero value is
	// the valid "nothing configured" state.
	Signals signal.Config
	// Today anchors the CDM elapsed-time math. Zero means the view's as-of
	// date, keeping historical replays free of wall-clock leakage; callers
	// wanting the legacy behavior pass time.Now().
	Today time.Time
}

// Evaluate computes the full indicator snapshot for one instrument as it
// would have appeared on the reference date. Pure: same inputs, same
// snapshot, no mutation of the series.
func Evaluate(series *market.BarSeries, ref time.Time, in Input) (*Snapshot, error) {
	view, err := series.View(ref)
	if err != nil {
		return nil, err
	}

	cfg := in.Config
	if len(cfg.SMAWindows) == 0 {
		cfg = DefaultConfig()
	}

	closes := view.Closes()
	last := view.Last()

	bank := indicator.SMABank(closes, cfg.SMAWindows)
	snap := &Snapshot{
		Symbol:    view.Symbol(),
		Reference: view.Reference(),
		AsOf:      view.AsOf(),
		Close:     last.Close,
		BarCount:  view.Len(),
		SMA:       make(map[int]SMAEntry, len(bank)),
	}
	for w, band := range bank {
		snap.SMA[w] = SMAEntry{
			Value:   indicator.Last(band.Series),
			BandMax: indicator.Last(band.Max),
			BandMin: indicator.Last(band.Min),
			Recent:  indicator.Tail(band.Series, 7),
		}
	}

	snap.Convergence = indicator.ConvergenceAt(bank, cfg.SMAWindows, cfg.BaseWindow, last.Close, cfg.PairWeights)

	if cfg.EnableTurnover {
		snap.Turnover = indicator.TurnoverAnalyze(view.Volumes(), in.Shares, cfg.Intervals)
	}
	if cfg.EnableAmplitude {
		snap.Amplitude = indicator.AmplitudeAnalyze(view.Highs(), view.Lows(), closes, cfg.Intervals)
	}
	snap.VolumeSplit = indicator.SplitVolume(last.Volume, last.Close, in.Shares)

	today := in.Today
	if today.IsZero() {
		today = view.AsOf()
	}
	snap.CDM = signal.EvaluateCDM(view, in.Signals, today)
	snap.FZM = signal.EvaluateFZM(view, in.Signals)

	return snap, nil
}
