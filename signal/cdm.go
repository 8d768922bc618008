package signal

import (
	"math"
	"time"

	"hkquant/market"
)

// EvaluateCDM computes the baseline-target signal on a point-in-time view.
//
// The two boxes each resolve to the mean close of the bars inside them; the
// target interpolates the baselines with time-decay weights measured in
// calendar days from box1's start to today:
//
//	t1 = days(box1.end - box1.start)
//	n  = days(today - box1.start)
//	target = sma1*0.7*(t1/n) + sma2*0.5*((n-t1)/n)
//
// and the signal fires when the close sits within 5% of the target. today is
// an explicit parameter: callers replaying history pass the view's as-of
// date so the elapsed-time math is as free of wall-clock leakage as the
// price data, while the legacy behavior remains one time.Now() away.
//
// Missing boxes mean the feature is simply not set up for this instrument —
// the result says so in its diagnostics and is not an error.
func EvaluateCDM(view *market.View, cfg Config, today time.Time) Result {
	diag := map[string]interface{}{}
	res := Result{Diagnostics: diag}

	if !cfg.Box1.Valid() || !cfg.Box2.Valid() {
		diag["status"] = "not configured"
		return res
	}

	sma1, ok1 := view.CloseMeanBetween(cfg.Box1.Start, cfg.Box1.End)
	sma2, ok2 := view.CloseMeanBetween(cfg.Box2.Start, cfg.Box2.End)
	if !ok1 || !ok2 {
		diag["status"] = "no bars inside baseline window"
		return res
	}

	t1 := market.Day(cfg.Box1.End).Sub(market.Day(cfg.Box1.Start)).Hours() / 24
	n := market.Day(today).Sub(market.Day(cfg.Box1.Start)).Hours() / 24
	if n <= 0 {
		diag["status"] = "invalid time window"
		return res
	}

	target := sma1*CDMCoef1*(t1/n) + sma2*CDMCoef2*((n-t1)/n)
	if target == 0 {
		diag["status"] = "zero target"
		return res
	}

	closePx := view.Last().Close
	deviation := math.Abs(closePx-target) / target

	diag["status"] = "ok"
	diag["sma1"] = sma1
	diag["sma2"] = sma2
	diag["target"] = target
	diag["deviation"] = deviation
	res.Triggered = deviation < CDMThreshold
	return res
}
