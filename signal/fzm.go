package signal

import (
	"hkquant/indicator"
	"hkquant/market"
)

// EvaluateFZM computes the trend+oscillator signal on a point-in-time view:
// the close must hold above both short moving averages while Williams %R
// still reads oversold. The combination looks for strength that the
// oscillator has not caught up with yet.
//
// Diagnostics carry the resolved SMA values, the oscillator reading and a
// suggested stop at the trailing 5-bar low. An undefined oscillator (not
// enough bars, or a flat range) leaves the signal untriggered.
func EvaluateFZM(view *market.View, cfg Config) Result {
	closes := view.Closes()
	highs := view.Highs()
	lows := view.Lows()

	smaShort := indicator.Last(indicator.RollingMean(closes, cfg.shortWindow()))
	smaMid := indicator.Last(indicator.RollingMean(closes, cfg.midWindow()))
	wr := indicator.WilliamsR(highs, lows, closes, cfg.oscPeriod())
	stop := indicator.LowestLow(lows, cfg.stopLookback())

	diag := map[string]interface{}{
		"sma_short":  smaShort,
		"sma_mid":    smaMid,
		"williams_r": wr,
		"stop":       stop,
	}
	res := Result{Diagnostics: diag}

	if !smaShort.OK || !smaMid.OK || !wr.OK {
		diag["status"] = "insufficient data"
		return res
	}

	closePx := view.Last().Close
	res.Triggered = closePx > smaShort.V && closePx > smaMid.V && wr.V < FZMOversold
	diag["status"] = "ok"
	return res
}
