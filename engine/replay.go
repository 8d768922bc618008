package engine

import (
	"time"

	"hkquant/market"
)

// Replay evaluates one snapshot per trading day in [from, to], oldest first:
// the time-machine sweep behind backtesting a signal or charting how an
// indicator developed. Days the instrument did not trade produce no entry
// rather than a duplicate of the previous session. A range that ends before
// the first bar returns ErrNoDataBeforeReference.
func Replay(series *market.BarSeries, from, to time.Time, in Input) ([]*Snapshot, error) {
	var out []*Snapshot
	var lastAsOf time.Time

	for day := market.Day(from); !day.After(market.Day(to)); day = day.AddDate(0, 0, 1) {
		snap, err := Evaluate(series, day, in)
		if err == market.ErrNoDataBeforeReference {
			continue
		}
		if err != nil {
			return nil, err
		}
		if snap.AsOf.Equal(lastAsOf) {
			continue
		}
		lastAsOf = snap.AsOf
		out = append(out, snap)
	}
	if out == nil {
		return nil, market.ErrNoDataBeforeReference
	}
	return out, nil
}
