package engine

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"hkquant/market"
)

// Cache memoizes snapshots by (symbol, as-of date, input fingerprint).
// Evaluate is pure, so any eviction or TTL policy is correct; the TTL only
// bounds staleness of the series the snapshot was computed from, not of the
// snapshot itself.
type Cache struct {
	lru *expirable.LRU[string, *Snapshot]
}

// NewCache builds a cache holding up to size snapshots for at most ttl.
// ttl <= 0 disables expiry.
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[string, *Snapshot](size, nil, ttl)}
}

// Evaluate returns the cached snapshot for the key or computes and stores
// one. The key derives from the snapped as-of date, so two reference dates
// that land on the same trading day share an entry.
func (c *Cache) Evaluate(series *market.BarSeries, ref time.Time, in Input) (*Snapshot, error) {
	view, err := series.View(ref)
	if err != nil {
		return nil, err
	}
	key := cacheKey(series.Symbol(), view.AsOf(), in)
	if snap, ok := c.lru.Get(key); ok {
		return snap, nil
	}
	snap, err := Evaluate(series, ref, in)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, snap)
	return snap, nil
}

// Purge drops every cached snapshot, e.g. after a signal-config reload.
func (c *Cache) Purge() { c.lru.Purge() }

func cacheKey(symbol string, asOf time.Time, in Input) string {
	cfg := in.Config
	sig := in.Signals
	return fmt.Sprintf("%s|%s|%.0f|%v|%v|%d|%v|%t%t|%s|%s|%s|%s|%d%d%d%d|%s",
		symbol, asOf.Format("2006-01-02"), in.Shares,
		cfg.SMAWindows, cfg.Intervals, cfg.BaseWindow, cfg.PairWeights,
		cfg.EnableTurnover, cfg.EnableAmplitude,
		sig.Box1.Start.Format("2006-01-02"), sig.Box1.End.Format("2006-01-02"),
		sig.Box2.Start.Format("2006-01-02"), sig.Box2.End.Format("2006-01-02"),
		sig.ShortWindow, sig.MidWindow, sig.OscPeriod, sig.StopLookback,
		in.Today.Format("2006-01-02"))
}
