package indicator

// The volume split apportions a bar's published volume into synthetic
// trade-side buckets with fixed weights. Daily HK data carries no order-flow
// information, so this is a presentation approximation and nothing more: the
// output is a reshuffling of the already-known volume, flagged Simulated so
// no consumer mistakes it for measured flow.
//
// An earlier formula variant reused the large-buy intermediate inside the
// large-sell aggregate; the sell side here is built from the sell buckets
// symmetrically.

// Fixed bucket weights, summing to 1.
const (
	weightLargeBuy   = 0.22
	weightMidBuy     = 0.18
	weightLargeSell  = 0.20
	weightMidSell    = 0.16
	weightRetailBuy  = 0.13
	weightRetailSell = 0.11
)

// VolumeSplit is the simulated order-flow block. Bucket fields are share
// counts; the four Pressure aggregates are the buckets' notional value
// normalized by price and shares outstanding, which algebraically reduces to
// a percentage of the float — a turnover-like reading per side.
type VolumeSplit struct {
	Simulated bool `json:"simulated"`
	Available bool `json:"available"`

	LargeBuy   Value `json:"large_buy"`
	MidBuy     Value `json:"mid_buy"`
	LargeSell  Value `json:"large_sell"`
	MidSell    Value `json:"mid_sell"`
	RetailBuy  Value `json:"retail_buy"`
	RetailSell Value `json:"retail_sell"`

	LargeBuyPressure   Value `json:"large_buy_pressure"`
	LargeSellPressure  Value `json:"large_sell_pressure"`
	RetailBuyPressure  Value `json:"retail_buy_pressure"`
	RetailSellPressure Value `json:"retail_sell_pressure"`
}

// SplitVolume apportions one bar's volume. shares <= 0 leaves the pressure
// aggregates unavailable while the raw buckets are still filled.
func SplitVolume(volume int64, closePx, shares float64) VolumeSplit {
	v := float64(volume)
	s := VolumeSplit{
		Simulated:  true,
		LargeBuy:   Defined(v * weightLargeBuy),
		MidBuy:     Defined(v * weightMidBuy),
		LargeSell:  Defined(v * weightLargeSell),
		MidSell:    Defined(v * weightMidSell),
		RetailBuy:  Defined(v * weightRetailBuy),
		RetailSell: Defined(v * weightRetailSell),
	}
	if shares <= 0 || closePx <= 0 {
		return s
	}
	s.Available = true

	// notional / (price * float) * 100; price cancels, kept in the formula
	// so the normalization reads the way it is published.
	pressure := func(buckets ...Value) Value {
		amount := 0.0
		for _, b := range buckets {
			amount += b.V * closePx
		}
		return Defined(amount / (closePx * shares) * 100)
	}
	s.LargeBuyPressure = pressure(s.LargeBuy, s.MidBuy)
	s.LargeSellPressure = pressure(s.LargeSell, s.MidSell)
	s.RetailBuyPressure = pressure(s.RetailBuy)
	s.RetailSellPressure = pressure(s.RetailSell)
	return s
}
