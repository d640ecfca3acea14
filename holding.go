package etfnav

// Holding is one constituent position of the fund, as published by the
// holdings source.
type Holding struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	WeightPct       float64 `json:"weight_pct"` // never zero, as a fraction (5% is 0.05)
	Shares          float64 `json:"shares"`
	MarketValueUSD  float64 `json:"market_value_usd"`
	CanonicalSymbol string  `json:"-"` // empty when the symbol could not be normalized
}

// Key returns the symbol used to join this holding with quotes: the canonical
// symbol if there is one, the raw symbol otherwise.
func (h Holding) Key() string {
	if h.CanonicalSymbol != "" {
		return h.CanonicalSymbol
	}
	return h.Symbol
}

// Canonicalize returns the holdings that have a canonical symbol, in order,
// with CanonicalSymbol set. The input is left untouched.
func Canonicalize(holdings []Holding) []Holding {
	valid := make([]Holding, 0, len(holdings))
	for _, h := range holdings {
		if s, ok := NormalizeSymbol(h.Symbol); ok {
			h.CanonicalSymbol = s
			valid = append(valid, h)
		}
	}
	return valid
}
