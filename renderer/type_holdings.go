package renderer

import "github.com/etnz/etfnav"

// Holdings is a fund's decoded holdings table.
type Holdings struct {
	Ticker  string        `json:"ticker"`
	Rows    []HoldingsRow `json:"rows"`
	Total   Money         `json:"total"`
	Skipped int           `json:"skipped,omitempty"`
}

// HoldingsRow is one decoded holding.
type HoldingsRow struct {
	Symbol      string   `json:"symbol"`
	Canonical   string   `json:"canonical"` // "-" when the symbol cannot be quoted
	Name        string   `json:"name"`
	Weight      Percent  `json:"weight"`
	Shares      Quantity `json:"shares"`
	MarketValue Money    `json:"marketValue"`
}

// NewHoldings prepares holdings for rendering, in their given order.
func NewHoldings(ticker string, holdings []etfnav.Holding, skipped int) *Holdings {
	h := &Holdings{Ticker: ticker, Rows: make([]HoldingsRow, 0, len(holdings)), Skipped: skipped}
	for _, x := range holdings {
		canonical := x.CanonicalSymbol
		if canonical == "" {
			canonical = "-"
		}
		h.Rows = append(h.Rows, HoldingsRow{
			Symbol:      cell(x.Symbol),
			Canonical:   cell(canonical),
			Name:        cell(truncate(x.Name, nameWidth)),
			Weight:      Percent(x.WeightPct * 100),
			Shares:      Quantity(x.Shares),
			MarketValue: Money(x.MarketValueUSD),
		})
		h.Total += Money(x.MarketValueUSD)
	}
	return h
}
