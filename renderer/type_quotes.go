package renderer

import (
	"github.com/etnz/etfnav"
)

// Quotes are the latest quotes of a list of symbols.
type Quotes struct {
	Rows    []QuoteRow `json:"rows"`
	Missing []string   `json:"missing,omitempty"`
}

// QuoteRow is the latest bar of a symbol, fields are "-" when missing.
type QuoteRow struct {
	Symbol    string `json:"symbol"`
	Close     string `json:"close"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Open      string `json:"open"`
	Volume    string `json:"volume"`
	VWAP      string `json:"vwap"`
	NumTrades string `json:"numTrades"`
	Timestamp string `json:"timestamp"`
}

// NewQuotes prepares quotes for rendering, in the order of symbols.
func NewQuotes(symbols []string, quotes map[string]etfnav.Quote) *Quotes {
	q := &Quotes{Rows: make([]QuoteRow, 0, len(symbols))}
	for _, s := range symbols {
		bar, ok := quotes[s]
		if !ok {
			q.Missing = append(q.Missing, s)
			continue
		}
		ts := bar.Timestamp
		if ts == "" {
			ts = "-"
		}
		q.Rows = append(q.Rows, QuoteRow{
			Symbol:    cell(s),
			Close:     price(bar.Close),
			High:      price(bar.High),
			Low:       price(bar.Low),
			Open:      price(bar.Open),
			Volume:    quantity(bar.Volume),
			VWAP:      price(bar.VWAP),
			NumTrades: quantity(bar.NumTrades),
			Timestamp: cell(ts),
		})
	}
	return q
}

func price(v *float64) string {
	if v == nil {
		return "-"
	}
	return Price(*v).String()
}

func quantity(v *float64) string {
	if v == nil {
		return "-"
	}
	return Quantity(*v).String()
}
