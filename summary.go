package etfnav

import (
	"encoding/json"
	"strconv"
)

// LastPrice is the fund's last traded price. It is either the raw text
// scraped from the fund's page, or a quote from the feed when a fresher one
// is available.
type LastPrice struct {
	raw   string
	quote *Quote
}

// RawPrice returns a LastPrice read from text, e.g. "$512.34".
func RawPrice(s string) LastPrice { return LastPrice{raw: s} }

// QuotePrice returns a LastPrice backed by a quote.
func QuotePrice(q Quote) LastPrice { return LastPrice{quote: &q} }

// Quote returns the quote backing p, if any.
func (p LastPrice) Quote() (Quote, bool) {
	if p.quote == nil {
		return Quote{}, false
	}
	return *p.quote, true
}

// IsZero reports whether no price is known at all.
func (p LastPrice) IsZero() bool { return p.quote == nil && p.raw == "" }

// Value resolves the price: the quote's close, or the raw text parsed as a
// plain decimal price.
func (p LastPrice) Value() (float64, error) {
	if p.quote != nil {
		if c, ok := p.quote.ClosePrice(); ok {
			return c, nil
		}
		return 0, ErrInsufficientData
	}
	return ParsePrice(p.raw)
}

// String returns the raw text or the quote's close.
func (p LastPrice) String() string {
	if p.quote == nil {
		return p.raw
	}
	v, err := p.Value()
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MarshalJSON writes either the raw string or the quote object.
func (p LastPrice) MarshalJSON() ([]byte, error) {
	if p.quote != nil {
		return p.quote.MarshalJSON()
	}
	return marshal(p.raw)
}

// UnmarshalJSON accepts both shapes written by MarshalJSON.
func (p *LastPrice) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = RawPrice(s)
		return nil
	}
	var fields struct {
		Close     *float64 `json:"close"`
		High      *float64 `json:"high"`
		Low       *float64 `json:"low"`
		Open      *float64 `json:"open"`
		Volume    *float64 `json:"volume"`
		VWAP      *float64 `json:"vwap"`
		NumTrades *float64 `json:"num_trades"`
		Timestamp string   `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*p = QuotePrice(Quote(fields))
	return nil
}

// Summary is the fund's trading summary as shown by the holdings source.
// Empty fields were not found on the page.
type Summary struct {
	Title       string
	LastPrice   LastPrice
	Change      string
	Bid         string
	BidSize     string
	Ask         string
	AskSize     string
	Volume      string
	VolumeLabel string
	AsOf        string
}

// MarshalJSON writes the summary fields that are known, in a stable order.
func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	if !s.LastPrice.IsZero() {
		w.Append("last_price", s.LastPrice)
	}
	w.Optional("change", s.Change)
	w.Optional("bid", s.Bid)
	w.Optional("bid_size", s.BidSize)
	w.Optional("ask", s.Ask)
	w.Optional("ask_size", s.AskSize)
	w.Optional("volume", s.Volume)
	w.Optional("volume_label", s.VolumeLabel)
	w.Optional("as_of", s.AsOf)
	w.Optional("title", s.Title)
	return w.MarshalJSON()
}
