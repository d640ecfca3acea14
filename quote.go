package etfnav

import (
	"encoding/json"
	"math"
)

// Quote is the latest bar of a symbol, as returned by the quote feed.
//
// The feed uses one or two letter codes for every field; they are only known
// to the JSON decoder. A nil field is missing, not zero.
type Quote struct {
	Close     *float64 `json:"c,omitempty"`
	High      *float64 `json:"h,omitempty"`
	Low       *float64 `json:"l,omitempty"`
	Open      *float64 `json:"o,omitempty"`
	Volume    *float64 `json:"v,omitempty"`
	VWAP      *float64 `json:"vw,omitempty"`
	NumTrades *float64 `json:"n,omitempty"`
	Timestamp string   `json:"t,omitempty"`
}

// Field is a named value, used to keep fields in a stable order.
type Field struct {
	Name  string
	Value any
}

// Fields returns the fields present in q under their descriptive names.
func (q Quote) Fields() []Field {
	var fields []Field
	add := func(name string, v *float64) {
		if v != nil {
			fields = append(fields, Field{name, *v})
		}
	}
	add("close", q.Close)
	add("high", q.High)
	add("low", q.Low)
	add("open", q.Open)
	add("volume", q.Volume)
	add("vwap", q.VWAP)
	add("num_trades", q.NumTrades)
	if q.Timestamp != "" {
		fields = append(fields, Field{"timestamp", q.Timestamp})
	}
	return fields
}

// ClosePrice returns the close price if it is present and finite.
func (q Quote) ClosePrice() (float64, bool) {
	if q.Close == nil || math.IsNaN(*q.Close) || math.IsInf(*q.Close, 0) {
		return 0, false
	}
	return *q.Close, true
}

// MarshalJSON writes the quote with its descriptive field names.
func (q Quote) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.AppendFields(q.Fields())
	return w.MarshalJSON()
}

// UnmarshalJSON reads the feed's short field codes.
func (q *Quote) UnmarshalJSON(data []byte) error {
	type wire Quote // no methods, no recursion
	var v wire
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*q = Quote(v)
	return nil
}

// F returns a pointer to v, handy to build quotes.
func F(v float64) *float64 { return &v }
