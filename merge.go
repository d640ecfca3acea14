package etfnav

import "iter"

// Record is a holding joined with its quote, keyed by its symbol.
type Record struct {
	Symbol         string
	Name           string
	WeightPct      float64
	Shares         float64
	MarketValueUSD float64
	Quote          *Quote // nil when the feed had no quote for Symbol
}

// MarshalJSON writes the holding fields first, then the quote fields under
// their descriptive names. A record without a quote has no quote field.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", r.Symbol)
	w.Append("name", r.Name)
	w.Append("weight_pct", r.WeightPct)
	w.Append("shares", r.Shares)
	w.Append("market_value_usd", r.MarketValueUSD)
	if r.Quote != nil {
		w.AppendFields(r.Quote.Fields())
	}
	return w.MarshalJSON()
}

// Records is an insertion ordered map of records by symbol.
// Its zero value is ready to use.
type Records struct {
	keys   []string
	values map[string]Record
}

// Set sets the record for key. Replacing an existing key keeps its position.
func (r *Records) Set(key string, rec Record) {
	if r.values == nil {
		r.values = make(map[string]Record)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = rec
}

// Get returns the record for key.
func (r *Records) Get(key string) (Record, bool) {
	rec, ok := r.values[key]
	return rec, ok
}

// Len returns the number of records.
func (r *Records) Len() int { return len(r.keys) }

// Keys returns the keys in insertion order.
func (r *Records) Keys() []string { return append([]string(nil), r.keys...) }

// All iterates over the records in insertion order.
func (r *Records) All() iter.Seq2[string, Record] {
	return func(yield func(string, Record) bool) {
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// MarshalJSON writes the records as a JSON object, in insertion order.
func (r *Records) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for k, rec := range r.All() {
		w.Append(k, rec)
	}
	return w.MarshalJSON()
}

// Merged is the fund summary together with its records.
type Merged struct {
	Summary Summary
	Symbols Records
}

// MarshalJSON writes {"summary": ..., "symbols": {...}}.
func (m Merged) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("summary", m.Summary)
	w.Append("symbols", &m.Symbols)
	return w.MarshalJSON()
}

// Merge joins holdings with quotes.
//
// Each holding is keyed by Holding.Key. Records follow the holdings order; a
// later holding with the same key replaces the earlier one in place. Holdings
// without a quote are kept without quote fields.
func Merge(summary Summary, holdings []Holding, quotes map[string]Quote) *Merged {
	m := &Merged{Summary: summary}
	for _, h := range holdings {
		key := h.Key()
		rec := Record{
			Symbol:         key,
			Name:           h.Name,
			WeightPct:      h.WeightPct,
			Shares:         h.Shares,
			MarketValueUSD: h.MarketValueUSD,
		}
		if q, ok := quotes[key]; ok {
			rec.Quote = &q
		}
		m.Symbols.Set(key, rec)
	}
	return m
}
