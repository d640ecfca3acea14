package etfnav

import "slices"

// Correlation is a batch of quotes sorted out against the requested symbols.
type Correlation struct {
	Fund    *Quote           // the fund's own quote, if requested and found
	Present map[string]Quote // constituent quotes, never including the fund's
	Missing []string         // requested symbols without a quote, in request order
}

// Correlate splits batch into the fund's quote and the constituents' quotes.
//
// If fund is not empty and found in batch, its quote is set aside and removed
// from the constituents, even if a constituent shares the same ticker.
// batch is not modified.
func Correlate(symbols []string, fund string, batch map[string]Quote) Correlation {
	var c Correlation
	c.Present = make(map[string]Quote, len(batch))
	for s, q := range batch {
		c.Present[s] = q
	}
	if fund != "" {
		if q, ok := c.Present[fund]; ok {
			c.Fund = &q
			delete(c.Present, fund)
		}
	}
	for _, s := range symbols {
		if _, ok := c.Present[s]; !ok {
			c.Missing = append(c.Missing, s)
		}
	}
	return c
}

// RequestSymbols returns the symbols for a single quote batch: the fund first,
// unless already listed, then symbols without duplicates, in first-seen order.
func RequestSymbols(symbols []string, fund string) []string {
	unique := UniqueSymbols(symbols)
	if fund == "" || slices.Contains(unique, fund) {
		return unique
	}
	return append([]string{fund}, unique...)
}

// UniqueSymbols returns the non empty symbols without duplicates, in first-seen order.
func UniqueSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	unique := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		unique = append(unique, s)
	}
	return unique
}
