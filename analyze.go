package etfnav

import (
	"context"
	"fmt"
	"log"
)

// FundSource retrieves a fund's trading summary and the raw holdings payload
// for its first rows holdings.
type FundSource interface {
	FetchFund(ctx context.Context, ticker string, rows int) (Summary, string, error)
}

// QuoteFeed retrieves the latest quotes for a batch of symbols. Symbols
// unknown to the feed are simply absent from the result.
type QuoteFeed interface {
	LatestQuotes(ctx context.Context, symbols []string) (map[string]Quote, error)
}

// Analysis is the result of a full reconciliation run for a fund.
type Analysis struct {
	Ticker   string
	Holdings []Holding // holdings with a canonical symbol, in source order
	Merged   *Merged
	Report   NavReport
	Missing  []string // symbols the feed had no quote for
	Skipped  int      // malformed holdings rows
}

// Analyze runs the whole pipeline for ticker: fetch and decode the holdings,
// fetch their quotes in a single batch, merge and reconcile.
//
// When the feed has a quote for the fund itself, it replaces the last price
// scraped from the source.
func Analyze(ctx context.Context, src FundSource, feed QuoteFeed, ticker string, rows int) (*Analysis, error) {
	summary, payload, err := src.FetchFund(ctx, ticker, rows)
	if err != nil {
		return nil, err
	}
	holdings, skipped, err := DecodeHoldingsReport(payload)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return nil, fmt.Errorf("%s: %w", ticker, ErrNoHoldings)
	}
	valid := Canonicalize(holdings)
	log.Printf("%s: %d holdings decoded, %d with a symbol, %d malformed rows skipped", ticker, len(holdings), len(valid), skipped)

	symbols := make([]string, len(valid))
	for i, h := range valid {
		symbols[i] = h.CanonicalSymbol
	}
	symbols = UniqueSymbols(symbols)

	batch, err := feed.LatestQuotes(ctx, RequestSymbols(symbols, ticker))
	if err != nil {
		return nil, err
	}
	c := Correlate(symbols, ticker, batch)
	if len(c.Missing) > 0 {
		log.Printf("%s: no quote for %v", ticker, c.Missing)
	}
	if c.Fund != nil {
		summary.LastPrice = QuotePrice(*c.Fund)
	}

	merged := Merge(summary, valid, c.Present)
	return &Analysis{
		Ticker:   ticker,
		Holdings: valid,
		Merged:   merged,
		Report:   Reconcile(merged),
		Missing:  c.Missing,
		Skipped:  skipped,
	}, nil
}

// MarshalJSON writes the merged structure followed by the reconciliation:
// {"summary": ..., "symbols": ..., "report": ..., "missing": [...]}.
func (a *Analysis) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	if a.Merged != nil {
		w.Append("summary", a.Merged.Summary)
		w.Append("symbols", &a.Merged.Symbols)
	}
	w.Append("report", a.Report)
	w.Optional("missing", a.Missing)
	return w.MarshalJSON()
}
