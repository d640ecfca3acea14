package etfnav

import (
	"cmp"
	"log"
	"math"
	"slices"
)

// DiscrepancyRow compares a holding's reported market value with the value
// recomputed from its latest close.
type DiscrepancyRow struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	MarketValueUSD float64 `json:"market_value_usd"`
	TrueValue      float64 `json:"true_value"`
	Discrepancy    float64 `json:"discrepancy"`     // TrueValue - MarketValueUSD
	DiscrepancyPct float64 `json:"discrepancy_pct"` // in percent of MarketValueUSD, 0 if unknown
}

// NavReport is the outcome of a reconciliation.
//
// LastPrice, ImpliedSharesOutstanding, NavPerShare, NavDiff and NavDiffPct are
// nil when there is not enough data to derive them.
type NavReport struct {
	LastPrice                *float64         `json:"last_price"`
	ImpliedSharesOutstanding *float64         `json:"implied_shares_outstanding"`
	NavPerShare              *float64         `json:"nav_per_share"`
	NavDiff                  *float64         `json:"nav_diff"`
	NavDiffPct               *float64         `json:"nav_diff_pct"`
	TotalTrueValue           float64          `json:"total_true_value"`
	TotalReportedMarketValue float64          `json:"total_reported_market_value"`
	Rows                     []DiscrepancyRow `json:"rows"` // by descending absolute discrepancy
}

// NAV returns the implied NAV per share, and its difference with the last price.
// It returns ErrInsufficientData if they could not be derived.
func (r NavReport) NAV() (nav, diff, diffPct float64, err error) {
	if r.NavPerShare == nil || r.NavDiff == nil || r.NavDiffPct == nil {
		return 0, 0, 0, ErrInsufficientData
	}
	return *r.NavPerShare, *r.NavDiff, *r.NavDiffPct, nil
}

// valuation holds the amounts of a record that can be reconciled.
type valuation struct {
	shares, close, marketValue float64
}

// valuationOf is the exclusion policy: a record without a usable close, or with
// non finite amounts, has no reliable value and must be left out of the totals
// rather than counted as zero.
func valuationOf(rec Record) (valuation, bool) {
	if rec.Quote == nil {
		return valuation{}, false
	}
	c, ok := rec.Quote.ClosePrice()
	if !ok || !finite(rec.Shares) || !finite(rec.MarketValueUSD) {
		return valuation{}, false
	}
	return valuation{shares: rec.Shares, close: c, marketValue: rec.MarketValueUSD}, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Reconcile recomputes every record's value from its close, and derives the
// fund's NAV per share from the totals.
//
// The implied shares outstanding are the reported market value divided by the
// last price; the NAV per share is the recomputed value divided by the implied
// shares outstanding. Both are left nil when the last price is unknown or zero,
// or when the implied shares outstanding are zero.
func Reconcile(m *Merged) NavReport {
	var report NavReport
	report.Rows = make([]DiscrepancyRow, 0, m.Symbols.Len())
	for symbol, rec := range m.Symbols.All() {
		v, ok := valuationOf(rec)
		if !ok {
			log.Printf("%s: no reliable price, excluded from the NAV", symbol)
			continue
		}
		trueValue := v.shares * v.close
		report.TotalTrueValue += trueValue
		report.TotalReportedMarketValue += v.marketValue

		row := DiscrepancyRow{
			Symbol:         symbol,
			Name:           rec.Name,
			MarketValueUSD: v.marketValue,
			TrueValue:      trueValue,
			Discrepancy:    trueValue - v.marketValue,
		}
		if v.marketValue != 0 {
			row.DiscrepancyPct = row.Discrepancy / v.marketValue * 100
		}
		report.Rows = append(report.Rows, row)
	}
	slices.SortStableFunc(report.Rows, func(a, b DiscrepancyRow) int {
		return cmp.Compare(math.Abs(b.Discrepancy), math.Abs(a.Discrepancy))
	})

	last, err := m.Summary.LastPrice.Value()
	if err != nil {
		log.Printf("last price %q: %v", m.Summary.LastPrice, err)
		return report
	}
	report.LastPrice = &last
	if last == 0 {
		return report
	}

	shares := report.TotalReportedMarketValue / last
	report.ImpliedSharesOutstanding = &shares
	if shares == 0 {
		return report
	}
	nav := report.TotalTrueValue / shares
	diff := nav - last
	diffPct := diff / last * 100
	report.NavPerShare, report.NavDiff, report.NavDiffPct = &nav, &diff, &diffPct
	return report
}
