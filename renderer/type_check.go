package renderer

import (
	"github.com/etnz/etfnav"
)

// nameWidth is the longest name displayed in tables.
const nameWidth = 28

// Check is the NAV reconciliation of a fund, ready to render.
//
// Optional figures are nil when they could not be derived.
type Check struct {
	Ticker      string `json:"ticker"`
	Title       string `json:"title,omitempty"`
	AsOf        string `json:"asOf,omitempty"`
	Volume      string `json:"volume,omitempty"`
	VolumeLabel string `json:"volumeLabel,omitempty"`

	LastPrice     *Price    `json:"lastPrice,omitempty"`
	ImpliedShares *Quantity `json:"impliedShares,omitempty"`
	NAV           *Price    `json:"nav,omitempty"`
	NAVDiff       *Price    `json:"navDiff,omitempty"`
	NAVDiffPct    *Percent  `json:"navDiffPct,omitempty"`

	TotalTrueValue           Money `json:"totalTrueValue"`
	TotalReportedMarketValue Money `json:"totalReportedMarketValue"`

	Rows    []CheckRow `json:"rows"`
	Missing []string   `json:"missing,omitempty"` // symbols without quote
	Skipped int        `json:"skipped,omitempty"` // malformed holdings rows
}

// CheckRow is one holding's discrepancy.
type CheckRow struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	MarketValue    Money   `json:"marketValue"`
	TrueValue      Money   `json:"trueValue"`
	Discrepancy    Money   `json:"discrepancy"`
	DiscrepancyPct Percent `json:"discrepancyPct"`
}

// NewCheck prepares the analysis of a fund for rendering.
func NewCheck(a *etfnav.Analysis) *Check {
	r := a.Report
	c := &Check{
		Ticker:                   a.Ticker,
		LastPrice:                convert[Price](r.LastPrice),
		ImpliedShares:            convert[Quantity](r.ImpliedSharesOutstanding),
		NAV:                      convert[Price](r.NavPerShare),
		NAVDiff:                  convert[Price](r.NavDiff),
		NAVDiffPct:               convert[Percent](r.NavDiffPct),
		TotalTrueValue:           Money(r.TotalTrueValue),
		TotalReportedMarketValue: Money(r.TotalReportedMarketValue),
		Rows:                     make([]CheckRow, 0, len(r.Rows)),
		Missing:                  a.Missing,
		Skipped:                  a.Skipped,
	}
	if a.Merged != nil {
		s := a.Merged.Summary
		c.Title, c.AsOf = cell(s.Title), cell(s.AsOf)
		c.Volume, c.VolumeLabel = cell(s.Volume), cell(s.VolumeLabel)
	}
	for _, row := range r.Rows {
		c.Rows = append(c.Rows, CheckRow{
			Symbol:         cell(row.Symbol),
			Name:           cell(truncate(row.Name, nameWidth)),
			MarketValue:    Money(row.MarketValueUSD),
			TrueValue:      Money(row.TrueValue),
			Discrepancy:    Money(row.Discrepancy),
			DiscrepancyPct: Percent(row.DiscrepancyPct),
		})
	}
	return c
}

// convert returns v as a T, nil stays nil.
func convert[T ~float64](v *float64) *T {
	if v == nil {
		return nil
	}
	t := T(*v)
	return &t
}
