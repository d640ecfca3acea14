package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/etfnav"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// markdownDoc is the structure of a rendered document: its headings, and the
// cells of every table row (headers included), table by table.
type markdownDoc struct {
	headings []string
	tables   [][][]string
	text     string
}

func parseMarkdown(t *testing.T, doc string) markdownDoc {
	t.Helper()
	source := []byte(doc)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))

	res := markdownDoc{text: doc}
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			res.headings = append(res.headings, string(n.Text(source)))
			return ast.WalkSkipChildren, nil
		case *east.Table:
			res.tables = append(res.tables, nil)
		case *east.TableHeader, *east.TableRow:
			var cells []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				cells = append(cells, string(c.Text(source)))
			}
			res.tables[len(res.tables)-1] = append(res.tables[len(res.tables)-1], cells)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return res
}

// figure returns the value of a label in a two column table, "" if absent.
func (d markdownDoc) figure(table int, label string) string {
	if table >= len(d.tables) {
		return ""
	}
	for _, row := range d.tables[table] {
		if len(row) == 2 && row[0] == label {
			return row[1]
		}
	}
	return ""
}

func f(v float64) *float64 { return &v }

func sampleAnalysis() *etfnav.Analysis {
	return &etfnav.Analysis{
		Ticker: "SPY",
		Merged: &etfnav.Merged{Summary: etfnav.Summary{
			Title:       "SPDR S&P 500 ETF Trust",
			AsOf:        "08/01/2025 4:00 PM ET",
			Volume:      "61.2M",
			VolumeLabel: "Above avg.",
		}},
		Report: etfnav.NavReport{
			LastPrice:                f(250),
			ImpliedSharesOutstanding: f(140),
			NavPerShare:              f(260.7142857),
			NavDiff:                  f(10.7142857),
			NavDiffPct:               f(4.2857143),
			TotalTrueValue:           36500,
			TotalReportedMarketValue: 35000,
			Rows: []etfnav.DiscrepancyRow{
				{Symbol: "MSFT", Name: "Microsoft Corporation Class A Shares", MarketValueUSD: 20000, TrueValue: 21000, Discrepancy: 1000, DiscrepancyPct: 5},
				{Symbol: "AAPL", Name: "Apple Inc", MarketValueUSD: 15000, TrueValue: 15500, Discrepancy: 500, DiscrepancyPct: 3.333333},
			},
		},
		Missing: []string{"BRK.B"},
		Skipped: 2,
	}
}

func TestRenderCheck(t *testing.T) {
	doc := parseMarkdown(t, RenderCheck(NewCheck(sampleAnalysis())))

	wantHeadings := []string{"SPY NAV check", "NAV summary", "Discrepancies", "Gaps"}
	if strings.Join(doc.headings, ";") != strings.Join(wantHeadings, ";") {
		t.Errorf("RenderCheck() headings = %q, want %q", doc.headings, wantHeadings)
	}
	if len(doc.tables) != 2 {
		t.Fatalf("RenderCheck() has %d tables, want 2:\n%s", len(doc.tables), doc.text)
	}

	figures := []struct{ label, want string }{
		{"Last price", "$250.0000"},
		{"Implied shares outstanding", "140"},
		{"NAV per share", "$260.7143"},
		{"Difference", "+$10.7143 (4.2857%)"},
		{"Total true value", "$36,500.00"},
		{"Total reported market value", "$35,000.00"},
	}
	for _, fig := range figures {
		if got := doc.figure(0, fig.label); got != fig.want {
			t.Errorf("RenderCheck() %s = %q, want %q", fig.label, got, fig.want)
		}
	}

	rows := doc.tables[1]
	if len(rows) != 3 {
		t.Fatalf("RenderCheck() discrepancy table has %d rows, want 3 (header included)", len(rows))
	}
	wantFirst := []string{"MSFT", "Microsoft Corporation Class", "$20,000.00", "$21,000.00", "+$1,000.00", "+5.00%"}
	if strings.Join(rows[1], ";") != strings.Join(wantFirst, ";") {
		t.Errorf("RenderCheck() first row = %q, want %q", rows[1], wantFirst)
	}
	if rows[2][0] != "AAPL" || rows[2][5] != "+3.33%" {
		t.Errorf("RenderCheck() second row = %q, want AAPL at +3.33%%", rows[2])
	}

	for _, want := range []string{"SPDR S&P 500 ETF Trust", "As of 08/01/2025 4:00 PM ET.", "Volume: 61.2M (Above avg.).", "No quote for BRK.B.", "2 malformed holdings rows skipped."} {
		if !strings.Contains(doc.text, want) {
			t.Errorf("RenderCheck() does not contain %q:\n%s", want, doc.text)
		}
	}
	if strings.Contains(doc.text, "Insufficient data") {
		t.Errorf("RenderCheck() reports insufficient data with a NAV:\n%s", doc.text)
	}
}

func TestRenderCheckInsufficientData(t *testing.T) {
	a := &etfnav.Analysis{
		Ticker: "XYZ",
		Report: etfnav.NavReport{TotalTrueValue: 0, TotalReportedMarketValue: 0},
	}
	doc := parseMarkdown(t, RenderCheck(NewCheck(a)))

	if !strings.Contains(doc.text, "Insufficient data to calculate NAV discrepancy.") {
		t.Errorf("RenderCheck() without NAV does not report insufficient data:\n%s", doc.text)
	}
	if !strings.Contains(doc.text, "No holding could be valued.") {
		t.Errorf("RenderCheck() without rows does not say so:\n%s", doc.text)
	}
	if got := doc.figure(0, "Last price"); got != "" {
		t.Errorf("RenderCheck() Last price = %q, want no such row", got)
	}
	for _, h := range doc.headings {
		if h == "Gaps" {
			t.Errorf("RenderCheck() has a Gaps section with nothing missing:\n%s", doc.text)
		}
	}
}

func TestRenderHoldings(t *testing.T) {
	holdings := etfnav.Canonicalize([]etfnav.Holding{
		{Symbol: "AAPL", Name: "Apple Inc", WeightPct: 0.07, Shares: 1000, MarketValueUSD: 210000},
		{Symbol: "BRK/B", Name: "Berkshire Hathaway Inc Class B", WeightPct: 0.015, Shares: 12.5, MarketValueUSD: 5000.5},
	})
	doc := parseMarkdown(t, RenderHoldings(NewHoldings("SPY", holdings, 0)))

	if len(doc.tables) != 1 || len(doc.tables[0]) != 3 {
		t.Fatalf("RenderHoldings() tables = %q, want one table with 2 holdings", doc.tables)
	}
	want := []string{"BRK/B", "BRK.B", "Berkshire Hathaway Inc Class", "1.50%", "12.5", "$5,000.50"}
	if got := doc.tables[0][2]; strings.Join(got, ";") != strings.Join(want, ";") {
		t.Errorf("RenderHoldings() row = %q, want %q", got, want)
	}
	if !strings.Contains(doc.text, "Total market value: $215,000.50") {
		t.Errorf("RenderHoldings() total missing:\n%s", doc.text)
	}
}

func TestRenderQuotes(t *testing.T) {
	quotes := map[string]etfnav.Quote{
		"AAPL": {Close: f(210.5), Volume: f(1234567), Timestamp: "2025-08-01T19:59:00Z"},
	}
	doc := parseMarkdown(t, RenderQuotes(NewQuotes([]string{"AAPL", "ZZZZ"}, quotes)))

	if len(doc.tables) != 1 || len(doc.tables[0]) != 2 {
		t.Fatalf("RenderQuotes() tables = %q, want one table with 1 quote", doc.tables)
	}
	want := []string{"AAPL", "$210.5000", "-", "-", "-", "1,234,567", "-", "-", "2025-08-01T19:59:00Z"}
	if got := doc.tables[0][1]; strings.Join(got, ";") != strings.Join(want, ";") {
		t.Errorf("RenderQuotes() row = %q, want %q", got, want)
	}
	if !strings.Contains(doc.text, "No quote for ZZZZ.") {
		t.Errorf("RenderQuotes() does not report the missing symbol:\n%s", doc.text)
	}
}

func TestFormats(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"money", Money(1234567.891).String(), "$1,234,567.89"},
		{"negative money", Money(-1000).String(), "-$1,000.00"},
		{"signed money", Money(12).SignedString(), "+$12.00"},
		{"zero money", Money(0.001).SignedString(), "-"},
		{"price", Price(512.34).String(), "$512.3400"},
		{"negative price", Price(-0.5).SignedString(), "-$0.5000"},
		{"percent", Percent(-1.234).String(), "-1.23%"},
		{"precise percent", Percent(4.28571).Precise(), "4.2857%"},
		{"zero percent", Percent(0).SignedString(), "-"},
		{"shares", Quantity(1234567).String(), "1,234,567"},
		{"fractional shares", Quantity(-1234.56789).String(), "-1,234.5679"},
		{"cell", cell("A | B\nC"), `A \| B C`},
		{"truncate", truncate("Société Générale SA", 8), "Société "},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
