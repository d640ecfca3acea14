package etfnav

import (
	"slices"
	"testing"
)

func TestCorrelate(t *testing.T) {
	batch := map[string]Quote{
		"SPY":  bar(500),
		"AAPL": bar(210),
		"MSFT": bar(310),
	}
	c := Correlate([]string{"AAPL", "NVDA", "MSFT", "TSLA"}, "SPY", batch)

	if c.Fund == nil || *c.Fund.Close != 500 {
		t.Errorf("Correlate() Fund = %v, want close 500", c.Fund)
	}
	if _, ok := c.Present["SPY"]; ok {
		t.Error("Correlate() Present contains the fund quote")
	}
	if len(c.Present) != 2 {
		t.Errorf("Correlate() Present has %d quotes, want 2", len(c.Present))
	}
	if want := []string{"NVDA", "TSLA"}; !slices.Equal(c.Missing, want) {
		t.Errorf("Correlate() Missing = %v, want %v", c.Missing, want)
	}
	if _, ok := batch["SPY"]; !ok {
		t.Error("Correlate() modified the batch")
	}
}

func TestCorrelateWithoutFund(t *testing.T) {
	c := Correlate([]string{"AAPL"}, "", map[string]Quote{"AAPL": bar(1)})
	if c.Fund != nil {
		t.Errorf("Correlate() Fund = %v, want nil", c.Fund)
	}
	if len(c.Present) != 1 || len(c.Missing) != 0 {
		t.Errorf("Correlate() = %+v, want AAPL present and nothing missing", c)
	}

	c = Correlate([]string{"AAPL"}, "QQQ", map[string]Quote{"AAPL": bar(1)})
	if c.Fund != nil {
		t.Errorf("Correlate() Fund = %v, want nil when the fund is not in the batch", c.Fund)
	}
}

func TestRequestSymbols(t *testing.T) {
	tests := []struct {
		name    string
		symbols []string
		fund    string
		want    []string
	}{
		{"fund first", []string{"AAPL", "MSFT"}, "SPY", []string{"SPY", "AAPL", "MSFT"}},
		{"duplicates", []string{"AAPL", "MSFT", "AAPL", ""}, "SPY", []string{"SPY", "AAPL", "MSFT"}},
		{"fund already listed", []string{"AAPL", "SPY"}, "SPY", []string{"AAPL", "SPY"}},
		{"no fund", []string{"AAPL"}, "", []string{"AAPL"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequestSymbols(tt.symbols, tt.fund); !slices.Equal(got, tt.want) {
				t.Errorf("RequestSymbols() = %v, want %v", got, tt.want)
			}
		})
	}
}
