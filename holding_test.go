package etfnav

import "testing"

func TestHoldingKey(t *testing.T) {
	tests := []struct {
		h    Holding
		want string
	}{
		{Holding{Symbol: "BRK/B", CanonicalSymbol: "BRK.B"}, "BRK.B"},
		{Holding{Symbol: "AAPL"}, "AAPL"},
		{Holding{Symbol: "9999 HK"}, "9999 HK"},
	}
	for _, tt := range tests {
		if got := tt.h.Key(); got != tt.want {
			t.Errorf("Holding{%q, %q}.Key() = %q, want %q", tt.h.Symbol, tt.h.CanonicalSymbol, got, tt.want)
		}
	}
}
