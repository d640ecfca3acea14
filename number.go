package etfnav

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// magnitudes maps the trailing suffix of an amount to its multiplier.
var magnitudes = map[byte]float64{'K': 1e3, 'M': 1e6, 'B': 1e9}

// cleanNumber returns raw without surrounding blanks, thousands separators
// and dollar signs, upper-cased.
func cleanNumber(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	return s
}

// parseNumber reads a human formatted amount like "12.5%", "$1,234.50" or "1.5B".
//
// A trailing '%' divides by 100, a trailing K, M or B multiplies by 1e3, 1e6 or
// 1e9. The empty string is 0. Anything else that is not a decimal number is an
// ErrNumber.
func parseNumber(raw string) (float64, error) {
	s := cleanNumber(raw)
	if s == "" {
		return 0, nil
	}
	percent := false
	factor := 1.0
	if rest, ok := strings.CutSuffix(s, "%"); ok {
		s, percent = rest, true
	} else if m, ok := magnitudes[s[len(s)-1]]; ok {
		s, factor = s[:len(s)-1], m
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrNumber, raw)
	}
	// Scaled as float64 so that "1.1%" is exactly "1.1" / 100.
	v := d.InexactFloat64()
	if percent {
		return v / 100, nil
	}
	return v * factor, nil
}

// ParseNumber is like parseNumber but degrades any malformed input to 0.
//
// This is the zero-default policy: a holding whose amounts cannot be read is
// kept but financially inert.
func ParseNumber(raw string) float64 {
	v, err := parseNumber(raw)
	if err != nil {
		return 0
	}
	return v
}

// ParsePrice reads a raw decimal price such as "$1,234.5678".
// It has no percent or magnitude handling, and unlike ParseNumber the empty
// string is an error: a missing price is not a zero price.
func ParsePrice(raw string) (float64, error) {
	s := cleanNumber(raw)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w price %q", ErrNumber, raw)
	}
	return d.InexactFloat64(), nil
}
