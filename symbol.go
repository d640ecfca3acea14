package etfnav

import (
	"regexp"
	"strings"
)

// placeholderSymbol is what the holdings source shows for rows without a ticker.
const placeholderSymbol = "--"

var nonSymbolChars = regexp.MustCompile(`[^A-Za-z0-9.]+`)

// NormalizeSymbol maps an exchange-native ticker to the form used by the quote
// feed: share classes use a dot instead of a slash ("BRK/B" -> "BRK.B") and any
// character other than letters, digits and dots is removed.
//
// It returns false for empty, blank or placeholder tickers, and when nothing is
// left after cleaning.
func NormalizeSymbol(symbol string) (string, bool) {
	if strings.TrimSpace(symbol) == "" || symbol == placeholderSymbol {
		return "", false
	}
	s := strings.ReplaceAll(symbol, "/", ".")
	s = nonSymbolChars.ReplaceAllString(s, "")
	if s == "" {
		return "", false
	}
	return s, true
}
