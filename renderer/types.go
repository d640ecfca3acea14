package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in US dollars, displayed to the cent.
type Money float64

func (m Money) String() string {
	cur := money.GetCurrency(money.USD)
	return cur.Formatter().Format(decimal.NewFromFloat(float64(m)).Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// SignedString returns the amount with an explicit sign, 0 is "-".
func (m Money) SignedString() string { return signed(m.String()) }

// Price is a per share amount in US dollars, displayed with four decimals.
type Price float64

// priceFormatter formats a price in ten thousandths of a dollar.
var priceFormatter = money.NewFormatter(4, ".", ",", "$", "$1")

func (p Price) String() string {
	return priceFormatter.Format(decimal.NewFromFloat(float64(p)).Shift(4).Round(0).IntPart())
}

// SignedString returns the price with an explicit sign, 0 is "-".
func (p Price) SignedString() string { return signed(p.String()) }

// Percent is a percentage, 1.5 is 1.5%.
type Percent float64

func (p Percent) String() string { return decimal.NewFromFloat(float64(p)).StringFixed(2) + "%" }

// Precise returns the percentage with four decimals.
func (p Percent) Precise() string { return decimal.NewFromFloat(float64(p)).StringFixed(4) + "%" }

// SignedString returns the percentage with an explicit sign, 0 is "-".
func (p Percent) SignedString() string { return signed(p.String()) }

// Quantity is a number of shares.
type Quantity float64

func (q Quantity) String() string {
	d := decimal.NewFromFloat(float64(q))
	if d.IsInteger() {
		return thousands(d.String())
	}
	return thousands(d.Round(4).String())
}

// signed prefixes a formatted positive value with "+", and replaces zeros
// with "-".
func signed(s string) string {
	if strings.Trim(s, "-$0.,%") == "" {
		return "-"
	}
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}

// thousands inserts thousand separators in a plain decimal string.
func thousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s, frac = s[:i], s[i:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s + frac
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
