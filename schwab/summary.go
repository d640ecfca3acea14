package schwab

import (
	"bytes"
	"log"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/etnz/etfnav"
	"golang.org/x/net/html"
)

var (
	quoteRow = cascadia.MustCompile("div.popupVersion.realtime table tr:nth-of-type(2)")
	td       = cascadia.MustCompile("td")
	value    = cascadia.MustCompile(".value")
	sublabel = cascadia.MustCompile(".sublabel")
	asOf     = cascadia.MustCompile("#firstGlanceFooter")
	title    = cascadia.MustCompile("#content > div > h2")
)

// ParseSummary reads the trading summary out of the holdings page.
//
// The quote table row holds last price, change, bid, ask and volume in cells
// 0, 2, 4, 6 and 8, the last three split in a `.value` and a `.sublabel`.
// Anything not found is left empty.
func ParseSummary(page []byte) etfnav.Summary {
	var s etfnav.Summary
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		log.Printf("summary parse fail: %v", err)
		return s
	}

	if row := cascadia.Query(doc, quoteRow); row != nil {
		cells := cascadia.QueryAll(row, td)
		cell := func(i int) *html.Node {
			if i < len(cells) {
				return cells[i]
			}
			return nil
		}
		sub := func(i int, m cascadia.Matcher) string {
			if c := cell(i); c != nil {
				return text(cascadia.Query(c, m))
			}
			return ""
		}
		if p := text(cell(0)); p != "" {
			s.LastPrice = etfnav.RawPrice(p)
		}
		s.Change = text(cell(2))
		s.Bid, s.BidSize = sub(4, value), sub(4, sublabel)
		s.Ask, s.AskSize = sub(6, value), sub(6, sublabel)
		s.Volume, s.VolumeLabel = sub(8, value), sub(8, sublabel)
	} else {
		log.Println("summary parse fail (no table row)")
	}

	if footer := cascadia.Query(doc, asOf); footer != nil {
		s.AsOf = strings.TrimSpace(strings.Replace(text(footer), "As of", "", 1))
	}
	s.Title = text(cascadia.Query(doc, title))
	return s
}

// text returns the trimmed text content of n, "" for nil.
func text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
