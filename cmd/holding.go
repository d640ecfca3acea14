package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/etfnav"
	"github.com/etnz/etfnav/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct {
	rows int
	all  bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the holdings of an ETF" }
func (*holdingsCmd) Usage() string {
	return `navcheck holdings [-n <rows>] [-all] <TICKER>

  Fetches and decodes the first holdings of the ETF, by decreasing weight,
  and shows the symbol each one is quoted as. No quote is fetched.

  Holdings whose symbol cannot be quoted are hidden, unless -all.

`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.rows, "n", defaultRows, "number of holdings to fetch, by decreasing weight")
	f.BoolVar(&c.all, "all", false, "also show holdings that cannot be quoted")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ticker, err := checkArgs(f.Args(), c.rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	_, payload, err := LoadConfig().Source().FetchFund(ctx, ticker, c.rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	holdings, skipped, err := etfnav.DecodeHoldingsReport(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderHoldings(renderer.NewHoldings(ticker, holdingsView(holdings, c.all), skipped)))
	return subcommands.ExitSuccess
}

// holdingsView returns the holdings with their canonical symbol, all of them
// or only those that can be quoted.
func holdingsView(holdings []etfnav.Holding, all bool) []etfnav.Holding {
	if !all {
		return etfnav.Canonicalize(holdings)
	}
	view := make([]etfnav.Holding, len(holdings))
	for i, h := range holdings {
		h.CanonicalSymbol, _ = etfnav.NormalizeSymbol(h.Symbol)
		view[i] = h
	}
	return view
}
