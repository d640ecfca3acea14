package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/etfnav"
	"github.com/etnz/etfnav/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct {
	rows   int
	output string
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "reconcile an ETF's last price with the value of its holdings"
}
func (*checkCmd) Usage() string {
	return `navcheck check [-n <rows>] [-o <file.json>] <TICKER>

  Fetches the first holdings of the ETF, prices them with their latest quotes,
  and compares the NAV per share they imply with the ETF's last price.

  Prints the NAV summary and the holdings by decreasing discrepancy.
  With -o, also writes the merged data and the reconciliation as JSON.

Usage Examples:
$ navcheck check SPY
$ navcheck check -n 50 -o spy.json SPY

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.rows, "n", defaultRows, "number of holdings to fetch, by decreasing weight")
	f.StringVar(&c.output, "o", "", "write the merged data and the reconciliation to this JSON file")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ticker, err := checkArgs(f.Args(), c.rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg := LoadConfig()
	a, err := etfnav.Analyze(ctx, cfg.Source(), cfg.Feed(), ticker, c.rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderCheck(renderer.NewCheck(a)))

	if c.output != "" {
		if err := writeJSON(c.output, a); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Saved to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}

// writeJSON writes v to file as indented UTF-8 JSON, with no HTML escaping.
func writeJSON(file string, v any) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
