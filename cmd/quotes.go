package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/etfnav"
	"github.com/etnz/etfnav/renderer"
	"github.com/google/subcommands"
)

type quotesCmd struct{}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "display the latest quotes of symbols" }
func (*quotesCmd) Usage() string {
	return `navcheck quotes <SYMBOL>...

  Fetches the latest bar of every symbol, in a single request. Symbols are
  normalized the way holdings are: BRK/B is quoted as BRK.B.

`
}

func (*quotesCmd) SetFlags(*flag.FlagSet) {}

func (*quotesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol is required")
		return subcommands.ExitUsageError
	}
	var symbols []string
	for _, arg := range f.Args() {
		s, ok := etfnav.NormalizeSymbol(strings.ToUpper(arg))
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid symbol %q\n", arg)
			return subcommands.ExitUsageError
		}
		symbols = append(symbols, s)
	}
	symbols = etfnav.UniqueSymbols(symbols)

	quotes, err := LoadConfig().Feed().LatestQuotes(ctx, symbols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderQuotes(renderer.NewQuotes(symbols, quotes)))
	return subcommands.ExitSuccess
}
