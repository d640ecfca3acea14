package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/etfnav"
	"github.com/etnz/etfnav/agent"
	"github.com/etnz/etfnav/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type explainCmd struct {
	rows        int
	interactive bool
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "ask an AI analyst to explain an ETF's NAV discrepancy" }
func (*explainCmd) Usage() string {
	return `navcheck explain [-n <rows>] [-i] <TICKER> [question...]

  Runs the same reconciliation as check, then asks Gemini to explain it.
  It needs GEMINI_API_KEY (or GOOGLE_API_KEY).

  With -i, the conversation goes on until 'bye'.

`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.rows, "n", defaultRows, "number of holdings to fetch, by decreasing weight")
	f.BoolVar(&c.interactive, "i", false, "keep asking questions interactively")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var args []string
	if f.NArg() > 0 {
		args = f.Args()[:1]
	}
	ticker, err := checkArgs(args, c.rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	question := fmt.Sprintf("Explain the NAV discrepancy of %s.", ticker)
	if f.NArg() > 1 {
		question = strings.Join(f.Args()[1:], " ")
	}

	cfg := LoadConfig()
	a, err := etfnav.Analyze(ctx, cfg.Source(), cfg.Feed(), ticker, c.rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderCheck(renderer.NewCheck(a)))

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	var in io.Reader
	if c.interactive {
		in = os.Stdin
	}
	trader := agent.NewTrader()
	analyst := agent.New(os.Stdout, in, agent.NewAnalyst(a, trader), trader)
	analyst.Print = func(_ io.Writer, md string) { printMarkdown(md) }

	if err := analyst.Run(ctx, client, question); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
