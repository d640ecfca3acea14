// Package cmd implements the navcheck command line: NAV reconciliation of
// ETFs from their published holdings.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/etfnav/alpaca"
	"github.com/etnz/etfnav/schwab"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands are navcheck's subcommands.
var Commands = []subcommands.Command{
	&checkCmd{},
	&holdingsCmd{},
	&quotesCmd{},
	&explainCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	Verbose      = flag.Bool("v", false, "log every request and decoding step")
	alpacaKey    = flag.String("alpaca-key", "", "Alpaca API key id (default $"+EnvAlpacaKey+")")
	alpacaSecret = flag.String("alpaca-secret", "", "Alpaca API secret key (default $"+EnvAlpacaSecret+")")
)

const (
	EnvAlpacaKey    = "ALPACA_API_KEY"
	EnvAlpacaSecret = "ALPACA_SECRET_KEY"
	EnvAlpacaURL    = "ALPACA_DATA_URL"
	EnvSchwabURL    = "SCHWAB_BASE_URL"
)

// defaultRows is the number of holdings requested by default.
const defaultRows = 100

// Init loads the .env file of the current directory, if any, and silences
// the logs unless verbose. It must be called once flags are parsed.
func Init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: cannot load .env: %v\n", err)
	}
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// Config holds the collaborators' settings.
type Config struct {
	AlpacaKeyID     string
	AlpacaSecretKey string
	AlpacaURL       string // empty for the default host
	SchwabURL       string // empty for the default host
}

// LoadConfig reads the configuration from the environment, flags take
// precedence.
func LoadConfig() Config {
	cfg := Config{
		AlpacaKeyID:     os.Getenv(EnvAlpacaKey),
		AlpacaSecretKey: os.Getenv(EnvAlpacaSecret),
		AlpacaURL:       os.Getenv(EnvAlpacaURL),
		SchwabURL:       os.Getenv(EnvSchwabURL),
	}
	if *alpacaKey != "" {
		cfg.AlpacaKeyID = *alpacaKey
	}
	if *alpacaSecret != "" {
		cfg.AlpacaSecretKey = *alpacaSecret
	}
	if cfg.AlpacaKeyID == "" {
		log.Printf("warning: no Alpaca key, set %s", EnvAlpacaKey)
	}
	return cfg
}

// Source returns the fund source.
func (c Config) Source() *schwab.Client { return schwab.NewClient(c.SchwabURL) }

// Feed returns the quote feed.
func (c Config) Feed() *alpaca.Client {
	feed := alpaca.NewClient(c.AlpacaKeyID, c.AlpacaSecretKey)
	if c.AlpacaURL != "" {
		feed.BaseURL = c.AlpacaURL
	}
	return feed
}

var tickerPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

var (
	errTicker = errors.New("invalid ETF symbol")
	errRows   = errors.New("the number of rows must be a positive integer")
)

// parseTicker returns the upper case ticker. It must be made of letters and
// digits, or contain a dot.
func parseTicker(s string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if !tickerPattern.MatchString(t) && !strings.Contains(t, ".") {
		return "", fmt.Errorf("%w: %q", errTicker, s)
	}
	return t, nil
}

// checkArgs validates the arguments of commands analyzing a fund: a single
// ticker and a number of rows.
func checkArgs(args []string, rows int) (string, error) {
	var errs []error
	var ticker string
	switch len(args) {
	case 0:
		errs = append(errs, fmt.Errorf("%w: missing", errTicker))
	case 1:
		t, err := parseTicker(args[0])
		if err != nil {
			errs = append(errs, err)
		}
		ticker = t
	default:
		errs = append(errs, fmt.Errorf("expected a single ETF symbol, got %d arguments", len(args)))
	}
	if rows <= 0 {
		errs = append(errs, fmt.Errorf("%w, got %d", errRows, rows))
	}
	return ticker, errors.Join(errs...)
}

// printMarkdown renders md for the terminal, or prints it as is if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	log.Printf("cannot render markdown: %v", err)
	fmt.Print(md)
}
