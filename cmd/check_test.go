package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

const fundPage = `<html><script>
WSDOM.Page.sessionID = WSOD_DATA.sessionID || 'S1';
var gSymbolWSODIssue = '77';
</script>
<div class="popupVersion realtime"><table><tr><th>Last</th></tr><tr><td>$250.00</td></tr></table></div>
</html>`

const fundHoldings = `this.apiReturn = {"module":{"c":[{"c":[{"c":["header"]},{"c":[
{"c":[{"c":["AAPL"]},{"c":["Apple Inc"]},{"c":["5%"]},{"c":["100"]},{"c":["$20,000"]}]},
{"c":[{"c":["MSFT"]},{"c":["Microsoft Corp"]},{"c":["3%"]},{"c":["50"]},{"c":["$15,000"]}]},
{"c":[{"c":["--"]},{"c":["Cash & Other"]},{"c":["0%"]},{"c":["0"]},{"c":["0"]}]}
]}]}]}};`

// newCollaborators serves both the fund's pages and the quote feed.
func newCollaborators(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "index.asp"):
			io.WriteString(w, fundPage)
		case strings.HasSuffix(r.URL.Path, "ModuleAPI.asp"):
			io.WriteString(w, fundHoldings)
		case r.URL.Path == "/v2/stocks/bars/latest":
			if got := r.URL.Query().Get("symbols"); got != "SPY,AAPL,MSFT" {
				t.Errorf("quotes requested for %q, want SPY,AAPL,MSFT", got)
			}
			io.WriteString(w, `{"bars":{"AAPL":{"c":210},"MSFT":{"c":310}}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	t.Setenv(EnvSchwabURL, srv.URL)
	t.Setenv(EnvAlpacaURL, srv.URL)
	return srv
}

func TestCheck(t *testing.T) {
	newCollaborators(t)
	out := filepath.Join(t.TempDir(), "spy.json")

	c := &checkCmd{}
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"-n", "3", "-o", out, "spy"}); err != nil {
		t.Fatal(err)
	}
	if got := c.Execute(context.Background(), f); got != subcommands.ExitSuccess {
		t.Fatalf("check = %v, want %v", got, subcommands.ExitSuccess)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("check did not write its output: %v", err)
	}
	var got struct {
		Summary map[string]any            `json:"summary"`
		Symbols map[string]map[string]any `json:"symbols"`
		Report  struct {
			NavPerShare *float64 `json:"nav_per_share"`
			Rows        []struct {
				Symbol string `json:"symbol"`
			} `json:"rows"`
		} `json:"report"`
	}
	if err := json.Unmarshal(content, &got); err != nil {
		t.Fatalf("check output is not JSON: %v\n%s", err, content)
	}
	if got.Summary["last_price"] != "$250.00" {
		t.Errorf("check summary = %v, want last_price $250.00", got.Summary)
	}
	if len(got.Symbols) != 2 || got.Symbols["AAPL"]["close"] != 210.0 {
		t.Errorf("check symbols = %v, want AAPL and MSFT with their close", got.Symbols)
	}
	if got.Report.NavPerShare == nil || *got.Report.NavPerShare < 260.71 || *got.Report.NavPerShare > 260.72 {
		t.Errorf("check nav_per_share = %v, want 260.71", got.Report.NavPerShare)
	}
	if len(got.Report.Rows) != 2 || got.Report.Rows[0].Symbol != "AAPL" {
		t.Errorf("check rows = %+v, want AAPL first", got.Report.Rows)
	}
	if !strings.Contains(string(content), "\n  \"summary\": {") {
		t.Errorf("check output is not indented:\n%s", content)
	}
}

func TestCheckTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()
	t.Setenv(EnvSchwabURL, srv.URL)

	c := &checkCmd{}
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	f.Parse([]string{"SPY"})
	if got := c.Execute(context.Background(), f); got != subcommands.ExitFailure {
		t.Errorf("check = %v, want %v", got, subcommands.ExitFailure)
	}
}
