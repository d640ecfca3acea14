// Package schwab retrieves ETF holdings and trading summaries from Schwab's
// ETF research pages.
//
// The holdings table is not part of the page: it is served by a module API
// that requires the session and issue identifiers embedded in the page's
// scripts.
package schwab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"

	"github.com/etnz/etfnav"
)

// DefaultBaseURL is the public host of the research pages.
const DefaultBaseURL = "https://www.schwab.wallst.com"

const (
	pagePath   = "/schwab/Prospect/research/etfs/schwabETF/index.asp"
	modulePath = "/schwab/Prospect/research/resources/server/Module/SchwabETF.ModuleAPI.asp"
	userAgent  = "Mozilla/5.0"
)

var (
	sessionIDPattern = regexp.MustCompile(`WSDOM\.Page\.sessionID\s*=\s*WSOD_DATA\.sessionID\s*\|\|\s*'([^']+)'`)
	issuePattern     = regexp.MustCompile(`var gSymbolWSODIssue = '(\d+)'`)
)

// ErrSessionNotFound is returned when the page does not carry the session or
// issue identifiers.
var ErrSessionNotFound = errors.New("sessionid/wsodissue not found")

// Client reads the research pages. It keeps cookies across calls, as the
// module API expects the page's session cookies.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// NewClient returns a client for baseURL (DefaultBaseURL if empty).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	jar, _ := cookiejar.New(nil) // never fails without options
	return &Client{
		HTTP:    &http.Client{Jar: jar},
		BaseURL: baseURL,
	}
}

// Session identifies a page visit, required to query the holdings module.
type Session struct {
	ID    string // the page's session id
	Issue string // Schwab's internal identifier of the fund
}

// pageURL returns the holdings page of ticker.
func (c *Client) pageURL(ticker string) string {
	q := url.Values{"type": {"holdings"}, "symbol": {ticker}}
	return c.BaseURL + pagePath + "?" + q.Encode()
}

// Page retrieves the holdings page of ticker, and extracts the session from it.
func (c *Client) Page(ctx context.Context, ticker string) (Session, []byte, error) {
	addr := c.pageURL(ticker)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return Session{}, nil, fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", addr)

	page, err := c.do(req, "GET holdings page")
	if err != nil {
		return Session{}, nil, err
	}
	s, err := ParseSession(page)
	return s, page, err
}

// ParseSession extracts the session and issue identifiers from a page.
func ParseSession(page []byte) (Session, error) {
	sid := sessionIDPattern.FindSubmatch(page)
	issue := issuePattern.FindSubmatch(page)
	if sid == nil || issue == nil {
		return Session{}, ErrSessionNotFound
	}
	return Session{ID: string(sid[1]), Issue: string(issue[1])}, nil
}

// FetchFund implements etfnav.FundSource: it reads the fund's summary from its
// holdings page and the first rows of its holdings table.
func (c *Client) FetchFund(ctx context.Context, ticker string, rows int) (etfnav.Summary, string, error) {
	s, page, err := c.Page(ctx, ticker)
	if err != nil {
		return etfnav.Summary{}, "", fmt.Errorf("%s: %w", ticker, err)
	}
	summary := ParseSummary(page)

	payload, err := c.Holdings(ctx, s, ticker, rows)
	if err != nil {
		return etfnav.Summary{}, "", err
	}
	return summary, payload, nil
}

// do executes req and returns the body of a successful response.
func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &etfnav.TransportError{Collaborator: "schwab", Op: op, Err: err}
	}
	defer resp.Body.Close()
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &etfnav.TransportError{Collaborator: "schwab", Op: op, Status: resp.Status}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &etfnav.TransportError{Collaborator: "schwab", Op: op, Err: fmt.Errorf("cannot read http body: %w", err)}
	}
	return body, nil
}
