package schwab

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// moduleRequest is the JSON document expected by the module API, fields in
// this order.
type moduleRequest struct {
	Module     string     `json:"module"`
	ModuleArgs moduleArgs `json:"moduleArgs"`
}

type moduleArgs struct {
	ModuleID        string `json:"ModuleID"`
	Symbol          string `json:"symbol"`
	WSODIssue       string `json:"wsodissue"`
	SortDir         string `json:"sortDir"`
	SortBy          string `json:"sortBy"`
	Page            string `json:"page"`
	NumRows         string `json:"numRows"`
	IsThirdPartyETF string `json:"isThirdPartyETF"`
}

// holdingsBody returns the form body requesting the first rows holdings of
// ticker, by decreasing weight.
func holdingsBody(s Session, ticker string, rows int) (string, error) {
	doc, err := json.Marshal(moduleRequest{
		Module: "schwabETFHoldingsTable",
		ModuleArgs: moduleArgs{
			ModuleID:        "holdingsTableContainer",
			Symbol:          ticker,
			WSODIssue:       s.Issue,
			SortDir:         "desc",
			SortBy:          "PctNetAssets",
			Page:            "1",
			NumRows:         strconv.Itoa(rows),
			IsThirdPartyETF: "true",
		},
	})
	if err != nil {
		return "", err
	}
	enc := base64.StdEncoding.EncodeToString(doc)
	// the module API reads the body verbatim: it must not be form-escaped.
	return "inputs=B64ENC" + enc + "&..contenttype..=text/javascript&..requester..=ContentBuffer", nil
}

// Holdings retrieves the raw holdings payload, a javascript assignment of the
// holdings tree, see etfnav.DecodeHoldings.
func (c *Client) Holdings(ctx context.Context, s Session, ticker string, rows int) (string, error) {
	body, err := holdingsBody(s, ticker, rows)
	if err != nil {
		return "", fmt.Errorf("cannot encode holdings request: %w", err)
	}
	addr := c.BaseURL + modulePath + "?" + s.ID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", c.pageURL(ticker))
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "*/*")

	payload, err := c.do(req, "POST holdings table")
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
