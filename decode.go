package etfnav

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// holdingsPath locates the rows of the holdings table in the source payload:
// module, first child group, second element of the nested group, its rows.
const holdingsPath = "$.module.c[0].c[1].c"

// Columns of a holdings row.
const (
	colSymbol = iota
	colName
	colWeight
	colShares
	colMarketValue
)

var errRow = errors.New("malformed holdings row")

// DecodeHoldings reads the holdings table out of a source payload.
// See DecodeHoldingsReport.
func DecodeHoldings(payload string) ([]Holding, error) {
	holdings, _, err := DecodeHoldingsReport(payload)
	return holdings, err
}

// DecodeHoldingsReport reads the holdings table out of a source payload, and
// returns the number of malformed rows that were skipped.
//
// The payload is a javascript assignment of a JSON tree (`this.apiReturn = {...};`).
// A payload that cannot be parsed, or that does not contain the table, is a
// *StructureError. Rows with a zero weight are cash or placeholder lines and
// are dropped, so are malformed rows. Source order is preserved.
func DecodeHoldingsReport(payload string) (holdings []Holding, skipped int, err error) {
	var tree any
	if err := json.Unmarshal([]byte(stripAssignment(payload)), &tree); err != nil {
		return nil, 0, &StructureError{Path: "payload", Err: err}
	}

	v, err := jsonpath.Get(holdingsPath, tree)
	if err != nil {
		return nil, 0, &StructureError{Path: holdingsPath, Err: err}
	}
	rows, ok := v.([]any)
	if !ok {
		return nil, 0, &StructureError{Path: holdingsPath, Err: fmt.Errorf("got %T, want an array of rows", v)}
	}

	holdings = make([]Holding, 0, len(rows))
	for i, r := range rows {
		h, err := decodeRow(newCell(r))
		if err != nil {
			log.Printf("skipping holdings row %d: %v", i, err)
			skipped++
			continue
		}
		if h.WeightPct == 0 {
			continue
		}
		holdings = append(holdings, h)
	}
	return holdings, skipped, nil
}

// stripAssignment removes the `<lhs> =` preamble and the trailing ';' around a
// JSON document.
func stripAssignment(payload string) string {
	txt := strings.TrimSpace(payload)
	if i := strings.IndexAny(txt, "{["); i > 0 && strings.Contains(txt[:i], "=") {
		txt = txt[i:]
	}
	txt = strings.TrimSuffix(txt, ";")
	return strings.TrimSpace(txt)
}

// decodeRow reads a single row. Symbol and name are optional, amounts are not.
func decodeRow(row Cell) (Holding, error) {
	text := func(col int, required bool) (string, error) {
		cell, ok := row.Child(col)
		if !ok {
			return "", fmt.Errorf("%w: missing column %d", errRow, col)
		}
		s, ok := cell.Display()
		if !ok && required {
			return "", fmt.Errorf("%w: empty column %d", errRow, col)
		}
		return s, nil
	}

	var h Holding
	var err error
	if h.Symbol, err = text(colSymbol, false); err != nil {
		return h, err
	}
	if h.Name, err = text(colName, false); err != nil {
		return h, err
	}
	amounts := []struct {
		col int
		dst *float64
	}{
		{colWeight, &h.WeightPct},
		{colShares, &h.Shares},
		{colMarketValue, &h.MarketValueUSD},
	}
	for _, a := range amounts {
		s, err := text(a.col, true)
		if err != nil {
			return h, err
		}
		*a.dst = ParseNumber(s)
	}
	return h, nil
}
