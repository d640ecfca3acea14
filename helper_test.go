package etfnav

import (
	"encoding/json"
	"testing"
)

// textCell is a table cell as published by the source: {"c": ["text"]}.
func textCell(s string) map[string]any { return map[string]any{"c": []any{s}} }

// row builds a holdings row out of display strings.
func row(cells ...string) map[string]any {
	c := make([]any, len(cells))
	for i, s := range cells {
		c[i] = textCell(s)
	}
	return map[string]any{"c": c}
}

// holdingsPayload wraps rows in the module tree, the way the source does.
func holdingsPayload(t *testing.T, rows ...any) string {
	t.Helper()
	tree := map[string]any{
		"module": map[string]any{
			"c": []any{
				map[string]any{
					"c": []any{
						map[string]any{"c": []any{"header"}},
						map[string]any{"c": rows},
					},
				},
			},
		},
	}
	b, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("cannot marshal payload: %v", err)
	}
	return "this.apiReturn = " + string(b) + ";"
}

// bar is a helper for tests to create a quote with only a close.
func bar(close float64) Quote { return Quote{Close: F(close)} }
