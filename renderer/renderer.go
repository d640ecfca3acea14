package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templateFS embed.FS

// templates holds the markdown templates, by file name.
var templates, _ = fs.Sub(templateFS, "templates")

// RenderCheck renders the NAV reconciliation of a fund to a markdown string.
func RenderCheck(c *Check) string {
	partials := map[string]string{
		"check_title": "check_title.md",
		"check_nav":   "check_nav.md",
		"check_rows":  "check_rows.md",
	}
	// Nothing to say when every symbol was quoted and every row decoded.
	if len(c.Missing) > 0 || c.Skipped > 0 {
		partials["check_gaps"] = "check_gaps.md"
	} else {
		partials["check_gaps"] = ""
	}
	return renderTemplate("check", "check.md", partials, c)
}

// RenderHoldings renders a fund's decoded holdings table to a markdown string.
func RenderHoldings(h *Holdings) string {
	return renderTemplate("holdings", "holdings.md", nil, h)
}

// RenderQuotes renders the latest quotes of symbols to a markdown string.
func RenderQuotes(q *Quotes) string {
	return renderTemplate("quotes", "quotes.md", nil, q)
}

// renderTemplate renders a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
