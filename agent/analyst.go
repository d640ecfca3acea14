package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/etfnav"
	"github.com/etnz/etfnav/docs"
	"github.com/etnz/etfnav/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAnalyst returns the facilitator explaining analysis a. It can read the
// report, the merged record of any holding and the documentation, and ask
// experts.
func NewAnalyst(a *etfnav.Analysis, experts ...*Expert) *Expert {
	lib := append(Tools(a), asFunctions(experts)...)
	return &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(`
			You are a fund analyst. You explain to the user the gap between the last traded price
			of the ETF %s and the net asset value per share implied by its holdings.

			Read the reconciliation report first, and the documentation topic "nav" to understand how
			the figures are derived. Look at the holdings with the largest discrepancies, and at the
			symbols without a quote: they are left out of the totals and bias the NAV.

			Ask the experts for recent news or market context when a discrepancy needs it.
			Answer in markdown, with figures taken from the report.
			`, a.Ticker)}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewTrader returns an expert grounded with Google Search.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `An expert trader, aware of the financial products and markets, and of the latest
		news about funds and companies. Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in trading. You search for anything related to financial institutions,
			companies, markets and funds, and use Google Search to ground your assertions.
			Relate the latest news to the question you are asked.
			`}}},
		},
	}
}

func asFunctions(experts []*Expert) []Function {
	fns := make([]Function, len(experts))
	for i, e := range experts {
		fns[i] = e
	}
	return fns
}

// Tools returns the functions reading analysis a.
func Tools(a *etfnav.Analysis) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Report",
				Description: "Report returns the NAV reconciliation of the fund: NAV summary, discrepancies by holding, symbols without quote.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The reconciliation report, in markdown.",
				},
			},
			Func: func(context.Context, map[string]any) (string, error) {
				return renderer.RenderCheck(renderer.NewCheck(a)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Holding",
				Description: "Holding returns what is known about one holding of the fund: its weight, shares, reported market value and latest quote.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"symbol": {Type: genai.TypeString, Description: "The holding's symbol, as in the report."},
					},
					Required: []string{"symbol"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The holding as a JSON object.",
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				symbol, err := stringArg(args, "symbol")
				if err != nil {
					return "", err
				}
				if a.Merged == nil {
					return "", fmt.Errorf("no holdings")
				}
				rec, ok := a.Merged.Symbols.Get(strings.ToUpper(strings.TrimSpace(symbol)))
				if !ok {
					return "", fmt.Errorf("unknown holding %q", symbol)
				}
				b, err := rec.MarshalJSON()
				return string(b), err
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Topic",
				Description: "Topic returns a documentation topic of navcheck. The readme topic lists the others.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"topic": {Type: genai.TypeString, Description: "The topic name, e.g. nav."},
					},
					Required: []string{"topic"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The topic in markdown.",
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				topic, err := stringArg(args, "topic")
				if err != nil {
					return "", err
				}
				return docs.GetTopic(topic)
			},
		},
	}
}
