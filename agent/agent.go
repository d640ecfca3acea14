// Package agent explains NAV reconciliations with Gemini models.
//
// A facilitator, the Analyst, answers the user. It reads the reconciliation
// through function calls, and may consult other experts.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs a conversation between the user and a facilitator.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader // nil when the conversation ends with the prompts
	Print       func(io.Writer, string)
	Facilitator *Expert
	Experts     []*Expert
}

// New creates an Agent writing to w. When r is not nil, the conversation
// goes on with the user's input until "bye" or the end of r.
func New(w io.Writer, r io.Reader, facilitator *Expert, experts ...*Expert) *Agent {
	a := &Agent{
		w:           w,
		Print:       func(w io.Writer, s string) { fmt.Fprintln(w, s) },
		Facilitator: facilitator,
		Experts:     experts,
	}
	if r != nil {
		a.r = bufio.NewReader(r)
	}
	return a
}

// Start opens every expert's chat.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "explain> "

// Run sends prompts to the facilitator, then reads the user's questions if
// the agent is interactive.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}
	if a.r != nil {
		fmt.Fprintln(a.w, "Ask about the reconciliation. Type 'bye' to exit.")
	}

	for {
		var input string
		switch {
		case len(prompts) > 0:
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
		case a.r == nil:
			return nil
		default:
			fmt.Fprint(a.w, prompt)
			line, err := a.r.ReadString('\n')
			if err == io.EOF && strings.TrimSpace(line) == "" {
				return nil // Ctrl+D
			}
			if err != nil && err != io.EOF {
				return err
			}
			input = strings.TrimSpace(line)
		}

		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, text(content))
	}
}
