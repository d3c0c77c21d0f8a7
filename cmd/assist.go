package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rmaia/consolida/renderer"
	"google.golang.org/genai"
)

// AssistCmd is the subcommand for the AI assistant.
type AssistCmd struct {
	model string
}

// Name returns the name of the command.
func (*AssistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*AssistCmd) Synopsis() string { return "Ask the AI assistant a question about the portfolio." }

// Usage returns a long-form usage string.
func (*AssistCmd) Usage() string {
	return `consol assist <question>

  Consolidates the statements and asks the assistant a question grounded on
  the resulting report. Requires Gemini credentials in the environment.

Usage Examples:
$ consol assist which position has the worst realized result?
`
}

// SetFlags sets the flags for the command.
func (c *AssistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Model answering the question")
}

const assistInstructions = `You are a brazilian stock portfolio assistant.
Answer the user's question using only the consolidated report below.
Amounts are in BRL. Be concise; when the report cannot answer, say so.`

// Execute executes the command.
func (c *AssistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: assist needs a question")
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

	report, _, err := BuildReport(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}
	md := renderer.RenderFullReport(renderer.NewFullReport(report))

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	prompt := assistInstructions + "\n\n" + md + "\n\nQuestion: " + question
	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating the answer:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
