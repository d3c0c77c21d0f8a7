package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rmaia/consolida/renderer"
)

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct{}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "display dividends and distributions by asset and year" }
func (*incomeCmd) Usage() string {
	return `consol income

  Displays the income received (dividends, interest on equity and fund
  distributions), accumulated by asset and calendar year.
`
}

func (*incomeCmd) SetFlags(_ *flag.FlagSet) {}

func (c *incomeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, _, err := BuildReport(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderIncome(renderer.NewIncome(report)))
	return subcommands.ExitSuccess
}
