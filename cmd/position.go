package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rmaia/consolida"
	"github.com/rmaia/consolida/renderer"
)

// positionCmd holds the flags for the 'position' subcommand.
type positionCmd struct {
	quotes bool
}

func (*positionCmd) Name() string     { return "position" }
func (*positionCmd) Synopsis() string { return "display the cost-basis positions at the cutoff date" }
func (*positionCmd) Usage() string {
	return `consol position [-u]

  Displays the open positions with their weighted-average cost, as replayed
  from the statements up to the cutoff date.
`
}

func (c *positionCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.quotes, "u", false, "also fetch market prices and show the valuation")
}

func (c *positionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var quoter consolida.Quoter
	if c.quotes {
		quoter = consolida.NewBrapiQuoter()
	}

	report, _, err := BuildReport(quoter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	view := renderer.NewPortfolio(report)
	if c.quotes {
		printMarkdown(renderer.RenderPortfolio(view))
	} else {
		printMarkdown(renderer.RenderPositions(view))
	}
	return subcommands.ExitSuccess
}
