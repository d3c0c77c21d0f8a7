package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rmaia/consolida/renderer"
)

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "display the realized gains and losses log" }
func (*salesCmd) Usage() string {
	return `consol sales

  Displays every sale replayed from the statements, with its cost basis and
  realized gain, oldest first.
`
}

func (*salesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *salesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, _, err := BuildReport(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderSales(renderer.NewSales(report)))
	return subcommands.ExitSuccess
}
