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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	output  string
	offline bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "consolidate the statements into the full report" }
func (*reportCmd) Usage() string {
	return `consol report [-o <file>] [-offline]

  Reads every statement in the configured input folder, applies the
  corrections, replays the transactions up to the cutoff date and writes the
  consolidated workbook. The report is also printed to the terminal.

Usage Examples:
# Consolidate and write the workbook named in the configuration.
$ consol report

# Consolidate without fetching market prices.
$ consol report -offline
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output workbook file. Defaults to the configured output_file.")
	f.BoolVar(&c.offline, "offline", false, "skip market price lookups")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var quoter consolida.Quoter
	if !c.offline {
		quoter = consolida.NewBrapiQuoter()
	}

	report, config, err := BuildReport(quoter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderFullReport(renderer.NewFullReport(report)))

	output := c.output
	if output == "" {
		output = config.OutputFile
	}
	if err := consolida.WriteWorkbook(output, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing workbook %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Consolidated report written to %s\n", output)
	return subcommands.ExitSuccess
}
