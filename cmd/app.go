// Package cmd implements the CLI application to consolidate brokerage
// statements.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rmaia/consolida"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&positionCmd{}, "reports")
	c.Register(&salesCmd{}, "reports")
	c.Register(&incomeCmd{}, "reports")

	c.Register(&AssistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "consolida.toml", "Path to the configuration file")

// LoadConfig loads the app configuration, creating a default file on first
// run.
func LoadConfig() (*consolida.Config, error) {
	return consolida.LoadConfig(*configFile)
}

// LoadLedger reads every statement in the configured input folder, applies
// the ticker renames and the split corrections, and replays the result into
// a ledger. Correction workbooks are optional; a missing one is skipped with
// a warning. Consistency issues found along the way come back as warnings,
// separate from the hard error.
func LoadLedger(c *consolida.Config, cutoff consolida.Date) (*consolida.Ledger, []error, error) {
	txs, err := consolida.ReadStatements(c.InputDir)
	if err != nil && txs == nil {
		return nil, nil, err
	}
	var warnings []error
	if err != nil {
		// Row-level failures: keep going with the rows that parsed.
		warnings = append(warnings, err)
	}

	renames, err := readRenames(c.RenamesFile())
	if err != nil {
		return nil, nil, err
	}
	renames.Normalize(txs)

	splits, err := readSplits(c.SplitsFile())
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, splits.Adjust(txs, cutoff)...)

	ledger := consolida.NewLedger()
	ledger.Append(txs...)
	return ledger, warnings, nil
}

func readRenames(path string) (consolida.RenameTable, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no rename corrections at %s, skipping", path)
		return consolida.NewRenameTable(nil), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return consolida.ReadRenames(f, path)
}

func readSplits(path string) (consolida.SplitTable, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no split corrections at %s, skipping", path)
		return consolida.NewSplitTable(nil), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return consolida.ReadSplits(f, path)
}

// BuildReport runs the whole pipeline: configuration, statements,
// corrections, consolidation, and (with a non-nil quoter) market valuation.
func BuildReport(quoter consolida.Quoter) (*consolida.Report, *consolida.Config, error) {
	c, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	cutoff, err := c.Cutoff()
	if err != nil {
		return nil, nil, err
	}
	ledger, warnings, err := LoadLedger(c, cutoff)
	if err != nil {
		return nil, nil, err
	}
	report, err := consolida.BuildReport(ledger, cutoff, quoter)
	if err != nil {
		return nil, nil, err
	}
	report.Warnings = append(warnings, report.Warnings...)
	return report, c, nil
}

// printMarkdown renders markdown to the terminal with glamour, falling back
// to the raw text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
