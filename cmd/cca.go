package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rentbook"
	"github.com/etnz/rentbook/renderer"
	"github.com/google/subcommands"
)

type ccaCmd struct {
	through int
}

func (*ccaCmd) Name() string     { return "cca" }
func (*ccaCmd) Synopsis() string { return "capital cost allowance schedule per asset" }
func (*ccaCmd) Usage() string {
	return `rbk cca [-through <year>]

  Declining-balance depreciation of every capital asset, year by year, with
  the half-year rule in the acquisition year and disposal settlement
  (terminal loss or recapture).

`
}

func (c *ccaCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.through, "through", rentbook.Today().Year()-1, "Last year to depreciate through (defaults to the last complete year)")
}

func (c *ccaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := rentbook.NewCCAReport(ledger, c.through)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	render(renderer.CCAMarkdown(report))
	return subcommands.ExitSuccess
}
