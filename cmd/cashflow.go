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

type cashFlowCmd struct {
	from string
	to   string
}

func (*cashFlowCmd) Name() string     { return "cashflow" }
func (*cashFlowCmd) Synopsis() string { return "monthly income vs expenses with net profit" }
func (*cashFlowCmd) Usage() string {
	return `rbk cashflow [-from <date>] [-to <date>]

  Merges rent income and expenses into monthly buckets and prints one row
  per month with activity. Missed payments contribute no income; capex
  expenses count like any other cash out.

`
}

func (c *cashFlowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Only include activity on or after this date (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "Only include activity on or before this date (YYYY-MM-DD)")
}

func (c *cashFlowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var within *rentbook.Range
	if c.from != "" || c.to != "" {
		from, to := rentbook.Date{}, rentbook.Today()
		var err error
		if c.from != "" {
			if from, err = rentbook.ParseDate(c.from); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		if c.to != "" {
			if to, err = rentbook.ParseDate(c.to); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		r := rentbook.NewRange(from, to)
		within = &r
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	render(renderer.CashFlowMarkdown(rentbook.NewCashFlowReport(ledger, within)))
	return subcommands.ExitSuccess
}
