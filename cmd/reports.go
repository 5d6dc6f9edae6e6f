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

type delinquencyCmd struct{}

func (*delinquencyCmd) Name() string     { return "delinquency" }
func (*delinquencyCmd) Synopsis() string { return "rank tenants by late payments and fee collection" }
func (*delinquencyCmd) Usage() string {
	return `rbk delinquency

  Per-tenant payment counts, late rate and late-fee collection rate,
  worst offenders first.

`
}
func (*delinquencyCmd) SetFlags(*flag.FlagSet) {}

func (c *delinquencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	render(renderer.DelinquencyMarkdown(rentbook.NewDelinquencyReport(ledger)))
	return subcommands.ExitSuccess
}

type vacancyCmd struct{}

func (*vacancyCmd) Name() string     { return "vacancy" }
func (*vacancyCmd) Synopsis() string { return "gaps between consecutive leases and their cost" }
func (*vacancyCmd) Usage() string {
	return `rbk vacancy

  For each unit, the gap between every lease and its successor, with the
  rent lost over the gap estimated at the ending lease's rate.

`
}
func (*vacancyCmd) SetFlags(*flag.FlagSet) {}

func (c *vacancyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	render(renderer.VacancyMarkdown(rentbook.NewVacancyReport(ledger)))
	return subcommands.ExitSuccess
}

type expensesCmd struct{}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "per-category operating vs capital spending" }
func (*expensesCmd) Usage() string {
	return `rbk expenses

  Splits every expense category into operating and capital spending.

`
}
func (*expensesCmd) SetFlags(*flag.FlagSet) {}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	render(renderer.ExpenseBreakdownMarkdown(rentbook.NewExpenseBreakdownReport(ledger)))
	return subcommands.ExitSuccess
}

type rentRollCmd struct {
	asOf string
}

func (*rentRollCmd) Name() string     { return "rentroll" }
func (*rentRollCmd) Synopsis() string { return "snapshot of current occupancy and rent terms" }
func (*rentRollCmd) Usage() string {
	return `rbk rentroll [-d <date>]

  One row per active lease: unit, tenant, agreed rent, tenancy length and
  deposit on file.

`
}

func (c *rentRollCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "d", "", "Snapshot date (YYYY-MM-DD), defaults to today")
}

func (c *rentRollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf := rentbook.Today()
	if c.asOf != "" {
		var err error
		if asOf, err = rentbook.ParseDate(c.asOf); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	render(renderer.RentRollMarkdown(rentbook.NewRentRollReport(ledger, asOf)))
	return subcommands.ExitSuccess
}
