package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/rentbook"
	"github.com/etnz/rentbook/renderer"
	"github.com/google/subcommands"
)

type yoyCmd struct {
	years string
}

func (*yoyCmd) Name() string     { return "yoy" }
func (*yoyCmd) Synopsis() string { return "year-over-year revenue comparison" }
func (*yoyCmd) Usage() string {
	return `rbk yoy [-years <y1,y2,...>]

  Yearly income, opex/capex split and net profit with the revenue delta
  against the previous year. Only complete calendar years should be listed;
  by default every year before the current one with ledger activity is used.

`
}

func (c *yoyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.years, "years", "", "Comma-separated complete calendar years to compare")
}

func (c *yoyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var years []int
	if c.years != "" {
		for _, s := range strings.Split(c.years, ",") {
			y, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid year %q\n", s)
				return subcommands.ExitUsageError
			}
			years = append(years, y)
		}
	} else {
		years = completeYears(ledger)
	}

	render(renderer.YoYMarkdown(rentbook.NewYoYReport(ledger, years)))
	return subcommands.ExitSuccess
}

// completeYears returns every year before the current one that has ledger
// activity: the current year-to-date is a partial year and would skew the
// comparison.
func completeYears(ledger *rentbook.Ledger) []int {
	current := rentbook.Today().Year()
	seen := make(map[int]bool)
	for p := range ledger.Payments() {
		seen[rentbook.DateOf(p.PaidAt).Year()] = true
	}
	for e := range ledger.Expenses() {
		seen[e.Date.Year()] = true
	}
	var years []int
	for y := range seen {
		if y < current {
			years = append(years, y)
		}
	}
	return years
}
